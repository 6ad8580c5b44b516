package main

import (
	"math/rand"
	"strings"

	cohort "github.com/phonolex/phoneme-cohort"
)

var (
	consonants = []string{
		"b", "d", "f", "g", "h", "k", "l", "m", "n",
		"p", "s", "t", "v", "w", "z", "S", "T", "D",
	}
	vowels = []string{"a", "e", "i", "o", "u", "@", "I", "E", "U", "A"}
)

// LexiconGenerator produces pseudo-word lexicons: random syllable
// structures over a one-character phoneme inventory, with Zipf-like
// frequencies and a few gaps to exercise smoothing.
type LexiconGenerator struct {
	rng *rand.Rand
}

// NewLexiconGenerator creates a generator with the given seed.
func NewLexiconGenerator(seed int64) *LexiconGenerator {
	return &LexiconGenerator{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Lexicon holds one generated input snapshot.
type Lexicon struct {
	Words []string
	Prons cohort.PronunciationMap
	Freqs cohort.FrequencyMap
}

// Generate produces n words. Roughly one word in ten is left out of the
// frequency table so the analyzer's smoothing path is visible in the demo.
func (g *LexiconGenerator) Generate(n int) *Lexicon {
	lex := &Lexicon{
		Prons: make(cohort.PronunciationMap, n),
		Freqs: make(cohort.FrequencyMap, n),
	}

	seen := make(map[string]bool, n)
	for len(lex.Words) < n {
		word := g.word()
		if seen[word] {
			continue
		}
		seen[word] = true

		lex.Words = append(lex.Words, word)
		lex.Prons[word] = cohort.SplitPhonemes(word)
		if g.rng.Intn(10) > 0 {
			// Zipf-ish tail: most words are rare, a few are very frequent.
			lex.Freqs[word] = int(10000 / float64(1+g.rng.Intn(500)))
		}
	}
	return lex
}

func (g *LexiconGenerator) word() string {
	var sb strings.Builder
	syllables := 1 + g.rng.Intn(3)
	for i := 0; i < syllables; i++ {
		sb.WriteString(g.syllable())
	}
	return sb.String()
}

func (g *LexiconGenerator) syllable() string {
	var sb strings.Builder

	// Optional complex onset, then a nucleus, then an optional coda.
	onset := g.rng.Intn(3)
	for i := 0; i < onset; i++ {
		sb.WriteString(consonants[g.rng.Intn(len(consonants))])
	}
	sb.WriteString(vowels[g.rng.Intn(len(vowels))])
	if g.rng.Intn(2) == 0 {
		sb.WriteString(consonants[g.rng.Intn(len(consonants))])
	}
	return sb.String()
}
