package cohort

import (
	"math"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// EntropyProfile summarizes the entropy along one pronunciation's prefix
// chain under a single weighting scheme.
type EntropyProfile struct {
	Mean         float64
	Min          float64
	Max          float64
	First        float64 // at the first phoneme
	Initial      float64 // at the onset (or first phoneme if vowel-initial)
	OnsetNucleus float64 // at onset plus first vowel
	Final        float64 // at the full pronunciation
}

// SurprisalProfile summarizes the surprisal along one pronunciation's prefix
// chain, excluding the first position, where surprisal is undefined. Every
// field is NaN for single-phoneme pronunciations.
type SurprisalProfile struct {
	Mean float64
	Min  float64
	Max  float64
}

// WordMetrics is the per-word summary row. Homophones share the underlying
// pronunciation statistics but keep their own text and raw frequency.
type WordMetrics struct {
	Word            string
	Frequency       int // raw frequency, 0 when absent from the source
	Pronunciation   Pronunciation
	Length          int
	UniquenessPoint int
	First           string
	Initial         string
	OnsetNucleus    string

	EntropyUniform   EntropyProfile
	EntropyFreq      EntropyProfile
	SurprisalUniform SurprisalProfile
	SurprisalFreq    SurprisalProfile
}

// PositionRow is one (word, position) row of the long-format table. Position
// is 1-based; the surprisal at position 1 is relative to the empty prefix.
type PositionRow struct {
	Word             string
	Pronunciation    Pronunciation
	Prefix           string
	Position         int
	EntropyUniform   float64
	EntropyFreq      float64
	SurprisalUniform float64
	SurprisalFreq    float64
}

// pronMetrics is everything derivable from a single distinct pronunciation's
// prefix chain, shared by all homophonous words.
type pronMetrics struct {
	uniqueness int
	initial    Pronunciation
	onsetNuc   Pronunciation
	malformed  bool

	entUniform EntropyProfile
	entFreq    EntropyProfile
	surUniform SurprisalProfile
	surFreq    SurprisalProfile
}

// uniquenessPoint returns the first 1-based position at which the cohort
// narrows to a single pronunciation, or the last position if it never does
// (true homophones keep a count above one even at the full transcription).
// Returns -1 for an empty chain.
func uniquenessPoint(counts []int) int {
	if len(counts) == 0 {
		return -1
	}
	for i, c := range counts {
		if c == 1 {
			return i + 1
		}
	}
	return len(counts)
}

// computePronMetrics walks one pronunciation's prefix chain. The trie and
// per-prefix statistics are read-only here, so callers may fan this out
// across pronunciations freely.
func computePronMetrics(t *trie, pron Pronunciation, vowels map[string]bool) *pronMetrics {
	nodes := t.path(pron)
	m := &pronMetrics{}

	counts := make([]int, len(nodes))
	entU := make([]float64, len(nodes))
	entF := make([]float64, len(nodes))
	surU := make([]float64, 0, len(nodes)-1)
	surF := make([]float64, 0, len(nodes)-1)
	for i, n := range nodes {
		counts[i] = n.count
		entU[i] = n.entUniform
		entF[i] = n.entFreq
		if i > 0 {
			surU = append(surU, n.surUniform)
			surF = append(surF, n.surFreq)
		}
	}

	m.uniqueness = uniquenessPoint(counts)
	m.initial = pron.initial(vowels)

	onsetNuc, err := pron.onsetNucleus(vowels)
	if err != nil {
		m.malformed = true
		return m
	}
	m.onsetNuc = onsetNuc

	m.entUniform = entropyProfile(t, pron, m.initial, onsetNuc, entU)
	m.entFreq = freqEntropyProfile(t, pron, m.initial, onsetNuc, entF)
	m.surUniform = surprisalProfile(surU)
	m.surFreq = surprisalProfile(surF)
	return m
}

func entropyProfile(t *trie, pron, initial, onsetNuc Pronunciation, series []float64) EntropyProfile {
	return EntropyProfile{
		Mean:         stat.Mean(series, nil),
		Min:          floats.Min(series),
		Max:          floats.Max(series),
		First:        t.lookup(pron[:1]).entUniform,
		Initial:      t.lookup(initial).entUniform,
		OnsetNucleus: t.lookup(onsetNuc).entUniform,
		Final:        series[len(series)-1],
	}
}

func freqEntropyProfile(t *trie, pron, initial, onsetNuc Pronunciation, series []float64) EntropyProfile {
	return EntropyProfile{
		Mean:         stat.Mean(series, nil),
		Min:          floats.Min(series),
		Max:          floats.Max(series),
		First:        t.lookup(pron[:1]).entFreq,
		Initial:      t.lookup(initial).entFreq,
		OnsetNucleus: t.lookup(onsetNuc).entFreq,
		Final:        series[len(series)-1],
	}
}

func surprisalProfile(series []float64) SurprisalProfile {
	if len(series) == 0 {
		nan := math.NaN()
		return SurprisalProfile{Mean: nan, Min: nan, Max: nan}
	}
	return SurprisalProfile{
		Mean: stat.Mean(series, nil),
		Min:  floats.Min(series),
		Max:  floats.Max(series),
	}
}

// computeMetrics derives per-word metrics and the long-format position rows.
// Per-pronunciation work is an independent read-only map over the trie, run
// on a bounded worker pool. Words whose onset consumes the whole
// transcription are excluded from the per-word rows (but kept in the
// position rows) and counted.
func computeMetrics(ix *index, t *trie, vowels map[string]bool, workers int) (words []WordMetrics, positions []PositionRow, malformed int) {
	keys := make([]string, 0, len(ix.prons))
	for key := range ix.prons {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	if workers < 1 {
		workers = 1
	}

	results := make([]*pronMetrics, len(keys))
	var g errgroup.Group
	g.SetLimit(workers)
	for i, key := range keys {
		i, pron := i, ix.prons[key].pron
		g.Go(func() error {
			results[i] = computePronMetrics(t, pron, vowels)
			return nil
		})
	}
	g.Wait()

	byPron := make(map[string]*pronMetrics, len(keys))
	for i, key := range keys {
		byPron[key] = results[i]
	}

	sorted := make([]indexedWord, len(ix.words))
	copy(sorted, ix.words)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := strings.ToLower(sorted[i].text), strings.ToLower(sorted[j].text)
		if a != b {
			return a < b
		}
		return sorted[i].text < sorted[j].text
	})

	words = make([]WordMetrics, 0, len(sorted))
	for _, w := range sorted {
		pm := byPron[w.pron.key()]
		nodes := t.path(w.pron)
		for i, n := range nodes {
			positions = append(positions, PositionRow{
				Word:             w.text,
				Pronunciation:    w.pron,
				Prefix:           w.pron[:i+1].String(),
				Position:         i + 1,
				EntropyUniform:   n.entUniform,
				EntropyFreq:      n.entFreq,
				SurprisalUniform: n.surUniform,
				SurprisalFreq:    n.surFreq,
			})
		}
		if pm.malformed {
			malformed++
			continue
		}
		words = append(words, WordMetrics{
			Word:             w.text,
			Frequency:        w.rawFreq,
			Pronunciation:    w.pron,
			Length:           len(w.pron),
			UniquenessPoint:  pm.uniqueness,
			First:            w.pron[0],
			Initial:          pm.initial.String(),
			OnsetNucleus:     pm.onsetNuc.String(),
			EntropyUniform:   pm.entUniform,
			EntropyFreq:      pm.entFreq,
			SurprisalUniform: pm.surUniform,
			SurprisalFreq:    pm.surFreq,
		})
	}
	return words, positions, malformed
}
