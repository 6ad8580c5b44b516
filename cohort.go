package cohort

import (
	"errors"
	"runtime"
	"sort"
)

// DefaultVowels returns the vowel symbols of the one-character transcription
// alphabet used by the pronunciation CSVs this package was written against.
// Check it against your stimuli list; supply your own set with WithVowels
// when using a different phoneme inventory.
func DefaultVowels() []string {
	return []string{
		"8", "@", "o", "O", "Y", "W", "a", "A",
		"e", "E", "i", "I", "V", "u", "U", "R",
	}
}

type Config struct {
	Vowels  []string
	Workers int
}

func DefaultConfig() *Config {
	return &Config{
		Vowels:  DefaultVowels(),
		Workers: runtime.NumCPU(),
	}
}

type Option func(*Config)

// WithVowels sets the vowel symbols used for onset and nucleus detection.
func WithVowels(vowels []string) Option {
	return func(c *Config) {
		c.Vowels = vowels
	}
}

// WithWorkers bounds the worker pool for the per-word aggregation pass.
func WithWorkers(n int) Option {
	return func(c *Config) {
		if n > 0 {
			c.Workers = n
		}
	}
}

// Diagnostics reports the aggregate counts of one analysis run. Per-word
// problems are tallied here rather than aborting the run.
type Diagnostics struct {
	Words                int // words indexed with a usable pronunciation
	MissingPronunciation int // words excluded for lack of a transcription
	SkippedWords         int // words excluded for an empty transcription
	NoFrequency          int // words smoothed to a frequency of 1
	MalformedOnsets      int // words excluded from per-word metrics, onset had no nucleus
	Pronunciations       int // distinct pronunciations
	Prefixes             int // distinct prefixes, empty prefix included
}

// Member is one pronunciation in a prefix cohort, with its aggregated
// smoothed frequency.
type Member struct {
	Pronunciation Pronunciation
	Frequency     int64
}

// Cohort describes the set of pronunciations sharing one prefix.
type Cohort struct {
	Prefix Pronunciation
	PrefixStats
	Members []Member
}

// Analyzer runs the cohort pipeline: index words by pronunciation, build the
// prefix trie, derive per-prefix entropy and surprisal, and aggregate
// per-word metrics. Build once; every accessor afterwards reads immutable
// results.
type Analyzer struct {
	config *Config
	vowels map[string]bool

	index     *index
	trie      *trie
	prefixes  []PrefixStats
	words     []WordMetrics
	positions []PositionRow
	malformed int
	built     bool
}

func NewAnalyzer(opts ...Option) *Analyzer {
	config := DefaultConfig()
	for _, opt := range opts {
		opt(config)
	}

	vowels := make(map[string]bool, len(config.Vowels))
	for _, v := range config.Vowels {
		vowels[v] = true
	}

	return &Analyzer{
		config: config,
		vowels: vowels,
	}
}

// Build runs the whole pipeline over a static snapshot of the input. Words
// with per-word problems are skipped and counted; a monotonicity violation
// aborts with InvalidConditionalProbabilityError.
func (a *Analyzer) Build(words []string, prons PronunciationSource, freqs FrequencySource) error {
	if a.built {
		return errors.New("analyzer already built")
	}

	a.index = buildIndex(words, prons, freqs)
	a.trie = buildTrie(a.index)
	if err := computeStats(a.trie); err != nil {
		return err
	}
	a.prefixes = collectPrefixStats(a.trie)
	a.words, a.positions, a.malformed = computeMetrics(a.index, a.trie, a.vowels, a.config.Workers)
	a.built = true
	return nil
}

// PrefixStats returns the per-prefix statistics, sorted lexicographically by
// prefix. The empty prefix sorts first.
func (a *Analyzer) PrefixStats() []PrefixStats {
	return a.prefixes
}

// WordMetrics returns the per-word summary rows, sorted case-insensitively
// by word.
func (a *Analyzer) WordMetrics() []WordMetrics {
	return a.words
}

// Positions returns the long-format per-phoneme-position rows, in the same
// word order as WordMetrics.
func (a *Analyzer) Positions() []PositionRow {
	return a.positions
}

// Diagnostics returns the aggregate counts of the run. Call after Build.
func (a *Analyzer) Diagnostics() Diagnostics {
	d := Diagnostics{
		MalformedOnsets: a.malformed,
	}
	if a.index != nil {
		d.Words = len(a.index.words)
		d.MissingPronunciation = a.index.missing
		d.SkippedWords = a.index.skipped
		d.NoFrequency = a.index.noFreq
		d.Pronunciations = len(a.index.prons)
	}
	if a.trie != nil {
		d.Prefixes = a.trie.prefixes
	}
	return d
}

// CountOf returns the number of distinct pronunciations sharing the prefix.
func (a *Analyzer) CountOf(prefix Pronunciation) int {
	if a.trie == nil {
		return 0
	}
	return a.trie.countOf(prefix)
}

// MembersOf returns the distinct pronunciations sharing the prefix, sorted
// by transcription.
func (a *Analyzer) MembersOf(prefix Pronunciation) []Pronunciation {
	if a.trie == nil {
		return nil
	}
	return a.trie.membersOf(prefix)
}

// CohortOf returns the full cohort at a prefix: its statistics and members
// sorted by descending frequency. The second return is false for prefixes
// not in the trie.
func (a *Analyzer) CohortOf(prefix Pronunciation) (Cohort, bool) {
	if a.trie == nil {
		return Cohort{}, false
	}
	n := a.trie.lookup(prefix)
	if n == nil {
		return Cohort{}, false
	}

	var members []Member
	n.walk(func(nd *node) {
		if nd.terminal != nil {
			members = append(members, Member{
				Pronunciation: nd.terminal.pron,
				Frequency:     nd.terminal.freq,
			})
		}
	})
	sort.Slice(members, func(i, j int) bool {
		if members[i].Frequency != members[j].Frequency {
			return members[i].Frequency > members[j].Frequency
		}
		return members[i].Pronunciation.String() < members[j].Pronunciation.String()
	})

	return Cohort{
		Prefix: prefix,
		PrefixStats: PrefixStats{
			Prefix:           prefix.String(),
			Count:            n.count,
			Frequency:        n.freq,
			EntropyUniform:   n.entUniform,
			EntropyFreq:      n.entFreq,
			SurprisalUniform: n.surUniform,
			SurprisalFreq:    n.surFreq,
		},
		Members: members,
	}, true
}

// NextSymbols returns the symbols that extend the prefix in the trie, with
// the aggregated frequency behind each extension, sorted by descending
// frequency.
func (a *Analyzer) NextSymbols(prefix Pronunciation) []Member {
	if a.trie == nil {
		return nil
	}
	n := a.trie.lookup(prefix)
	if n == nil {
		return nil
	}
	out := make([]Member, 0, len(n.children))
	for sym, child := range n.children {
		out = append(out, Member{
			Pronunciation: append(append(Pronunciation{}, prefix...), sym),
			Frequency:     child.freq,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Frequency != out[j].Frequency {
			return out[i].Frequency > out[j].Frequency
		}
		return out[i].Pronunciation.String() < out[j].Pronunciation.String()
	})
	return out
}
