package cohort

import "sort"

// PrefixStats is the derived statistics for one prefix cohort. Surprisal is
// relative to the immediate parent prefix; for the empty prefix it is 0 by
// convention.
type PrefixStats struct {
	Prefix           string
	Count            int
	Frequency        int64
	EntropyUniform   float64
	EntropyFreq      float64
	SurprisalUniform float64
	SurprisalFreq    float64
}

// computeStats derives the four per-prefix statistics for every node,
// including the root. Count and frequency monotonicity is checked on the
// way: a child exceeding its parent means the trie was built wrong, and the
// whole run is aborted.
func computeStats(t *trie) error {
	return statsNode(t.root, "", t.root)
}

func statsNode(n *node, prefix string, parent *node) error {
	n.entUniform = uniformEntropy(n.count)

	h, err := Entropy(NormalizeCounts(n.memFreqs), 2)
	if err != nil {
		return err
	}
	n.entFreq = h

	su, err := Surprisal(float64(n.count), float64(parent.count), 2)
	if err != nil {
		return wrapConditional(err, prefix)
	}
	n.surUniform = su

	sf, err := Surprisal(float64(n.freq), float64(parent.freq), 2)
	if err != nil {
		return wrapConditional(err, prefix)
	}
	n.surFreq = sf

	for sym, child := range n.children {
		if err := statsNode(child, prefix+sym, n); err != nil {
			return err
		}
	}
	return nil
}

func wrapConditional(err error, prefix string) error {
	if ce, ok := err.(*InvalidConditionalProbabilityError); ok {
		ce.Prefix = prefix
	}
	return err
}

// collectPrefixStats snapshots every node's statistics, sorted
// lexicographically by prefix. The empty prefix sorts first.
func collectPrefixStats(t *trie) []PrefixStats {
	out := make([]PrefixStats, 0, t.prefixes)
	var collect func(n *node, prefix string)
	collect = func(n *node, prefix string) {
		out = append(out, PrefixStats{
			Prefix:           prefix,
			Count:            n.count,
			Frequency:        n.freq,
			EntropyUniform:   n.entUniform,
			EntropyFreq:      n.entFreq,
			SurprisalUniform: n.surUniform,
			SurprisalFreq:    n.surFreq,
		})
		for sym, child := range n.children {
			collect(child, prefix+sym)
		}
	}
	collect(t.root, "")
	sort.Slice(out, func(i, j int) bool { return out[i].Prefix < out[j].Prefix })
	return out
}
