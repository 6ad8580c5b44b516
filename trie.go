package cohort

import "sort"

// node is one prefix in the trie. The root node is the empty prefix, whose
// cohort is every distinct pronunciation in the index.
type node struct {
	symbol   string
	children map[string]*node
	count    int        // distinct pronunciations sharing this prefix
	freq     int64      // summed smoothed frequency of those pronunciations
	memFreqs []float64  // per-member smoothed frequencies, for the weighted entropy
	terminal *pronEntry // pronunciation ending exactly here, if any

	// per-prefix statistics, filled in by computeStats
	entUniform float64
	entFreq    float64
	surUniform float64
	surFreq    float64
}

func newNode(symbol string) *node {
	return &node{
		symbol:   symbol,
		children: make(map[string]*node),
	}
}

// trie indexes a set of distinct pronunciations by every prefix, including
// the empty prefix at the root. It is built once and read-only afterwards.
type trie struct {
	root     *node
	prefixes int // nodes in the trie, root included
}

// buildTrie registers every distinct pronunciation of the index under each
// of its prefixes, accumulating member counts and frequency sums along the
// way.
func buildTrie(ix *index) *trie {
	t := &trie{root: newNode(""), prefixes: 1}
	for _, entry := range ix.prons {
		t.insert(entry)
	}
	return t
}

func (t *trie) insert(entry *pronEntry) {
	f := float64(entry.freq)
	n := t.root
	n.count++
	n.freq += entry.freq
	n.memFreqs = append(n.memFreqs, f)

	for _, sym := range entry.pron {
		child := n.children[sym]
		if child == nil {
			child = newNode(sym)
			n.children[sym] = child
			t.prefixes++
		}
		child.count++
		child.freq += entry.freq
		child.memFreqs = append(child.memFreqs, f)
		n = child
	}
	n.terminal = entry
}

// lookup walks the trie along a prefix, returning nil if unseen.
func (t *trie) lookup(prefix Pronunciation) *node {
	n := t.root
	for _, sym := range prefix {
		n = n.children[sym]
		if n == nil {
			return nil
		}
	}
	return n
}

// path returns the node at every prefix of a pronunciation, in order. The
// root is not included. Returns nil if the pronunciation was never inserted.
func (t *trie) path(pron Pronunciation) []*node {
	nodes := make([]*node, 0, len(pron))
	n := t.root
	for _, sym := range pron {
		n = n.children[sym]
		if n == nil {
			return nil
		}
		nodes = append(nodes, n)
	}
	return nodes
}

// countOf returns the number of distinct pronunciations sharing the prefix,
// zero if the prefix is unseen.
func (t *trie) countOf(prefix Pronunciation) int {
	n := t.lookup(prefix)
	if n == nil {
		return 0
	}
	return n.count
}

// freqOf returns the summed smoothed frequency of the prefix cohort, zero if
// the prefix is unseen.
func (t *trie) freqOf(prefix Pronunciation) int64 {
	n := t.lookup(prefix)
	if n == nil {
		return 0
	}
	return n.freq
}

// membersOf returns every distinct pronunciation sharing the prefix, sorted
// by transcription. The result is empty for unseen prefixes.
func (t *trie) membersOf(prefix Pronunciation) []Pronunciation {
	n := t.lookup(prefix)
	if n == nil {
		return nil
	}
	var members []Pronunciation
	n.walk(func(nd *node) {
		if nd.terminal != nil {
			members = append(members, nd.terminal.pron)
		}
	})
	sort.Slice(members, func(i, j int) bool {
		return members[i].String() < members[j].String()
	})
	return members
}

// walk visits the subtree rooted at n in depth-first order.
func (n *node) walk(visit func(*node)) {
	visit(n)
	for _, child := range n.children {
		child.walk(visit)
	}
}
