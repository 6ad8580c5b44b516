package cohort

import (
	"math"
	"testing"
)

// scenarioIndex is the kat/kats/in/into fixture: four distinct
// pronunciations with smoothed frequencies 5, 3, 2 and 1.
func scenarioIndex(t *testing.T) *index {
	t.Helper()
	words := []string{"cat", "cats", "in", "into"}
	prons := PronunciationMap{
		"cat":  SplitPhonemes("kat"),
		"cats": SplitPhonemes("kats"),
		"in":   SplitPhonemes("in"),
		"into": SplitPhonemes("into"),
	}
	freqs := FrequencyMap{
		"cat":  4, // smoothed to 5
		"cats": 2, // smoothed to 3
		"in":   1, // smoothed to 2
		"into": 0, // zero count smooths to 1
	}
	return buildIndex(words, prons, freqs)
}

func TestTrieCounts(t *testing.T) {
	trie := buildTrie(scenarioIndex(t))

	tests := []struct {
		prefix string
		count  int
	}{
		{"", 4},
		{"k", 2},
		{"ka", 2},
		{"kat", 2},
		{"kats", 1},
		{"i", 2},
		{"in", 2},
		{"int", 1},
		{"into", 1},
		{"x", 0},
		{"kax", 0},
	}

	for _, tt := range tests {
		if got := trie.countOf(SplitPhonemes(tt.prefix)); got != tt.count {
			t.Errorf("countOf(%q) = %d, want %d", tt.prefix, got, tt.count)
		}
	}
}

func TestTrieFreqs(t *testing.T) {
	trie := buildTrie(scenarioIndex(t))

	tests := []struct {
		prefix string
		freq   int64
	}{
		{"", 11},
		{"k", 8},
		{"kat", 8},
		{"kats", 3},
		{"i", 3},
		{"in", 3},
		{"into", 1},
		{"q", 0},
	}

	for _, tt := range tests {
		if got := trie.freqOf(SplitPhonemes(tt.prefix)); got != tt.freq {
			t.Errorf("freqOf(%q) = %d, want %d", tt.prefix, got, tt.freq)
		}
	}
}

func TestTrieMembers(t *testing.T) {
	trie := buildTrie(scenarioIndex(t))

	members := trie.membersOf(SplitPhonemes("ka"))
	if len(members) != 2 {
		t.Fatalf("membersOf(ka) returned %d members, want 2", len(members))
	}
	if members[0].String() != "kat" || members[1].String() != "kats" {
		t.Errorf("membersOf(ka) = %v, want [kat kats]", members)
	}

	all := trie.membersOf(nil)
	if len(all) != 4 {
		t.Errorf("membersOf(empty prefix) returned %d members, want 4", len(all))
	}

	if got := trie.membersOf(SplitPhonemes("zz")); got != nil {
		t.Errorf("membersOf(unseen prefix) = %v, want nil", got)
	}
}

func TestTrieMonotonicity(t *testing.T) {
	trie := buildTrie(scenarioIndex(t))

	var check func(n *node, prefix string)
	check = func(n *node, prefix string) {
		for sym, child := range n.children {
			if child.count > n.count {
				t.Errorf("countOf(%q) = %d exceeds parent %q = %d", prefix+sym, child.count, prefix, n.count)
			}
			if child.freq > n.freq {
				t.Errorf("freqOf(%q) = %d exceeds parent %q = %d", prefix+sym, child.freq, prefix, n.freq)
			}
			check(child, prefix+sym)
		}
	}
	check(trie.root, "")
}

func TestComputeStatsUniform(t *testing.T) {
	trie := buildTrie(scenarioIndex(t))
	if err := computeStats(trie); err != nil {
		t.Fatalf("computeStats returned error: %v", err)
	}

	// Four distinct pronunciations at the root.
	if got := trie.root.entUniform; got != 2.0 {
		t.Errorf("root uniform entropy = %v, want 2.0", got)
	}
	if got := trie.root.surUniform; got != 0.0 {
		t.Errorf("root surprisal = %v, want 0.0", got)
	}

	k := trie.lookup(SplitPhonemes("k"))
	if k.entUniform != 1.0 {
		t.Errorf("uniform entropy at k = %v, want 1.0", k.entUniform)
	}
	// Two of four pronunciations continue with k.
	if k.surUniform != 1.0 {
		t.Errorf("uniform surprisal at k = %v, want 1.0", k.surUniform)
	}

	kats := trie.lookup(SplitPhonemes("kats"))
	if kats.entUniform != 0.0 || math.Signbit(kats.entUniform) {
		t.Errorf("uniform entropy at kats = %v, want exactly 0.0", kats.entUniform)
	}
	// kat narrows from 2 candidates to 1.
	if kats.surUniform != 1.0 {
		t.Errorf("uniform surprisal at kats = %v, want 1.0", kats.surUniform)
	}

	// Count unchanged from k to ka, so surprisal is exactly zero.
	ka := trie.lookup(SplitPhonemes("ka"))
	if ka.surUniform != 0.0 || math.Signbit(ka.surUniform) {
		t.Errorf("uniform surprisal at ka = %v, want exactly 0.0", ka.surUniform)
	}
}

func TestComputeStatsFreq(t *testing.T) {
	trie := buildTrie(scenarioIndex(t))
	if err := computeStats(trie); err != nil {
		t.Fatalf("computeStats returned error: %v", err)
	}

	// Root distribution is {5, 3, 2, 1}/11.
	want := 0.0
	for _, f := range []float64{5, 3, 2, 1} {
		p := f / 11
		want -= p * math.Log2(p)
	}
	if got := trie.root.entFreq; math.Abs(got-want) > 1e-12 {
		t.Errorf("root freq entropy = %v, want %v", got, want)
	}

	// k holds 8 of the total 11 frequency mass.
	k := trie.lookup(SplitPhonemes("k"))
	if got, want := k.surFreq, -math.Log2(8.0/11.0); math.Abs(got-want) > 1e-12 {
		t.Errorf("freq surprisal at k = %v, want %v", got, want)
	}

	// Single-member cohorts have exactly zero entropy under both weightings.
	into := trie.lookup(SplitPhonemes("into"))
	if into.entFreq != 0.0 || math.Signbit(into.entFreq) {
		t.Errorf("freq entropy at into = %v, want exactly 0.0", into.entFreq)
	}
}

func TestSurprisalTelescopes(t *testing.T) {
	trie := buildTrie(scenarioIndex(t))
	if err := computeStats(trie); err != nil {
		t.Fatalf("computeStats returned error: %v", err)
	}

	// Summing the frequency-weighted surprisal along a full prefix chain
	// reconstructs -log2(freq(P) / freq("")).
	for _, pron := range []string{"kat", "kats", "in", "into"} {
		p := SplitPhonemes(pron)
		sum := 0.0
		for _, n := range trie.path(p) {
			sum += n.surFreq
		}
		want := -math.Log2(float64(trie.freqOf(p)) / float64(trie.freqOf(nil)))
		if math.Abs(sum-want) > 1e-9 {
			t.Errorf("surprisal sum along %q = %v, want %v", pron, sum, want)
		}
	}
}

func TestCollectPrefixStatsSorted(t *testing.T) {
	trie := buildTrie(scenarioIndex(t))
	if err := computeStats(trie); err != nil {
		t.Fatalf("computeStats returned error: %v", err)
	}

	stats := collectPrefixStats(trie)
	wantOrder := []string{"", "i", "in", "int", "into", "k", "ka", "kat", "kats"}
	if len(stats) != len(wantOrder) {
		t.Fatalf("collectPrefixStats returned %d rows, want %d", len(stats), len(wantOrder))
	}
	for i, ps := range stats {
		if ps.Prefix != wantOrder[i] {
			t.Errorf("stats[%d].Prefix = %q, want %q", i, ps.Prefix, wantOrder[i])
		}
	}
}
