package cohort

import "strings"

// Pronunciation is an ordered sequence of opaque phoneme symbols. Two words
// with symbol-wise equal pronunciations are homophones and share a single
// entry in all derived structures.
type Pronunciation []string

// SplitPhonemes converts a bare transcription string of one-character
// phoneme codes into a Pronunciation.
func SplitPhonemes(s string) Pronunciation {
	p := make(Pronunciation, 0, len(s))
	for _, r := range s {
		p = append(p, string(r))
	}
	return p
}

// String joins the phoneme symbols with no separator, matching the flat
// transcription form used in tabular output.
func (p Pronunciation) String() string {
	return strings.Join(p, "")
}

// Equal reports symbol-wise equality.
func (p Pronunciation) Equal(o Pronunciation) bool {
	if len(p) != len(o) {
		return false
	}
	for i := range p {
		if p[i] != o[i] {
			return false
		}
	}
	return true
}

// key is the internal map key for a pronunciation. Symbols are joined with a
// separator so multi-character symbols cannot collide.
func (p Pronunciation) key() string {
	return strings.Join(p, "\x1f")
}

// Prefixes returns every non-empty prefix of p in order, ending with p
// itself. An empty pronunciation has no prefixes.
func (p Pronunciation) Prefixes() []Pronunciation {
	out := make([]Pronunciation, len(p))
	for i := range p {
		out[i] = p[:i+1]
	}
	return out
}

// onsetLen returns the length of the word-initial consonant run: the maximal
// prefix containing no symbol from the vowel set. A vowel-initial
// pronunciation has an onset length of zero.
func (p Pronunciation) onsetLen(vowels map[string]bool) int {
	for i, sym := range p {
		if vowels[sym] {
			return i
		}
	}
	return len(p)
}

// initial returns the onset, or the first symbol when the pronunciation
// starts with a vowel.
func (p Pronunciation) initial(vowels map[string]bool) Pronunciation {
	n := p.onsetLen(vowels)
	if n == 0 {
		n = 1
	}
	return p[:n]
}

// onsetNucleus returns the onset plus the first vowel symbol. It fails when
// the onset consumes the entire pronunciation.
func (p Pronunciation) onsetNucleus(vowels map[string]bool) (Pronunciation, error) {
	n := p.onsetLen(vowels)
	if n >= len(p) {
		return nil, &MalformedPronunciationError{Pronunciation: p.String()}
	}
	return p[:n+1], nil
}
