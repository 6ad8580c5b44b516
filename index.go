package cohort

// PronunciationSource resolves a word to its phonological transcription.
// The second return is false when no transcription is known.
type PronunciationSource interface {
	Pronunciation(word string) (Pronunciation, bool)
}

// FrequencySource resolves a word to its raw corpus frequency. The second
// return is false when the word is absent from the frequency lexicon.
type FrequencySource interface {
	Frequency(word string) (int, bool)
}

// PronunciationMap adapts a plain map to a PronunciationSource.
type PronunciationMap map[string]Pronunciation

func (m PronunciationMap) Pronunciation(word string) (Pronunciation, bool) {
	p, ok := m[word]
	return p, ok
}

// FrequencyMap adapts a plain map to a FrequencySource.
type FrequencyMap map[string]int

func (m FrequencyMap) Frequency(word string) (int, bool) {
	f, ok := m[word]
	return f, ok
}

// indexedWord is one input word that survived lookup, with its raw
// (unsmoothed) frequency. RawFreq is zero for words absent from the
// frequency source.
type indexedWord struct {
	text    string
	pron    Pronunciation
	rawFreq int
}

// pronEntry aggregates the smoothed frequency of every word sharing one
// distinct pronunciation.
type pronEntry struct {
	pron Pronunciation
	freq int64
}

// index maps words to pronunciations and aggregates Laplace-smoothed
// frequencies by distinct pronunciation.
type index struct {
	words   []indexedWord
	prons   map[string]*pronEntry
	missing int // words with no known pronunciation
	skipped int // words with an empty transcription
	noFreq  int // words smoothed to a frequency of 1
}

// buildIndex resolves every word against the two sources. Words without a
// pronunciation are excluded but counted; empty transcriptions signal
// InvalidPronunciationError per word and are likewise skipped. A word absent
// from the frequency source, or present with a zero count, contributes a
// smoothed frequency of 1.
func buildIndex(words []string, prons PronunciationSource, freqs FrequencySource) *index {
	ix := &index{
		prons: make(map[string]*pronEntry),
	}
	for _, w := range words {
		if err := ix.add(w, prons, freqs); err != nil {
			ix.skipped++
		}
	}
	return ix
}

func (ix *index) add(word string, prons PronunciationSource, freqs FrequencySource) error {
	pron, ok := prons.Pronunciation(word)
	if !ok {
		ix.missing++
		return nil
	}
	if len(pron) == 0 {
		return &InvalidPronunciationError{Word: word}
	}

	raw, ok := freqs.Frequency(word)
	smoothed := 1
	if ok && raw > 0 {
		smoothed = raw + 1
	} else {
		raw = 0
		ix.noFreq++
	}

	key := pron.key()
	entry := ix.prons[key]
	if entry == nil {
		entry = &pronEntry{pron: pron}
		ix.prons[key] = entry
	}
	entry.freq += int64(smoothed)

	ix.words = append(ix.words, indexedWord{text: word, pron: pron, rawFreq: raw})
	return nil
}
