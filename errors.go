package cohort

import "fmt"

// InvalidPronunciationError is reported when a word maps to a zero-length
// transcription. The word is skipped; the rest of the run continues.
type InvalidPronunciationError struct {
	Word string
}

func (e *InvalidPronunciationError) Error() string {
	return fmt.Sprintf("invalid pronunciation for %q: empty transcription", e.Word)
}

// MalformedPronunciationError is reported when onset detection consumes an
// entire pronunciation, leaving no nucleus. The affected word is excluded
// from the per-word metrics; other words are unaffected.
type MalformedPronunciationError struct {
	Pronunciation string
}

func (e *MalformedPronunciationError) Error() string {
	return fmt.Sprintf("malformed pronunciation %q: onset consumes the whole transcription", e.Pronunciation)
}

// InvalidConditionalProbabilityError is reported when a prefix has a larger
// count or frequency than its parent. Trie construction guarantees this
// cannot happen, so it aborts the whole run.
type InvalidConditionalProbabilityError struct {
	Prefix       string
	EventValue   float64
	ContextValue float64
}

func (e *InvalidConditionalProbabilityError) Error() string {
	return fmt.Sprintf("improper conditional probability at prefix %q: event %v > context %v",
		e.Prefix, e.EventValue, e.ContextValue)
}

// InvalidDistributionError is reported when a probability distribution does
// not sum to 1.0 within tolerance.
type InvalidDistributionError struct {
	Sum float64
}

func (e *InvalidDistributionError) Error() string {
	return fmt.Sprintf("sum of probabilities is %v, not 1.0", e.Sum)
}
