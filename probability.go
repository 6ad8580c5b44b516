package cohort

import "math"

// probTolerance is the allowed deviation from 1.0 when validating that a
// distribution is proper.
const probTolerance = 0.000001

// Entropy returns the Shannon entropy over a sequence of outcome
// probabilities. The probabilities must sum to 1.0 within tolerance. A
// single-outcome distribution returns exactly 0.0, never -0.0.
func Entropy(probs []float64, base float64) (float64, error) {
	sum := 0.0
	for _, p := range probs {
		sum += p
	}
	if !(sum > 1.0-probTolerance && sum <= 1.0+probTolerance) {
		return 0, &InvalidDistributionError{Sum: sum}
	}
	if len(probs) == 1 {
		return 0.0, nil
	}
	h := 0.0
	for _, p := range probs {
		h -= p * math.Log(p) / math.Log(base)
	}
	return h, nil
}

// Surprisal returns the surprisal of an event given its conditioning
// context: -(log(event) - log(context)) in the given base. Because only the
// ratio matters, raw counts or frequency sums may be passed directly in
// place of normalized probabilities. Equal event and context return exactly
// 0.0; an event exceeding its context is an improper conditional
// probability.
func Surprisal(event, context, base float64) (float64, error) {
	if event == context {
		return 0.0, nil
	}
	if event > context {
		return 0, &InvalidConditionalProbabilityError{EventValue: event, ContextValue: context}
	}
	return -(math.Log(event) - math.Log(context)) / math.Log(base), nil
}

// NormalizeCounts converts a sequence of counts to probabilities.
func NormalizeCounts(counts []float64) []float64 {
	total := 0.0
	for _, c := range counts {
		total += c
	}
	probs := make([]float64, len(counts))
	for i, c := range counts {
		probs[i] = c / total
	}
	return probs
}

// uniformEntropy is the entropy of a uniform distribution over n outcomes:
// log2(n), with the single-outcome case pinned to exactly 0.0.
func uniformEntropy(n int) float64 {
	if n == 1 {
		return 0.0
	}
	return math.Log2(float64(n))
}
