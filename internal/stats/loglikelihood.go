// Package stats holds the two Dunning log-likelihood ratio formulas the
// trainer uses to decide whether a token is statistically independent of
// being an abbreviation, collocation, or sentence starter.
package stats

import "math"

// clampProbability keeps a probability argument away from 0 and 1 so
// that Log never sees a non-positive input; real training corpora keep
// every count comfortably inside this range, but degenerate inputs
// (e.g. a one-token document) can push a ratio to exactly 0 or 1.
func clampProbability(p float64) float64 {
	const eps = 1e-9
	switch {
	case p < eps:
		return eps
	case p > 1-eps:
		return 1 - eps
	default:
		return p
	}
}

// AbbreviationLogLikelihood scores how surprising it would be for countAB
// occurrences of "type with period" to arise if having a period were
// statistically independent of being this type. countA is the number of
// occurrences of the type in either form, countB is the number of
// tokens in the whole corpus that have a final period, countAB is the
// number of occurrences of the type with a period, and n is the total
// number of type occurrences in the corpus. Higher is stronger evidence
// of abbreviation-hood.
func AbbreviationLogLikelihood(countA, countB, countAB, n float64) float64 {
	p1 := clampProbability(countB / n)
	p2 := 0.99

	nullH := countAB*math.Log(p1) + (countA-countAB)*math.Log(clampProbability(1-p1))
	altH := countAB*math.Log(p2) + (countA-countAB)*math.Log(1-p2)

	return -2 * (nullH - altH)
}

// CollocationLogLikelihood scores how surprising it would be for countAB
// occurrences of the pair (a, b) to arise if a and b occurred
// independently, given countA occurrences of a, countB occurrences of b,
// and n total observations. The trainer uses the exact same formula for
// collocation acceptance and for sentence-starter acceptance — only the
// meaning of a/b differs (adjacent word pair vs. sentence-break count
// and candidate-starter count).
func CollocationLogLikelihood(countA, countB, countAB, n float64) float64 {
	p := clampProbability(countB / n)
	p1 := clampProbability(countAB / countA)
	p2 := clampProbability((countB - countAB) / (n - countA))

	s1 := countAB*math.Log(p) + (countA-countAB)*math.Log(clampProbability(1-p))
	s2 := (countB-countAB)*math.Log(p) + (n-countA-countB+countAB)*math.Log(clampProbability(1-p))

	var s3, s4 float64
	if countA != countAB {
		s3 = countAB*math.Log(p1) + (countA-countAB)*math.Log(clampProbability(1-p1))
	}
	if countB != countAB {
		s4 = (countB-countAB)*math.Log(p2) + (n-countA-countB+countAB)*math.Log(clampProbability(1-p2))
	}

	return -2 * (s1 + s2 - s3 - s4)
}
