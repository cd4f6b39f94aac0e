package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAbbreviationLogLikelihoodHigherForRareType(t *testing.T) {
	// A type that almost always appears with a period should score much
	// higher than one that's split roughly evenly.
	rare := AbbreviationLogLikelihood(10, 100, 9, 1000)
	even := AbbreviationLogLikelihood(10, 100, 5, 1000)

	assert.Greater(t, rare, even)
}

func TestCollocationLogLikelihoodSymmetricInputsFinite(t *testing.T) {
	got := CollocationLogLikelihood(50, 50, 40, 10000)

	require.False(t, math.IsNaN(got), "expected a finite number, got NaN")
	require.False(t, math.IsInf(got, 0), "expected a finite number, got Inf")
}

func TestCollocationLogLikelihoodEqualCounts(t *testing.T) {
	// When countA == countAB, s3's branch is skipped entirely (0); this
	// should not panic or produce NaN.
	got := CollocationLogLikelihood(5, 50, 5, 10000)

	assert.False(t, math.IsNaN(got))
}
