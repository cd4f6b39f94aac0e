package params

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStandardCharacterClasses(t *testing.T) {
	p := Standard()

	assert.True(t, p.SentenceEndings.Contains('.'))
	assert.True(t, p.NonWordChars.Contains('@'))
	assert.False(t, p.SentenceEndings.Contains('a'))
}

func TestStandardThresholds(t *testing.T) {
	p := Standard()

	assert.Equal(t, 8.0, p.AbbrevUpperBound)
	assert.Equal(t, 0.8, p.CollocationFrequencyLowerBound)
}

func TestCustomParamsOverrideOneField(t *testing.T) {
	p := Standard()
	p.SentenceStarterLowerBound = 35.0

	assert.Equal(t, Standard().AbbrevLowerBound, p.AbbrevLowerBound, "overriding one field must not mutate another")
	assert.Equal(t, 35.0, p.SentenceStarterLowerBound)
}
