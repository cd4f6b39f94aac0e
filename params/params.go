// Package params defines the Parameter Set that tunes every stage of the
// lexer, trainer, and sentence tokenizer: the character classes that
// shape tokenization, and the statistical thresholds that shape
// abbreviation, collocation, and sentence-starter acceptance.
package params

// Params is a plain value, not a capability interface: callers who want
// a custom configuration copy Standard() and override individual
// fields, the same way the lexer, trainer, and sentence tokenizer
// constructors take Params by value.
type Params struct {
	SentenceEndings      RuneSet
	InternalPunctuation  RuneSet
	NonWordChars         RuneSet
	Punctuation          RuneSet
	NonPrefixChars       RuneSet

	AbbrevLowerBound                float64
	AbbrevUpperBound                float64
	IgnoreAbbrevPenalty             bool
	CollocationLowerBound           float64
	SentenceStarterLowerBound       float64
	IncludeAllCollocations          bool
	IncludeAbbrevCollocations       bool
	CollocationFrequencyLowerBound  float64
}

// RuneSet is a small, hashable character class used for membership
// tests during lexing.
type RuneSet map[rune]struct{}

// NewRuneSet builds a RuneSet from the runes of chars.
func NewRuneSet(chars string) RuneSet {
	set := make(RuneSet, len(chars))
	for _, r := range chars {
		set[r] = struct{}{}
	}
	return set
}

// Contains reports whether r is a member of the set.
func (s RuneSet) Contains(r rune) bool {
	_, ok := s[r]
	return ok
}

// Standard returns the NLTK-derived default Parameter Set.
func Standard() Params {
	return Params{
		SentenceEndings:     NewRuneSet(".!?"),
		InternalPunctuation: NewRuneSet(",:;"),
		NonWordChars:        NewRuneSet(`?!)";}]*:@'({[`),
		Punctuation:         NewRuneSet(";:,.!?"),
		NonPrefixChars:      NewRuneSet("(\"`{[:;&#*@)}]-,"),

		AbbrevLowerBound:               0.3,
		AbbrevUpperBound:               8.0,
		IgnoreAbbrevPenalty:            false,
		CollocationLowerBound:          7.88,
		SentenceStarterLowerBound:      30.0,
		IncludeAllCollocations:         false,
		IncludeAbbrevCollocations:      true,
		CollocationFrequencyLowerBound: 0.8,
	}
}
