// Package token defines the candidate token produced by the word lexer
// and consumed by the trainer and sentence tokenizer.
package token

import "unicode"

// Flag is a bitset of orthographic and lifecycle attributes attached to
// a Token. Mirrors the flag layout used throughout the trainer and
// sentence tokenizer so that classification decisions stay cheap bitwise
// tests rather than repeated string scans.
type Flag uint16

const (
	HasFinalPeriod Flag = 1 << iota
	IsEllipsis
	IsAbbreviation
	HasSentenceBreak
	IsParagraphStart
	IsNewlineStart
	IsUppercase
	IsLowercase
	IsInitial
	IsNumeric
	IsNonPunct
	IsAlphabetic
)

// Token is a single candidate token produced by the word lexer. It keeps
// the original surface slice (for reconstruction and case tests) and a
// normalized, lowercased type string used as the key into the training
// model's frequency tables.
type Token struct {
	surface string
	norm    string // lowercased surface, trailing period preserved
	start   int
	flags   Flag
}

// New builds a Token from a raw surface slice taken from the source
// document at byte offset start. isEllipsis, isParagraphStart, and
// isNewlineStart record context the lexer already knows about the
// token's surroundings and can't cheaply be recovered later.
func New(surface string, start int, isEllipsis, isParagraphStart, isNewlineStart bool) Token {
	if len(surface) == 0 {
		panic("token: New called with empty surface")
	}

	t := Token{surface: surface, start: start}

	if surface[len(surface)-1] == '.' {
		t.flags |= HasFinalPeriod
	}

	if isStrNumeric(surface) {
		t.flags |= IsNumeric
	} else if isStrInitial(surface) {
		t.flags |= IsInitial
	}

	hasPunct := false
	for _, r := range surface {
		switch {
		case unicode.IsLetter(r) || r == '_':
			t.flags |= IsNonPunct
		case !unicode.IsDigit(r):
			hasPunct = true
		}
	}
	if !hasPunct {
		t.flags |= IsAlphabetic
	}

	first := []rune(surface)[0]
	switch {
	case unicode.IsUpper(first):
		t.flags |= IsUppercase
	case unicode.IsLower(first):
		t.flags |= IsLowercase
	}

	if isEllipsis {
		t.flags |= IsEllipsis
	}
	if isParagraphStart {
		t.flags |= IsParagraphStart
	}
	if isNewlineStart {
		t.flags |= IsNewlineStart
	}

	t.norm = lowerASCIIAware(surface)

	return t
}

// Surface returns the original, unmodified slice of the source document
// this token was built from.
func (t Token) Surface() string { return t.surface }

// Start is the byte offset of the token's first byte within the source
// document the lexer was constructed over.
func (t Token) Start() int { return t.start }

// End is the byte offset one past the token's last byte.
func (t Token) End() int { return t.start + len(t.surface) }

// Type returns the normalized form used as a training-model key: the
// lowercased surface, or "##number##" for numeric tokens. It includes a
// trailing period if the token has one; use TypeWithoutPeriod to strip
// it.
func (t Token) Type() string {
	if t.Is(IsNumeric) {
		return "##number##"
	}
	return t.norm
}

// TypeWithoutPeriod is Type with any trailing period stripped. This is
// the key used for abbreviation, collocation, sentence-starter, and
// orthographic-context lookups, where "dr" and "dr." must collide.
func (t Token) TypeWithoutPeriod() string {
	typ := t.Type()
	if t.Is(HasFinalPeriod) && typ != "##number##" && len(typ) > 0 {
		return typ[:len(typ)-1]
	}
	return typ
}

// TypeWithPeriod is the canonical "this type, with a period" form,
// regardless of whether this particular token instance actually has a
// trailing period. The trainer uses TypeWithoutPeriod and TypeWithPeriod
// together to look up how often a word has been seen in each form, not
// just the form this instance happens to be.
func (t Token) TypeWithPeriod() string {
	return t.TypeWithoutPeriod() + "."
}

// Is reports whether every bit in f is set.
func (t Token) Is(f Flag) bool { return t.flags&f == f }

// Set mutates the given flag in place. Used by the trainer and sentence
// tokenizer to record decisions (IsAbbreviation, HasSentenceBreak) made
// after the token was constructed.
func (t *Token) Set(f Flag, v bool) {
	if v {
		t.flags |= f
	} else {
		t.flags &^= f
	}
}

// isStrNumeric reports whether tok looks like a number: digits,
// optionally interspersed with commas, periods, or dashes once a digit
// has been seen, or led by a leading '-' and/or up to two leading
// periods or commas.
func isStrNumeric(tok string) bool {
	digitFound := false
	pos := 0

	for _, c := range tok {
		switch {
		case unicode.IsDigit(c):
			digitFound = true
		case (c == ',' || c == '.' || c == '-') && digitFound:
		case (c == ',' || c == '.') && (pos == 0 || pos == 1):
		case c == '-' && pos == 0:
		default:
			return false
		}
		pos++
	}

	return digitFound
}

// isStrInitial reports whether tok is a two-character "letter, period"
// grouping, e.g. "J.".
func isStrInitial(tok string) bool {
	runes := []rune(tok)
	if len(runes) != 2 {
		return false
	}
	return unicode.IsLetter(runes[0]) && runes[1] == '.'
}

// lowerASCIIAware lowercases surface the way the original Rust
// implementation's case-insensitive Hash does: rune-by-rune, not just
// ASCII, so accented letters fold correctly too.
func lowerASCIIAware(surface string) string {
	runes := []rune(surface)
	for i, r := range runes {
		runes[i] = unicode.ToLower(r)
	}
	return string(runes)
}
