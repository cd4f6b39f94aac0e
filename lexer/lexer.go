// Package lexer implements the Word Lexer: a single-pass, lazy
// tokenizer that walks a document and emits candidate tokens, splitting
// ellipsis and dash runs ("...", "--") into their own tokens and
// rolling back a trailing comma rather than folding it into the
// preceding word.
package lexer

import (
	"unicode"
	"unicode/utf8"

	"github.com/qwwqe/punkt/params"
	"github.com/qwwqe/punkt/token"
)

const (
	stateNewlineStart = 1 << iota
	stateParagraphStart
	stateCaptureStart
	stateCaptureComma
)

// Lexer is a pull-based, single-pass tokenizer over a document. A Lexer
// is not safe for concurrent use and can't be restarted once exhausted.
type Lexer struct {
	doc    string
	pos    int
	params params.Params
}

// New returns a Lexer over doc, using p to decide which characters can
// start, continue, or never appear in a word.
func New(doc string, p params.Params) *Lexer {
	return &Lexer{doc: doc, params: p}
}

// Next returns the next token in the document, and false once the
// document is exhausted.
func (l *Lexer) Next() (token.Token, bool) {
	state := 0
	if l.pos == 0 {
		state = stateNewlineStart
	}
	start := l.pos
	isEllipsis := false

	returnToken := func() (token.Token, bool) {
		if state&stateCaptureComma != 0 {
			l.pos--
		}
		tok := token.New(
			l.doc[start:l.pos],
			start,
			isEllipsis,
			state&stateParagraphStart != 0,
			state&stateNewlineStart != 0,
		)
		return tok, true
	}

	for l.pos < len(l.doc) {
		cur, size := utf8.DecodeRuneInString(l.doc[l.pos:])

		if cur == '.' || cur == '-' {
			if s := multiCharRun(l.doc, l.pos); s != "" {
				if state&stateCaptureStart != 0 || state&stateCaptureComma != 0 {
					return returnToken()
				}
				start = l.pos
				isEllipsis = s[len(s)-1] == '.'
				l.pos += len(s)
				return returnToken()
			}
		}

		switch {
		case state&stateCaptureStart != 0:
			switch {
			case isSpace(cur) || l.params.NonWordChars.Contains(cur):
				return returnToken()
			case isAlphanumeric(cur):
				state &^= stateCaptureComma
			case cur == ',':
				state |= stateCaptureComma
			default:
				state &^= stateCaptureComma
			}
		case state&stateCaptureStart == 0 && !isSpace(cur) && !l.params.NonPrefixChars.Contains(cur):
			start = l.pos
			state |= stateCaptureStart
		case !isSpace(cur):
			start = l.pos
			l.pos += size
			return returnToken()
		case cur == '\n' && state&stateNewlineStart == 0:
			state |= stateNewlineStart
		case cur == '\n':
			state |= stateParagraphStart
		}

		l.pos += size
	}

	if state&stateCaptureStart != 0 {
		return returnToken()
	}

	return token.Token{}, false
}

// All returns a range-able iterator over every remaining token. It
// drains the Lexer exactly once, matching the single-pass contract of
// Next.
func (l *Lexer) All() func(yield func(token.Token) bool) {
	return func(yield func(token.Token) bool) {
		for {
			tok, ok := l.Next()
			if !ok {
				return
			}
			if !yield(tok) {
				return
			}
		}
	}
}

func isSpace(r rune) bool { return unicode.IsSpace(r) }

func isAlphanumeric(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// multiCharRun reports the run of a repeated '.' or '-' (and the
// interspersed single spaces of a spaced-out ellipsis like ". . .")
// starting at doc[start], or "" if no such run exists. Operates on raw
// bytes: every character this function cares about ('.', '-', ' ') is
// single-byte ASCII, so scanning byte-by-byte never misinterprets a
// multi-byte rune.
func multiCharRun(doc string, start int) string {
	end := start + 1
	prv := doc[start]

	for end < len(doc) {
		c := doc[end]

		switch {
		case c == '-' && prv == '-':
		case c == '.' && (prv == '.' || prv == ' '):
		case c == ' ' && prv == '.':
		default:
			if prv == ' ' {
				end--
			}
			if end-start > 1 {
				return doc[start:end]
			}
			return ""
		}

		prv = c
		end++
	}

	if prv == ' ' {
		end--
	}
	if end-start > 1 {
		return doc[start:end]
	}
	return ""
}
