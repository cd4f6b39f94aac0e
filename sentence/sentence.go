// Package sentence implements the Sentence Tokenizer: the component
// that walks a document's period/question-mark/exclamation-mark
// contexts, annotates the candidate tokens around each one using a
// trained Model, and emits the resulting sentence spans.
package sentence

import (
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/qwwqe/punkt/internal/annotate"
	"github.com/qwwqe/punkt/lexer"
	"github.com/qwwqe/punkt/model"
	"github.com/qwwqe/punkt/params"
	"github.com/qwwqe/punkt/punktlog"
	"github.com/qwwqe/punkt/token"
)

const (
	stateSentEnd = 1 << iota
	stateTokenBeg
	stateCaptureTok
	stateUpdateStart
	stateUpdateReturn
)

// periodSlice is one candidate sentence-ending region: the text from
// the previous region's end up to and including whatever sentence
// ender was found, plus enough bookkeeping for the caller to decide
// where the next sentence should actually begin.
type periodSlice struct {
	text       string
	tokenStart int
	wsStart    int
	sliceEnd   int
	lastLen    int
}

// periodContextTokenizer walks a document emitting the text around
// every potential sentence-ending character, so the caller can
// re-tokenize just that neighborhood at the word level.
type periodContextTokenizer struct {
	doc    string
	pos    int
	params params.Params
}

func newPeriodContextTokenizer(doc string, p params.Params) *periodContextTokenizer {
	return &periodContextTokenizer{doc: doc, params: p}
}

// lookaheadIsToken scans forward from the tokenizer's current position
// to decide whether a sentence-ending character it just consumed is
// actually the end of a larger token (e.g. the "." in a URL). ok is
// false when the ending should instead be treated as the end of the
// current period-context slice.
func (p *periodContextTokenizer) lookaheadIsToken() (pos int, ok bool) {
	i := p.pos

	for i < len(p.doc) {
		cur, size := utf8.DecodeRuneInString(p.doc[i:])

		switch {
		case isSpace(cur):
			return 0, false
		case p.params.SentenceEndings.Contains(cur):
			rest := p.doc[i+size:]
			if len(rest) == 0 {
				return i, true
			}
			nxt, _ := utf8.DecodeRuneInString(rest)
			if isSpace(nxt) || p.params.NonWordChars.Contains(nxt) {
				return i, true
			}
		}

		i += size
	}

	return i, true
}

// next returns the next period-context slice, or ok=false once the
// document is exhausted.
func (p *periodContextTokenizer) next() (ps periodSlice, ok bool) {
	astart := p.pos
	wstart := p.pos
	nstart := p.pos
	state := 0

	returnSlice := func(end, curLen int) (periodSlice, bool) {
		if state&stateUpdateReturn != 0 {
			p.pos = nstart
		}
		return periodSlice{
			text:       p.doc[astart:end],
			tokenStart: nstart,
			wsStart:    wstart,
			sliceEnd:   end,
			lastLen:    curLen,
		}, true
	}

	for p.pos < len(p.doc) {
		cur, size := utf8.DecodeRuneInString(p.doc[p.pos:])

		switch {
		case p.params.SentenceEndings.Contains(cur):
			state |= stateSentEnd
			if state&stateUpdateStart != 0 {
				astart = p.pos
				state &^= stateUpdateStart
			}
			if state&stateCaptureTok != 0 {
				state |= stateUpdateReturn
			}

		case state&stateSentEnd == 0:
			if isSpace(cur) {
				state |= stateUpdateStart
			} else if state&stateUpdateStart != 0 {
				astart = p.pos
				state &^= stateUpdateStart
			}

		case state&stateSentEnd != 0 && state&stateTokenBeg == 0:
			switch {
			case isSpace(cur):
				state |= stateTokenBeg
				wstart = p.pos
			case p.params.NonWordChars.Contains(cur):
				p.pos += size
				nstart = p.pos
				if newPos, ok := p.lookaheadIsToken(); ok {
					// The trailing p.pos += size below still applies after
					// this, matching the reference tokenizer's own extra
					// advance past the already-consumed non-word character.
					p.pos = newPos
				} else {
					return returnSlice(p.pos, size)
				}
			case !p.params.SentenceEndings.Contains(cur):
				state &^= stateSentEnd
			}

		case state&stateSentEnd != 0 && state&stateTokenBeg != 0 && state&stateCaptureTok == 0:
			if !isSpace(cur) {
				nstart = p.pos
				state |= stateCaptureTok
			}

		case state&stateCaptureTok != 0 && isSpace(cur):
			return returnSlice(p.pos, size)
		}

		p.pos += size
	}

	return periodSlice{}, false
}

func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	default:
		return false
	}
}

// Tokenizer is a pull-based sentence boundary detector over a document,
// driven by a trained Model. A Tokenizer is not safe for concurrent use.
type Tokenizer struct {
	doc    string
	model  *model.Model
	params params.Params
	pc     *periodContextTokenizer
	last   int
	logger *zap.Logger
}

// New returns a Tokenizer over doc, using m's learned abbreviations,
// collocations, sentence starters, and orthographic context to decide
// where sentences actually end. Diagnostics are discarded until
// SetLogger is called.
func New(doc string, m *model.Model, p params.Params) *Tokenizer {
	return &Tokenizer{
		doc:    doc,
		model:  m,
		params: p,
		pc:     newPeriodContextTokenizer(doc, p),
		logger: punktlog.Noop(),
	}
}

// SetLogger directs the Tokenizer's diagnostic output to logger.
func (t *Tokenizer) SetLogger(logger *zap.Logger) {
	t.logger = logger
}

// NextOffsets returns the byte range of the next sentence in the
// document, or ok=false once every sentence has been emitted.
func (t *Tokenizer) NextOffsets() (start, end int, ok bool) {
	for {
		ps, ok := t.pc.next()
		if !ok {
			break
		}

		var prv *token.Token
		hasBreak := false

		lex := lexer.New(ps.text, t.params)
		for {
			cur, ok := lex.Next()
			if !ok {
				break
			}

			annotate.FirstPass(&cur, t.model, t.params)

			if prv != nil {
				annotate.SecondPass(&cur, prv, t.model, t.params)
				if prv.Is(token.HasSentenceBreak) {
					hasBreak = true
					break
				}
			}

			prv = &cur
		}

		if hasBreak {
			start := t.last
			if ps.tokenStart == ps.sliceEnd {
				t.last = ps.sliceEnd - ps.lastLen
				t.logger.Debug("sentence boundary found", zap.Int("start", start), zap.Int("end", t.last))
				return start, t.last, true
			}
			t.last = ps.tokenStart
			t.logger.Debug("sentence boundary found", zap.Int("start", start), zap.Int("end", ps.wsStart))
			return start, ps.wsStart, true
		}
	}

	// The period-context scan above only ever exhausts the document
	// (rather than returning early) once pc.pos has reached the very
	// end, at which point whatever trailing text remains after the last
	// confirmed sentence break is itself the final sentence.
	if t.pc.pos == len(t.doc) {
		t.pc.pos++
		return t.last, len(t.doc), true
	}

	return 0, 0, false
}

// Next returns the next sentence in the document as a string slice, or
// ok=false once every sentence has been emitted.
func (t *Tokenizer) Next() (string, bool) {
	start, end, ok := t.NextOffsets()
	if !ok {
		return "", false
	}
	return t.doc[start:end], true
}

// All returns a range-able iterator over every remaining sentence. It
// drains the Tokenizer exactly once, matching the single-pass contract
// of Next.
func (t *Tokenizer) All() func(yield func(string) bool) {
	return func(yield func(string) bool) {
		for {
			s, ok := t.Next()
			if !ok {
				return
			}
			if !yield(s) {
				return
			}
		}
	}
}
