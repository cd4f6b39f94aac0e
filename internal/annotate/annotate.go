// Package annotate implements the first- and second-pass annotation
// heuristics shared by the trainer's counting pass and the sentence
// tokenizer: deciding, token by token, whether a period marks an
// abbreviation or a sentence break.
package annotate

import (
	"github.com/qwwqe/punkt/model"
	"github.com/qwwqe/punkt/params"
	"github.com/qwwqe/punkt/token"
)

// FirstPass makes an initial, context-free guess at whether tok carries
// a sentence break: a lone sentence-ending character is always a break;
// a token with a final period is a break unless the model already
// knows it as an abbreviation, in which case it's flagged IsAbbreviation
// instead. Ellipses never trigger this period-based check.
func FirstPass(tok *token.Token, m *model.Model, p params.Params) {
	typ := tok.Type()

	if len([]rune(typ)) == 1 && p.SentenceEndings.Contains([]rune(typ)[0]) {
		tok.Set(token.HasSentenceBreak, true)
		return
	}

	if tok.Is(token.HasFinalPeriod) && !tok.Is(token.IsEllipsis) {
		if m.ContainsAbbreviation(tok.TypeWithoutPeriod()) {
			tok.Set(token.IsAbbreviation, true)
		} else {
			tok.Set(token.HasSentenceBreak, true)
		}
	}
}

// OrthographicHeuristic uses the accumulated orthographic context of
// cur's type to decide whether cur looks like the start of a new
// sentence. ok is false when the context carries no signal either way.
func OrthographicHeuristic(cur *token.Token, m *model.Model, p params.Params) (decision, ok bool) {
	typ := cur.Type()
	if len(typ) > 0 && p.Punctuation.Contains([]rune(typ)[0]) {
		return false, true
	}

	ctx := m.OrthographicContext(cur.TypeWithoutPeriod())

	switch {
	case cur.Is(token.IsUppercase) && ctx&model.OrthoLower != 0 && ctx&model.MidUpper == 0:
		return true, true
	case cur.Is(token.IsLowercase) && (ctx&model.OrthoUpper != 0 || ctx&model.BegLower == 0):
		return false, true
	default:
		return false, false
	}
}

// SecondPass revises prv's IsAbbreviation/HasSentenceBreak flags in
// light of cur, the token that immediately follows it. It must run
// after FirstPass has annotated both tokens.
func SecondPass(cur, prv *token.Token, m *model.Model, p params.Params) {
	if m.ContainsCollocation(prv.TypeWithoutPeriod(), cur.TypeWithoutPeriod()) {
		prv.Set(token.IsAbbreviation, true)
		prv.Set(token.HasSentenceBreak, false)
		return
	}

	if (prv.Is(token.IsAbbreviation) || prv.Is(token.IsEllipsis)) && !prv.Is(token.IsInitial) {
		if dec, ok := OrthographicHeuristic(cur, m, p); ok && dec {
			prv.Set(token.HasSentenceBreak, true)
			return
		}

		if cur.Is(token.IsUppercase) && m.ContainsSentenceStarter(cur.TypeWithoutPeriod()) {
			prv.Set(token.HasSentenceBreak, true)
			return
		}
	}

	if prv.Is(token.IsInitial) || prv.Is(token.IsNumeric) {
		dec, ok := OrthographicHeuristic(cur, m, p)
		decOrTrue := dec
		if !ok {
			decOrTrue = true
		}

		if !decOrTrue {
			prv.Set(token.HasSentenceBreak, false)
			prv.Set(token.IsAbbreviation, true)
			return
		}

		ctx := m.OrthographicContext(cur.TypeWithoutPeriod())

		if !ok && prv.Is(token.IsInitial) && cur.Is(token.IsUppercase) && ctx&model.OrthoLower == 0 {
			prv.Set(token.HasSentenceBreak, false)
			prv.Set(token.IsAbbreviation, true)
		}
	}
}
