// Package trainer implements the Trainer: the component that builds up
// a Training Model's abbreviation, collocation, and sentence-starter
// knowledge by counting tokens across one or more documents.
package trainer

import (
	"math"
	"strings"

	"go.uber.org/zap"

	"github.com/qwwqe/punkt/internal/annotate"
	"github.com/qwwqe/punkt/internal/stats"
	"github.com/qwwqe/punkt/lexer"
	"github.com/qwwqe/punkt/model"
	"github.com/qwwqe/punkt/params"
	"github.com/qwwqe/punkt/punktlog"
	"github.com/qwwqe/punkt/token"
)

// Trainer accumulates training evidence into a Model across one or more
// calls to Train, then promotes that evidence into the Model's
// confirmed abbreviation/collocation/sentence-starter sets when
// Finalize is called. A Trainer holds no state of its own beyond its
// Parameter Set — all accumulated evidence lives in the Model passed
// to Train and Finalize.
type Trainer struct {
	params params.Params
	logger *zap.Logger
}

// New returns a Trainer that uses p to decide tokenization and
// acceptance thresholds. Diagnostics are discarded until SetLogger is
// called.
func New(p params.Params) *Trainer {
	return &Trainer{params: p, logger: punktlog.Noop()}
}

// SetLogger directs the Trainer's diagnostic output (one entry per
// Train and Finalize call) to logger.
func (tr *Trainer) SetLogger(logger *zap.Logger) {
	tr.logger = logger
}

// Train tokenizes doc and folds its evidence into m: type and period
// counts, abbreviation reclassification, orthographic context, and
// collocation/sentence-starter candidate frequencies. Calling Train
// repeatedly with different documents accumulates evidence in m; call
// Finalize once training is complete to derive the confirmed sets.
func (tr *Trainer) Train(doc string, m *model.Model) {
	lex := lexer.New(doc, tr.params)
	var tokens []token.Token
	for {
		tok, ok := lex.Next()
		if !ok {
			break
		}
		tokens = append(tokens, tok)
	}
	if len(tokens) == 0 {
		return
	}

	for _, t := range tokens {
		m.IncrementType(t.Type(), t.Is(token.HasFinalPeriod))
	}

	for i := range tokens {
		score, ok := tr.reclassifyScore(m, &tokens[i])
		if !ok {
			continue
		}

		t := &tokens[i]
		if score >= tr.params.AbbrevLowerBound {
			if t.Is(token.HasFinalPeriod) {
				m.InsertAbbreviation(t.TypeWithoutPeriod())
			}
		} else if !t.Is(token.HasFinalPeriod) {
			m.RemoveAbbreviation(t.TypeWithoutPeriod())
		}
	}

	for i := range tokens {
		annotate.FirstPass(&tokens[i], m, tr.params)
	}

	ctx := model.PositionInternal
	for i := range tokens {
		t := &tokens[i]

		if t.Is(token.IsParagraphStart) && ctx != model.PositionUnknown {
			ctx = model.PositionInitial
		}
		if t.Is(token.IsNewlineStart) && ctx == model.PositionInternal {
			ctx = model.PositionUnknown
		}

		flag := model.OrthoContextFor(ctx, firstCase(t))
		if flag != 0 {
			m.MergeOrthographicContext(t.TypeWithoutPeriod(), flag)
		}

		switch {
		case t.Is(token.HasSentenceBreak):
			if !(t.Is(token.IsNumeric) || t.Is(token.IsInitial)) {
				ctx = model.PositionInitial
			} else {
				ctx = model.PositionUnknown
			}
		case t.Is(token.IsEllipsis) || t.Is(token.IsAbbreviation):
			ctx = model.PositionUnknown
		default:
			ctx = model.PositionInternal
		}
	}

	for _, t := range tokens {
		if t.Is(token.HasSentenceBreak) {
			m.IncrementSentenceBreak()
		}
	}

	for i := 0; i+1 < len(tokens); i++ {
		lt, cur := &tokens[i], &tokens[i+1]
		if !lt.Is(token.HasFinalPeriod) {
			continue
		}

		if tr.isRareAbbrevType(m, lt, cur) {
			m.InsertAbbreviation(lt.TypeWithoutPeriod())
		}
		if isPotentialSentenceStarter(cur, lt) {
			m.IncrementSentenceStarter(cur.TypeWithoutPeriod())
		}
		if tr.isPotentialCollocation(lt, cur) {
			m.IncrementCollocation(lt.TypeWithoutPeriod(), cur.TypeWithoutPeriod())
		}
	}

	tr.logger.Debug("trained on document", zap.Int("tokens", len(tokens)))
}

// Finalize derives m's confirmed collocation and sentence-starter sets
// from the candidate frequencies accumulated by every prior call to
// Train. It does not touch the underlying frequency tables, so Train
// may be called again afterward (e.g. to fold in a new document) and
// Finalize called again to re-derive. Finalize only adds to the two
// sets: entries already present are kept even if they no longer pass
// the thresholds, and the abbreviation set is left as Train left it.
func (tr *Trainer) Finalize(m *model.Model) {
	total := float64(m.TotalTypeCount())
	sentenceBreaks := float64(m.SentenceBreakCount())

	for _, typ := range m.CandidateSentenceStarters() {
		ssCount := float64(m.SentenceStarterCount(typ))
		typCount := float64(m.TypeCount(typ+".") + m.TypeCount(typ))

		if typCount < ssCount || sentenceBreaks == 0 {
			continue
		}

		likelihood := stats.CollocationLogLikelihood(sentenceBreaks, typCount, ssCount, total)
		ratio := total / sentenceBreaks

		if likelihood >= tr.params.SentenceStarterLowerBound && ratio > typCount/ssCount {
			m.InsertSentenceStarter(typ)
		}
	}

	for _, pair := range m.CandidateCollocations() {
		left, right := pair[0], pair[1]

		if m.ContainsSentenceStarter(right) {
			continue
		}

		count := float64(m.CollocationCount(left, right))
		leftCount := float64(m.TypeCount(left+".") + m.TypeCount(left))
		rightCount := float64(m.TypeCount(right+".") + m.TypeCount(right))

		if !(leftCount > 1 && rightCount > 1 &&
			tr.params.CollocationFrequencyLowerBound < count &&
			count <= math.Min(leftCount, rightCount)) {
			continue
		}

		likelihood := stats.CollocationLogLikelihood(leftCount, rightCount, count, total)

		if likelihood >= tr.params.CollocationLowerBound && (total/leftCount) > (rightCount/count) {
			m.InsertCollocation(left, right)
		}
	}

	tr.logger.Info("finalized training model", punktlog.TrainingFields(
		0, m.NumAbbreviations(), m.NumCollocations(), m.NumSentenceStarters(),
	)...)
}

// reclassifyScore scores how strongly t's behavior in the corpus
// supports treating it as an abbreviation. ok is false for tokens this
// pass skips outright (pure punctuation, numerics, or types that
// already agree with the model's existing classification).
func (tr *Trainer) reclassifyScore(m *model.Model, t *token.Token) (float64, bool) {
	if !t.Is(token.IsNonPunct) || t.Is(token.IsNumeric) {
		return 0, false
	}

	if t.Is(token.HasFinalPeriod) {
		if m.ContainsAbbreviation(t.TypeWithoutPeriod()) {
			return 0, false
		}
	} else {
		if !m.ContainsAbbreviation(t.TypeWithoutPeriod()) {
			return 0, false
		}
	}

	base := t.TypeWithoutPeriod()
	numPeriods := strings.Count(base, ".") + 1
	numNonperiods := len([]rune(base)) - numPeriods + 1

	countWithPeriod := m.TypeCount(t.TypeWithPeriod())
	countWithoutPeriod := m.TypeCount(t.TypeWithoutPeriod())

	likelihood := stats.AbbreviationLogLikelihood(
		float64(countWithPeriod+countWithoutPeriod),
		float64(m.PeriodTokenCount()),
		float64(countWithPeriod),
		float64(m.TotalTypeCount()),
	)

	fLength := math.Exp(-float64(numNonperiods))

	fPenalty := 0.0
	if !tr.params.IgnoreAbbrevPenalty {
		fPenalty = math.Pow(float64(numNonperiods), -float64(countWithoutPeriod))
	}

	return likelihood * fLength * fPenalty * float64(numPeriods), true
}

// isRareAbbrevType decides whether lt, a period-final token that was
// classified as a sentence break, nonetheless looks like a rarely-used
// abbreviation based on how cur (the token immediately following it)
// behaves.
func (tr *Trainer) isRareAbbrevType(m *model.Model, lt, cur *token.Token) bool {
	if lt.Is(token.IsAbbreviation) || !lt.Is(token.HasSentenceBreak) {
		return false
	}

	base := lt.TypeWithoutPeriod()
	count := float64(m.TypeCount(base+".") + m.TypeCount(base))

	if m.ContainsAbbreviation(base) || count >= tr.params.AbbrevUpperBound {
		return false
	}

	curTyp := cur.TypeWithoutPeriod()
	if len(curTyp) > 0 && tr.params.InternalPunctuation.Contains([]rune(curTyp)[0]) {
		return true
	}

	if cur.Is(token.IsLowercase) {
		ctx := m.OrthographicContext(curTyp)
		return ctx&model.BegUpper != 0 && ctx&model.MidUpper == 0
	}

	return false
}

// isPotentialSentenceStarter reports whether cur, following a sentence
// break at prev, is a candidate for the sentence-starter set.
func isPotentialSentenceStarter(cur, prev *token.Token) bool {
	return prev.Is(token.HasSentenceBreak) &&
		!(prev.Is(token.IsNumeric) || prev.Is(token.IsInitial)) &&
		cur.Is(token.IsAlphabetic)
}

// isPotentialCollocation reports whether the adjacent pair (tok0, tok1)
// is a candidate for the collocation set.
func (tr *Trainer) isPotentialCollocation(tok0, tok1 *token.Token) bool {
	p := tr.params

	if p.IncludeAllCollocations {
		return true
	}
	if p.IncludeAbbrevCollocations && tok0.Is(token.IsAbbreviation) {
		return true
	}
	return tok0.Is(token.HasSentenceBreak) &&
		(tok0.Is(token.IsNumeric) || tok0.Is(token.IsInitial)) &&
		tok0.Is(token.IsNonPunct) && tok1.Is(token.IsNonPunct)
}

func firstCase(t *token.Token) model.LetterCase {
	switch {
	case t.Is(token.IsUppercase):
		return model.CaseUpper
	case t.Is(token.IsLowercase):
		return model.CaseLower
	default:
		return model.CaseUnknown
	}
}
