// Package punkt implements the Kiss-Strunk Punkt algorithm for
// unsupervised sentence-boundary detection: a Trainer learns a
// document's abbreviations, collocations, and sentence starters into a
// Model, and a sentence Tokenizer then uses that Model to split
// documents into sentences.
package punkt

import (
	"github.com/qwwqe/punkt/data/english"
	"github.com/qwwqe/punkt/model"
	"github.com/qwwqe/punkt/params"
	"github.com/qwwqe/punkt/sentence"
	"github.com/qwwqe/punkt/trainer"
)

// Re-exported so callers of this package don't need to import the
// sub-packages directly for the common case.
type (
	Trainer   = trainer.Trainer
	Model     = model.Model
	Tokenizer = sentence.Tokenizer
	Params    = params.Params
)

// NewTrainer returns a Trainer configured with p.
func NewTrainer(p Params) *Trainer { return trainer.New(p) }

// NewModel returns an empty, untrained Model.
func NewModel() *Model { return model.New() }

// NewTokenizer returns a Tokenizer over doc driven by m.
func NewTokenizer(doc string, m *Model, p Params) *Tokenizer {
	return sentence.New(doc, m, p)
}

// Standard returns the NLTK-derived default Parameter Set.
func Standard() Params { return params.Standard() }

// EnglishModel returns a Model seeded with pretrained English
// abbreviations, collocations, and sentence starters, so callers don't
// have to train one from their own corpus before tokenizing.
func EnglishModel() (*Model, error) { return english.Load() }

// TokenizeSelfTrained trains a Model on doc itself and immediately
// tokenizes it into sentences, the common case where a caller has no
// separate training corpus and doc is representative enough of its own
// abbreviations and collocations to be trained on directly.
func TokenizeSelfTrained(doc string, p Params) []string {
	m := NewModel()
	tr := NewTrainer(p)
	tr.Train(doc, m)
	tr.Finalize(m)

	tok := NewTokenizer(doc, m, p)
	var sentences []string
	for {
		s, ok := tok.Next()
		if !ok {
			break
		}
		sentences = append(sentences, s)
	}
	return sentences
}
