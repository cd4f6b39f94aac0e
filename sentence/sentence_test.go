package sentence

import (
	"testing"

	"github.com/qwwqe/punkt/model"
	"github.com/qwwqe/punkt/params"
	"github.com/qwwqe/punkt/trainer"
)

func trainedOn(doc string) *model.Model {
	m := model.New()
	tr := trainer.New(params.Standard())
	tr.Train(doc, m)
	tr.Finalize(m)
	return m
}

func collectSentences(doc string) []string {
	m := trainedOn(doc)
	tok := New(doc, m, params.Standard())

	var out []string
	for {
		s, ok := tok.Next()
		if !ok {
			break
		}
		out = append(out, s)
	}
	return out
}

// https://github.com/ferristseng/rust-punkt/issues/5
func TestSplitsTwoSimpleSentences(t *testing.T) {
	doc := "this is a great sentence! this is a sad sentence."
	got := collectSentences(doc)
	want := []string{"this is a great sentence!", "this is a sad sentence."}

	if len(got) != len(want) {
		t.Fatalf("collectSentences(%q) = %v; want %v", doc, got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("collectSentences(%q)[%d] = %q; want %q", doc, i, got[i], want[i])
		}
	}
}

// https://github.com/ferristseng/rust-punkt/issues/8
func TestTrailingParenthesisAndEllipsisDoesNotHang(t *testing.T) {
	doc := "this is a great sentence! this is a sad sentence.)..."
	got := collectSentences(doc)

	if len(got) == 0 {
		t.Errorf("collectSentences(%q) produced no sentences", doc)
	}
}

func TestKnownAbbreviationDoesNotSplitSentence(t *testing.T) {
	doc := "Dr. Smith arrived early. Dr. Smith left late. Dr. Smith called ahead."
	m := trainedOn(doc)
	tok := New("Dr. Smith is here.", m, params.Standard())

	got, ok := tok.Next()
	if !ok {
		t.Fatalf("Next() returned ok=false for %q", "Dr. Smith is here.")
	}
	if got != "Dr. Smith is here." {
		t.Errorf("Next() = %q; want the whole sentence kept together, got split at %q", got, got)
	}
}

func TestEmptyDocumentYieldsOneEmptySentence(t *testing.T) {
	m := model.New()
	tok := New("", m, params.Standard())

	got, ok := tok.Next()
	if !ok {
		t.Fatalf("Next() on empty document returned ok=false")
	}
	if got != "" {
		t.Errorf("Next() on empty document = %q; want empty string", got)
	}

	if _, ok := tok.Next(); ok {
		t.Errorf("Next() after the single empty sentence returned ok=true; want exhausted")
	}
}

func TestAllYieldsSameSentencesAsNext(t *testing.T) {
	doc := "One sentence here. Another sentence there."
	m := trainedOn(doc)

	var viaAll []string
	New(doc, m, params.Standard()).All()(func(s string) bool {
		viaAll = append(viaAll, s)
		return true
	})

	viaNext := collectSentences(doc)

	if len(viaAll) != len(viaNext) {
		t.Fatalf("All() produced %v; Next() produced %v", viaAll, viaNext)
	}
	for i := range viaNext {
		if viaAll[i] != viaNext[i] {
			t.Errorf("All()[%d] = %q; Next()[%d] = %q", i, viaAll[i], i, viaNext[i])
		}
	}
}
