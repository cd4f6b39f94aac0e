package punkt

import "testing"

func TestTokenizeSelfTrainedSplitsSimpleSentences(t *testing.T) {
	doc := "This is sentence one. This is sentence two."
	got := TokenizeSelfTrained(doc, Standard())
	want := []string{"This is sentence one.", "This is sentence two."}

	if len(got) != len(want) {
		t.Fatalf("TokenizeSelfTrained(%q) = %v; want %v", doc, got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("TokenizeSelfTrained(%q)[%d] = %q; want %q", doc, i, got[i], want[i])
		}
	}
}

func TestEnglishModelAndCustomTrainingAgree(t *testing.T) {
	doc := "This is sentence one. This is sentence two."

	m, err := EnglishModel()
	if err != nil {
		t.Fatalf("EnglishModel() returned error: %v", err)
	}

	tok := NewTokenizer(doc, m, Standard())
	var viaEnglish []string
	for {
		s, ok := tok.Next()
		if !ok {
			break
		}
		viaEnglish = append(viaEnglish, s)
	}

	viaSelfTrained := TokenizeSelfTrained(doc, Standard())

	if len(viaEnglish) != len(viaSelfTrained) {
		t.Fatalf("EnglishModel() tokenizer = %v; self-trained = %v", viaEnglish, viaSelfTrained)
	}
	for i := range viaSelfTrained {
		if viaEnglish[i] != viaSelfTrained[i] {
			t.Errorf("EnglishModel() tokenizer[%d] = %q; self-trained[%d] = %q", i, viaEnglish[i], i, viaSelfTrained[i])
		}
	}
}

func TestNewModelStartsEmpty(t *testing.T) {
	m := NewModel()
	if m.NumAbbreviations() != 0 {
		t.Errorf("NewModel().NumAbbreviations() = %d; want 0", m.NumAbbreviations())
	}
}
