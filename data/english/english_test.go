package english

import "testing"

func TestLoadKnowsCommonAbbreviations(t *testing.T) {
	m, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	for _, abbrev := range []string{"mr", "dr", "etc", "jan"} {
		if !m.ContainsAbbreviation(abbrev) {
			t.Errorf("Load() model does not contain abbreviation %q", abbrev)
		}
	}
}

func TestLoadKnowsSentenceStarters(t *testing.T) {
	m, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if !m.ContainsSentenceStarter("however") {
		t.Errorf("Load() model does not contain sentence starter %q", "however")
	}
}

func TestLoadReturnsFreshModelEachCall(t *testing.T) {
	a, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	b, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	a.InsertAbbreviation("scratch")
	if b.ContainsAbbreviation("scratch") {
		t.Errorf("Load() models are unexpectedly sharing state")
	}
}
