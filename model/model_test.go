package model

import "testing"

func TestIncrementTypeAndCount(t *testing.T) {
	m := New()

	m.IncrementType("dr.", true)
	m.IncrementType("dr.", true)
	m.IncrementType("dr", false)

	if got, want := m.TypeCount("dr."), 2; got != want {
		t.Errorf("TypeCount(%q) = %d; want %d", "dr.", got, want)
	}
	if got, want := m.PeriodTokenCount(), 2; got != want {
		t.Errorf("PeriodTokenCount() = %d; want %d", got, want)
	}
	if got, want := m.TotalTypeCount(), 3; got != want {
		t.Errorf("TotalTypeCount() = %d; want %d", got, want)
	}
}

func TestAbbreviationInsertRemove(t *testing.T) {
	m := New()

	if !m.InsertAbbreviation("dr") {
		t.Errorf("InsertAbbreviation(%q) = false on first insert; want true", "dr")
	}
	if m.InsertAbbreviation("dr") {
		t.Errorf("InsertAbbreviation(%q) = true on duplicate insert; want false", "dr")
	}
	if !m.ContainsAbbreviation("dr") {
		t.Errorf("ContainsAbbreviation(%q) = false; want true", "dr")
	}
	if !m.RemoveAbbreviation("dr") {
		t.Errorf("RemoveAbbreviation(%q) = false; want true", "dr")
	}
	if m.ContainsAbbreviation("dr") {
		t.Errorf("ContainsAbbreviation(%q) = true after removal; want false", "dr")
	}
}

func TestCollocationLookup(t *testing.T) {
	m := New()

	if m.ContainsCollocation("mr", "smith") {
		t.Errorf("ContainsCollocation(%q, %q) = true before insert; want false", "mr", "smith")
	}

	m.InsertCollocation("mr", "smith")

	if !m.ContainsCollocation("mr", "smith") {
		t.Errorf("ContainsCollocation(%q, %q) = false after insert; want true", "mr", "smith")
	}
	if m.ContainsCollocation("mr", "jones") {
		t.Errorf("ContainsCollocation(%q, %q) = true; want false", "mr", "jones")
	}
}

func TestOrthographicContextMerge(t *testing.T) {
	m := New()

	if got, want := m.OrthographicContext("the"), OrthographicContext(0); got != want {
		t.Errorf("OrthographicContext(%q) = %v before any merge; want %v", "the", got, want)
	}

	m.MergeOrthographicContext("the", BegUpper)
	m.MergeOrthographicContext("the", MidLower)

	if got, want := m.OrthographicContext("the"), BegUpper|MidLower; got != want {
		t.Errorf("OrthographicContext(%q) = %v; want %v", "the", got, want)
	}
}

func TestOrthoContextForKnownCombinations(t *testing.T) {
	cases := []struct {
		pos  OrthographyPosition
		c    LetterCase
		want OrthographicContext
	}{
		{PositionInitial, CaseUpper, BegUpper},
		{PositionInternal, CaseUpper, MidUpper},
		{PositionUnknown, CaseUpper, UnkUpper},
		{PositionInitial, CaseLower, BegLower},
		{PositionInternal, CaseLower, MidLower},
		{PositionUnknown, CaseLower, UnkLower},
	}

	for _, c := range cases {
		if got := OrthoContextFor(c.pos, c.c); got != c.want {
			t.Errorf("OrthoContextFor(%v, %v) = %v; want %v", c.pos, c.c, got, c.want)
		}
	}
}

func TestOrthoContextForUnknownCaseReturnsZero(t *testing.T) {
	if got := OrthoContextFor(PositionInternal, CaseUnknown); got != 0 {
		t.Errorf("OrthoContextFor(PositionInternal, CaseUnknown) = %v; want 0", got)
	}
}
