package taxonomy

import (
	"math/rand"
	"slices"
	"testing"
)

func TestToggleAllIsExclusive(t *testing.T) {
	s := Selection{"Retail", Key("Retail", "Bank")}
	s.ToggleAll()
	if !s.IsAll() {
		t.Errorf("Expected {All} but got %v", s)
	}
	s.ToggleAll()
	if len(s) != 0 {
		t.Errorf("Expected empty selection but got %v", s)
	}
}

func TestToggleTypeClearsAllSentinel(t *testing.T) {
	s := DefaultSelection()
	s.ToggleType("Office")
	if s.Contains(All) {
		t.Errorf("All sentinel should be cleared by a type toggle, got %v", s)
	}
	if !s.Contains("Office") || !s.Contains(Key("Office", "Professional")) {
		t.Errorf("Expected Office and its subtypes selected, got %v", s)
	}
}

func TestToggleTypePairRestoresSelection(t *testing.T) {
	s := Selection{"Industrial", Key("Industrial", "Flex")}
	before := s.Clone()
	s.ToggleType("Office")
	s.ToggleType("Office")
	if !slices.Equal(s, before) {
		t.Errorf("Toggle pair should restore %v, got %v", before, s)
	}
}

func TestSubtypeRollUpCommutes(t *testing.T) {
	subs := Subtypes("Retail")
	if len(subs) != 12 {
		t.Fatalf("Expected 12 Retail subtypes, got %d", len(subs))
	}

	direct := Selection{}
	direct.ToggleType("Retail")

	shuffled := slices.Clone(subs)
	rand.New(rand.NewSource(1)).Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	oneByOne := Selection{}
	for _, sub := range shuffled {
		oneByOne.ToggleSubtype("Retail", sub, true)
	}

	slices.Sort(direct)
	slices.Sort(oneByOne)
	if !slices.Equal(direct, oneByOne) {
		t.Errorf("Per-subtype selection %v differs from whole-type selection %v", oneByOne, direct)
	}
}

func TestPartialSubtypesOmitParentKey(t *testing.T) {
	s := Selection{}
	s.ToggleSubtype("Retail", "Bank", true)
	s.ToggleSubtype("Retail", "Restaurant", true)
	if s.Contains("Retail") {
		t.Errorf("Partial subtype selection must not add the bare Retail key: %v", s)
	}
	state := s.TypeState("Retail")
	if state.Checked || !state.Indeterminate {
		t.Errorf("Expected indeterminate, got %+v", state)
	}
}

func TestUncheckingSubtypeRollsParentDown(t *testing.T) {
	s := Selection{}
	s.ToggleType("Hospitality")
	if !s.Contains("Hospitality") {
		t.Fatalf("Expected bare type key after whole-type toggle, got %v", s)
	}
	s.ToggleSubtype("Hospitality", "Extended Stay", false)
	if s.Contains("Hospitality") {
		t.Errorf("Bare type key must go away on partial removal: %v", s)
	}
	state := s.TypeState("Hospitality")
	if !state.Indeterminate {
		t.Errorf("Expected indeterminate after partial removal, got %+v", state)
	}
}

func TestLeafTypeHasNoIndeterminateState(t *testing.T) {
	s := Selection{}
	if got := s.TypeState("Self Storage"); got.Checked || got.Indeterminate {
		t.Errorf("Expected unchecked leaf type, got %+v", got)
	}
	s.ToggleType("Self Storage")
	if got := s.TypeState("Self Storage"); !got.Checked || got.Indeterminate {
		t.Errorf("Expected checked leaf type, got %+v", got)
	}
}
