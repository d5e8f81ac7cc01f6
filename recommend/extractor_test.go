package recommend

import (
	"reflect"
	"testing"
)

func testVocabulary() Vocabulary {
	return Vocabulary{
		Neighbourhoods: []string{"Chelsea", "Harlem", "Williamsburg"},
		RoomTypes:      []string{"Entire home/apt", "Hotel room", "Private room"},
	}
}

func TestExtractQuickInstantBookWithBudget(t *testing.T) {
	e := NewExtractor(testVocabulary())

	prefs := e.Extract("I want a quick instant book under $200")

	if prefs.Budget == nil || *prefs.Budget != 200 {
		t.Errorf("Budget = %v, want 200", prefs.Budget)
	}
	if !prefs.InstantBook {
		t.Error("InstantBook = false, want true")
	}
	if prefs.Neighbourhood != nil {
		t.Errorf("Neighbourhood = %q, want unset", *prefs.Neighbourhood)
	}
	if prefs.RoomType != nil {
		t.Errorf("RoomType = %q, want unset", *prefs.RoomType)
	}
	if prefs.MinRating != nil {
		t.Errorf("MinRating = %v, want unset", *prefs.MinRating)
	}
}

func TestExtractNeighbourhoodSubstring(t *testing.T) {
	e := NewExtractor(testVocabulary())

	prefs := e.Extract("Looking for something in the harlem area")

	if prefs.Neighbourhood == nil || *prefs.Neighbourhood != "Harlem" {
		t.Errorf("Neighbourhood = %v, want Harlem", prefs.Neighbourhood)
	}
}

func TestExtractRoomType(t *testing.T) {
	e := NewExtractor(testVocabulary())

	prefs := e.Extract("I need a Private Room somewhere cheap")

	if prefs.RoomType == nil || *prefs.RoomType != "Private room" {
		t.Errorf("RoomType = %v, want 'Private room'", prefs.RoomType)
	}
}

func TestExtractTriggerWithoutNumberLeavesFieldUnset(t *testing.T) {
	e := NewExtractor(testVocabulary())

	prefs := e.Extract("my budget is flexible")

	if prefs.Budget != nil {
		t.Errorf("Budget = %v, want unset", *prefs.Budget)
	}
}

func TestExtractBudgetAndRatingShareFirstNumber(t *testing.T) {
	// Both scans independently take the first numeric token, so a sentence
	// mentioning a star count and a price attributes the first number to both.
	e := NewExtractor(testVocabulary())

	prefs := e.Extract("at least 4 star rating under $150")

	if prefs.MinRating == nil || *prefs.MinRating != 4 {
		t.Errorf("MinRating = %v, want 4", prefs.MinRating)
	}
	if prefs.Budget == nil || *prefs.Budget != 4 {
		t.Errorf("Budget = %v, want 4 (first numeric token)", prefs.Budget)
	}
}

func TestExtractMinRating(t *testing.T) {
	e := NewExtractor(testVocabulary())

	prefs := e.Extract("show me places with a rating above 4.5")

	if prefs.MinRating == nil || *prefs.MinRating != 4.5 {
		t.Errorf("MinRating = %v, want 4.5", prefs.MinRating)
	}
}

func TestExtractIsIdempotent(t *testing.T) {
	e := NewExtractor(testVocabulary())
	input := "quick private room in chelsea area, budget $120, 4 star rating"

	first := e.Extract(input)
	second := e.Extract(input)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated extraction diverged: %+v vs %+v", first, second)
	}
}

func TestExtractNoTriggersYieldsEmptyRecord(t *testing.T) {
	e := NewExtractor(testVocabulary())

	prefs := e.Extract("hello there")

	if !prefs.IsEmpty() {
		t.Errorf("expected empty preference record, got %+v", prefs)
	}
}
