package recommend

import (
	"strings"
	"testing"

	"airbnb-advisor/models"
	"airbnb-advisor/utils"
)

func engineFixture() *models.Dataset {
	return &models.Dataset{
		Listings:       filterFixture(),
		Neighbourhoods: []string{"Chelsea", "Harlem", "Williamsburg"},
		RoomTypes:      []string{"Entire home/apt", "Hotel room", "Private room"},
		MedianReviews:  20,
	}
}

func TestRespondFallbackMessageVerbatim(t *testing.T) {
	engine := NewEngine(engineFixture(), 3, utils.NewLogger())

	_, reply := engine.Respond("I have a budget of $10")

	if reply != FallbackMessage {
		t.Errorf("reply = %q, want the fallback message verbatim", reply)
	}
}

func TestRespondBudgetScenario(t *testing.T) {
	engine := NewEngine(engineFixture(), 3, utils.NewLogger())

	prefs, reply := engine.Respond("my budget is $150 per night")

	if prefs.Budget == nil || *prefs.Budget != 150 {
		t.Fatalf("Budget = %v, want 150", prefs.Budget)
	}
	if !strings.Contains(reply, "Option 1:") {
		t.Error("reply is missing the first rank label")
	}
	if !strings.Contains(reply, "Option 3:") {
		t.Error("reply is missing the third rank label")
	}
	// Four listings are ≤ $150; three shown, one remaining.
	if !strings.Contains(reply, "I found 1 more properties matching your criteria.") {
		t.Errorf("reply is missing the remaining-match count:\n%s", reply)
	}
}

func TestRespondNeighbourhoodInsight(t *testing.T) {
	engine := NewEngine(engineFixture(), 3, utils.NewLogger())

	prefs, reply := engine.Respond("somewhere in the harlem area")

	if prefs.Neighbourhood == nil || *prefs.Neighbourhood != "Harlem" {
		t.Fatalf("Neighbourhood = %v, want Harlem", prefs.Neighbourhood)
	}
	// Harlem listings rate 4.5 and 3.5 across the full dataset.
	if !strings.Contains(reply, "Market Insight: Harlem has an average rating of 4.0/5") {
		t.Errorf("reply is missing the market insight line:\n%s", reply)
	}
}

func TestRespondResetsPreferencesEachTurn(t *testing.T) {
	engine := NewEngine(engineFixture(), 3, utils.NewLogger())

	first, _ := engine.Respond("my budget is $150")
	if first.Budget == nil {
		t.Fatal("first turn did not set a budget")
	}

	second, _ := engine.Respond("somewhere in the harlem area")
	if second.Budget != nil {
		t.Errorf("budget leaked across turns: %v", *second.Budget)
	}
}

func TestRecommendTotalMatchesPreTruncation(t *testing.T) {
	engine := NewEngine(engineFixture(), 3, utils.NewLogger())

	result, ok := engine.Recommend(&models.PreferenceRecord{})
	if !ok {
		t.Fatal("expected a result for empty preferences")
	}
	if result.TotalMatches != 5 {
		t.Errorf("TotalMatches = %d, want 5", result.TotalMatches)
	}
	if len(result.Top) != 3 {
		t.Errorf("len(Top) = %d, want 3", len(result.Top))
	}
}
