package recommend

import (
	"strings"
	"testing"

	"airbnb-advisor/models"
)

func TestRenderNeighbourhoodPriceComparison(t *testing.T) {
	l := newListing(1, "Harlem", "Private room", 90, 4.5, 50, 320)
	result := &models.RecommendationResult{
		Top:                   []models.ScoredCandidate{{Listing: l}},
		TotalMatches:          1,
		AvgPrice:              90,
		Neighbourhood:         "Harlem",
		NeighbourhoodAvgPrice: floatPtr(100),
	}

	out := Render(result, 20)

	if !strings.Contains(out, "(10.0% below Harlem average)") {
		t.Errorf("missing below-average comparison:\n%s", out)
	}
	if !strings.Contains(out, "Highly Reviewed!") {
		t.Errorf("missing highly-reviewed flag:\n%s", out)
	}
	if !strings.Contains(out, "High Availability!") {
		t.Errorf("missing high-availability flag:\n%s", out)
	}
}

func TestRenderMarketAverageComparison(t *testing.T) {
	l := newListing(1, "Chelsea", "Entire home/apt", 80, 4.0, 5, 100)
	result := &models.RecommendationResult{
		Top:          []models.ScoredCandidate{{Listing: l}},
		TotalMatches: 1,
		AvgPrice:     120,
	}

	out := Render(result, 20)

	if !strings.Contains(out, "($40.00 below market average)") {
		t.Errorf("missing market-average comparison:\n%s", out)
	}
	if strings.Contains(out, "Highly Reviewed!") {
		t.Error("unexpected highly-reviewed flag for 5 reviews vs median 20")
	}
}

func TestRenderConditionalFlags(t *testing.T) {
	l := newListing(1, "Chelsea", "Private room", 100, 4.0, 30, 50)
	l.InstantBookable = "TRUE"
	l.HostIdentityVerified = "verified"
	result := &models.RecommendationResult{
		Top:          []models.ScoredCandidate{{Listing: l}},
		TotalMatches: 1,
		AvgPrice:     100,
	}

	out := Render(result, 20)

	if !strings.Contains(out, "Instant Booking Available") {
		t.Errorf("missing instant-booking flag:\n%s", out)
	}
	if !strings.Contains(out, "Verified Host") {
		t.Errorf("missing verified-host flag:\n%s", out)
	}
}

func TestRenderNoRemainingPromptWhenAllShown(t *testing.T) {
	l := newListing(1, "Chelsea", "Private room", 100, 4.0, 30, 50)
	result := &models.RecommendationResult{
		Top:          []models.ScoredCandidate{{Listing: l}},
		TotalMatches: 1,
		AvgPrice:     100,
	}

	out := Render(result, 20)

	if strings.Contains(out, "more properties matching your criteria") {
		t.Errorf("unexpected remaining-match prompt:\n%s", out)
	}
}
