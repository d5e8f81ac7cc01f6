package services

import (
	"math"
	"testing"

	"airbnb-advisor/models"
	"airbnb-advisor/utils"
)

func insightsFixture() *models.Dataset {
	return &models.Dataset{
		Listings: []*models.Listing{
			{ID: 1, Name: "A", Neighbourhood: "Harlem", RoomType: "Private room", Price: 100, ReviewRateNumber: 4.0, NumberOfReviews: 10, Availability365: 100},
			{ID: 2, Name: "B", Neighbourhood: "Harlem", RoomType: "Entire home/apt", Price: 100, ReviewRateNumber: 3.0, NumberOfReviews: 20, Availability365: 200},
			{ID: 3, Name: "C", Neighbourhood: "Chelsea", RoomType: "Private room", Price: 200, ReviewRateNumber: 5.0, NumberOfReviews: 30, Availability365: 300},
			{ID: 4, Name: "D", Neighbourhood: "Chelsea", RoomType: "Entire home/apt", Price: 200, ReviewRateNumber: 4.0, NumberOfReviews: 40, Availability365: 200},
		},
		MedianReviews: 25,
	}
}

func TestGeneratePriceOverview(t *testing.T) {
	report := NewInsightService(utils.NewLogger()).Generate(insightsFixture())

	if report.TotalListings != 4 {
		t.Errorf("TotalListings = %d, want 4", report.TotalListings)
	}
	if report.AveragePrice != 150 {
		t.Errorf("AveragePrice = %v, want 150", report.AveragePrice)
	}
	if report.MinPrice != 100 || report.MaxPrice != 200 {
		t.Errorf("price range = [%v, %v], want [100, 200]", report.MinPrice, report.MaxPrice)
	}
	if report.MedianReviews != 25 {
		t.Errorf("MedianReviews = %v, want 25", report.MedianReviews)
	}
	// Quartiles are 100 and 200, so the premium is 100%.
	if math.Abs(report.PeakSeasonPremium-100) > 1e-9 {
		t.Errorf("PeakSeasonPremium = %v, want 100", report.PeakSeasonPremium)
	}
}

func TestGenerateNeighbourhoodStats(t *testing.T) {
	report := NewInsightService(utils.NewLogger()).Generate(insightsFixture())

	if len(report.NeighbourhoodStats) != 2 {
		t.Fatalf("got %d neighbourhood stats, want 2", len(report.NeighbourhoodStats))
	}
	// Sorted by name, so Chelsea first.
	chelsea := report.NeighbourhoodStats[0]
	if chelsea.Neighbourhood != "Chelsea" || chelsea.Listings != 2 {
		t.Fatalf("first stat = %+v, want Chelsea with 2 listings", chelsea)
	}
	if chelsea.AvgPrice != 200 || chelsea.AvgRating != 4.5 {
		t.Errorf("Chelsea avg price/rating = %v/%v, want 200/4.5", chelsea.AvgPrice, chelsea.AvgRating)
	}
	if chelsea.Lat == 0 || chelsea.Lon == 0 {
		t.Error("Chelsea is missing its static coordinates")
	}
}

func TestGenerateRoomTypeStats(t *testing.T) {
	report := NewInsightService(utils.NewLogger()).Generate(insightsFixture())

	if len(report.RoomTypeStats) != 2 {
		t.Fatalf("got %d room type stats, want 2", len(report.RoomTypeStats))
	}
	private := report.RoomTypeStats[1]
	if private.RoomType != "Private room" || private.Count != 2 || private.AvgPrice != 150 {
		t.Errorf("private room stat = %+v, want count 2 and avg price 150", private)
	}
}

func TestGenerateTopRatedOrdering(t *testing.T) {
	report := NewInsightService(utils.NewLogger()).Generate(insightsFixture())

	if len(report.TopRated) != 4 {
		t.Fatalf("got %d top rated, want 4", len(report.TopRated))
	}
	if report.TopRated[0].ID != 3 {
		t.Errorf("top rated = listing %d, want 3", report.TopRated[0].ID)
	}
}

func TestGenerateEmptyDataset(t *testing.T) {
	report := NewInsightService(utils.NewLogger()).Generate(&models.Dataset{})

	if report.TotalListings != 0 {
		t.Errorf("TotalListings = %d, want 0", report.TotalListings)
	}
}
