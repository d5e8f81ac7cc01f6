package services

import (
	"sort"

	"airbnb-advisor/models"
	"airbnb-advisor/utils"

	"github.com/montanaflynn/stats"
)

// Static centroids for the neighbourhoods the dashboard highlights. Listings
// come without usable coordinates in most published copies of the dataset.
var neighbourhoodCoords = map[string][2]float64{
	"Manhattan":          {40.7831, -73.9712},
	"Brooklyn":           {40.6782, -73.9442},
	"Queens":             {40.7282, -73.7949},
	"Bronx":              {40.8448, -73.8648},
	"Staten Island":      {40.5795, -74.1502},
	"Bushwick":           {40.6950, -73.9171},
	"Williamsburg":       {40.7081, -73.9570},
	"Harlem":             {40.8116, -73.9465},
	"Bedford-Stuyvesant": {40.6872, -73.9417},
	"Hell's Kitchen":     {40.7632, -73.9919},
	"Upper East Side":    {40.7736, -73.9566},
	"East Village":       {40.7265, -73.9815},
	"Upper West Side":    {40.7870, -73.9754},
	"Lower East Side":    {40.7168, -73.9861},
	"Chelsea":            {40.7466, -74.0009},
}

// InsightService computes analytics from the cleaned dataset
type InsightService struct {
	logger *utils.Logger
}

// NewInsightService creates a new InsightService
func NewInsightService(logger *utils.Logger) *InsightService {
	return &InsightService{logger: logger}
}

// Generate computes the market report from a cleaned dataset
func (s *InsightService) Generate(ds *models.Dataset) *models.InsightReport {
	report := &models.InsightReport{MedianReviews: ds.MedianReviews}

	listings := ds.Listings
	if len(listings) == 0 {
		s.logger.Warn("No listings to generate insights from")
		return report
	}

	report.TotalListings = len(listings)

	prices := make([]float64, len(listings))
	availability := make([]float64, len(listings))
	for i, l := range listings {
		prices[i] = l.Price
		availability[i] = float64(l.Availability365)
	}

	report.AveragePrice, _ = stats.Mean(prices)
	report.MinPrice, _ = stats.Min(prices)
	report.MaxPrice, _ = stats.Max(prices)

	// Peak season premium: spread between the price quartiles.
	q25, err25 := stats.Percentile(prices, 25)
	q75, err75 := stats.Percentile(prices, 75)
	if err25 == nil && err75 == nil && q25 > 0 {
		report.PeakSeasonPremium = (q75/q25 - 1) * 100
	}

	// Seasonal volatility: availability spread relative to its mean.
	availMean, _ := stats.Mean(availability)
	availStd, errStd := stats.StandardDeviation(availability)
	if errStd == nil && availMean > 0 {
		report.SeasonalVolatility = availStd / availMean * 100
	}

	report.NeighbourhoodStats = s.neighbourhoodStats(listings)
	report.RoomTypeStats = s.roomTypeStats(listings)
	report.TopRated = topRated(listings, 5)

	return report
}

// neighbourhoodStats aggregates price, availability, reviews and rating per
// neighbourhood, enriched with the static coordinates where known
func (s *InsightService) neighbourhoodStats(listings []*models.Listing) []models.NeighbourhoodStat {
	type acc struct {
		count   int
		price   float64
		avail   float64
		reviews float64
		rating  float64
		minP    float64
		maxP    float64
	}
	byName := make(map[string]*acc)

	for _, l := range listings {
		if l.Neighbourhood == "" {
			continue
		}
		a, ok := byName[l.Neighbourhood]
		if !ok {
			a = &acc{minP: l.Price, maxP: l.Price}
			byName[l.Neighbourhood] = a
		}
		a.count++
		a.price += l.Price
		a.avail += float64(l.Availability365)
		a.reviews += float64(l.NumberOfReviews)
		a.rating += l.ReviewRateNumber
		if l.Price < a.minP {
			a.minP = l.Price
		}
		if l.Price > a.maxP {
			a.maxP = l.Price
		}
	}

	out := make([]models.NeighbourhoodStat, 0, len(byName))
	for name, a := range byName {
		n := float64(a.count)
		stat := models.NeighbourhoodStat{
			Neighbourhood:   name,
			Listings:        a.count,
			AvgPrice:        a.price / n,
			MinPrice:        a.minP,
			MaxPrice:        a.maxP,
			AvgAvailability: a.avail / n,
			AvgReviews:      a.reviews / n,
			AvgRating:       a.rating / n,
		}
		if coords, ok := neighbourhoodCoords[name]; ok {
			stat.Lat, stat.Lon = coords[0], coords[1]
		}
		out = append(out, stat)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Neighbourhood < out[j].Neighbourhood })
	return out
}

// roomTypeStats aggregates price, count and rating per room type
func (s *InsightService) roomTypeStats(listings []*models.Listing) []models.RoomTypeStat {
	type acc struct {
		count  int
		price  float64
		rating float64
	}
	byType := make(map[string]*acc)

	for _, l := range listings {
		if l.RoomType == "" {
			continue
		}
		a, ok := byType[l.RoomType]
		if !ok {
			a = &acc{}
			byType[l.RoomType] = a
		}
		a.count++
		a.price += l.Price
		a.rating += l.ReviewRateNumber
	}

	out := make([]models.RoomTypeStat, 0, len(byType))
	for name, a := range byType {
		n := float64(a.count)
		out = append(out, models.RoomTypeStat{
			RoomType:  name,
			Count:     a.count,
			AvgPrice:  a.price / n,
			AvgRating: a.rating / n,
		})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].RoomType < out[j].RoomType })
	return out
}

// topRated returns the n highest-rated listings with a rating set
func topRated(listings []*models.Listing, n int) []*models.Listing {
	rated := make([]*models.Listing, 0, len(listings))
	for _, l := range listings {
		if l.ReviewRateNumber > 0 {
			rated = append(rated, l)
		}
	}
	sort.SliceStable(rated, func(i, j int) bool {
		return rated[i].ReviewRateNumber > rated[j].ReviewRateNumber
	})
	if len(rated) < n {
		n = len(rated)
	}
	return rated[:n]
}
