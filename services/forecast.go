package services

import (
	"math"
	"time"

	"airbnb-advisor/models"

	"github.com/montanaflynn/stats"
)

// Forecast tuning: mild seasonal swing on top of a steady upward trend.
const (
	forecastMonths    = 12
	seasonalAmplitude = 0.1
	monthlyTrend      = 0.02
)

// ForecastService projects neighbourhood price curves and demand metrics
type ForecastService struct {
	dataset *models.Dataset
}

// NewForecastService creates a ForecastService over a cleaned dataset
func NewForecastService(dataset *models.Dataset) *ForecastService {
	return &ForecastService{dataset: dataset}
}

// PriceForecast projects a 12-month price curve for each requested
// neighbourhood, starting from the given date. Each month applies a seasonal
// factor and an upward trend to the neighbourhood's mean price; the bounds are
// one standard deviation either side. Neighbourhoods without listings are
// skipped.
func (s *ForecastService) PriceForecast(neighbourhoods []string, from time.Time) []models.ForecastPoint {
	var points []models.ForecastPoint

	for _, name := range neighbourhoods {
		prices := s.pricesFor(name)
		if len(prices) == 0 {
			continue
		}

		base, _ := stats.Mean(prices)
		std, _ := stats.StandardDeviation(prices)

		for i := 0; i < forecastMonths; i++ {
			seasonal := 1 + seasonalAmplitude*math.Sin(2*math.Pi*float64(i)/forecastMonths)
			trend := 1 + monthlyTrend*float64(i)
			price := base * seasonal * trend

			points = append(points, models.ForecastPoint{
				Date:            from.AddDate(0, i+1, 0),
				Neighbourhood:   name,
				ForecastedPrice: price,
				LowerBound:      price - std,
				UpperBound:      price + std,
			})
		}
	}

	return points
}

// DemandOutlook computes seasonal demand metrics for a slice of the market,
// relative to the full dataset
func (s *ForecastService) DemandOutlook(neighbourhoods []string, roomTypes []string) models.DemandOutlook {
	var slicePrices, sliceAvail, sliceReviews []float64
	for _, l := range s.dataset.Listings {
		if len(neighbourhoods) > 0 && !containsString(neighbourhoods, l.Neighbourhood) {
			continue
		}
		if len(roomTypes) > 0 && !containsString(roomTypes, l.RoomType) {
			continue
		}
		slicePrices = append(slicePrices, l.Price)
		sliceAvail = append(sliceAvail, float64(l.Availability365))
		sliceReviews = append(sliceReviews, float64(l.NumberOfReviews))
	}

	var outlook models.DemandOutlook
	if len(slicePrices) == 0 {
		return outlook
	}

	q25, err25 := stats.Percentile(slicePrices, 25)
	q75, err75 := stats.Percentile(slicePrices, 75)
	if err25 == nil && err75 == nil && q25 > 0 {
		outlook.PeakSeasonPremium = (q75/q25 - 1) * 100
	}

	availMean, _ := stats.Mean(sliceAvail)
	outlook.PredictedOccupancy = 100 - availMean/365*100

	var allPrices, allReviews []float64
	for _, l := range s.dataset.Listings {
		allPrices = append(allPrices, l.Price)
		allReviews = append(allReviews, float64(l.NumberOfReviews))
	}

	marketReviews, _ := stats.Mean(allReviews)
	sliceReviewMean, _ := stats.Mean(sliceReviews)
	if marketReviews > 0 {
		outlook.RelativeDemand = sliceReviewMean / marketReviews * 100
	}

	marketMean, _ := stats.Mean(allPrices)
	sliceMean, _ := stats.Mean(slicePrices)
	if marketMean > 0 {
		outlook.PriceMomentum = (sliceMean - marketMean) / marketMean * 100
	}

	return outlook
}

func (s *ForecastService) pricesFor(neighbourhood string) []float64 {
	var prices []float64
	for _, l := range s.dataset.Listings {
		if l.Neighbourhood == neighbourhood {
			prices = append(prices, l.Price)
		}
	}
	return prices
}
