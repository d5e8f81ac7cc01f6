package models

import "time"

// ScoredCandidate is a Listing plus the sub-scores and composite score
// computed for one query. Recomputed on every query, never persisted.
type ScoredCandidate struct {
	Listing           *Listing
	ReviewScore       float64 // [0, 5]
	PriceScore        float64 // [0, 1]
	AvailabilityScore float64 // [0, 1]
	TotalScore        float64
}

// RecommendationResult carries the top-ranked candidates plus the aggregate
// figures the renderer needs for price and rating context.
type RecommendationResult struct {
	Top          []ScoredCandidate
	TotalMatches int     // size of the full candidate subset, pre-truncation
	AvgPrice     float64 // mean price of the filtered subset

	// Full-dataset figures for the requested neighbourhood, when one was set.
	NeighbourhoodAvgPrice  *float64
	NeighbourhoodAvgRating *float64
	Neighbourhood          string
}

// InsightReport holds computed analytics from the cleaned dataset
type InsightReport struct {
	TotalListings int
	AveragePrice  float64
	MinPrice      float64
	MaxPrice      float64
	MedianReviews float64

	// Aggregates per neighbourhood and room type.
	NeighbourhoodStats []NeighbourhoodStat
	RoomTypeStats      []RoomTypeStat

	TopRated []*Listing

	// Seasonal metrics derived from the price and availability distributions.
	PeakSeasonPremium  float64 // percent, ((q75/q25)-1)*100
	SeasonalVolatility float64 // percent, std/mean of availability
}

// NeighbourhoodStat aggregates one neighbourhood across the full dataset
type NeighbourhoodStat struct {
	Neighbourhood   string  `json:"neighbourhood"`
	Listings        int     `json:"listings"`
	AvgPrice        float64 `json:"avg_price"`
	MinPrice        float64 `json:"min_price"`
	MaxPrice        float64 `json:"max_price"`
	AvgAvailability float64 `json:"avg_availability"`
	AvgReviews      float64 `json:"avg_reviews"`
	AvgRating       float64 `json:"avg_rating"`
	Lat             float64 `json:"lat,omitempty"`
	Lon             float64 `json:"lon,omitempty"`
}

// RoomTypeStat aggregates one room type across the full dataset
type RoomTypeStat struct {
	RoomType  string  `json:"room_type"`
	Count     int     `json:"count"`
	AvgPrice  float64 `json:"avg_price"`
	AvgRating float64 `json:"avg_rating"`
}

// ForecastPoint is one month of the projected price curve for a neighbourhood
type ForecastPoint struct {
	Date            time.Time `json:"date"`
	Neighbourhood   string    `json:"neighbourhood"`
	ForecastedPrice float64   `json:"forecasted_price"`
	LowerBound      float64   `json:"lower_bound"`
	UpperBound      float64   `json:"upper_bound"`
}

// DemandOutlook summarizes seasonal demand for a filtered market slice
type DemandOutlook struct {
	PeakSeasonPremium  float64 `json:"peak_season_premium"` // percent
	PredictedOccupancy float64 `json:"predicted_occupancy"` // percent
	RelativeDemand     float64 `json:"relative_demand"`     // 100 = market average
	PriceMomentum      float64 `json:"price_momentum"`      // percent vs overall mean
}
