package server

import (
	"airbnb-advisor/chat"
	"airbnb-advisor/models"
)

// ChatRequest is the body for POST /api/chat
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse carries the engine's reply plus the preferences it extracted
type ChatResponse struct {
	Reply       string         `json:"reply"`
	Preferences PreferencesDTO `json:"preferences"`
}

// PreferencesDTO mirrors PreferenceRecord with nullable JSON fields
type PreferencesDTO struct {
	Budget        *float64 `json:"budget,omitempty"`
	Neighbourhood *string  `json:"neighbourhood,omitempty"`
	RoomType      *string  `json:"room_type,omitempty"`
	MinRating     *float64 `json:"min_rating,omitempty"`
	InstantBook   bool     `json:"instant_book,omitempty"`
}

func toPreferencesDTO(p *models.PreferenceRecord) PreferencesDTO {
	return PreferencesDTO{
		Budget:        p.Budget,
		Neighbourhood: p.Neighbourhood,
		RoomType:      p.RoomType,
		MinRating:     p.MinRating,
		InstantBook:   p.InstantBook,
	}
}

// AssistantRequest is the body for POST /api/assistant: the caller owns the
// conversation history and sends it whole on every turn
type AssistantRequest struct {
	Messages []chat.Message `json:"messages"`
}

// AssistantResponse carries the LLM assistant's reply
type AssistantResponse struct {
	Reply string `json:"reply"`
}

// ListingDTO is the wire shape of one listing in search results
type ListingDTO struct {
	ID                 int64   `json:"id"`
	Name               string  `json:"name"`
	HostName           string  `json:"host_name,omitempty"`
	Neighbourhood      string  `json:"neighbourhood"`
	NeighbourhoodGroup string  `json:"neighbourhood_group,omitempty"`
	RoomType           string  `json:"room_type"`
	Price              float64 `json:"price"`
	Rating             float64 `json:"rating"`
	Reviews            int     `json:"reviews"`
	Availability365    int     `json:"availability_365"`
	InstantBookable    bool    `json:"instant_bookable"`
	VerifiedHost       bool    `json:"verified_host"`
}

func toListingDTO(l *models.Listing) ListingDTO {
	return ListingDTO{
		ID:                 l.ID,
		Name:               l.Name,
		HostName:           l.HostName,
		Neighbourhood:      l.Neighbourhood,
		NeighbourhoodGroup: l.NeighbourhoodGroup,
		RoomType:           l.RoomType,
		Price:              l.Price,
		Rating:             l.ReviewRateNumber,
		Reviews:            l.NumberOfReviews,
		Availability365:    l.Availability365,
		InstantBookable:    l.InstantBookable == "TRUE",
		VerifiedHost:       l.HostIdentityVerified == "verified",
	}
}

// SearchResponse is a page of search results
type SearchResponse struct {
	Total    int          `json:"total"`
	Listings []ListingDTO `json:"listings"`
}

// MarketResponse is the market analytics payload
type MarketResponse struct {
	TotalListings      int                        `json:"total_listings"`
	AveragePrice       float64                    `json:"average_price"`
	MinPrice           float64                    `json:"min_price"`
	MaxPrice           float64                    `json:"max_price"`
	MedianReviews      float64                    `json:"median_reviews"`
	PeakSeasonPremium  float64                    `json:"peak_season_premium"`
	SeasonalVolatility float64                    `json:"seasonal_volatility"`
	Neighbourhoods     []models.NeighbourhoodStat `json:"neighbourhoods"`
	RoomTypes          []models.RoomTypeStat      `json:"room_types"`
}

// ForecastResponse carries the projected price curve and demand outlook
type ForecastResponse struct {
	Points  []models.ForecastPoint `json:"points"`
	Outlook models.DemandOutlook   `json:"outlook"`
}
