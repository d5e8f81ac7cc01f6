package recommend

import "airbnb-advisor/models"

func newListing(id int64, neighbourhood, roomType string, price, rating float64, reviews, availability int) *models.Listing {
	return &models.Listing{
		ID:               id,
		Name:             "Test Listing",
		Neighbourhood:    neighbourhood,
		RoomType:         roomType,
		Price:            price,
		ReviewRateNumber: rating,
		NumberOfReviews:  reviews,
		Availability365:  availability,
	}
}

func floatPtr(v float64) *float64 { return &v }

func stringPtr(v string) *string { return &v }
