package models

// Listing represents one cleaned, normalized Airbnb property record
type Listing struct {
	ID                   int64
	Name                 string
	HostName             string
	HostIdentityVerified string // "verified" or other
	NeighbourhoodGroup   string
	Neighbourhood        string
	Lat                  float64
	Lon                  float64
	RoomType             string
	Price                float64 // per night, parsed upstream
	MinimumNights        int
	NumberOfReviews      int
	ReviewRateNumber     float64 // aggregate rating in [0, 5]
	Availability365      int     // days bookable per year
	InstantBookable      string  // literal "TRUE" when instantly bookable
	CancellationPolicy   string
}

// Dataset is the cleaned, read-only table the engine and analytics work on,
// together with the vocabularies and dataset-wide figures computed once at load.
type Dataset struct {
	Listings []*Listing

	// Sorted unique non-empty values, used by the preference extractor.
	Neighbourhoods []string
	RoomTypes      []string

	// Dataset-wide median of NumberOfReviews, used for the "Highly Reviewed" flag.
	MedianReviews float64
}

// NeighbourhoodAvgPrice returns the mean price across the full dataset for one
// neighbourhood, and false when the neighbourhood has no listings.
func (d *Dataset) NeighbourhoodAvgPrice(name string) (float64, bool) {
	var sum float64
	var n int
	for _, l := range d.Listings {
		if l.Neighbourhood == name {
			sum += l.Price
			n++
		}
	}
	if n == 0 {
		return 0, false
	}
	return sum / float64(n), true
}

// NeighbourhoodAvgRating returns the mean rating across the full dataset for
// one neighbourhood, and false when the neighbourhood has no listings.
func (d *Dataset) NeighbourhoodAvgRating(name string) (float64, bool) {
	var sum float64
	var n int
	for _, l := range d.Listings {
		if l.Neighbourhood == name {
			sum += l.ReviewRateNumber
			n++
		}
	}
	if n == 0 {
		return 0, false
	}
	return sum / float64(n), true
}
