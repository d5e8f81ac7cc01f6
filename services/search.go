package services

import (
	"sort"

	"airbnb-advisor/models"
)

// Sort modes for search results.
const (
	SortPriceAsc    = "price_asc"
	SortPriceDesc   = "price_desc"
	SortMostPopular = "most_popular"
	SortBestRated   = "best_rated"
)

// SearchQuery holds the property-search filters. Empty slices and zero values
// impose no constraint, mirroring how the recommendation filter treats unset
// preferences.
type SearchQuery struct {
	Neighbourhoods []string
	RoomTypes      []string
	PriceMin       float64
	PriceMax       float64 // 0 means unbounded
	MinRating      float64
	MinReviews     int
	VerifiedOnly   bool
	InstantBook    bool
	SortBy         string
	Offset         int
	Limit          int // 0 means no limit
}

// SearchResult is a page of matching listings plus the pre-paging total
type SearchResult struct {
	Listings []*models.Listing
	Total    int
}

// SearchService filters and sorts listings for the property-search surface
type SearchService struct {
	dataset *models.Dataset
}

// NewSearchService creates a SearchService over a cleaned dataset
func NewSearchService(dataset *models.Dataset) *SearchService {
	return &SearchService{dataset: dataset}
}

// Search applies the query filters, sorts and pages the results
func (s *SearchService) Search(q SearchQuery) SearchResult {
	var matched []*models.Listing
	for _, l := range s.dataset.Listings {
		if matchesQuery(l, q) {
			matched = append(matched, l)
		}
	}

	sortListings(matched, q.SortBy)

	total := len(matched)
	start := q.Offset
	if start > total {
		start = total
	}
	end := total
	if q.Limit > 0 && start+q.Limit < end {
		end = start + q.Limit
	}

	return SearchResult{Listings: matched[start:end], Total: total}
}

func matchesQuery(l *models.Listing, q SearchQuery) bool {
	if len(q.Neighbourhoods) > 0 && !containsString(q.Neighbourhoods, l.Neighbourhood) {
		return false
	}
	if len(q.RoomTypes) > 0 && !containsString(q.RoomTypes, l.RoomType) {
		return false
	}
	if l.Price < q.PriceMin {
		return false
	}
	if q.PriceMax > 0 && l.Price > q.PriceMax {
		return false
	}
	if l.ReviewRateNumber < q.MinRating {
		return false
	}
	if l.NumberOfReviews < q.MinReviews {
		return false
	}
	if q.VerifiedOnly && l.HostIdentityVerified != "verified" {
		return false
	}
	if q.InstantBook && l.InstantBookable != "TRUE" {
		return false
	}
	return true
}

func sortListings(listings []*models.Listing, sortBy string) {
	switch sortBy {
	case SortPriceDesc:
		sort.SliceStable(listings, func(i, j int) bool {
			return listings[i].Price > listings[j].Price
		})
	case SortMostPopular:
		sort.SliceStable(listings, func(i, j int) bool {
			return listings[i].NumberOfReviews > listings[j].NumberOfReviews
		})
	case SortBestRated:
		sort.SliceStable(listings, func(i, j int) bool {
			return listings[i].ReviewRateNumber > listings[j].ReviewRateNumber
		})
	default: // SortPriceAsc
		sort.SliceStable(listings, func(i, j int) bool {
			return listings[i].Price < listings[j].Price
		})
	}
}

func containsString(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}
