package services

import (
	"testing"

	"airbnb-advisor/models"
)

func searchFixture() *models.Dataset {
	return &models.Dataset{
		Listings: []*models.Listing{
			{ID: 1, Neighbourhood: "Harlem", RoomType: "Private room", Price: 90, ReviewRateNumber: 4.5, NumberOfReviews: 20, HostIdentityVerified: "verified"},
			{ID: 2, Neighbourhood: "Chelsea", RoomType: "Entire home/apt", Price: 150, ReviewRateNumber: 4.0, NumberOfReviews: 80, InstantBookable: "TRUE"},
			{ID: 3, Neighbourhood: "Harlem", RoomType: "Entire home/apt", Price: 210, ReviewRateNumber: 3.5, NumberOfReviews: 5},
			{ID: 4, Neighbourhood: "Williamsburg", RoomType: "Private room", Price: 120, ReviewRateNumber: 5.0, NumberOfReviews: 150, HostIdentityVerified: "verified"},
		},
	}
}

func resultIDs(r SearchResult) []int64 {
	ids := make([]int64, len(r.Listings))
	for i, l := range r.Listings {
		ids[i] = l.ID
	}
	return ids
}

func TestSearchNoFiltersReturnsAllSortedByPrice(t *testing.T) {
	svc := NewSearchService(searchFixture())

	got := svc.Search(SearchQuery{})

	want := []int64{1, 4, 2, 3}
	if ids := resultIDs(got); len(ids) != 4 || ids[0] != want[0] || ids[1] != want[1] || ids[2] != want[2] || ids[3] != want[3] {
		t.Errorf("ids = %v, want %v", ids, want)
	}
}

func TestSearchFilters(t *testing.T) {
	svc := NewSearchService(searchFixture())

	tests := []struct {
		name  string
		query SearchQuery
		want  []int64
	}{
		{"neighbourhood", SearchQuery{Neighbourhoods: []string{"Harlem"}}, []int64{1, 3}},
		{"room type", SearchQuery{RoomTypes: []string{"Private room"}}, []int64{1, 4}},
		{"price range", SearchQuery{PriceMin: 100, PriceMax: 200}, []int64{4, 2}},
		{"min rating", SearchQuery{MinRating: 4.5}, []int64{1, 4}},
		{"min reviews", SearchQuery{MinReviews: 50}, []int64{4, 2}},
		{"verified only", SearchQuery{VerifiedOnly: true}, []int64{1, 4}},
		{"instant book", SearchQuery{InstantBook: true}, []int64{2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resultIDs(svc.Search(tt.query))
			if len(got) != len(tt.want) {
				t.Fatalf("ids = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("ids = %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestSearchSortModes(t *testing.T) {
	svc := NewSearchService(searchFixture())

	tests := []struct {
		sortBy string
		first  int64
	}{
		{SortPriceAsc, 1},
		{SortPriceDesc, 3},
		{SortMostPopular, 4},
		{SortBestRated, 4},
	}

	for _, tt := range tests {
		got := svc.Search(SearchQuery{SortBy: tt.sortBy})
		if got.Listings[0].ID != tt.first {
			t.Errorf("sort %q: first = %d, want %d", tt.sortBy, got.Listings[0].ID, tt.first)
		}
	}
}

func TestSearchPaging(t *testing.T) {
	svc := NewSearchService(searchFixture())

	page := svc.Search(SearchQuery{Limit: 2})
	if len(page.Listings) != 2 || page.Total != 4 {
		t.Fatalf("page 1: got %d listings (total %d), want 2 of 4", len(page.Listings), page.Total)
	}

	rest := svc.Search(SearchQuery{Offset: 2, Limit: 5})
	if len(rest.Listings) != 2 {
		t.Fatalf("page 2: got %d listings, want 2", len(rest.Listings))
	}

	beyond := svc.Search(SearchQuery{Offset: 10})
	if len(beyond.Listings) != 0 || beyond.Total != 4 {
		t.Errorf("offset beyond total: got %d listings (total %d), want 0 of 4", len(beyond.Listings), beyond.Total)
	}
}
