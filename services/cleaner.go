package services

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"airbnb-advisor/models"
	"airbnb-advisor/utils"

	"github.com/montanaflynn/stats"
)

var priceRegex = regexp.MustCompile(`\$?([\d,]+(?:\.\d+)?)`)

// columnAliases maps the canonical column names to the header variations seen
// in published copies of the dataset.
var columnAliases = map[string][]string{
	"id":                     {"id", "listing_id"},
	"name":                   {"name", "title"},
	"host_name":              {"host_name"},
	"host_identity_verified": {"host_identity_verified"},
	"neighbourhood_group":    {"neighbourhood_group", "neighborhood_group"},
	"neighbourhood":          {"neighbourhood", "neighborhood"},
	"lat":                    {"lat", "latitude"},
	"long":                   {"long", "lon", "longitude"},
	"room_type":              {"room_type"},
	"price":                  {"price"},
	"minimum_nights":         {"minimum_nights", "min_nights"},
	"number_of_reviews":      {"number_of_reviews", "review_count", "reviews"},
	"review_rate_number":     {"review_rate_number", "rating", "review_rating"},
	"availability_365":       {"availability_365", "availability", "days_available"},
	"instant_bookable":       {"instant_bookable"},
	"cancellation_policy":    {"cancellation_policy"},
}

// DataCleaner normalizes raw CSV rows into a clean Dataset
type DataCleaner struct {
	logger            *utils.Logger
	outlierPercentile float64
}

// NewDataCleaner creates a new DataCleaner. Listings priced at or above the
// given price percentile are dropped as outliers.
func NewDataCleaner(logger *utils.Logger, outlierPercentile float64) *DataCleaner {
	return &DataCleaner{logger: logger, outlierPercentile: outlierPercentile}
}

// Clean converts raw CSV rows into a Dataset: headers are lower-snake-cased
// and mapped through the known aliases, prices are parsed from strings like
// "$1,234.00", rows without a parseable price are dropped, top-percentile
// prices are trimmed as outliers, and the extractor vocabularies plus the
// dataset-wide review median are computed.
func (c *DataCleaner) Clean(header []string, rows [][]string) *models.Dataset {
	cols := mapColumns(header)
	if _, ok := cols["price"]; !ok {
		c.logger.Error("Dataset has no price column; nothing to clean")
		return &models.Dataset{}
	}

	seen := make(map[int64]bool)
	var cleaned []*models.Listing

	for i, row := range rows {
		field := func(name string) string {
			idx, ok := cols[name]
			if !ok || idx >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[idx])
		}

		price, ok := parsePrice(field("price"))
		if !ok {
			continue
		}

		id := parseInt64(field("id"))
		if id == 0 {
			id = int64(i + 1)
		}
		if seen[id] {
			c.logger.Debug("Skipping duplicate listing id %d", id)
			continue
		}
		seen[id] = true

		listing := &models.Listing{
			ID:                   id,
			Name:                 field("name"),
			HostName:             field("host_name"),
			HostIdentityVerified: field("host_identity_verified"),
			NeighbourhoodGroup:   field("neighbourhood_group"),
			Neighbourhood:        field("neighbourhood"),
			Lat:                  parseFloat(field("lat")),
			Lon:                  parseFloat(field("long")),
			RoomType:             field("room_type"),
			Price:                price,
			MinimumNights:        parseIntClamped(field("minimum_nights"), 0),
			NumberOfReviews:      parseIntClamped(field("number_of_reviews"), 0),
			ReviewRateNumber:     parseRating(field("review_rate_number")),
			Availability365:      parseAvailability(field("availability_365")),
			InstantBookable:      strings.ToUpper(field("instant_bookable")),
			CancellationPolicy:   field("cancellation_policy"),
		}
		cleaned = append(cleaned, listing)
	}

	cleaned = c.trimPriceOutliers(cleaned)

	ds := &models.Dataset{
		Listings:       cleaned,
		Neighbourhoods: uniqueSorted(cleaned, func(l *models.Listing) string { return l.Neighbourhood }),
		RoomTypes:      uniqueSorted(cleaned, func(l *models.Listing) string { return l.RoomType }),
	}

	if len(cleaned) > 0 {
		reviews := make([]float64, len(cleaned))
		for i, l := range cleaned {
			reviews[i] = float64(l.NumberOfReviews)
		}
		if median, err := stats.Median(reviews); err == nil {
			ds.MedianReviews = median
		}
	}

	c.logger.Info("Cleaned %d listings from %d raw rows (%d neighbourhoods, %d room types)",
		len(cleaned), len(rows), len(ds.Neighbourhoods), len(ds.RoomTypes))
	return ds
}

// trimPriceOutliers drops listings priced at or above the configured percentile
func (c *DataCleaner) trimPriceOutliers(listings []*models.Listing) []*models.Listing {
	if c.outlierPercentile <= 0 || c.outlierPercentile >= 100 || len(listings) == 0 {
		return listings
	}

	prices := make([]float64, len(listings))
	for i, l := range listings {
		prices[i] = l.Price
	}

	cutoff, err := stats.Percentile(prices, c.outlierPercentile)
	if err != nil {
		return listings
	}

	kept := listings[:0]
	for _, l := range listings {
		if l.Price < cutoff {
			kept = append(kept, l)
		}
	}
	if dropped := len(listings) - len(kept); dropped > 0 {
		c.logger.Debug("Dropped %d price outliers above $%.2f", dropped, cutoff)
	}
	return kept
}

// mapColumns resolves raw headers to canonical column names via lower-snake
// normalization and the alias table
func mapColumns(header []string) map[string]int {
	normalized := make(map[string]int, len(header))
	for i, h := range header {
		key := strings.ToLower(strings.TrimSpace(h))
		key = strings.ReplaceAll(key, " ", "_")
		if _, exists := normalized[key]; !exists {
			normalized[key] = i
		}
	}

	cols := make(map[string]int, len(columnAliases))
	for canonical, aliases := range columnAliases {
		for _, alias := range aliases {
			if idx, ok := normalized[alias]; ok {
				cols[canonical] = idx
				break
			}
		}
	}
	return cols
}

// parsePrice extracts a numeric price from a raw string like "$1,234.00"
func parsePrice(raw string) (float64, bool) {
	if raw == "" {
		return 0, false
	}
	cleaned := strings.ReplaceAll(raw, ",", "")

	matches := priceRegex.FindStringSubmatch(cleaned)
	if len(matches) < 2 {
		return 0, false
	}

	val, err := strconv.ParseFloat(matches[1], 64)
	if err != nil || val < 0 {
		return 0, false
	}
	return val, true
}

// parseRating parses a rating, rejecting values outside [0, 5]
func parseRating(raw string) float64 {
	val := parseFloat(raw)
	if val < 0 || val > 5 {
		return 0
	}
	return val
}

// parseAvailability parses availability and clamps it to [0, 365]
func parseAvailability(raw string) int {
	val := parseIntClamped(raw, 0)
	if val > 365 {
		return 365
	}
	return val
}

func parseFloat(raw string) float64 {
	val, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0
	}
	return val
}

func parseIntClamped(raw string, min int) int {
	val, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || val < min {
		return min
	}
	return val
}

func parseInt64(raw string) int64 {
	val, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0
	}
	return val
}

func uniqueSorted(listings []*models.Listing, key func(*models.Listing) string) []string {
	set := make(map[string]struct{})
	for _, l := range listings {
		if v := key(l); v != "" {
			set[v] = struct{}{}
		}
	}
	out := make([]string, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
