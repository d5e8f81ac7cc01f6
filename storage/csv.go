package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"airbnb-advisor/models"
	"airbnb-advisor/utils"
)

// CSVStore reads the raw Airbnb dataset and exports cleaned listings
type CSVStore struct {
	logger *utils.Logger
}

// NewCSVStore creates a new CSVStore
func NewCSVStore(logger *utils.Logger) *CSVStore {
	return &CSVStore{logger: logger}
}

// ReadRecords reads a raw CSV file and returns its header plus all data rows.
// Ragged rows are tolerated; normalization happens in the cleaner.
func (s *CSVStore) ReadRecords(filePath string) ([]string, [][]string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open dataset file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read dataset file: %w", err)
	}
	if len(records) == 0 {
		return nil, nil, fmt.Errorf("dataset file %s is empty", filePath)
	}

	s.logger.Info("Read %d rows from %s", len(records)-1, filePath)
	return records[0], records[1:], nil
}

// WriteListings exports cleaned listings to a CSV file
func (s *CSVStore) WriteListings(filePath string, listings []*models.Listing) error {
	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := []string{
		"id", "name", "host_name", "host_identity_verified",
		"neighbourhood_group", "neighbourhood", "lat", "lon", "room_type",
		"price", "minimum_nights", "number_of_reviews", "review_rate_number",
		"availability_365", "instant_bookable", "cancellation_policy",
	}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, l := range listings {
		row := []string{
			strconv.FormatInt(l.ID, 10),
			l.Name,
			l.HostName,
			l.HostIdentityVerified,
			l.NeighbourhoodGroup,
			l.Neighbourhood,
			strconv.FormatFloat(l.Lat, 'f', -1, 64),
			strconv.FormatFloat(l.Lon, 'f', -1, 64),
			l.RoomType,
			strconv.FormatFloat(l.Price, 'f', 2, 64),
			strconv.Itoa(l.MinimumNights),
			strconv.Itoa(l.NumberOfReviews),
			strconv.FormatFloat(l.ReviewRateNumber, 'f', 2, 64),
			strconv.Itoa(l.Availability365),
			l.InstantBookable,
			l.CancellationPolicy,
		}
		if err := writer.Write(row); err != nil {
			s.logger.Error("Failed to write CSV row for '%s': %v", l.Name, err)
		}
	}

	s.logger.Info("Clean listings written to: %s (%d rows)", filePath, len(listings))
	return nil
}
