package storage

import "airbnb-advisor/models"

// DatasetReader defines the interface for loading the raw dataset
type DatasetReader interface {
	ReadRecords(filePath string) (header []string, rows [][]string, err error)
}

// CleanStorage defines the interface for storing clean, normalized listings
type CleanStorage interface {
	SaveClean(listings []*models.Listing) error
	Close() error
}
