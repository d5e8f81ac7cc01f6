package storage

import (
	"database/sql"
	"fmt"
	"time"

	"airbnb-advisor/models"
	"airbnb-advisor/utils"

	_ "github.com/lib/pq"
)

// PostgresWriter handles storing clean listings in PostgreSQL
type PostgresWriter struct {
	db     *sql.DB
	logger *utils.Logger
}

// NewPostgresWriter creates a new PostgresWriter and pings the DB
func NewPostgresWriter(connStr string, logger *utils.Logger) (*PostgresWriter, error) {
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open DB: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Minute * 5)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping DB: %w", err)
	}

	logger.Info("Connected to PostgreSQL successfully")
	return &PostgresWriter{db: db, logger: logger}, nil
}

// CreateTable creates the listings table if it doesn't exist, with indexes
func (w *PostgresWriter) CreateTable() error {
	query := `
	CREATE TABLE IF NOT EXISTS listings (
		id                     BIGINT PRIMARY KEY,
		name                   TEXT,
		host_name              TEXT,
		host_identity_verified VARCHAR(20),
		neighbourhood_group    TEXT,
		neighbourhood          TEXT,
		lat                    NUMERIC(9,6),
		lon                    NUMERIC(9,6),
		room_type              TEXT,
		price                  NUMERIC(10,2) NOT NULL,
		minimum_nights         INT     DEFAULT 0,
		number_of_reviews      INT     DEFAULT 0,
		review_rate_number     NUMERIC(4,2) DEFAULT 0,
		availability_365       INT     DEFAULT 0,
		instant_bookable       VARCHAR(10),
		cancellation_policy    TEXT
	);

	CREATE INDEX IF NOT EXISTS idx_listings_price         ON listings (price);
	CREATE INDEX IF NOT EXISTS idx_listings_neighbourhood ON listings (neighbourhood);
	CREATE INDEX IF NOT EXISTS idx_listings_room_type     ON listings (room_type);
	CREATE INDEX IF NOT EXISTS idx_listings_rating        ON listings (review_rate_number);
	`
	_, err := w.db.Exec(query)
	if err != nil {
		return fmt.Errorf("failed to create table: %w", err)
	}
	w.logger.Info("Table 'listings' is ready")
	return nil
}

// SaveClean inserts clean listings in a single transaction, skipping duplicates
func (w *PostgresWriter) SaveClean(listings []*models.Listing) error {
	if len(listings) == 0 {
		return nil
	}

	tx, err := w.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	stmt, err := tx.Prepare(`
		INSERT INTO listings (
			id, name, host_name, host_identity_verified, neighbourhood_group,
			neighbourhood, lat, lon, room_type, price, minimum_nights,
			number_of_reviews, review_rate_number, availability_365,
			instant_bookable, cancellation_policy
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		ON CONFLICT (id) DO NOTHING
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	inserted := 0
	for _, l := range listings {
		_, err = stmt.Exec(
			l.ID,
			l.Name,
			l.HostName,
			l.HostIdentityVerified,
			l.NeighbourhoodGroup,
			l.Neighbourhood,
			l.Lat,
			l.Lon,
			l.RoomType,
			l.Price,
			l.MinimumNights,
			l.NumberOfReviews,
			l.ReviewRateNumber,
			l.Availability365,
			l.InstantBookable,
			l.CancellationPolicy,
		)
		if err != nil {
			w.logger.Warn("Skipping insert for '%s': %v", l.Name, err)
			continue
		}
		inserted++
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	w.logger.Info("Inserted %d/%d listings into PostgreSQL", inserted, len(listings))
	return nil
}

// Close closes the database connection
func (w *PostgresWriter) Close() error {
	if w.db != nil {
		return w.db.Close()
	}
	return nil
}
