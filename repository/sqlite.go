package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/you/pathfinder/models"

	_ "modernc.org/sqlite"
)

// SQLiteDB wraps a SQL database connection for SQLite
type SQLiteDB struct {
	db *sql.DB
}

// NewSQLiteDB creates a new SQLite database connection
func NewSQLiteDB(dbPath string) (*SQLiteDB, error) {
	db, err := sql.Open("sqlite", dbPath+"?_journal=WAL&_fk=1")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Single writer; the catalog is read once at startup
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &SQLiteDB{db: db}, nil
}

// Close closes the database connection
func (s *SQLiteDB) Close() error {
	return s.db.Close()
}

// GetDB returns the underlying database connection
func (s *SQLiteDB) GetDB() *sql.DB {
	return s.db
}

// EnsureSchema creates the cities table if it doesn't exist
func (s *SQLiteDB) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, sqliteSchemaSQL); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// SQLiteCityRepository reads and writes catalog rows in SQLite
type SQLiteCityRepository struct {
	db *sql.DB
}

// NewSQLiteCityRepository creates a new SQLiteCityRepository
func NewSQLiteCityRepository(db *sql.DB) *SQLiteCityRepository {
	return &SQLiteCityRepository{db: db}
}

// ListCities returns every catalog row ordered by name
func (r *SQLiteCityRepository) ListCities(ctx context.Context) ([]models.City, error) {
	query := `
		SELECT name, latitude, longitude
		FROM cities
		ORDER BY name
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query cities: %w", err)
	}
	defer rows.Close()

	var cities []models.City
	for rows.Next() {
		var c models.City
		var lat, lng sql.NullFloat64
		if err := rows.Scan(&c.Name, &lat, &lng); err != nil {
			return nil, fmt.Errorf("failed to scan city row: %w", err)
		}
		if lat.Valid && lng.Valid {
			c.Coordinate = &models.Coordinate{Lat: lat.Float64, Lng: lng.Float64}
		}
		cities = append(cities, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating city rows: %w", err)
	}

	if len(cities) == 0 {
		return nil, ErrEmptyCatalog
	}

	return cities, nil
}

// UpsertCities writes cities in a single transaction, replacing coordinates of existing names
func (r *SQLiteCityRepository) UpsertCities(ctx context.Context, cities []models.City) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO cities (name, latitude, longitude)
		VALUES (?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			latitude = excluded.latitude,
			longitude = excluded.longitude
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare upsert: %w", err)
	}
	defer stmt.Close()

	for _, c := range cities {
		lat, lng := nullableCoordinate(c)
		if _, err := stmt.ExecContext(ctx, c.Name, lat, lng); err != nil {
			return fmt.Errorf("failed to upsert city %s: %w", c.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit cities: %w", err)
	}
	return nil
}

func nullableCoordinate(c models.City) (*float64, *float64) {
	if c.Coordinate == nil {
		return nil, nil
	}
	lat, lng := c.Coordinate.Lat, c.Coordinate.Lng
	return &lat, &lng
}
