package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/you/pathfinder/models"
)

// PostgresCityRepository reads and writes catalog rows in Postgres
type PostgresCityRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresCityRepository connects to databaseURL and verifies the connection
func NewPostgresCityRepository(ctx context.Context, databaseURL string) (*PostgresCityRepository, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresCityRepository{pool: pool}, nil
}

func (r *PostgresCityRepository) Close() {
	r.pool.Close()
}

// EnsureSchema creates the cities table if it doesn't exist
func (r *PostgresCityRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, postgresSchemaSQL); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// ListCities returns every catalog row ordered by name
func (r *PostgresCityRepository) ListCities(ctx context.Context) ([]models.City, error) {
	query := `
		SELECT name, latitude, longitude
		FROM cities
		ORDER BY name
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query cities: %w", err)
	}
	defer rows.Close()

	var cities []models.City
	for rows.Next() {
		var c models.City
		var lat, lng *float64
		if err := rows.Scan(&c.Name, &lat, &lng); err != nil {
			return nil, fmt.Errorf("failed to scan city row: %w", err)
		}
		if lat != nil && lng != nil {
			c.Coordinate = &models.Coordinate{Lat: *lat, Lng: *lng}
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

// UpsertCities writes cities in one batch, replacing coordinates of existing names
func (r *PostgresCityRepository) UpsertCities(ctx context.Context, cities []models.City) error {
	query := `
		INSERT INTO cities (name, latitude, longitude)
		VALUES ($1, $2, $3)
		ON CONFLICT (name) DO UPDATE SET
			latitude = EXCLUDED.latitude,
			longitude = EXCLUDED.longitude
	`

	batch := &pgx.Batch{}
	for _, c := range cities {
		lat, lng := nullableCoordinate(c)
		batch.Queue(query, c.Name, lat, lng)
	}

	results := r.pool.SendBatch(ctx, batch)
	defer results.Close()

	for _, c := range cities {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("failed to upsert city %s: %w", c.Name, err)
		}
	}

	return nil
}
