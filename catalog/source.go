package catalog

import (
	"context"
	"fmt"

	"github.com/you/pathfinder/models"
)

// Source provides catalog rows, e.g. a SQLite or Postgres repository
type Source interface {
	ListCities(ctx context.Context) ([]models.City, error)
}

// Load reads all rows from src and builds a Catalog
func Load(ctx context.Context, src Source) (*Catalog, error) {
	cities, err := src.ListCities(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list cities: %w", err)
	}
	return New(cities)
}
