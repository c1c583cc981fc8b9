// Package catalog holds the fixed list of selectable cities and their
// optional map coordinates. The catalog is display data only; routes are
// computed by the external path service.
package catalog

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/you/pathfinder/models"
)

// ErrUnknownCity is returned when a name is not part of the catalog
var ErrUnknownCity = errors.New("unknown city")

// Catalog is an immutable, name-sorted set of cities. Safe for concurrent use.
type Catalog struct {
	names  []string
	coords map[string]models.Coordinate
	known  map[string]struct{}
}

// New builds a Catalog from repository rows. Duplicate names are rejected
// and entries are validated before use.
func New(cities []models.City) (*Catalog, error) {
	c := &Catalog{
		names:  make([]string, 0, len(cities)),
		coords: make(map[string]models.Coordinate, len(cities)),
		known:  make(map[string]struct{}, len(cities)),
	}

	for i := range cities {
		city := cities[i]
		city.Name = strings.TrimSpace(city.Name)
		if err := city.Validate(); err != nil {
			return nil, fmt.Errorf("invalid catalog entry %d: %w", i, err)
		}
		if _, dup := c.known[city.Name]; dup {
			return nil, fmt.Errorf("duplicate catalog entry: %s", city.Name)
		}

		c.known[city.Name] = struct{}{}
		c.names = append(c.names, city.Name)
		if city.HasCoordinate() {
			c.coords[city.Name] = *city.Coordinate
		}
	}

	sort.Strings(c.names)
	return c, nil
}

// Default returns the catalog built from the compiled-in city list
func Default() *Catalog {
	c, err := New(Builtin())
	if err != nil {
		panic(fmt.Sprintf("builtin catalog is invalid: %v", err))
	}
	return c
}

// Names returns the selectable city names in sorted order.
// The returned slice is a copy.
func (c *Catalog) Names() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

// Len returns the number of selectable cities
func (c *Catalog) Len() int {
	return len(c.names)
}

// Contains reports whether name is a selectable city
func (c *Catalog) Contains(name string) bool {
	_, ok := c.known[name]
	return ok
}

// Coordinate returns the map position of name, if the catalog has one
func (c *Catalog) Coordinate(name string) (models.Coordinate, bool) {
	coord, ok := c.coords[name]
	return coord, ok
}

// Lookup validates that name is selectable
func (c *Catalog) Lookup(name string) error {
	if !c.Contains(name) {
		return fmt.Errorf("%w: %q", ErrUnknownCity, name)
	}
	return nil
}
