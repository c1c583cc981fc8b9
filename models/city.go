package models

import (
	"errors"
	"fmt"
	"strings"
)

// Coordinate is a WGS84 position used for map placement only
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// City is a single catalog entry. Coordinate is nil for cities that are
// selectable but have no known position.
type City struct {
	Name       string      `json:"name"`
	Coordinate *Coordinate `json:"coordinate,omitempty"`
}

// Validate checks if the City has a usable name and, when present, an in-range coordinate
func (c *City) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return errors.New("city name cannot be empty")
	}

	if c.Coordinate != nil {
		if c.Coordinate.Lat < -90 || c.Coordinate.Lat > 90 {
			return fmt.Errorf("latitude out of range for %s: %f", c.Name, c.Coordinate.Lat)
		}
		if c.Coordinate.Lng < -180 || c.Coordinate.Lng > 180 {
			return fmt.Errorf("longitude out of range for %s: %f", c.Name, c.Coordinate.Lng)
		}
	}

	return nil
}

// HasCoordinate reports whether the city can be placed on the map
func (c *City) HasCoordinate() bool {
	return c.Coordinate != nil
}
