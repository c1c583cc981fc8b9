// Package repository loads the city catalog from SQLite or Postgres.
// Both stores share the same single-table layout (cities: name, latitude,
// longitude) and are written by cmd/seed-catalog.
package repository

import (
	_ "embed"
	"errors"
)

//go:embed schema_sqlite.sql
var sqliteSchemaSQL string

//go:embed schema_postgres.sql
var postgresSchemaSQL string

// ErrEmptyCatalog is returned when a store holds no cities
var ErrEmptyCatalog = errors.New("catalog store is empty")
