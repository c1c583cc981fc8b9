package main

import (
	"context"
	"flag"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"

	"github.com/you/pathfinder/catalog"
	"github.com/you/pathfinder/repository"
)

func main() {
	_ = godotenv.Load(".env")
	_ = godotenv.Overload(".env.local")

	// Command line flags
	dbPath := flag.String("db", envOr("SQLITE_DATABASE", "data/catalog.db"), "Path to SQLite database")
	databaseURL := flag.String("database-url", "", "PostgreSQL connection string; when set, seeds Postgres instead of SQLite")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cities := catalog.Builtin()

	if *databaseURL != "" {
		repo, err := repository.NewPostgresCityRepository(ctx, *databaseURL)
		if err != nil {
			log.Fatalf("Failed to connect to PostgreSQL: %v", err)
		}
		defer repo.Close()

		if err := repo.EnsureSchema(ctx); err != nil {
			log.Fatalf("Failed to ensure schema: %v", err)
		}
		if err := repo.UpsertCities(ctx, cities); err != nil {
			log.Fatalf("Failed to seed cities: %v", err)
		}
		log.Printf("Seeded %d cities into PostgreSQL", len(cities))
		return
	}

	if dir := filepath.Dir(*dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Fatalf("Failed to create database directory: %v", err)
		}
	}

	database, err := repository.NewSQLiteDB(*dbPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer database.Close()

	log.Printf("Connected to database: %s", *dbPath)

	if err := database.EnsureSchema(ctx); err != nil {
		log.Fatalf("Failed to ensure schema: %v", err)
	}

	repo := repository.NewSQLiteCityRepository(database.GetDB())
	if err := repo.UpsertCities(ctx, cities); err != nil {
		log.Fatalf("Failed to seed cities: %v", err)
	}
	log.Printf("Seeded %d cities into %s", len(cities), *dbPath)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
