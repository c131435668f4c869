// Package main provides the one-shot database seeder. It ensures the schema
// exists, deletes all existing stations, and loads the fixed seed set.
package main

import (
	"context"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/stationfinder/stationfinder/internal/database"
	"github.com/stationfinder/stationfinder/internal/station"
)

func main() {
	log := zerolog.New(os.Stdout).
		With().
		Timestamp().
		Str("service", "stationfinder-seed").
		Logger()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	dbConfig := database.ConfigFromEnv()
	pool, err := database.Connect(ctx, dbConfig)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer pool.Close()
	log.Info().
		Str("host", dbConfig.Host).
		Str("database", dbConfig.Database).
		Msg("database connected")

	repo := station.NewPostgresRepository(pool)

	if err := repo.EnsureSchema(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to ensure schema")
	}

	seed := station.SeedStations(time.Now())
	if err := repo.ReplaceAll(ctx, seed); err != nil {
		log.Fatal().Err(err).Msg("failed to seed stations")
	}

	log.Info().Int("count", len(seed)).Msg("seeding completed")
}
