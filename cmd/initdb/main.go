package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"recommender/database"
	"recommender/internal/config"
	"recommender/internal/ingestion/catalogcsv"
	"recommender/internal/sample"
)

func main() {
	log.Println("[InitDB] Recommendation store initializer starting...")

	// Load environment variables
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("[Fatal] Failed to load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[Fatal] Invalid config: %v", err)
	}

	logger := newLogger(cfg)

	log.Println("[Config] Loaded configuration:")
	log.Printf("  - Database: %s", cfg.DatabasePath)
	log.Printf("  - Source CSV: %s", cfg.SourceCSVPath)
	log.Printf("  - Ratings after import: %v", cfg.RatingsAfterImport)

	// Create the data directory if it doesn't exist
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		log.Fatalf("[Fatal] Failed to create data directory %s: %v", cfg.DataDir, err)
	}

	store := database.NewStore(cfg.DatabasePath, logger)
	if err := store.Open(); err != nil {
		log.Fatalf("[Fatal] The database could not be initialized: %v", err)
	}
	defer store.Close()

	db, err := store.DB()
	if err != nil {
		log.Fatalf("[Fatal] The database could not be initialized: %v", err)
	}

	// Schema failure is reported but not fatal; the import decides whether
	// the store it finds is usable.
	if err := database.EnsureSchema(db); err != nil {
		log.Printf("[Schema] warning: %v (continuing)", err)
	} else {
		log.Println("[Schema] Tables ensured")
	}

	sampler := sample.NewGenerator(store, cfg.SampleSeed, logger)
	importer := catalogcsv.NewImportService(store, sampler, catalogcsv.ImportConfig{
		SourcePath:         cfg.SourceCSVPath,
		RatingsAfterImport: cfg.RatingsAfterImport,
	}, logger)

	report, err := importer.Run(context.Background())
	if err != nil {
		log.Fatalf("[Import] Failed: %v", err)
	}

	log.Println("[Import] Summary:")
	log.Printf("  - Run: %s", report.RunID)
	log.Printf("  - Source: %s", report.Source)
	log.Printf("  - Items inserted: %d (skipped %d)", report.ItemsInserted, report.RowsSkipped)
	log.Printf("  - Users created: %d", report.UsersCreated)
	log.Printf("  - Ratings created: %d", report.RatingsCreated)
	log.Println("[InitDB] Done")
}

func newLogger(cfg *config.Config) *slog.Logger {
	level := slog.LevelInfo
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}
