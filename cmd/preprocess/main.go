package main

import (
	"log"
	"log/slog"
	"os"

	"recommender/internal/cleaning"
	"recommender/internal/config"
)

// preprocess loads the persisted item table, runs the cleaning pass and
// prints a summary. The cleaned projection is what the recommendation
// engine consumes; nothing is written back to the store.
func main() {
	log.Println("[Preprocess] Starting data cleanup...")

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("[Fatal] Failed to load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[Fatal] Invalid config: %v", err)
	}

	logger := newLogger(cfg)

	cleaner := cleaning.NewCleaner(cfg.DatabasePath, logger)

	table, err := cleaner.LoadItems()
	if err != nil {
		log.Fatalf("[Fatal] Failed to load items: %v", err)
	}

	cleaned, err := cleaner.Clean(table)
	if err != nil {
		log.Fatalf("[Fatal] Cleaning failed: %v", err)
	}

	log.Println("[Preprocess] Summary:")
	log.Printf("  - Rows: %d", len(cleaned.Rows))
	log.Printf("  - Columns: %v", cleaned.Columns)
	for _, col := range cleaned.Columns {
		if cleaned.ColumnHasNulls(col) {
			log.Printf("  - Column %q still has nulls", col)
		}
	}
	log.Println("[Preprocess] Done")
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
