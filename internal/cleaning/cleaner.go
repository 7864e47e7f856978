// Package cleaning loads persisted items back out of the store and applies
// the normalization policy that downstream recommendation code depends on:
// no nulls in title, genre, year or description. Cleaned copies are never
// written back; cleaning is an in-memory projection.
package cleaning

import (
	"fmt"
	"log/slog"
	"strconv"

	"recommender/database"
	"recommender/internal/dataset"
	"recommender/internal/repository"
)

const (
	fillTitle       = "Unknown Title"
	fillGenre       = "Unknown"
	fillDescription = ""
)

// Cleaner owns its own store connection: LoadItems opens it and closes it on
// every path, independent of whatever connection populated the data.
type Cleaner struct {
	store  *database.Store
	logger *slog.Logger
}

func NewCleaner(dbPath string, logger *slog.Logger) *Cleaner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Cleaner{
		store:  database.NewStore(dbPath, logger),
		logger: logger,
	}
}

// LoadItems selects the full item projection (id, title, genre, year,
// description) into a Table. The connection is closed afterward regardless
// of success.
func (c *Cleaner) LoadItems() (dataset.Table, error) {
	db, err := c.store.DB()
	if err != nil {
		return dataset.Table{}, fmt.Errorf("could not initialize store: %w", err)
	}
	defer c.store.Close()

	items, err := repository.NewItemRepository(db).List()
	if err != nil {
		return dataset.Table{}, fmt.Errorf("loading items: %w", err)
	}

	table := dataset.Table{
		Columns: []string{"id", "title", "genre", "year", "description"},
	}
	for _, item := range items {
		row := map[string]any{
			"id":          item.ID,
			"title":       item.Title,
			"genre":       nil,
			"year":        nil,
			"description": nil,
		}
		if item.Genre != nil {
			row["genre"] = *item.Genre
		}
		if item.Year != nil {
			row["year"] = *item.Year
		}
		if item.Description != nil {
			row["description"] = *item.Description
		}
		table.Rows = append(table.Rows, row)
	}

	c.logger.Info("loaded items from the database", "count", len(table.Rows))
	return table, nil
}

// Clean applies the null-filling policy on a defensive copy of the input.
// A malformed table is a caller contract violation and fails before any
// column is inspected; an empty table is returned unchanged. Each fix runs
// independently, only when its column exists and actually holds nulls, and
// never drops rows or touches columns absent from the input.
func (c *Cleaner) Clean(t dataset.Table) (dataset.Table, error) {
	if err := t.Validate(); err != nil {
		return dataset.Table{}, err
	}
	if t.Empty() {
		c.logger.Info("empty table, no data to clean")
		return t, nil
	}

	cleaned := t.Clone()

	if cleaned.HasColumn("title") && cleaned.ColumnHasNulls("title") {
		c.logger.Info("null titles found, filling", "value", fillTitle)
		fillColumn(cleaned, "title", fillTitle)
	}

	if cleaned.HasColumn("genre") && cleaned.ColumnHasNulls("genre") {
		c.logger.Info("null genres found, filling", "value", fillGenre)
		fillColumn(cleaned, "genre", fillGenre)
	}

	if cleaned.HasColumn("year") && cleaned.ColumnHasNulls("year") {
		c.logger.Info("null years found, filling with 0")
		fillColumn(cleaned, "year", 0)
		coerceIntColumn(cleaned, "year")
	}

	if cleaned.HasColumn("description") && cleaned.ColumnHasNulls("description") {
		c.logger.Info("null descriptions found, filling with empty string")
		fillColumn(cleaned, "description", fillDescription)
	}

	return cleaned, nil
}

// fillColumn replaces null cells in the named column with value.
func fillColumn(t dataset.Table, name string, value any) {
	for _, row := range t.Rows {
		if v, ok := row[name]; !ok || v == nil {
			row[name] = value
		}
	}
}

// coerceIntColumn converts every cell in the named column to int, matching
// the whole-column integer coercion that follows a year fill. Cells that do
// not look numeric are left alone.
func coerceIntColumn(t dataset.Table, name string) {
	for _, row := range t.Rows {
		switch v := row[name].(type) {
		case int:
			// already integer
		case int64:
			row[name] = int(v)
		case float64:
			row[name] = int(v)
		case float32:
			row[name] = int(v)
		case string:
			if n, err := strconv.Atoi(v); err == nil {
				row[name] = n
			}
		}
	}
}
