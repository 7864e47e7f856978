package catalogcsv

import (
	"strconv"
	"strings"

	"recommender/internal/models"
)

// fieldAliases is the ordered alias table mapping each canonical item field
// to the source column names accepted for it. Supporting a new upstream
// naming convention is a change to this table, not to the resolution code.
var fieldAliases = map[string][]string{
	"title":       {"title", "name"},
	"genre":       {"genre", "genres"},
	"year":        {"year", "release_year"},
	"description": {"description", "synopsis"},
}

// resolveField returns the first non-null value among the aliases for the
// canonical field name.
func resolveField(row map[string]any, canonical string) (string, bool) {
	for _, alias := range fieldAliases[canonical] {
		v, ok := row[alias]
		if !ok || v == nil {
			continue
		}
		s, ok := v.(string)
		if !ok {
			continue
		}
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		return s, true
	}
	return "", false
}

// itemFromRow maps one source row onto an Item, applying the documented
// defaults: "Untitled" title, "Unknown" genre, null year, empty description.
// A year that does not parse as an integer is treated as absent.
func itemFromRow(row map[string]any) models.Item {
	item := models.Item{
		Title: "Untitled",
	}

	if title, ok := resolveField(row, "title"); ok {
		item.Title = title
	}

	genre := "Unknown"
	if g, ok := resolveField(row, "genre"); ok {
		genre = g
	}
	item.Genre = &genre

	if y, ok := resolveField(row, "year"); ok {
		if year, err := strconv.Atoi(y); err == nil {
			item.Year = &year
		}
	}

	description := ""
	if d, ok := resolveField(row, "description"); ok {
		description = d
	}
	item.Description = &description

	return item
}
