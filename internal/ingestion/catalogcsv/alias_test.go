package catalogcsv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveFieldPrefersEarlierAliases(t *testing.T) {
	row := map[string]any{"title": "Naruto", "name": "ignored"}
	v, ok := resolveField(row, "title")
	require.True(t, ok)
	assert.Equal(t, "Naruto", v)
}

func TestResolveFieldFallsBackThroughAliases(t *testing.T) {
	row := map[string]any{"name": "Naruto", "genres": "Action", "release_year": "2002", "synopsis": "ninja"}

	for canonical, want := range map[string]string{
		"title":       "Naruto",
		"genre":       "Action",
		"year":        "2002",
		"description": "ninja",
	} {
		v, ok := resolveField(row, canonical)
		require.True(t, ok, canonical)
		assert.Equal(t, want, v)
	}
}

func TestResolveFieldTreatsNullAndBlankAsMissing(t *testing.T) {
	row := map[string]any{"title": nil, "name": "   "}
	_, ok := resolveField(row, "title")
	assert.False(t, ok)
}

func TestItemFromRowAppliesDefaults(t *testing.T) {
	item := itemFromRow(map[string]any{})

	assert.Equal(t, "Untitled", item.Title)
	require.NotNil(t, item.Genre)
	assert.Equal(t, "Unknown", *item.Genre)
	assert.Nil(t, item.Year)
	require.NotNil(t, item.Description)
	assert.Equal(t, "", *item.Description)
}

func TestItemFromRowParsesYear(t *testing.T) {
	item := itemFromRow(map[string]any{"release_year": "2013"})
	require.NotNil(t, item.Year)
	assert.Equal(t, 2013, *item.Year)

	// Non-numeric years are treated as absent
	item = itemFromRow(map[string]any{"year": "unknown"})
	assert.Nil(t, item.Year)
}
