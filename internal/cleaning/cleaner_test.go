package cleaning

import (
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"recommender/database"
	"recommender/internal/dataset"
	"recommender/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCleaner(t *testing.T) *Cleaner {
	t.Helper()
	return NewCleaner(filepath.Join(t.TempDir(), "test.db"), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func itemsTable(rows ...map[string]any) dataset.Table {
	return dataset.Table{
		Columns: []string{"id", "title", "genre", "year", "description"},
		Rows:    rows,
	}
}

func TestCleanRejectsMalformedTableBeforeInspectingColumns(t *testing.T) {
	c := newCleaner(t)

	_, err := c.Clean(dataset.Table{
		Columns: []string{"title"},
		Rows:    []map[string]any{{"title": nil, "bogus": "x"}},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, dataset.ErrMalformedTable)
}

func TestCleanReturnsEmptyTableUnchanged(t *testing.T) {
	c := newCleaner(t)

	in := dataset.Table{Columns: []string{"title"}}
	out, err := c.Clean(in)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestCleanFillsNullGenres(t *testing.T) {
	c := newCleaner(t)

	out, err := c.Clean(itemsTable(
		map[string]any{"id": int64(1), "title": "Naruto", "genre": nil, "year": 2002, "description": "ninja"},
		map[string]any{"id": int64(2), "title": "Death Note", "genre": "Mystery", "year": 2006, "description": "notebook"},
	))
	require.NoError(t, err)

	assert.Equal(t, "Unknown", out.Rows[0]["genre"])
	// Non-null cells are untouched
	assert.Equal(t, "Mystery", out.Rows[1]["genre"])
}

func TestCleanFillsAllPolicyColumns(t *testing.T) {
	c := newCleaner(t)

	out, err := c.Clean(itemsTable(
		map[string]any{"id": int64(1), "title": nil, "genre": nil, "year": nil, "description": nil},
	))
	require.NoError(t, err)

	row := out.Rows[0]
	assert.Equal(t, "Unknown Title", row["title"])
	assert.Equal(t, "Unknown", row["genre"])
	assert.Equal(t, 0, row["year"])
	assert.Equal(t, "", row["description"])
}

func TestCleanCoercesYearColumnToInt(t *testing.T) {
	c := newCleaner(t)

	out, err := c.Clean(itemsTable(
		map[string]any{"id": int64(1), "title": "a", "genre": "g", "year": nil, "description": "d"},
		map[string]any{"id": int64(2), "title": "b", "genre": "g", "year": "2002", "description": "d"},
		map[string]any{"id": int64(3), "title": "c", "genre": "g", "year": 2006.0, "description": "d"},
	))
	require.NoError(t, err)

	assert.Equal(t, 0, out.Rows[0]["year"])
	assert.Equal(t, 2002, out.Rows[1]["year"])
	assert.Equal(t, 2006, out.Rows[2]["year"])
}

func TestCleanWithoutNullsReturnsEqualTable(t *testing.T) {
	c := newCleaner(t)

	in := itemsTable(
		map[string]any{"id": int64(1), "title": "Naruto", "genre": "Action", "year": 2002, "description": "ninja"},
	)
	out, err := c.Clean(in)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestCleanIsIdempotent(t *testing.T) {
	c := newCleaner(t)

	in := itemsTable(
		map[string]any{"id": int64(1), "title": nil, "genre": nil, "year": nil, "description": nil},
		map[string]any{"id": int64(2), "title": "Naruto", "genre": "Action", "year": 2002, "description": "ninja"},
	)

	once, err := c.Clean(in)
	require.NoError(t, err)
	twice, err := c.Clean(once)
	require.NoError(t, err)
	assert.Equal(t, once, twice)
}

func TestCleanIgnoresAbsentColumns(t *testing.T) {
	c := newCleaner(t)

	in := dataset.Table{
		Columns: []string{"id", "title"},
		Rows:    []map[string]any{{"id": int64(1), "title": nil}},
	}
	out, err := c.Clean(in)
	require.NoError(t, err)

	assert.Equal(t, "Unknown Title", out.Rows[0]["title"])
	assert.False(t, out.HasColumn("genre"))
}

func TestCleanDoesNotMutateInput(t *testing.T) {
	c := newCleaner(t)

	in := itemsTable(map[string]any{"id": int64(1), "title": nil, "genre": nil, "year": nil, "description": nil})
	_, err := c.Clean(in)
	require.NoError(t, err)

	assert.Nil(t, in.Rows[0]["title"])
}

func TestLoadItemsRoundTrip(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "test.db")
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	// Populate through an independent connection, as the pipeline would
	store := database.NewStore(dbPath, logger)
	db, err := store.DB()
	require.NoError(t, err)
	require.NoError(t, database.EnsureSchema(db))

	genre := "Action"
	year := 2002
	require.NoError(t, db.Create(&models.Item{Title: "Naruto", Genre: &genre, Year: &year}).Error)
	require.NoError(t, db.Create(&models.Item{Title: "Mystery item"}).Error)
	require.NoError(t, store.Close())

	c := NewCleaner(dbPath, logger)
	table, err := c.LoadItems()
	require.NoError(t, err)

	assert.Equal(t, []string{"id", "title", "genre", "year", "description"}, table.Columns)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, "Naruto", table.Rows[0]["title"])
	assert.Equal(t, 2002, table.Rows[0]["year"])
	assert.Nil(t, table.Rows[1]["genre"])

	cleaned, err := c.Clean(table)
	require.NoError(t, err)
	assert.Equal(t, "Unknown", cleaned.Rows[1]["genre"])
	assert.Equal(t, 0, cleaned.Rows[1]["year"])
}

func TestLoadItemsOnEmptyStore(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "test.db")
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	store := database.NewStore(dbPath, logger)
	db, err := store.DB()
	require.NoError(t, err)
	require.NoError(t, database.EnsureSchema(db))
	require.NoError(t, store.Close())

	c := NewCleaner(dbPath, logger)
	table, err := c.LoadItems()
	require.NoError(t, err)
	assert.True(t, table.Empty())
}
