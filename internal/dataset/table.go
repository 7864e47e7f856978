// Package dataset holds the in-memory tabular value passed between the
// ingestion pipeline and the cleaning pass. A Table is deliberately loose
// about cell types (a cell is any, nil meaning null) because the external
// source decides them, but strict about shape: rows may only carry declared
// columns.
package dataset

import (
	"errors"
	"fmt"
)

// ErrMalformedTable reports a table whose rows do not match its declared
// columns. This is a caller contract violation, not a data-quality issue,
// so it is never recovered from locally.
var ErrMalformedTable = errors.New("dataset: malformed table")

type Table struct {
	Columns []string
	Rows    []map[string]any
}

// Empty reports whether the table has no data rows.
func (t Table) Empty() bool {
	return len(t.Rows) == 0
}

// HasColumn reports whether name is one of the declared columns.
func (t Table) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// Validate checks the table shape: every row must be non-nil and carry only
// declared columns. It runs before any cell is inspected.
func (t Table) Validate() error {
	if len(t.Columns) == 0 && len(t.Rows) > 0 {
		return fmt.Errorf("%w: rows present but no columns declared", ErrMalformedTable)
	}

	known := make(map[string]struct{}, len(t.Columns))
	for _, c := range t.Columns {
		known[c] = struct{}{}
	}

	for i, row := range t.Rows {
		if row == nil {
			return fmt.Errorf("%w: row %d is nil", ErrMalformedTable, i)
		}
		for key := range row {
			if _, ok := known[key]; !ok {
				return fmt.Errorf("%w: row %d has undeclared column %q", ErrMalformedTable, i, key)
			}
		}
	}
	return nil
}

// Clone returns a deep copy so cleaning can work on a defensive copy without
// mutating the caller's table.
func (t Table) Clone() Table {
	out := Table{
		Columns: append([]string(nil), t.Columns...),
		Rows:    make([]map[string]any, len(t.Rows)),
	}
	for i, row := range t.Rows {
		copied := make(map[string]any, len(row))
		for k, v := range row {
			copied[k] = v
		}
		out.Rows[i] = copied
	}
	return out
}

// ColumnHasNulls reports whether any cell in the named column is null.
// A column absent from a row counts as null for that row.
func (t Table) ColumnHasNulls(name string) bool {
	for _, row := range t.Rows {
		if v, ok := row[name]; !ok || v == nil {
			return true
		}
	}
	return false
}
