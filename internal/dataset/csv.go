package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
)

// ReadCSV decodes a delimited file with a header row into a Table. The
// header names become the columns; each data row is keyed by them. An empty
// cell becomes a null (nil), never an empty string, so downstream
// null-handling sees CSV gaps the same way it sees database NULLs.
//
// A missing file surfaces as fs.ErrNotExist via the wrapped error; a file
// with only a header yields a table with columns and zero rows. Both are
// legitimate outcomes for the caller to branch on, not parse failures.
func ReadCSV(path string) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return Table{}, fmt.Errorf("opening source %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	// Upstream exports are not always rectangular
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return Table{}, fmt.Errorf("parsing source %s: %w", path, err)
	}
	if len(records) == 0 {
		return Table{}, nil
	}

	header := records[0]
	table := Table{Columns: append([]string(nil), header...)}

	for _, record := range records[1:] {
		if len(record) == 0 {
			continue
		}
		row := make(map[string]any, len(header))
		for i, name := range header {
			if i >= len(record) || record[i] == "" {
				row[name] = nil
				continue
			}
			row[name] = record[i]
		}
		table.Rows = append(table.Rows, row)
	}

	return table, nil
}
