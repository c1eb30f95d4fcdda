// Package sources implements subject data source adapters backed by files and HTTP.
package sources

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"exam_results_bot/internal/domain/source"
)

// readCSV parses a CSV stream whose first row is the header.
func readCSV(r io.Reader, cols source.Columns, origin string) ([]source.RawRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &source.SchemaError{Missing: missingAll(cols)}
		}
		return nil, fmt.Errorf("%w: error reading header of %s: %v", source.ErrSourceUnavailable, origin, err)
	}
	idx, err := source.MapHeader(header, cols)
	if err != nil {
		return nil, err
	}

	records := make([]source.RawRecord, 0)
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: error parsing %s: %v", source.ErrSourceUnavailable, origin, err)
		}
		records = append(records, idx.Record(row))
	}
	return records, nil
}

func missingAll(cols source.Columns) []string {
	cols = cols.WithDefaults()
	return []string{cols.Name, cols.Phone, cols.Score}
}
