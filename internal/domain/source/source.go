// internal/domain/source/source.go
package source

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrSourceUnavailable is returned when a subject's data source cannot be read.
var ErrSourceUnavailable = errors.New("source unavailable")

// ErrSourceNotFound is a more specific unavailability: the source does not exist.
// It wraps ErrSourceUnavailable so errors.Is matches both.
var ErrSourceNotFound = fmt.Errorf("source not found: %w", ErrSourceUnavailable)

// RawRecord is one row supplied by a subject's data source.
// Empty Name or Score means the value was absent.
type RawRecord struct {
	Phone string
	Name  string
	Score string
}

// Source reads all records for one subject.
// ReadAll fails with an error wrapping ErrSourceUnavailable or with a *SchemaError.
type Source interface {
	ReadAll(ctx context.Context) ([]RawRecord, error)
	// Describe names the backing store for logs and probes, e.g. "csv:data/english.csv".
	Describe() string
}

// SchemaError reports required fields a source does not expose.
type SchemaError struct {
	Missing []string
}

func (e *SchemaError) Error() string {
	return "missing columns - " + strings.Join(e.Missing, ", ")
}

// Columns names the fields a source must expose.
type Columns struct {
	Name  string `koanf:"name" json:"name"`
	Phone string `koanf:"phone" json:"phone"`
	Score string `koanf:"score" json:"score"`
}

// DefaultColumns are the header names used by the exam spreadsheets.
func DefaultColumns() Columns {
	return Columns{Name: "Name", Phone: "Phone Number", Score: "Score"}
}

// WithDefaults fills empty column names from DefaultColumns.
func (c Columns) WithDefaults() Columns {
	d := DefaultColumns()
	if c.Name == "" {
		c.Name = d.Name
	}
	if c.Phone == "" {
		c.Phone = d.Phone
	}
	if c.Score == "" {
		c.Score = d.Score
	}
	return c
}

// Index holds the positions of the required columns within a header row.
type Index struct {
	Name  int
	Phone int
	Score int
}

// MapHeader locates the required columns in header. Header names are compared after
// trimming surrounding whitespace. Every missing column is reported, in Name, Phone,
// Score order.
func MapHeader(header []string, cols Columns) (Index, error) {
	cols = cols.WithDefaults()
	positions := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		if _, seen := positions[h]; !seen {
			positions[h] = i
		}
	}

	idx := Index{Name: -1, Phone: -1, Score: -1}
	var missing []string
	for _, want := range []struct {
		name string
		dst  *int
	}{
		{cols.Name, &idx.Name},
		{cols.Phone, &idx.Phone},
		{cols.Score, &idx.Score},
	} {
		pos, ok := positions[want.name]
		if !ok {
			missing = append(missing, want.name)
			continue
		}
		*want.dst = pos
	}
	if len(missing) > 0 {
		return Index{}, &SchemaError{Missing: missing}
	}
	return idx, nil
}

// Record builds a RawRecord from a row using the mapped positions.
// Short rows yield absent values for the columns they lack.
func (ix Index) Record(row []string) RawRecord {
	cell := func(i int) string {
		if i < 0 || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}
	return RawRecord{
		Phone: cell(ix.Phone),
		Name:  cell(ix.Name),
		Score: cell(ix.Score),
	}
}
