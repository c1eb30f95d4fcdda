package sources

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"exam_results_bot/internal/domain/source"
)

// CSVFileSource reads a subject's records from a local CSV file with a header row.
type CSVFileSource struct {
	path    string
	columns source.Columns
}

func NewCSVFileSource(path string, columns source.Columns) *CSVFileSource {
	return &CSVFileSource{path: path, columns: columns.WithDefaults()}
}

func (s *CSVFileSource) Describe() string {
	return "csv:" + s.path
}

func (s *CSVFileSource) ReadAll(ctx context.Context) ([]source.RawRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", source.ErrSourceUnavailable, err)
	}
	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("file %s: %w", s.path, source.ErrSourceNotFound)
		}
		return nil, fmt.Errorf("%w: error opening %s: %v", source.ErrSourceUnavailable, s.path, err)
	}
	defer f.Close()
	return readCSV(f, s.columns, s.path)
}
