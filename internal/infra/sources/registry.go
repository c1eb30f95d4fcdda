package sources

import (
	"database/sql"
	"fmt"
	"net/http"
	"path/filepath"
	"time"

	"exam_results_bot/internal/domain/source"
	"exam_results_bot/internal/infra/database"
)

// Source kinds accepted in the catalog.
const (
	KindCSV      = "csv"
	KindHTTPCSV  = "http_csv"
	KindPostgres = "postgres"
	KindSQLite   = "sqlite"
)

// Spec binds one subject to its backing store.
type Spec struct {
	Kind    string         `koanf:"kind"`
	Path    string         `koanf:"path"`  // csv
	URL     string         `koanf:"url"`   // http_csv
	Table   string         `koanf:"table"` // postgres, sqlite
	Columns source.Columns `koanf:"columns"`
}

// Validate checks that the fields the kind needs are present.
func (s Spec) Validate() error {
	switch s.Kind {
	case KindCSV:
		if s.Path == "" {
			return fmt.Errorf("csv source needs a path")
		}
	case KindHTTPCSV:
		if s.URL == "" {
			return fmt.Errorf("http_csv source needs a url")
		}
	case KindPostgres, KindSQLite:
		if s.Table == "" {
			return fmt.Errorf("%s source needs a table", s.Kind)
		}
	default:
		return fmt.Errorf("unknown source kind %q", s.Kind)
	}
	return nil
}

// Deps are the shared clients source adapters are built on.
// A nil database leaves its sources permanently unavailable.
type Deps struct {
	DataDir    string
	Postgres   *sql.DB
	SQLite     *sql.DB
	HTTPClient *http.Client
	Timeout    time.Duration
}

// Build creates one adapter per subject from specs keyed by subject id.
func Build(specs map[string]Spec, deps Deps) (map[string]source.Source, error) {
	out := make(map[string]source.Source, len(specs))
	for subjectID, spec := range specs {
		if err := spec.Validate(); err != nil {
			return nil, fmt.Errorf("subject %s: %w", subjectID, err)
		}
		switch spec.Kind {
		case KindCSV:
			path := spec.Path
			if !filepath.IsAbs(path) && deps.DataDir != "" {
				path = filepath.Join(deps.DataDir, path)
			}
			out[subjectID] = NewCSVFileSource(path, spec.Columns)
		case KindHTTPCSV:
			out[subjectID] = NewHTTPSheetSource(spec.URL, spec.Columns, deps.HTTPClient, deps.Timeout)
		case KindPostgres:
			out[subjectID] = database.NewSubjectTableSource(deps.Postgres, database.DialectPostgres, spec.Table, spec.Columns, deps.Timeout)
		case KindSQLite:
			out[subjectID] = database.NewSubjectTableSource(deps.SQLite, database.DialectSQLite, spec.Table, spec.Columns, deps.Timeout)
		}
	}
	return out, nil
}

// NeedsKind reports whether any spec uses kind.
func NeedsKind(specs map[string]Spec, kind string) bool {
	for _, s := range specs {
		if s.Kind == kind {
			return true
		}
	}
	return false
}
