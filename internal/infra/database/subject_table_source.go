package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"exam_results_bot/internal/domain/source"

	"github.com/lib/pq"
)

const pqUndefinedTable = "42P01"

// SubjectTableSource reads one subject's results from a SQL table.
// Every row of the table is a candidate record.
type SubjectTableSource struct {
	db      *sql.DB
	dialect Dialect
	table   string
	columns source.Columns
	timeout time.Duration
}

func NewSubjectTableSource(db *sql.DB, dialect Dialect, table string, columns source.Columns, timeout time.Duration) *SubjectTableSource {
	return &SubjectTableSource{
		db:      db,
		dialect: dialect,
		table:   table,
		columns: columns.WithDefaults(),
		timeout: timeout,
	}
}

func (r *SubjectTableSource) Describe() string {
	return fmt.Sprintf("%s:%s", r.dialect, r.table)
}

func (r *SubjectTableSource) ReadAll(ctx context.Context) ([]source.RawRecord, error) {
	if r.db == nil {
		return nil, fmt.Errorf("%w: no %s connection configured", source.ErrSourceUnavailable, r.dialect)
	}
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	query := "SELECT * FROM " + r.quotedTable()
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		if r.isUndefinedTable(err) {
			return nil, fmt.Errorf("table %s: %w", r.table, source.ErrSourceNotFound)
		}
		return nil, fmt.Errorf("%w: error querying table %s: %v", source.ErrSourceUnavailable, r.table, err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("%w: error reading columns of %s: %v", source.ErrSourceUnavailable, r.table, err)
	}
	idx, err := source.MapHeader(cols, r.columns)
	if err != nil {
		return nil, err
	}

	values := make([]any, len(cols))
	dest := make([]any, len(cols))
	for i := range values {
		dest[i] = &values[i]
	}

	records := make([]source.RawRecord, 0)
	for rows.Next() {
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("%w: error scanning row of %s: %v", source.ErrSourceUnavailable, r.table, err)
		}
		row := make([]string, len(values))
		for i, v := range values {
			row[i] = cellText(v)
		}
		records = append(records, idx.Record(row))
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: error iterating rows of %s: %v", source.ErrSourceUnavailable, r.table, err)
	}
	return records, nil
}

func (r *SubjectTableSource) quotedTable() string {
	parts := strings.Split(r.table, ".")
	for i, p := range parts {
		if r.dialect == DialectPostgres {
			parts[i] = pq.QuoteIdentifier(p)
		} else {
			parts[i] = `"` + strings.ReplaceAll(p, `"`, `""`) + `"`
		}
	}
	return strings.Join(parts, ".")
}

func (r *SubjectTableSource) isUndefinedTable(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == pqUndefinedTable
	}
	return strings.Contains(err.Error(), "no such table")
}

// cellText renders a scanned value as the text a spreadsheet cell would show.
// Whole floats print without a fraction so numeric phone columns stay digit-only.
func cellText(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case []byte:
		return string(t)
	case string:
		return t
	case int64:
		return strconv.FormatInt(t, 10)
	case float64:
		if t == math.Trunc(t) && math.Abs(t) < 1e15 {
			return strconv.FormatInt(int64(t), 10)
		}
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	case time.Time:
		return t.Format(time.RFC3339)
	default:
		return fmt.Sprint(t)
	}
}
