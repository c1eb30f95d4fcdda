package sources

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"exam_results_bot/internal/domain/source"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestCSVFileSource_ReadAll(t *testing.T) {
	path := writeFile(t, t.TempDir(), "english.csv",
		"\ufeffName,Phone Number,Score,Extra\n"+
			"Abebe,0911223344,45/50,x\n"+
			"\"Kebede, Sara\",+251 922 000 000,78\n"+
			"Short,0933\n")

	src := NewCSVFileSource(path, source.Columns{})
	assert.Equal(t, "csv:"+path, src.Describe())

	records, err := src.ReadAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []source.RawRecord{
		{Name: "Abebe", Phone: "0911223344", Score: "45/50"},
		{Name: "Kebede, Sara", Phone: "+251 922 000 000", Score: "78"},
		{Name: "Short", Phone: "0933", Score: ""},
	}, records)
}

func TestCSVFileSource_HeaderOnly(t *testing.T) {
	path := writeFile(t, t.TempDir(), "maths.csv", "Name,Phone Number,Score\n")

	records, err := NewCSVFileSource(path, source.Columns{}).ReadAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestCSVFileSource_Schema(t *testing.T) {
	dir := t.TempDir()

	_, err := NewCSVFileSource(writeFile(t, dir, "a.csv", "Name,Score\nAbebe,10\n"), source.Columns{}).ReadAll(context.Background())
	var schemaErr *source.SchemaError
	require.True(t, errors.As(err, &schemaErr))
	assert.Equal(t, []string{"Phone Number"}, schemaErr.Missing)

	_, err = NewCSVFileSource(writeFile(t, dir, "empty.csv", ""), source.Columns{}).ReadAll(context.Background())
	require.True(t, errors.As(err, &schemaErr))
	assert.Equal(t, []string{"Name", "Phone Number", "Score"}, schemaErr.Missing)
}

func TestCSVFileSource_Missing(t *testing.T) {
	_, err := NewCSVFileSource(filepath.Join(t.TempDir(), "nope.csv"), source.Columns{}).ReadAll(context.Background())
	assert.ErrorIs(t, err, source.ErrSourceNotFound)
}

func TestCSVFileSource_Malformed(t *testing.T) {
	path := writeFile(t, t.TempDir(), "bad.csv", "Name,Phone Number,Score\n\"unterminated,0911,10\n")

	_, err := NewCSVFileSource(path, source.Columns{}).ReadAll(context.Background())
	assert.ErrorIs(t, err, source.ErrSourceUnavailable)
	assert.NotErrorIs(t, err, source.ErrSourceNotFound)
}

func TestCSVFileSource_CancelledContext(t *testing.T) {
	path := writeFile(t, t.TempDir(), "english.csv", "Name,Phone Number,Score\n")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewCSVFileSource(path, source.Columns{}).ReadAll(ctx)
	assert.ErrorIs(t, err, source.ErrSourceUnavailable)
}
