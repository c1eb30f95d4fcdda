package database

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSQLiteConnection_ReadOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.db")
	rw, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	_, err = rw.Exec(`CREATE TABLE english ("Name" TEXT)`)
	require.NoError(t, err)
	require.NoError(t, rw.Close())

	db, err := NewSQLiteConnection(context.Background(), path)
	require.NoError(t, err)
	defer db.Close()

	assert.Equal(t, 4, db.Stats().MaxOpenConnections)
	_, err = db.Exec(`INSERT INTO english VALUES ('Abebe')`)
	assert.Error(t, err)
}

func TestNewSQLiteConnection_MissingFile(t *testing.T) {
	_, err := NewSQLiteConnection(context.Background(), filepath.Join(t.TempDir(), "missing.db"))
	assert.ErrorContains(t, err, "failed to ping sqlite database")
}
