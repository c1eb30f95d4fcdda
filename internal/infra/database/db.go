package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"  // PostgreSQL driver
	_ "modernc.org/sqlite" // SQLite driver (registers "sqlite")
)

const pingTimeout = 10 * time.Second

// Dialect identifies the SQL flavour behind a connection.
type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite"
)

type poolSettings struct {
	maxOpen     int
	maxIdle     int
	maxLifetime time.Duration
	maxIdleTime time.Duration
}

var pools = map[Dialect]poolSettings{
	DialectPostgres: {maxOpen: 25, maxIdle: 25, maxLifetime: 5 * time.Minute, maxIdleTime: time.Minute},
	DialectSQLite:   {maxOpen: 4, maxIdle: 4},
}

// NewPostgresConnection opens a pooled PostgreSQL connection and pings it.
func NewPostgresConnection(ctx context.Context, dataSourceName string) (*sql.DB, error) {
	return open(ctx, DialectPostgres, dataSourceName)
}

// NewSQLiteConnection opens an existing SQLite database file read-only.
func NewSQLiteConnection(ctx context.Context, path string) (*sql.DB, error) {
	return open(ctx, DialectSQLite, fmt.Sprintf("file:%s?mode=ro&_pragma=busy_timeout(5000)", path))
}

func open(ctx context.Context, dialect Dialect, dsn string) (*sql.DB, error) {
	db, err := sql.Open(string(dialect), dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s connection: %w", dialect, err)
	}

	p := pools[dialect]
	db.SetMaxOpenConns(p.maxOpen)
	db.SetMaxIdleConns(p.maxIdle)
	db.SetConnMaxLifetime(p.maxLifetime)
	db.SetConnMaxIdleTime(p.maxIdleTime)

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err = db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping %s database: %w", dialect, err)
	}
	return db, nil
}
