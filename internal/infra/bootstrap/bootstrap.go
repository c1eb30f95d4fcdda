// Package bootstrap wires the catalog, data sources and lookup service from configuration.
package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"

	"exam_results_bot/internal/app"
	"exam_results_bot/internal/infra/catalog"
	"exam_results_bot/internal/infra/config"
	"exam_results_bot/internal/infra/database"
	"exam_results_bot/internal/infra/sources"

	"github.com/sirupsen/logrus"
)

// LookupStack is a ready lookup service and the connections it holds.
type LookupStack struct {
	Definition *catalog.Definition
	Service    *app.LookupService
	closers    []func() error
}

// LoadDefinition reads CATALOG_PATH, or returns the built-in catalog when it is empty.
func LoadDefinition(cfg *config.AppConfig) (*catalog.Definition, error) {
	if cfg.CatalogPath == "" {
		return catalog.Default()
	}
	return catalog.Load(cfg.CatalogPath)
}

// NewLookupStack loads the catalog, opens only the databases the catalog uses and
// builds one source adapter per subject.
func NewLookupStack(ctx context.Context, cfg *config.AppConfig, metrics app.Recorder, logger *logrus.Entry) (*LookupStack, error) {
	def, err := LoadDefinition(cfg)
	if err != nil {
		return nil, err
	}
	for _, w := range def.Warnings {
		logger.Warn(w)
	}

	stack := &LookupStack{Definition: def}
	deps := sources.Deps{
		DataDir:    cfg.DataDir,
		HTTPClient: &http.Client{Timeout: cfg.SourceTimeout},
		Timeout:    cfg.SourceTimeout,
	}

	if sources.NeedsKind(def.Sources, sources.KindPostgres) {
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL is not set but the catalog uses postgres sources")
		}
		db, err := database.NewPostgresConnection(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		stack.addDB(db)
		deps.Postgres = db
		logger.Info("Postgres connection established")
	}
	if sources.NeedsKind(def.Sources, sources.KindSQLite) {
		if cfg.SQLitePath == "" {
			stack.Close()
			return nil, fmt.Errorf("SQLITE_PATH is not set but the catalog uses sqlite sources")
		}
		db, err := database.NewSQLiteConnection(ctx, cfg.SQLitePath)
		if err != nil {
			stack.Close()
			return nil, err
		}
		stack.addDB(db)
		deps.SQLite = db
		logger.Info("SQLite database opened")
	}

	srcs, err := sources.Build(def.Sources, deps)
	if err != nil {
		stack.Close()
		return nil, err
	}
	stack.Service = app.NewLookupService(def.Catalog, srcs, metrics, logger, cfg.FetchConcurrency)
	logger.WithField("subjects", len(def.Catalog.Subjects())).Info("Lookup service initialized")
	return stack, nil
}

func (s *LookupStack) addDB(db *sql.DB) {
	s.closers = append(s.closers, db.Close)
}

// Close releases every connection the stack opened.
func (s *LookupStack) Close() {
	for _, c := range s.closers {
		_ = c()
	}
	s.closers = nil
}
