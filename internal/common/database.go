package common

import (
	"context"
	"database/sql"
	"log/slog"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	_ "modernc.org/sqlite"

	"github.com/finaid-tools/docverifier/gen/ent"
	"github.com/finaid-tools/docverifier/internal/repository"
)

// DBResult bundles the opened client with its cleanup.
type DBResult struct {
	Client  *ent.Client
	Cleanup func()
}

// InitDatabase opens either the configured Postgres database or, when inmem is
// set, a throwaway in-memory SQLite database with the schema migrated. The
// in-memory mode backs the batch CLI and local development.
func InitDatabase(ctx context.Context, cfg *Config, inmem bool, logger *slog.Logger) (*DBResult, error) {
	if inmem {
		db, err := sql.Open("sqlite", "file:docverifier?mode=memory&cache=shared&_pragma=foreign_keys(1)")
		if err != nil {
			logger.Error("failed to open in-memory sqlite", "error", err)
			return nil, err
		}
		drv := entsql.OpenDB(dialect.SQLite, db)
		client := ent.NewClient(ent.Driver(drv))
		if err := client.Schema.Create(ctx); err != nil {
			logger.Error("failed to migrate in-memory schema", "error", err)
			_ = client.Close()
			return nil, err
		}
		logger.Info("using in-memory sqlite database")
		return &DBResult{
			Client: client,
			Cleanup: func() {
				if err := client.Close(); err != nil {
					logger.Error("failed to close ent client", "error", err)
				}
			},
		}, nil
	}

	dbCfg := repository.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}
	client, pool, err := repository.Open(ctx, dbCfg, logger)
	if err != nil {
		return nil, err
	}
	return &DBResult{
		Client:  client,
		Cleanup: func() { repository.Close(client, pool, logger) },
	}, nil
}
