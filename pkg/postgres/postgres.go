package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	goose "github.com/pressly/goose/v3"

	_ "github.com/jackc/pgx/v5/stdlib" //nolint:blank-imports

	"github.com/smoralesusma/olsoftware-dashboard/migrations"
)

const (
	pingAttempts = 10
	pingInterval = 500 * time.Millisecond
)

// ConnectToPostgres opens the record store pool and waits until the server answers.
func ConnectToPostgres(ctx context.Context, dsn string, maxConn int32) (*pgxpool.Pool, error) {
	dbCfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	dbCfg.MaxConns = maxConn

	pool, err := pgxpool.NewWithConfig(ctx, dbCfg)
	if err != nil {
		return nil, fmt.Errorf("create db pool: %w", err)
	}

	err = waitReady(ctx, pool)
	if err != nil {
		pool.Close()
		return nil, err
	}

	return pool, nil
}

func waitReady(ctx context.Context, pool *pgxpool.Pool) error {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	var err error

	for attempt := 1; attempt <= pingAttempts; attempt++ {
		err = pool.Ping(ctx)
		if err == nil {
			return nil
		}

		slog.WarnContext(ctx, "postgres not ready", "attempt", attempt, "error", err)

		select {
		case <-ctx.Done():
			return fmt.Errorf("ping: %w", ctx.Err())
		case <-ticker.C:
		}
	}

	return fmt.Errorf("ping: %w", err)
}

// UpMigrations applies the embedded users schema migrations.
func UpMigrations(ctx context.Context, dsn string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return fmt.Errorf("create migration provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("up migrations: %w", err)
	}

	for _, r := range results {
		slog.InfoContext(ctx, "migration applied",
			"version", r.Source.Version,
			"path", r.Source.Path,
			"duration_ms", r.Duration.Milliseconds(),
		)
	}

	return nil
}
