package repository

import (
	"context"
	"os"
	"sync"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/smoralesusma/olsoftware-dashboard/pkg/postgres"
)

var (
	testDB     *pgxpool.Pool
	testDBOnce sync.Once
)

// SetupTestDatabase connects to TEST_POSTGRES_DSN, migrates it and empties the tables.
// The calling test is skipped when the variable is not set.
func SetupTestDatabase(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dsn := os.Getenv("TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("TEST_POSTGRES_DSN is not set")
	}

	testDBOnce.Do(func() {
		require.NoError(t, postgres.UpMigrations(context.Background(), dsn))

		db, err := pgxpool.New(context.Background(), dsn)
		require.NoError(t, err)

		testDB = db
	})

	require.NotNil(t, testDB)

	CleanupDatabase(t, testDB)

	return testDB
}

func CleanupDatabase(t *testing.T, db *pgxpool.Pool) {
	t.Helper()

	tables := []string{
		usersTable,
	}

	for _, table := range tables {
		_, err := db.Exec(context.Background(), "DELETE FROM "+table)
		if err != nil {
			t.Logf("Warning: failed to cleanup table %s: %v", table, err)
		}
	}
}
