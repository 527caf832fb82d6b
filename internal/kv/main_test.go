package kv_test

import (
	"context"
	"log"
	"os"
	"testing"

	"github.com/pressly/goose/v3"

	"github.com/pkordes/travel-planner/backend/migrations"
	"github.com/pkordes/travel-planner/backend/testutil"
)

// TestMain runs before any test in the kv_test package.
// It applies all pending migrations to the test database so the PGStore
// integration tests never need to think about schema state.
//
// When TEST_DATABASE_URL is not set the migration step is skipped entirely;
// the FileStore unit tests in this package run regardless.
func TestMain(m *testing.M) {
	if os.Getenv("TEST_DATABASE_URL") == "" {
		os.Exit(m.Run())
	}

	// Goose needs database/sql, not a pgx pool. MustOpenSQLDB is used because
	// TestMain has no *testing.T to pass to the regular helpers.
	db := testutil.MustOpenSQLDB(os.Getenv("TEST_DATABASE_URL"))
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		log.Fatalf("TestMain: create goose provider: %v", err)
	}

	if _, err := provider.Up(context.Background()); err != nil {
		log.Fatalf("TestMain: run migrations: %v", err)
	}

	os.Exit(m.Run())
}
