package kv

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test, giving free
// per-test isolation without any manual cleanup.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PGStore is the Postgres implementation of Store.
// Values live in the kv_blobs table owned by the goose migrations.
type PGStore struct {
	db db
}

// NewPGStore constructs a PGStore backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewPGStore(db db) *PGStore {
	return &PGStore{db: db}
}

// Get reads the value stored for key. Returns ErrNoKey if it was never set.
func (s *PGStore) Get(ctx context.Context, key string) ([]byte, error) {
	const q = `SELECT value FROM kv_blobs WHERE key = @key`

	var value []byte
	err := s.db.QueryRow(ctx, q, pgx.NamedArgs{"key": key}).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNoKey
		}
		return nil, fmt.Errorf("kv.PGStore.Get: %w", err)
	}
	return value, nil
}

// Set overwrites the value stored for key as a single atomic unit.
func (s *PGStore) Set(ctx context.Context, key string, value []byte) error {
	const q = `
		INSERT INTO kv_blobs (key, value)
		VALUES (@key, @value)
		ON CONFLICT (key) DO UPDATE
		SET value = EXCLUDED.value, updated_at = now()`

	if _, err := s.db.Exec(ctx, q, pgx.NamedArgs{"key": key, "value": value}); err != nil {
		return fmt.Errorf("kv.PGStore.Set: %w", err)
	}
	return nil
}

// Delete removes the value stored for key. Deleting a missing key is a no-op.
func (s *PGStore) Delete(ctx context.Context, key string) error {
	const q = `DELETE FROM kv_blobs WHERE key = @key`

	if _, err := s.db.Exec(ctx, q, pgx.NamedArgs{"key": key}); err != nil {
		return fmt.Errorf("kv.PGStore.Delete: %w", err)
	}
	return nil
}
