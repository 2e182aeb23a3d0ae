package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/pkordes/itinerary-planner/migrations"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Postgres is a KV backend storing each record as a JSONB row in kv_records.
type Postgres struct {
	db    db
	close func()
}

var _ KV = (*Postgres)(nil)

// NewPostgres wraps an existing connection, pool or transaction.
// The caller owns db; Close is a no-op.
func NewPostgres(db db) *Postgres {
	return &Postgres{db: db, close: func() {}}
}

// OpenPostgres connects to databaseURL, verifies the connection and applies
// all pending migrations before returning the backend.
func OpenPostgres(ctx context.Context, databaseURL string) (*Postgres, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("store: create pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("store: ping: %w", err)
	}
	if err := Migrate(ctx, pool); err != nil {
		pool.Close()
		return nil, err
	}
	return &Postgres{db: pool, close: pool.Close}, nil
}

// Migrate applies the embedded goose migrations through pool.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	sqlDB := stdlib.OpenDBFromPool(pool)
	defer sqlDB.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, sqlDB, migrations.FS)
	if err != nil {
		return fmt.Errorf("store: goose provider: %w", err)
	}
	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("store: migrate: %w", err)
	}
	return nil
}

// Get implements KV.
func (p *Postgres) Get(ctx context.Context, key string) ([]byte, error) {
	const q = `SELECT value FROM kv_records WHERE key = @key`

	var v []byte
	err := p.db.QueryRow(ctx, q, pgx.NamedArgs{"key": key}).Scan(&v)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("store.Postgres.Get: %w", err)
	}
	return v, nil
}

// Put implements KV.
func (p *Postgres) Put(ctx context.Context, key string, value []byte) error {
	const q = `
		INSERT INTO kv_records (key, value)
		VALUES (@key, @value)
		ON CONFLICT (key) DO UPDATE
		SET value      = EXCLUDED.value,
		    updated_at = now()`

	args := pgx.NamedArgs{
		"key":   key,
		"value": string(value), // sent as text so Postgres parses it as jsonb
	}
	if _, err := p.db.Exec(ctx, q, args); err != nil {
		return fmt.Errorf("store.Postgres.Put: %w", err)
	}
	return nil
}

// Close closes the pool when the backend opened it.
func (p *Postgres) Close() error {
	p.close()
	return nil
}
