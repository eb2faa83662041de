package settings

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DBTX is the subset of pgxpool.Pool used by the PostgreSQL adapters.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

var _ DBTX = (*pgxpool.Pool)(nil)

// PostgresStore reads and writes the host's plugin configuration table
// ({prefix}config_plugins), scoped to Component.
type PostgresStore struct {
	db    DBTX
	table string
}

// NewPostgresStore creates a store over the host database. prefix is the
// host table prefix (e.g. "mdl_").
func NewPostgresStore(db DBTX, prefix string) *PostgresStore {
	return &PostgresStore{
		db:    db,
		table: pgx.Identifier{prefix + "config_plugins"}.Sanitize(),
	}
}

// Get returns the value of name.
func (s *PostgresStore) Get(ctx context.Context, name string) (string, bool, error) {
	var value string
	err := s.db.QueryRow(ctx,
		"SELECT value FROM "+s.table+" WHERE plugin = $1 AND name = $2",
		Component, name,
	).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read setting %q: %w", name, err)
	}
	return value, true, nil
}

// Set stores value under name, replacing any existing value.
func (s *PostgresStore) Set(ctx context.Context, name, value string) error {
	_, err := s.db.Exec(ctx,
		"INSERT INTO "+s.table+" (plugin, name, value) VALUES ($1, $2, $3) "+
			"ON CONFLICT (plugin, name) DO UPDATE SET value = EXCLUDED.value",
		Component, name, value,
	)
	if err != nil {
		return fmt.Errorf("failed to write setting %q: %w", name, err)
	}
	return nil
}

// Unset removes name.
func (s *PostgresStore) Unset(ctx context.Context, name string) error {
	_, err := s.db.Exec(ctx,
		"DELETE FROM "+s.table+" WHERE plugin = $1 AND name = $2",
		Component, name,
	)
	if err != nil {
		return fmt.Errorf("failed to remove setting %q: %w", name, err)
	}
	return nil
}

// Snapshot returns every setting stored for the theme.
func (s *PostgresStore) Snapshot(ctx context.Context) (Snapshot, error) {
	rows, err := s.db.Query(ctx,
		"SELECT name, value FROM "+s.table+" WHERE plugin = $1",
		Component,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}

	type kv struct {
		Name  string
		Value string
	}
	pairs, err := pgx.CollectRows(rows, pgx.RowToStructByPos[kv])
	if err != nil {
		return nil, fmt.Errorf("failed to scan settings: %w", err)
	}

	snap := make(Snapshot, len(pairs))
	for _, p := range pairs {
		snap[p.Name] = p.Value
	}
	return snap, nil
}
