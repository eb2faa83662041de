package settings

import (
	"context"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
)

func TestPostgresStore_Integration(t *testing.T) {
	dsn := os.Getenv("UFPEL_TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("UFPEL_TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatalf("failed to connect: %v", err)
	}
	defer pool.Close()

	_, err = pool.Exec(ctx, `CREATE TABLE IF NOT EXISTS ufpeltest_config_plugins (
		id BIGSERIAL PRIMARY KEY,
		plugin VARCHAR(100) NOT NULL,
		name VARCHAR(100) NOT NULL,
		value TEXT,
		UNIQUE (plugin, name))`)
	if err != nil {
		t.Fatalf("failed to create table: %v", err)
	}
	t.Cleanup(func() {
		_, _ = pool.Exec(context.Background(), "DROP TABLE ufpeltest_config_plugins")
	})

	store := NewPostgresStore(pool, "ufpeltest_")

	if err := store.Set(ctx, PrimaryColor, "#FF00AA"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := store.Set(ctx, PrimaryColor, "#00AAFF"); err != nil {
		t.Fatalf("Set overwrite: %v", err)
	}

	v, ok, err := store.Get(ctx, PrimaryColor)
	if err != nil || !ok || v != "#00AAFF" {
		t.Errorf("Get = %q, %v, %v", v, ok, err)
	}

	snap, err := store.Snapshot(ctx)
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	if snap.Value(PrimaryColor) != "#00AAFF" {
		t.Errorf("snapshot primarycolor = %q", snap.Value(PrimaryColor))
	}

	if err := store.Unset(ctx, PrimaryColor); err != nil {
		t.Fatalf("Unset: %v", err)
	}
	if _, ok, _ := store.Get(ctx, PrimaryColor); ok {
		t.Error("expected setting to be removed")
	}
}
