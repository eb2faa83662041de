package settings

import (
	"context"
	"testing"
)

func TestSnapshotBool(t *testing.T) {
	snap := Snapshot{
		"on":    "1",
		"yes":   "true",
		"off":   "0",
		"false": "false",
		"empty": "",
	}

	tests := []struct {
		name string
		want bool
	}{
		{"on", true},
		{"yes", true},
		{"off", false},
		{"false", false},
		{"empty", false},
		{"missing", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := snap.Bool(tt.name); got != tt.want {
				t.Errorf("Bool(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(map[string]string{PrimaryColor: "#003366"})

	t.Run("get distinguishes unset from empty", func(t *testing.T) {
		if err := store.Set(ctx, RawSCSS, ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		v, ok, err := store.Get(ctx, RawSCSS)
		if err != nil || !ok || v != "" {
			t.Errorf("Get(rawscss) = %q, %v, %v; want \"\", true, nil", v, ok, err)
		}
		_, ok, _ = store.Get(ctx, CustomCSS)
		if ok {
			t.Error("expected customcss to be unset")
		}
	})

	t.Run("unset removes value", func(t *testing.T) {
		if err := store.Unset(ctx, PrimaryColor); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, ok, _ := store.Get(ctx, PrimaryColor); ok {
			t.Error("expected primarycolor to be removed")
		}
	})

	t.Run("snapshot is a copy", func(t *testing.T) {
		if err := store.Set(ctx, Preset, "dark.scss"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		snap, err := store.Snapshot(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		snap[Preset] = "changed.scss"
		v, _, _ := store.Get(ctx, Preset)
		if v != "dark.scss" {
			t.Errorf("store modified through snapshot: %q", v)
		}
	})
}
