// Package cache provides the durable cache tier: a key/value store that
// outlives a single request and is shared between requests and processes.
//
// Stores are grouped by Definition, the same way the host platform groups
// its caches, so that a whole definition can be purged at once.
package cache

import (
	"context"
	"errors"
	"fmt"
)

// ErrNotFound is returned by Store.Get when the key is not cached.
var ErrNotFound = errors.New("cache: key not found")

// Definition names a group of cached values owned by a component.
type Definition struct {
	Component string
	Area      string
}

// String returns "component/area".
func (d Definition) String() string {
	return d.Component + "/" + d.Area
}

// Definitions owned by the theme.
var (
	CourseTeachers = Definition{Component: "theme_ufpel", Area: "courseteachers"}
	ThemeSettings  = Definition{Component: "theme_ufpel", Area: "themesettings"}
)

// Store is one cache definition's key/value space. Values never expire on
// their own; they are removed by Delete or Purge.
type Store interface {
	// Get returns ErrNotFound when key is absent.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	// Purge removes every key of the definition.
	Purge(ctx context.Context) error
}

// Factory creates the Store for a definition.
type Factory interface {
	Make(def Definition) Store
}

// PurgeDefinitions purges each of defs, stopping at the first failure.
func PurgeDefinitions(ctx context.Context, f Factory, defs ...Definition) error {
	for _, def := range defs {
		if err := f.Make(def).Purge(ctx); err != nil {
			return fmt.Errorf("failed to purge cache %s: %w", def, err)
		}
	}
	return nil
}
