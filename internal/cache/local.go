package cache

import (
	"bytes"
	"context"
	"sync"

	"github.com/jellydator/ttlcache/v3"
)

// LocalFactory keeps every definition in process memory. It is the durable
// tier for single-process deployments and the CLI.
type LocalFactory struct {
	mu     sync.Mutex
	stores map[Definition]*LocalStore
}

// NewLocalFactory creates an empty LocalFactory.
func NewLocalFactory() *LocalFactory {
	return &LocalFactory{stores: make(map[Definition]*LocalStore)}
}

// Make returns the store for def, creating it on first use. Repeated calls
// return the same store.
func (f *LocalFactory) Make(def Definition) Store {
	f.mu.Lock()
	defer f.mu.Unlock()

	s, ok := f.stores[def]
	if !ok {
		s = NewLocalStore()
		f.stores[def] = s
	}
	return s
}

// LocalStore is a Store backed by a ttlcache with expiry disabled.
type LocalStore struct {
	items *ttlcache.Cache[string, []byte]
}

// NewLocalStore creates an empty LocalStore.
func NewLocalStore() *LocalStore {
	return &LocalStore{
		items: ttlcache.New[string, []byte](
			ttlcache.WithTTL[string, []byte](ttlcache.NoTTL),
			ttlcache.WithDisableTouchOnHit[string, []byte](),
		),
	}
}

// Get returns a copy of the cached value.
func (s *LocalStore) Get(_ context.Context, key string) ([]byte, error) {
	item := s.items.Get(key)
	if item == nil {
		return nil, ErrNotFound
	}
	return bytes.Clone(item.Value()), nil
}

// Set stores a copy of value.
func (s *LocalStore) Set(_ context.Context, key string, value []byte) error {
	s.items.Set(key, bytes.Clone(value), ttlcache.NoTTL)
	return nil
}

// Delete removes key.
func (s *LocalStore) Delete(_ context.Context, key string) error {
	s.items.Delete(key)
	return nil
}

// Purge removes every key.
func (s *LocalStore) Purge(_ context.Context) error {
	s.items.DeleteAll()
	return nil
}

// Len returns the number of cached keys.
func (s *LocalStore) Len() int {
	return s.items.Len()
}
