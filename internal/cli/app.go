package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/jmylchreest/ufpeltheme/internal/cache"
	"github.com/jmylchreest/ufpeltheme/internal/config"
	"github.com/jmylchreest/ufpeltheme/internal/files"
	"github.com/jmylchreest/ufpeltheme/internal/i18n"
	"github.com/jmylchreest/ufpeltheme/internal/settings"
	"github.com/jmylchreest/ufpeltheme/internal/teachers"
)

var errNoDatabase = errors.New("a database url is required for this command")

// app holds the resources shared by the commands of one invocation.
type app struct {
	configFile string
	sets       []string

	cfg    *config.Config
	logger hclog.Logger

	pool   *pgxpool.Pool
	redis  redis.UniversalClient
	store  settings.Store
	caches cache.Factory
}

// settingsStore returns the theme settings store, opening the database on first
// use. Without a database the store lives in memory for this invocation.
func (a *app) settingsStore(ctx context.Context) (settings.Store, error) {
	if a.store != nil {
		return a.store, nil
	}

	if a.cfg.DatabaseURL != "" {
		pool, err := a.database(ctx)
		if err != nil {
			return nil, err
		}
		a.store = settings.NewPostgresStore(pool, a.cfg.TablePrefix)
	} else {
		a.store = settings.NewMemoryStore(nil)
	}

	for _, kv := range a.sets {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid --set %q, expected name=value", kv)
		}
		if err := a.store.Set(ctx, name, value); err != nil {
			return nil, fmt.Errorf("failed to set %s: %w", name, err)
		}
	}
	return a.store, nil
}

func (a *app) database(ctx context.Context) (*pgxpool.Pool, error) {
	if a.pool != nil {
		return a.pool, nil
	}
	if a.cfg.DatabaseURL == "" {
		return nil, errNoDatabase
	}
	pool, err := pgxpool.New(ctx, a.cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	a.pool = pool
	return pool, nil
}

// cacheFactory returns the durable cache: Redis when configured, otherwise
// an in-process cache.
func (a *app) cacheFactory() (cache.Factory, error) {
	if a.caches != nil {
		return a.caches, nil
	}
	if a.cfg.RedisURL == "" {
		a.logger.Debug("no redis url configured, using in-process cache")
		a.caches = cache.NewLocalFactory()
		return a.caches, nil
	}
	client, err := cache.NewRedisClient(a.cfg.RedisURL)
	if err != nil {
		return nil, err
	}
	a.redis = client
	a.caches = cache.NewRedisFactory(client, a.cfg.TablePrefix)
	return a.caches, nil
}

func (a *app) teacherLookup(ctx context.Context) (*teachers.Lookup, error) {
	pool, err := a.database(ctx)
	if err != nil {
		return nil, err
	}
	caches, err := a.cacheFactory()
	if err != nil {
		return nil, err
	}

	opts := []teachers.Option{
		teachers.WithLogger(a.logger.Named("teachers")),
		teachers.WithNameFormatter(teachers.NewNameFormatter(a.cfg.NameFormat)),
	}
	if a.cfg.SingleFlight {
		opts = append(opts, teachers.WithSingleFlight())
	}
	return teachers.NewLookup(
		teachers.NewPostgresSource(pool, a.cfg.TablePrefix),
		caches.Make(cache.CourseTeachers),
		opts...,
	)
}

// fileStorage returns the uploaded file storage, or nil without a dataroot.
func (a *app) fileStorage() files.Storage {
	if a.cfg.DataRoot == "" {
		return nil
	}
	return files.NewDirStorage(a.cfg.DataRoot)
}

func (a *app) urls(store settings.Store) *files.URLBuilder {
	return files.NewURLBuilder(a.cfg.WWWRoot, a.cfg.SystemCtx, store)
}

func (a *app) translator() *i18n.Translator {
	return i18n.New()
}

// close releases the database pool and Redis client. It is safe to call more
// than once.
func (a *app) close() {
	if a.redis != nil {
		if err := a.redis.Close(); err != nil && a.logger != nil {
			a.logger.Debug("failed to close redis client", "error", err)
		}
		a.redis, a.caches = nil, nil
	}
	if a.pool != nil {
		a.pool.Close()
		a.pool, a.store = nil, nil
	}
}
