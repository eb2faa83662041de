package teachers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/hashicorp/go-hclog"
	"golang.org/x/sync/singleflight"

	"github.com/jmylchreest/ufpeltheme/internal/cache"
)

// ErrNoDurableCache is returned by NewLookup without a durable store. Running
// without one would send every page view to the database.
var ErrNoDurableCache = errors.New("teachers: durable cache store is required")

// Option configures a Lookup.
type Option func(*Lookup)

// WithLogger sets the logger for non-fatal cache problems.
func WithLogger(logger hclog.Logger) Option {
	return func(l *Lookup) {
		l.logger = logger
	}
}

// WithNameFormatter sets how full names are built.
func WithNameFormatter(f *NameFormatter) Option {
	return func(l *Lookup) {
		l.names = f
	}
}

// WithSingleFlight collapses concurrent durable-tier misses for the same
// course into one source query within this process.
func WithSingleFlight() Option {
	return func(l *Lookup) {
		l.flight = &singleflight.Group{}
	}
}

// Lookup is the shared, concurrency-safe part of the teacher cache. It owns
// the durable tier and the roster source; per-request state lives in Session.
type Lookup struct {
	source  Source
	durable cache.Store
	names   *NameFormatter
	logger  hclog.Logger
	flight  *singleflight.Group
}

// NewLookup creates a Lookup over source with durable as the shared tier.
func NewLookup(source Source, durable cache.Store, opts ...Option) (*Lookup, error) {
	if durable == nil {
		return nil, ErrNoDurableCache
	}
	if source == nil {
		return nil, errors.New("teachers: source is required")
	}

	l := &Lookup{
		source:  source,
		durable: durable,
		names:   NewNameFormatter(""),
		logger:  hclog.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l, nil
}

// NewSession starts the in-memory tier for one request.
func (l *Lookup) NewSession() *Session {
	return &Session{
		lookup: l,
		names:  make(map[int64][]string),
	}
}

// load reads through the durable tier to the source.
func (l *Lookup) load(ctx context.Context, courseID int64) ([]string, error) {
	key := strconv.FormatInt(courseID, 10)

	raw, err := l.durable.Get(ctx, key)
	switch {
	case err == nil:
		var names []string
		if err := json.Unmarshal(raw, &names); err == nil && names != nil {
			lookupsTotal.WithLabelValues(TierDurable).Inc()
			return names, nil
		}
		l.logger.Warn("discarding undecodable teacher cache entry", "course", courseID)
	case errors.Is(err, cache.ErrNotFound):
		// Cold: read through to the source.
	default:
		l.logger.Warn("teacher cache read failed", "course", courseID, "error", err)
	}

	if l.flight == nil {
		return l.fetch(ctx, courseID, key)
	}
	// The shared fetch outlives any one caller; each caller still stops
	// waiting when its own context ends.
	ch := l.flight.DoChan(key, func() (any, error) {
		return l.fetch(context.WithoutCancel(ctx), courseID, key)
	})
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.([]string), nil
	}
}

// fetch queries the source and populates the durable tier.
func (l *Lookup) fetch(ctx context.Context, courseID int64, key string) ([]string, error) {
	names, err := l.query(ctx, courseID)
	if err != nil {
		return nil, err
	}

	raw, err := json.Marshal(names)
	if err != nil {
		return nil, fmt.Errorf("failed to encode teachers of course %d: %w", courseID, err)
	}
	if err := l.durable.Set(ctx, key, raw); err != nil {
		l.logger.Warn("teacher cache write failed", "course", courseID, "error", err)
	}
	return names, nil
}

func (l *Lookup) query(ctx context.Context, courseID int64) ([]string, error) {
	lookupsTotal.WithLabelValues(TierSource).Inc()

	roleIDs, err := l.source.TeacherRoleIDs(ctx)
	if err != nil {
		return nil, err
	}
	if len(roleIDs) == 0 {
		return []string{}, nil
	}

	users, err := l.source.CourseTeachers(ctx, courseID, roleIDs)
	if err != nil {
		return nil, err
	}
	sortUsers(users)

	names := make([]string, 0, len(users))
	for _, u := range users {
		names = append(names, l.names.Format(u))
	}
	return names, nil
}

// Session is the in-memory tier, scoped to one request. It is not safe for
// concurrent use. Returned slices are shared and must not be modified.
type Session struct {
	lookup *Lookup
	names  map[int64][]string
}

// Teachers returns the ordered teacher names of courseID.
func (s *Session) Teachers(ctx context.Context, courseID int64) ([]string, error) {
	if names, ok := s.names[courseID]; ok {
		lookupsTotal.WithLabelValues(TierMemory).Inc()
		return names, nil
	}

	names, err := s.lookup.load(ctx, courseID)
	if err != nil {
		return nil, err
	}
	s.names[courseID] = names
	return names, nil
}
