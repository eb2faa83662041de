// Package upgrade migrates stored theme settings and cached data between
// releases. Each step runs once, gated on the version being upgraded from,
// and records a savepoint when it completes.
package upgrade

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/ufpeltheme/internal/cache"
	"github.com/jmylchreest/ufpeltheme/internal/settings"
)

// Release versions that carry an upgrade step.
const (
	VersionColourSettings = 2025072901
	VersionCacheRedefined = 2025090100
)

// Upgrader applies upgrade steps to a settings store and cache.
type Upgrader struct {
	store  settings.Store
	caches cache.Factory
	logger hclog.Logger
	now    func() time.Time
}

// Option configures an Upgrader.
type Option func(*Upgrader)

// WithLogger sets the logger.
func WithLogger(logger hclog.Logger) Option {
	return func(u *Upgrader) {
		u.logger = logger
	}
}

// WithClock sets the time source used for theme revisions.
func WithClock(now func() time.Time) Option {
	return func(u *Upgrader) {
		u.now = now
	}
}

// New creates an Upgrader.
func New(store settings.Store, caches cache.Factory, opts ...Option) *Upgrader {
	u := &Upgrader{
		store:  store,
		caches: caches,
		logger: hclog.NewNullLogger(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Report describes a completed upgrade.
type Report struct {
	From     int64
	Applied  []int64
	ThemeRev int64
}

type step struct {
	version int64
	name    string
	apply   func(ctx context.Context, u *Upgrader) error
}

var steps = []step{
	{version: VersionColourSettings, name: "colour settings", apply: migrateColours},
	{version: VersionCacheRedefined, name: "cache definitions", apply: purgeDefinitions},
}

// Run upgrades from the given installed version. Steps newer than from run
// in order; theme caches are always reset at the end.
func (u *Upgrader) Run(ctx context.Context, from int64) (*Report, error) {
	report := &Report{From: from}

	for _, s := range steps {
		if from >= s.version {
			continue
		}
		u.logger.Info("applying upgrade step", "version", s.version, "step", s.name)
		if err := s.apply(ctx, u); err != nil {
			return report, fmt.Errorf("failed to apply upgrade %d (%s): %w", s.version, s.name, err)
		}
		if err := u.savepoint(ctx, s.version); err != nil {
			return report, err
		}
		report.Applied = append(report.Applied, s.version)
	}

	rev, err := u.ResetThemeCaches(ctx)
	if err != nil {
		return report, err
	}
	report.ThemeRev = rev
	return report, nil
}

// ResetThemeCaches bumps the theme revision so that generated CSS and
// setting file URLs change. It returns the new revision.
func (u *Upgrader) ResetThemeCaches(ctx context.Context) (int64, error) {
	current, _, err := u.store.Get(ctx, settings.ThemeRev)
	if err != nil {
		return 0, fmt.Errorf("failed to read theme revision: %w", err)
	}

	next := u.now().Unix()
	if prev, err := strconv.ParseInt(current, 10, 64); err == nil && prev >= next {
		next = prev + 1
	}

	if err := u.store.Set(ctx, settings.ThemeRev, strconv.FormatInt(next, 10)); err != nil {
		return 0, fmt.Errorf("failed to store theme revision: %w", err)
	}
	u.logger.Debug("reset theme caches", "themerev", next)
	return next, nil
}

func (u *Upgrader) savepoint(ctx context.Context, version int64) error {
	if err := u.store.Set(ctx, settings.Version, strconv.FormatInt(version, 10)); err != nil {
		return fmt.Errorf("failed to record savepoint %d: %w", version, err)
	}
	return nil
}

// migrateColours copies the legacy brandcolor into primarycolor and seeds
// defaults for the colour settings added in the same release.
func migrateColours(ctx context.Context, u *Upgrader) error {
	brand, hasBrand, err := u.store.Get(ctx, settings.BrandColor)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", settings.BrandColor, err)
	}
	_, hasPrimary, err := u.store.Get(ctx, settings.PrimaryColor)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", settings.PrimaryColor, err)
	}
	if hasBrand && !hasPrimary {
		// brandcolor is kept for older presets that still reference it.
		if err := u.store.Set(ctx, settings.PrimaryColor, brand); err != nil {
			return fmt.Errorf("failed to set %s: %w", settings.PrimaryColor, err)
		}
		u.logger.Info("migrated legacy brand colour", "value", brand)
	}

	seeds := []struct{ name, value string }{
		{settings.BackgroundColor, settings.DefaultBackgroundColor},
		{settings.HighlightColor, settings.DefaultHighlightColor},
		{settings.ContentTextColor, settings.DefaultContentTextColor},
		{settings.HighlightTextColor, settings.DefaultHighlightTextColor},
	}
	for _, s := range seeds {
		_, ok, err := u.store.Get(ctx, s.name)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", s.name, err)
		}
		if ok {
			continue
		}
		if err := u.store.Set(ctx, s.name, s.value); err != nil {
			return fmt.Errorf("failed to set %s: %w", s.name, err)
		}
	}

	_, err = u.ResetThemeCaches(ctx)
	return err
}

func purgeDefinitions(ctx context.Context, u *Upgrader) error {
	return cache.PurgeDefinitions(ctx, u.caches, cache.CourseTeachers, cache.ThemeSettings)
}
