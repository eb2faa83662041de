package files

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/jmylchreest/ufpeltheme/internal/settings"
)

// URLBuilder builds pluginfile URLs for theme setting files. Setting values
// hold the stored file path, e.g. "/logo.png".
type URLBuilder struct {
	wwwroot         string
	systemContextID int64
	store           settings.Store
}

// NewURLBuilder creates a URLBuilder.
func NewURLBuilder(wwwroot string, systemContextID int64, store settings.Store) *URLBuilder {
	return &URLBuilder{
		wwwroot:         strings.TrimRight(wwwroot, "/"),
		systemContextID: systemContextID,
		store:           store,
	}
}

// SettingFileURL returns the URL of the file referenced by setting.
func (b *URLBuilder) SettingFileURL(ctx context.Context, setting, area string) (string, error) {
	value, ok, err := b.store.Get(ctx, setting)
	if err != nil {
		return "", fmt.Errorf("failed to read setting %q: %w", setting, err)
	}
	value = strings.Trim(value, "/")
	if !ok || value == "" {
		return "", nil
	}

	rev, _, err := b.store.Get(ctx, settings.ThemeRev)
	if err != nil {
		return "", fmt.Errorf("failed to read theme revision: %w", err)
	}
	if rev == "" {
		rev = "1"
	}

	return fmt.Sprintf("%s/pluginfile.php/%d/%s/%s/%s/%s",
		b.wwwroot, b.systemContextID, Component, area, rev, escapePath(value)), nil
}

// CourseFileURL returns the URL of a course file.
func (b *URLBuilder) CourseFileURL(courseID int64, area, name string) string {
	return fmt.Sprintf("%s/pluginfile.php/course/%d/%s/%s", b.wwwroot, courseID, area, url.PathEscape(name))
}

func escapePath(p string) string {
	parts := strings.Split(p, "/")
	for i, part := range parts {
		parts[i] = url.PathEscape(part)
	}
	return strings.Join(parts, "/")
}
