// Package files serves the theme's uploaded setting files and locates course
// images in the host file storage.
package files

import (
	"context"
	"errors"
	"slices"
	"time"
)

// File areas owned by the theme.
const (
	AreaLoginBackground = "loginbackgroundimage"
	AreaPreset          = "preset"
	AreaFavicon         = "favicon"
	AreaLogo            = "logo"
)

// servedAreas are the only areas the pluginfile entry point will serve.
var servedAreas = []string{AreaLoginBackground, AreaPreset, AreaFavicon, AreaLogo}

// Allowed reports whether area may be served.
func Allowed(area string) bool {
	return slices.Contains(servedAreas, area)
}

// Host context levels.
const (
	ContextSystem         = 10
	ContextUser           = 30
	ContextCourseCategory = 40
	ContextCourse         = 50
	ContextModule         = 70
	ContextBlock          = 80
)

// ErrNotFound is returned by Storage when a file does not exist.
var ErrNotFound = errors.New("files: not found")

// File is a stored file and its content.
type File struct {
	Area     string
	Path     string
	Name     string
	MimeType string
	Content  []byte
	ModTime  time.Time
}

// Storage is the host file storage, as seen by the theme.
type Storage interface {
	// Get returns a theme file stored in the system context under area.
	Get(ctx context.Context, area, path, name string) (*File, error)

	// CourseOverviewFiles returns the course's overview files ordered by name.
	CourseOverviewFiles(ctx context.Context, courseID int64) ([]*File, error)
}

// URLs builds public URLs for stored files.
type URLs interface {
	// SettingFileURL returns the URL of the file referenced by a theme
	// setting, or "" when the setting is empty.
	SettingFileURL(ctx context.Context, setting, area string) (string, error)

	// CourseFileURL returns the URL of a course file.
	CourseFileURL(courseID int64, area, name string) string
}
