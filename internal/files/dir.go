package files

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"mime"
	"os"
	"path/filepath"
	"strconv"
)

// DirStorage is a Storage over a directory tree:
//
//	<root>/theme/<area>/<path>/<name>
//	<root>/course/<courseid>/overviewfiles/<name>
type DirStorage struct {
	root string
}

// NewDirStorage creates a DirStorage rooted at root.
func NewDirStorage(root string) *DirStorage {
	return &DirStorage{root: root}
}

// Get reads a theme file.
func (d *DirStorage) Get(_ context.Context, area, path, name string) (*File, error) {
	full := filepath.Join(d.root, "theme", area, filepath.FromSlash(path), name)
	f, err := readFile(full)
	if err != nil {
		return nil, err
	}
	f.Area = area
	f.Path = path
	return f, nil
}

// CourseOverviewFiles reads every overview file of a course, ordered by name.
func (d *DirStorage) CourseOverviewFiles(_ context.Context, courseID int64) ([]*File, error) {
	dir := filepath.Join(d.root, "course", strconv.FormatInt(courseID, 10), AreaOverviewFiles)
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", dir, err)
	}

	var out []*File
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		f, err := readFile(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, err
		}
		f.Area = AreaOverviewFiles
		f.Path = "/"
		out = append(out, f)
	}
	return out, nil
}

func readFile(full string) (*File, error) {
	info, err := os.Stat(full)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", full, err)
	}
	if info.IsDir() {
		return nil, ErrNotFound
	}

	content, err := os.ReadFile(full) // #nosec G304 - path built from cleaned segments under root
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", full, err)
	}

	name := filepath.Base(full)
	return &File{
		Name:     name,
		MimeType: mime.TypeByExtension(filepath.Ext(name)),
		Content:  content,
		ModTime:  info.ModTime(),
	}, nil
}
