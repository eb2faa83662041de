package scss

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/ufpeltheme/internal/files"
	"github.com/jmylchreest/ufpeltheme/internal/security"
	"github.com/jmylchreest/ufpeltheme/internal/settings"
)

// PresetSource records where preset content came from.
type PresetSource int

// Preset sources, in lookup order.
const (
	PresetNone PresetSource = iota
	PresetUploaded
	PresetBundled
	PresetParent
)

// String returns a short name for the source.
func (s PresetSource) String() string {
	switch s {
	case PresetUploaded:
		return "uploaded"
	case PresetBundled:
		return "bundled"
	case PresetParent:
		return "parent"
	default:
		return "none"
	}
}

// PresetLoader resolves preset content, checking administrator uploads first
// and falling back to the bundled presets, then to the parent theme's
// default preset on disk.
type PresetLoader struct {
	storage      files.Storage
	bundled      fs.FS
	parentPreset string
	logger       hclog.Logger
}

// NewPresetLoader creates a loader. storage may be nil when uploads are not
// available; dirroot is the host installation root ("" to skip the parent
// fallback).
func NewPresetLoader(storage files.Storage, dirroot string) *PresetLoader {
	l := &PresetLoader{
		storage: storage,
		bundled: BundledPresets(),
		logger:  hclog.NewNullLogger(),
	}
	if dirroot != "" {
		l.parentPreset = filepath.Join(dirroot, "theme", "boost", "scss", "preset", settings.DefaultPreset)
	}
	return l
}

// WithBundled replaces the bundled preset filesystem.
func (l *PresetLoader) WithBundled(fsys fs.FS) *PresetLoader {
	l.bundled = fsys
	return l
}

// WithLogger sets the logger.
func (l *PresetLoader) WithLogger(logger hclog.Logger) *PresetLoader {
	l.logger = logger
	return l
}

// Load returns the content of the named preset. An empty or unsafe name
// selects the default preset. Load never fails: when nothing can be read it
// returns "" and PresetNone.
func (l *PresetLoader) Load(ctx context.Context, name string) (string, PresetSource) {
	name = security.CleanFilename(name)
	if name == "" {
		name = settings.DefaultPreset
	}

	if l.storage != nil {
		f, err := l.storage.Get(ctx, files.AreaPreset, "/", name)
		if err == nil {
			return string(f.Content), PresetUploaded
		}
		if !errors.Is(err, files.ErrNotFound) {
			l.logger.Debug("failed to read uploaded preset", "preset", name, "error", err)
		}
	}

	if l.bundled != nil {
		for _, candidate := range []string{name, settings.DefaultPreset} {
			if b, err := fs.ReadFile(l.bundled, candidate); err == nil {
				return string(b), PresetBundled
			}
		}
	}

	if l.parentPreset != "" {
		if b, err := os.ReadFile(l.parentPreset); err == nil {
			return string(b), PresetParent
		}
	}

	return "", PresetNone
}
