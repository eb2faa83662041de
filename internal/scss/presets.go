package scss

import (
	"fmt"
	"io/fs"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jmylchreest/ufpeltheme/internal/settings"
)

// Labeller looks up localised strings.
type Labeller interface {
	String(lang, key string, arg ...any) string
}

// ListPresets maps every .scss file in fsys to a display label ("dark_blue.scss"
// becomes "Dark blue"). The default preset is always present.
func ListPresets(fsys fs.FS, tr Labeller, lang string) (map[string]string, error) {
	choices := make(map[string]string)

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("failed to read preset directory: %w", err)
	}
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".scss") || name == ".scss" {
			continue
		}
		choices[name] = presetLabel(strings.TrimSuffix(name, ".scss"))
	}

	if _, ok := choices[settings.DefaultPreset]; !ok {
		choices[settings.DefaultPreset] = tr.String(lang, "default")
	}
	return choices, nil
}

func presetLabel(base string) string {
	base = strings.ReplaceAll(base, "_", " ")
	r, size := utf8.DecodeRuneInString(base)
	if r == utf8.RuneError {
		return base
	}
	return string(unicode.ToUpper(r)) + base[size:]
}
