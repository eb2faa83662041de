// Package scss assembles the theme stylesheet source from the configured
// preset, colour settings and administrator SCSS, and post-processes the
// compiled CSS. Compilation itself is left to the host.
package scss

import (
	"embed"
	"io/fs"
	"text/template"
)

//go:embed scss/preset/*.scss scss/post.scss pre.scss.tmpl
var bundled embed.FS

// preTemplate renders the variable block.
var preTemplate = template.Must(template.ParseFS(bundled, "pre.scss.tmpl"))

// BundledPresets returns the presets shipped with the theme.
func BundledPresets() fs.FS {
	sub, err := fs.Sub(bundled, "scss/preset")
	if err != nil {
		panic(err) // embedded path is fixed at build time
	}
	return sub
}

func postSCSS() string {
	b, err := bundled.ReadFile("scss/post.scss")
	if err != nil {
		return ""
	}
	return string(b)
}
