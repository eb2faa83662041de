package cli

import (
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"golang.org/x/term"
)

// newLogger builds the CLI logger. Colour is only used when w is a terminal.
func newLogger(level string, w io.Writer) hclog.Logger {
	colour := hclog.ColorOff
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		colour = hclog.ForceColor
	}

	lvl := hclog.LevelFromString(level)
	if lvl == hclog.NoLevel {
		lvl = hclog.Info
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:   "ufpeltheme",
		Level:  lvl,
		Output: w,
		Color:  colour,
	})
}
