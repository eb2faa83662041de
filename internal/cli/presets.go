package cli

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/ufpeltheme/internal/files"
	"github.com/jmylchreest/ufpeltheme/internal/scss"
)

func newPresetsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List available presets",
		Long: `List the presets bundled with the theme and, when a dataroot is
configured, the presets uploaded by administrators.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tr := a.translator()

			bundled, err := scss.ListPresets(scss.BundledPresets(), tr, a.cfg.Lang)
			if err != nil {
				return err
			}

			table := NewTable([]string{"FILE", "LABEL", "SOURCE"})
			for _, name := range slices.Sorted(maps.Keys(bundled)) {
				table.AddRow([]string{name, bundled[name], "bundled"})
			}

			if a.cfg.DataRoot != "" {
				dir := filepath.Join(a.cfg.DataRoot, "theme", files.AreaPreset)
				if _, err := os.Stat(dir); err == nil {
					uploaded, err := scss.ListPresets(os.DirFS(dir), tr, a.cfg.Lang)
					if err != nil {
						return err
					}
					for _, name := range slices.Sorted(maps.Keys(uploaded)) {
						if _, ok := bundled[name]; ok {
							continue
						}
						table.AddRow([]string{name, uploaded[name], "uploaded"})
					}
				}
			}

			_, err = fmt.Fprint(cmd.OutOrStdout(), table.Render())
			return err
		},
	}
}
