package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/ufpeltheme/internal/settings"
)

func newPreferencesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "preferences",
		Short: "List the user preferences the theme registers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			table := NewTable([]string{"NAME", "TYPE", "DEFAULT"})
			for _, p := range settings.UserPreferences() {
				table.AddRow([]string{p.Name, string(p.Type), strconv.FormatBool(p.Default)})
			}
			_, err := fmt.Fprint(cmd.OutOrStdout(), table.Render())
			return err
		},
	}
}
