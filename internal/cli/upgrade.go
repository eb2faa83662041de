package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/ufpeltheme/internal/settings"
	"github.com/jmylchreest/ufpeltheme/internal/upgrade"
)

func newUpgradeCmd(a *app) *cobra.Command {
	var from int64

	cmd := &cobra.Command{
		Use:   "upgrade",
		Short: "Upgrade stored theme settings",
		Long: `Run the upgrade steps newer than the installed version and reset the
theme caches. The installed version is read from the "version" setting unless
--from is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			store, err := a.settingsStore(ctx)
			if err != nil {
				return err
			}
			caches, err := a.cacheFactory()
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("from") {
				installed, _, err := store.Get(ctx, settings.Version)
				if err != nil {
					return fmt.Errorf("failed to read installed version: %w", err)
				}
				if installed != "" {
					if from, err = strconv.ParseInt(installed, 10, 64); err != nil {
						return fmt.Errorf("invalid installed version %q: %w", installed, err)
					}
				}
			}

			report, err := upgrade.New(store, caches, upgrade.WithLogger(a.logger.Named("upgrade"))).Run(ctx, from)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(report.Applied) == 0 {
				fmt.Fprintf(out, "No upgrade steps to apply from %d\n", from)
			}
			for _, v := range report.Applied {
				fmt.Fprintf(out, "Applied upgrade %d\n", v)
			}
			fmt.Fprintf(out, "Theme revision: %d\n", report.ThemeRev)
			return nil
		},
	}

	cmd.Flags().Int64Var(&from, "from", 0, "version to upgrade from")
	return cmd
}
