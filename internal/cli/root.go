// Package cli provides the command-line interface for ufpeltheme.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/ufpeltheme/internal/config"
	"github.com/jmylchreest/ufpeltheme/internal/version"
)

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	return newRootCmd(&app{})
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "ufpeltheme",
		Short: "UFPel theme tooling",
		Long: `ufpeltheme assembles the UFPel theme stylesheet, post-processes compiled
CSS, serves the theme's setting files and runs settings upgrades against a
host installation.

Configuration is read from ufpeltheme.yaml, UFPEL_* environment variables and
flags, in increasing order of precedence.`,
		Version:      version.Short(),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cmd.Flags(), a.configFile)
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.logger = newLogger(cfg.LogLevel, cmd.ErrOrStderr())
			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "config file (default ./ufpeltheme.yaml)")
	flags.String("log-level", "", "log level (trace, debug, info, warn, error)")
	flags.String("dirroot", "", "host installation root, used for the parent preset")
	flags.String("dataroot", "", "directory holding uploaded theme and course files")
	flags.String("wwwroot", "", "public site URL")
	flags.String("database-url", "", "PostgreSQL URL of the host database")
	flags.String("table-prefix", "", "host table prefix")
	flags.String("redis-url", "", "Redis URL for the shared cache")
	flags.String("lang", "", "language for labels (en, pt_br)")
	flags.Int64("site-id", 0, "id of the site front page course")
	flags.Int64("system-context-id", 0, "id of the system context")
	flags.StringArrayVar(&a.sets, "set", nil, "set a theme setting, name=value (repeatable)")

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(
		newVersionCmd(),
		newSCSSCmd(a),
		newCSSCmd(a),
		newPresetsCmd(a),
		newPreferencesCmd(),
		newTeachersCmd(a),
		newRenderCmd(a),
		newUpgradeCmd(a),
		newServeCmd(a),
	)
	closeAfterRun(rootCmd, a)
	return rootCmd
}

// closeAfterRun releases the app's connections when any command returns,
// including on error, where cobra skips the post-run hooks.
func closeAfterRun(cmd *cobra.Command, a *app) {
	for _, c := range cmd.Commands() {
		closeAfterRun(c, a)
	}
	if run := cmd.RunE; run != nil {
		cmd.RunE = func(cmd *cobra.Command, args []string) error {
			defer a.close()
			return run(cmd, args)
		}
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including release, build date, commit hash, and Go version.`,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}
