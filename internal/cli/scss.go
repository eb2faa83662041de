package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/ufpeltheme/internal/scss"
)

func newSCSSCmd(a *app) *cobra.Command {
	var part string

	cmd := &cobra.Command{
		Use:   "scss",
		Short: "Print the assembled theme SCSS",
		Long: `Print the SCSS source the host compiles for the theme.

Parts:
  all    preset, variables, raw initial SCSS, theme styles and raw SCSS
  main   preset and theme styles
  pre    variables and raw initial SCSS
  extra  raw SCSS`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			store, err := a.settingsStore(ctx)
			if err != nil {
				return err
			}

			loader := scss.NewPresetLoader(a.fileStorage(), a.cfg.DirRoot)
			assembler := scss.NewAssembler(store, loader).WithLogger(a.logger.Named("scss"))

			var out string
			switch part {
			case "all":
				out, err = assembler.Assemble(ctx)
			case "main":
				out, err = assembler.MainSCSS(ctx)
			case "pre":
				out, err = assembler.PreSCSS(ctx)
			case "extra":
				out, err = assembler.ExtraSCSS(ctx)
			default:
				return fmt.Errorf("unknown part %q (expected all, main, pre or extra)", part)
			}
			if err != nil {
				return err
			}
			_, err = io.WriteString(cmd.OutOrStdout(), out)
			return err
		},
	}

	cmd.Flags().StringVar(&part, "part", "all", "part of the stylesheet to print (all, main, pre, extra)")
	return cmd
}

func newCSSCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "css",
		Short: "Work with compiled CSS",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "process [file]",
		Short: "Post-process compiled CSS",
		Long: `Read compiled CSS from file (or stdin), prepend custom font imports,
substitute the login background image and append custom CSS.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			var in []byte
			var err error
			if len(args) == 1 && args[0] != "-" {
				in, err = os.ReadFile(args[0])
			} else {
				in, err = io.ReadAll(cmd.InOrStdin())
			}
			if err != nil {
				return fmt.Errorf("failed to read css: %w", err)
			}

			store, err := a.settingsStore(ctx)
			if err != nil {
				return err
			}
			processor := scss.NewProcessor(store, a.urls(store)).WithLogger(a.logger.Named("css"))
			out, err := processor.Process(ctx, string(in))
			if err != nil {
				return err
			}
			_, err = io.WriteString(cmd.OutOrStdout(), out)
			return err
		},
	})
	return cmd
}
