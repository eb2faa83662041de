package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/ufpeltheme/internal/render"
)

func newRenderCmd(a *app) *cobra.Command {
	var (
		page    render.Page
		classes []string
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Preview the theme's page fragments",
		Long: `Render the fragments the theme adds to a page (header, footer, navbar
brand, body attributes, login background, favicon and logo) for the given
course and layout. Teacher names are included when a database is configured.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			store, err := a.settingsStore(ctx)
			if err != nil {
				return err
			}

			page.SiteID = a.cfg.SiteID
			page.Lang = a.cfg.Lang
			page.WWWRoot = a.cfg.WWWRoot
			req := &render.Request{Page: page}

			lookup, err := a.teacherLookup(ctx)
			switch {
			case err == nil:
				req.Teachers = lookup.NewSession()
			case errors.Is(err, errNoDatabase):
				a.logger.Debug("no database configured, teachers are not shown")
			default:
				return err
			}

			theme := render.NewTheme(render.Base{}, store,
				render.WithLogger(a.logger.Named("render")),
				render.WithFiles(a.fileStorage(), a.urls(store)),
				render.WithLabeller(a.translator()),
			)

			sections := []struct {
				name string
				html string
			}{
				{"body", theme.BodyAttributes(ctx, req, classes)},
				{"favicon", theme.Favicon(ctx, req)},
				{"logo", theme.LogoURL(ctx, req, 0, 200)},
				{"navbar", theme.NavbarBrand(ctx, req)},
				{"login", theme.LoginBackground(ctx, req)},
				{"header", theme.FullHeader(ctx, req)},
				{"footer", theme.Footer(ctx, req)},
			}

			var sb strings.Builder
			for _, s := range sections {
				fmt.Fprintf(&sb, "<!-- %s -->\n%s\n", s.name, s.html)
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), sb.String())
			return err
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&page.Layout, "layout", render.LayoutCourse, "page layout (course, incourse, login, standard, ...)")
	flags.Int64Var(&page.Course.ID, "course", 2, "course id")
	flags.StringVar(&page.Course.FullName, "course-name", "Course", "course full name")
	flags.StringVar(&page.Course.ShortName, "course-short", "course", "course short name")
	flags.StringSliceVar(&classes, "class", nil, "extra body classes")
	return cmd
}
