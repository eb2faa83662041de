package render

import (
	"context"
	"slices"
	"strings"

	"github.com/hashicorp/go-hclog"
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"github.com/jmylchreest/ufpeltheme/internal/files"
	"github.com/jmylchreest/ufpeltheme/internal/i18n"
	"github.com/jmylchreest/ufpeltheme/internal/settings"
	"github.com/jmylchreest/ufpeltheme/internal/teachers"
)

// Body classes added by the theme.
const (
	ClassTheme           = "theme-ufpel"
	ClassVersion         = "ufpel-v1"
	ClassLoginBackground = "has-login-background"
	ClassCourseHeader    = "has-course-header"
)

// TextFormatter formats administrator-entered rich text for display.
type TextFormatter interface {
	FormatHTML(ctx context.Context, text string) string
}

// TextFormatterFunc adapts a function to TextFormatter.
type TextFormatterFunc func(ctx context.Context, text string) string

// FormatHTML calls f.
func (f TextFormatterFunc) FormatHTML(ctx context.Context, text string) string {
	return f(ctx, text)
}

// Option configures a Theme.
type Option func(*Theme)

// WithLogger sets the logger.
func WithLogger(logger hclog.Logger) Option {
	return func(t *Theme) {
		t.logger = logger
	}
}

// WithFiles sets the file storage used for course images and the URL
// builder used for setting files.
func WithFiles(storage files.Storage, urls files.URLs) Option {
	return func(t *Theme) {
		t.storage = storage
		t.urls = urls
	}
}

// WithLabeller sets the localised string source.
func WithLabeller(tr teachers.Labeller) Option {
	return func(t *Theme) {
		t.labels = tr
	}
}

// WithTextFormatter sets the formatter applied to the footer content.
func WithTextFormatter(f TextFormatter) Option {
	return func(t *Theme) {
		t.text = f
	}
}

// Theme decorates a parent Renderer with the theme's configured output.
// Failures are logged and the parent's output is used instead.
type Theme struct {
	parent  Renderer
	store   settings.Store
	storage files.Storage
	urls    files.URLs
	labels  teachers.Labeller
	text    TextFormatter
	logger  hclog.Logger
}

var _ Renderer = (*Theme)(nil)

// NewTheme creates a Theme over parent, reading configuration from store.
func NewTheme(parent Renderer, store settings.Store, opts ...Option) *Theme {
	t := &Theme{
		parent: parent,
		store:  store,
		labels: i18n.New(),
		text: TextFormatterFunc(func(_ context.Context, text string) string {
			return text
		}),
		logger: hclog.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *Theme) snapshot(ctx context.Context) (settings.Snapshot, bool) {
	snap, err := t.store.Snapshot(ctx)
	if err != nil {
		t.logger.Warn("failed to load theme settings", "error", err)
		return nil, false
	}
	return snap, true
}

// FullHeader prepends the course header to the parent header.
func (t *Theme) FullHeader(ctx context.Context, req *Request) string {
	header := t.parent.FullHeader(ctx, req)

	snap, ok := t.snapshot(ctx)
	if !ok || !showCourseHeader(snap, req.Page) {
		return header
	}

	data := t.courseHeader(ctx, req, snap)
	if data == nil {
		return header
	}
	return renderNode(data.Node(t.labels)) + header
}

// Footer prepends the configured footer content to the parent footer.
func (t *Theme) Footer(ctx context.Context, req *Request) string {
	footer := t.parent.Footer(ctx, req)

	snap, ok := t.snapshot(ctx)
	if !ok || !snap.Has(settings.FooterContent) {
		return footer
	}

	content := t.text.FormatHTML(ctx, snap.Value(settings.FooterContent))
	return renderNode(html.Div(html.Class("ufpel-footer-content"), g.Raw(content))) + footer
}

// BodyAttributes adds the theme's body classes before delegating.
func (t *Theme) BodyAttributes(ctx context.Context, req *Request, classes []string) string {
	classes = append(slices.Clone(classes), ClassTheme, ClassVersion)

	if req.Page.Layout == LayoutLogin && t.settingFileURL(ctx, settings.LoginBackgroundImage, files.AreaLoginBackground) != "" {
		classes = append(classes, ClassLoginBackground)
	}
	if snap, ok := t.snapshot(ctx); ok && showCourseHeader(snap, req.Page) {
		classes = append(classes, ClassCourseHeader)
	}

	return t.parent.BodyAttributes(ctx, req, classes)
}

// NavbarBrand renders the logo as the navbar brand when one is configured.
func (t *Theme) NavbarBrand(ctx context.Context, req *Request) string {
	logo := t.LogoURL(ctx, req, 0, 40)
	if logo == "" {
		return t.parent.NavbarBrand(ctx, req)
	}

	name := req.Page.Course.ShortName
	return renderNode(html.A(
		html.Href(req.Page.WWWRoot+"/"),
		html.Class("navbar-brand has-logo"),
		g.Attr("aria-label", name),
		html.Img(
			html.Src(logo),
			html.Alt(name),
			html.Class("logo"),
			html.Style("max-height: 40px; width: auto;"),
		),
	))
}

// LoginBackground renders the login background image on the login layout.
func (t *Theme) LoginBackground(ctx context.Context, req *Request) string {
	if req.Page.Layout != LayoutLogin {
		return ""
	}
	u := t.settingFileURL(ctx, settings.LoginBackgroundImage, files.AreaLoginBackground)
	if u == "" {
		return ""
	}

	style := "background-image: url('" + cssQuote(u) + "');" +
		"background-size: cover;" +
		"background-position: center;" +
		"background-repeat: no-repeat;"
	return renderNode(html.Div(html.Class("login-background-image"), html.Style(style)))
}

// Favicon returns the uploaded favicon URL, or the parent's.
func (t *Theme) Favicon(ctx context.Context, req *Request) string {
	if u := t.settingFileURL(ctx, settings.Favicon, files.AreaFavicon); u != "" {
		return u
	}
	return t.parent.Favicon(ctx, req)
}

// LogoURL returns the uploaded logo URL, or the parent's.
func (t *Theme) LogoURL(ctx context.Context, req *Request, maxWidth, maxHeight int) string {
	if u := t.settingFileURL(ctx, settings.Logo, files.AreaLogo); u != "" {
		return u
	}
	return t.parent.LogoURL(ctx, req, maxWidth, maxHeight)
}

func (t *Theme) settingFileURL(ctx context.Context, setting, area string) string {
	if t.urls == nil {
		return ""
	}
	u, err := t.urls.SettingFileURL(ctx, setting, area)
	if err != nil {
		t.logger.Warn("failed to resolve setting file", "setting", setting, "error", err)
		return ""
	}
	return u
}

func showCourseHeader(snap settings.Snapshot, page Page) bool {
	if !snap.Bool(settings.ShowCourseImage) {
		return false
	}
	if page.Layout != LayoutCourse && page.Layout != LayoutInCourse {
		return false
	}
	return !page.IsSite()
}

func cssQuote(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, `\`, `\\`), "'", `\'`)
}
