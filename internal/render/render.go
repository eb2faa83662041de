// Package render decorates the host's page output: course header, footer,
// navbar brand, body classes, login background, favicon and logo.
package render

import (
	"context"
	"strings"

	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"github.com/jmylchreest/ufpeltheme/internal/teachers"
)

// Page layouts the theme reacts to.
const (
	LayoutCourse   = "course"
	LayoutInCourse = "incourse"
	LayoutLogin    = "login"
)

// Course is the course a page belongs to.
type Course struct {
	ID        int64
	FullName  string
	ShortName string
}

// Page describes the page being rendered.
type Page struct {
	Layout  string
	Course  Course
	SiteID  int64
	Lang    string
	WWWRoot string
}

// IsSite reports whether the page belongs to the site front page course.
func (p Page) IsSite() bool {
	return p.Course.ID == p.SiteID
}

// Request is one render pass. Teachers is the per-request teacher name
// cache and may be nil when teacher lookup is unavailable.
type Request struct {
	Page     Page
	Teachers *teachers.Session
}

// Renderer produces the page fragments the host asks the theme for.
type Renderer interface {
	FullHeader(ctx context.Context, req *Request) string
	Footer(ctx context.Context, req *Request) string
	BodyAttributes(ctx context.Context, req *Request, classes []string) string
	NavbarBrand(ctx context.Context, req *Request) string
	LoginBackground(ctx context.Context, req *Request) string
	Favicon(ctx context.Context, req *Request) string
	LogoURL(ctx context.Context, req *Request, maxWidth, maxHeight int) string
}

// Base is the parent theme's behaviour with nothing configured.
type Base struct{}

var _ Renderer = Base{}

// FullHeader renders the page heading.
func (Base) FullHeader(_ context.Context, req *Request) string {
	return renderNode(html.Header(
		html.ID("page-header"),
		html.Class("header-maxwidth d-print-none"),
		html.H1(html.Class("h2"), g.Text(req.Page.Course.FullName)),
	))
}

// Footer renders the page footer.
func (Base) Footer(context.Context, *Request) string {
	return renderNode(html.Footer(html.ID("page-footer"), html.Class("footer-popover bg-white")))
}

// BodyAttributes renders the body tag attributes.
func (Base) BodyAttributes(_ context.Context, req *Request, classes []string) string {
	all := append([]string{"pagelayout-" + req.Page.Layout}, classes...)
	return `id="page-` + escapeAttr(req.Page.Layout) + `" class="` + escapeAttr(strings.Join(all, " ")) + `"`
}

// NavbarBrand renders the site name as the navbar brand.
func (Base) NavbarBrand(_ context.Context, req *Request) string {
	return renderNode(html.A(
		html.Href(req.Page.WWWRoot+"/"),
		html.Class("navbar-brand"),
		html.Span(html.Class("site-name"), g.Text(req.Page.Course.ShortName)),
	))
}

// LoginBackground renders nothing.
func (Base) LoginBackground(context.Context, *Request) string { return "" }

// Favicon returns the parent theme's favicon URL.
func (Base) Favicon(_ context.Context, req *Request) string {
	return req.Page.WWWRoot + "/theme/image.php/boost/theme/1/favicon"
}

// LogoURL returns "": the parent theme has no logo of its own.
func (Base) LogoURL(context.Context, *Request, int, int) string { return "" }

func renderNode(n g.Node) string {
	var sb strings.Builder
	if err := n.Render(&sb); err != nil {
		return ""
	}
	return sb.String()
}

func escapeAttr(s string) string {
	return renderNode(g.Text(s))
}
