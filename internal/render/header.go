package render

import (
	"context"

	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"github.com/jmylchreest/ufpeltheme/internal/files"
	"github.com/jmylchreest/ufpeltheme/internal/settings"
	"github.com/jmylchreest/ufpeltheme/internal/teachers"
)

// CourseHeader is the data shown in the course header banner.
type CourseHeader struct {
	CourseID   int64
	CourseName string
	ImageURL   string
	Teachers   []string
	Lang       string
	Overlay    bool
}

// Node renders the header, labelling the teacher line in h.Lang.
func (h *CourseHeader) Node(labels teachers.Labeller) g.Node {
	teachersText := teachers.FormatText(labels, h.Lang, h.Teachers)

	classes := "ufpel-course-header"
	if h.Overlay {
		classes += " has-overlay"
	}

	return html.Div(
		html.ID("ufpel-course-header"),
		html.Class(classes),
		g.If(h.ImageURL != "", html.Style("background-image: url('"+cssQuote(h.ImageURL)+"');")),
		g.If(h.Overlay, html.Div(html.Class("ufpel-course-header-overlay"))),
		html.Div(
			html.Class("ufpel-course-header-content"),
			html.H1(html.Class("ufpel-course-title"), g.Text(h.CourseName)),
			g.If(teachersText != "", html.P(html.Class("ufpel-course-teachers"), g.Text(teachersText))),
		),
	)
}

// courseHeader collects the header data, or returns nil when there is
// neither an image nor a teacher to show.
func (t *Theme) courseHeader(ctx context.Context, req *Request, snap settings.Snapshot) *CourseHeader {
	course := req.Page.Course
	h := &CourseHeader{
		CourseID:   course.ID,
		CourseName: course.FullName,
		Lang:       req.Page.Lang,
	}

	if snap.Bool(settings.ShowCourseImage) && t.storage != nil && t.urls != nil {
		u, err := files.CourseImageURL(ctx, t.storage, t.urls, course.ID)
		if err != nil {
			t.logger.Warn("failed to find course image", "course", course.ID, "error", err)
		}
		h.ImageURL = u
	}

	if snap.Bool(settings.ShowTeachers) && req.Teachers != nil {
		names, err := req.Teachers.Teachers(ctx, course.ID)
		if err != nil {
			t.logger.Warn("failed to look up course teachers", "course", course.ID, "error", err)
		}
		h.Teachers = names
	}

	if h.ImageURL == "" && len(h.Teachers) == 0 {
		return nil
	}
	h.Overlay = snap.Bool(settings.CourseHeaderOverlay)
	return h
}
