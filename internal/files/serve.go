package files

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/ufpeltheme/internal/security"
)

// Component is the component segment of theme file URLs.
const Component = "theme_ufpel"

// Request asks for a theme file.
type Request struct {
	ContextLevel int
	Area         string
	// Args are the URL path segments after the area: the theme revision
	// followed by the file path and name.
	Args          []string
	ForceDownload bool
}

// Server is the pluginfile entry point for the theme.
type Server struct {
	storage Storage
	logger  hclog.Logger
}

// NewServer creates a Server reading from storage.
func NewServer(storage Storage, logger hclog.Logger) *Server {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Server{storage: storage, logger: logger}
}

// Serve returns the requested file. It declines (ok == false) for any
// context other than system, any area outside the allowed set, malformed
// arguments and missing files.
func (s *Server) Serve(ctx context.Context, req Request) (file *File, ok bool) {
	if req.ContextLevel != ContextSystem {
		return nil, false
	}
	if !Allowed(req.Area) {
		return nil, false
	}
	if len(req.Args) < 2 {
		return nil, false
	}
	// The first argument is the theme revision, used only for cache busting.
	if _, err := strconv.ParseInt(req.Args[0], 10, 64); err != nil {
		return nil, false
	}

	path, name, err := security.SplitFileArgs(req.Args[1:])
	if err != nil {
		s.logger.Debug("rejected file arguments", "area", req.Area, "error", err)
		return nil, false
	}

	f, err := s.storage.Get(ctx, req.Area, path, name)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			s.logger.Warn("failed to read theme file", "area", req.Area, "file", path+name, "error", err)
		}
		return nil, false
	}
	return f, true
}

// ContextResolver maps a host context id to its context level.
type ContextResolver interface {
	ContextLevel(ctx context.Context, contextID int64) (int, error)
}

// SystemContext resolves a single system context id; every other id is
// treated as a course context.
type SystemContext int64

// ContextLevel implements ContextResolver.
func (s SystemContext) ContextLevel(_ context.Context, contextID int64) (int, error) {
	if contextID == int64(s) {
		return ContextSystem, nil
	}
	return ContextCourse, nil
}

// Routes mounts the pluginfile endpoint:
//
//	GET /pluginfile.php/{contextid}/theme_ufpel/{filearea}/{revision}/{path...}/{filename}
func (s *Server) Routes(contexts ContextResolver) http.Handler {
	r := chi.NewRouter()
	r.Get("/pluginfile.php/{contextid}/"+Component+"/{filearea}/*", func(w http.ResponseWriter, req *http.Request) {
		s.handle(w, req, contexts)
	})
	return r
}

func (s *Server) handle(w http.ResponseWriter, r *http.Request, contexts ContextResolver) {
	contextID, err := strconv.ParseInt(chi.URLParam(r, "contextid"), 10, 64)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	level, err := contexts.ContextLevel(r.Context(), contextID)
	if err != nil {
		s.logger.Warn("failed to resolve context", "context", contextID, "error", err)
		http.NotFound(w, r)
		return
	}

	req := Request{
		ContextLevel:  level,
		Area:          chi.URLParam(r, "filearea"),
		Args:          strings.Split(chi.URLParam(r, "*"), "/"),
		ForceDownload: r.URL.Query().Get("forcedownload") != "",
	}

	f, ok := s.Serve(r.Context(), req)
	if !ok {
		http.NotFound(w, r)
		return
	}

	if f.MimeType != "" {
		w.Header().Set("Content-Type", f.MimeType)
	}
	w.Header().Set("Cache-Control", "public, max-age=604800")
	if req.ForceDownload {
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", f.Name))
	}
	http.ServeContent(w, r, f.Name, f.ModTime, bytes.NewReader(f.Content))
}
