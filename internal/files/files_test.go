package files

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/jmylchreest/ufpeltheme/internal/settings"
)

// memStorage is a Storage fixture keyed by area + path + name.
type memStorage struct {
	files    map[string]*File
	overview map[int64][]*File
}

func (m *memStorage) Get(_ context.Context, area, path, name string) (*File, error) {
	f, ok := m.files[area+path+name]
	if !ok {
		return nil, ErrNotFound
	}
	return f, nil
}

func (m *memStorage) CourseOverviewFiles(_ context.Context, courseID int64) ([]*File, error) {
	return m.overview[courseID], nil
}

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{R: 0, G: 0x33, B: 0x66, A: 0xff})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("failed to encode png: %v", err)
	}
	return buf.Bytes()
}

func newTestServer() *Server {
	return NewServer(&memStorage{
		files: map[string]*File{
			"logo/logo.png":     {Name: "logo.png", MimeType: "image/png", Content: []byte("logo")},
			"preset/dark.scss":  {Name: "dark.scss", Content: []byte("$x: 1;")},
			"favicon/a/fav.ico": {Name: "fav.ico", Content: []byte("ico")},
		},
	}, nil)
}

func TestServer_Serve(t *testing.T) {
	ctx := context.Background()
	srv := newTestServer()

	t.Run("serves allowed area in system context", func(t *testing.T) {
		f, ok := srv.Serve(ctx, Request{ContextLevel: ContextSystem, Area: AreaLogo, Args: []string{"123", "logo.png"}})
		if !ok {
			t.Fatal("expected file to be served")
		}
		if string(f.Content) != "logo" {
			t.Errorf("unexpected content %q", f.Content)
		}
	})

	t.Run("nested path", func(t *testing.T) {
		if _, ok := srv.Serve(ctx, Request{ContextLevel: ContextSystem, Area: AreaFavicon, Args: []string{"1", "a", "fav.ico"}}); !ok {
			t.Error("expected nested file to be served")
		}
	})

	declines := []struct {
		name string
		req  Request
	}{
		{"course context", Request{ContextLevel: ContextCourse, Area: AreaLogo, Args: []string{"1", "logo.png"}}},
		{"user context", Request{ContextLevel: ContextUser, Area: AreaLogo, Args: []string{"1", "logo.png"}}},
		{"unknown area", Request{ContextLevel: ContextSystem, Area: "backup", Args: []string{"1", "logo.png"}}},
		{"overview area", Request{ContextLevel: ContextSystem, Area: AreaOverviewFiles, Args: []string{"1", "logo.png"}}},
		{"missing revision", Request{ContextLevel: ContextSystem, Area: AreaLogo, Args: []string{"logo.png"}}},
		{"non-numeric revision", Request{ContextLevel: ContextSystem, Area: AreaLogo, Args: []string{"x", "logo.png"}}},
		{"traversal", Request{ContextLevel: ContextSystem, Area: AreaLogo, Args: []string{"1", "..", "logo.png"}}},
		{"missing file", Request{ContextLevel: ContextSystem, Area: AreaPreset, Args: []string{"1", "nope.scss"}}},
	}
	for _, tt := range declines {
		t.Run("declines "+tt.name, func(t *testing.T) {
			if _, ok := srv.Serve(ctx, tt.req); ok {
				t.Error("expected decline")
			}
		})
	}
}

func TestAllowed(t *testing.T) {
	for _, area := range []string{"loginbackgroundimage", "preset", "favicon", "logo"} {
		if !Allowed(area) {
			t.Errorf("expected %q to be allowed", area)
		}
	}
	for _, area := range []string{"", "overviewfiles", "LOGO", "backgroundimage"} {
		if Allowed(area) {
			t.Errorf("expected %q to be declined", area)
		}
	}
}

func TestServer_Routes(t *testing.T) {
	handler := newTestServer().Routes(SystemContext(1))

	t.Run("serves file", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/pluginfile.php/1/theme_ufpel/logo/5/logo.png", nil)
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d", rec.Code)
		}
		if rec.Body.String() != "logo" {
			t.Errorf("body = %q", rec.Body.String())
		}
		if ct := rec.Header().Get("Content-Type"); ct != "image/png" {
			t.Errorf("content type = %q", ct)
		}
	})

	t.Run("force download", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/pluginfile.php/1/theme_ufpel/preset/5/dark.scss?forcedownload=1", nil)
		handler.ServeHTTP(rec, req)

		if got := rec.Header().Get("Content-Disposition"); got != `attachment; filename="dark.scss"` {
			t.Errorf("content disposition = %q", got)
		}
	})

	t.Run("non-system context is not found", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/pluginfile.php/7/theme_ufpel/logo/5/logo.png", nil)
		handler.ServeHTTP(rec, req)
		if rec.Code != http.StatusNotFound {
			t.Errorf("status = %d, want 404", rec.Code)
		}
	})

	t.Run("disallowed area is not found", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/pluginfile.php/1/theme_ufpel/secret/5/logo.png", nil)
		handler.ServeHTTP(rec, req)
		if rec.Code != http.StatusNotFound {
			t.Errorf("status = %d, want 404", rec.Code)
		}
	})
}

func TestIsValidImage(t *testing.T) {
	if !IsValidImage(pngBytes(t)) {
		t.Error("expected png to be valid")
	}
	if IsValidImage([]byte("not an image")) {
		t.Error("expected text to be invalid")
	}
	if IsValidImage(nil) {
		t.Error("expected empty content to be invalid")
	}
}

func TestCourseImageURL(t *testing.T) {
	ctx := context.Background()
	storage := &memStorage{overview: map[int64][]*File{
		42: {
			{Name: "a-readme.txt", Content: []byte("text")},
			{Name: "b-cover.png", Content: pngBytes(t)},
			{Name: "c-other.png", Content: pngBytes(t)},
		},
	}}
	urls := NewURLBuilder("https://ava.ufpel.edu.br/", 1, settings.NewMemoryStore(nil))

	got, err := CourseImageURL(ctx, storage, urls, 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "https://ava.ufpel.edu.br/pluginfile.php/course/42/overviewfiles/b-cover.png"
	if got != want {
		t.Errorf("CourseImageURL() = %q, want %q", got, want)
	}

	got, err = CourseImageURL(ctx, storage, urls, 7)
	if err != nil || got != "" {
		t.Errorf("expected no image for course without files, got %q, %v", got, err)
	}
}

func TestURLBuilder_SettingFileURL(t *testing.T) {
	ctx := context.Background()
	store := settings.NewMemoryStore(map[string]string{
		settings.Logo:     "/logo da ufpel.png",
		settings.ThemeRev: "1700000000",
	})
	b := NewURLBuilder("https://ava.ufpel.edu.br", 1, store)

	got, err := b.SettingFileURL(ctx, settings.Logo, AreaLogo)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "https://ava.ufpel.edu.br/pluginfile.php/1/theme_ufpel/logo/1700000000/logo%20da%20ufpel.png"
	if got != want {
		t.Errorf("SettingFileURL() = %q, want %q", got, want)
	}

	got, err = b.SettingFileURL(ctx, settings.Favicon, AreaFavicon)
	if err != nil || got != "" {
		t.Errorf("expected empty URL for unset setting, got %q, %v", got, err)
	}
}

func TestDirStorage(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()

	logoDir := filepath.Join(root, "theme", "logo")
	if err := os.MkdirAll(logoDir, 0o755); err != nil {
		t.Fatalf("failed to create dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(logoDir, "logo.png"), pngBytes(t), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	overviewDir := filepath.Join(root, "course", "42", "overviewfiles")
	if err := os.MkdirAll(overviewDir, 0o755); err != nil {
		t.Fatalf("failed to create dir: %v", err)
	}
	for _, name := range []string{"b.png", "a.txt"} {
		if err := os.WriteFile(filepath.Join(overviewDir, name), []byte(name), 0o644); err != nil {
			t.Fatalf("failed to write file: %v", err)
		}
	}

	d := NewDirStorage(root)

	f, err := d.Get(ctx, AreaLogo, "/", "logo.png")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.MimeType != "image/png" || f.Area != AreaLogo {
		t.Errorf("unexpected file metadata: %+v", f)
	}

	if _, err := d.Get(ctx, AreaLogo, "/", "missing.png"); err != ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	overview, err := d.CourseOverviewFiles(ctx, 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(overview) != 2 || overview[0].Name != "a.txt" {
		t.Errorf("expected files ordered by name, got %d files", len(overview))
	}

	none, err := d.CourseOverviewFiles(ctx, 99)
	if err != nil || len(none) != 0 {
		t.Errorf("expected no files for unknown course, got %v, %v", none, err)
	}
}
