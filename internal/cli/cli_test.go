package cli

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/jmylchreest/ufpeltheme/internal/cache"
	"github.com/jmylchreest/ufpeltheme/internal/files"
	"github.com/jmylchreest/ufpeltheme/internal/teachers"
)

// execute runs the command tree with args and returns its stdout.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Chdir(t.TempDir())

	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "", "version")
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if !strings.HasPrefix(out, "ufpeltheme version ") {
		t.Errorf("unexpected version output: %q", out)
	}
}

func TestSCSSCommand(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    []string
		wantErr bool
	}{
		{
			name: "default primary colour",
			args: []string{"scss", "--part", "pre"},
			want: []string{"$primarycolor: #003366 !default;"},
		},
		{
			name: "configured primary colour",
			args: []string{"scss", "--part", "pre", "--set", "primarycolor=#FF00AA"},
			want: []string{"$primarycolor: #FF00AA !default;", "$ufpel-primary: #FF00AA !default;"},
		},
		{
			name: "full stylesheet",
			args: []string{"scss", "--set", "rawscss=.x{}"},
			want: []string{"$primarycolor:", ".ufpel-course-header", ".x{}"},
		},
		{
			name:    "unknown part",
			args:    []string{"scss", "--part", "nope"},
			wantErr: true,
		},
		{
			name:    "malformed set",
			args:    []string{"scss", "--set", "primarycolor"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, "", tt.args...)
			if (err != nil) != tt.wantErr {
				t.Fatalf("error = %v, wantErr %v", err, tt.wantErr)
			}
			for _, w := range tt.want {
				if !strings.Contains(out, w) {
					t.Errorf("output missing %q", w)
				}
			}
		})
	}
}

func TestCSSProcessCommand(t *testing.T) {
	css := "body{} .login{background-image:[[setting:loginbackgroundimage]]}"
	out, err := execute(t, css, "css", "process", "--set", "customcss=.custom{}")
	if err != nil {
		t.Fatalf("css process failed: %v", err)
	}
	want := "body{} .login{background-image:none}\n.custom{}"
	if out != want {
		t.Errorf("css process = %q, want %q", out, want)
	}
}

func TestPresetsCommand(t *testing.T) {
	dataroot := t.TempDir()
	presetDir := filepath.Join(dataroot, "theme", files.AreaPreset)
	if err := os.MkdirAll(presetDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(presetDir, "night_sky.scss"), []byte(""), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "", "presets", "--dataroot", dataroot)
	if err != nil {
		t.Fatalf("presets failed: %v", err)
	}
	for _, want := range []string{"default.scss", "bundled", "night_sky.scss", "Night sky", "uploaded"} {
		if !strings.Contains(out, want) {
			t.Errorf("presets output missing %q:\n%s", want, out)
		}
	}
}

func TestUpgradeCommand(t *testing.T) {
	out, err := execute(t, "", "upgrade", "--set", "brandcolor=#123456")
	if err != nil {
		t.Fatalf("upgrade failed: %v", err)
	}
	for _, want := range []string{"Applied upgrade 2025072901", "Applied upgrade 2025090100", "Theme revision:"} {
		if !strings.Contains(out, want) {
			t.Errorf("upgrade output missing %q:\n%s", want, out)
		}
	}

	out, err = execute(t, "", "upgrade", "--set", "version=2025090100")
	if err != nil {
		t.Fatalf("upgrade failed: %v", err)
	}
	if !strings.Contains(out, "No upgrade steps to apply from 2025090100") {
		t.Errorf("unexpected upgrade output:\n%s", out)
	}
}

func TestRenderCommand(t *testing.T) {
	out, err := execute(t, "",
		"render", "--layout", "login",
		"--set", "footercontent=<p>UFPel</p>",
		"--set", "loginbackgroundimage=/bg.jpg",
		"--wwwroot", "https://lms.example",
	)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	for _, want := range []string{
		"theme-ufpel",
		"has-login-background",
		`class="login-background-image"`,
		"https://lms.example/pluginfile.php/1/theme_ufpel/loginbackgroundimage/1/bg.jpg",
		`<div class="ufpel-footer-content"><p>UFPel</p></div>`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("render output missing %q:\n%s", want, out)
		}
	}
}

func TestTeachersCommand_RequiresDatabase(t *testing.T) {
	_, err := execute(t, "", "teachers", "42")
	if !errors.Is(err, errNoDatabase) {
		t.Fatalf("expected errNoDatabase, got %v", err)
	}

	if _, err := execute(t, "", "teachers", "abc"); err == nil {
		t.Fatal("expected an error for an invalid course id")
	}
}

func TestServeHandler(t *testing.T) {
	dataroot := t.TempDir()
	logoDir := filepath.Join(dataroot, "theme", files.AreaLogo)
	if err := os.MkdirAll(logoDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(logoDir, "logo.png"), []byte("png"), 0o644); err != nil {
		t.Fatal(err)
	}

	server := files.NewServer(files.NewDirStorage(dataroot), hclog.NewNullLogger())
	handler := newServeHandler(server, files.SystemContext(1), prometheus.NewRegistry(), hclog.NewNullLogger())

	tests := []struct {
		path string
		want int
	}{
		{"/pluginfile.php/1/theme_ufpel/logo/1/logo.png", http.StatusOK},
		{"/pluginfile.php/1/theme_ufpel/logo/1/missing.png", http.StatusNotFound},
		{"/pluginfile.php/1/theme_ufpel/private/1/logo.png", http.StatusNotFound},
		{"/pluginfile.php/5/theme_ufpel/logo/1/logo.png", http.StatusNotFound},
		{"/metrics", http.StatusOK},
		{"/healthz", http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))
			if rec.Code != tt.want {
				t.Errorf("GET %s = %d, want %d", tt.path, rec.Code, tt.want)
			}
		})
	}
}

func TestServeRegistry_OmitsTeacherLookups(t *testing.T) {
	families, err := newServeRegistry().Gather()
	if err != nil {
		t.Fatalf("Gather: %v", err)
	}
	if len(families) == 0 {
		t.Fatal("expected runtime metrics")
	}
	for _, mf := range families {
		if strings.HasPrefix(mf.GetName(), "ufpeltheme_teacher_") {
			t.Errorf("serve exposes %s but never looks up teachers", mf.GetName())
		}
	}
}

type rosterSource struct{}

func (rosterSource) TeacherRoleIDs(context.Context) ([]int64, error) { return []int64{3}, nil }

func (rosterSource) CourseTeachers(context.Context, int64, []int64) ([]teachers.User, error) {
	return []teachers.User{{ID: 1, FirstName: "Ana", LastName: "Silva"}}, nil
}

func TestTierTable(t *testing.T) {
	registry := prometheus.NewRegistry()
	registry.MustRegister(teachers.Collectors()...)

	before, err := tierTable(registry)
	if err != nil {
		t.Fatalf("tierTable: %v", err)
	}

	lookup, err := teachers.NewLookup(rosterSource{}, cache.NewLocalStore())
	if err != nil {
		t.Fatal(err)
	}
	session := lookup.NewSession()
	for range 2 {
		if _, err := session.Teachers(context.Background(), 42); err != nil {
			t.Fatal(err)
		}
	}

	after, err := tierTable(registry)
	if err != nil {
		t.Fatalf("tierTable: %v", err)
	}
	for _, want := range []string{"TIER", "memory", "durable", "source"} {
		if !strings.Contains(after, want) {
			t.Errorf("tier table missing %q:\n%s", want, after)
		}
	}
	if before == after {
		t.Errorf("lookups not counted:\n%s", after)
	}
}

func TestPreferencesCommand(t *testing.T) {
	out, err := execute(t, "", "preferences")
	if err != nil {
		t.Fatalf("preferences failed: %v", err)
	}
	for _, want := range []string{"drawer-open-index", "drawer-open-block", "bool", "true", "false"} {
		if !strings.Contains(out, want) {
			t.Errorf("preferences output missing %q:\n%s", want, out)
		}
	}
}

func TestCommandClosesConnectionsOnError(t *testing.T) {
	t.Chdir(t.TempDir())

	a := &app{}
	cmd := newRootCmd(a)
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	// Nothing listens on port 1, so purging the caches fails.
	cmd.SetArgs([]string{"upgrade", "--redis-url", "redis://127.0.0.1:1/0?dial_timeout=200ms&max_retries=-1"})

	err := cmd.ExecuteContext(context.Background())
	if err == nil {
		t.Fatal("expected upgrade to fail without a reachable redis")
	}
	if !strings.Contains(err.Error(), "redis") {
		t.Fatalf("expected a redis error, got %v", err)
	}
	if a.redis != nil {
		t.Error("redis client left open after a failed command")
	}
}
