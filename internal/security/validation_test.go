package security

import "testing"

func TestCleanFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"default.scss", "default.scss"},
		{"../../etc/passwd", "....etcpasswd"},
		{"dark_blue.scss", "dark_blue.scss"},
		{"a<b>c.scss", "abc.scss"},
		{"tab\there.scss", "tabhere.scss"},
		{"..", ""},
		{".", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := CleanFilename(tt.in); got != tt.want {
				t.Errorf("CleanFilename(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSplitFileArgs(t *testing.T) {
	t.Run("file only", func(t *testing.T) {
		path, name, err := SplitFileArgs([]string{"logo.png"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if path != "/" || name != "logo.png" {
			t.Errorf("got %q %q", path, name)
		}
	})

	t.Run("nested", func(t *testing.T) {
		path, name, err := SplitFileArgs([]string{"a", "b", "bg.jpg"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if path != "/a/b/" || name != "bg.jpg" {
			t.Errorf("got %q %q", path, name)
		}
	})

	for _, bad := range [][]string{nil, {".."}, {"a", "..", "x"}, {""}, {"a/b"}, {"a\\b"}} {
		if _, _, err := SplitFileArgs(bad); err == nil {
			t.Errorf("expected error for %q", bad)
		}
	}
}
