// Package security provides input cleaning for file names and paths that
// reach the file storage layer.
package security

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

// unsafeFileChars are stripped by CleanFilename.
var unsafeFileChars = regexp.MustCompile("[&<>\"`|':\\\\/]")

// CleanFilename reduces name to a bare file name: control characters and
// path or markup characters are removed, and "." or ".." become "".
func CleanFilename(name string) string {
	name = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, name)
	name = unsafeFileChars.ReplaceAllString(name, "")
	if name == "." || name == ".." {
		return ""
	}
	return name
}

// SplitFileArgs turns request path arguments into a storage file path and
// file name. The last argument is the file name; the rest form the
// directory, rendered as "/a/b/". Empty, "." and ".." segments are rejected.
func SplitFileArgs(args []string) (filepath, filename string, err error) {
	if len(args) == 0 {
		return "", "", fmt.Errorf("missing file name")
	}
	for _, a := range args {
		if a == "" || a == "." || a == ".." {
			return "", "", fmt.Errorf("invalid path segment %q", a)
		}
		if strings.ContainsAny(a, "/\\") || strings.ContainsFunc(a, unicode.IsControl) {
			return "", "", fmt.Errorf("invalid characters in path segment %q", a)
		}
	}

	filename = args[len(args)-1]
	dirs := args[:len(args)-1]
	if len(dirs) == 0 {
		return "/", filename, nil
	}
	return "/" + strings.Join(dirs, "/") + "/", filename, nil
}
