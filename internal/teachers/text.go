package teachers

import "strings"

// Labeller looks up localised strings.
type Labeller interface {
	String(lang, key string, arg ...any) string
}

// FormatText renders names as "Teacher: A" or "Teachers: A, B". It returns ""
// when names is empty.
func FormatText(tr Labeller, lang string, names []string) string {
	if len(names) == 0 {
		return ""
	}
	label := tr.String(lang, "teachers")
	if len(names) == 1 {
		label = tr.String(lang, "teacher")
	}
	return label + ": " + strings.Join(names, ", ")
}
