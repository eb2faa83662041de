package teachers

import (
	"regexp"
	"strings"
)

// DefaultNameFormat is the host's default full name display template.
const DefaultNameFormat = "firstname lastname"

var nameToken = regexp.MustCompile(`\b(firstnamephonetic|lastnamephonetic|firstname|lastname|middlename|alternatename)\b`)

// NameFormatter builds full names from a display template such as
// "lastname, firstname" or "firstname middlename lastname".
type NameFormatter struct {
	format string
}

// NewNameFormatter creates a NameFormatter. An empty format uses
// DefaultNameFormat.
func NewNameFormatter(format string) *NameFormatter {
	if strings.TrimSpace(format) == "" {
		format = DefaultNameFormat
	}
	return &NameFormatter{format: format}
}

// Format returns u's full name. If the template yields nothing (all named
// fields empty) the default template is applied instead.
func (f *NameFormatter) Format(u User) string {
	name := render(f.format, u)
	if name == "" && f.format != DefaultNameFormat {
		name = render(DefaultNameFormat, u)
	}
	return name
}

func render(format string, u User) string {
	out := nameToken.ReplaceAllStringFunc(format, func(tok string) string {
		switch tok {
		case "firstname":
			return u.FirstName
		case "lastname":
			return u.LastName
		case "middlename":
			return u.MiddleName
		case "alternatename":
			return u.AlternateName
		case "firstnamephonetic":
			return u.FirstNamePhonetic
		case "lastnamephonetic":
			return u.LastNamePhonetic
		}
		return tok
	})
	out = strings.Join(strings.Fields(out), " ")
	return strings.Trim(out, " ,")
}
