// Package i18n looks up the theme's user-facing strings.
package i18n

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Translator resolves string keys for a requested language, falling back to
// English when the language or key is unknown.
type Translator struct {
	matcher language.Matcher
	tables  []map[string]string
}

// New creates a Translator with the bundled English and Brazilian Portuguese
// strings. English is the fallback.
func New() *Translator {
	return &Translator{
		matcher: language.NewMatcher([]language.Tag{
			language.English,
			language.BrazilianPortuguese,
		}),
		tables: []map[string]string{stringsEN, stringsPTBR},
	}
}

// String returns the string for key in lang. lang accepts host style codes
// ("pt_br") and BCP 47 tags ("pt-BR"). A "{$a}" placeholder is replaced by
// arg when given. Unknown keys render as "[[key]]".
func (t *Translator) String(lang, key string, arg ...any) string {
	s, ok := t.tables[t.index(lang)][key]
	if !ok {
		s, ok = t.tables[0][key]
	}
	if !ok {
		return "[[" + key + "]]"
	}
	if len(arg) > 0 {
		s = strings.ReplaceAll(s, "{$a}", fmt.Sprint(arg[0]))
	}
	return s
}

func (t *Translator) index(lang string) int {
	if lang == "" {
		return 0
	}
	tag, err := language.Parse(strings.ReplaceAll(lang, "_", "-"))
	if err != nil {
		return 0
	}
	_, idx, conf := t.matcher.Match(tag)
	if conf == language.No {
		return 0
	}
	return idx
}
