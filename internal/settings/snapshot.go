package settings

import "strings"

// Snapshot is a read-only view of the theme configuration at one point in time.
type Snapshot map[string]string

// Value returns the raw value of name, or "" when unset.
func (s Snapshot) Value(name string) string {
	return s[name]
}

// Has reports whether name is set to a non-empty value.
func (s Snapshot) Has(name string) bool {
	return s[name] != ""
}

// Bool interprets name as a checkbox setting. Empty, "0" and "false" are off.
func (s Snapshot) Bool(name string) bool {
	switch strings.ToLower(strings.TrimSpace(s[name])) {
	case "", "0", "false", "no", "off":
		return false
	default:
		return true
	}
}

// Clone returns a copy that is safe to modify.
func (s Snapshot) Clone() Snapshot {
	out := make(Snapshot, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}
