package settings

// PreferenceType is the value type of a user preference.
type PreferenceType string

// Preference value types.
const (
	PreferenceBool PreferenceType = "bool"
)

// User preference names.
const (
	DrawerOpenIndex = "drawer-open-index"
	DrawerOpenBlock = "drawer-open-block"
)

// UserPreference describes a per-user preference the theme lets the current
// user read and write. Null is never allowed.
type UserPreference struct {
	Name    string
	Type    PreferenceType
	Default bool
}

// UserPreferences returns the preferences the theme registers with the host,
// in a stable order.
func UserPreferences() []UserPreference {
	return []UserPreference{
		{Name: DrawerOpenIndex, Type: PreferenceBool, Default: true},
		{Name: DrawerOpenBlock, Type: PreferenceBool, Default: false},
	}
}
