// Package settings holds the theme configuration: the setting names, their
// documented defaults, and the stores that persist them.
package settings

// Component is the plugin name settings are stored under.
const Component = "theme_ufpel"

// Setting names.
const (
	PrimaryColor       = "primarycolor"
	BrandColor         = "brandcolor" // legacy name of PrimaryColor
	SecondaryColor     = "secondarycolor"
	BackgroundColor    = "backgroundcolor"
	HighlightColor     = "highlightcolor"
	ContentTextColor   = "contenttextcolor"
	HighlightTextColor = "highlighttextcolor"

	ShowCourseImage     = "showcourseimage"
	ShowTeachers        = "showteachers"
	CourseHeaderOverlay = "courseheaderoverlay"

	RawSCSSPre  = "rawscsspre"
	RawSCSS     = "rawscss"
	CustomCSS   = "customcss"
	CustomFonts = "customfonts"

	FooterContent = "footercontent"
	Preset        = "preset"

	Logo                 = "logo"
	Favicon              = "favicon"
	LoginBackgroundImage = "loginbackgroundimage"

	Version  = "version"
	ThemeRev = "themerev"
)

// Documented colour defaults.
const (
	DefaultPrimaryColor       = "#003366"
	DefaultSecondaryColor     = "#0066cc"
	DefaultBackgroundColor    = "#ffffff"
	DefaultHighlightColor     = "#ffc107"
	DefaultContentTextColor   = "#212529"
	DefaultHighlightTextColor = "#ffffff"
)

// DefaultPreset is the preset filename used when none is selected.
const DefaultPreset = "default.scss"

// ColourDefaults maps each colour setting to its documented default.
var ColourDefaults = map[string]string{
	PrimaryColor:       DefaultPrimaryColor,
	SecondaryColor:     DefaultSecondaryColor,
	BackgroundColor:    DefaultBackgroundColor,
	HighlightColor:     DefaultHighlightColor,
	ContentTextColor:   DefaultContentTextColor,
	HighlightTextColor: DefaultHighlightTextColor,
}
