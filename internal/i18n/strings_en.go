package i18n

var stringsEN = map[string]string{
	"pluginname":    "UFPel",
	"choosereadme":  "UFPel is a modern theme based on Boost, customized for the Federal University of Pelotas.",
	"configtitle":   "UFPel theme settings",
	"default":       "Default",
	"preset":        "Theme preset",
	"preset_desc":   "Pick a preset to broadly change the look of the theme.",
	"presetfiles":   "Additional theme preset files",
	"courseheader":  "Course header",
	"teacher":       "Teacher",
	"teachers":      "Teachers",
	"skipto":        "Skip to {$a}",
	"features":      "Features",
	"footercontent": "Footer content",

	"primarycolor":       "Primary color",
	"secondarycolor":     "Secondary color",
	"backgroundcolor":    "Background color",
	"highlightcolor":     "Highlight color",
	"contenttextcolor":   "Content text color",
	"highlighttextcolor": "Highlight text color",

	"logo":                 "Logo",
	"favicon":              "Favicon",
	"loginbackgroundimage": "Login page background image",
	"customcss":            "Custom CSS",
	"customfonts":          "Custom fonts URL",
	"rawscss":              "Raw SCSS",
	"rawscsspre":           "Raw initial SCSS",
	"showcourseimage":      "Show course image",
	"showteachers":         "Show teachers",
	"courseheaderoverlay":  "Course header overlay",

	"region-side-pre":  "Left",
	"region-side-post": "Right",
}
