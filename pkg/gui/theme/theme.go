package theme

// Theme defines all colors used throughout the application with semantic naming.
var (
	// Brand colors
	MuseColor = "#ff4f6d" // pixelmuse red for branding and the active field

	// Text colors
	TextPrimary     = "#ffffff" // focused/active elements
	TextDescription = "#c9c9c9" // labels, help text, caret
	TextMuted       = "#7a7a7a" // placeholder suggestions, timestamps

	// Border colors
	BorderActive = "#c9c9c9"
	BorderMuted  = "#4a4a4a"

	// Status/semantic colors
	SuccessStatus = "#50fa7b" // request recorded
	WarningStatus = "#ffb86c"
	ErrorStatus   = "#ff5555"
	InfoStatus    = "#8be9fd" // selected quality

	// UI colors
	HighlightText  = "#282a36" // text on the selected quality badge
	SeparatorColor = "#4a4a4a"
	RowHighlight   = "#525252"
)
