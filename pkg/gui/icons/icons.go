// Package icons provides Nerd Font glyphs with plain fallbacks for the
// pixelmuse interface.
package icons

import (
	"os"
	"strings"
	"sync"
)

// Icon represents an icon with Nerd Font and fallback options
type Icon struct {
	NerdFont string
	Fallback string
}

var (
	// Prompt marks the prompt form title
	Prompt = Icon{
		NerdFont: "\uf040", // pencil
		Fallback: "✎",
	}

	// History marks the recent requests title
	History = Icon{
		NerdFont: "\uf017", // clock
		Fallback: "◷",
	}

	Queued = Icon{
		NerdFont: "\uf00c", // check mark
		Fallback: "✓",
	}

	Failed = Icon{
		NerdFont: "\uf071", // warning
		Fallback: "!",
	}

	// Quality icons, lowest to highest tier
	QualityLow = Icon{
		NerdFont: "\U000f0a1f", // image-size-select-small
		Fallback: "▫",
	}
	QualityMedium = Icon{
		NerdFont: "\U000f0a1e", // image-size-select-large
		Fallback: "▪",
	}
	QualityHD = Icon{
		NerdFont: "\U000f0a1d", // image-size-select-actual
		Fallback: "■",
	}
)

var (
	nerdMu       sync.Mutex
	useNerdFonts *bool
)

// hasNerdFonts detects if Nerd Fonts are likely available
func hasNerdFonts() bool {
	nerdMu.Lock()
	defer nerdMu.Unlock()
	if useNerdFonts != nil {
		return *useNerdFonts
	}

	termProgram := strings.ToLower(os.Getenv("TERM_PROGRAM"))
	term := strings.ToLower(os.Getenv("TERM"))

	// Common terminals/configs that often use Nerd Fonts
	nerdFontTerms := []string{
		"alacritty", "kitty", "wezterm", "iterm", "hyper", "ghostty",
		"tmux-256color", "xterm-256color", "xterm-ghostty",
	}

	result := false
	for _, nfTerm := range nerdFontTerms {
		if strings.Contains(termProgram, nfTerm) || strings.Contains(term, nfTerm) {
			result = true
			break
		}
	}

	useNerdFonts = &result
	return result
}

// Get returns the appropriate icon string based on Nerd Font availability
func (i Icon) Get() string {
	if hasNerdFonts() {
		return i.NerdFont
	}
	return i.Fallback
}

// SetNerdFonts manually overrides Nerd Font detection
func SetNerdFonts(enabled bool) {
	nerdMu.Lock()
	defer nerdMu.Unlock()
	useNerdFonts = &enabled
}

// GetQualityIcon returns the icon for a quality tier name
func GetQualityIcon(name string) string {
	switch name {
	case "LOW":
		return QualityLow.Get()
	case "HD":
		return QualityHD.Get()
	default:
		return QualityMedium.Get()
	}
}
