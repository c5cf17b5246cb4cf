package config

// UIState captures UI-related state.
type UIState struct {
	LastQuality string `json:"last_quality,omitempty"`
}

// GetLastQuality returns the quality selected for the previous request
func GetLastQuality() (string, error) {
	state, err := LoadState()
	if err != nil {
		return "", err
	}
	return state.UI.LastQuality, nil
}

// SetLastQuality remembers the quality selected for the latest request
func SetLastQuality(quality string) error {
	state, err := LoadState()
	if err != nil {
		return err
	}

	state.UI.LastQuality = quality
	return SaveState(state)
}
