package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Settings are user preferences read from settings.toml.
type Settings struct {
	ReducedMotion bool     `toml:"reduced_motion"`
	Suggestions   []string `toml:"suggestions"`
}

// SettingsPath returns the path of settings.toml
func SettingsPath() (string, error) {
	dir, err := HomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "settings.toml"), nil
}

// LoadSettings reads settings.toml. A missing file yields zero settings.
func LoadSettings() (Settings, error) {
	var s Settings

	path, err := SettingsPath()
	if err != nil {
		return s, err
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	} else if err != nil {
		return s, fmt.Errorf("read settings: %w", err)
	}

	if _, err := toml.Decode(string(data), &s); err != nil {
		return Settings{}, fmt.Errorf("parse %s: %w", path, err)
	}
	s.Suggestions = cleanSuggestions(s.Suggestions)
	return s, nil
}

// SuggestionsOr returns the configured suggestions, or fallback when none are set.
func (s Settings) SuggestionsOr(fallback []string) []string {
	if len(s.Suggestions) == 0 {
		return fallback
	}
	return s.Suggestions
}

func cleanSuggestions(in []string) []string {
	var out []string
	for _, s := range in {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
