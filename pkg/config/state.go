// Package config provides settings and state persistence for pixelmuse.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const currentStateVersion = 1

// AppState represents the application's persistent state.
type AppState struct {
	Version int          `json:"version"`
	UI      UIState      `json:"ui"`
	History HistoryState `json:"history"`
}

func defaultAppState() AppState {
	return AppState{
		Version: currentStateVersion,
		UI: UIState{
			LastQuality: "",
		},
		History: HistoryState{
			Requests: []GenerationRecord{},
		},
	}
}

func (s *AppState) normalize() {
	if s == nil {
		return
	}
	if s.Version == 0 {
		s.Version = currentStateVersion
	}
	if s.History.Requests == nil {
		s.History.Requests = []GenerationRecord{}
	}
	if len(s.History.Requests) > MaxHistory {
		s.History.Requests = s.History.Requests[:MaxHistory]
	}
}

// HomeDir returns the pixelmuse directory.
// Resolution order: $PIXELMUSE_HOME > ~/.pixelmuse
func HomeDir() (string, error) {
	if dir := os.Getenv("PIXELMUSE_HOME"); dir != "" {
		return dir, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".pixelmuse"), nil
}

// EnsureHomeDir creates the pixelmuse directory if it doesn't exist
func EnsureHomeDir() error {
	dir, err := HomeDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0755)
}

func getStateFilePath() (string, error) {
	dir, err := HomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "state.json"), nil
}

// LoadState loads the application state from disk. A missing or corrupt file
// yields the default state.
func LoadState() (*AppState, error) {
	stateFile, err := getStateFilePath()
	if err != nil {
		return nil, err
	}

	state := defaultAppState()

	data, err := os.ReadFile(stateFile)
	if errors.Is(err, os.ErrNotExist) {
		return &state, nil
	} else if err != nil {
		return nil, fmt.Errorf("read state: %w", err)
	}
	if len(data) == 0 {
		state.normalize()
		return &state, nil
	}

	if err := json.Unmarshal(data, &state); err != nil {
		state = defaultAppState()
		return &state, nil
	}

	state.normalize()
	return &state, nil
}

// SaveState saves the application state to disk
func SaveState(state *AppState) error {
	if state == nil {
		return errors.New("state cannot be nil")
	}

	if err := EnsureHomeDir(); err != nil {
		return err
	}

	state.normalize()

	stateFile, err := getStateFilePath()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(stateFile, data, 0644)
}
