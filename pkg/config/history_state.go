package config

import "time"

// MaxHistory caps the number of remembered generation requests.
const MaxHistory = 50

// HistoryState stores submitted generation requests, newest first.
type HistoryState struct {
	Requests []GenerationRecord `json:"requests"`
}

// GenerationRecord is a persisted generation request.
type GenerationRecord struct {
	ID        string    `json:"id"`
	Prompt    string    `json:"prompt"`
	Quality   string    `json:"quality"`
	CreatedAt time.Time `json:"created_at"`
}

// GetHistory returns the stored generation requests, newest first
func GetHistory() ([]GenerationRecord, error) {
	state, err := LoadState()
	if err != nil {
		return nil, err
	}
	return state.History.Requests, nil
}

// AddHistory prepends record and saves, dropping the oldest entries beyond MaxHistory
func AddHistory(record GenerationRecord) error {
	state, err := LoadState()
	if err != nil {
		return err
	}

	state.History.Requests = append([]GenerationRecord{record}, state.History.Requests...)
	return SaveState(state)
}

// ClearHistory removes every stored generation request
func ClearHistory() error {
	state, err := LoadState()
	if err != nil {
		return err
	}

	state.History.Requests = []GenerationRecord{}
	return SaveState(state)
}
