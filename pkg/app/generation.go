package app

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/madhoundes/pixelmuse/pkg/config"
)

// ErrEmptyPrompt is returned for a prompt with no visible text
var ErrEmptyPrompt = errors.New("prompt is empty")

// GenerationRequest is a thumbnail generation submitted from the prompt form
type GenerationRequest struct {
	ID        string
	Prompt    string
	Quality   QualityConfig
	CreatedAt time.Time
}

// NewGenerationRequest validates prompt and stamps a new request
func NewGenerationRequest(prompt string, quality QualityConfig, now time.Time) (GenerationRequest, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return GenerationRequest{}, ErrEmptyPrompt
	}

	id, err := uuid.NewV7()
	if err != nil {
		return GenerationRequest{}, fmt.Errorf("generate request id: %w", err)
	}

	return GenerationRequest{
		ID:        id.String(),
		Prompt:    prompt,
		Quality:   quality,
		CreatedAt: now,
	}, nil
}

// Record converts the request for persistence
func (r GenerationRequest) Record() config.GenerationRecord {
	return config.GenerationRecord{
		ID:        r.ID,
		Prompt:    r.Prompt,
		Quality:   r.Quality.Name,
		CreatedAt: r.CreatedAt,
	}
}

// RequestFromRecord restores a persisted request
func RequestFromRecord(rec config.GenerationRecord) GenerationRequest {
	return GenerationRequest{
		ID:        rec.ID,
		Prompt:    rec.Prompt,
		Quality:   GetQualityConfig(rec.Quality),
		CreatedAt: rec.CreatedAt,
	}
}

// SaveRequest appends the request to the persisted history
func SaveRequest(r GenerationRequest) error {
	if err := config.AddHistory(r.Record()); err != nil {
		return fmt.Errorf("save request %s: %w", r.ID, err)
	}
	return nil
}

// LoadRequests returns persisted requests, newest first
func LoadRequests() ([]GenerationRequest, error) {
	records, err := config.GetHistory()
	if err != nil {
		return nil, err
	}
	requests := make([]GenerationRequest, 0, len(records))
	for _, rec := range records {
		requests = append(requests, RequestFromRecord(rec))
	}
	return requests, nil
}
