package panes

import "github.com/madhoundes/pixelmuse/pkg/app"

// GenerationRequestedMsg is sent when the prompt form is submitted
type GenerationRequestedMsg struct {
	Request app.GenerationRequest
}

// GenerationSavedMsg reports the outcome of persisting a request
type GenerationSavedMsg struct {
	Request app.GenerationRequest
	Err     error
}
