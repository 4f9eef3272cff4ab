package ui

import (
	"time"

	"searchbox/internal/domain"
)

// searchDebounceMsg fires after the debounce delay to trigger a search
type searchDebounceMsg struct {
	query      string
	debounceID uint64
}

// searchResultsMsg carries the outcome of a fired search
type searchResultsMsg struct {
	query     string
	requestID uint64 // To detect stale responses
	items     []domain.ResultItem
	dropped   int
	err       error
}

// pagerMsg is sent when the description pager exits
type pagerMsg struct {
	err error
}

// spinnerTickMsg advances the loading spinner animation
type spinnerTickMsg struct{}

// spinnerFrames are the Braille dot animation frames for the loading spinner
var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// spinnerInterval is how fast the spinner animates
const spinnerInterval = 80 * time.Millisecond
