package ui

import (
	"context"
	"fmt"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"searchbox/internal/searchapi"
)

// Dispatcher debounces queries and tags each fired search with a request ID.
// It keeps only counters, so results always flow back through Update and
// land on the model's current state.
type Dispatcher struct {
	searcher   searchapi.Searcher
	ctx        context.Context
	cancel     context.CancelFunc // Close aborts in-flight searches
	delay      time.Duration
	debounceID uint64 // Increment to cancel pending debounce timers
	requestID  uint64 // Latest fired search
}

// NewDispatcher creates a dispatcher that waits delay after the last keystroke
func NewDispatcher(searcher searchapi.Searcher, delay time.Duration) *Dispatcher {
	ctx, cancel := context.WithCancel(context.Background())
	return &Dispatcher{searcher: searcher, delay: delay, ctx: ctx, cancel: cancel}
}

// Close cancels every in-flight search and rate limiter wait
func (d *Dispatcher) Close() {
	d.cancel()
}

// Schedule restarts the quiet window for query. Any timer started earlier
// becomes stale and is ignored by Fire.
func (d *Dispatcher) Schedule(query string) tea.Cmd {
	d.debounceID++
	debounceID := d.debounceID
	return tea.Tick(d.delay, func(time.Time) tea.Msg {
		return searchDebounceMsg{query: query, debounceID: debounceID}
	})
}

// Fire returns the search command for msg, or false when a newer keystroke
// superseded it.
func (d *Dispatcher) Fire(msg searchDebounceMsg) (tea.Cmd, bool) {
	if msg.debounceID != d.debounceID {
		return nil, false
	}
	d.requestID++
	return d.search(msg.query, d.requestID), true
}

// Accept reports whether msg answers the latest fired search
func (d *Dispatcher) Accept(msg searchResultsMsg) bool {
	return msg.requestID == d.requestID
}

// RequestID returns the ID of the latest fired search
func (d *Dispatcher) RequestID() uint64 {
	return d.requestID
}

func (d *Dispatcher) search(query string, requestID uint64) tea.Cmd {
	searcher := d.searcher
	ctx := d.ctx
	return func() (msg tea.Msg) {
		defer func() {
			if r := recover(); r != nil {
				msg = searchResultsMsg{
					query:     query,
					requestID: requestID,
					err:       fmt.Errorf("search panic: %v", r),
				}
			}
		}()

		log.Printf("Search fired: %q (request %d)", query, requestID)
		resp, err := searcher.Search(ctx, query)
		if err != nil {
			return searchResultsMsg{query: query, requestID: requestID, err: err}
		}
		return searchResultsMsg{
			query:     query,
			requestID: requestID,
			items:     resp.Items,
			dropped:   resp.Dropped,
		}
	}
}
