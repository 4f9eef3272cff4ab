// Package history keeps the list of selected results in local storage.
package history

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"

	"searchbox/internal/domain"
	"searchbox/internal/storage"
)

// ErrMalformed is returned by Load when the stored value is not valid history JSON
var ErrMalformed = errors.New("stored search history is malformed")

// Tracker reads and writes the history list under a single storage key
type Tracker struct {
	mu    sync.Mutex
	store storage.LocalStorage
	key   string
}

// NewTracker creates a tracker for key in store
func NewTracker(store storage.LocalStorage, key string) *Tracker {
	return &Tracker{store: store, key: key}
}

// Load returns the persisted history. A missing key is an empty history.
// Malformed data also yields an empty history, together with ErrMalformed.
func (t *Tracker) Load() ([]domain.ResultItem, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	raw, err := t.store.GetItem(t.key)
	if errors.Is(err, storage.ErrNotFound) {
		return []domain.ResultItem{}, nil
	}
	if err != nil {
		return []domain.ResultItem{}, fmt.Errorf("failed to read history: %w", err)
	}
	if raw == "" || raw == "null" {
		return []domain.ResultItem{}, nil
	}

	var items []domain.ResultItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		log.Printf("History under %q is malformed: %v", t.key, err)
		return []domain.ResultItem{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if items == nil {
		items = []domain.ResultItem{}
	}
	return items, nil
}

// Append returns current with item added and persists that new list.
// The returned list is valid even when the write fails.
func (t *Tracker) Append(current []domain.ResultItem, item domain.ResultItem) ([]domain.ResultItem, error) {
	updated := make([]domain.ResultItem, len(current), len(current)+1)
	copy(updated, current)
	updated = append(updated, item)

	if err := t.Save(updated); err != nil {
		return updated, err
	}
	return updated, nil
}

// Save writes items as the complete history
func (t *Tracker) Save(items []domain.ResultItem) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if items == nil {
		items = []domain.ResultItem{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to marshal history: %w", err)
	}
	if err := t.store.SetItem(t.key, string(data)); err != nil {
		return fmt.Errorf("failed to persist history: %w", err)
	}
	log.Printf("History persisted: %d entries", len(items))
	return nil
}

// Clear removes the persisted history
func (t *Tracker) Clear() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.store.RemoveItem(t.key); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}
	return nil
}
