package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventSearchRequested  EventType = "SearchRequested"
	EventSearchCompleted  EventType = "SearchCompleted"
	EventSearchFailed     EventType = "SearchFailed"
	EventItemSelected     EventType = "ItemSelected"
	EventHistoryLoaded    EventType = "HistoryLoaded"
	EventHistoryPersisted EventType = "HistoryPersisted"
	EventViewportResized  EventType = "ViewportResized"
	EventError            EventType = "Error"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// SearchRequestedEvent is emitted when a debounced search fires
type SearchRequestedEvent struct {
	Query     string
	RequestID uint64
}

func (e SearchRequestedEvent) Type() EventType { return EventSearchRequested }

// SearchCompletedEvent is emitted when the latest search response is applied
type SearchCompletedEvent struct {
	Query     string
	RequestID uint64
	Count     int
	Dropped   int // entries skipped because they were not objects
}

func (e SearchCompletedEvent) Type() EventType { return EventSearchCompleted }

// SearchFailedEvent is emitted when the latest search returns an error
type SearchFailedEvent struct {
	Query     string
	RequestID uint64
	Err       error
}

func (e SearchFailedEvent) Type() EventType { return EventSearchFailed }

// ItemSelectedEvent is emitted when the user picks a result
type ItemSelectedEvent struct {
	Item ResultItem
}

func (e ItemSelectedEvent) Type() EventType { return EventItemSelected }

// HistoryLoadedEvent is emitted once the persisted history has been read on mount
type HistoryLoadedEvent struct {
	Count int
}

func (e HistoryLoadedEvent) Type() EventType { return EventHistoryLoaded }

// HistoryPersistedEvent is emitted after the history was written to storage
type HistoryPersistedEvent struct {
	Count int
}

func (e HistoryPersistedEvent) Type() EventType { return EventHistoryPersisted }

// ViewportResizedEvent is emitted when the terminal size changes
type ViewportResizedEvent struct {
	Width  int
	Height int
}

func (e ViewportResizedEvent) Type() EventType { return EventViewportResized }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }
