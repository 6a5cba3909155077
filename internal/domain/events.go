package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventRefreshRequested  EventType = "RefreshRequested"
	EventTotalCountUpdated EventType = "TotalCountUpdated"
	EventError             EventType = "Error"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// RefreshRequestedEvent is emitted when a committed change requires a backend re-query
type RefreshRequestedEvent struct {
	Snapshot ListingSnapshot
}

func (e RefreshRequestedEvent) Type() EventType { return EventRefreshRequested }

// TotalCountUpdatedEvent carries the collaborator's answer for one refresh generation
type TotalCountUpdatedEvent struct {
	Page Page
}

func (e TotalCountUpdatedEvent) Type() EventType { return EventTotalCountUpdated }

// ErrorEvent is emitted when a non-fatal error occurs
type ErrorEvent struct {
	Kind    ErrorKind
	Message string
	Err     error
	// Generation of the failed refresh; set for server errors only
	Generation uint64
}

func (e ErrorEvent) Type() EventType { return EventError }
