package search

import (
	"context"

	"lotview/internal/domain"
)

// ListingStore is the part of the listing store the search panel commits into
type ListingStore interface {
	Search() domain.SearchCriteria
	Draft() domain.SearchCriteria
	UpdateDraft(fn func(*domain.SearchCriteria))
	ResetDraft()
	SetSearchFilters() bool
}

// ModeController opens and closes the search panel
type ModeController interface {
	Mode() domain.WindowMode
	OpenSearch() bool
	Reset()
}

// HistoryStore is the user's search history
type HistoryStore interface {
	Items() []domain.SearchHistoryItem
	GetHistory(ctx context.Context, prefix string) ([]domain.SearchHistoryItem, error)
	AddHistory(ctx context.Context, query string, isUserSearch bool, userLogin string, isFinished bool) error
	DeleteItemHistory(ctx context.Context, id int64) error
	DeleteHistory(ctx context.Context) error
}

// State holds search panel state
type State struct {
	Buffer  string
	Loading bool
	Error   string
	token   uint64
	// the draft came from an entry that was removed from the history
	unsaved bool
}

// UiState is the derived view of the search panel
type UiState struct {
	Buffer  string
	History []domain.SearchHistoryItem
	Loading bool
	Error   string
	Draft   domain.SearchCriteria
}

// StateChangedEvent is published on the UI bus whenever UiState may have changed
type StateChangedEvent struct {
	State UiState
}

// CommittedEvent is published after a commit; Refreshed tells whether it changed the query
type CommittedEvent struct {
	Criteria  domain.SearchCriteria
	Refreshed bool
}
