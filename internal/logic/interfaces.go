package logic

import (
	"context"
	"strings"

	"lotview/internal/domain"
)

// HistoryRecord is one persisted history row; Encoded carries the query plus its tags
type HistoryRecord struct {
	ID      int64
	Encoded string
}

// HistoryRepository persists search history keyed by (owner, encoded query)
type HistoryRepository interface {
	// Insert stores encoded for owner unless an entry with the same normalised form exists.
	// It returns the id of the stored entry and whether a new row was written.
	Insert(ctx context.Context, owner, encoded string) (int64, bool, error)
	// Search returns owner's entries whose normalised form starts with prefix, most recent first
	Search(ctx context.Context, owner, prefix string, limit int) ([]HistoryRecord, error)
	Delete(ctx context.Context, owner string, id int64) error
	DeleteAll(ctx context.Context, owner string) error
}

// CheckpointStore is a generic key-value store for restorable screen state
type CheckpointStore interface {
	Load(ctx context.Context, key string) ([]byte, bool, error)
	Save(ctx context.Context, key string, data []byte) error
}

// PagingCollaborator fetches result pages for a listing snapshot and reports the total count
type PagingCollaborator interface {
	Refresh(ctx context.Context, snapshot domain.ListingSnapshot, report func(domain.Page)) error
}

// CategoryComponent is the category picker embedded in the search and category panels
type CategoryComponent interface {
	CategoryID() int64
	Categories() []domain.Category
	Current() domain.Category
	Initialize() error
	UpdateFromSearchData(criteria domain.SearchCriteria)
	NavigateBack() bool
}

// SurfaceState is what the host overlay reports about itself
type SurfaceState int

const (
	SurfaceExpanded SurfaceState = iota
	SurfaceCollapsed
)

func (s SurfaceState) String() string {
	if s == SurfaceCollapsed {
		return "collapsed"
	}
	return "expanded"
}

// NormalizeQuery lower-cases and trims a query for prefix matching
func NormalizeQuery(q string) string {
	return strings.ToLower(strings.TrimSpace(q))
}
