package listing

import "lotview/internal/domain"

// ModeController is the part of the window mode state machine the store drives
type ModeController interface {
	Reset()
}

// DataChangedEvent is published on the UI bus after every mutation
type DataChangedEvent struct {
	Snapshot  domain.ListingSnapshot
	Refreshed bool // a RefreshRequested was issued for Snapshot
}
