package state

import (
	"lotview/internal/domain"
	"lotview/internal/ui/services/listing"
)

// AppState contains the front-end state that no service owns
type AppState struct {
	// UI state
	Width         int
	Height        int
	ShowHelp      bool
	StatusMessage string // status bar message
	InPagerMode   bool   // an external pager owns the terminal
	Started       bool   // the first query has been issued

	// Filter bar
	ChipIndex int // focused chip

	// Filters editor working copy, applied as a whole
	FilterDraft []domain.Filter

	// Debounced search text
	PendingText    string
	PendingVersion uint64
	HasPending     bool
}

// NewAppState creates a new application state
func NewAppState() *AppState {
	return &AppState{}
}

// FocusChip moves the chip focus by delta, wrapping around count chips
func (s *AppState) FocusChip(delta, count int) {
	if count == 0 {
		s.ChipIndex = 0
		return
	}
	s.ChipIndex = ((s.ChipIndex+delta)%count + count) % count
}

// ClampChip keeps the focus on an existing chip after the bar changed
func (s *AppState) ClampChip(count int) {
	if s.ChipIndex >= count {
		s.ChipIndex = count - 1
	}
	if s.ChipIndex < 0 {
		s.ChipIndex = 0
	}
}

// StartFilterEditing loads the committed filters into the editor
func (s *AppState) StartFilterEditing(filters []domain.Filter) {
	s.FilterDraft = domain.CloneFilters(filters)
}

// FilterValue returns the editor value of a field
func (s *AppState) FilterValue(field listing.FilterField) string {
	slot := field.Slot()
	for _, f := range s.FilterDraft {
		if f.SameSlot(slot) {
			return f.Value
		}
	}
	return ""
}

// SetFilterValue writes a field in the editor; a blank value tombstones it
func (s *AppState) SetFilterValue(field listing.FilterField, value string) {
	next := field.Slot()
	if value != "" {
		next = field.Apply(value)
	}
	for i, f := range s.FilterDraft {
		if f.SameSlot(next) {
			s.FilterDraft[i] = next
			return
		}
	}
	s.FilterDraft = append(s.FilterDraft, next)
}

// NextPending bumps the debounce version for text
func (s *AppState) NextPending(text string) uint64 {
	s.PendingVersion++
	s.PendingText = text
	s.HasPending = true
	return s.PendingVersion
}

// TakePending returns the pending text if version is still the latest
func (s *AppState) TakePending(version uint64) (string, bool) {
	if !s.HasPending || version != s.PendingVersion {
		return "", false
	}
	s.HasPending = false
	return s.PendingText, true
}

// FlushPending returns any pending text regardless of version
func (s *AppState) FlushPending() (string, bool) {
	if !s.HasPending {
		return "", false
	}
	s.HasPending = false
	return s.PendingText, true
}
