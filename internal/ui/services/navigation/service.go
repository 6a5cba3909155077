package navigation

import (
	"lotview/internal/ui/services/events"
)

// Service is a cursor over one list with a scrolling viewport.
// Size is pushed by the owner whenever the list is replaced.
type Service struct {
	list  List
	state *State
	bus   events.EventBus
}

// NewService creates a cursor for list
func NewService(list List, bus events.EventBus) *Service {
	return &Service{
		list: list,
		state: &State{
			ViewportHeight: 10,
		},
		bus: bus,
	}
}

// Cursor returns the selected index; it is 0 on an empty list
func (s *Service) Cursor() int {
	return s.state.Cursor
}

// Offset returns the first visible index
func (s *Service) Offset() int {
	return s.state.ViewportOffset
}

// Height returns the number of visible rows
func (s *Service) Height() int {
	return s.state.ViewportHeight
}

// Size returns the list length
func (s *Service) Size() int {
	return s.state.Size
}

// Visible returns the half-open range of rows to render
func (s *Service) Visible() (int, int) {
	end := s.state.ViewportOffset + s.state.ViewportHeight
	if end > s.state.Size {
		end = s.state.Size
	}
	return s.state.ViewportOffset, end
}

// SetViewportHeight updates the number of visible rows
func (s *Service) SetViewportHeight(height int) {
	if height < 1 {
		height = 1
	}
	s.state.ViewportHeight = height
	s.ensureVisible()
}

// SetSize replaces the list length and keeps the cursor inside it
func (s *Service) SetSize(size int) {
	if size < 0 {
		size = 0
	}
	s.state.Size = size
	s.MoveTo(s.state.Cursor)
}

// Reset moves back to the top
func (s *Service) Reset() {
	s.state.ViewportOffset = 0
	s.MoveTo(0)
}

// Navigate handles navigation in a direction
func (s *Service) Navigate(direction Direction) {
	page := s.state.ViewportHeight - 1
	if page < 1 {
		page = 1
	}

	switch direction {
	case DirectionUp:
		s.MoveTo(s.state.Cursor - 1)
	case DirectionDown:
		s.MoveTo(s.state.Cursor + 1)
	case DirectionPageUp:
		s.MoveTo(s.state.Cursor - page)
	case DirectionPageDown:
		s.MoveTo(s.state.Cursor + page)
	case DirectionHome:
		s.MoveTo(0)
	case DirectionEnd:
		s.MoveTo(s.state.Size - 1)
	}
}

// MoveTo moves the cursor to index, clamped to the list
func (s *Service) MoveTo(index int) {
	old := s.state.Cursor
	s.state.Cursor = s.clamp(index)
	s.ensureVisible()

	if old != s.state.Cursor {
		s.bus.Publish(CursorMovedEvent{
			List:     s.list,
			OldIndex: old,
			NewIndex: s.state.Cursor,
		})
	}
}

func (s *Service) clamp(index int) int {
	if index >= s.state.Size {
		index = s.state.Size - 1
	}
	if index < 0 {
		return 0
	}
	return index
}

func (s *Service) ensureVisible() {
	if s.state.Cursor < s.state.ViewportOffset {
		s.state.ViewportOffset = s.state.Cursor
	} else if s.state.Cursor >= s.state.ViewportOffset+s.state.ViewportHeight {
		s.state.ViewportOffset = s.state.Cursor - s.state.ViewportHeight + 1
	}
	if last := s.state.Size - s.state.ViewportHeight; s.state.ViewportOffset > last {
		s.state.ViewportOffset = last
	}
	if s.state.ViewportOffset < 0 {
		s.state.ViewportOffset = 0
	}
}
