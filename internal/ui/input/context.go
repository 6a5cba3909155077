package input

import (
	"lotview/internal/domain"
	"lotview/internal/ui/services/navigation"
)

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	WindowMode domain.WindowMode
	List       *navigation.Service // cursor of the list shown by the active panel
	Chips      int
}

func (c *ModelContext) Mode() domain.WindowMode {
	return c.WindowMode
}

// Cursor returns the selected index of the active list
func (c *ModelContext) Cursor() int {
	if c.List == nil {
		return 0
	}
	return c.List.Cursor()
}

// ListSize returns the length of the active list
func (c *ModelContext) ListSize() int {
	if c.List == nil {
		return 0
	}
	return c.List.Size()
}

// ChipCount returns the number of removable chips
func (c *ModelContext) ChipCount() int {
	return c.Chips
}
