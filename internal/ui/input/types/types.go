package types

import (
	tea "github.com/charmbracelet/bubbletea"

	"lotview/internal/domain"
)

// Action represents a command the model should execute
type Action interface {
	Type() string
}

// Context provides read-only access to model state needed for input handling
type Context interface {
	Mode() domain.WindowMode
	Cursor() int
	ListSize() int
	ChipCount() int
}

// ModeHandler handles input for one panel
type ModeHandler interface {
	// HandleKey processes a key message and returns actions and whether to consume the event
	HandleKey(msg tea.KeyMsg, ctx Context) ([]Action, bool)

	// Enter is called when the panel opens
	Enter(ctx Context) []Action

	// Exit is called when the panel closes
	Exit(ctx Context) []Action

	// Name returns the mode name for display
	Name() string
}

// TextMode is implemented by handlers that feed unconsumed keys to the shared text input
type TextMode interface {
	AcceptsText() bool
}
