package windowmode

import "lotview/internal/domain"

// ModeChangedEvent is published whenever the active panel changes
type ModeChangedEvent struct {
	Old domain.WindowMode
	New domain.WindowMode
}
