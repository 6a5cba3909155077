package ui

import (
	"lotview/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// startMsg issues the first query once the program runs
type startMsg struct{}

// loadingDoneMsg ends the minimum visible time of a search refresh
type loadingDoneMsg struct {
	token uint64
}

// debounceMsg flushes typed search text if no newer keystroke arrived
type debounceMsg struct {
	version uint64
}

// surfaceExpandedMsg reports that a programmatically opened panel is on screen
type surfaceExpandedMsg struct{}

// historyPagerMsg contains the result of the history pager
type historyPagerMsg struct {
	err error
}

// clearStatusMsg clears the status bar
type clearStatusMsg struct{}

// pauseRenderingMsg signals to pause Bubble Tea rendering
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals to resume Bubble Tea rendering
type resumeRenderingMsg struct{}
