package history

import "lotview/internal/domain"

// Tags appended to the stored query; independent and always in this order
const (
	tagMark     = " _"
	userTag     = " _user"
	finishedTag = " _finished"
)

// ChangedEvent is published after the in-memory list was reloaded
type ChangedEvent struct {
	Prefix string
	Items  []domain.SearchHistoryItem
}
