package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"lotview/internal/ui/input/keys"
	"lotview/internal/ui/input/types"
)

// SortMode picks one of the orderings offered for the listing type
type SortMode struct{}

func NewSortMode() *SortMode {
	return &SortMode{}
}

func (m *SortMode) Name() string {
	return "sort"
}

func (m *SortMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *SortMode) Exit(ctx types.Context) []types.Action {
	return nil
}

// HandleKey processes key messages for sort selection
func (m *SortMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	if key.Matches(msg, keys.ForceQuit) {
		return []types.Action{types.QuitAction{Force: true}}, true
	}
	if action, ok := navigate(msg); ok {
		return []types.Action{action}, true
	}

	switch {
	case key.Matches(msg, keys.Sort.Apply):
		return []types.Action{types.ApplySortAction{}}, true
	case key.Matches(msg, keys.Sort.NoSort):
		return []types.Action{types.RemoveSortAction{}}, true
	case key.Matches(msg, keys.Close):
		return []types.Action{types.ClosePanelAction{}}, true
	}
	return nil, false
}
