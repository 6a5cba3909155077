package modes

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"lotview/internal/domain"
	"lotview/internal/ui/input/keys"
	"lotview/internal/ui/input/types"
)

// SearchMode edits the query in the shared text input and drives the history list
type SearchMode struct {
	textInput *textinput.Model
}

func NewSearchMode(ti *textinput.Model) *SearchMode {
	return &SearchMode{textInput: ti}
}

func (m *SearchMode) Name() string {
	return "search"
}

func (m *SearchMode) AcceptsText() bool {
	return true
}

func (m *SearchMode) Enter(ctx types.Context) []types.Action {
	if m.textInput != nil {
		m.textInput.Prompt = "" // Prompt is handled in the UI layer
		m.textInput.Focus()
	}
	return nil
}

func (m *SearchMode) Exit(ctx types.Context) []types.Action {
	if m.textInput != nil {
		m.textInput.Blur()
	}
	return nil
}

func (m *SearchMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	if key.Matches(msg, keys.ForceQuit) {
		return []types.Action{types.QuitAction{Force: true}}, true
	}

	k := keys.Search
	hasEntry := ctx.ListSize() > 0
	switch {
	case key.Matches(msg, k.Submit), key.Matches(msg, k.Cancel):
		// leaving the panel always commits
		return []types.Action{types.SubmitSearchAction{}}, true
	case key.Matches(msg, k.Prev):
		return []types.Action{types.NavigateAction{Direction: "up"}}, true
	case key.Matches(msg, k.Next):
		return []types.Action{types.NavigateAction{Direction: "down"}}, true
	case key.Matches(msg, k.Pick) && hasEntry:
		return []types.Action{types.PickHistoryAction{}}, true
	case key.Matches(msg, k.Edit) && hasEntry:
		return []types.Action{types.EditHistoryAction{}}, true
	case key.Matches(msg, k.Delete) && hasEntry:
		return []types.Action{types.DeleteHistoryAction{}}, true
	case key.Matches(msg, k.ClearHistory):
		return []types.Action{types.ClearHistoryAction{}}, true
	case key.Matches(msg, k.UserSearch):
		return []types.Action{types.ToggleUserSearchAction{}}, true
	case key.Matches(msg, k.Finished):
		return []types.Action{types.ToggleFinishedAction{}}, true
	case key.Matches(msg, k.Refresh):
		return []types.Action{types.RefreshSearchAction{}}, true
	case key.Matches(msg, k.CategoryPicker):
		return []types.Action{types.OpenPanelAction{Mode: domain.ModeCategoryFilters}}, true
	case key.Matches(msg, k.Pager):
		return []types.Action{types.OpenPagerAction{}}, true
	}

	// Let the main handler update the text input
	return nil, false
}
