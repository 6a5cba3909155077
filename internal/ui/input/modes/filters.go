package modes

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"lotview/internal/ui/input/keys"
	"lotview/internal/ui/input/types"
)

// FiltersMode browses the filter fields; while a value is edited keys go to the text input
type FiltersMode struct {
	textInput *textinput.Model
	editing   bool
}

func NewFiltersMode(ti *textinput.Model) *FiltersMode {
	return &FiltersMode{textInput: ti}
}

func (m *FiltersMode) Name() string {
	return "filters"
}

func (m *FiltersMode) AcceptsText() bool {
	return m.editing
}

// Editing reports whether a value is being typed
func (m *FiltersMode) Editing() bool {
	return m.editing
}

func (m *FiltersMode) Enter(ctx types.Context) []types.Action {
	m.stopEditing()
	return nil
}

func (m *FiltersMode) Exit(ctx types.Context) []types.Action {
	m.stopEditing()
	return nil
}

func (m *FiltersMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	if key.Matches(msg, keys.ForceQuit) {
		return []types.Action{types.QuitAction{Force: true}}, true
	}

	k := keys.Filters
	if m.editing {
		switch {
		case key.Matches(msg, k.Submit):
			text := m.textInput.Value()
			m.stopEditing()
			return []types.Action{types.SubmitFilterValueAction{Text: text}}, true
		case key.Matches(msg, k.Cancel):
			m.stopEditing()
			return []types.Action{types.CancelFilterValueAction{}}, true
		}
		return nil, false
	}

	if action, ok := navigate(msg); ok {
		return []types.Action{action}, true
	}
	switch {
	case key.Matches(msg, k.Edit):
		if ctx.ListSize() == 0 {
			return nil, false
		}
		m.editing = true
		m.textInput.Reset()
		m.textInput.Prompt = ""
		m.textInput.Focus()
		return []types.Action{types.EditFilterAction{}}, true
	case key.Matches(msg, k.Reset):
		return []types.Action{types.ResetFilterFieldAction{}}, true
	case key.Matches(msg, k.Apply):
		return []types.Action{types.ApplyFiltersAction{}}, true
	case key.Matches(msg, k.Clear):
		return []types.Action{types.ClearAllAction{}}, true
	case key.Matches(msg, keys.Close):
		return []types.Action{types.ClosePanelAction{}}, true
	}
	return nil, false
}

func (m *FiltersMode) stopEditing() {
	m.editing = false
	if m.textInput != nil {
		m.textInput.Blur()
		m.textInput.Reset()
	}
}
