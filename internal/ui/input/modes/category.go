package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"lotview/internal/ui/input/keys"
	"lotview/internal/ui/input/types"
)

// CategoryMode walks the category tree; it serves both the browser and the search picker
type CategoryMode struct {
	name string
}

func NewCategoryMode(name string) *CategoryMode {
	return &CategoryMode{name: name}
}

func (m *CategoryMode) Name() string {
	return m.name
}

func (m *CategoryMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *CategoryMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *CategoryMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	if key.Matches(msg, keys.ForceQuit) {
		return []types.Action{types.QuitAction{Force: true}}, true
	}

	k := keys.Category
	switch {
	case key.Matches(msg, k.Open):
		if ctx.ListSize() == 0 {
			return nil, false
		}
		return []types.Action{types.PickCategoryAction{}}, true
	case key.Matches(msg, k.Back):
		return []types.Action{types.BackAction{}}, true
	case key.Matches(msg, k.Use):
		return []types.Action{types.UseCategoryAction{}}, true
	case key.Matches(msg, k.Clear):
		return []types.Action{types.ClearCategoryAction{}}, true
	case key.Matches(msg, k.Close):
		return []types.Action{types.ClosePanelAction{}}, true
	}
	if action, ok := navigate(msg); ok {
		return []types.Action{action}, true
	}
	return nil, false
}
