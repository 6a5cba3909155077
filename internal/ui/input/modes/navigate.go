package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"lotview/internal/ui/input/keys"
	"lotview/internal/ui/input/types"
)

// navigate maps the shared list movement keys
func navigate(msg tea.KeyMsg) (types.Action, bool) {
	switch {
	case key.Matches(msg, keys.Up):
		return types.NavigateAction{Direction: "up"}, true
	case key.Matches(msg, keys.Down):
		return types.NavigateAction{Direction: "down"}, true
	case key.Matches(msg, keys.PageUp):
		return types.NavigateAction{Direction: "pageup"}, true
	case key.Matches(msg, keys.PageDown):
		return types.NavigateAction{Direction: "pagedown"}, true
	case key.Matches(msg, keys.Home):
		return types.NavigateAction{Direction: "home"}, true
	case key.Matches(msg, keys.End):
		return types.NavigateAction{Direction: "end"}, true
	}
	return nil, false
}
