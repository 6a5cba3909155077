package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"lotview/internal/domain"
	"lotview/internal/ui/input/keys"
	"lotview/internal/ui/input/types"
)

// ListingMode handles keys while no panel is open
type ListingMode struct{}

func NewListingMode() *ListingMode {
	return &ListingMode{}
}

func (m *ListingMode) Name() string {
	return "listing"
}

func (m *ListingMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *ListingMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *ListingMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	if key.Matches(msg, keys.ForceQuit) {
		return []types.Action{types.QuitAction{Force: true}}, true
	}
	if action, ok := navigate(msg); ok {
		return []types.Action{action}, true
	}

	k := keys.Listing
	switch {
	case key.Matches(msg, k.Search):
		return []types.Action{types.OpenPanelAction{Mode: domain.ModeSearch}}, true
	case key.Matches(msg, k.Filters):
		return []types.Action{types.OpenPanelAction{Mode: domain.ModeFilters}}, true
	case key.Matches(msg, k.Sort):
		return []types.Action{types.OpenPanelAction{Mode: domain.ModeSorting}}, true
	case key.Matches(msg, k.Category):
		return []types.Action{types.OpenPanelAction{Mode: domain.ModeCategory}}, true
	case key.Matches(msg, k.TabAll):
		return []types.Action{types.ChangeSaleTabAction{Tab: domain.SaleTabAll}}, true
	case key.Matches(msg, k.TabAuction):
		return []types.Action{types.ChangeSaleTabAction{Tab: domain.SaleTabAuction}}, true
	case key.Matches(msg, k.TabBuyNow):
		return []types.Action{types.ChangeSaleTabAction{Tab: domain.SaleTabBuyNow}}, true
	case key.Matches(msg, k.ClearAll):
		return []types.Action{types.ClearAllAction{}}, true
	case key.Matches(msg, k.ChipLeft):
		return []types.Action{types.FocusChipAction{Delta: -1}}, true
	case key.Matches(msg, k.ChipRight):
		return []types.Action{types.FocusChipAction{Delta: 1}}, true
	case key.Matches(msg, k.RemoveChip):
		if ctx.ChipCount() == 0 {
			return nil, false
		}
		return []types.Action{types.RemoveChipAction{}}, true
	case key.Matches(msg, k.History):
		return []types.Action{types.OpenPagerAction{}}, true
	case key.Matches(msg, k.Help):
		return []types.Action{types.ToggleHelpAction{}}, true
	case key.Matches(msg, k.Quit):
		return []types.Action{types.QuitAction{}}, true
	}
	return nil, false
}
