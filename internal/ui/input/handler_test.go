package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lotview/internal/domain"
	"lotview/internal/ui/input/types"
	"lotview/internal/ui/services/events"
	"lotview/internal/ui/services/navigation"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func contextWith(size, chips int) *ModelContext {
	list := navigation.NewService(navigation.ListResults, events.NewBus())
	list.SetSize(size)
	return &ModelContext{List: list, Chips: chips}
}

func TestListingKeysOpenPanels(t *testing.T) {
	h := New()
	ctx := contextWith(3, 0)

	actions, _ := h.HandleKey(runes("/"), ctx)
	assert.Equal(t, []types.Action{types.OpenPanelAction{Mode: domain.ModeSearch}}, actions)

	actions, _ = h.HandleKey(runes("2"), ctx)
	assert.Equal(t, []types.Action{types.ChangeSaleTabAction{Tab: domain.SaleTabAuction}}, actions)

	actions, _ = h.HandleKey(runes("d"), ctx)
	assert.Empty(t, actions, "nothing to remove without chips")

	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyCtrlC}, ctx)
	assert.Equal(t, []types.Action{types.QuitAction{Force: true}}, actions)
}

func TestSearchPanelEditsText(t *testing.T) {
	h := New()
	ctx := contextWith(0, 0)

	h.Sync(domain.ModeSearch, "pho", ctx)
	require.NotNil(t, h.TextInput())
	assert.Equal(t, "pho", h.TextInput().Value())

	actions, _ := h.HandleKey(runes("n"), ctx)
	assert.Equal(t, []types.Action{types.UpdateTextAction{Text: "phon"}}, actions)

	actions, _ = h.HandleKey(runes("q"), ctx)
	assert.Equal(t, []types.Action{types.UpdateTextAction{Text: "phonq"}}, actions, "q is text while searching")

	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyTab}, ctx)
	assert.Empty(t, actions, "no history entry to pick")

	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyCtrlK}, ctx)
	assert.Equal(t, []types.Action{types.OpenPanelAction{Mode: domain.ModeCategoryFilters}}, actions)

	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyEsc}, ctx)
	assert.Equal(t, []types.Action{types.SubmitSearchAction{}}, actions)

	h.Sync(domain.ModeListing, "", ctx)
	assert.Nil(t, h.TextInput())
}

func TestFilterValueEditing(t *testing.T) {
	h := New()
	ctx := contextWith(4, 0)
	h.Sync(domain.ModeFilters, "", ctx)
	assert.Nil(t, h.TextInput())

	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}, ctx)
	assert.Equal(t, []types.Action{types.EditFilterAction{}}, actions)
	assert.True(t, h.Editing())

	h.SetText("10")
	actions, _ = h.HandleKey(runes("0"), ctx)
	assert.Equal(t, []types.Action{types.UpdateTextAction{Text: "100"}}, actions)

	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}, ctx)
	assert.Equal(t, []types.Action{types.SubmitFilterValueAction{Text: "100"}}, actions)
	assert.False(t, h.Editing())

	actions, _ = h.HandleKey(runes("a"), ctx)
	assert.Equal(t, []types.Action{types.ApplyFiltersAction{}}, actions)
}

func TestCategoryKeys(t *testing.T) {
	h := New()
	ctx := contextWith(2, 0)
	h.Sync(domain.ModeCategory, "", ctx)

	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}, ctx)
	assert.Equal(t, []types.Action{types.PickCategoryAction{}}, actions)

	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyBackspace}, ctx)
	assert.Equal(t, []types.Action{types.BackAction{}}, actions)

	actions, _ = h.HandleKey(runes("j"), ctx)
	assert.Equal(t, []types.Action{types.NavigateAction{Direction: "down"}}, actions)
}
