package views

import (
	"testing"

	"github.com/charmbracelet/bubbles/help"
	"github.com/stretchr/testify/assert"

	"lotview/internal/domain"
	"lotview/internal/ui/input/keys"
	"lotview/internal/ui/services/filterbar"
)

func baseState() ViewState {
	return ViewState{
		Width:       100,
		Height:      30,
		ListingType: domain.ListingTypeSearch,
		NavItems:    filterbar.DefaultTemplates(),
		HelpModel:   help.New(),
		HelpKeys:    keys.Listing,
	}
}

func TestRenderListing(t *testing.T) {
	state := baseState()
	state.Chips = []ChipView{{Label: `"phone"`, Focused: true}}
	state.Results = []domain.Listing{
		{ID: 1, Title: "Smartphone X 128GB", Price: 420, SaleType: "buynow", SellerLogin: "alice"},
		{ID: 2, Title: "Old flip phone", Price: 25, SaleType: "auction", SellerLogin: "carol", Finished: true},
	}
	state.TotalCount = 5
	state.Ready = true

	out := NewRenderer().Render(state)

	assert.Contains(t, out, "lotview")
	assert.Contains(t, out, "5 results")
	assert.Contains(t, out, `"phone" ✕`)
	assert.Contains(t, out, "Smartphone X 128GB")
	assert.Contains(t, out, "finished")
	assert.Contains(t, out, "↓ 3 more")
	assert.Contains(t, out, ReadyMarker)
}

func TestRenderEmptyListing(t *testing.T) {
	state := baseState()

	assert.Contains(t, NewRenderer().Render(state), "Nothing matches")

	state.Pending = true
	out := NewRenderer().Render(state)
	assert.Contains(t, out, "Loading listings...")
	assert.NotContains(t, out, ReadyMarker)
}

func TestRenderPanels(t *testing.T) {
	r := NewRenderer()

	state := baseState()
	state.Mode = domain.ModeSearch
	state.SearchInput = "lap"
	state.Draft = domain.SearchCriteria{UserSearch: true, SearchFinished: true}
	state.History = []domain.SearchHistoryItem{{ID: 1, Query: "laptop", IsUsersSearch: true}}
	out := r.Render(state)
	assert.Contains(t, out, "/ lap")
	assert.Contains(t, out, "seller: me · finished only")
	assert.Contains(t, out, "laptop @me")

	state = baseState()
	state.Mode = domain.ModeFilters
	state.FilterRows = []FieldRow{{Label: "Price from", Value: "10"}, {Label: "Price to"}}
	out = r.Render(state)
	assert.Contains(t, out, "Price from")
	assert.Contains(t, out, "10")
	assert.Contains(t, out, "any")

	state = baseState()
	state.Mode = domain.ModeSorting
	state.SortRows = []SortRow{{Label: "Newest first"}, {Label: "Cheapest first", Active: true}}
	assert.Contains(t, r.Render(state), "Cheapest first ✓")

	state = baseState()
	state.Mode = domain.ModeCategoryFilters
	state.CategoryPath = []domain.Category{{ID: 1, Name: "Electronics"}}
	state.Categories = []domain.Category{{ID: 11, Name: "Phones"}}
	out = r.Render(state)
	assert.Contains(t, out, "Search in category")
	assert.Contains(t, out, "All › Electronics")
	assert.Contains(t, out, "Phones")
}

func TestRenderFooterMessages(t *testing.T) {
	state := baseState()
	state.StatusMessage = "saved"
	assert.Contains(t, NewRenderer().Render(state), "saved")

	state.ErrorMessage = "backend down"
	out := NewRenderer().Render(state)
	assert.Contains(t, out, "✗ backend down")
	assert.NotContains(t, out, "saved", "an error takes the status line")
}

func TestRenderHelpOverlay(t *testing.T) {
	state := baseState()
	state.ShowHelp = true

	out := NewRenderer().Render(state)
	assert.Contains(t, out, "Keys")
	assert.Contains(t, out, "clear filters")
}
