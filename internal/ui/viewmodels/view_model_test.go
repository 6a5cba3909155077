package viewmodels

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lotview/internal/analytics"
	"lotview/internal/domain"
	"lotview/internal/logic"
	"lotview/internal/session"
	"lotview/internal/ui/coordinator"
	"lotview/internal/ui/input/keys"
	"lotview/internal/ui/services/events"
	"lotview/internal/ui/services/history"
	"lotview/internal/ui/services/paging"
	"lotview/internal/ui/state"
)

func newViewModel(t *testing.T) (*ViewModel, *coordinator.Coordinator, *state.AppState) {
	t.Helper()
	coord := coordinator.New(coordinator.Deps{
		Type:          domain.ListingTypeSearch,
		Session:       session.New("alice", 7),
		Bus:           events.NewBus(),
		HistoryRepo:   logic.NewMemoryHistoryRepository(),
		HistoryConfig: history.Config{Limit: 10},
		Categories:    paging.NewDemoCatalog("offers.list", "catalog"),
		Sink:          analytics.NoopSink{},
	})
	require.NoError(t, coord.Start(context.Background(), "offers.list", "catalog"))

	appState := state.NewAppState()
	appState.Width, appState.Height = 100, 30
	return NewViewModel(coord, appState), coord, appState
}

func TestBuildViewStateWindowsResults(t *testing.T) {
	vm, coord, _ := newViewModel(t)

	items := paging.DemoListings()
	coord.Results.SetViewportHeight(3)
	require.True(t, coord.ApplyPage(domain.Page{Generation: coord.Listing.Generation(), TotalCount: len(items), Items: items}))
	coord.Results.MoveTo(4)

	vs := vm.BuildViewState()
	assert.Equal(t, domain.ModeListing, vs.Mode)
	assert.Equal(t, len(items), vs.TotalCount)
	assert.False(t, vs.Pending)
	assert.Len(t, vs.Results, 3)
	assert.Equal(t, 4, vs.Cursor)
	assert.Equal(t, items[vs.ResultsFrom], vs.Results[0])
	assert.LessOrEqual(t, vs.ResultsFrom, 4)
	assert.Equal(t, keys.Listing, vs.HelpKeys)
}

func TestBuildViewStateChipsAndReady(t *testing.T) {
	vm, coord, appState := newViewModel(t)
	coord.Listing.ApplySorting(domain.Sort{Key: "price", Direction: "asc", Interpretation: domain.StringPtr("Cheapest first")})
	coord.Search.Amend(context.Background(), func(sc *domain.SearchCriteria) { sc.SearchString = "phone" })

	appState.ChipIndex = 1
	vs := vm.BuildViewState()
	require.Len(t, vs.Chips, 2)
	assert.False(t, vs.Chips[0].Focused)
	assert.True(t, vs.Chips[1].Focused)
	assert.False(t, vs.Ready, "the marker is off unless enabled")

	vm.SetReady(true)
	assert.False(t, vm.BuildViewState().Ready, "not before the first query")
	appState.Started = true
	assert.True(t, vm.BuildViewState().Ready)
}

func TestBuildViewStateFilterAndSortRows(t *testing.T) {
	vm, coord, appState := newViewModel(t)

	require.True(t, coord.Modes.OpenFilters())
	appState.StartFilterEditing(coord.Listing.Data().Filters)
	vs := vm.BuildViewState()
	require.Len(t, vs.FilterRows, 4)
	assert.Equal(t, "Price from", vs.FilterRows[0].Label)
	assert.Empty(t, vs.FilterRows[0].Value)

	coord.Modes.Reset()
	coord.Listing.ApplySorting(domain.Sort{Key: "price", Direction: "asc", Interpretation: domain.StringPtr("Cheapest first")})
	require.True(t, coord.Modes.OpenSorting())
	vs = vm.BuildViewState()
	require.Len(t, vs.SortRows, 4)
	assert.True(t, vs.SortRows[1].Active)
	assert.Equal(t, 1, vs.SortCursor, "the picker opens on the active option")
	assert.Equal(t, keys.Sort, vs.HelpKeys)
}

func TestBuildViewStateCategoryLevel(t *testing.T) {
	vm, coord, _ := newViewModel(t)

	require.True(t, coord.OpenCategory())
	vs := vm.BuildViewState()
	assert.Equal(t, domain.ModeCategory, vs.Mode)
	assert.NotEmpty(t, vs.Categories)
	assert.Equal(t, 0, vs.CategoryCursor)
	assert.Equal(t, keys.Category, vs.HelpKeys)
}

func TestBuildViewStateShowsLastError(t *testing.T) {
	vm, coord, _ := newViewModel(t)

	coord.HandleDomainEvent(domain.ErrorEvent{Kind: domain.ErrorKindServer, Message: "backend down", Generation: coord.Listing.Generation()})
	assert.Equal(t, "backend down", vm.BuildViewState().ErrorMessage)
}
