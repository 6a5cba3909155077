package coordinator

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lotview/internal/analytics"
	"lotview/internal/checkpoint"
	"lotview/internal/domain"
	"lotview/internal/eventbus"
	"lotview/internal/logic"
	"lotview/internal/session"
	"lotview/internal/ui/services/events"
	"lotview/internal/ui/services/filterbar"
	"lotview/internal/ui/services/history"
	"lotview/internal/ui/services/paging"
)

func newCoordinator(t *testing.T, store logic.CheckpointStore) *Coordinator {
	t.Helper()
	return New(Deps{
		Type:          domain.ListingTypeSearch,
		Session:       session.New("alice", 7),
		Bus:           events.NewBus(),
		HistoryRepo:   logic.NewMemoryHistoryRepository(),
		HistoryConfig: history.Config{Limit: 10},
		Categories:    paging.NewDemoCatalog("offers.list", "catalog"),
		Sink:          analytics.NoopSink{},
		Checkpoints:   checkpoint.NewManager(store, nil),
	})
}

func TestStartIssuesFirstQuery(t *testing.T) {
	ctx := context.Background()
	store := logic.NewMemoryCheckpointStore()
	c := newCoordinator(t, store)

	require.NoError(t, c.Start(ctx, "offers.list", "catalog"))

	assert.Equal(t, uint64(1), c.Listing.Generation())
	assert.True(t, c.Pending())
	assert.Equal(t, "offers.list", c.Listing.Data().MethodServer)
	assert.True(t, c.FilterBar().ShowTabs)
	assert.Empty(t, c.FilterBar().Chips)

	_, saved, err := store.Load(ctx, checkpoint.Key(domain.ListingTypeSearch))
	require.NoError(t, err)
	assert.True(t, saved, "a refresh stores a checkpoint")
}

func TestStartRestoresCheckpoint(t *testing.T) {
	ctx := context.Background()
	store := logic.NewMemoryCheckpointStore()
	manager := checkpoint.NewManager(store, nil)
	require.NoError(t, manager.Save(ctx, checkpoint.Snapshot{
		Type: domain.ListingTypeSearch,
		Mode: domain.ModeSearch.String(),
		Data: domain.ListingData{
			Sort:         &domain.Sort{Key: "price", Direction: "asc", Interpretation: domain.StringPtr("Cheapest first")},
			MethodServer: "offers.list",
		},
		Search: domain.SearchCriteria{SearchString: "phone"},
	}))

	c := newCoordinator(t, store)
	require.NoError(t, c.Start(ctx, "offers.list", "catalog"))

	assert.Equal(t, "catalog", c.Listing.Data().ObjServer, "missing endpoint is taken from the configuration")
	assert.Equal(t, "phone", c.Listing.Search().SearchString)
	assert.Equal(t, domain.ModeSearch, c.Modes.Mode())
	assert.Equal(t, "phone", c.SearchState().Buffer)

	labels := make([]string, 0)
	for _, chip := range c.FilterBar().Chips {
		labels = append(labels, chip.Label)
	}
	assert.Equal(t, []string{"Cheapest first", `"phone"`}, labels)
}

func TestApplyPageDropsStaleGenerations(t *testing.T) {
	ctx := context.Background()
	c := newCoordinator(t, logic.NewMemoryCheckpointStore())
	require.NoError(t, c.Start(ctx, "offers.list", "catalog"))

	c.Listing.ChangeSaleTab(domain.SaleTabAuction)
	require.Equal(t, uint64(2), c.Listing.Generation())

	assert.False(t, c.ApplyPage(domain.Page{Generation: 1, TotalCount: 16}))
	assert.True(t, c.Pending())

	c.HandleDomainEvent(eventbus.TotalCountUpdatedEvent{Page: domain.Page{
		Generation: 2,
		TotalCount: 1,
		Items:      []domain.Listing{{ID: 3, Title: "Old flip phone"}},
	}})
	assert.False(t, c.Pending())
	assert.Equal(t, 1, c.Page().TotalCount)
	assert.Equal(t, 1, c.Results.Size())
}

func TestRemoveChips(t *testing.T) {
	ctx := context.Background()
	c := newCoordinator(t, logic.NewMemoryCheckpointStore())
	require.NoError(t, c.Start(ctx, "offers.list", "catalog"))

	c.Search.Amend(ctx, func(sc *domain.SearchCriteria) {
		sc.SearchString = "lamp"
		sc.UserSearch = true
		sc.UserLogin = "bob"
		sc.UserID = 2
		sc.SearchFinished = true
	})
	c.Listing.ApplySorting(domain.Sort{Key: "price", Direction: "desc"})
	require.Len(t, c.FilterBar().Chips, 4)

	for len(c.FilterBar().Chips) > 0 {
		c.RemoveChip(ctx, c.FilterBar().Chips[0])
	}

	assert.Nil(t, c.Listing.Data().Sort)
	assert.Equal(t, domain.SearchCriteria{}, c.Listing.Search())
}

func TestCategoryBrowserCommitsLeaf(t *testing.T) {
	ctx := context.Background()
	c := newCoordinator(t, logic.NewMemoryCheckpointStore())
	require.NoError(t, c.Start(ctx, "offers.list", "catalog"))

	require.True(t, c.OpenCategory())
	assert.Equal(t, 3, c.CategoryCursor.Size())

	c.PickCategory(ctx, 1)
	assert.Equal(t, domain.ModeCategory, c.Modes.Mode())
	assert.Equal(t, 3, c.CategoryCursor.Size())

	c.PickCategory(ctx, 11)
	assert.Equal(t, domain.ModeListing, c.Modes.Mode())
	assert.Equal(t, int64(11), c.Listing.Search().SearchCategoryID)
	assert.Equal(t, "Phones", c.Listing.Search().SearchCategoryName)

	var nav filterbar.NavItem
	for _, item := range c.FilterBar().NavItems {
		if item.ID == filterbar.NavCategory {
			nav = item
		}
	}
	assert.True(t, nav.HasNews)
}

func TestCategoryPickerWritesDraftOnly(t *testing.T) {
	ctx := context.Background()
	c := newCoordinator(t, logic.NewMemoryCheckpointStore())
	require.NoError(t, c.Start(ctx, "offers.list", "catalog"))

	c.Search.ChangeOpenSearch(ctx, true)
	require.True(t, c.OpenCategoryPicker())
	assert.Equal(t, domain.ModeCategoryFilters, c.Modes.Mode())

	c.PickCategory(ctx, 3)
	assert.Equal(t, domain.ModeSearch, c.Modes.Mode())
	assert.Equal(t, int64(3), c.SearchState().Draft.SearchCategoryID)
	assert.Zero(t, c.Listing.Search().SearchCategoryID)

	c.Search.ChangeOpenSearch(ctx, false)
	assert.Equal(t, int64(3), c.Listing.Search().SearchCategoryID)
}

func TestClearCategoryInPicker(t *testing.T) {
	ctx := context.Background()
	c := newCoordinator(t, logic.NewMemoryCheckpointStore())
	require.NoError(t, c.Start(ctx, "offers.list", "catalog"))
	c.Search.Amend(ctx, func(sc *domain.SearchCriteria) {
		sc.SearchCategoryID = 22
		sc.SearchCategoryName = "Lighting"
	})

	c.Search.ChangeOpenSearch(ctx, true)
	require.True(t, c.OpenCategoryPicker())
	c.ClearCategory(ctx)

	assert.Equal(t, domain.ModeSearch, c.Modes.Mode())
	assert.Zero(t, c.SearchState().Draft.SearchCategoryID)
	assert.Equal(t, int64(22), c.Listing.Search().SearchCategoryID)
}

func TestErrorEventsBecomeToasts(t *testing.T) {
	c := newCoordinator(t, logic.NewMemoryCheckpointStore())
	require.NoError(t, c.Start(context.Background(), "offers.list", "catalog"))

	c.HandleDomainEvent(eventbus.ErrorEvent{
		Kind:       domain.ErrorKindServer,
		Message:    "not found",
		Err:        &domain.ServerError{Code: 404, Message: "not found"},
		Generation: 1,
	})
	assert.False(t, c.Pending())
	assert.Equal(t, "not found", c.LastError())

	c.ClearError()
	assert.Empty(t, c.LastError())
}

func TestErrorsOfSupersededRefreshesAreDropped(t *testing.T) {
	c := newCoordinator(t, logic.NewMemoryCheckpointStore())
	require.NoError(t, c.Start(context.Background(), "offers.list", "catalog"))

	c.Listing.ChangeSaleTab(domain.SaleTabAuction)
	require.Equal(t, uint64(2), c.Listing.Generation())

	c.HandleDomainEvent(eventbus.ErrorEvent{
		Kind:       domain.ErrorKindServer,
		Message:    "gateway timeout",
		Err:        &domain.ServerError{Code: 504, Message: "gateway timeout"},
		Generation: 1,
	})
	assert.True(t, c.Pending())
	assert.Empty(t, c.LastError())

	c.HandleDomainEvent(eventbus.ErrorEvent{
		Kind:       domain.ErrorKindServer,
		Message:    "gateway timeout",
		Generation: 2,
	})
	assert.False(t, c.Pending())
	assert.Equal(t, "gateway timeout", c.LastError())
}

type failingStore struct{}

func (failingStore) Load(context.Context, string) ([]byte, bool, error) {
	return nil, false, errors.New("unreachable")
}

func (failingStore) Save(context.Context, string, []byte) error {
	return errors.New("unreachable")
}

func TestCheckpointFailuresDoNotBlockStart(t *testing.T) {
	c := newCoordinator(t, failingStore{})
	require.NoError(t, c.Start(context.Background(), "offers.list", "catalog"))
	assert.Equal(t, uint64(1), c.Listing.Generation())
	assert.Error(t, c.Close(context.Background()))
}
