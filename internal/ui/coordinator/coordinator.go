package coordinator

import (
	"context"
	"time"

	"lotview/internal/analytics"
	"lotview/internal/checkpoint"
	"lotview/internal/domain"
	"lotview/internal/eventbus"
	"lotview/internal/logic"
	"lotview/internal/platform/logger"
	"lotview/internal/session"
	"lotview/internal/ui/services/category"
	"lotview/internal/ui/services/events"
	"lotview/internal/ui/services/filterbar"
	"lotview/internal/ui/services/history"
	"lotview/internal/ui/services/listing"
	"lotview/internal/ui/services/navigation"
	"lotview/internal/ui/services/search"
	"lotview/internal/ui/services/windowmode"
)

// Deps are the collaborators of one listing screen
type Deps struct {
	Type          domain.ListingType
	Session       session.Session
	Bus           events.EventBus
	DomainBus     eventbus.EventBus
	HistoryRepo   logic.HistoryRepository
	HistoryConfig history.Config
	Categories    category.Source
	Sink          analytics.Sink
	Checkpoints   *checkpoint.Manager // optional
	Log           logger.Logger
}

// Coordinator owns the services of a listing screen and keeps the derived views current
type Coordinator struct {
	// Services
	Listing  *listing.Service
	Modes    *windowmode.Service
	History  *history.Service
	Search   *search.Service
	Category *category.Service

	// Cursors
	Results        *navigation.Service
	HistoryCursor  *navigation.Service
	CategoryCursor *navigation.Service
	FilterCursor   *navigation.Service
	SortCursor     *navigation.Service

	// Dependencies
	bus         events.EventBus
	checkpoints *checkpoint.Manager
	log         logger.Logger
	timeout     time.Duration

	// Derived state
	templates   []filterbar.NavItem
	filterBar   filterbar.UiState
	searchState search.UiState
	page        domain.Page
	pending     bool
	lastError   string
}

// New creates a coordinator with all services
func New(deps Deps) *Coordinator {
	log := deps.Log
	if log == nil {
		log = logger.NewNop()
	}
	timeout := deps.HistoryConfig.Timeout
	if timeout <= 0 {
		timeout = 2 * time.Second
	}

	modes := windowmode.NewService(deps.Bus)
	store := listing.NewService(deps.Type, deps.Session, modes, deps.Bus, deps.DomainBus)
	hist := history.NewService(deps.HistoryRepo, deps.Session, deps.Bus, deps.DomainBus, log, deps.HistoryConfig)

	c := &Coordinator{
		Listing:        store,
		Modes:          modes,
		History:        hist,
		Search:         search.NewService(store, modes, hist, deps.Sink, deps.Session, deps.Bus),
		Category:       category.NewService(deps.Categories),
		Results:        navigation.NewService(navigation.ListResults, deps.Bus),
		HistoryCursor:  navigation.NewService(navigation.ListHistory, deps.Bus),
		CategoryCursor: navigation.NewService(navigation.ListCategory, deps.Bus),
		FilterCursor:   navigation.NewService(navigation.ListFilters, deps.Bus),
		SortCursor:     navigation.NewService(navigation.ListSorting, deps.Bus),
		bus:            deps.Bus,
		checkpoints:    deps.Checkpoints,
		log:            log.With("component", "coordinator"),
		timeout:        timeout,
		templates:      filterbar.DefaultTemplates(),
	}

	c.wireServices(log)
	c.subscribeToEvents()
	c.refreshFilterBar()
	c.searchState = c.Search.State()

	return c
}

// wireServices connects services with their dependencies
func (c *Coordinator) wireServices(log logger.Logger) {
	c.Modes.SetCategoryComponent(c.Category)
	c.Modes.SetLogger(log)
	c.Listing.SetLogger(log)
	c.Search.SetLogger(log)
}

// subscribeToEvents sets up event handlers
func (c *Coordinator) subscribeToEvents() {
	c.bus.Subscribe("listing.DataChangedEvent", func(e interface{}) {
		event := e.(listing.DataChangedEvent)
		c.refreshFilterBar()
		if !event.Refreshed {
			return
		}
		c.pending = true
		ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
		defer cancel()
		if err := c.SaveCheckpoint(ctx); err != nil {
			c.log.Warnf("checkpoint after refresh: %v", err)
		}
	})

	c.bus.Subscribe("search.StateChangedEvent", func(e interface{}) {
		c.searchState = e.(search.StateChangedEvent).State
		c.HistoryCursor.SetSize(len(c.searchState.History))
	})

	c.bus.Subscribe("history.ChangedEvent", func(e interface{}) {
		c.HistoryCursor.SetSize(len(e.(history.ChangedEvent).Items))
	})

	c.bus.Subscribe("windowmode.ModeChangedEvent", func(e interface{}) {
		event := e.(windowmode.ModeChangedEvent)
		switch event.New {
		case domain.ModeSearch:
			if event.Old == domain.ModeListing {
				c.HistoryCursor.Reset()
			}
		case domain.ModeFilters:
			c.FilterCursor.SetSize(len(listing.Fields(c.Listing.Type())))
			c.FilterCursor.Reset()
		case domain.ModeSorting:
			c.syncSortCursor()
		case domain.ModeCategory, domain.ModeCategoryFilters:
			c.syncCategoryCursor()
		}
	})
}

// Start restores the last checkpoint of the listing type, or issues the first query
// against the configured endpoint.
func (c *Coordinator) Start(ctx context.Context, methodServer, objServer string) error {
	if c.checkpoints != nil {
		snap, ok, err := c.checkpoints.Load(ctx, c.Listing.Type())
		if err != nil {
			c.log.Warnf("restore checkpoint: %v", err)
		}
		if ok {
			if snap.Data.MethodServer == "" {
				snap.Data.MethodServer = methodServer
			}
			if snap.Data.ObjServer == "" {
				snap.Data.ObjServer = objServer
			}
			if err := c.Listing.Restore(snap.Data, snap.Search); err != nil {
				c.log.Warnf("discarding checkpoint: %v", err)
			} else {
				c.log.Infof("restored %s listing", c.Listing.Type())
				if domain.ParseWindowMode(snap.Mode) == domain.ModeSearch {
					c.Search.ChangeOpenSearch(ctx, true)
				}
				return nil
			}
		}
	}

	return c.Listing.SetListingData(domain.ListingData{
		Filters:      listing.EmptyFilters(c.Listing.Type()),
		MethodServer: methodServer,
		ObjServer:    objServer,
	}, c.Listing.Search())
}

// SaveCheckpoint stores the committed query and the open panel
func (c *Coordinator) SaveCheckpoint(ctx context.Context) error {
	if c.checkpoints == nil {
		return nil
	}
	return c.checkpoints.Save(ctx, checkpoint.Snapshot{
		Type:   c.Listing.Type(),
		Mode:   c.Modes.Mode().String(),
		Data:   c.Listing.Data(),
		Search: c.Listing.Search(),
	})
}

// HandleDomainEvent applies an event forwarded from the domain bus.
// It must be called from the UI loop.
func (c *Coordinator) HandleDomainEvent(event eventbus.DomainEvent) {
	switch e := event.(type) {
	case eventbus.TotalCountUpdatedEvent:
		c.ApplyPage(e.Page)
	case eventbus.ErrorEvent:
		if e.Kind == domain.ErrorKindServer {
			if e.Generation < c.Listing.Generation() {
				c.log.Debugf("dropping stale error %d < %d: %s", e.Generation, c.Listing.Generation(), e.Message)
				return
			}
			c.pending = false
		}
		c.lastError = e.Message
	}
}

// ApplyPage shows a collaborator result. Results of superseded refreshes are dropped.
func (c *Coordinator) ApplyPage(page domain.Page) bool {
	if page.Generation < c.Listing.Generation() {
		c.log.Debugf("dropping stale page %d < %d", page.Generation, c.Listing.Generation())
		return false
	}
	c.page = page
	c.pending = false
	c.Results.SetSize(len(page.Items))
	c.Results.Reset()
	return true
}

// RemoveChip removes the query part a chip stands for
func (c *Coordinator) RemoveChip(ctx context.Context, chip filterbar.Chip) {
	switch chip.Kind {
	case filterbar.ChipFilter:
		c.Listing.RemoveFilter(chip.Filter)
	case filterbar.ChipSort:
		c.Listing.RemoveSort()
	case filterbar.ChipUser:
		c.Search.Amend(ctx, func(sc *domain.SearchCriteria) {
			sc.UserSearch = false
			sc.UserLogin = ""
			sc.UserID = 0
		})
	case filterbar.ChipSearch:
		c.Search.Amend(ctx, func(sc *domain.SearchCriteria) {
			sc.SearchString = ""
		})
	case filterbar.ChipFinished:
		c.Search.Amend(ctx, func(sc *domain.SearchCriteria) {
			sc.SearchFinished = false
		})
	}
}

// OpenCategory opens the category browser on the committed category
func (c *Coordinator) OpenCategory() bool {
	return c.Modes.OpenCategory(c.Listing.Search())
}

// OpenCategoryPicker opens the category picker from the search panel on the draft category
func (c *Coordinator) OpenCategoryPicker() bool {
	return c.Modes.OpenCategoryFilters(c.Listing.Draft())
}

// CloseCategoryPicker returns to the search panel, moving a newly picked category into the draft
func (c *Coordinator) CloseCategoryPicker() {
	if picked, ok := c.Modes.CloseCategoryFilters(c.Listing.Draft()); ok {
		c.Search.SelectCategory(picked)
	}
}

// PickCategory selects the entry under the cursor. Reaching a leaf completes the flow.
func (c *Coordinator) PickCategory(ctx context.Context, id int64) {
	mode := c.Modes.Mode()
	if mode != domain.ModeCategory && mode != domain.ModeCategoryFilters {
		return
	}
	_, leaf := c.Category.Select(id)
	c.syncCategoryCursor()
	if leaf {
		c.UseCurrentCategory(ctx)
	}
}

// UseCurrentCategory completes the category flow with the current level
func (c *Coordinator) UseCurrentCategory(ctx context.Context) {
	switch c.Modes.Mode() {
	case domain.ModeCategory:
		current := c.Category.Current()
		c.Search.Amend(ctx, func(sc *domain.SearchCriteria) {
			sc.SearchCategoryID = current.ID
			sc.SearchCategoryName = current.Name
		})
		c.Modes.Reset()
	case domain.ModeCategoryFilters:
		c.CloseCategoryPicker()
	}
}

// ClearCategory drops the category from the committed query or, in the picker, from the draft
func (c *Coordinator) ClearCategory(ctx context.Context) {
	switch c.Modes.Mode() {
	case domain.ModeCategory:
		c.Search.Amend(ctx, func(sc *domain.SearchCriteria) {
			sc.SearchCategoryID = 0
			sc.SearchCategoryName = ""
		})
		c.Modes.Reset()
	case domain.ModeCategoryFilters:
		c.Modes.CloseCategoryFilters(c.Listing.Draft())
		c.Search.SelectCategory(domain.Category{})
	}
}

// Back steps out of the active panel
func (c *Coordinator) Back() {
	c.Modes.Back()
	if mode := c.Modes.Mode(); mode == domain.ModeCategory || mode == domain.ModeCategoryFilters {
		c.syncCategoryCursor()
	}
}

// Close saves the final checkpoint
func (c *Coordinator) Close(ctx context.Context) error {
	return c.SaveCheckpoint(ctx)
}

// FilterBar returns the current filter bar projection
func (c *Coordinator) FilterBar() filterbar.UiState {
	return c.filterBar
}

// SearchState returns the last published search panel state
func (c *Coordinator) SearchState() search.UiState {
	return c.searchState
}

// Page returns the latest accepted result page
func (c *Coordinator) Page() domain.Page {
	return c.page
}

// Pending reports whether a refresh has been issued without an answer yet
func (c *Coordinator) Pending() bool {
	return c.pending
}

// LastError returns the message of the latest non-fatal error
func (c *Coordinator) LastError() string {
	return c.lastError
}

// ClearError dismisses the error toast
func (c *Coordinator) ClearError() {
	c.lastError = ""
}

func (c *Coordinator) refreshFilterBar() {
	c.filterBar = filterbar.Project(filterbar.Input{
		Type:      c.Listing.Type(),
		Data:      c.Listing.Data(),
		Search:    c.Listing.Search(),
		Templates: c.templates,
	})
}

func (c *Coordinator) syncCategoryCursor() {
	c.CategoryCursor.SetSize(len(c.Category.Categories()))
	c.CategoryCursor.Reset()
}

// syncSortCursor places the cursor on the active sort option
func (c *Coordinator) syncSortCursor() {
	options := listing.SortOptions(c.Listing.Type())
	c.SortCursor.SetSize(len(options))
	c.SortCursor.Reset()
	current := c.Listing.Data().Sort
	for i := range options {
		if domain.SortsEqual(current, &options[i]) {
			c.SortCursor.MoveTo(i)
			return
		}
	}
}
