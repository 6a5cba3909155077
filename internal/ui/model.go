package ui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"lotview/internal/config"
	"lotview/internal/domain"
	"lotview/internal/logic"
	"lotview/internal/platform/logger"
	"lotview/internal/session"
	"lotview/internal/ui/coordinator"
	"lotview/internal/ui/input"
	inputtypes "lotview/internal/ui/input/types"
	"lotview/internal/ui/services/listing"
	"lotview/internal/ui/services/navigation"
	"lotview/internal/ui/state"
	"lotview/internal/ui/viewmodels"
	"lotview/internal/ui/views"
)

// chromeHeight is the number of lines around the active list (title, nav, tabs, chips, footer)
const chromeHeight = 12

// Model represents the UI state
type Model struct {
	coord   *coordinator.Coordinator
	config  *config.Config
	session session.Session
	log     logger.Logger
	state   *state.AppState

	renderer     *views.Renderer
	viewModel    *viewmodels.ViewModel
	inputHandler *input.Handler
	pager        *HistoryPager

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model
func NewModel(coord *coordinator.Coordinator, cfg *config.Config, sess session.Session, log logger.Logger) *Model {
	if log == nil {
		log = logger.NewNop()
	}
	appState := state.NewAppState()
	return &Model{
		coord:        coord,
		config:       cfg,
		session:      sess,
		log:          log.With("component", "ui"),
		state:        appState,
		renderer:     views.NewRenderer(),
		viewModel:    viewmodels.NewViewModel(coord, appState),
		inputHandler: input.New(),
	}
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.pager = NewHistoryPager(p)
}

// SetReadyMarker prints the ready marker once the first query has been issued
func (m *Model) SetReadyMarker(enabled bool) {
	m.viewModel.SetReady(enabled)
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return func() tea.Msg { return startMsg{} }
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		m.viewModel.SetWidth(msg.Width)
		m.updateViewportHeight()

	case tea.KeyMsg:
		if m.state.ShowHelp {
			// any key closes the help overlay
			m.state.ShowHelp = false
			if msg.String() != "ctrl+c" {
				break
			}
		}
		if m.state.InPagerMode {
			break
		}

		actions, cmd := m.inputHandler.HandleKey(msg, m.inputContext())
		cmds = append(cmds, cmd)
		for _, action := range actions {
			cmds = append(cmds, m.processAction(action))
		}

	case tea.FocusMsg:
		m.coord.Modes.OnSurfaceState(logic.SurfaceExpanded)

	case tea.BlurMsg:
		m.coord.Modes.OnSurfaceState(logic.SurfaceCollapsed)

	default:
		cmds = append(cmds, m.inputHandler.Update(msg), m.handleNonKeyboardMsg(msg))
	}

	cmds = append(cmds, m.syncInput()...)
	if m.coord.Modes.ExpansionPending() {
		cmds = append(cmds, func() tea.Msg { return surfaceExpandedMsg{} })
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) handleNonKeyboardMsg(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case startMsg:
		ctx, cancel := m.timeoutContext()
		defer cancel()
		if err := m.coord.Start(ctx, m.config.Listing.MethodServer, m.config.Listing.ObjServer); err != nil {
			m.log.Errorf("start listing: %v", err)
			m.state.StatusMessage = fmt.Sprintf("Failed to start: %v", err)
		}
		m.state.Started = true

	case EventMsg:
		m.coord.HandleDomainEvent(msg.Event)
		m.state.ClampChip(len(m.coord.FilterBar().Chips))

	case debounceMsg:
		if text, ok := m.state.TakePending(msg.version); ok {
			m.withContext(func(ctx context.Context) {
				m.coord.Search.OnUpdateSearchString(ctx, text)
			})
		}

	case loadingDoneMsg:
		m.coord.Search.FinishLoading(msg.token)

	case surfaceExpandedMsg:
		m.coord.Modes.OnSurfaceState(logic.SurfaceExpanded)

	case historyPagerMsg:
		if msg.err != nil {
			m.log.Warnf("history pager failed: %v", msg.err)
			return m.setStatus(fmt.Sprintf("Pager failed: %v", msg.err))
		}

	case pauseRenderingMsg:
		m.state.InPagerMode = true

	case resumeRenderingMsg:
		m.state.InPagerMode = false

	case clearStatusMsg:
		m.state.StatusMessage = ""
	}
	return nil
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	c := m.coord
	switch a := action.(type) {
	case inputtypes.QuitAction:
		ctx, cancel := m.timeoutContext()
		defer cancel()
		if err := c.Close(ctx); err != nil {
			m.log.Warnf("checkpoint on quit: %v", err)
		}
		return tea.Quit

	case inputtypes.ToggleHelpAction:
		m.state.ShowHelp = !m.state.ShowHelp

	case inputtypes.NavigateAction:
		if list := m.activeList(); list != nil {
			list.Navigate(navigation.Direction(a.Direction))
		}

	case inputtypes.OpenPanelAction:
		return m.openPanel(a.Mode)

	case inputtypes.BackAction:
		c.Back()

	case inputtypes.ClosePanelAction:
		if c.Modes.Mode() == domain.ModeCategoryFilters {
			c.CloseCategoryPicker()
		} else {
			c.Modes.Reset()
		}

	case inputtypes.OpenPagerAction:
		return m.openHistoryPager()

	// Listing
	case inputtypes.ChangeSaleTabAction:
		c.Listing.ChangeSaleTab(a.Tab)

	case inputtypes.ClearAllAction:
		if c.Modes.Mode() == domain.ModeFilters {
			for _, field := range listing.Fields(c.Listing.Type()) {
				m.state.SetFilterValue(field, "")
			}
			return nil
		}
		c.Listing.ClearAllFilters()
		m.state.ChipIndex = 0

	case inputtypes.FocusChipAction:
		m.state.FocusChip(a.Delta, len(c.FilterBar().Chips))

	case inputtypes.RemoveChipAction:
		chips := c.FilterBar().Chips
		if m.state.ChipIndex < len(chips) {
			m.withContext(func(ctx context.Context) {
				c.RemoveChip(ctx, chips[m.state.ChipIndex])
			})
			m.state.ClampChip(len(c.FilterBar().Chips))
		}

	// Search
	case inputtypes.UpdateTextAction:
		if c.Modes.Mode() != domain.ModeSearch {
			return nil
		}
		delay := m.config.Search.HistoryDebounce.Duration
		if delay <= 0 {
			m.withContext(func(ctx context.Context) {
				c.Search.OnUpdateSearchString(ctx, a.Text)
			})
			return nil
		}
		version := m.state.NextPending(a.Text)
		return tea.Tick(delay, func(time.Time) tea.Msg {
			return debounceMsg{version: version}
		})

	case inputtypes.SubmitSearchAction:
		m.flushPending()
		m.withContext(func(ctx context.Context) {
			c.Search.ChangeOpenSearch(ctx, false)
		})

	case inputtypes.PickHistoryAction:
		if item, ok := m.historyItem(); ok {
			m.state.FlushPending()
			m.withContext(func(ctx context.Context) {
				c.Search.OnClickHistoryItem(ctx, item)
			})
		}

	case inputtypes.EditHistoryAction:
		if item, ok := m.historyItem(); ok {
			m.state.FlushPending()
			m.withContext(func(ctx context.Context) {
				c.Search.EditHistoryItem(ctx, item)
			})
			m.inputHandler.SetText(c.SearchState().Buffer)
		}

	case inputtypes.DeleteHistoryAction:
		if item, ok := m.historyItem(); ok {
			m.withContext(func(ctx context.Context) {
				c.Search.DeleteHistoryItem(ctx, item)
			})
		}

	case inputtypes.ClearHistoryAction:
		m.withContext(func(ctx context.Context) {
			c.Search.ClearHistory(ctx)
		})

	case inputtypes.ToggleUserSearchAction:
		if c.Listing.Draft().UserSearch {
			c.Search.ClearUserSearch()
		} else if m.session.Anonymous() {
			return m.setStatus("Log in to search your own offers")
		} else {
			c.Search.SelectUserSearch(m.session.Login, m.session.UserID)
		}

	case inputtypes.ToggleFinishedAction:
		c.Search.SetFinishedOnly(!c.Listing.Draft().SearchFinished)

	case inputtypes.RefreshSearchAction:
		m.flushPending()
		var token uint64
		m.withContext(func(ctx context.Context) {
			token = c.Search.SearchRefresh(ctx)
		})
		return tea.Tick(m.config.Search.LoadingMinVisible.Duration, func(time.Time) tea.Msg {
			return loadingDoneMsg{token: token}
		})

	// Filters
	case inputtypes.EditFilterAction:
		if field, ok := m.filterField(); ok {
			m.inputHandler.SetText(m.state.FilterValue(field))
		}

	case inputtypes.SubmitFilterValueAction:
		if field, ok := m.filterField(); ok {
			if err := field.Validate(a.Text); err != nil {
				return m.setStatus(err.Error())
			}
			m.state.SetFilterValue(field, a.Text)
		}

	case inputtypes.CancelFilterValueAction:
		// the editor keeps the previous value

	case inputtypes.ResetFilterFieldAction:
		if field, ok := m.filterField(); ok {
			m.state.SetFilterValue(field, "")
		}

	case inputtypes.ApplyFiltersAction:
		c.Listing.ApplyFilters(m.state.FilterDraft)

	// Sorting
	case inputtypes.ApplySortAction:
		options := listing.SortOptions(c.Listing.Type())
		if i := c.SortCursor.Cursor(); i < len(options) {
			c.Listing.ApplySorting(options[i])
		}

	case inputtypes.RemoveSortAction:
		c.Listing.RemoveSort()

	// Category
	case inputtypes.PickCategoryAction:
		categories := c.Category.Categories()
		if i := c.CategoryCursor.Cursor(); i < len(categories) {
			m.withContext(func(ctx context.Context) {
				c.PickCategory(ctx, categories[i].ID)
			})
		}

	case inputtypes.UseCategoryAction:
		m.withContext(c.UseCurrentCategory)

	case inputtypes.ClearCategoryAction:
		m.withContext(c.ClearCategory)
	}
	return nil
}

// openPanel opens a panel; panels other than the category picker open from the listing only
func (m *Model) openPanel(mode domain.WindowMode) tea.Cmd {
	c := m.coord
	switch mode {
	case domain.ModeSearch:
		m.withContext(func(ctx context.Context) {
			c.Search.ChangeOpenSearch(ctx, true)
		})
	case domain.ModeFilters:
		if c.Modes.OpenFilters() {
			m.state.StartFilterEditing(c.Listing.Data().Filters)
		}
	case domain.ModeSorting:
		c.Modes.OpenSorting()
	case domain.ModeCategory:
		if !c.OpenCategory() {
			return m.setStatus("Categories are unavailable")
		}
	case domain.ModeCategoryFilters:
		m.flushPending()
		if !c.OpenCategoryPicker() {
			return m.setStatus("Categories are unavailable")
		}
	}
	return nil
}

func (m *Model) openHistoryPager() tea.Cmd {
	ctx, cancel := m.timeoutContext()
	defer cancel()
	items, err := m.coord.History.All(ctx)
	if err != nil {
		return m.setStatus(fmt.Sprintf("Failed to load history: %v", err))
	}
	content := RenderHistory(m.session.HistoryOwner(), items)

	return func() tea.Msg {
		if m.program != nil {
			m.program.Send(pauseRenderingMsg{})
			defer m.program.Send(resumeRenderingMsg{})
		}
		return historyPagerMsg{err: m.pager.Show(content)}
	}
}

// syncInput makes the input handler follow the window mode controller
func (m *Model) syncInput() []tea.Cmd {
	mode := m.coord.Modes.Mode()
	var text string
	if mode == domain.ModeSearch {
		text = m.coord.SearchState().Buffer
	}

	actions, cmd := m.inputHandler.Sync(mode, text, m.inputContext())
	cmds := []tea.Cmd{cmd}
	for _, action := range actions {
		cmds = append(cmds, m.processAction(action))
	}

	view := ""
	if ti := m.inputHandler.TextInput(); ti != nil {
		view = ti.View()
	}
	m.viewModel.SetInput(view, m.inputHandler.Editing())
	return cmds
}

func (m *Model) inputContext() *input.ModelContext {
	return &input.ModelContext{
		WindowMode: m.coord.Modes.Mode(),
		List:       m.activeList(),
		Chips:      len(m.coord.FilterBar().Chips),
	}
}

// activeList returns the cursor of the list shown by the open panel
func (m *Model) activeList() *navigation.Service {
	switch m.coord.Modes.Mode() {
	case domain.ModeSearch:
		return m.coord.HistoryCursor
	case domain.ModeFilters:
		return m.coord.FilterCursor
	case domain.ModeSorting:
		return m.coord.SortCursor
	case domain.ModeCategory, domain.ModeCategoryFilters:
		return m.coord.CategoryCursor
	default:
		return m.coord.Results
	}
}

func (m *Model) historyItem() (domain.SearchHistoryItem, bool) {
	history := m.coord.SearchState().History
	i := m.coord.HistoryCursor.Cursor()
	if i < 0 || i >= len(history) {
		return domain.SearchHistoryItem{}, false
	}
	return history[i], true
}

func (m *Model) filterField() (listing.FilterField, bool) {
	fields := listing.Fields(m.coord.Listing.Type())
	i := m.coord.FilterCursor.Cursor()
	if i < 0 || i >= len(fields) {
		return listing.FilterField{}, false
	}
	return fields[i], true
}

// flushPending applies debounced text before anything reads the buffer
func (m *Model) flushPending() {
	if text, ok := m.state.FlushPending(); ok {
		m.withContext(func(ctx context.Context) {
			m.coord.Search.OnUpdateSearchString(ctx, text)
		})
	}
}

func (m *Model) setStatus(message string) tea.Cmd {
	m.state.StatusMessage = message
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

func (m *Model) timeoutContext() (context.Context, context.CancelFunc) {
	timeout := m.config.Storage.Timeout.Duration
	if timeout <= 0 {
		timeout = 2 * time.Second
	}
	return context.WithTimeout(context.Background(), timeout)
}

func (m *Model) withContext(fn func(ctx context.Context)) {
	ctx, cancel := m.timeoutContext()
	defer cancel()
	fn(ctx)
}

// updateViewportHeight sizes every list to the space left by the chrome
func (m *Model) updateViewportHeight() {
	height := m.state.Height - chromeHeight
	if height < 3 {
		height = 3
	}
	m.coord.Results.SetViewportHeight(height)
	m.coord.CategoryCursor.SetViewportHeight(height)
	m.coord.FilterCursor.SetViewportHeight(height)
	m.coord.SortCursor.SetViewportHeight(height)
	// search input and draft summary sit above the history
	m.coord.HistoryCursor.SetViewportHeight(max(height-3, 1))
}

// View renders the UI
func (m *Model) View() string {
	if m.state.InPagerMode {
		return ""
	}
	if m.state.Width == 0 {
		return "Loading..."
	}
	return m.renderer.Render(m.viewModel.BuildViewState())
}
