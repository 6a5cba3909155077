package viewmodels

import (
	"github.com/charmbracelet/bubbles/help"

	"lotview/internal/domain"
	"lotview/internal/ui/coordinator"
	"lotview/internal/ui/input/keys"
	"lotview/internal/ui/services/listing"
	"lotview/internal/ui/state"
	"lotview/internal/ui/views"
)

// ViewModel transforms coordinator and front-end state into view-ready data
type ViewModel struct {
	coord     *coordinator.Coordinator
	state     *state.AppState
	help      help.Model
	inputView string
	editing   bool
	ready     bool
}

// NewViewModel creates a new view model
func NewViewModel(coord *coordinator.Coordinator, appState *state.AppState) *ViewModel {
	return &ViewModel{
		coord: coord,
		state: appState,
		help:  help.New(),
	}
}

// SetWidth sets the terminal width used by the help view
func (vm *ViewModel) SetWidth(width int) {
	vm.help.Width = width
}

// SetInput sets the rendered text input and whether a filter value is being edited
func (vm *ViewModel) SetInput(view string, editing bool) {
	vm.inputView = view
	vm.editing = editing
}

// SetReady enables the e2e ready marker
func (vm *ViewModel) SetReady(ready bool) {
	vm.ready = ready
}

// HelpKeys returns the key map of a panel
func HelpKeys(mode domain.WindowMode) help.KeyMap {
	switch mode {
	case domain.ModeSearch:
		return keys.Search
	case domain.ModeFilters:
		return keys.Filters
	case domain.ModeSorting:
		return keys.Sort
	case domain.ModeCategory, domain.ModeCategoryFilters:
		return keys.Category
	default:
		return keys.Listing
	}
}

// BuildViewState creates a ViewState for rendering
func (vm *ViewModel) BuildViewState() views.ViewState {
	c := vm.coord
	bar := c.FilterBar()
	searchState := c.SearchState()
	page := c.Page()
	mode := c.Modes.Mode()

	chips := make([]views.ChipView, len(bar.Chips))
	for i, chip := range bar.Chips {
		chips[i] = views.ChipView{Label: chip.Label, Focused: mode == domain.ModeListing && i == vm.state.ChipIndex}
	}

	vs := views.ViewState{
		Width:         vm.state.Width,
		Height:        vm.state.Height,
		ListingType:   c.Listing.Type(),
		Mode:          mode,
		NavItems:      bar.NavItems,
		Tabs:          bar.Tabs,
		ShowTabs:      bar.ShowTabs,
		Chips:         chips,
		Cursor:        c.Results.Cursor(),
		TotalCount:    page.TotalCount,
		Pending:       c.Pending(),
		SearchInput:   vm.inputView,
		SearchLoading: searchState.Loading,
		Draft:         searchState.Draft,
		HistoryCursor: c.HistoryCursor.Cursor(),
		Editing:       vm.editing,
		EditInput:     vm.inputView,
		FilterCursor:  c.FilterCursor.Cursor(),
		SortCursor:    c.SortCursor.Cursor(),
		CategoryPath:  c.Category.Path(),
		StatusMessage: vm.state.StatusMessage,
		ErrorMessage:  firstNonEmpty(c.LastError(), searchState.Error),
		ShowHelp:      vm.state.ShowHelp,
		HelpModel:     vm.help,
		HelpKeys:      HelpKeys(mode),
		Ready:         vm.ready && vm.state.Started,
	}

	from, to := c.Results.Visible()
	vs.Results, vs.ResultsFrom = window(page.Items, from, to), from

	from, to = c.HistoryCursor.Visible()
	vs.History, vs.HistoryFrom = window(searchState.History, from, to), from

	from, to = c.CategoryCursor.Visible()
	vs.Categories, vs.CategoryFrom = window(c.Category.Categories(), from, to), from
	vs.CategoryCursor = c.CategoryCursor.Cursor()

	for _, field := range listing.Fields(c.Listing.Type()) {
		vs.FilterRows = append(vs.FilterRows, views.FieldRow{Label: field.Label, Value: vm.state.FilterValue(field)})
	}

	current := c.Listing.Data().Sort
	for _, opt := range listing.SortOptions(c.Listing.Type()) {
		vs.SortRows = append(vs.SortRows, views.SortRow{Label: opt.Label(), Active: domain.SortsEqual(current, &opt)})
	}

	return vs
}

func window[T any](items []T, from, to int) []T {
	if from >= len(items) {
		return nil
	}
	if to > len(items) {
		to = len(items)
	}
	return items[from:to]
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
