package types

import "lotview/internal/domain"

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "pageup", "pagedown", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

// Panel actions
type OpenPanelAction struct {
	Mode domain.WindowMode
}

func (a OpenPanelAction) Type() string { return "open_panel" }

// BackAction steps out of the panel, walking up the category tree first
type BackAction struct{}

func (a BackAction) Type() string { return "back" }

// ClosePanelAction leaves the panel without walking up
type ClosePanelAction struct{}

func (a ClosePanelAction) Type() string { return "close_panel" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type OpenPagerAction struct{}

func (a OpenPagerAction) Type() string { return "open_pager" }

// Listing actions
type ChangeSaleTabAction struct {
	Tab domain.SaleTab
}

func (a ChangeSaleTabAction) Type() string { return "change_sale_tab" }

type ClearAllAction struct{}

func (a ClearAllAction) Type() string { return "clear_all" }

type FocusChipAction struct {
	Delta int
}

func (a FocusChipAction) Type() string { return "focus_chip" }

type RemoveChipAction struct{}

func (a RemoveChipAction) Type() string { return "remove_chip" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

// Search actions
type SubmitSearchAction struct{}

func (a SubmitSearchAction) Type() string { return "submit_search" }

type PickHistoryAction struct{}

func (a PickHistoryAction) Type() string { return "pick_history" }

type EditHistoryAction struct{}

func (a EditHistoryAction) Type() string { return "edit_history" }

type DeleteHistoryAction struct{}

func (a DeleteHistoryAction) Type() string { return "delete_history" }

type ClearHistoryAction struct{}

func (a ClearHistoryAction) Type() string { return "clear_history" }

type ToggleUserSearchAction struct{}

func (a ToggleUserSearchAction) Type() string { return "toggle_user_search" }

type ToggleFinishedAction struct{}

func (a ToggleFinishedAction) Type() string { return "toggle_finished" }

type RefreshSearchAction struct{}

func (a RefreshSearchAction) Type() string { return "refresh_search" }

// Filter editor actions
type EditFilterAction struct{}

func (a EditFilterAction) Type() string { return "edit_filter" }

type SubmitFilterValueAction struct {
	Text string
}

func (a SubmitFilterValueAction) Type() string { return "submit_filter_value" }

type CancelFilterValueAction struct{}

func (a CancelFilterValueAction) Type() string { return "cancel_filter_value" }

type ResetFilterFieldAction struct{}

func (a ResetFilterFieldAction) Type() string { return "reset_filter_field" }

type ApplyFiltersAction struct{}

func (a ApplyFiltersAction) Type() string { return "apply_filters" }

// Sort actions
type ApplySortAction struct{}

func (a ApplySortAction) Type() string { return "apply_sort" }

type RemoveSortAction struct{}

func (a RemoveSortAction) Type() string { return "remove_sort" }

// Category actions
type PickCategoryAction struct{}

func (a PickCategoryAction) Type() string { return "pick_category" }

type UseCategoryAction struct{}

func (a UseCategoryAction) Type() string { return "use_category" }

type ClearCategoryAction struct{}

func (a ClearCategoryAction) Type() string { return "clear_category" }
