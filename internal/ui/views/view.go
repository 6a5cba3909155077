package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"lotview/internal/domain"
	"lotview/internal/ui/services/filterbar"
)

// ReadyMarker is printed once the first query has been issued when running under e2e tests
const ReadyMarker = "__READY__"

// ChipView is one chip of the filter bar
type ChipView struct {
	Label   string
	Focused bool
}

// FieldRow is one line of the filters editor
type FieldRow struct {
	Label string
	Value string
}

// SortRow is one line of the sort picker
type SortRow struct {
	Label  string
	Active bool
}

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width  int
	Height int

	ListingType domain.ListingType
	Mode        domain.WindowMode
	NavItems    []filterbar.NavItem
	Tabs        []filterbar.Tab
	ShowTabs    bool
	Chips       []ChipView

	Results     []domain.Listing // visible window only
	ResultsFrom int
	Cursor      int
	TotalCount  int
	Pending     bool

	SearchInput   string
	SearchLoading bool
	Draft         domain.SearchCriteria
	History       []domain.SearchHistoryItem // visible window only
	HistoryFrom   int
	HistoryCursor int

	FilterRows   []FieldRow
	FilterCursor int
	Editing      bool
	EditInput    string

	SortRows   []SortRow
	SortCursor int

	CategoryPath   []domain.Category
	Categories     []domain.Category // visible window only
	CategoryFrom   int
	CategoryCursor int

	StatusMessage string
	ErrorMessage  string
	ShowHelp      bool
	HelpModel     help.Model
	HelpKeys      help.KeyMap
	Ready         bool
}

// Renderer handles all view rendering
type Renderer struct {
	styles      *Styles
	listRender  *ListingRenderer
	panelRender *PanelRenderer
	popupRender *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:      styles,
		listRender:  NewListingRenderer(styles),
		panelRender: NewPanelRenderer(styles),
		popupRender: NewPopupRenderer(styles),
	}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	if state.ShowHelp && state.HelpKeys != nil {
		model := state.HelpModel
		model.ShowAll = true
		content := r.panelRender.title("Keys") + "\n\n" + model.View(state.HelpKeys)
		return r.popupRender.RenderPopup(content, state.Height, state.Width, r.styles.Popup)
	}

	content := &strings.Builder{}
	content.WriteString(r.renderTitle(state))
	content.WriteString("\n")
	content.WriteString(r.renderNav(state))
	content.WriteString("\n")
	if state.ShowTabs {
		content.WriteString(r.renderTabs(state.Tabs))
		content.WriteString("\n")
	}
	if chips := r.renderChips(state.Chips); chips != "" {
		content.WriteString(chips)
		content.WriteString("\n")
	}
	content.WriteString("\n")

	switch state.Mode {
	case domain.ModeListing:
		content.WriteString(r.listRender.Render(state))
	case domain.ModeSearch:
		content.WriteString(r.panelRender.RenderSearch(state))
	case domain.ModeFilters:
		content.WriteString(r.panelRender.RenderFilters(state))
	case domain.ModeSorting:
		content.WriteString(r.panelRender.RenderSort(state))
	case domain.ModeCategory, domain.ModeCategoryFilters:
		content.WriteString(r.panelRender.RenderCategories(state))
	}

	footer := r.renderFooter(state)

	// Push the footer to the bottom
	available := state.Height - 2 // Main padding
	if available <= 0 {
		available = 22
	}
	used := strings.Count(content.String(), "\n") + 1 + strings.Count(footer, "\n") + 1
	if pad := available - used; pad > 0 {
		content.WriteString(strings.Repeat("\n", pad))
	}
	content.WriteString("\n")
	content.WriteString(footer)

	return r.styles.Main.MaxHeight(state.Height).Render(content.String())
}

func (r *Renderer) renderTitle(state ViewState) string {
	logo := r.styles.Title.Render("lotview") + r.styles.Dim.Render(" · "+string(state.ListingType))

	var right []string
	if state.Pending || state.SearchLoading {
		right = append(right, r.styles.StatusLoading.Render("↻ Loading"))
	}
	right = append(right, r.styles.Dim.Render(fmt.Sprintf("%d results", state.TotalCount)))
	rightContent := strings.Join(right, "  ")

	width := state.Width
	if width <= 0 {
		width = 80
	}
	padding := width - 4 - lipgloss.Width(logo) - lipgloss.Width(rightContent)
	if padding < 2 {
		padding = 2
	}
	return logo + strings.Repeat(" ", padding) + rightContent
}

func (r *Renderer) renderNav(state ViewState) string {
	items := make([]string, 0, len(state.NavItems))
	for _, item := range state.NavItems {
		text := r.styles.NavItem.Render(item.Title)
		if item.Badge > 0 {
			text += r.styles.Badge.Render(fmt.Sprintf(" (%d)", item.Badge))
		}
		if item.HasNews {
			text += r.styles.Badge.Render(" •")
		}
		items = append(items, text)
	}
	return strings.Join(items, r.styles.Dim.Render("  │  "))
}

func (r *Renderer) renderTabs(tabs []filterbar.Tab) string {
	parts := make([]string, 0, len(tabs))
	for _, tab := range tabs {
		if tab.Active {
			parts = append(parts, r.styles.TabActive.Render(tab.Label))
		} else {
			parts = append(parts, r.styles.Tab.Render(tab.Label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (r *Renderer) renderChips(chips []ChipView) string {
	if len(chips) == 0 {
		return ""
	}
	parts := make([]string, 0, len(chips))
	for _, chip := range chips {
		style := r.styles.Chip
		if chip.Focused {
			style = r.styles.ChipFocused
		}
		parts = append(parts, style.Render(chip.Label+" ✕"))
	}
	return strings.Join(parts, " ")
}

func (r *Renderer) renderFooter(state ViewState) string {
	var lines []string
	switch {
	case state.ErrorMessage != "":
		lines = append(lines, r.styles.StatusError.Render("✗ "+state.ErrorMessage))
	case state.StatusMessage != "":
		lines = append(lines, r.styles.StatusSuccess.Render(state.StatusMessage))
	}
	if state.HelpKeys != nil {
		lines = append(lines, state.HelpModel.ShortHelpView(state.HelpKeys.ShortHelp()))
	} else {
		lines = append(lines, r.styles.Help.Render("Press ? for help"))
	}
	if state.Ready {
		lines = append(lines, r.styles.Dim.Render(ReadyMarker))
	}
	return strings.Join(lines, "\n")
}
