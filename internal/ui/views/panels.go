package views

import (
	"fmt"
	"strings"

	"lotview/internal/domain"
)

// PanelRenderer renders the panels that replace the result list
type PanelRenderer struct {
	styles *Styles
}

func NewPanelRenderer(styles *Styles) *PanelRenderer {
	return &PanelRenderer{styles: styles}
}

func (p *PanelRenderer) title(s string) string {
	return p.styles.PanelTitle.Render(s)
}

func (p *PanelRenderer) cursorLine(text string, selected bool) string {
	if selected {
		return p.styles.SelectionBg.Render(p.styles.Highlight.Render("▶ ") + text)
	}
	return "  " + text
}

// RenderSearch renders the query input, the draft toggles and the history suggestions
func (p *PanelRenderer) RenderSearch(state ViewState) string {
	var b strings.Builder
	b.WriteString(p.title("Search"))
	b.WriteString("\n")
	b.WriteString("/ " + state.SearchInput)
	b.WriteString("\n")

	var toggles []string
	if state.Draft.UserSearch {
		toggles = append(toggles, "seller: "+valueOr(state.Draft.UserLogin, "me"))
	}
	if state.Draft.SearchFinished {
		toggles = append(toggles, "finished only")
	}
	if state.Draft.SearchCategoryID != 0 {
		toggles = append(toggles, "in "+state.Draft.SearchCategoryName)
	}
	if len(toggles) > 0 {
		b.WriteString(p.styles.Tag.Render(strings.Join(toggles, " · ")))
		b.WriteString("\n")
	}
	if state.SearchLoading {
		b.WriteString(p.styles.StatusLoading.Render("↻ refreshing"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if len(state.History) == 0 {
		b.WriteString(p.styles.Dim.Render("No recent searches"))
		return p.styles.Panel.Render(b.String())
	}
	b.WriteString(p.styles.Dim.Render("Recent searches"))
	for i, item := range state.History {
		b.WriteString("\n")
		b.WriteString(p.cursorLine(historyLabel(item, p.styles), state.HistoryFrom+i == state.HistoryCursor))
	}
	return p.styles.Panel.Render(b.String())
}

// RenderFilters renders the filters editor
func (p *PanelRenderer) RenderFilters(state ViewState) string {
	var b strings.Builder
	b.WriteString(p.title("Filters"))
	for i, row := range state.FilterRows {
		b.WriteString("\n")
		value := valueOr(row.Value, p.styles.Dim.Render("any"))
		if state.Editing && i == state.FilterCursor {
			value = state.EditInput
		}
		b.WriteString(p.cursorLine(fmt.Sprintf("%-14s %s", row.Label, value), i == state.FilterCursor))
	}
	return p.styles.Panel.Render(b.String())
}

// RenderSort renders the sort picker
func (p *PanelRenderer) RenderSort(state ViewState) string {
	var b strings.Builder
	b.WriteString(p.title("Sort"))
	for i, row := range state.SortRows {
		b.WriteString("\n")
		label := row.Label
		if row.Active {
			label += p.styles.Badge.Render(" ✓")
		}
		b.WriteString(p.cursorLine(label, i == state.SortCursor))
	}
	return p.styles.Panel.Render(b.String())
}

// RenderCategories renders the current level of the category tree
func (p *PanelRenderer) RenderCategories(state ViewState) string {
	var b strings.Builder
	heading := "Category"
	if state.Mode == domain.ModeCategoryFilters {
		heading = "Search in category"
	}
	b.WriteString(p.title(heading))
	b.WriteString("\n")

	crumbs := []string{"All"}
	for _, c := range state.CategoryPath {
		crumbs = append(crumbs, c.Name)
	}
	b.WriteString(p.styles.Dim.Render(strings.Join(crumbs, " › ")))

	for i, c := range state.Categories {
		b.WriteString("\n")
		label := c.Name
		if len(c.Children) > 0 {
			label += p.styles.Dim.Render(" ›")
		}
		b.WriteString(p.cursorLine(label, state.CategoryFrom+i == state.CategoryCursor))
	}
	return p.styles.Panel.Render(b.String())
}

func historyLabel(item domain.SearchHistoryItem, styles *Styles) string {
	label := item.Query
	if item.IsUsersSearch {
		label += styles.Tag.Render(" @" + valueOr(item.UserLogin, "me"))
	}
	if item.IsFinished {
		label += styles.Finished.Render(" finished")
	}
	return label
}

func valueOr(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
