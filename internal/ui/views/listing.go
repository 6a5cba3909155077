package views

import (
	"fmt"
	"strings"

	"lotview/internal/domain"
)

// ListingRenderer renders the result rows
type ListingRenderer struct {
	styles *Styles
}

func NewListingRenderer(styles *Styles) *ListingRenderer {
	return &ListingRenderer{styles: styles}
}

// Render renders the visible window of results
func (l *ListingRenderer) Render(state ViewState) string {
	if len(state.Results) == 0 {
		if state.Pending {
			return l.styles.Dim.Render("Loading listings...")
		}
		return l.styles.Dim.Render("Nothing matches. Press x to clear the filters.")
	}

	lines := make([]string, 0, len(state.Results)+2)
	if state.ResultsFrom > 0 {
		lines = append(lines, l.styles.Scroll.Render(fmt.Sprintf("↑ %d more", state.ResultsFrom)))
	}
	for i, item := range state.Results {
		lines = append(lines, l.renderRow(item, state.ResultsFrom+i == state.Cursor))
	}
	if rest := len(state.Results) + state.ResultsFrom; rest < state.TotalCount {
		lines = append(lines, l.styles.Scroll.Render(fmt.Sprintf("↓ %d more", state.TotalCount-rest)))
	}
	return strings.Join(lines, "\n")
}

func (l *ListingRenderer) renderRow(item domain.Listing, selected bool) string {
	marker := "  "
	if selected {
		marker = l.styles.Highlight.Render("▶ ")
	}

	row := fmt.Sprintf("%s%-32s %s  %s  %s",
		marker,
		truncate(item.Title, 32),
		l.styles.Price.Render(fmt.Sprintf("%9.2f", item.Price)),
		l.styles.Tag.Render(fmt.Sprintf("%-7s", item.SaleType)),
		l.styles.Seller.Render(item.SellerLogin),
	)
	if item.Finished {
		row += l.styles.Finished.Render("  finished")
	}
	if selected {
		return l.styles.SelectionBg.Render(row)
	}
	return row
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-1]) + "…"
}
