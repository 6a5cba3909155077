package filterbar

import (
	"fmt"

	"lotview/internal/domain"
	"lotview/internal/ui/services/listing"
)

// DefaultTemplates returns the navigation menu of the listing screen
func DefaultTemplates() []NavItem {
	return []NavItem{
		{ID: NavFilter, Title: "Filters"},
		{ID: NavSort, Title: "Sort"},
		{ID: NavCategory, Title: "Category"},
	}
}

// Project derives the filter bar. It is pure: equal inputs yield equal states.
func Project(in Input) UiState {
	active := in.Data.ActiveFilters()

	chips := make([]Chip, 0, len(active)+4)
	for _, f := range active {
		chips = append(chips, Chip{Kind: ChipFilter, Label: domain.StringValue(f.Interpretation), Filter: f.Clone()})
	}
	if in.Data.Sort != nil {
		chips = append(chips, Chip{Kind: ChipSort, Label: in.Data.Sort.Label()})
	}
	if in.Search.UserSearch {
		chips = append(chips, Chip{Kind: ChipUser, Label: userLabel(in.Search)})
	}
	if in.Search.SearchString != "" {
		chips = append(chips, Chip{Kind: ChipSearch, Label: fmt.Sprintf("%q", in.Search.SearchString)})
	}
	if in.Search.SearchFinished {
		chips = append(chips, Chip{Kind: ChipFinished, Label: "Finished only"})
	}

	nav := make([]NavItem, len(in.Templates))
	for i, item := range in.Templates {
		switch item.ID {
		case NavFilter:
			item.Badge = len(active)
		case NavSort:
			item.HasNews = in.Data.Sort != nil
		case NavCategory:
			item.HasNews = in.Search.SearchCategoryID != 0
		}
		nav[i] = item
	}

	current := SaleTabOf(in.Data)
	return UiState{
		Chips:    chips,
		NavItems: nav,
		SaleTab:  current,
		Tabs:     tabs(current),
		ShowTabs: listing.ShowsSaleTabs(in.Type),
	}
}

// SaleTabOf maps the sale_type filter value to its quick tab
func SaleTabOf(data domain.ListingData) domain.SaleTab {
	f, ok := data.FindFilter(domain.SaleTypeKey)
	if !ok {
		return domain.SaleTabAll
	}
	switch domain.SaleTab(f.Value) {
	case domain.SaleTabAuction:
		return domain.SaleTabAuction
	case domain.SaleTabBuyNow:
		return domain.SaleTabBuyNow
	default:
		return domain.SaleTabAll
	}
}

func tabs(current domain.SaleTab) []Tab {
	all := []Tab{
		{Tab: domain.SaleTabAll, Label: "All"},
		{Tab: domain.SaleTabAuction, Label: "Auction"},
		{Tab: domain.SaleTabBuyNow, Label: "Buy now"},
	}
	for i := range all {
		all[i].Active = all[i].Tab == current
	}
	return all
}

func userLabel(c domain.SearchCriteria) string {
	if c.UserLogin == "" {
		return "Seller search"
	}
	return "Seller: " + c.UserLogin
}
