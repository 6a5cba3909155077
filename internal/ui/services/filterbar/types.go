package filterbar

import "lotview/internal/domain"

// ChipKind tells which part of the query a chip removes
type ChipKind int

const (
	ChipFilter ChipKind = iota
	ChipSort
	ChipUser
	ChipSearch
	ChipFinished
)

// Chip is one removable indicator of an active query part
type Chip struct {
	Kind   ChipKind
	Label  string
	Filter domain.Filter // set for ChipFilter
}

// NavItem is an entry of the navigation menu above the listing
type NavItem struct {
	ID      string
	Title   string
	Badge   int
	HasNews bool
}

// Navigation item ids
const (
	NavFilter   = "filter"
	NavSort     = "sort"
	NavCategory = "category"
)

// Tab is one sale-type quick tab
type Tab struct {
	Tab    domain.SaleTab
	Label  string
	Active bool
}

// Input is everything the projection depends on
type Input struct {
	Type      domain.ListingType
	Data      domain.ListingData
	Search    domain.SearchCriteria
	Templates []NavItem
}

// UiState is the derived filter bar
type UiState struct {
	Chips    []Chip
	NavItems []NavItem
	SaleTab  domain.SaleTab
	Tabs     []Tab
	ShowTabs bool
}
