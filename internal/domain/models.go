package domain

import (
	"fmt"
	"strings"
)

// Filter is a single server-side filter entry.
// Identity is the (Key, Operation) pair; keys may repeat across operations.
type Filter struct {
	Key            string  `toml:"key" json:"key"`
	Value          string  `toml:"value" json:"value"`
	Operation      *string `toml:"operation,omitempty" json:"operation,omitempty"`
	Interpretation *string `toml:"interpretation,omitempty" json:"interpretation,omitempty"`
}

// IsActive reports whether the filter narrows the query and should be shown as a chip
func (f Filter) IsActive() bool {
	return f.Value != "" && f.Interpretation != nil && strings.TrimSpace(*f.Interpretation) != ""
}

// IsTombstoned reports whether the entry has been cleared but kept in place
func (f Filter) IsTombstoned() bool {
	return f.Value == "" && (f.Interpretation == nil || strings.TrimSpace(*f.Interpretation) == "")
}

// SameSlot reports whether two filters address the same (key, operation) slot
func (f Filter) SameSlot(other Filter) bool {
	return f.Key == other.Key && StringValue(f.Operation) == StringValue(other.Operation)
}

// Tombstone returns the cleared form of the filter
func (f Filter) Tombstone() Filter {
	return Filter{Key: f.Key, Operation: CloneString(f.Operation)}
}

// Clone returns a deep copy
func (f Filter) Clone() Filter {
	return Filter{
		Key:            f.Key,
		Value:          f.Value,
		Operation:      CloneString(f.Operation),
		Interpretation: CloneString(f.Interpretation),
	}
}

// Equal compares filters by value, treating nil and empty pointers as different
func (f Filter) Equal(other Filter) bool {
	return f.Key == other.Key &&
		f.Value == other.Value &&
		equalStringPtr(f.Operation, other.Operation) &&
		equalStringPtr(f.Interpretation, other.Interpretation)
}

// Sort describes the server-side ordering
type Sort struct {
	Key            string  `toml:"key" json:"key"`
	Direction      string  `toml:"direction" json:"direction"`
	Interpretation *string `toml:"interpretation,omitempty" json:"interpretation,omitempty"`
}

// Label returns a human readable label for the sort
func (s Sort) Label() string {
	if s.Interpretation != nil && strings.TrimSpace(*s.Interpretation) != "" {
		return *s.Interpretation
	}
	return fmt.Sprintf("%s %s", s.Key, s.Direction)
}

// SortsEqual compares two optional sorts
func SortsEqual(a, b *Sort) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Key == b.Key && a.Direction == b.Direction && equalStringPtr(a.Interpretation, b.Interpretation)
}

// CloneSort returns a deep copy of an optional sort
func CloneSort(s *Sort) *Sort {
	if s == nil {
		return nil
	}
	return &Sort{Key: s.Key, Direction: s.Direction, Interpretation: CloneString(s.Interpretation)}
}

// SearchCriteria holds the search part of the query
type SearchCriteria struct {
	SearchString       string `toml:"search_string" json:"search_string"`
	UserSearch         bool   `toml:"user_search" json:"user_search"`
	UserLogin          string `toml:"user_login" json:"user_login"`
	UserID             int64  `toml:"user_id" json:"user_id"`
	SearchFinished     bool   `toml:"search_finished" json:"search_finished"`
	SearchCategoryID   int64  `toml:"search_category_id" json:"search_category_id"`
	SearchCategoryName string `toml:"search_category_name" json:"search_category_name"`
	// IsRefreshing is a transient dirty flag, raised by a commit that changed something
	// and cleared as soon as the refresh has been issued.
	IsRefreshing bool `toml:"-" json:"-"`
}

// ListingData is the canonical backend query
type ListingData struct {
	Filters      []Filter `toml:"filters" json:"filters"`
	Sort         *Sort    `toml:"sort,omitempty" json:"sort,omitempty"`
	MethodServer string   `toml:"method_server" json:"method_server"`
	ObjServer    string   `toml:"obj_server" json:"obj_server"`
}

// Clone returns a deep copy
func (d ListingData) Clone() ListingData {
	return ListingData{
		Filters:      CloneFilters(d.Filters),
		Sort:         CloneSort(d.Sort),
		MethodServer: d.MethodServer,
		ObjServer:    d.ObjServer,
	}
}

// Equal compares two listing queries
func (d ListingData) Equal(other ListingData) bool {
	return d.MethodServer == other.MethodServer &&
		d.ObjServer == other.ObjServer &&
		SortsEqual(d.Sort, other.Sort) &&
		FiltersEqual(d.Filters, other.Filters)
}

// ActiveFilters returns the filters that currently narrow the query
func (d ListingData) ActiveFilters() []Filter {
	var active []Filter
	for _, f := range d.Filters {
		if f.IsActive() {
			active = append(active, f)
		}
	}
	return active
}

// FindFilter returns the filter with the given key (first operation slot wins)
func (d ListingData) FindFilter(key string) (Filter, bool) {
	for _, f := range d.Filters {
		if f.Key == key {
			return f, true
		}
	}
	return Filter{}, false
}

// ListingSnapshot is the immutable query hand-off to the paging collaborator
type ListingSnapshot struct {
	Generation uint64
	Type       ListingType
	Data       ListingData
	Search     SearchCriteria
}

// SearchHistoryItem is one stored past query
type SearchHistoryItem struct {
	ID            int64
	Query         string
	IsUsersSearch bool
	UserLogin     string
	IsFinished    bool
}

// ListingType selects the filter and sort templates of a listing screen
type ListingType string

const (
	ListingTypeCategory   ListingType = "category"
	ListingTypeSearch     ListingType = "search"
	ListingTypeUserOffers ListingType = "user_offers"
)

// ParseListingType validates a configured listing type
func ParseListingType(s string) (ListingType, error) {
	switch lt := ListingType(strings.ToLower(strings.TrimSpace(s))); lt {
	case ListingTypeCategory, ListingTypeSearch, ListingTypeUserOffers:
		return lt, nil
	case "":
		return ListingTypeCategory, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownListingType, s)
	}
}

// WindowMode is the single visible panel of the listing screen
type WindowMode int

const (
	ModeListing WindowMode = iota
	ModeSearch
	ModeFilters
	ModeSorting
	ModeCategory
	ModeCategoryFilters
)

func (m WindowMode) String() string {
	switch m {
	case ModeListing:
		return "listing"
	case ModeSearch:
		return "search"
	case ModeFilters:
		return "filters"
	case ModeSorting:
		return "sorting"
	case ModeCategory:
		return "category"
	case ModeCategoryFilters:
		return "category_filters"
	default:
		return "unknown"
	}
}

// ParseWindowMode is the inverse of WindowMode.String; unknown names map to ModeListing
func ParseWindowMode(s string) WindowMode {
	for m := ModeListing; m <= ModeCategoryFilters; m++ {
		if m.String() == s {
			return m
		}
	}
	return ModeListing
}

// SaleTab is the quick sale-type tab
type SaleTab string

const (
	SaleTabAll     SaleTab = ""
	SaleTabAuction SaleTab = "auction"
	SaleTabBuyNow  SaleTab = "buynow"
)

// SaleTypeKey is the filter key driven by the sale-type tabs
const SaleTypeKey = "sale_type"

// Category is a node in the category tree
type Category struct {
	ID       int64
	Name     string
	Children []Category
}

// Listing is a catalog row as returned by the paging collaborator
type Listing struct {
	ID          int64
	Title       string
	SellerLogin string
	SellerID    int64
	CategoryID  int64
	Price       float64
	SaleType    string
	Condition   string
	Finished    bool
}

// Page is what the paging collaborator reports back for a snapshot
type Page struct {
	Generation uint64
	TotalCount int
	Items      []Listing
}

// Helpers

// StringPtr returns a pointer to a copy of s
func StringPtr(s string) *string {
	return &s
}

// StringValue dereferences an optional string
func StringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// CloneString copies an optional string
func CloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

// CloneFilters deep-copies a filter list
func CloneFilters(filters []Filter) []Filter {
	if filters == nil {
		return nil
	}
	out := make([]Filter, len(filters))
	for i, f := range filters {
		out[i] = f.Clone()
	}
	return out
}

// FiltersEqual compares two filter lists position by position
func FiltersEqual(a, b []Filter) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

func equalStringPtr(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
