package listing

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"lotview/internal/domain"
)

// Filter operations understood by the catalog backend
const (
	OpGreaterOrEqual = "gte"
	OpLessOrEqual    = "lte"
)

// FilterField describes one editable slot of a listing type's filter layout
type FilterField struct {
	Key       string
	Operation *string
	Label     string
	Choices   []string // empty means free text
	Numeric   bool
}

// Validate checks a value typed for the field; blank always passes
func (f FilterField) Validate(value string) error {
	if value == "" {
		return nil
	}
	if f.Numeric {
		if v, err := strconv.ParseFloat(value, 64); err != nil || v < 0 {
			return fmt.Errorf("%s must be a non-negative number", f.Label)
		}
	}
	if len(f.Choices) > 0 && !slices.Contains(f.Choices, value) {
		return fmt.Errorf("%s must be one of %s", f.Label, strings.Join(f.Choices, ", "))
	}
	return nil
}

// Slot returns the tombstoned entry that reserves the field's position
func (f FilterField) Slot() domain.Filter {
	return domain.Filter{Key: f.Key, Operation: domain.CloneString(f.Operation)}
}

// Apply builds the filter for value; a blank value yields the tombstone
func (f FilterField) Apply(value string) domain.Filter {
	if value == "" {
		return f.Slot()
	}
	return domain.Filter{
		Key:            f.Key,
		Value:          value,
		Operation:      domain.CloneString(f.Operation),
		Interpretation: domain.StringPtr(fmt.Sprintf("%s: %s", f.Label, value)),
	}
}

var (
	priceFrom = FilterField{Key: "price", Operation: domain.StringPtr(OpGreaterOrEqual), Label: "Price from", Numeric: true}
	priceTo   = FilterField{Key: "price", Operation: domain.StringPtr(OpLessOrEqual), Label: "Price to", Numeric: true}
	condition = FilterField{Key: "condition", Label: "Condition", Choices: []string{"new", "used"}}
	saleType  = FilterField{Key: domain.SaleTypeKey, Label: "Sale type", Choices: []string{string(domain.SaleTabAuction), string(domain.SaleTabBuyNow)}}
)

// Fields returns the filter layout of a listing type
func Fields(t domain.ListingType) []FilterField {
	switch t {
	case domain.ListingTypeUserOffers:
		return []FilterField{priceFrom, priceTo, condition}
	default:
		return []FilterField{priceFrom, priceTo, condition, saleType}
	}
}

// EmptyFilters is the canonical cleared filter list: every slot present and tombstoned
func EmptyFilters(t domain.ListingType) []domain.Filter {
	fields := Fields(t)
	filters := make([]domain.Filter, len(fields))
	for i, f := range fields {
		filters[i] = f.Slot()
	}
	return filters
}

// SortOptions lists the orderings offered for a listing type
func SortOptions(t domain.ListingType) []domain.Sort {
	options := []domain.Sort{
		{Key: "id", Direction: "desc", Interpretation: domain.StringPtr("Newest first")},
		{Key: "price", Direction: "asc", Interpretation: domain.StringPtr("Cheapest first")},
		{Key: "price", Direction: "desc", Interpretation: domain.StringPtr("Most expensive first")},
	}
	if t != domain.ListingTypeUserOffers {
		options = append(options, domain.Sort{Key: "title", Direction: "asc", Interpretation: domain.StringPtr("Title A-Z")})
	}
	return options
}

// ShowsSaleTabs reports whether the quick sale-type tabs are offered
func ShowsSaleTabs(t domain.ListingType) bool {
	return t != domain.ListingTypeUserOffers
}
