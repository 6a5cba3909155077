package paging

import (
	"context"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"lotview/internal/domain"
	"lotview/internal/logic"
)

// DefaultPageSize is the number of rows reported per refresh
const DefaultPageSize = 20

// MemoryCatalog is a PagingCollaborator and category source backed by a fixed set of listings
type MemoryCatalog struct {
	MethodServer string
	ObjServer    string
	PageSize     int
	Latency      time.Duration

	listings []domain.Listing
	tree     []domain.Category
}

var _ logic.PagingCollaborator = (*MemoryCatalog)(nil)

func NewMemoryCatalog(methodServer, objServer string, listings []domain.Listing, tree []domain.Category) *MemoryCatalog {
	return &MemoryCatalog{
		MethodServer: methodServer,
		ObjServer:    objServer,
		PageSize:     DefaultPageSize,
		listings:     listings,
		tree:         tree,
	}
}

// CategoryTree returns the category tree
func (c *MemoryCatalog) CategoryTree() ([]domain.Category, error) {
	return c.tree, nil
}

// Refresh filters, sorts and pages the catalog for snapshot and reports the first page
func (c *MemoryCatalog) Refresh(ctx context.Context, snapshot domain.ListingSnapshot, report func(domain.Page)) error {
	if c.Latency > 0 {
		select {
		case <-time.After(c.Latency):
		case <-ctx.Done():
			return &domain.ServerError{Code: http.StatusGatewayTimeout, Message: ctx.Err().Error()}
		}
	}

	if snapshot.Data.MethodServer != c.MethodServer || snapshot.Data.ObjServer != c.ObjServer {
		return &domain.ServerError{
			Code:    http.StatusNotFound,
			Message: "unknown endpoint " + snapshot.Data.ObjServer + "/" + snapshot.Data.MethodServer,
		}
	}

	var matched []domain.Listing
	for _, l := range c.listings {
		if c.matches(l, snapshot) {
			matched = append(matched, l)
		}
	}
	sortListings(matched, snapshot.Data.Sort)

	page := domain.Page{TotalCount: len(matched), Items: matched}
	if size := c.PageSize; size > 0 && len(page.Items) > size {
		page.Items = page.Items[:size]
	}
	report(page)
	return nil
}

func (c *MemoryCatalog) matches(l domain.Listing, snapshot domain.ListingSnapshot) bool {
	for _, f := range snapshot.Data.Filters {
		if f.Value == "" {
			continue
		}
		if !matchFilter(l, f) {
			return false
		}
	}

	search := snapshot.Search
	for _, word := range strings.Fields(strings.ToLower(search.SearchString)) {
		if !strings.Contains(strings.ToLower(l.Title), word) {
			return false
		}
	}
	if search.UserSearch {
		if search.UserLogin != "" && !strings.EqualFold(l.SellerLogin, search.UserLogin) {
			return false
		}
		if search.UserLogin == "" && search.UserID != 0 && l.SellerID != search.UserID {
			return false
		}
	}
	if l.Finished != search.SearchFinished {
		return false
	}
	if search.SearchCategoryID != 0 && !c.inCategory(l.CategoryID, search.SearchCategoryID) {
		return false
	}
	return true
}

func matchFilter(l domain.Listing, f domain.Filter) bool {
	switch f.Key {
	case "price":
		limit, err := strconv.ParseFloat(f.Value, 64)
		if err != nil {
			return true
		}
		switch domain.StringValue(f.Operation) {
		case "gte":
			return l.Price >= limit
		case "lte":
			return l.Price <= limit
		default:
			return l.Price == limit
		}
	case domain.SaleTypeKey:
		return l.SaleType == f.Value
	case "condition":
		return l.Condition == f.Value
	default:
		return true
	}
}

// inCategory reports whether id is root or one of its descendants
func (c *MemoryCatalog) inCategory(id, root int64) bool {
	path := findCategory(c.tree, root)
	if path == nil {
		return false
	}
	return containsCategory([]domain.Category{*path}, id)
}

func findCategory(nodes []domain.Category, id int64) *domain.Category {
	for i := range nodes {
		if nodes[i].ID == id {
			return &nodes[i]
		}
		if found := findCategory(nodes[i].Children, id); found != nil {
			return found
		}
	}
	return nil
}

func containsCategory(nodes []domain.Category, id int64) bool {
	for _, n := range nodes {
		if n.ID == id || containsCategory(n.Children, id) {
			return true
		}
	}
	return false
}

func sortListings(items []domain.Listing, s *domain.Sort) {
	if s == nil {
		return
	}
	desc := strings.EqualFold(s.Direction, "desc")
	less := func(i, j int) bool {
		switch s.Key {
		case "price":
			return items[i].Price < items[j].Price
		case "title":
			return strings.ToLower(items[i].Title) < strings.ToLower(items[j].Title)
		default:
			return items[i].ID < items[j].ID
		}
	}
	sort.SliceStable(items, func(i, j int) bool {
		if desc {
			return less(j, i)
		}
		return less(i, j)
	})
}
