package category

import (
	"fmt"

	"lotview/internal/domain"
	"lotview/internal/logic"
)

// Source provides the category tree
type Source interface {
	CategoryTree() ([]domain.Category, error)
}

// Service navigates the category tree one level at a time
type Service struct {
	source Source

	selected domain.Category   // zero value means all categories
	level    []domain.Category // descended nodes from the root
	cache    []domain.Category // children of the current level
}

var _ logic.CategoryComponent = (*Service)(nil)

func NewService(source Source) *Service {
	return &Service{source: source}
}

// CategoryID returns the selected category, 0 for the root
func (s *Service) CategoryID() int64 {
	return s.selected.ID
}

// Current returns the selected category without children
func (s *Service) Current() domain.Category {
	return domain.Category{ID: s.selected.ID, Name: s.selected.Name}
}

// Categories returns the cached entries of the current level
func (s *Service) Categories() []domain.Category {
	return append([]domain.Category(nil), s.cache...)
}

// Path returns the descended nodes, root first
func (s *Service) Path() []domain.Category {
	return append([]domain.Category(nil), s.level...)
}

// UpdateFromSearchData points the component at the criteria's category; call Initialize to load it
func (s *Service) UpdateFromSearchData(criteria domain.SearchCriteria) {
	s.selected = domain.Category{ID: criteria.SearchCategoryID, Name: criteria.SearchCategoryName}
	s.level = nil
	s.cache = nil
}

// Initialize loads the level that shows the selected category
func (s *Service) Initialize() error {
	tree, err := s.source.CategoryTree()
	if err != nil {
		return fmt.Errorf("load category tree: %w", err)
	}

	if s.selected.ID == 0 {
		s.level = nil
		s.cache = tree
		return nil
	}

	path := findPath(tree, s.selected.ID)
	if path == nil {
		return fmt.Errorf("category %d not found", s.selected.ID)
	}
	node := path[len(path)-1]
	s.selected = node
	if len(node.Children) > 0 {
		s.level = path
		s.cache = node.Children
	} else {
		s.level = path[:len(path)-1]
		s.cache = siblings(tree, s.level)
	}
	return nil
}

// Select picks an entry of the current level. Entries with children are descended into.
// It reports whether a leaf was reached; unknown ids change nothing.
func (s *Service) Select(id int64) (domain.Category, bool) {
	for _, c := range s.cache {
		if c.ID != id {
			continue
		}
		s.selected = c
		if len(c.Children) == 0 {
			return s.Current(), true
		}
		s.level = append(s.level, c)
		s.cache = c.Children
		return s.Current(), false
	}
	return domain.Category{}, false
}

// NavigateBack moves one level up; false at the root
func (s *Service) NavigateBack() bool {
	if len(s.level) == 0 {
		return false
	}
	s.level = s.level[:len(s.level)-1]
	if len(s.level) == 0 {
		s.selected = domain.Category{}
		s.cache = nil
		if tree, err := s.source.CategoryTree(); err == nil {
			s.cache = tree
		}
		return true
	}
	parent := s.level[len(s.level)-1]
	s.selected = parent
	s.cache = parent.Children
	return true
}

// findPath returns the nodes from a root entry down to id
func findPath(nodes []domain.Category, id int64) []domain.Category {
	for _, n := range nodes {
		if n.ID == id {
			return []domain.Category{n}
		}
		if sub := findPath(n.Children, id); sub != nil {
			return append([]domain.Category{n}, sub...)
		}
	}
	return nil
}

func siblings(tree []domain.Category, level []domain.Category) []domain.Category {
	if len(level) == 0 {
		return tree
	}
	return level[len(level)-1].Children
}
