package windowmode

import (
	"lotview/internal/domain"
	"lotview/internal/logic"
	"lotview/internal/platform/logger"
	"lotview/internal/ui/services/events"
)

// Service is the single-active-panel state machine of the listing screen
type Service struct {
	mode     domain.WindowMode
	bus      events.EventBus
	category logic.CategoryComponent
	log      logger.Logger

	// expansionPending is raised by a programmatic open and cleared when the host
	// reports the surface as expanded; collapse signals are ignored meanwhile.
	expansionPending bool
}

// NewService creates a controller resting in ModeListing
func NewService(bus events.EventBus) *Service {
	return &Service{
		mode: domain.ModeListing,
		bus:  bus,
		log:  logger.NewNop(),
	}
}

// SetCategoryComponent attaches the category picker; nil detaches it
func (s *Service) SetCategoryComponent(c logic.CategoryComponent) {
	s.category = c
}

// SetLogger replaces the default no-op logger
func (s *Service) SetLogger(log logger.Logger) {
	s.log = log.With("component", "windowmode")
}

// Mode returns the active panel
func (s *Service) Mode() domain.WindowMode {
	return s.mode
}

// ExpansionPending reports whether a programmatic open awaits host confirmation
func (s *Service) ExpansionPending() bool {
	return s.expansionPending
}

// OpenSearch opens the search panel from the listing
func (s *Service) OpenSearch() bool {
	return s.openFromListing(domain.ModeSearch)
}

// OpenFilters opens the filters editor from the listing
func (s *Service) OpenFilters() bool {
	return s.openFromListing(domain.ModeFilters)
}

// OpenSorting opens the sort picker from the listing
func (s *Service) OpenSorting() bool {
	return s.openFromListing(domain.ModeSorting)
}

// OpenCategory opens the category browser, loading the level of the committed category if needed
func (s *Service) OpenCategory(criteria domain.SearchCriteria) bool {
	if s.mode != domain.ModeListing || s.category == nil {
		return false
	}
	if !s.prepareCategory(criteria) {
		return false
	}
	return s.openFromListing(domain.ModeCategory)
}

// OpenCategoryFilters opens the category picker from the search panel.
// The component is re-initialised only when it shows another category or has nothing cached.
func (s *Service) OpenCategoryFilters(criteria domain.SearchCriteria) bool {
	if s.mode != domain.ModeSearch || s.category == nil {
		return false
	}
	if !s.prepareCategory(criteria) {
		return false
	}
	s.expansionPending = true
	s.setMode(domain.ModeCategoryFilters)
	return true
}

// CloseCategoryFilters returns to the search panel. The picked category is reported
// only when it differs from the one in draft.
func (s *Service) CloseCategoryFilters(draft domain.SearchCriteria) (domain.Category, bool) {
	if s.mode != domain.ModeCategoryFilters {
		return domain.Category{}, false
	}
	s.setMode(domain.ModeSearch)

	if s.category == nil {
		return domain.Category{}, false
	}
	picked := s.category.Current()
	if picked.ID == draft.SearchCategoryID {
		return domain.Category{}, false
	}
	return picked, true
}

// Back steps out of the active panel. Category panels first walk up the tree.
func (s *Service) Back() {
	switch s.mode {
	case domain.ModeListing:
		return
	case domain.ModeCategory, domain.ModeCategoryFilters:
		if s.category != nil && s.category.NavigateBack() {
			return
		}
	}

	if s.mode == domain.ModeCategoryFilters {
		s.setMode(domain.ModeSearch)
		return
	}
	s.Reset()
}

// Reset returns to the listing from any panel
func (s *Service) Reset() {
	s.expansionPending = false
	s.setMode(domain.ModeListing)
}

// OnSurfaceState synchronises the controller with the host surface.
// Only a collapse acts, and never while a programmatic expansion is pending.
func (s *Service) OnSurfaceState(state logic.SurfaceState) {
	switch state {
	case logic.SurfaceExpanded:
		s.expansionPending = false
	case logic.SurfaceCollapsed:
		if s.mode == domain.ModeListing || s.expansionPending {
			return
		}
		s.log.Debugf("surface collapsed in %s", s.mode)
		s.setMode(domain.ModeListing)
	}
}

func (s *Service) openFromListing(mode domain.WindowMode) bool {
	if s.mode != domain.ModeListing {
		return false
	}
	s.expansionPending = true
	s.setMode(mode)
	return true
}

func (s *Service) prepareCategory(criteria domain.SearchCriteria) bool {
	if s.category.CategoryID() == criteria.SearchCategoryID && len(s.category.Categories()) > 0 {
		return true
	}
	s.category.UpdateFromSearchData(criteria)
	if err := s.category.Initialize(); err != nil {
		s.log.Warnf("initialize categories: %v", err)
		return false
	}
	return true
}

func (s *Service) setMode(mode domain.WindowMode) {
	if mode == s.mode {
		return
	}
	old := s.mode
	s.mode = mode
	s.bus.Publish(ModeChangedEvent{Old: old, New: mode})
}
