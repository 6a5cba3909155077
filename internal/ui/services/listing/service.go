package listing

import (
	"fmt"
	"strings"

	"lotview/internal/domain"
	"lotview/internal/eventbus"
	"lotview/internal/platform/logger"
	"lotview/internal/session"
	"lotview/internal/ui/services/events"
)

// Service is the canonical query state of one listing screen.
// It is not safe for concurrent use; all calls come from the UI loop.
type Service struct {
	listingType domain.ListingType
	session     session.Session
	modes       ModeController
	bus         events.EventBus
	domainBus   eventbus.EventBus
	log         logger.Logger

	data       domain.ListingData
	search     domain.SearchCriteria
	draft      domain.SearchCriteria
	generation uint64
}

// NewService creates a store holding the canonical empty template of listingType.
// User offer listings start scoped to the session's own offers.
func NewService(listingType domain.ListingType, sess session.Session, modes ModeController, bus events.EventBus, domainBus eventbus.EventBus) *Service {
	s := &Service{
		listingType: listingType,
		session:     sess,
		modes:       modes,
		bus:         bus,
		domainBus:   domainBus,
		log:         logger.NewNop(),
		data:        domain.ListingData{Filters: EmptyFilters(listingType)},
	}
	if listingType == domain.ListingTypeUserOffers && !sess.Anonymous() {
		s.search = domain.SearchCriteria{UserSearch: true, UserLogin: sess.Login, UserID: sess.UserID}
	}
	s.draft = s.search
	return s
}

// SetLogger replaces the default no-op logger
func (s *Service) SetLogger(log logger.Logger) {
	s.log = log.With("component", "listing")
}

// Type returns the listing type
func (s *Service) Type() domain.ListingType {
	return s.listingType
}

// Data returns a copy of the committed query
func (s *Service) Data() domain.ListingData {
	return s.data.Clone()
}

// Search returns the committed search criteria
func (s *Service) Search() domain.SearchCriteria {
	return s.search
}

// Generation returns the number of the latest issued refresh
func (s *Service) Generation() uint64 {
	return s.generation
}

// Snapshot returns the immutable hand-off for the paging collaborator
func (s *Service) Snapshot() domain.ListingSnapshot {
	return domain.ListingSnapshot{
		Generation: s.generation,
		Type:       s.listingType,
		Data:       s.data.Clone(),
		Search:     s.search,
	}
}

// SetListingData replaces filters and search criteria together.
// Invalid input leaves the store untouched.
func (s *Service) SetListingData(data domain.ListingData, criteria domain.SearchCriteria) error {
	if err := s.validate(data); err != nil {
		return err
	}

	next := data.Clone()
	next.Filters = s.normalize(data.Filters)
	criteria.IsRefreshing = false
	s.draft = criteria
	s.commit(next, criteria)
	return nil
}

// Restore loads persisted state. A missing endpoint keeps the current one.
func (s *Service) Restore(data domain.ListingData, criteria domain.SearchCriteria) error {
	if data.MethodServer == "" {
		data.MethodServer = s.data.MethodServer
	}
	if data.ObjServer == "" {
		data.ObjServer = s.data.ObjServer
	}
	return s.SetListingData(data, criteria)
}

// ApplyFilters replaces the filter list and returns to the listing.
// The result keeps the template layout: provided entries replace their slot,
// unknown slots are appended, missing slots are tombstoned.
func (s *Service) ApplyFilters(filters []domain.Filter) {
	next := s.data.Clone()
	next.Filters = s.normalize(filters)
	s.commit(next, s.search)
	s.resetMode()
}

// RemoveFilter tombstones the entry with the same (key, operation); no-op without a match
func (s *Service) RemoveFilter(filter domain.Filter) {
	next := s.data.Clone()
	for i, f := range next.Filters {
		if f.SameSlot(filter) {
			next.Filters[i] = f.Tombstone()
			s.commit(next, s.search)
			return
		}
	}
}

// ApplySorting replaces the sort and returns to the listing
func (s *Service) ApplySorting(sort domain.Sort) {
	next := s.data.Clone()
	next.Sort = domain.CloneSort(&sort)
	s.commit(next, s.search)
	s.resetMode()
}

// RemoveSort clears the sort
func (s *Service) RemoveSort() {
	next := s.data.Clone()
	next.Sort = nil
	s.commit(next, s.search)
}

// ClearAllFilters restores the canonical empty template and returns to the listing
func (s *Service) ClearAllFilters() {
	next := s.data.Clone()
	next.Filters = EmptyFilters(s.listingType)
	s.commit(next, s.search)
	s.resetMode()
}

// ChangeSaleTab drives the sale_type filter from the quick tabs
func (s *Service) ChangeSaleTab(tab domain.SaleTab) {
	if !ShowsSaleTabs(s.listingType) {
		return
	}

	next := s.data.Clone()
	idx := -1
	for i, f := range next.Filters {
		if f.Key == domain.SaleTypeKey {
			idx = i
			break
		}
	}
	if idx < 0 {
		next.Filters = append(next.Filters, domain.Filter{Key: domain.SaleTypeKey})
		idx = len(next.Filters) - 1
	}

	if tab == domain.SaleTabAll {
		next.Filters[idx] = next.Filters[idx].Tombstone()
	} else {
		next.Filters[idx].Value = string(tab)
		next.Filters[idx].Interpretation = domain.StringPtr("")
	}
	s.commit(next, s.search)
}

// Draft returns the uncommitted search criteria
func (s *Service) Draft() domain.SearchCriteria {
	return s.draft
}

// UpdateDraft edits the uncommitted search criteria; nothing is published
func (s *Service) UpdateDraft(fn func(*domain.SearchCriteria)) {
	fn(&s.draft)
}

// ResetDraft discards uncommitted edits
func (s *Service) ResetDraft() {
	s.draft = s.search
}

// SetSearchFilters commits the draft. Only the fields that differ from the committed
// criteria count as a change; committing identical criteria issues no refresh.
// It reports whether a refresh was issued.
func (s *Service) SetSearchFilters() bool {
	draft := s.draft
	draft.SearchString = strings.TrimSpace(draft.SearchString)
	draft.IsRefreshing = false

	changed := diffSearch(s.search, draft)
	if len(changed) == 0 {
		return false
	}
	s.log.Debugf("search commit changed %s", strings.Join(changed, ","))

	s.draft = draft
	return s.commit(s.data.Clone(), draft)
}

// commit writes the new state, issues a refresh when the query changed and
// then notifies UI subscribers. It reports whether a refresh was issued.
func (s *Service) commit(data domain.ListingData, search domain.SearchCriteria) bool {
	refresh := !data.Equal(s.data) || len(diffSearch(s.search, search)) > 0

	s.data = data
	s.search = search

	if refresh {
		s.search.IsRefreshing = true
		s.generation++
		if s.domainBus != nil {
			s.domainBus.Publish(eventbus.RefreshRequestedEvent{Snapshot: s.Snapshot()})
		}
		s.search.IsRefreshing = false
	}

	s.bus.Publish(DataChangedEvent{Snapshot: s.Snapshot(), Refreshed: refresh})
	return refresh
}

func (s *Service) resetMode() {
	if s.modes != nil {
		s.modes.Reset()
	}
}

// normalize projects filters onto the template of the listing type
func (s *Service) normalize(filters []domain.Filter) []domain.Filter {
	out := EmptyFilters(s.listingType)
	for _, f := range filters {
		replaced := false
		for i := range out {
			if out[i].SameSlot(f) {
				out[i] = f.Clone()
				replaced = true
				break
			}
		}
		if !replaced {
			out = append(out, f.Clone())
		}
	}
	return out
}

func (s *Service) validate(data domain.ListingData) error {
	if strings.TrimSpace(data.MethodServer) == "" || strings.TrimSpace(data.ObjServer) == "" {
		return fmt.Errorf("%w: server method and object are required", domain.ErrInvalidListingData)
	}
	for i, f := range data.Filters {
		if strings.TrimSpace(f.Key) == "" {
			return fmt.Errorf("%w: filter %d has no key", domain.ErrInvalidListingData, i)
		}
		for _, prev := range data.Filters[:i] {
			if prev.SameSlot(f) {
				return fmt.Errorf("%w: duplicate filter %s/%s", domain.ErrInvalidListingData, f.Key, domain.StringValue(f.Operation))
			}
		}
	}
	return nil
}

// diffSearch names the committed fields that differ between a and b
func diffSearch(a, b domain.SearchCriteria) []string {
	var changed []string
	if a.SearchString != b.SearchString {
		changed = append(changed, "search_string")
	}
	if a.UserSearch != b.UserSearch || a.UserLogin != b.UserLogin || a.UserID != b.UserID {
		changed = append(changed, "user_search")
	}
	if a.SearchFinished != b.SearchFinished {
		changed = append(changed, "search_finished")
	}
	if a.SearchCategoryID != b.SearchCategoryID || a.SearchCategoryName != b.SearchCategoryName {
		changed = append(changed, "category")
	}
	return changed
}
