package search

import (
	"context"

	"lotview/internal/analytics"
	"lotview/internal/domain"
	"lotview/internal/platform/logger"
	"lotview/internal/session"
	"lotview/internal/ui/services/events"
)

// Service orchestrates the search panel: the editable buffer, history suggestions,
// draft toggles and the commit into the listing store.
type Service struct {
	state   *State
	store   ListingStore
	modes   ModeController
	history HistoryStore
	sink    analytics.Sink
	session session.Session
	bus     events.EventBus
	log     logger.Logger
}

// NewService creates a new search service
func NewService(store ListingStore, modes ModeController, history HistoryStore, sink analytics.Sink, sess session.Session, bus events.EventBus) *Service {
	if sink == nil {
		sink = analytics.NoopSink{}
	}
	return &Service{
		state:   &State{},
		store:   store,
		modes:   modes,
		history: history,
		sink:    sink,
		session: sess,
		bus:     bus,
		log:     logger.NewNop(),
	}
}

// SetLogger replaces the default no-op logger
func (s *Service) SetLogger(log logger.Logger) {
	s.log = log.With("component", "search")
}

// State returns the derived search panel view
func (s *Service) State() UiState {
	return UiState{
		Buffer:  s.state.Buffer,
		History: s.history.Items(),
		Loading: s.state.Loading,
		Error:   s.state.Error,
		Draft:   s.store.Draft(),
	}
}

// ChangeOpenSearch enters or leaves the search panel. Leaving commits the buffer and draft.
func (s *Service) ChangeOpenSearch(ctx context.Context, enter bool) {
	if enter {
		if s.modes.Mode() != domain.ModeListing {
			return
		}
		committed := s.store.Search()
		s.state.Buffer = committed.SearchString
		s.state.Error = ""
		s.store.ResetDraft()

		s.sink.ReportEvent(analytics.EventOpenSearchListing, map[string]any{
			analytics.ParamSearchString: committed.SearchString,
			analytics.ParamCategoryID:   committed.SearchCategoryID,
			analytics.ParamCategoryName: committed.SearchCategoryName,
			analytics.ParamUserLogin:    committed.UserLogin,
			analytics.ParamUserSearch:   committed.UserSearch,
			analytics.ParamUserFinished: committed.SearchFinished,
		})

		s.loadHistory(ctx, s.state.Buffer)
		s.modes.OpenSearch()
		s.publish()
		return
	}

	if s.modes.Mode() != domain.ModeSearch {
		return
	}
	s.commit(ctx)
	s.modes.Reset()
	s.publish()
}

// OnUpdateSearchString edits the buffer and narrows the history suggestions.
// Committed criteria are untouched.
func (s *Service) OnUpdateSearchString(ctx context.Context, value string) {
	s.state.Buffer = value
	s.loadHistory(ctx, value)
	s.publish()
}

// OnClickHistoryItem runs a past search and leaves the panel
func (s *Service) OnClickHistoryItem(ctx context.Context, item domain.SearchHistoryItem) {
	s.loadItem(item)
	s.commit(ctx)
	s.modes.Reset()
	s.publish()
}

// EditHistoryItem loads a past search as a fresh draft and forgets the stored entry
func (s *Service) EditHistoryItem(ctx context.Context, item domain.SearchHistoryItem) {
	s.loadItem(item)
	if err := s.history.DeleteItemHistory(ctx, item.ID); err != nil {
		s.state.Error = err.Error()
	} else {
		s.state.unsaved = true
	}
	s.publish()
}

// SelectUserSearch scopes the draft to one seller
func (s *Service) SelectUserSearch(login string, userID int64) {
	s.store.UpdateDraft(func(c *domain.SearchCriteria) {
		c.UserSearch = true
		c.UserLogin = login
		c.UserID = userID
	})
	s.publish()
}

// ClearUserSearch removes the seller scope from the draft
func (s *Service) ClearUserSearch() {
	s.store.UpdateDraft(func(c *domain.SearchCriteria) {
		c.UserSearch = false
		c.UserLogin = ""
		c.UserID = 0
	})
	s.publish()
}

// SetFinishedOnly toggles finished listings in the draft
func (s *Service) SetFinishedOnly(finished bool) {
	s.store.UpdateDraft(func(c *domain.SearchCriteria) {
		c.SearchFinished = finished
	})
	s.publish()
}

// SelectCategory puts a category into the draft; the zero category means all
func (s *Service) SelectCategory(category domain.Category) {
	s.store.UpdateDraft(func(c *domain.SearchCriteria) {
		c.SearchCategoryID = category.ID
		c.SearchCategoryName = category.Name
	})
	s.publish()
}

// Amend edits and commits the committed criteria directly, without the panel
func (s *Service) Amend(ctx context.Context, fn func(*domain.SearchCriteria)) {
	s.store.ResetDraft()
	s.store.UpdateDraft(fn)
	s.state.Buffer = s.store.Draft().SearchString
	s.commit(ctx)
	s.publish()
}

// SearchRefresh shows the loading indicator, reloads suggestions and recommits.
// The returned token is passed to FinishLoading once the minimum visible time elapsed.
func (s *Service) SearchRefresh(ctx context.Context) uint64 {
	s.state.token++
	s.state.Loading = true
	s.state.Error = ""
	s.loadHistory(ctx, s.state.Buffer)
	s.commit(ctx)
	s.publish()
	return s.state.token
}

// FinishLoading hides the loading indicator unless a newer refresh started since token was issued
func (s *Service) FinishLoading(token uint64) {
	if !s.state.Loading || token != s.state.token {
		return
	}
	s.state.Loading = false
	s.publish()
}

// DeleteHistoryItem forgets one past search
func (s *Service) DeleteHistoryItem(ctx context.Context, item domain.SearchHistoryItem) {
	if err := s.history.DeleteItemHistory(ctx, item.ID); err != nil {
		s.state.Error = err.Error()
	}
	s.publish()
}

// ClearHistory forgets every past search of the user
func (s *Service) ClearHistory(ctx context.Context) {
	if err := s.history.DeleteHistory(ctx); err != nil {
		s.state.Error = err.Error()
	}
	s.publish()
}

// commit writes the buffer into the draft and the draft into the store.
// search_for_item is reported and the history written only when the commit changed
// the query or re-submits an edited entry.
func (s *Service) commit(ctx context.Context) bool {
	buffer := s.state.Buffer
	s.store.UpdateDraft(func(c *domain.SearchCriteria) {
		c.SearchString = buffer
	})

	refreshed := s.store.SetSearchFilters()
	committed := s.store.Search()

	if refreshed {
		s.sink.ReportEvent(analytics.EventSearchForItem, map[string]any{
			analytics.ParamSearchQuery:     committed.SearchString,
			analytics.ParamVisitorID:       s.session.VisitorID,
			analytics.ParamSearchCatID:     committed.SearchCategoryID,
			analytics.ParamUserSearch:      committed.UserSearch,
			analytics.ParamUserSearchLogin: committed.UserLogin,
			analytics.ParamUserSearchID:    committed.UserID,
		})
	}

	if refreshed || s.state.unsaved {
		s.state.unsaved = false
		if err := s.history.AddHistory(ctx, committed.SearchString, committed.UserSearch, committed.UserLogin, committed.SearchFinished); err != nil {
			s.state.Error = err.Error()
		}
	}

	s.bus.Publish(CommittedEvent{Criteria: committed, Refreshed: refreshed})
	return refreshed
}

func (s *Service) loadItem(item domain.SearchHistoryItem) {
	s.state.Buffer = item.Query
	s.store.UpdateDraft(func(c *domain.SearchCriteria) {
		c.SearchString = item.Query
		c.UserSearch = item.IsUsersSearch
		c.UserLogin = ""
		c.UserID = 0
		if item.IsUsersSearch {
			c.UserLogin = item.UserLogin
			if c.UserLogin == "" || c.UserLogin == s.session.Login {
				c.UserLogin = s.session.Login
				c.UserID = s.session.UserID
			}
		}
		c.SearchFinished = item.IsFinished
	})
}

func (s *Service) loadHistory(ctx context.Context, prefix string) {
	if _, err := s.history.GetHistory(ctx, prefix); err != nil {
		s.state.Error = err.Error()
	}
}

func (s *Service) publish() {
	s.bus.Publish(StateChangedEvent{State: s.State()})
}
