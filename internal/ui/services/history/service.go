package history

import (
	"context"
	"fmt"
	"strings"
	"time"

	"lotview/internal/domain"
	"lotview/internal/eventbus"
	"lotview/internal/logic"
	"lotview/internal/platform/logger"
	"lotview/internal/session"
	"lotview/internal/ui/services/events"
)

// Service is the current user's search history
type Service struct {
	repo      logic.HistoryRepository
	session   session.Session
	bus       events.EventBus
	domainBus eventbus.EventBus
	log       logger.Logger
	timeout   time.Duration
	limit     int

	prefix string
	items  []domain.SearchHistoryItem
}

// Config tunes repository access
type Config struct {
	Timeout time.Duration
	Limit   int
}

// NewService creates the history service; a zero timeout means two seconds
func NewService(repo logic.HistoryRepository, sess session.Session, bus events.EventBus, domainBus eventbus.EventBus, log logger.Logger, cfg Config) *Service {
	if log == nil {
		log = logger.NewNop()
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 2 * time.Second
	}
	return &Service{
		repo:      repo,
		session:   sess,
		bus:       bus,
		domainBus: domainBus,
		log:       log.With("component", "history"),
		timeout:   cfg.Timeout,
		limit:     cfg.Limit,
	}
}

// Items returns the last loaded list
func (s *Service) Items() []domain.SearchHistoryItem {
	return append([]domain.SearchHistoryItem(nil), s.items...)
}

// GetHistory loads the entries whose normalised query starts with the normalised prefix
func (s *Service) GetHistory(ctx context.Context, prefix string) ([]domain.SearchHistoryItem, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	items, err := s.query(ctx, prefix, s.limit)
	if err != nil {
		return nil, s.fail("load search history", err)
	}

	s.prefix = prefix
	s.items = items
	s.bus.Publish(ChangedEvent{Prefix: prefix, Items: s.Items()})
	return s.Items(), nil
}

// AddHistory stores a query with its tags unless the same entry already exists.
// Blank queries are ignored.
func (s *Service) AddHistory(ctx context.Context, query string, isUserSearch bool, userLogin string, isFinished bool) error {
	if strings.TrimSpace(query) == "" {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	encoded := Encode(query, isUserSearch, userLogin, isFinished)
	_, inserted, err := s.repo.Insert(ctx, s.session.HistoryOwner(), encoded)
	if err != nil {
		return s.fail("save search history", err)
	}
	if inserted {
		s.log.Debugf("history entry added: %q", encoded)
	}
	return nil
}

// DeleteItemHistory removes one entry and reloads the list
func (s *Service) DeleteItemHistory(ctx context.Context, id int64) error {
	dctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.repo.Delete(dctx, s.session.HistoryOwner(), id); err != nil {
		return s.fail("delete search history item", err)
	}
	_, err := s.GetHistory(ctx, s.prefix)
	return err
}

// DeleteHistory removes every entry of the current user and reloads the list
func (s *Service) DeleteHistory(ctx context.Context) error {
	dctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.repo.DeleteAll(dctx, s.session.HistoryOwner()); err != nil {
		return s.fail("clear search history", err)
	}
	_, err := s.GetHistory(ctx, s.prefix)
	return err
}

// All returns every stored entry of the user without touching the loaded list
func (s *Service) All(ctx context.Context) ([]domain.SearchHistoryItem, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	items, err := s.query(ctx, "", 0)
	if err != nil {
		return nil, s.fail("list search history", err)
	}
	return items, nil
}

func (s *Service) query(ctx context.Context, prefix string, limit int) ([]domain.SearchHistoryItem, error) {
	records, err := s.repo.Search(ctx, s.session.HistoryOwner(), EscapeQuery(logic.NormalizeQuery(prefix)), limit)
	if err != nil {
		return nil, err
	}
	items := make([]domain.SearchHistoryItem, 0, len(records))
	for _, rec := range records {
		items = append(items, Decode(rec.ID, rec.Encoded))
	}
	return items, nil
}

// fail wraps, logs and publishes a storage error; the in-memory list is left as is
func (s *Service) fail(op string, err error) error {
	wrapped := fmt.Errorf("%s: %w: %w", op, domain.ErrHistoryUnavailable, err)
	s.log.Errorf("%v", wrapped)
	if s.domainBus != nil {
		s.domainBus.Publish(eventbus.ErrorEvent{
			Kind:    domain.ErrorKindStorage,
			Message: "Search history is unavailable",
			Err:     wrapped,
		})
	}
	return wrapped
}
