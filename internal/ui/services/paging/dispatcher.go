package paging

import (
	"context"
	"errors"
	"sync"
	"time"

	"lotview/internal/domain"
	"lotview/internal/eventbus"
	"lotview/internal/logic"
	"lotview/internal/platform/logger"
)

// Dispatcher hands refresh requests to the paging collaborator and routes the answers back.
// Requests are fire-and-forget: earlier in-flight requests are never cancelled.
type Dispatcher struct {
	collaborator logic.PagingCollaborator
	bus          eventbus.EventBus
	log          logger.Logger
	timeout      time.Duration

	mu          sync.Mutex
	unsubscribe func()
	wg          sync.WaitGroup
}

func NewDispatcher(collaborator logic.PagingCollaborator, bus eventbus.EventBus, log logger.Logger, timeout time.Duration) *Dispatcher {
	if log == nil {
		log = logger.NewNop()
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Dispatcher{
		collaborator: collaborator,
		bus:          bus,
		log:          log.With("component", "paging"),
		timeout:      timeout,
	}
}

// Start subscribes to refresh requests
func (d *Dispatcher) Start() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.unsubscribe != nil {
		return
	}
	d.unsubscribe = d.bus.Subscribe(eventbus.EventRefreshRequested, func(e eventbus.DomainEvent) {
		if ev, ok := e.(eventbus.RefreshRequestedEvent); ok {
			d.Dispatch(ev.Snapshot)
		}
	})
}

// Stop unsubscribes and waits for in-flight requests
func (d *Dispatcher) Stop() {
	d.mu.Lock()
	if d.unsubscribe != nil {
		d.unsubscribe()
		d.unsubscribe = nil
	}
	d.mu.Unlock()
	d.wg.Wait()
}

// Dispatch runs one refresh in the background
func (d *Dispatcher) Dispatch(snapshot domain.ListingSnapshot) {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		d.refresh(snapshot)
	}()
}

func (d *Dispatcher) refresh(snapshot domain.ListingSnapshot) {
	ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
	defer cancel()

	start := time.Now()
	err := d.collaborator.Refresh(ctx, snapshot, func(page domain.Page) {
		page.Generation = snapshot.Generation
		d.bus.Publish(eventbus.TotalCountUpdatedEvent{Page: page})
	})
	if err == nil {
		d.log.Debugf("refresh %d done in %s", snapshot.Generation, time.Since(start))
		return
	}

	var serverErr *domain.ServerError
	if !errors.As(err, &serverErr) {
		serverErr = &domain.ServerError{Message: err.Error()}
	}
	d.log.Warnf("refresh %d failed: %v", snapshot.Generation, err)
	d.bus.Publish(eventbus.ErrorEvent{
		Kind:       domain.ErrorKindServer,
		Message:    serverErr.Message,
		Err:        serverErr,
		Generation: snapshot.Generation,
	})
}
