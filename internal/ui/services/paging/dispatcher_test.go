package paging

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"lotview/internal/domain"
	"lotview/internal/eventbus"
)

type mockCollaborator struct {
	mock.Mock
}

func (m *mockCollaborator) Refresh(ctx context.Context, snapshot domain.ListingSnapshot, report func(domain.Page)) error {
	args := m.Called(ctx, snapshot, report)
	if page, ok := args.Get(0).(*domain.Page); ok && page != nil {
		report(*page)
	}
	return args.Error(1)
}

func collect(bus eventbus.EventBus, eventType eventbus.EventType) <-chan eventbus.DomainEvent {
	ch := make(chan eventbus.DomainEvent, 8)
	bus.Subscribe(eventType, func(e eventbus.DomainEvent) { ch <- e })
	return ch
}

func next(t *testing.T, ch <-chan eventbus.DomainEvent) eventbus.DomainEvent {
	t.Helper()
	select {
	case e := <-ch:
		return e
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for event")
		return nil
	}
}

func TestDispatcher_ReportsTotalCountWithGeneration(t *testing.T) {
	bus := eventbus.New(nil)
	defer bus.Close()

	snapshot := domain.ListingSnapshot{Generation: 9}
	collab := &mockCollaborator{}
	collab.On("Refresh", mock.Anything, snapshot, mock.Anything).
		Return(&domain.Page{Generation: 1, TotalCount: 42}, nil)

	d := NewDispatcher(collab, bus, nil, time.Second)
	d.Start()
	defer d.Stop()
	counts := collect(bus, eventbus.EventTotalCountUpdated)

	bus.Publish(eventbus.RefreshRequestedEvent{Snapshot: snapshot})

	ev := next(t, counts).(eventbus.TotalCountUpdatedEvent)
	assert.Equal(t, uint64(9), ev.Page.Generation, "generation comes from the snapshot")
	assert.Equal(t, 42, ev.Page.TotalCount)
}

func TestDispatcher_ServerErrorIsPublishedNotRetried(t *testing.T) {
	bus := eventbus.New(nil)
	defer bus.Close()

	collab := &mockCollaborator{}
	collab.On("Refresh", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, &domain.ServerError{Code: 503, Message: "maintenance"}).Once()

	d := NewDispatcher(collab, bus, nil, time.Second)
	errs := collect(bus, eventbus.EventError)

	d.Dispatch(domain.ListingSnapshot{Generation: 1})
	d.Stop()

	ev := next(t, errs).(eventbus.ErrorEvent)
	assert.Equal(t, domain.ErrorKindServer, ev.Kind)
	assert.Equal(t, "maintenance", ev.Message)
	assert.Equal(t, uint64(1), ev.Generation)
	var serverErr *domain.ServerError
	require.True(t, errors.As(ev.Err, &serverErr))
	assert.Equal(t, 503, serverErr.Code)
	collab.AssertNumberOfCalls(t, "Refresh", 1)
}

func TestDispatcher_PlainErrorBecomesServerError(t *testing.T) {
	bus := eventbus.New(nil)
	defer bus.Close()

	collab := &mockCollaborator{}
	collab.On("Refresh", mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("connection reset"))

	d := NewDispatcher(collab, bus, nil, time.Second)
	errs := collect(bus, eventbus.EventError)
	d.Dispatch(domain.ListingSnapshot{})
	d.Stop()

	ev := next(t, errs).(eventbus.ErrorEvent)
	var serverErr *domain.ServerError
	require.True(t, errors.As(ev.Err, &serverErr))
	assert.Equal(t, "connection reset", serverErr.Message)
}

func TestDispatcher_StopUnsubscribes(t *testing.T) {
	bus := eventbus.New(nil)
	defer bus.Close()

	collab := &mockCollaborator{}
	d := NewDispatcher(collab, bus, nil, time.Second)
	d.Start()
	d.Start()
	d.Stop()

	done := make(chan struct{})
	bus.Subscribe(eventbus.EventRefreshRequested, func(eventbus.DomainEvent) { close(done) })
	bus.Publish(eventbus.RefreshRequestedEvent{})
	<-done
	d.Stop()

	collab.AssertNotCalled(t, "Refresh", mock.Anything, mock.Anything, mock.Anything)
}

func TestDispatcher_WithMemoryCatalog(t *testing.T) {
	bus := eventbus.New(nil)
	defer bus.Close()

	d := NewDispatcher(NewDemoCatalog("offers.list", "catalog"), bus, nil, time.Second)
	d.Start()
	defer d.Stop()
	counts := collect(bus, eventbus.EventTotalCountUpdated)

	bus.Publish(eventbus.RefreshRequestedEvent{Snapshot: domain.ListingSnapshot{
		Generation: 3,
		Data:       domain.ListingData{MethodServer: "offers.list", ObjServer: "catalog"},
		Search:     domain.SearchCriteria{SearchString: "lamp"},
	}})

	ev := next(t, counts).(eventbus.TotalCountUpdatedEvent)
	assert.Equal(t, 2, ev.Page.TotalCount)
	assert.Equal(t, uint64(3), ev.Page.Generation)
}
