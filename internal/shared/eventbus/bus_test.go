package eventbus

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// stubEvent implements Event for testing
type stubEvent struct {
	typeStr   string
	data      interface{}
	timestamp time.Time
	source    string
}

func (e *stubEvent) Type() string         { return e.typeStr }
func (e *stubEvent) Data() interface{}    { return e.data }
func (e *stubEvent) Timestamp() time.Time { return e.timestamp }
func (e *stubEvent) Source() string       { return e.source }

func TestEventBus_SubscribePublish(t *testing.T) {
	bus := NewEventBus(nil)
	var called bool
	bus.Subscribe(EventTypeProjectApproval, func(ctx context.Context, event Event) error {
		called = true
		assert.Equal(t, EventTypeProjectApproval, event.Type())
		return nil
	})
	err := bus.Publish(context.Background(), &stubEvent{typeStr: EventTypeProjectApproval, timestamp: time.Now()})
	assert.NoError(t, err)
	assert.True(t, called)
}

func TestEventBus_PublishWithoutHandlers(t *testing.T) {
	bus := NewEventBus(nil)
	err := bus.Publish(context.Background(), &stubEvent{typeStr: "nobody.cares", timestamp: time.Now()})
	assert.NoError(t, err)
}

func TestEventBus_AsyncPublish(t *testing.T) {
	bus := NewEventBusWithConfig(&noopLogger{}, BusConfig{AsyncProcessing: true})
	ch := make(chan struct{}, 1)
	bus.Subscribe("async", func(ctx context.Context, event Event) error {
		ch <- struct{}{}
		return nil
	})
	err := bus.Publish(context.Background(), &stubEvent{typeStr: "async", timestamp: time.Now()})
	assert.NoError(t, err)
	select {
	case <-ch:
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for async event")
	}
}

func TestEventBus_RetriesFailedHandler(t *testing.T) {
	bus := NewEventBusWithConfig(&noopLogger{}, BusConfig{MaxRetries: 2, RetryDelay: time.Millisecond})

	attempts := 0
	bus.Subscribe("flaky", func(ctx context.Context, event Event) error {
		attempts++
		if attempts < 3 {
			return errors.New("transient")
		}
		return nil
	})

	err := bus.Publish(context.Background(), &stubEvent{typeStr: "flaky", timestamp: time.Now()})
	assert.NoError(t, err)
	assert.Equal(t, 3, attempts)
}

func TestEventBus_GivesUpAfterMaxRetries(t *testing.T) {
	bus := NewEventBusWithConfig(&noopLogger{}, BusConfig{MaxRetries: 1, RetryDelay: time.Millisecond})

	bus.Subscribe("doomed", func(ctx context.Context, event Event) error {
		return errors.New("permanent")
	})

	err := bus.Publish(context.Background(), &stubEvent{typeStr: "doomed", timestamp: time.Now()})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "after 2 attempts")
}

func TestEventBus_Unsubscribe(t *testing.T) {
	bus := NewEventBus(nil)
	bus.Subscribe(EventTypeUserRoleChanged, func(ctx context.Context, event Event) error { return nil })
	assert.Equal(t, 1, bus.GetSubscriberCount(EventTypeUserRoleChanged))
	bus.Unsubscribe(EventTypeUserRoleChanged)
	assert.Equal(t, 0, bus.GetSubscriberCount(EventTypeUserRoleChanged))
}

func TestEventBus_PublishAndForget(t *testing.T) {
	bus := NewEventBus(nil)
	var wg sync.WaitGroup
	wg.Add(1)
	bus.Subscribe(EventTypeUserLoggedOut, func(ctx context.Context, event Event) error {
		wg.Done()
		return nil
	})
	bus.PublishAndForget(context.Background(), NewBasicEventWithSource(EventTypeUserLoggedOut, nil, "session_usecase"))
	wait := make(chan struct{})
	go func() {
		wg.Wait()
		close(wait)
	}()
	select {
	case <-wait:
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for PublishAndForget")
	}
}

func TestBasicEvent(t *testing.T) {
	ev := NewBasicEventWithSource(EventTypeBankDetailsSaved, map[string]string{"iban": "x"}, "bank_details_usecase")
	assert.Equal(t, EventTypeBankDetailsSaved, ev.Type())
	assert.Equal(t, "bank_details_usecase", ev.Source())
	assert.NotZero(t, ev.Timestamp())
	assert.Equal(t, map[string]string{"iban": "x"}, ev.Data())

	anon := NewBasicEvent(EventTypeProjectDeleted, nil)
	assert.Equal(t, "unknown", anon.Source())
}
