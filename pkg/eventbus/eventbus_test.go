package eventbus

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type testEvent struct{ payload string }

func (e testEvent) Name() string { return "test.event" }

func TestBus_PublishDeliversToSubscribers(t *testing.T) {
	bus := New(zap.NewNop())
	received := make(chan Event, 2)

	bus.Subscribe("test.event", func(ctx context.Context, event Event) error {
		received <- event
		return nil
	})
	bus.Subscribe("test.event", func(ctx context.Context, event Event) error {
		received <- event
		return nil
	})

	bus.Publish(context.Background(), testEvent{payload: "hello"})

	for i := 0; i < 2; i++ {
		select {
		case event := <-received:
			assert.Equal(t, "hello", event.(testEvent).payload)
		case <-time.After(time.Second):
			t.Fatal("событие не доставлено подписчику")
		}
	}
}

func TestBus_PublishWithoutSubscribers(t *testing.T) {
	bus := New(zap.NewNop())
	// Не должно ни паниковать, ни блокировать.
	bus.Publish(context.Background(), testEvent{payload: "void"})
}

func TestBus_PublishDoesNotBlockCaller(t *testing.T) {
	bus := New(zap.NewNop())
	release := make(chan struct{})

	bus.Subscribe("test.event", func(ctx context.Context, event Event) error {
		<-release
		return nil
	})

	done := make(chan struct{})
	go func() {
		bus.Publish(context.Background(), testEvent{})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Publish заблокировался на медленном подписчике")
	}
	close(release)
}
