package eventbus

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type testEvent struct{ payload string }

func (testEvent) Name() string { return "test.event" }

// syncExecutor выполняет задачу сразу, в вызывающей горутине.
type syncExecutor struct{ err error }

func (s syncExecutor) Submit(ctx context.Context, task func(ctx context.Context)) error {
	if s.err != nil {
		return s.err
	}
	task(ctx)
	return nil
}

func TestBus_PublishDeliversToSubscribers(t *testing.T) {
	bus := New(syncExecutor{}, time.Second, zap.NewNop())

	var got []string
	bus.Subscribe("test.event", func(ctx context.Context, e Event) error {
		_, hasDeadline := ctx.Deadline()
		assert.True(t, hasDeadline)
		got = append(got, e.(testEvent).payload)
		return nil
	})
	bus.Subscribe("other.event", func(context.Context, Event) error {
		t.Error("чужой обработчик не должен вызываться")
		return nil
	})

	bus.Publish(context.Background(), testEvent{payload: "a"})
	assert.Equal(t, []string{"a"}, got)
}

func TestBus_ListenerErrorIsLogged(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	bus := New(syncExecutor{}, time.Second, zap.New(core))

	bus.Subscribe("test.event", func(context.Context, Event) error { return errors.New("calendar down") })
	bus.Publish(context.Background(), testEvent{})

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "Ошибка в обработчике события", logs.All()[0].Message)
}

func TestBus_SubmitErrorIsLogged(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	bus := New(syncExecutor{err: errors.New("closed")}, time.Second, zap.New(core))

	bus.Subscribe("test.event", func(context.Context, Event) error { return nil })
	bus.Publish(context.Background(), testEvent{})

	assert.Equal(t, 1, logs.FilterMessage("Не удалось запустить обработчик события").Len())
}
