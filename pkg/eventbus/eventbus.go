package eventbus

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Event представляет собой любое событие в системе.
type Event interface {
	Name() string
}

// Listener - это обработчик (слушатель) событий.
type Listener func(ctx context.Context, event Event) error

// Executor запускает обработчики в фоне. Реализуется worker.Pool.
type Executor interface {
	Submit(ctx context.Context, task func(ctx context.Context)) error
}

// Bus - это наша шина событий.
type Bus struct {
	listeners map[string][]Listener
	mu        sync.RWMutex
	executor  Executor
	timeout   time.Duration
	logger    *zap.Logger
}

// New создает новую шину событий. Каждый обработчик получает свой контекст с таймаутом.
func New(executor Executor, timeout time.Duration, logger *zap.Logger) *Bus {
	if timeout <= 0 {
		timeout = time.Minute
	}
	return &Bus{
		listeners: make(map[string][]Listener),
		executor:  executor,
		timeout:   timeout,
		logger:    logger,
	}
}

// Subscribe подписывает слушателя на определенное событие.
func (b *Bus) Subscribe(eventName string, listener Listener) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.listeners[eventName] = append(b.listeners[eventName], listener)
}

// Publish публикует событие и сразу возвращает управление.
// Ошибки обработчиков только логируются: вызывающий их не видит.
func (b *Bus) Publish(_ context.Context, event Event) {
	b.mu.RLock()
	listeners := append([]Listener(nil), b.listeners[event.Name()]...)
	b.mu.RUnlock()

	for _, listener := range listeners {
		l := listener
		// Контекст запроса не наследуется: обработчик переживает ответ клиенту.
		err := b.executor.Submit(context.Background(), func(context.Context) {
			ctx, cancel := context.WithTimeout(context.Background(), b.timeout)
			defer cancel()

			if err := l(ctx, event); err != nil {
				b.logger.Error("Ошибка в обработчике события",
					zap.String("event", event.Name()),
					zap.Error(err),
				)
			}
		})
		if err != nil {
			b.logger.Error("Не удалось запустить обработчик события",
				zap.String("event", event.Name()),
				zap.Error(err),
			)
		}
	}
}
