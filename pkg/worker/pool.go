// Package worker - пул горутин для фоновых задач (обработчики событий и т.п.).
package worker

import (
	"context"
	"errors"
	"time"

	"github.com/panjf2000/ants/v2"
	"go.uber.org/zap"
)

var (
	ErrPoolClosed     = errors.New("пул воркеров закрыт")
	ErrPoolOverloaded = errors.New("все воркеры заняты")
)

// Task получает контекст вызывающего и должна проверять ctx.Done() в блокирующих местах.
type Task = func(ctx context.Context)

type Pool struct {
	pool   *ants.Pool
	logger *zap.Logger
}

func NewPool(size int, logger *zap.Logger) (*Pool, error) {
	if size <= 0 {
		size = 16
	}
	p, err := ants.NewPool(size,
		ants.WithPanicHandler(func(v interface{}) {
			logger.Error("Паника в воркере перехвачена", zap.Any("panic", v), zap.Stack("stack"))
		}),
		// Submit не ждёт свободного воркера: при перегрузке задача отклоняется.
		ants.WithNonblocking(true),
		ants.WithExpiryDuration(10*time.Second),
	)
	if err != nil {
		return nil, err
	}
	return &Pool{pool: p, logger: logger}, nil
}

// Submit запускает задачу на свободном воркере. Если ctx уже отменён, задача не запускается,
// если свободных воркеров нет - возвращается ErrPoolOverloaded.
func (p *Pool) Submit(ctx context.Context, task Task) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	err := p.pool.Submit(func() {
		select {
		case <-ctx.Done():
			p.logger.Debug("Задача пропущена: контекст отменён", zap.Error(ctx.Err()))
			return
		default:
		}
		task(ctx)
	})
	switch {
	case errors.Is(err, ants.ErrPoolClosed):
		return ErrPoolClosed
	case errors.Is(err, ants.ErrPoolOverload):
		return ErrPoolOverloaded
	}
	return err
}

// Release ждёт завершения запущенных задач не дольше timeout.
func (p *Pool) Release(timeout time.Duration) {
	if err := p.pool.ReleaseTimeout(timeout); err != nil {
		p.logger.Warn("Пул воркеров не успел остановиться", zap.Error(err))
	}
}

func (p *Pool) Running() int { return p.pool.Running() }
