package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go.uber.org/zap"
)

// cachedCatalogRepository - read-through кеш для List. Кеш не обязателен:
// любая его ошибка логируется, и запрос идёт в хранилище.
type cachedCatalogRepository[T any] struct {
	inner  CatalogRepository[T]
	cache  CacheRepositoryInterface
	key    string
	ttl    time.Duration
	logger *zap.Logger
}

func NewCachedCatalogRepository[T any](inner CatalogRepository[T], cache CacheRepositoryInterface, key string, ttl time.Duration, logger *zap.Logger) CatalogRepository[T] {
	return &cachedCatalogRepository[T]{inner: inner, cache: cache, key: key, ttl: ttl, logger: logger}
}

func (r *cachedCatalogRepository[T]) List(ctx context.Context) ([]T, error) {
	if raw, err := r.cache.Get(ctx, r.key); err == nil {
		var items []T
		if err := json.Unmarshal([]byte(raw), &items); err == nil {
			return items, nil
		}
		r.logger.Warn("Повреждённая запись в кеше", zap.String("key", r.key))
	} else if !errors.Is(err, ErrCacheMiss) {
		r.logger.Warn("Кеш недоступен", zap.String("key", r.key), zap.Error(err))
	}

	items, err := r.inner.List(ctx)
	if err != nil {
		return nil, err
	}
	if payload, err := json.Marshal(items); err == nil {
		if err := r.cache.Set(ctx, r.key, payload, r.ttl); err != nil {
			r.logger.Warn("Не удалось записать в кеш", zap.String("key", r.key), zap.Error(err))
		}
	}
	return items, nil
}

func (r *cachedCatalogRepository[T]) FindByID(ctx context.Context, id uint64) (*T, error) {
	return r.inner.FindByID(ctx, id)
}

func (r *cachedCatalogRepository[T]) Count(ctx context.Context) (int, error) {
	return r.inner.Count(ctx)
}

func (r *cachedCatalogRepository[T]) Create(ctx context.Context, item T) (*T, error) {
	created, err := r.inner.Create(ctx, item)
	if err != nil {
		return nil, err
	}
	r.invalidate(ctx)
	return created, nil
}

func (r *cachedCatalogRepository[T]) CreateMany(ctx context.Context, items []T) ([]T, error) {
	created, err := r.inner.CreateMany(ctx, items)
	if err != nil {
		return nil, err
	}
	r.invalidate(ctx)
	return created, nil
}

func (r *cachedCatalogRepository[T]) invalidate(ctx context.Context) {
	if err := r.cache.Del(ctx, r.key); err != nil {
		r.logger.Warn("Не удалось сбросить кеш", zap.String("key", r.key), zap.Error(err))
	}
}
