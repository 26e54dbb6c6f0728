package repositories

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"fiber-service/internal/entities"
	apperrors "fiber-service/pkg/errors"
)

// Хранилище в памяти: для dev-режима (STORAGE_DRIVER=memory) и тестов.
// Каждая операция атомарна сама по себе, не более того.

type withID interface {
	GetID() uint64
}

type memoryCatalogRepository[T withID] struct {
	mu     sync.RWMutex
	items  []T
	nextID uint64
	assign func(item *T, id uint64, createdAt time.Time)
}

func newMemoryCatalogRepository[T withID](assign func(item *T, id uint64, createdAt time.Time)) *memoryCatalogRepository[T] {
	return &memoryCatalogRepository[T]{assign: assign}
}

func (r *memoryCatalogRepository[T]) List(_ context.Context) ([]T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append(make([]T, 0, len(r.items)), r.items...), nil
}

func (r *memoryCatalogRepository[T]) FindByID(_ context.Context, id uint64) (*T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, item := range r.items {
		if item.GetID() == id {
			found := item
			return &found, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *memoryCatalogRepository[T]) Create(_ context.Context, item T) (*T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	created := r.add(item, time.Now())
	return &created, nil
}

func (r *memoryCatalogRepository[T]) CreateMany(_ context.Context, items []T) ([]T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	created := make([]T, 0, len(items))
	for _, item := range items {
		created = append(created, r.add(item, now))
	}
	return created, nil
}

func (r *memoryCatalogRepository[T]) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items), nil
}

// add вызывается под блокировкой.
func (r *memoryCatalogRepository[T]) add(item T, now time.Time) T {
	r.nextID++
	r.assign(&item, r.nextID, now)
	r.items = append(r.items, item)
	return item
}

func NewMemoryClientRepository() ClientRepositoryInterface {
	return newMemoryCatalogRepository(func(c *entities.Client, id uint64, at time.Time) {
		c.ID, c.CreatedAt = id, at
	})
}

func NewMemoryServiceRepository() ServiceRepositoryInterface {
	return newMemoryCatalogRepository(func(s *entities.Service, id uint64, at time.Time) {
		s.ID, s.CreatedAt = id, at
	})
}

func NewMemoryTechnicianRepository() TechnicianRepositoryInterface {
	return newMemoryCatalogRepository(func(t *entities.Technician, id uint64, at time.Time) {
		t.ID, t.CreatedAt = id, at
	})
}

func NewMemoryEquipmentRepository() EquipmentRepositoryInterface {
	return newMemoryCatalogRepository(func(e *entities.Equipment, id uint64, at time.Time) {
		e.ID, e.CreatedAt = id, at
	})
}

// memoryOrderRepository повторяет ограничения таблицы service_orders:
// уникальный номер и существующие клиент, услуга и техник.
type memoryOrderRepository struct {
	mu          sync.RWMutex
	orders      map[uint64]entities.ServiceOrder
	nextID      uint64
	clients     ClientRepositoryInterface
	services    ServiceRepositoryInterface
	technicians TechnicianRepositoryInterface
}

func NewMemoryOrderRepository(clients ClientRepositoryInterface, services ServiceRepositoryInterface, technicians TechnicianRepositoryInterface) OrderRepositoryInterface {
	return &memoryOrderRepository{
		orders:      make(map[uint64]entities.ServiceOrder),
		clients:     clients,
		services:    services,
		technicians: technicians,
	}
}

func (r *memoryOrderRepository) List(_ context.Context) ([]entities.ServiceOrder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	orders := make([]entities.ServiceOrder, 0, len(r.orders))
	for _, o := range r.orders {
		orders = append(orders, o)
	}
	// тот же порядок, что и ORDER BY в PostgreSQL
	sort.Slice(orders, func(i, j int) bool {
		a, b := orders[i], orders[j]
		if !a.ScheduledDate.Equal(b.ScheduledDate) {
			return a.ScheduledDate.After(b.ScheduledDate)
		}
		if a.ScheduledTime != b.ScheduledTime {
			return a.ScheduledTime > b.ScheduledTime
		}
		return a.ID > b.ID
	})
	return orders, nil
}

func (r *memoryOrderRepository) FindByID(_ context.Context, id uint64) (*entities.ServiceOrder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	o, ok := r.orders[id]
	if !ok {
		return nil, fmt.Errorf("find order %d: %w", id, apperrors.ErrNotFound)
	}
	return &o, nil
}

func (r *memoryOrderRepository) FindByNumber(_ context.Context, number string) (*entities.ServiceOrder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, o := range r.orders {
		if o.OrderNumber == number {
			found := o
			return &found, nil
		}
	}
	return nil, fmt.Errorf("find order %s: %w", number, apperrors.ErrNotFound)
}

func (r *memoryOrderRepository) Create(ctx context.Context, order entities.ServiceOrder) (*entities.ServiceOrder, error) {
	if err := r.checkReferences(ctx, order); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.orders {
		if existing.OrderNumber == order.OrderNumber {
			return nil, fmt.Errorf("insert order %s: %w", order.OrderNumber, apperrors.ErrConflict)
		}
	}

	r.nextID++
	now := time.Now()
	order.ID = r.nextID
	order.CreatedAt, order.UpdatedAt = now, now
	if order.EquipmentUsed == nil {
		order.EquipmentUsed = []string{}
	}
	r.orders[order.ID] = order
	return &order, nil
}

func (r *memoryOrderRepository) Update(_ context.Context, id uint64, patch entities.OrderPatch) (*entities.ServiceOrder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	current, ok := r.orders[id]
	if !ok {
		return nil, fmt.Errorf("update order %d: %w", id, apperrors.ErrNotFound)
	}
	if patch.UpdatedAt == nil {
		now := time.Now()
		patch.UpdatedAt = &now
	}
	updated := patch.Apply(current)
	r.orders[id] = updated
	return &updated, nil
}

func (r *memoryOrderRepository) Delete(_ context.Context, id uint64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.orders[id]; !ok {
		return false, nil
	}
	delete(r.orders, id)
	return true, nil
}

func (r *memoryOrderRepository) checkReferences(ctx context.Context, order entities.ServiceOrder) error {
	checks := []struct {
		name string
		find func() error
	}{
		{"client", func() error { _, err := r.clients.FindByID(ctx, order.ClientID); return err }},
		{"service", func() error { _, err := r.services.FindByID(ctx, order.ServiceID); return err }},
		{"technician", func() error { _, err := r.technicians.FindByID(ctx, order.TechnicianID); return err }},
	}
	for _, c := range checks {
		if err := c.find(); err != nil {
			return fmt.Errorf("insert order: %s: %w", c.name, apperrors.ErrReferenceNotFound)
		}
	}
	return nil
}
