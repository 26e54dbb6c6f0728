package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"fiber-service/internal/entities"
)

// Store - единая точка доступа к хранилищу, передаётся в конструкторы сервисов.
type Store struct {
	Clients     ClientRepositoryInterface
	Services    ServiceRepositoryInterface
	Technicians TechnicianRepositoryInterface
	Equipment   EquipmentRepositoryInterface
	Orders      OrderRepositoryInterface
}

func NewPostgresStore(pool *pgxpool.Pool) *Store {
	return &Store{
		Clients:     NewClientRepository(pool),
		Services:    NewServiceRepository(pool),
		Technicians: NewTechnicianRepository(pool),
		Equipment:   NewEquipmentRepository(pool),
		Orders:      NewOrderRepository(pool),
	}
}

func NewMemoryStore() *Store {
	clients := NewMemoryClientRepository()
	services := NewMemoryServiceRepository()
	technicians := NewMemoryTechnicianRepository()
	return &Store{
		Clients:     clients,
		Services:    services,
		Technicians: technicians,
		Equipment:   NewMemoryEquipmentRepository(),
		Orders:      NewMemoryOrderRepository(clients, services, technicians),
	}
}

// WithCatalogCache оборачивает справочники кешем. Ордера не кешируются.
func (s *Store) WithCatalogCache(cache CacheRepositoryInterface, ttl time.Duration, logger *zap.Logger) *Store {
	return &Store{
		Clients:     NewCachedCatalogRepository(s.Clients, cache, "catalog:clients", ttl, logger),
		Services:    NewCachedCatalogRepository(s.Services, cache, "catalog:services", ttl, logger),
		Technicians: NewCachedCatalogRepository(s.Technicians, cache, "catalog:technicians", ttl, logger),
		Equipment:   NewCachedCatalogRepository(s.Equipment, cache, "catalog:equipment", ttl, logger),
		Orders:      s.Orders,
	}
}

// Snapshot - все коллекции, загруженные разом для обогащения и отчётов.
type Snapshot struct {
	Orders      []entities.ServiceOrder
	Clients     []entities.Client
	Services    []entities.Service
	Technicians []entities.Technician
	Equipment   []entities.Equipment
}

func (s *Store) Snapshot(ctx context.Context) (*Snapshot, error) {
	var (
		snap Snapshot
		err  error
	)
	if snap.Orders, err = s.Orders.List(ctx); err != nil {
		return nil, fmt.Errorf("загрузка ордеров: %w", err)
	}
	if snap.Clients, err = s.Clients.List(ctx); err != nil {
		return nil, fmt.Errorf("загрузка клиентов: %w", err)
	}
	if snap.Services, err = s.Services.List(ctx); err != nil {
		return nil, fmt.Errorf("загрузка услуг: %w", err)
	}
	if snap.Technicians, err = s.Technicians.List(ctx); err != nil {
		return nil, fmt.Errorf("загрузка техников: %w", err)
	}
	if snap.Equipment, err = s.Equipment.List(ctx); err != nil {
		return nil, fmt.Errorf("загрузка оборудования: %w", err)
	}
	return &snap, nil
}
