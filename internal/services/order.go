package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"fiber-service/internal/dto"
	"fiber-service/internal/entities"
	"fiber-service/internal/events"
	"fiber-service/internal/repositories"
	"fiber-service/pkg/constants"
	apperrors "fiber-service/pkg/errors"
	"fiber-service/pkg/eventbus"
	"fiber-service/pkg/metrics"
	"fiber-service/pkg/types"
)

type OrderServiceInterface interface {
	CreateOrder(ctx context.Context, orderData dto.CreateOrderDTO) (*entities.ServiceOrder, error)
	UpdateStatus(ctx context.Context, id uint64, statusData dto.UpdateStatusDTO) (*entities.ServiceOrder, error)
	DeleteOrder(ctx context.Context, id uint64, confirm bool) (bool, error)
	ListOrders(ctx context.Context, filter dto.OrderFilterDTO) ([]entities.OrderRow, error)
	FindOrder(ctx context.Context, id uint64) (*entities.OrderRow, error)
	FindByNumber(ctx context.Context, number string) (*entities.OrderRow, error)
}

// EventPublisher - то, что нужно сервису от шины событий.
type EventPublisher interface {
	Publish(ctx context.Context, event eventbus.Event)
}

type OrderService struct {
	store     *repositories.Store
	publisher EventPublisher
	metrics   *metrics.Metrics
	logger    *zap.Logger
	now       func() time.Time
	newNumber func() string
}

type OrderServiceOption func(*OrderService)

// WithClock подменяет часы (для тестов).
func WithClock(now func() time.Time) OrderServiceOption {
	return func(s *OrderService) { s.now = now }
}

func WithNumberGenerator(gen func() string) OrderServiceOption {
	return func(s *OrderService) { s.newNumber = gen }
}

func NewOrderService(
	store *repositories.Store,
	publisher EventPublisher,
	m *metrics.Metrics,
	logger *zap.Logger,
	opts ...OrderServiceOption,
) OrderServiceInterface {
	s := &OrderService{
		store:     store,
		publisher: publisher,
		metrics:   m,
		logger:    logger,
		now:       time.Now,
		newNumber: GenerateOrderNumber,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GenerateOrderNumber: "OS" + первые 8 hex-символов случайного UUID в верхнем регистре.
// Коллизии не проверяются: их ловит уникальный индекс хранилища.
func GenerateOrderNumber() string {
	return "OS" + strings.ToUpper(uuid.NewString()[:8])
}

// EstimateCost = базовая стоимость + цены найденного оборудования.
// Ненайденные названия возвращаются отдельно и ничего не добавляют к сумме.
func EstimateCost(base float64, names []string, catalog []entities.Equipment) (float64, []string) {
	priceByName := make(map[string]float64, len(catalog))
	for _, e := range catalog {
		priceByName[e.Name] = e.UnitPrice
	}

	cost := base
	var unmatched []string
	for _, name := range names {
		price, ok := priceByName[name]
		if !ok {
			unmatched = append(unmatched, name)
			continue
		}
		cost += price
	}
	return cost, unmatched
}

func (s *OrderService) CreateOrder(ctx context.Context, orderData dto.CreateOrderDTO) (*entities.ServiceOrder, error) {
	description := strings.TrimSpace(orderData.Description)
	if description == "" {
		return nil, apperrors.NewInvalidInputError("описание обязательно")
	}
	scheduledDate, err := types.ParseDate(orderData.ScheduledDate)
	if err != nil {
		return nil, apperrors.NewInvalidInputError("%s", err.Error())
	}
	if err := s.ensureCatalogs(ctx); err != nil {
		return nil, err
	}

	service, err := s.store.Services.FindByID(ctx, orderData.ServiceID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewInvalidInputError("услуга %d не найдена", orderData.ServiceID)
		}
		return nil, fmt.Errorf("загрузка услуги: %w", err)
	}
	client, err := s.store.Clients.FindByID(ctx, orderData.ClientID)
	if err != nil {
		return nil, referenceError("клиент", orderData.ClientID, err)
	}
	technician, err := s.store.Technicians.FindByID(ctx, orderData.TechnicianID)
	if err != nil {
		return nil, referenceError("техник", orderData.TechnicianID, err)
	}

	base := service.BasePrice
	if orderData.BaseCost.Valid {
		base = orderData.BaseCost.Float64
	}
	priority := constants.DefaultPriorityFor(service.Category)
	if orderData.Priority.Valid {
		priority = orderData.Priority.String
	}
	cto := client.CTO
	if orderData.CTOReference.Valid && strings.TrimSpace(orderData.CTOReference.String) != "" {
		cto = strings.TrimSpace(orderData.CTOReference.String)
	}

	catalog, err := s.store.Equipment.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("загрузка оборудования: %w", err)
	}
	cost, unmatched := EstimateCost(base, orderData.Equipment, catalog)
	if len(unmatched) > 0 {
		s.logger.Debug("Оборудование не найдено в каталоге, цена не учтена", zap.Strings("names", unmatched))
	}

	order := entities.ServiceOrder{
		OrderNumber:   s.newNumber(),
		ClientID:      client.ID,
		ServiceID:     service.ID,
		TechnicianID:  technician.ID,
		ScheduledDate: scheduledDate,
		ScheduledTime: orderData.ScheduledTime,
		Description:   description,
		Status:        constants.StatusScheduled,
		Priority:      priority,
		EstimatedCost: cost,
		EquipmentUsed: append([]string{}, orderData.Equipment...),
		SignalLevel:   orderData.SignalLevel.String,
		Observations:  orderData.Observations.String,
		CTOReference:  cto,
	}

	created, err := s.store.Orders.Create(ctx, order)
	if err != nil {
		s.logger.Error("Ошибка при создании ордера", zap.String("order_number", order.OrderNumber), zap.Error(err))
		return nil, fmt.Errorf("не удалось создать ордер: %w", err)
	}

	s.metrics.OrdersCreated.Inc()
	s.logger.Info("Ордер успешно создан",
		zap.Uint64("id", created.ID),
		zap.String("order_number", created.OrderNumber),
		zap.Float64("estimated_cost", created.EstimatedCost),
	)

	s.publisher.Publish(ctx, events.OrderCreatedEvent{
		Order:      *created,
		Client:     *client,
		Service:    *service,
		Technician: *technician,
	})
	return created, nil
}

// ensureCatalogs: без клиентов, услуг или техников ордер создать не из чего.
func (s *OrderService) ensureCatalogs(ctx context.Context) error {
	checks := []struct {
		name  string
		count func(context.Context) (int, error)
	}{
		{"клиенты", s.store.Clients.Count},
		{"услуги", s.store.Services.Count},
		{"техники", s.store.Technicians.Count},
	}
	for _, c := range checks {
		n, err := c.count(ctx)
		if err != nil {
			return fmt.Errorf("проверка справочника %s: %w", c.name, err)
		}
		if n == 0 {
			return fmt.Errorf("%s: %w", c.name, apperrors.ErrEmptyCatalog)
		}
	}
	return nil
}

func referenceError(what string, id uint64, err error) error {
	if errors.Is(err, apperrors.ErrNotFound) {
		return fmt.Errorf("%s %d: %w", what, id, apperrors.ErrReferenceNotFound)
	}
	return fmt.Errorf("загрузка: %s %d: %w", what, id, err)
}

func (s *OrderService) UpdateStatus(ctx context.Context, id uint64, statusData dto.UpdateStatusDTO) (*entities.ServiceOrder, error) {
	if !constants.IsValidStatus(statusData.Status) {
		return nil, apperrors.NewInvalidInputError("неизвестный статус %q", statusData.Status)
	}

	current, err := s.store.Orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !constants.CanTransition(current.Status, statusData.Status) {
		return nil, apperrors.NewInvalidInputError("переход %s -> %s запрещён", current.Status, statusData.Status)
	}

	now := s.now()
	status := statusData.Status
	patch := entities.OrderPatch{Status: &status, UpdatedAt: &now}

	// Данные завершения учитываются только при переходе в COMPLETED,
	// в остальных случаях уже сохранённые поля не трогаются.
	if status == constants.StatusCompleted && statusData.Completion != nil {
		c := statusData.Completion
		if c.CustomerSatisfaction < 1 || c.CustomerSatisfaction > 5 {
			return nil, apperrors.NewInvalidInputError("оценка клиента должна быть от 1 до 5, получено %d", c.CustomerSatisfaction)
		}
		patch = patch.WithCompletion(entities.CompletionData{
			SignalLevel:          c.SignalLevel,
			EquipmentUsed:        c.EquipmentUsed,
			Observations:         c.Observations,
			CustomerSatisfaction: c.CustomerSatisfaction,
		}, now)
	}

	updated, err := s.store.Orders.Update(ctx, id, patch)
	if err != nil {
		s.logger.Error("Ошибка при смене статуса ордера", zap.Uint64("id", id), zap.Error(err))
		return nil, fmt.Errorf("не удалось обновить ордер %d: %w", id, err)
	}

	s.metrics.OrderStatusChanges.WithLabelValues(status).Inc()
	s.logger.Info("Статус ордера изменён",
		zap.String("order_number", updated.OrderNumber),
		zap.String("from", current.Status),
		zap.String("to", status),
	)
	return updated, nil
}

func (s *OrderService) DeleteOrder(ctx context.Context, id uint64, confirm bool) (bool, error) {
	if !confirm {
		return false, fmt.Errorf("удаление ордера %d: %w", id, apperrors.ErrConfirmationRequired)
	}
	removed, err := s.store.Orders.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("не удалось удалить ордер %d: %w", id, err)
	}
	if removed {
		s.logger.Info("Ордер удалён", zap.Uint64("id", id))
	}
	return removed, nil
}

func (s *OrderService) ListOrders(ctx context.Context, filter dto.OrderFilterDTO) ([]entities.OrderRow, error) {
	rows, err := s.enrichedOrders(ctx)
	if err != nil {
		return nil, err
	}
	return FilterOrders(rows, filter), nil
}

func (s *OrderService) FindOrder(ctx context.Context, id uint64) (*entities.OrderRow, error) {
	return s.findOne(ctx, MatchID(id))
}

func (s *OrderService) FindByNumber(ctx context.Context, number string) (*entities.OrderRow, error) {
	return s.findOne(ctx, MatchNumber(number))
}

func (s *OrderService) findOne(ctx context.Context, match func(entities.OrderRow) bool) (*entities.OrderRow, error) {
	rows, err := s.enrichedOrders(ctx)
	if err != nil {
		return nil, err
	}
	found := Query(rows, match)
	if len(found) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &found[0], nil
}

func (s *OrderService) enrichedOrders(ctx context.Context) ([]entities.OrderRow, error) {
	snap, err := s.store.Snapshot(ctx)
	if err != nil {
		s.logger.Error("Не удалось загрузить ордера", zap.Error(err))
		return nil, err
	}
	return Enrich(snap.Orders, snap.Clients, snap.Services, snap.Technicians), nil
}
