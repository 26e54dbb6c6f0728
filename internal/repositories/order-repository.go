package repositories

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"fiber-service/internal/entities"
	"fiber-service/pkg/types"
)

const orderTable = "service_orders"

var orderInsertColumns = []string{
	"order_number", "client_id", "service_id", "technician_id", "scheduled_date", "scheduled_time",
	"description", "status", "priority", "estimated_cost", "equipment_used", "signal_level",
	"observations", "cto_reference",
}

var orderSelectColumns = append([]string{"id"}, append(append([]string{}, orderInsertColumns...),
	"completed_at", "final_signal_level", "final_equipment", "final_observations", "customer_satisfaction",
	"created_at", "updated_at",
)...)

type OrderRepositoryInterface interface {
	List(ctx context.Context) ([]entities.ServiceOrder, error)
	FindByID(ctx context.Context, id uint64) (*entities.ServiceOrder, error)
	FindByNumber(ctx context.Context, number string) (*entities.ServiceOrder, error)
	Create(ctx context.Context, order entities.ServiceOrder) (*entities.ServiceOrder, error)
	Update(ctx context.Context, id uint64, patch entities.OrderPatch) (*entities.ServiceOrder, error)
	Delete(ctx context.Context, id uint64) (bool, error)
}

type OrderRepository struct {
	storage *pgxpool.Pool
}

func NewOrderRepository(storage *pgxpool.Pool) OrderRepositoryInterface {
	return &OrderRepository{storage: storage}
}

func scanOrder(s scanner) (entities.ServiceOrder, error) {
	var (
		o         entities.ServiceOrder
		scheduled time.Time
	)
	err := s.Scan(
		&o.ID, &o.OrderNumber, &o.ClientID, &o.ServiceID, &o.TechnicianID, &scheduled, &o.ScheduledTime,
		&o.Description, &o.Status, &o.Priority, &o.EstimatedCost, &o.EquipmentUsed, &o.SignalLevel,
		&o.Observations, &o.CTOReference,
		&o.CompletedAt, &o.FinalSignalLevel, &o.FinalEquipment, &o.FinalObservations, &o.CustomerSatisfaction,
		&o.CreatedAt, &o.UpdatedAt,
	)
	o.ScheduledDate = types.DateOf(scheduled)
	if o.EquipmentUsed == nil {
		o.EquipmentUsed = []string{}
	}
	return o, err
}

func orderSelect() sq.SelectBuilder {
	return psql.Select(orderSelectColumns...).From(orderTable)
}

func (r *OrderRepository) List(ctx context.Context) ([]entities.ServiceOrder, error) {
	query, args, err := orderSelect().OrderBy("scheduled_date DESC", "scheduled_time DESC", "id DESC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("ошибка сборки запроса списка ордеров: %w", err)
	}
	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, mapPgError(err, "list orders")
	}
	defer rows.Close()

	orders := make([]entities.ServiceOrder, 0)
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("ошибка сканирования ордера: %w", err)
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

func (r *OrderRepository) FindByID(ctx context.Context, id uint64) (*entities.ServiceOrder, error) {
	return r.findOne(ctx, sq.Eq{"id": id})
}

func (r *OrderRepository) FindByNumber(ctx context.Context, number string) (*entities.ServiceOrder, error) {
	return r.findOne(ctx, sq.Eq{"order_number": number})
}

func (r *OrderRepository) findOne(ctx context.Context, where sq.Eq) (*entities.ServiceOrder, error) {
	query, args, err := orderSelect().Where(where).Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("ошибка сборки запроса ордера: %w", err)
	}
	o, err := scanOrder(r.storage.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, mapPgError(err, "find order")
	}
	return &o, nil
}

func (r *OrderRepository) Create(ctx context.Context, order entities.ServiceOrder) (*entities.ServiceOrder, error) {
	query, args, err := buildOrderInsert(order)
	if err != nil {
		return nil, fmt.Errorf("ошибка сборки INSERT ордера: %w", err)
	}
	created, err := scanOrder(r.storage.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, mapPgError(err, "insert order")
	}
	return &created, nil
}

func (r *OrderRepository) Update(ctx context.Context, id uint64, patch entities.OrderPatch) (*entities.ServiceOrder, error) {
	query, args, err := buildOrderUpdate(id, patch, time.Now())
	if err != nil {
		return nil, fmt.Errorf("ошибка сборки UPDATE ордера: %w", err)
	}
	updated, err := scanOrder(r.storage.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, mapPgError(err, "update order")
	}
	return &updated, nil
}

func (r *OrderRepository) Delete(ctx context.Context, id uint64) (bool, error) {
	query, args, err := psql.Delete(orderTable).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return false, fmt.Errorf("ошибка сборки DELETE ордера: %w", err)
	}
	tag, err := r.storage.Exec(ctx, query, args...)
	if err != nil {
		return false, mapPgError(err, "delete order")
	}
	return tag.RowsAffected() > 0, nil
}

func buildOrderInsert(o entities.ServiceOrder) (string, []interface{}, error) {
	equipment := o.EquipmentUsed
	if equipment == nil {
		equipment = []string{}
	}
	return psql.Insert(orderTable).
		Columns(orderInsertColumns...).
		Values(
			o.OrderNumber, o.ClientID, o.ServiceID, o.TechnicianID, o.ScheduledDate.Time, o.ScheduledTime,
			o.Description, o.Status, o.Priority, o.EstimatedCost, equipment, o.SignalLevel,
			o.Observations, o.CTOReference,
		).
		Suffix("RETURNING " + strings.Join(orderSelectColumns, ", ")).
		ToSql()
}

// buildOrderUpdate собирает UPDATE только из заданных полей патча.
// Без блокировок: при гонке побеждает последняя запись.
func buildOrderUpdate(id uint64, patch entities.OrderPatch, now time.Time) (string, []interface{}, error) {
	builder := psql.Update(orderTable).Where(sq.Eq{"id": id})

	if patch.Status != nil {
		builder = builder.Set("status", *patch.Status)
	}
	if patch.CompletedAt != nil {
		builder = builder.Set("completed_at", *patch.CompletedAt)
	}
	if patch.FinalSignalLevel != nil {
		builder = builder.Set("final_signal_level", *patch.FinalSignalLevel)
	}
	if patch.FinalEquipment != nil {
		builder = builder.Set("final_equipment", *patch.FinalEquipment)
	}
	if patch.FinalObservations != nil {
		builder = builder.Set("final_observations", *patch.FinalObservations)
	}
	if patch.CustomerSatisfaction != nil {
		builder = builder.Set("customer_satisfaction", *patch.CustomerSatisfaction)
	}

	updatedAt := now
	if patch.UpdatedAt != nil {
		updatedAt = *patch.UpdatedAt
	}
	builder = builder.Set("updated_at", updatedAt)

	return builder.Suffix("RETURNING " + strings.Join(orderSelectColumns, ", ")).ToSql()
}
