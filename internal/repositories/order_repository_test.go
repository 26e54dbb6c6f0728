package repositories

import (
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fiber-service/internal/entities"
	apperrors "fiber-service/pkg/errors"
	"fiber-service/pkg/types"
)

func TestBuildOrderUpdate_OnlyPatchedColumns(t *testing.T) {
	status := "IN_FIELD"
	now := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)

	sql, args, err := buildOrderUpdate(7, entities.OrderPatch{Status: &status}, now)
	require.NoError(t, err)

	assert.Contains(t, sql, "UPDATE service_orders SET status = $1, updated_at = $2 WHERE id = $3")
	assert.Contains(t, sql, "RETURNING id, order_number")
	assert.NotContains(t, sql, "customer_satisfaction =")
	assert.Equal(t, []interface{}{"IN_FIELD", now, uint64(7)}, args)
}

func TestBuildOrderUpdate_Completion(t *testing.T) {
	status := "COMPLETED"
	at := time.Date(2024, 1, 15, 16, 0, 0, 0, time.UTC)
	patch := entities.OrderPatch{Status: &status}.WithCompletion(entities.CompletionData{
		SignalLevel:          "-15.5",
		EquipmentUsed:        []string{"ONT"},
		Observations:         "ok",
		CustomerSatisfaction: 5,
	}, at)

	sql, args, err := buildOrderUpdate(1, patch, at)
	require.NoError(t, err)

	for _, col := range []string{"completed_at", "final_signal_level", "final_equipment", "final_observations", "customer_satisfaction"} {
		assert.Contains(t, sql, col+" = $")
	}
	assert.Contains(t, args, 5)
	assert.Contains(t, args, "-15.5")
}

func TestBuildOrderInsert(t *testing.T) {
	o := entities.ServiceOrder{
		OrderNumber:   "OS1A2B3C4D",
		ClientID:      1,
		ServiceID:     3,
		TechnicianID:  2,
		ScheduledDate: types.NewDate(2024, 1, 15),
		ScheduledTime: "08:00",
		Description:   "Cabo rompido",
		Status:        "SCHEDULED",
		Priority:      "HIGH",
		EstimatedCost: 230,
	}

	sql, args, err := buildOrderInsert(o)
	require.NoError(t, err)

	assert.Contains(t, sql, "INSERT INTO service_orders (order_number,client_id,service_id,technician_id")
	assert.Contains(t, sql, "$14")
	require.Len(t, args, 14)
	assert.Equal(t, "OS1A2B3C4D", args[0])
	assert.Equal(t, []string{}, args[10], "nil список оборудования пишется как пустой массив")
}

func TestCatalogTable_InsertBuilder(t *testing.T) {
	sql, args, err := equipmentTable.insertBuilder(entities.Equipment{Name: "Splitter 1x8", Type: "Splitter", UnitPrice: 25}).ToSql()
	require.NoError(t, err)

	assert.Equal(t, "INSERT INTO equipment (name,type,unit_price) VALUES ($1,$2,$3) RETURNING id, name, type, unit_price, created_at", sql)
	assert.Equal(t, []interface{}{"Splitter 1x8", "Splitter", 25.0}, args)
}

func TestMapPgError(t *testing.T) {
	assert.Nil(t, mapPgError(nil, "op"))
	assert.ErrorIs(t, mapPgError(pgx.ErrNoRows, "find"), apperrors.ErrNotFound)
	assert.ErrorIs(t, mapPgError(&pgconn.PgError{Code: pgUniqueViolation}, "insert"), apperrors.ErrConflict)
	assert.ErrorIs(t, mapPgError(&pgconn.PgError{Code: pgForeignKeyViolation}, "insert"), apperrors.ErrReferenceNotFound)

	other := errors.New("connection reset")
	assert.ErrorIs(t, mapPgError(other, "list"), other)
}
