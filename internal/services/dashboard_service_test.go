package services

import (
	"context"
	"testing"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"fiber-service/internal/entities"
	"fiber-service/pkg/types"
)

func dashRow(id uint64, day int, clock, status, priority string, cost float64) entities.OrderRow {
	return entities.OrderRow{ServiceOrder: entities.ServiceOrder{
		ID: id, ScheduledDate: types.NewDate(2024, 1, day), ScheduledTime: clock,
		Status: status, Priority: priority, EstimatedCost: cost,
	}}
}

func TestBuildDashboard(t *testing.T) {
	today := types.NewDate(2024, 1, 15)
	rows := []entities.OrderRow{
		dashRow(1, 15, "10:00", "SCHEDULED", "HIGH", 150),
		dashRow(2, 15, "08:00", "IN_FIELD", "NORMAL", 80),
		dashRow(3, 10, "08:00", "COMPLETED", "NORMAL", 200),
		dashRow(4, 20, "08:00", "CANCELLED", "LOW", 0),
		dashRow(5, 14, "08:00", "SCHEDULED", "URGENT", 0),
		dashRow(6, 18, "09:00", "AWAITING_PARTS", "NORMAL", 0),
	}
	// Закрыт в прошлом месяце: в выручку месяца не попадает.
	old := dashRow(7, 2, "08:00", "COMPLETED", "NORMAL", 500)
	old.CompletedAt = null.TimeFrom(time.Date(2023, 12, 30, 12, 0, 0, 0, time.UTC))
	rows = append(rows, old)

	d := BuildDashboard(rows, today)

	assert.Equal(t, 7, d.TotalOrders)
	assert.Equal(t, 2, d.ScheduledToday)
	assert.Equal(t, 1, d.InField)
	assert.Equal(t, 1, d.CompletedThisMonth)
	assert.InDelta(t, 200.0, d.RevenueThisMonth, 1e-9)
	assert.Equal(t, 2, d.ByStatus["COMPLETED"])
	assert.Equal(t, 4, d.ByPriority["NORMAL"])
	assert.Equal(t, 1, d.ByPriority["LOW"])
	assert.Equal(t, 1, d.ByPriority["URGENT"])

	assert.Equal(t, []uint64{2, 1, 6}, ids(d.Upcoming), "только незавершённые с сегодняшнего дня, по времени")

	assert.True(t, d.SLA.Simulated)
	assert.InDelta(t, 94.5, d.SLA.Compliance, 1e-9)
	assert.InDelta(t, 4.2, d.SLA.AvgResolutionHours, 1e-9)
	assert.InDelta(t, 87.3, d.SLA.FirstVisitResolution, 1e-9)
}

func TestBuildDashboard_UpcomingLimit(t *testing.T) {
	var rows []entities.OrderRow
	for i := 1; i <= 15; i++ {
		rows = append(rows, dashRow(uint64(i), 16+i%5, "08:00", "SCHEDULED", "NORMAL", 0))
	}
	d := BuildDashboard(rows, types.NewDate(2024, 1, 15))
	assert.Len(t, d.Upcoming, 10)
	assert.Equal(t, 0, d.ByStatus["CANCELLED"], "все статусы присутствуют в карте")
	_, ok := d.ByStatus["CANCELLED"]
	assert.True(t, ok)
}

func TestDashboardService_GetDashboard(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.service.CreateOrder(ctx, f.createDTO(f.repair.ID, f.ana.ID, "2024-01-15"))
	require.NoError(t, err)

	d, err := NewDashboardService(f.store, zap.NewNop()).GetDashboard(ctx, types.NewDate(2024, 1, 15))
	require.NoError(t, err)
	assert.Equal(t, 1, d.TotalOrders)
	assert.Equal(t, 1, d.ScheduledToday)
	require.Len(t, d.Upcoming, 1)
	assert.Equal(t, "João Silva", d.Upcoming[0].ClientName)
}
