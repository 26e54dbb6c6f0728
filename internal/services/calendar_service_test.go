package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"fiber-service/internal/entities"
	apperrors "fiber-service/pkg/errors"
	"fiber-service/pkg/types"
)

func calendarRows() []entities.OrderRow {
	row := func(id uint64, month, day int, clock, tech, region, category string) entities.OrderRow {
		return entities.OrderRow{
			ServiceOrder: entities.ServiceOrder{
				ID: id, ScheduledDate: types.NewDate(2024, time.Month(month), day), ScheduledTime: clock,
			},
			TechnicianName: tech, TechnicianRegion: region, ServiceCategory: category,
		}
	}
	return []entities.OrderRow{
		row(1, 2, 10, "14:00", "Ana Conecta", "Centro", "Repair"),
		row(2, 2, 10, "08:00", "Carlos Fibra", "Zona Sul", "Installation"),
		row(3, 2, 10, "09:30", "Ana Conecta", "Centro", "Repair"),
		row(4, 2, 29, "08:00", "Ana Conecta", "Centro", "Diagnostic"),
		row(5, 3, 1, "08:00", "Ana Conecta", "Centro", "Repair"),
	}
}

func TestBuildCalendarMonth(t *testing.T) {
	cal := BuildCalendarMonth(calendarRows(), 2024, 2, GroupByNone)

	require.Len(t, cal.Days, 29, "2024 - високосный год")
	assert.Equal(t, "2024-02-01", cal.Days[0].Date.String())
	assert.Empty(t, cal.Days[0].Orders)
	assert.Nil(t, cal.Days[0].Groups)

	tenth := cal.Days[9]
	assert.Equal(t, []uint64{2, 3, 1}, ids(tenth.Orders), "по времени визита")
	assert.Len(t, cal.Days[28].Orders, 1)
}

func TestBuildCalendarMonth_Grouping(t *testing.T) {
	byTech := BuildCalendarMonth(calendarRows(), 2024, 2, GroupByTechnician)
	assert.Equal(t, map[string]int{"Ana Conecta": 2, "Carlos Fibra": 1}, byTech.Days[9].Groups)
	assert.Empty(t, byTech.Days[0].Groups)

	byType := BuildCalendarMonth(calendarRows(), 2024, 2, GroupByServiceType)
	assert.Equal(t, map[string]int{"Repair": 2, "Installation": 1}, byType.Days[9].Groups)

	byRegion := BuildCalendarMonth(calendarRows(), 2024, 2, GroupByRegion)
	assert.Equal(t, map[string]int{"Centro": 1}, byRegion.Days[28].Groups)
}

func TestCalendarService_GetMonth(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	svc := NewCalendarService(f.store, zap.NewNop())

	_, err := f.service.CreateOrder(ctx, f.createDTO(f.repair.ID, f.ana.ID, "2024-01-31"))
	require.NoError(t, err)

	cal, err := svc.GetMonth(ctx, 2024, 1, "")
	require.NoError(t, err)
	assert.Equal(t, GroupByNone, cal.GroupBy)
	require.Len(t, cal.Days, 31)
	require.Len(t, cal.Days[30].Orders, 1)
	assert.Equal(t, "Ana Conecta", cal.Days[30].Orders[0].TechnicianName)

	_, err = svc.GetMonth(ctx, 2024, 13, GroupByNone)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	_, err = svc.GetMonth(ctx, 2024, 0, GroupByNone)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	_, err = svc.GetMonth(ctx, 2024, 1, "client")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}
