package services

import (
	"context"
	"sort"

	"go.uber.org/zap"

	"fiber-service/internal/entities"
	"fiber-service/internal/repositories"
	"fiber-service/pkg/constants"
	"fiber-service/pkg/types"
)

const upcomingLimit = 10

type DashboardServiceInterface interface {
	GetDashboard(ctx context.Context, today types.Date) (*entities.Dashboard, error)
}

type DashboardService struct {
	store  *repositories.Store
	logger *zap.Logger
}

func NewDashboardService(store *repositories.Store, logger *zap.Logger) DashboardServiceInterface {
	return &DashboardService{store: store, logger: logger}
}

func (s *DashboardService) GetDashboard(ctx context.Context, today types.Date) (*entities.Dashboard, error) {
	snap, err := s.store.Snapshot(ctx)
	if err != nil {
		s.logger.Error("Не удалось загрузить данные для дашборда", zap.Error(err))
		return nil, err
	}
	rows := Enrich(snap.Orders, snap.Clients, snap.Services, snap.Technicians)
	return BuildDashboard(rows, today), nil
}

// BuildDashboard считает KPI по всем ордерам. SLA не вычисляется, а берётся из констант.
func BuildDashboard(rows []entities.OrderRow, today types.Date) *entities.Dashboard {
	d := &entities.Dashboard{
		TotalOrders: len(rows),
		ByStatus:    make(map[string]int, len(constants.OrderStatuses)),
		ByPriority:  make(map[string]int, len(constants.Priorities)),
		Upcoming:    []entities.OrderRow{},
		SLA: entities.SLAMetrics{
			Compliance:           constants.SimulatedSLACompliance,
			AvgResolutionHours:   constants.SimulatedAvgResolutionHours,
			FirstVisitResolution: constants.SimulatedFirstVisitResolution,
			Simulated:            true,
		},
	}
	for _, code := range constants.OrderStatuses {
		d.ByStatus[code] = 0
	}
	for _, code := range constants.Priorities {
		d.ByPriority[code] = 0
	}

	for _, r := range rows {
		d.ByStatus[r.Status]++
		d.ByPriority[r.Priority]++

		if r.ScheduledDate.Equal(today) {
			d.ScheduledToday++
		}
		if r.Status == constants.StatusInField {
			d.InField++
		}
		if r.Status == constants.StatusCompleted && sameMonth(completionDay(r.ServiceOrder), today) {
			d.CompletedThisMonth++
			d.RevenueThisMonth += r.EstimatedCost
		}
		if !constants.IsFinalStatus(r.Status) && !r.ScheduledDate.Before(today) {
			d.Upcoming = append(d.Upcoming, r)
		}
	}

	sort.SliceStable(d.Upcoming, func(i, j int) bool {
		a, b := d.Upcoming[i].ScheduledAt(), d.Upcoming[j].ScheduledAt()
		if !a.Equal(b) {
			return a.Before(b)
		}
		return d.Upcoming[i].ID < d.Upcoming[j].ID
	})
	if len(d.Upcoming) > upcomingLimit {
		d.Upcoming = d.Upcoming[:upcomingLimit]
	}
	return d
}

// completionDay: дата закрытия, а если её нет - дата визита.
func completionDay(o entities.ServiceOrder) types.Date {
	if o.CompletedAt.Valid {
		return types.DateOf(o.CompletedAt.Time)
	}
	return o.ScheduledDate
}

func sameMonth(a, b types.Date) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}
