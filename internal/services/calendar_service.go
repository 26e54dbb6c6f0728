package services

import (
	"context"
	"sort"
	"time"

	"go.uber.org/zap"

	"fiber-service/internal/entities"
	"fiber-service/internal/repositories"
	apperrors "fiber-service/pkg/errors"
	"fiber-service/pkg/types"
)

const (
	GroupByNone        = "none"
	GroupByTechnician  = "technician"
	GroupByRegion      = "region"
	GroupByServiceType = "service_type"
)

var groupKeys = map[string]func(entities.OrderRow) string{
	GroupByTechnician:  func(r entities.OrderRow) string { return r.TechnicianName },
	GroupByRegion:      func(r entities.OrderRow) string { return r.TechnicianRegion },
	GroupByServiceType: func(r entities.OrderRow) string { return r.ServiceCategory },
}

type CalendarServiceInterface interface {
	GetMonth(ctx context.Context, year, month int, groupBy string) (*entities.CalendarMonth, error)
}

type CalendarService struct {
	store  *repositories.Store
	logger *zap.Logger
}

func NewCalendarService(store *repositories.Store, logger *zap.Logger) CalendarServiceInterface {
	return &CalendarService{store: store, logger: logger}
}

func (s *CalendarService) GetMonth(ctx context.Context, year, month int, groupBy string) (*entities.CalendarMonth, error) {
	if month < 1 || month > 12 {
		return nil, apperrors.NewInvalidInputError("месяц должен быть от 1 до 12, получено %d", month)
	}
	if year < 1 || year > 9999 {
		return nil, apperrors.NewInvalidInputError("неверный год %d", year)
	}
	if groupBy == "" {
		groupBy = GroupByNone
	}
	if _, ok := groupKeys[groupBy]; !ok && groupBy != GroupByNone {
		return nil, apperrors.NewInvalidInputError("неизвестная группировка %q", groupBy)
	}

	snap, err := s.store.Snapshot(ctx)
	if err != nil {
		s.logger.Error("Не удалось загрузить данные календаря", zap.Error(err))
		return nil, err
	}
	rows := Enrich(snap.Orders, snap.Clients, snap.Services, snap.Technicians)
	return BuildCalendarMonth(rows, year, time.Month(month), groupBy), nil
}

// BuildCalendarMonth раскладывает ордера по дням месяца. Пустые дни тоже попадают в сетку.
func BuildCalendarMonth(rows []entities.OrderRow, year int, month time.Month, groupBy string) *entities.CalendarMonth {
	first := types.NewDate(year, month, 1)
	last := types.DateOf(first.AddDate(0, 1, -1))

	inMonth := FilterByPeriod(rows, first, last)
	byDay := make(map[types.Date][]entities.OrderRow)
	for _, r := range inMonth {
		byDay[r.ScheduledOn()] = append(byDay[r.ScheduledOn()], r)
	}

	key := groupKeys[groupBy]
	cal := &entities.CalendarMonth{Year: year, Month: int(month), GroupBy: groupBy}
	for day := first; !day.After(last); day = day.AddDays(1) {
		orders := byDay[day]
		if orders == nil {
			orders = []entities.OrderRow{}
		}
		sort.SliceStable(orders, func(i, j int) bool {
			if orders[i].ScheduledTime != orders[j].ScheduledTime {
				return orders[i].ScheduledTime < orders[j].ScheduledTime
			}
			return orders[i].ID < orders[j].ID
		})

		cd := entities.CalendarDay{Date: day, Orders: orders}
		if key != nil {
			cd.Groups = make(map[string]int)
			for _, o := range orders {
				cd.Groups[key(o)]++
			}
		}
		cal.Days = append(cal.Days, cd)
	}
	return cal
}
