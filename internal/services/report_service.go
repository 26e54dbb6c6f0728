package services

import (
	"context"
	"sort"

	"go.uber.org/zap"

	"fiber-service/internal/entities"
	"fiber-service/internal/repositories"
	"fiber-service/pkg/constants"
	apperrors "fiber-service/pkg/errors"
	"fiber-service/pkg/types"
)

type ReportServiceInterface interface {
	BuildReport(ctx context.Context, start, end types.Date) (*entities.PeriodReport, error)
}

type ReportService struct {
	store  *repositories.Store
	logger *zap.Logger
}

func NewReportService(store *repositories.Store, logger *zap.Logger) ReportServiceInterface {
	return &ReportService{store: store, logger: logger}
}

func (s *ReportService) BuildReport(ctx context.Context, start, end types.Date) (*entities.PeriodReport, error) {
	if start.After(end) {
		return nil, apperrors.NewInvalidInputError("дата начала %s позже даты окончания %s", start, end)
	}

	snap, err := s.store.Snapshot(ctx)
	if err != nil {
		s.logger.Error("Не удалось загрузить данные для отчёта", zap.Error(err))
		return nil, err
	}

	orders := FilterByPeriod(snap.Orders, start, end)
	report := &entities.PeriodReport{
		StartDate:    start,
		EndDate:      end,
		Summary:      Summarize(orders),
		ByService:    AggregateByServiceType(orders, snap.Services),
		ByTechnician: AggregateByTechnician(orders, snap.Technicians, snap.Services),
		ByRegion:     AggregateByRegion(orders, snap.Technicians, snap.Services),
		ByDay:        AggregateByDay(orders),
	}

	s.logger.Debug("Отчёт сформирован",
		zap.Stringer("start", start),
		zap.Stringer("end", end),
		zap.Int("orders", report.Summary.TotalOrders),
	)
	return report, nil
}

// indexByID строит справочник id -> сущность.
func indexByID[T interface{ GetID() uint64 }](items []T) map[uint64]T {
	out := make(map[uint64]T, len(items))
	for _, item := range items {
		out[item.GetID()] = item
	}
	return out
}

// Enrich подставляет в ордера имена из справочников.
// Для отсутствующих ссылок (имя, категория, регион) пишется "N/A".
func Enrich(orders []entities.ServiceOrder, clients []entities.Client, services []entities.Service, technicians []entities.Technician) []entities.OrderRow {
	clientByID := indexByID(clients)
	serviceByID := indexByID(services)
	techByID := indexByID(technicians)

	rows := make([]entities.OrderRow, 0, len(orders))
	for _, o := range orders {
		row := entities.OrderRow{
			ServiceOrder:     o,
			ClientName:       constants.NotAvailable,
			ServiceName:      constants.NotAvailable,
			ServiceCategory:  constants.NotAvailable,
			TechnicianName:   constants.NotAvailable,
			TechnicianRegion: constants.NotAvailable,
			StatusLabel:      constants.StatusLabel(o.Status),
			PriorityLabel:    constants.PriorityLabel(o.Priority),
		}
		if c, ok := clientByID[o.ClientID]; ok {
			row.ClientName = c.Name
			row.ClientPhone = c.Phone
			row.ClientAddress = c.Address
			row.ClientEmail = c.Email
		}
		if svc, ok := serviceByID[o.ServiceID]; ok {
			row.ServiceName = svc.Name
			row.ServiceCategory = svc.Category
		}
		if t, ok := techByID[o.TechnicianID]; ok {
			row.TechnicianName = t.Name
			row.TechnicianRegion = t.Region
		}
		rows = append(rows, row)
	}
	return rows
}

type scheduled interface {
	ScheduledOn() types.Date
}

// FilterByPeriod оставляет ордера с датой визита в [start, end] включительно.
// Работает и с ServiceOrder, и с OrderRow.
func FilterByPeriod[T scheduled](orders []T, start, end types.Date) []T {
	return Query(orders, func(o T) bool { return o.ScheduledOn().Between(start, end) })
}

func categoryOf(serviceByID map[uint64]entities.Service, serviceID uint64) string {
	if svc, ok := serviceByID[serviceID]; ok {
		return svc.Category
	}
	return constants.CategoryOther
}

func percent(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}

func AggregateByServiceType(orders []entities.ServiceOrder, services []entities.Service) []entities.ServiceTypeReport {
	serviceByID := indexByID(services)
	groups := make(map[string]*entities.ServiceTypeReport)

	for _, o := range orders {
		category := categoryOf(serviceByID, o.ServiceID)
		g, ok := groups[category]
		if !ok {
			g = &entities.ServiceTypeReport{Category: category}
			groups[category] = g
		}
		g.Total++
		switch {
		case o.Status == constants.StatusCompleted:
			g.Completed++
			g.Revenue += o.EstimatedCost
		case constants.IsPendingStatus(o.Status):
			g.Pending++
		}
	}

	out := make([]entities.ServiceTypeReport, 0, len(groups))
	for _, g := range groups {
		g.CompletionRate = percent(g.Completed, g.Total)
		out = append(out, *g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Category < out[j].Category })
	return out
}

func AggregateByTechnician(orders []entities.ServiceOrder, technicians []entities.Technician, services []entities.Service) []entities.TechnicianReport {
	techByID := indexByID(technicians)
	serviceByID := indexByID(services)
	groups := make(map[uint64]*entities.TechnicianReport)

	for _, o := range orders {
		g, ok := groups[o.TechnicianID]
		if !ok {
			g = &entities.TechnicianReport{TechnicianID: o.TechnicianID, Name: constants.NotAvailable, Region: constants.NotAvailable}
			if t, found := techByID[o.TechnicianID]; found {
				g.Name, g.Region = t.Name, t.Region
			}
			groups[o.TechnicianID] = g
		}
		g.Total++
		if o.Status == constants.StatusCompleted {
			g.Completed++
			g.Revenue += o.EstimatedCost
		}
		switch categoryOf(serviceByID, o.ServiceID) {
		case constants.CategoryInstallation:
			g.Installations++
		case constants.CategoryRepair:
			g.Repairs++
		}
	}

	out := make([]entities.TechnicianReport, 0, len(groups))
	for _, g := range groups {
		g.CompletionRate = percent(g.Completed, g.Total)
		if g.Completed > 0 {
			g.AverageRevenue = g.Revenue / float64(g.Completed)
		}
		out = append(out, *g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TechnicianID < out[j].TechnicianID })
	return out
}

func AggregateByRegion(orders []entities.ServiceOrder, technicians []entities.Technician, services []entities.Service) []entities.RegionReport {
	techByID := indexByID(technicians)
	serviceByID := indexByID(services)
	groups := make(map[string]*entities.RegionReport)

	for _, o := range orders {
		region := constants.NotAvailable
		if t, ok := techByID[o.TechnicianID]; ok {
			region = t.Region
		}
		g, ok := groups[region]
		if !ok {
			g = &entities.RegionReport{Region: region}
			groups[region] = g
		}
		g.Total++
		switch categoryOf(serviceByID, o.ServiceID) {
		case constants.CategoryInstallation:
			g.Installations++
		case constants.CategoryRepair:
			g.Repairs++
		default:
			g.Other++
		}
	}

	out := make([]entities.RegionReport, 0, len(groups))
	for _, g := range groups {
		out = append(out, *g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Region < out[j].Region })
	return out
}

func AggregateByDay(orders []entities.ServiceOrder) []entities.DayCount {
	counts := make(map[types.Date]int)
	for _, o := range orders {
		counts[o.ScheduledOn()]++
	}
	out := make([]entities.DayCount, 0, len(counts))
	for day, n := range counts {
		out = append(out, entities.DayCount{Date: day, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}

// Summarize: выручка и средний чек считаются только по завершённым ордерам,
// средняя оценка - по ордерам, где она есть.
func Summarize(orders []entities.ServiceOrder) entities.PeriodSummary {
	var (
		sum           entities.PeriodSummary
		ratings, rate int
	)
	sum.TotalOrders = len(orders)
	for _, o := range orders {
		if o.Status == constants.StatusCompleted {
			sum.CompletedOrders++
			sum.Revenue += o.EstimatedCost
		}
		if o.CustomerSatisfaction.Valid {
			ratings++
			rate += o.CustomerSatisfaction.Int
		}
	}
	sum.CompletionRate = percent(sum.CompletedOrders, sum.TotalOrders)
	if sum.CompletedOrders > 0 {
		sum.AverageTicket = sum.Revenue / float64(sum.CompletedOrders)
	}
	if ratings > 0 {
		sum.AverageSatisfaction = float64(rate) / float64(ratings)
	}
	return sum
}
