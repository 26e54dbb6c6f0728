package entities

import "fiber-service/pkg/types"

// OrderRow - ордер, обогащённый именами клиента, услуги и техника.
// Основа для фильтров, отчётов и календаря.
type OrderRow struct {
	ServiceOrder

	ClientName       string `json:"client_name"`
	ClientPhone      string `json:"client_phone"`
	ClientAddress    string `json:"client_address"`
	ClientEmail      string `json:"client_email"`
	ServiceName      string `json:"service_name"`
	ServiceCategory  string `json:"service_category"`
	TechnicianName   string `json:"technician_name"`
	TechnicianRegion string `json:"technician_region"`
	StatusLabel      string `json:"status_label"`
	PriorityLabel    string `json:"priority_label"`
}

type ServiceTypeReport struct {
	Category       string  `json:"category"`
	Total          int     `json:"total"`
	Completed      int     `json:"completed"`
	Pending        int     `json:"pending"`
	Revenue        float64 `json:"revenue"`
	CompletionRate float64 `json:"completion_rate"`
}

type TechnicianReport struct {
	TechnicianID   uint64  `json:"technician_id"`
	Name           string  `json:"name"`
	Region         string  `json:"region"`
	Total          int     `json:"total"`
	Completed      int     `json:"completed"`
	Revenue        float64 `json:"revenue"`
	Installations  int     `json:"installations"`
	Repairs        int     `json:"repairs"`
	CompletionRate float64 `json:"completion_rate"`
	AverageRevenue float64 `json:"average_revenue"`
}

type RegionReport struct {
	Region        string `json:"region"`
	Total         int    `json:"total"`
	Installations int    `json:"installations"`
	Repairs       int    `json:"repairs"`
	Other         int    `json:"other"`
}

type DayCount struct {
	Date  types.Date `json:"date"`
	Count int        `json:"count"`
}

type PeriodSummary struct {
	TotalOrders         int     `json:"total_orders"`
	CompletedOrders     int     `json:"completed_orders"`
	CompletionRate      float64 `json:"completion_rate"`
	Revenue             float64 `json:"revenue"`
	AverageTicket       float64 `json:"average_ticket"`
	AverageSatisfaction float64 `json:"average_satisfaction"`
}

type PeriodReport struct {
	StartDate    types.Date          `json:"start_date"`
	EndDate      types.Date          `json:"end_date"`
	Summary      PeriodSummary       `json:"summary"`
	ByService    []ServiceTypeReport `json:"by_service_type"`
	ByTechnician []TechnicianReport  `json:"by_technician"`
	ByRegion     []RegionReport      `json:"by_region"`
	ByDay        []DayCount          `json:"by_day"`
}

type SLAMetrics struct {
	Compliance           float64 `json:"compliance"`
	AvgResolutionHours   float64 `json:"avg_resolution_hours"`
	FirstVisitResolution float64 `json:"first_visit_resolution"`
	Simulated            bool    `json:"simulated"`
}

type Dashboard struct {
	TotalOrders        int            `json:"total_orders"`
	ScheduledToday     int            `json:"scheduled_today"`
	InField            int            `json:"in_field"`
	CompletedThisMonth int            `json:"completed_this_month"`
	RevenueThisMonth   float64        `json:"revenue_this_month"`
	ByStatus           map[string]int `json:"by_status"`
	ByPriority         map[string]int `json:"by_priority"`
	Upcoming           []OrderRow     `json:"upcoming"`
	SLA                SLAMetrics     `json:"sla"`
}

type CalendarDay struct {
	Date   types.Date     `json:"date"`
	Orders []OrderRow     `json:"orders"`
	Groups map[string]int `json:"groups,omitempty"`
}

type CalendarMonth struct {
	Year    int           `json:"year"`
	Month   int           `json:"month"`
	GroupBy string        `json:"group_by"`
	Days    []CalendarDay `json:"days"`
}
