package dto

import "github.com/aarondl/null/v8"

type CreateOrderDTO struct {
	ClientID      uint64   `json:"client_id" validate:"required,gt=0"`
	ServiceID     uint64   `json:"service_id" validate:"required,gt=0"`
	TechnicianID  uint64   `json:"technician_id" validate:"required,gt=0"`
	ScheduledDate string   `json:"scheduled_date" validate:"required,iso_date"`
	ScheduledTime string   `json:"scheduled_time" validate:"required,hhmm"`
	Description   string   `json:"description" validate:"required,max=2000"`
	Equipment     []string `json:"equipment,omitempty"`

	// Необязательные: если не переданы, берутся из каталога
	Priority     null.String  `json:"priority" validate:"omitempty,order_priority"`
	BaseCost     null.Float64 `json:"base_cost" validate:"omitempty,gte=0"`
	SignalLevel  null.String  `json:"signal_level" validate:"omitempty,max=50"`
	Observations null.String  `json:"observations" validate:"omitempty,max=2000"`
	CTOReference null.String  `json:"cto_reference" validate:"omitempty,max=50"`
}

type CompletionDTO struct {
	SignalLevel          string   `json:"signal_level" validate:"max=50"`
	EquipmentUsed        []string `json:"equipment_used"`
	Observations         string   `json:"observations" validate:"max=2000"`
	CustomerSatisfaction int      `json:"customer_satisfaction" validate:"omitempty,min=1,max=5"`
}

type UpdateStatusDTO struct {
	Status     string         `json:"status" validate:"required,order_status"`
	Completion *CompletionDTO `json:"completion,omitempty"`
}

// OrderFilterDTO - фильтры списка ордеров. Значения внутри поля объединяются по ИЛИ.
type OrderFilterDTO struct {
	Search       string
	Statuses     []string
	Priorities   []string
	ServiceTypes []string
	Regions      []string
}

type DeleteResultDTO struct {
	Deleted bool `json:"deleted"`
}
