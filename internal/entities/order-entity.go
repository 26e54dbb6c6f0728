package entities

import (
	"time"

	"github.com/aarondl/null/v8"

	"fiber-service/pkg/types"
)

// ServiceOrder - ордер на выезд техника (OS).
type ServiceOrder struct {
	ID            uint64     `json:"id"`
	OrderNumber   string     `json:"order_number"`
	ClientID      uint64     `json:"client_id"`
	ServiceID     uint64     `json:"service_id"`
	TechnicianID  uint64     `json:"technician_id"`
	ScheduledDate types.Date `json:"scheduled_date"`
	ScheduledTime string     `json:"scheduled_time"`
	Description   string     `json:"description"`
	Status        string     `json:"status"`
	Priority      string     `json:"priority"`
	EstimatedCost float64    `json:"estimated_cost"`
	EquipmentUsed []string   `json:"equipment_used"`
	SignalLevel   string     `json:"signal_level"`
	Observations  string     `json:"observations"`
	CTOReference  string     `json:"cto_reference"`

	// Заполняются только при переходе в COMPLETED
	CompletedAt          null.Time   `json:"completed_at"`
	FinalSignalLevel     null.String `json:"final_signal_level"`
	FinalEquipment       []string    `json:"final_equipment"`
	FinalObservations    null.String `json:"final_observations"`
	CustomerSatisfaction null.Int    `json:"customer_satisfaction"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (o ServiceOrder) GetID() uint64 { return o.ID }

func (o ServiceOrder) ScheduledOn() types.Date { return o.ScheduledDate }

// HasCompletionData - есть ли хоть одно поле завершения.
func (o ServiceOrder) HasCompletionData() bool {
	return o.CompletedAt.Valid || o.FinalSignalLevel.Valid || o.FinalObservations.Valid ||
		o.CustomerSatisfaction.Valid || len(o.FinalEquipment) > 0
}

// ScheduledAt склеивает дату и время визита. Время в неверном формате даёт полночь.
func (o ServiceOrder) ScheduledAt() time.Time {
	start := o.ScheduledDate.Time
	if t, err := time.Parse("15:04", o.ScheduledTime); err == nil {
		start = start.Add(time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute)
	}
	return start
}

// CompletionData - данные, фиксируемые при закрытии ордера.
type CompletionData struct {
	SignalLevel          string
	EquipmentUsed        []string
	Observations         string
	CustomerSatisfaction int
}

// OrderPatch - частичное обновление ордера. nil означает "не трогать".
type OrderPatch struct {
	Status               *string
	CompletedAt          *time.Time
	FinalSignalLevel     *string
	FinalEquipment       *[]string
	FinalObservations    *string
	CustomerSatisfaction *int
	UpdatedAt            *time.Time
}

func (p OrderPatch) IsEmpty() bool {
	return p.Status == nil && p.CompletedAt == nil && p.FinalSignalLevel == nil &&
		p.FinalEquipment == nil && p.FinalObservations == nil && p.CustomerSatisfaction == nil
}

// WithCompletion дописывает в патч поля завершения.
func (p OrderPatch) WithCompletion(data CompletionData, at time.Time) OrderPatch {
	equipment := append([]string{}, data.EquipmentUsed...)
	p.CompletedAt = &at
	p.FinalSignalLevel = &data.SignalLevel
	p.FinalEquipment = &equipment
	p.FinalObservations = &data.Observations
	p.CustomerSatisfaction = &data.CustomerSatisfaction
	return p
}

// Apply накладывает патч на копию ордера (используется хранилищем в памяти).
func (p OrderPatch) Apply(o ServiceOrder) ServiceOrder {
	if p.Status != nil {
		o.Status = *p.Status
	}
	if p.CompletedAt != nil {
		o.CompletedAt = null.TimeFrom(*p.CompletedAt)
	}
	if p.FinalSignalLevel != nil {
		o.FinalSignalLevel = null.StringFrom(*p.FinalSignalLevel)
	}
	if p.FinalEquipment != nil {
		o.FinalEquipment = append([]string{}, (*p.FinalEquipment)...)
	}
	if p.FinalObservations != nil {
		o.FinalObservations = null.StringFrom(*p.FinalObservations)
	}
	if p.CustomerSatisfaction != nil {
		o.CustomerSatisfaction = null.IntFrom(*p.CustomerSatisfaction)
	}
	if p.UpdatedAt != nil {
		o.UpdatedAt = *p.UpdatedAt
	}
	return o
}
