// Package calendar - интеграция с внешним календарём техников.
package calendar

import (
	"context"
	"time"
)

type CalendarEvent struct {
	OrderNumber string    `json:"order_number"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Start       time.Time `json:"start"`
	Duration    int       `json:"duration"` // часы
	Attendees   []string  `json:"attendees"`
}

func (e CalendarEvent) End() time.Time {
	return e.Start.Add(time.Duration(e.Duration) * time.Hour)
}

type CalendarResult struct {
	Success bool   `json:"success"`
	EventID string `json:"event_id"`
}

// Provider создаёт событие во внешнем календаре.
type Provider interface {
	Name() string
	CreateEvent(ctx context.Context, event CalendarEvent) (CalendarResult, error)
}
