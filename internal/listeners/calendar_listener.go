package listeners

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"fiber-service/internal/events"
	"fiber-service/internal/integrations/calendar"
	"fiber-service/pkg/constants"
	"fiber-service/pkg/eventbus"
	"fiber-service/pkg/metrics"
)

const defaultEventDurationHours = 2

type CalendarListener struct {
	provider calendar.Provider
	metrics  *metrics.Metrics
	logger   *zap.Logger
}

func NewCalendarListener(provider calendar.Provider, m *metrics.Metrics, logger *zap.Logger) *CalendarListener {
	return &CalendarListener{provider: provider, metrics: m, logger: logger}
}

func (l *CalendarListener) Register(bus *eventbus.Bus) {
	bus.Subscribe(events.OrderCreatedEventName, l.handleOrderCreated)
	l.logger.Info("CalendarListener подписан на событие", zap.String("event", events.OrderCreatedEventName))
}

// handleOrderCreated не влияет на сам ордер: ошибка календаря только логируется шиной.
func (l *CalendarListener) handleOrderCreated(ctx context.Context, e eventbus.Event) error {
	created, ok := e.(events.OrderCreatedEvent)
	if !ok {
		return fmt.Errorf("неожиданный тип события %T", e)
	}

	event := BuildCalendarEvent(created)
	result, err := l.provider.CreateEvent(ctx, event)
	if err != nil || !result.Success {
		l.metrics.CalendarEvents.WithLabelValues("failure").Inc()
		if err == nil {
			err = fmt.Errorf("провайдер %s отклонил событие", l.provider.Name())
		}
		return fmt.Errorf("событие календаря для %s: %w", created.Order.OrderNumber, err)
	}

	l.metrics.CalendarEvents.WithLabelValues("success").Inc()
	l.logger.Info("Событие календаря создано",
		zap.String("order_number", created.Order.OrderNumber),
		zap.String("event_id", result.EventID),
	)
	return nil
}

// BuildCalendarEvent собирает событие календаря из нового ордера.
func BuildCalendarEvent(e events.OrderCreatedEvent) calendar.CalendarEvent {
	o := e.Order

	duration := e.Service.EstimatedDuration
	if duration <= 0 {
		duration = defaultEventDurationHours
	}

	var attendees []string
	if email := strings.TrimSpace(e.Client.Email); email != "" {
		attendees = append(attendees, email)
	}

	lines := []string{
		"Ordem de Serviço #" + o.OrderNumber,
		"Cliente: " + orNA(e.Client.Name),
		"Telefone: " + orNA(e.Client.Phone),
		"Endereço: " + orNA(e.Client.Address),
		"CTO: " + orNA(o.CTOReference),
		"Técnico: " + orNA(e.Technician.Name),
		"Descrição: " + o.Description,
		"Prioridade: " + constants.PriorityLabel(o.Priority),
	}

	return calendar.CalendarEvent{
		OrderNumber: o.OrderNumber,
		Title:       fmt.Sprintf("OS %s - %s", o.OrderNumber, e.Service.Name),
		Description: strings.Join(lines, "\n"),
		Start:       o.ScheduledAt(),
		Duration:    duration,
		Attendees:   attendees,
	}
}

func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return constants.NotAvailable
	}
	return s
}
