package listeners

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"fiber-service/internal/entities"
	"fiber-service/internal/events"
	"fiber-service/internal/integrations/calendar"
	"fiber-service/pkg/metrics"
	"fiber-service/pkg/types"
)

type recordingProvider struct {
	got    []calendar.CalendarEvent
	result calendar.CalendarResult
	err    error
}

func (p *recordingProvider) Name() string { return "recording" }

func (p *recordingProvider) CreateEvent(_ context.Context, e calendar.CalendarEvent) (calendar.CalendarResult, error) {
	p.got = append(p.got, e)
	return p.result, p.err
}

func sampleEvent() events.OrderCreatedEvent {
	return events.OrderCreatedEvent{
		Order: entities.ServiceOrder{
			OrderNumber:   "OS1A2B3C4D",
			ScheduledDate: types.NewDate(2024, 1, 15),
			ScheduledTime: "08:30",
			Description:   "Cabo rompido na rua",
			Priority:      "HIGH",
			CTOReference:  "CTO-001",
		},
		Client:     entities.Client{Name: "João Silva", Phone: "(11) 99999-1111", Email: "joao@email.com", Address: "Rua das Flores, 123"},
		Service:    entities.Service{Name: "Reparo de Cabo Rompido", EstimatedDuration: 0},
		Technician: entities.Technician{Name: "Ana Conecta"},
	}
}

func TestBuildCalendarEvent(t *testing.T) {
	ev := BuildCalendarEvent(sampleEvent())

	assert.Equal(t, "OS OS1A2B3C4D - Reparo de Cabo Rompido", ev.Title)
	assert.Equal(t, time.Date(2024, 1, 15, 8, 30, 0, 0, time.UTC), ev.Start)
	assert.Equal(t, 2, ev.Duration, "нулевая длительность услуги заменяется на 2 часа")
	assert.Equal(t, []string{"joao@email.com"}, ev.Attendees)
	for _, part := range []string{"João Silva", "(11) 99999-1111", "Rua das Flores, 123", "CTO-001", "Ana Conecta", "Cabo rompido na rua", "Alta"} {
		assert.Contains(t, ev.Description, part)
	}
}

func TestBuildCalendarEvent_NoEmailAndDuration(t *testing.T) {
	e := sampleEvent()
	e.Client.Email = ""
	e.Service.EstimatedDuration = 4

	ev := BuildCalendarEvent(e)
	assert.Empty(t, ev.Attendees)
	assert.Equal(t, 4, ev.Duration)
}

func TestCalendarListener_HandleOrderCreated(t *testing.T) {
	m := metrics.New()
	provider := &recordingProvider{result: calendar.CalendarResult{Success: true, EventID: "cal_OS1A2B3C4D"}}
	l := NewCalendarListener(provider, m, zap.NewNop())

	require.NoError(t, l.handleOrderCreated(context.Background(), sampleEvent()))
	require.Len(t, provider.got, 1)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CalendarEvents.WithLabelValues("success")))
}

func TestCalendarListener_ProviderFailure(t *testing.T) {
	m := metrics.New()
	provider := &recordingProvider{err: errors.New("timeout")}
	l := NewCalendarListener(provider, m, zap.NewNop())

	err := l.handleOrderCreated(context.Background(), sampleEvent())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "OS1A2B3C4D")
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CalendarEvents.WithLabelValues("failure")))

	provider.err = nil
	provider.result = calendar.CalendarResult{Success: false}
	assert.Error(t, l.handleOrderCreated(context.Background(), sampleEvent()))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.CalendarEvents.WithLabelValues("failure")))
}
