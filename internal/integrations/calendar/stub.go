package calendar

import (
	"context"

	"go.uber.org/zap"
)

// StubProvider ничего никуда не отправляет: только пишет событие в лог.
type StubProvider struct {
	logger *zap.Logger
}

func NewStubProvider(logger *zap.Logger) *StubProvider {
	return &StubProvider{logger: logger}
}

func (p *StubProvider) Name() string { return "stub" }

func (p *StubProvider) CreateEvent(ctx context.Context, event CalendarEvent) (CalendarResult, error) {
	if err := ctx.Err(); err != nil {
		return CalendarResult{}, err
	}
	p.logger.Info("Событие календаря (заглушка)",
		zap.String("order_number", event.OrderNumber),
		zap.String("title", event.Title),
		zap.Time("start", event.Start),
		zap.Int("duration_hours", event.Duration),
		zap.Strings("attendees", event.Attendees),
	)
	return CalendarResult{Success: true, EventID: "cal_" + event.OrderNumber}, nil
}
