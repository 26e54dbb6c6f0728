package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"fiber-service/internal/entities"
	"fiber-service/internal/repositories"
	"fiber-service/pkg/eventbus"
	"fiber-service/pkg/metrics"
)

// recordingPublisher запоминает события вместо шины.
type recordingPublisher struct {
	mu     sync.Mutex
	events []eventbus.Event
}

func (p *recordingPublisher) Publish(_ context.Context, e eventbus.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
}

type fixture struct {
	store     *repositories.Store
	publisher *recordingPublisher
	metrics   *metrics.Metrics
	service   OrderServiceInterface
	now       time.Time

	client     entities.Client
	repair     entities.Service
	install    entities.Service
	ana        entities.Technician
	carlos     entities.Technician
	ont        entities.Equipment
	splitter   entities.Equipment
	numberSeq  int
}

var fixedNow = time.Date(2024, 1, 15, 16, 30, 0, 0, time.UTC)

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	f := &fixture{
		store:     repositories.NewMemoryStore(),
		publisher: &recordingPublisher{},
		metrics:   metrics.New(),
		now:       fixedNow,
	}

	client, err := f.store.Clients.Create(ctx, entities.Client{
		Name: "João Silva", Phone: "+5511999991111", Email: "joao@email.com",
		Address: "Rua das Flores, 123", CTO: "CTO-001", Plan: "500MB",
	})
	require.NoError(t, err)
	repair, err := f.store.Services.Create(ctx, entities.Service{Name: "Reparo de Cabo Rompido", Category: "Repair", BasePrice: 150, EstimatedDuration: 2})
	require.NoError(t, err)
	install, err := f.store.Services.Create(ctx, entities.Service{Name: "Instalação Residencial", Category: "Installation", BasePrice: 0, EstimatedDuration: 3})
	require.NoError(t, err)
	ana, err := f.store.Technicians.Create(ctx, entities.Technician{Name: "Ana Conecta", Specialty: "Repair", Region: "Centro", Level: "Mid"})
	require.NoError(t, err)
	carlos, err := f.store.Technicians.Create(ctx, entities.Technician{Name: "Carlos Fibra", Specialty: "Installation", Region: "Zona Sul", Level: "Senior"})
	require.NoError(t, err)
	ont, err := f.store.Equipment.Create(ctx, entities.Equipment{Name: "ONT", Type: "ONT", UnitPrice: 80})
	require.NoError(t, err)
	splitter, err := f.store.Equipment.Create(ctx, entities.Equipment{Name: "Splitter 1x8", Type: "Splitter", UnitPrice: 25})
	require.NoError(t, err)

	f.client, f.repair, f.install = *client, *repair, *install
	f.ana, f.carlos = *ana, *carlos
	f.ont, f.splitter = *ont, *splitter

	f.service = NewOrderService(f.store, f.publisher, f.metrics, zap.NewNop(),
		WithClock(func() time.Time { return f.now }),
		WithNumberGenerator(f.nextNumber),
	)
	return f
}

func (f *fixture) nextNumber() string {
	f.numberSeq++
	return "OSTEST" + string(rune('0'+f.numberSeq/10)) + string(rune('0'+f.numberSeq%10)) + "00"
}
