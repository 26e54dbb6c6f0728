package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fiber-service/internal/entities"
	apperrors "fiber-service/pkg/errors"
	"fiber-service/pkg/types"
)

func seedMemoryCatalog(t *testing.T, store *Store) (entities.Client, entities.Service, entities.Technician) {
	t.Helper()
	ctx := context.Background()

	client, err := store.Clients.Create(ctx, entities.Client{Name: "João Silva", CTO: "CTO-001"})
	require.NoError(t, err)
	service, err := store.Services.Create(ctx, entities.Service{Name: "Reparo de Cabo Rompido", Category: "Repair", BasePrice: 150})
	require.NoError(t, err)
	tech, err := store.Technicians.Create(ctx, entities.Technician{Name: "Ana Conecta", Region: "Centro"})
	require.NoError(t, err)
	return *client, *service, *tech
}

func newOrder(number string, c entities.Client, s entities.Service, tech entities.Technician, day types.Date) entities.ServiceOrder {
	return entities.ServiceOrder{
		OrderNumber:   number,
		ClientID:      c.ID,
		ServiceID:     s.ID,
		TechnicianID:  tech.ID,
		ScheduledDate: day,
		ScheduledTime: "08:00",
		Description:   "Sem sinal",
		Status:        "SCHEDULED",
		Priority:      "HIGH",
	}
}

func TestMemoryCatalog_CreateManyAssignsIDs(t *testing.T) {
	repo := NewMemoryEquipmentRepository()
	ctx := context.Background()

	created, err := repo.CreateMany(ctx, []entities.Equipment{{Name: "ONT"}, {Name: "Splitter 1x8"}})
	require.NoError(t, err)
	require.Len(t, created, 2)
	assert.Equal(t, uint64(1), created[0].ID)
	assert.Equal(t, uint64(2), created[1].ID)
	assert.False(t, created[0].CreatedAt.IsZero())

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	found, err := repo.FindByID(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "Splitter 1x8", found.Name)

	_, err = repo.FindByID(ctx, 99)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestMemoryOrders_CreateChecksReferences(t *testing.T) {
	store := NewMemoryStore()
	c, s, tech := seedMemoryCatalog(t, store)
	ctx := context.Background()

	order := newOrder("OS00000001", c, s, tech, types.NewDate(2024, 1, 15))
	order.TechnicianID = 42

	_, err := store.Orders.Create(ctx, order)
	assert.ErrorIs(t, err, apperrors.ErrReferenceNotFound)

	order.TechnicianID = tech.ID
	created, err := store.Orders.Create(ctx, order)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), created.ID)
	assert.NotNil(t, created.EquipmentUsed)

	_, err = store.Orders.Create(ctx, order)
	assert.ErrorIs(t, err, apperrors.ErrConflict, "номер ордера уникален")
}

func TestMemoryOrders_ListNewestFirst(t *testing.T) {
	store := NewMemoryStore()
	c, s, tech := seedMemoryCatalog(t, store)
	ctx := context.Background()

	for i, day := range []int{10, 20, 15} {
		_, err := store.Orders.Create(ctx, newOrder("OS0000000"+string(rune('1'+i)), c, s, tech, types.NewDate(2024, 1, day)))
		require.NoError(t, err)
	}

	orders, err := store.Orders.List(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 3)
	assert.Equal(t, 20, orders[0].ScheduledDate.Day())
	assert.Equal(t, 15, orders[1].ScheduledDate.Day())
	assert.Equal(t, 10, orders[2].ScheduledDate.Day())
}

func TestMemoryOrders_UpdateAndDelete(t *testing.T) {
	store := NewMemoryStore()
	c, s, tech := seedMemoryCatalog(t, store)
	ctx := context.Background()

	created, err := store.Orders.Create(ctx, newOrder("OSABCDEF12", c, s, tech, types.NewDate(2024, 1, 15)))
	require.NoError(t, err)

	status := "COMPLETED"
	patch := entities.OrderPatch{Status: &status}.WithCompletion(entities.CompletionData{
		SignalLevel:          "-15.5",
		CustomerSatisfaction: 5,
	}, time.Now())

	updated, err := store.Orders.Update(ctx, created.ID, patch)
	require.NoError(t, err)
	assert.Equal(t, "COMPLETED", updated.Status)
	assert.Equal(t, "-15.5", updated.FinalSignalLevel.String)

	byNumber, err := store.Orders.FindByNumber(ctx, "OSABCDEF12")
	require.NoError(t, err)
	assert.Equal(t, 5, byNumber.CustomerSatisfaction.Int)

	_, err = store.Orders.Update(ctx, 999, patch)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	removed, err := store.Orders.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = store.Orders.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, removed)

	_, err = store.Orders.FindByID(ctx, created.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestStore_Snapshot(t *testing.T) {
	store := NewMemoryStore()
	c, s, tech := seedMemoryCatalog(t, store)
	ctx := context.Background()
	_, err := store.Orders.Create(ctx, newOrder("OS11111111", c, s, tech, types.NewDate(2024, 1, 15)))
	require.NoError(t, err)

	snap, err := store.Snapshot(ctx)
	require.NoError(t, err)
	assert.Len(t, snap.Orders, 1)
	assert.Len(t, snap.Clients, 1)
	assert.Len(t, snap.Services, 1)
	assert.Len(t, snap.Technicians, 1)
	assert.Empty(t, snap.Equipment)
}
