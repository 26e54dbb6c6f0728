package entities

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"fiber-service/pkg/types"
)

func TestOrderPatch_ApplyCompletion(t *testing.T) {
	order := ServiceOrder{ID: 1, Status: "IN_FIELD", EstimatedCost: 230}
	status := "COMPLETED"
	at := time.Date(2024, 1, 15, 14, 0, 0, 0, time.UTC)

	patch := OrderPatch{Status: &status}.WithCompletion(CompletionData{
		SignalLevel:          "-15.5",
		EquipmentUsed:        []string{"ONT Huawei HG8010H"},
		Observations:         "Cliente satisfeito",
		CustomerSatisfaction: 5,
	}, at)
	updated := patch.Apply(order)

	assert.Equal(t, "COMPLETED", updated.Status)
	assert.Equal(t, at, updated.CompletedAt.Time)
	assert.Equal(t, "-15.5", updated.FinalSignalLevel.String)
	assert.Equal(t, []string{"ONT Huawei HG8010H"}, updated.FinalEquipment)
	assert.Equal(t, "Cliente satisfeito", updated.FinalObservations.String)
	assert.Equal(t, 5, updated.CustomerSatisfaction.Int)
	assert.Equal(t, 230.0, updated.EstimatedCost)
	assert.False(t, order.HasCompletionData(), "исходный ордер не должен меняться")
	assert.True(t, updated.HasCompletionData())
}

func TestOrderPatch_StatusOnlyKeepsCompletion(t *testing.T) {
	status := "COMPLETED"
	completed := OrderPatch{Status: &status}.WithCompletion(CompletionData{CustomerSatisfaction: 4}, time.Now()).
		Apply(ServiceOrder{Status: "SCHEDULED"})

	back := "SCHEDULED"
	reopened := OrderPatch{Status: &back}.Apply(completed)

	assert.Equal(t, "SCHEDULED", reopened.Status)
	assert.Equal(t, 4, reopened.CustomerSatisfaction.Int)
	assert.True(t, reopened.CompletedAt.Valid)
}

func TestOrderPatch_IsEmpty(t *testing.T) {
	assert.True(t, OrderPatch{}.IsEmpty())
	now := time.Now()
	assert.True(t, OrderPatch{UpdatedAt: &now}.IsEmpty())
	s := "X"
	assert.False(t, OrderPatch{Status: &s}.IsEmpty())
}

func TestServiceOrder_ScheduledAt(t *testing.T) {
	o := ServiceOrder{ScheduledDate: types.NewDate(2024, 1, 15), ScheduledTime: "08:30"}
	assert.Equal(t, time.Date(2024, 1, 15, 8, 30, 0, 0, time.UTC), o.ScheduledAt())

	o.ScheduledTime = "manhã"
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), o.ScheduledAt())
}
