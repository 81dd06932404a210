package scheduling

import (
	"testing"

	"umkm_produksi/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeStats(t *testing.T) {
	lowFlour := entities.NewIngredientAvailability("flour", "Tepung", 12, 4, "kg")
	lowFlour.ReorderPoint = 10
	lowFlour.LeadTimeDays = 3
	sugar := entities.NewIngredientAvailability("sugar", "Gula", 50, 0, "kg")
	sugar.ReorderPoint = 10

	snap := Snapshot{
		Orders: []entities.Order{
			confirmedOrder("on-time", entities.OrderPriorityNormal, inDays(3)),
			confirmedOrder("late", entities.OrderPriorityNormal, inDays(1)),
			confirmedOrder("waiting", entities.OrderPriorityNormal, inDays(5)),
		},
		ActiveBatches: []entities.ProductionBatch{
			{ID: "b1", OrderIDs: []string{"on-time"}, ScheduledCompletion: *inDays(2)},
			{ID: "b2", OrderIDs: []string{"late"}, ScheduledCompletion: *inDays(2)},
		},
		Inventory: []entities.IngredientAvailability{lowFlour, sugar},
	}

	t.Run("without a previous run", func(t *testing.T) {
		stats := ComputeStats(snap, nil, testNow)
		assert.Equal(t, testNow, stats.GeneratedAt)
		assert.Equal(t, 1, stats.TotalPendingOrders)
		assert.Equal(t, 2, stats.TotalActiveBatches)
		assert.Equal(t, 1, stats.IngredientShortages)
		require.Len(t, stats.LowStockIngredients, 1)
		assert.Equal(t, "flour", stats.LowStockIngredients[0].IngredientID)
		assert.Equal(t, 3, stats.LowStockIngredients[0].LeadTimeDays)
		assert.Equal(t, 1, stats.OnTimeDeliveries)
		// late (0.3) and waiting (no batch, 0) are both at risk
		assert.Equal(t, 2, stats.AtRiskDeliveries)
		assert.Empty(t, stats.LastRunID)
	})

	t.Run("with the latest run", func(t *testing.T) {
		last := &entities.SchedulingRun{
			ID: "run-9",
			Result: entities.SchedulingResult{
				Success:        true,
				CreatedBatches: []entities.ProductionBatch{{ID: "b1"}, {ID: "b2"}},
				SkippedOrders:  []entities.SkippedOrder{{OrderID: "x"}},
			},
		}
		stats := ComputeStats(snap, last, testNow)
		assert.Equal(t, "run-9", stats.LastRunID)
		assert.True(t, stats.LastSchedulingSuccess)
		assert.Equal(t, 2, stats.TotalScheduledBatches)
		assert.Equal(t, 1, stats.TotalSkippedOrders)
	})
}

func TestExcludeBatchedOrders(t *testing.T) {
	orders := []entities.Order{{ID: "a"}, {ID: "b"}, {ID: "c"}}
	active := []entities.ProductionBatch{{OrderIDs: []string{"b", "z"}}, {OrderIDs: nil}}

	pending, batched := ExcludeBatchedOrders(orders, active)
	assert.Equal(t, []entities.Order{{ID: "a"}, {ID: "c"}}, pending)
	assert.Equal(t, []entities.Order{{ID: "b"}}, batched)
}
