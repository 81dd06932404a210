package scheduling

import (
	"time"

	"umkm_produksi/internal/domain/entities"
)

const (
	onTimeProbabilityFloor = 0.8
	atRiskProbabilityCeil  = 0.5
)

// ComputeStats summarizes a snapshot and, when not nil, the latest run.
// Delivery estimates are taken against the active batches.
func ComputeStats(snap Snapshot, last *entities.SchedulingRun, now time.Time) entities.ProductionStats {
	pending, _ := ExcludeBatchedOrders(snap.Orders, snap.ActiveBatches)
	stats := entities.ProductionStats{
		GeneratedAt:         now,
		TotalPendingOrders:  len(pending),
		TotalActiveBatches:  len(snap.ActiveBatches),
		LowStockIngredients: []entities.LowStockIngredient{},
	}

	for _, inv := range snap.Inventory {
		if inv.AvailableStock > inv.ReorderPoint {
			continue
		}
		stats.LowStockIngredients = append(stats.LowStockIngredients, entities.LowStockIngredient{
			IngredientID:   inv.IngredientID,
			IngredientName: inv.IngredientName,
			AvailableStock: inv.AvailableStock,
			ReorderPoint:   inv.ReorderPoint,
			Unit:           inv.Unit,
			LeadTimeDays:   inv.LeadTimeDays,
		})
	}
	stats.IngredientShortages = len(stats.LowStockIngredients)

	for _, tl := range EstimateDeliveryTimeline(snap.ActiveBatches, snap.Orders, now) {
		switch {
		case tl.OnTimeProbability > onTimeProbabilityFloor:
			stats.OnTimeDeliveries++
		case tl.OnTimeProbability < atRiskProbabilityCeil:
			stats.AtRiskDeliveries++
		}
	}

	if last != nil {
		stats.LastRunID = last.ID
		stats.LastSchedulingSuccess = last.Result.Success
		stats.TotalScheduledBatches = len(last.Result.CreatedBatches)
		stats.TotalSkippedOrders = len(last.Result.SkippedOrders)
	}
	return stats
}
