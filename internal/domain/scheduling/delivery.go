package scheduling

import (
	"time"

	"umkm_produksi/internal/domain/entities"
)

const (
	onTimeLikely   = 0.9
	onTimeUnlikely = 0.3
)

// EstimateDeliveryTimeline gives every order a coarse on-time estimate. An
// order spread over several batches is ready when its last batch completes.
// This is a placeholder heuristic, not a calibrated forecast.
func EstimateDeliveryTimeline(batches []entities.ProductionBatch, orders []entities.Order, now time.Time) []entities.DeliveryTimeline {
	out := make([]entities.DeliveryTimeline, 0, len(orders))
	for _, o := range orders {
		delivery := deliveryOrSentinel(o.DeliveryDate)

		var batch *entities.ProductionBatch
		for i := range batches {
			if !batches[i].HasOrder(o.ID) {
				continue
			}
			if batch == nil || batches[i].ScheduledCompletion.After(batch.ScheduledCompletion) {
				batch = &batches[i]
			}
		}

		if batch == nil {
			out = append(out, entities.DeliveryTimeline{
				OrderID:               o.ID,
				EstimatedReadyDate:    now,
				EstimatedDeliveryDate: delivery,
			})
			continue
		}

		probability := onTimeUnlikely
		if batch.ScheduledCompletion.Before(delivery) {
			probability = onTimeLikely
		}
		out = append(out, entities.DeliveryTimeline{
			OrderID:               o.ID,
			EstimatedReadyDate:    batch.ScheduledCompletion,
			EstimatedDeliveryDate: delivery,
			ProductionBatchID:     batch.ID,
			OnTimeProbability:     probability,
		})
	}
	return out
}
