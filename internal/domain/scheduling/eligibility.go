package scheduling

import (
	"time"

	"umkm_produksi/internal/domain/entities"
)

// FilterEligibleOrders keeps confirmed or paid orders whose delivery date,
// if any, is at least bufferHours away. Orders rejected only because of the
// buffer are returned separately as tooLate.
func FilterEligibleOrders(orders []entities.Order, bufferHours float64, now time.Time) (eligible, tooLate []entities.Order) {
	for _, o := range orders {
		if o.Status != entities.OrderStatusConfirmed && o.Status != entities.OrderStatusPaid {
			continue
		}
		if o.DeliveryDate != nil && hoursUntil(*o.DeliveryDate, now) < bufferHours {
			tooLate = append(tooLate, o)
			continue
		}
		eligible = append(eligible, o)
	}
	return eligible, tooLate
}

func hoursUntil(t, now time.Time) float64 {
	return t.Sub(now).Hours()
}

// ExcludeBatchedOrders drops orders already referenced by an active batch.
// Order status is not advanced when a batch is planned, so without this a
// second run would plan the same order again.
func ExcludeBatchedOrders(orders []entities.Order, active []entities.ProductionBatch) (pending, batched []entities.Order) {
	inBatch := batchedOrderIDs(active)
	for _, o := range orders {
		if inBatch[o.ID] {
			batched = append(batched, o)
			continue
		}
		pending = append(pending, o)
	}
	return pending, batched
}

func batchedOrderIDs(active []entities.ProductionBatch) map[string]bool {
	ids := map[string]bool{}
	for _, b := range active {
		for _, id := range b.OrderIDs {
			ids[id] = true
		}
	}
	return ids
}
