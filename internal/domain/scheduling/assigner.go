package scheduling

import (
	"sort"
	"time"

	"github.com/pkg/errors"
)

var farFutureDelivery = time.Date(2099, 12, 31, 0, 0, 0, 0, time.UTC)

func deliveryOrSentinel(d *time.Time) time.Time {
	if d == nil {
		return farFutureDelivery
	}
	return *d
}

// sortDemands returns a copy of pool ordered by priority weight (most urgent
// first) and then by delivery date. Missing delivery dates sort last.
func sortDemands(pool []Demand) []Demand {
	out := make([]Demand, len(pool))
	copy(out, pool)
	sort.SliceStable(out, func(i, j int) bool {
		wi, wj := out[i].Priority.Weight(), out[j].Priority.Weight()
		if wi != wj {
			return wi < wj
		}
		return deliveryOrSentinel(out[i].DeliveryDate).Before(deliveryOrSentinel(out[j].DeliveryDate))
	})
	return out
}

// AssignDemands greedily packs whole demands into a batch of batchSize units.
// A demand is taken only if it still fits; packing stops once the batch is
// full. pool is left untouched and remaining keeps its original order.
func AssignDemands(pool []Demand, batchSize int) (assigned, remaining []Demand) {
	taken := map[demandKey]bool{}
	sum := 0
	for _, d := range sortDemands(pool) {
		if sum+d.Quantity <= batchSize {
			assigned = append(assigned, d)
			taken[d.key()] = true
			sum += d.Quantity
		}
		if sum >= batchSize {
			break
		}
	}

	for _, d := range pool {
		if !taken[d.key()] {
			remaining = append(remaining, d)
		}
	}
	return assigned, remaining
}

// assignmentLedger records which batch every demand of the run was bound to.
type assignmentLedger map[demandKey]string

func (l assignmentLedger) commit(batchID string, demands []Demand) error {
	for _, d := range demands {
		if prev, ok := l[d.key()]; ok {
			return errors.Wrapf(ErrDuplicateAssignment, "order %s recipe %s already in batch %s", d.OrderID, d.RecipeID, prev)
		}
	}
	for _, d := range demands {
		l[d.key()] = batchID
	}
	return nil
}
