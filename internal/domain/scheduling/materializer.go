package scheduling

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"umkm_produksi/internal/domain/entities"

	"github.com/pkg/errors"
)

const batchNumberPrefix = "BATCH-"

// TimelineEstimator is the production-capacity collaborator that turns a
// batch into a concrete slot on the production floor.
type TimelineEstimator interface {
	EstimateProductionTimeline(ctx context.Context, recipeID string, batchSize int, opts entities.TimelineOptions) (entities.ProductionTimeline, error)
}

// batchSequence hands out BATCH-YYYYMMDD-NNN numbers for one run, continuing
// after the highest number already used on the same day.
type batchSequence struct {
	prefix string
	last   int
}

func newBatchSequence(now time.Time, existing []entities.ProductionBatch) *batchSequence {
	s := &batchSequence{prefix: batchNumberPrefix + now.UTC().Format("20060102") + "-"}
	for _, b := range existing {
		if !strings.HasPrefix(b.BatchNumber, s.prefix) {
			continue
		}
		n, err := strconv.Atoi(strings.TrimPrefix(b.BatchNumber, s.prefix))
		if err == nil && n > s.last {
			s.last = n
		}
	}
	return s
}

func (s *batchSequence) next() string {
	s.last++
	return fmt.Sprintf("%s%03d", s.prefix, s.last)
}

type batchMaterializer struct {
	cfg       Config
	estimator TimelineEstimator
	now       time.Time
	sequence  *batchSequence
	newID     func() string
}

// Materialize builds a planned batch for the given demands. The batch number
// is only consumed when the timeline estimate succeeds.
func (m *batchMaterializer) Materialize(ctx context.Context, recipe entities.Recipe, batchSize int, demands []Demand) (entities.ProductionBatch, error) {
	priority := m.cfg.BatchPriorityFor(highestPriority(demands))
	opts := entities.TimelineOptions{
		Priority:  priority,
		RushOrder: priority == entities.BatchPriorityRush || m.hasRushDelivery(demands),
	}

	timeline, err := m.estimator.EstimateProductionTimeline(ctx, recipe.ID, batchSize, opts)
	if err != nil {
		return entities.ProductionBatch{}, errors.Wrapf(err, "estimate timeline for recipe %s", recipe.ID)
	}

	id := m.newID()
	costs := calculateBatchCosts(recipe, id, batchSize, timeline.DurationMinutes, m.cfg)

	orderIDs := make([]string, 0, len(demands))
	for _, d := range demands {
		orderIDs = append(orderIDs, d.OrderID)
	}

	return entities.ProductionBatch{
		ID:                       id,
		BatchNumber:              m.sequence.next(),
		RecipeID:                 recipe.ID,
		RecipeName:               recipe.Name,
		Status:                   entities.BatchStatusPlanned,
		Priority:                 priority,
		BatchSize:                batchSize,
		ScheduledStart:           timeline.ScheduledStart,
		ScheduledCompletion:      timeline.ScheduledCompletion,
		EstimatedDurationMinutes: timeline.DurationMinutes,
		MaterialCost:             costs.Material,
		LaborCost:                costs.Labor,
		OverheadCost:             costs.Overhead,
		TotalCost:                costs.Total,
		CostPerUnit:              costs.PerUnit,
		Currency:                 m.cfg.Currency,
		OrderIDs:                 orderIDs,
		IngredientAllocations:    costs.Allocations,
		CreatedAt:                m.now,
		UpdatedAt:                m.now,
	}, nil
}

func (m *batchMaterializer) hasRushDelivery(demands []Demand) bool {
	for _, d := range demands {
		if d.DeliveryDate != nil && hoursUntil(*d.DeliveryDate, m.now) < m.cfg.RushOrderThresholdHours {
			return true
		}
	}
	return false
}

func highestPriority(demands []Demand) entities.OrderPriority {
	best := entities.OrderPriorityLow
	for _, d := range demands {
		if d.Priority.Weight() < best.Weight() {
			best = d.Priority
		}
	}
	switch best {
	case entities.OrderPriorityLow, entities.OrderPriorityNormal, entities.OrderPriorityHigh,
		entities.OrderPriorityUrgent, entities.OrderPriorityRush:
		return best
	}
	return entities.OrderPriorityNormal
}
