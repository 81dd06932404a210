package interfaces

import (
	"context"
	"umkm_produksi/internal/domain/entities"
)

// ITimelineEstimator abstracts the production capacity model (ovens, staff,
// working hours) that places a batch on the production floor.
type ITimelineEstimator interface {
	EstimateProductionTimeline(ctx context.Context, recipeID string, batchSize int, opts entities.TimelineOptions) (entities.ProductionTimeline, error)
}
