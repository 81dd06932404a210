package interfaces

import (
	"context"
	"umkm_produksi/internal/domain/entities"
)

// IProductionBatchRepository abstracts DynamoDB persistence for ProductionBatch.
//
// CreateWithAllocations must write the batch and reserve every allocated
// ingredient (allocated_stock += planned quantity) atomically.

type IProductionBatchRepository interface {
	ListActive(ctx context.Context) ([]entities.ProductionBatch, error)
	CreateWithAllocations(ctx context.Context, b entities.ProductionBatch) error
}
