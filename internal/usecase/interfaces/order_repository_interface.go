package interfaces

import (
	"context"
	"umkm_produksi/internal/domain/entities"
)

// IOrderRepository abstracts DynamoDB reads of customer orders.
//
// The scheduler only needs orders that may still be turned into batches
// (confirmed and paid); status filtering happens in the store.

type IOrderRepository interface {
	ListByStatuses(ctx context.Context, statuses []entities.OrderStatus) ([]entities.Order, error)
}
