package interfaces

import (
	"context"
	"umkm_produksi/internal/domain/entities"
)

// IIngredientRepository returns the current stock snapshot.

type IIngredientRepository interface {
	ListAvailability(ctx context.Context) ([]entities.IngredientAvailability, error)
}
