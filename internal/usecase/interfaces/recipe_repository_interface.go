package interfaces

import (
	"context"
	"umkm_produksi/internal/domain/entities"
)

// IRecipeRepository loads recipes with their ingredient lines. Unknown ids
// are simply absent from the result.

type IRecipeRepository interface {
	GetByIDs(ctx context.Context, ids []string) ([]entities.Recipe, error)
}
