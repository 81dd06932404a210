package scheduling

import (
	"umkm_produksi/internal/domain/entities"

	"github.com/shopspring/decimal"
)

const moneyPlaces = 2

type batchCosts struct {
	Material    float64
	Labor       float64
	Overhead    float64
	Total       float64
	PerUnit     float64
	Allocations []entities.IngredientAllocation
}

// calculateBatchCosts prices one batch. Monetary amounts are rounded to two
// places; planned quantities are kept exact.
func calculateBatchCosts(recipe entities.Recipe, batchID string, batchSize, durationMinutes int, cfg Config) batchCosts {
	allocations := buildAllocations(recipe, batchID, batchSize)

	material := decimal.Zero
	for _, a := range allocations {
		material = material.Add(decimal.NewFromFloat(a.PlannedQuantity).Mul(decimal.NewFromFloat(a.CostPerUnit)))
	}
	material = material.Round(moneyPlaces)

	labor := decimal.NewFromInt(int64(durationMinutes)).
		Div(decimal.NewFromInt(60)).
		Mul(decimal.NewFromFloat(cfg.LaborHourlyRate)).
		Round(moneyPlaces)
	overhead := material.Mul(decimal.NewFromFloat(cfg.OverheadRate)).Round(moneyPlaces)
	total := material.Add(labor).Add(overhead)

	perUnit := decimal.Zero
	if batchSize > 0 {
		perUnit = total.Div(decimal.NewFromInt(int64(batchSize))).Round(moneyPlaces)
	}

	return batchCosts{
		Material:    material.InexactFloat64(),
		Labor:       labor.InexactFloat64(),
		Overhead:    overhead.InexactFloat64(),
		Total:       total.InexactFloat64(),
		PerUnit:     perUnit.InexactFloat64(),
		Allocations: allocations,
	}
}

// buildAllocations returns one allocation per distinct ingredient, in recipe
// order.
func buildAllocations(recipe entities.Recipe, batchID string, batchSize int) []entities.IngredientAllocation {
	var out []entities.IngredientAllocation
	idx := map[string]int{}
	for _, ri := range recipe.Ingredients {
		qty := recipe.RequiredQuantity(ri, batchSize)
		if i, ok := idx[ri.IngredientID]; ok {
			out[i].PlannedQuantity += qty
			continue
		}
		idx[ri.IngredientID] = len(out)
		out = append(out, entities.IngredientAllocation{
			BatchID:         batchID,
			IngredientID:    ri.IngredientID,
			IngredientName:  ri.IngredientName,
			PlannedQuantity: qty,
			Unit:            ri.Unit,
			CostPerUnit:     ri.PricePerUnit,
		})
	}
	for i := range out {
		out[i].TotalCost = decimal.NewFromFloat(out[i].PlannedQuantity).
			Mul(decimal.NewFromFloat(out[i].CostPerUnit)).
			Round(moneyPlaces).
			InexactFloat64()
	}
	return out
}

// withInventoryPrices fills unpriced recipe lines from the ingredient's
// stock price. The recipe passed in is not modified.
func withInventoryPrices(recipe entities.Recipe, stock stockLedger) entities.Recipe {
	out := recipe
	out.Ingredients = make([]entities.RecipeIngredient, len(recipe.Ingredients))
	for i, ri := range recipe.Ingredients {
		if ri.PricePerUnit == 0 {
			if inv, ok := stock[ri.IngredientID]; ok {
				ri.PricePerUnit = inv.PricePerUnit
			}
		}
		out.Ingredients[i] = ri
	}
	return out
}
