package scheduling

import (
	"fmt"

	"umkm_produksi/internal/domain/entities"

	"github.com/pkg/errors"
)

const criticalShortageRatio = 0.1

type IngredientRequirement struct {
	IngredientID   string
	IngredientName string
	Unit           string
	Required       float64
}

type FeasibilityReport struct {
	Requirements []IngredientRequirement
	Issues       []entities.IngredientIssue
}

// Blocked reports whether any shortage exceeds 10% of available stock.
func (r FeasibilityReport) Blocked() bool {
	return len(r.CriticalShortages()) > 0
}

func (r FeasibilityReport) CriticalShortages() []entities.IngredientIssue {
	var out []entities.IngredientIssue
	for _, is := range r.Issues {
		if is.Critical {
			out = append(out, is)
		}
	}
	return out
}

// CheckIngredientFeasibility sums the ingredient needs of all batch sizes and
// compares them with the stock snapshot. Ingredients absent from the
// snapshot count as zero available.
func CheckIngredientFeasibility(
	sizes []int,
	recipe entities.Recipe,
	inventory map[string]entities.IngredientAvailability,
) (FeasibilityReport, error) {
	if recipe.Servings <= 0 {
		return FeasibilityReport{}, errors.Wrapf(ErrInvalidRecipeServings, "recipe %s", recipe.ID)
	}

	var report FeasibilityReport
	idx := map[string]int{}
	for _, size := range sizes {
		for _, ri := range recipe.Ingredients {
			i, ok := idx[ri.IngredientID]
			if !ok {
				i = len(report.Requirements)
				idx[ri.IngredientID] = i
				report.Requirements = append(report.Requirements, IngredientRequirement{
					IngredientID:   ri.IngredientID,
					IngredientName: ri.IngredientName,
					Unit:           ri.Unit,
				})
			}
			report.Requirements[i].Required += recipe.RequiredQuantity(ri, size)
		}
	}

	for _, req := range report.Requirements {
		inv, ok := inventory[req.IngredientID]
		if !ok {
			name := req.IngredientName
			if name == "" {
				name = fmt.Sprintf("Unknown ingredient %s", req.IngredientID)
			}
			report.Issues = append(report.Issues, entities.IngredientIssue{
				IngredientID:   req.IngredientID,
				IngredientName: name,
				RecipeID:       recipe.ID,
				Required:       req.Required,
				Available:      0,
				Shortage:       req.Required,
				Critical:       req.Required > 0,
			})
			continue
		}

		if req.Required > inv.AvailableStock {
			shortage := req.Required - inv.AvailableStock
			report.Issues = append(report.Issues, entities.IngredientIssue{
				IngredientID:   req.IngredientID,
				IngredientName: inv.IngredientName,
				RecipeID:       recipe.ID,
				Required:       req.Required,
				Available:      inv.AvailableStock,
				Shortage:       shortage,
				Critical:       shortage > inv.AvailableStock*criticalShortageRatio,
			})
		}
	}
	return report, nil
}
