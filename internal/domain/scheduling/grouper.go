package scheduling

import (
	"time"

	"umkm_produksi/internal/domain/entities"
)

// Demand is one order's quantity for one recipe. An order with items of N
// recipes yields N demands that all point back to the same order.
type Demand struct {
	OrderID      string
	RecipeID     string
	Quantity     int
	Priority     entities.OrderPriority
	DeliveryDate *time.Time
	Order        entities.Order
}

type demandKey struct {
	orderID  string
	recipeID string
}

func (d Demand) key() demandKey {
	return demandKey{orderID: d.OrderID, recipeID: d.RecipeID}
}

type RecipeGroup struct {
	RecipeID string
	Demands  []Demand
}

func (g RecipeGroup) TotalQuantity() int {
	total := 0
	for _, d := range g.Demands {
		total += d.Quantity
	}
	return total
}

// GroupByRecipe decomposes orders into per-recipe demands. Items of the same
// order and recipe are merged. Groups keep first-seen recipe order and
// demands keep input order.
func GroupByRecipe(orders []entities.Order) []RecipeGroup {
	var groups []RecipeGroup
	groupIdx := map[string]int{}
	demandIdx := map[demandKey]int{}

	for _, o := range orders {
		for _, item := range o.Items {
			gi, ok := groupIdx[item.RecipeID]
			if !ok {
				gi = len(groups)
				groupIdx[item.RecipeID] = gi
				groups = append(groups, RecipeGroup{RecipeID: item.RecipeID})
			}

			k := demandKey{orderID: o.ID, recipeID: item.RecipeID}
			if di, seen := demandIdx[k]; seen {
				groups[gi].Demands[di].Quantity += item.Quantity
				continue
			}
			demandIdx[k] = len(groups[gi].Demands)
			groups[gi].Demands = append(groups[gi].Demands, Demand{
				OrderID:      o.ID,
				RecipeID:     item.RecipeID,
				Quantity:     item.Quantity,
				Priority:     o.Priority,
				DeliveryDate: o.DeliveryDate,
				Order:        o,
			})
		}
	}
	return groups
}
