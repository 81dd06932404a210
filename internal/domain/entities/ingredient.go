package entities

// IngredientAvailability is a read-only stock snapshot used by one
// scheduling run. AvailableStock is current minus allocated, floored at 0.
// PricePerUnit prices recipe lines that carry no price of their own.

type IngredientAvailability struct {
	IngredientID   string  `json:"ingredient_id"`
	IngredientName string  `json:"ingredient_name"`
	CurrentStock   float64 `json:"current_stock"`
	AllocatedStock float64 `json:"allocated_stock"`
	AvailableStock float64 `json:"available_stock"`
	Unit           string  `json:"unit"`
	PricePerUnit   float64 `json:"price_per_unit"`
	ReorderPoint   float64 `json:"reorder_point"`
	LeadTimeDays   int     `json:"lead_time_days"`
}

func NewIngredientAvailability(id, name string, current, allocated float64, unit string) IngredientAvailability {
	available := current - allocated
	if available < 0 {
		available = 0
	}
	return IngredientAvailability{
		IngredientID:   id,
		IngredientName: name,
		CurrentStock:   current,
		AllocatedStock: allocated,
		AvailableStock: available,
		Unit:           unit,
	}
}
