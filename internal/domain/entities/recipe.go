package entities

// RecipeIngredient quantities are expressed against the recipe's Servings
// yield and are scaled linearly to any batch size.
type RecipeIngredient struct {
	IngredientID   string  `json:"ingredient_id"`
	IngredientName string  `json:"ingredient_name"`
	Quantity       float64 `json:"quantity"`
	Unit           string  `json:"unit"`
	PricePerUnit   float64 `json:"price_per_unit"`
}

type Recipe struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Servings    int                `json:"servings"`
	Ingredients []RecipeIngredient `json:"ingredients"`
}

// RequiredQuantity scales one ingredient line to batchSize units.
// Callers must reject recipes with non-positive servings first.
func (r Recipe) RequiredQuantity(ri RecipeIngredient, batchSize int) float64 {
	return ri.Quantity * float64(batchSize) / float64(r.Servings)
}
