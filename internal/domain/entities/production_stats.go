package entities

import "time"

type LowStockIngredient struct {
	IngredientID   string  `json:"ingredient_id"`
	IngredientName string  `json:"ingredient_name"`
	AvailableStock float64 `json:"available_stock"`
	ReorderPoint   float64 `json:"reorder_point"`
	Unit           string  `json:"unit"`
	LeadTimeDays   int     `json:"lead_time_days"`
}

// ProductionStats summarizes the order to production pipeline at one point
// in time. The Last* fields are zero when no run happened since startup.
type ProductionStats struct {
	GeneratedAt           time.Time            `json:"generated_at"`
	TotalPendingOrders    int                  `json:"total_pending_orders"`
	TotalActiveBatches    int                  `json:"total_active_batches"`
	IngredientShortages   int                  `json:"ingredient_shortages"`
	LowStockIngredients   []LowStockIngredient `json:"low_stock_ingredients"`
	OnTimeDeliveries      int                  `json:"on_time_deliveries"`
	AtRiskDeliveries      int                  `json:"at_risk_deliveries"`
	LastRunID             string               `json:"last_run_id,omitempty"`
	LastSchedulingSuccess bool                 `json:"last_scheduling_success"`
	TotalScheduledBatches int                  `json:"total_scheduled_batches"`
	TotalSkippedOrders    int                  `json:"total_skipped_orders"`
}
