package entities

import "time"

type BatchStatus string

const (
	BatchStatusPlanned          BatchStatus = "planned"
	BatchStatusIngredientsReady BatchStatus = "ingredients_ready"
	BatchStatusInProgress       BatchStatus = "in_progress"
	BatchStatusCompleted        BatchStatus = "completed"
	BatchStatusCancelled        BatchStatus = "cancelled"
)

type BatchPriority string

const (
	BatchPriorityLow    BatchPriority = "low"
	BatchPriorityNormal BatchPriority = "normal"
	BatchPriorityHigh   BatchPriority = "high"
	BatchPriorityUrgent BatchPriority = "urgent"
	BatchPriorityRush   BatchPriority = "rush"
)

type IngredientAllocation struct {
	BatchID         string  `json:"batch_id"`
	IngredientID    string  `json:"ingredient_id"`
	IngredientName  string  `json:"ingredient_name"`
	PlannedQuantity float64 `json:"planned_quantity"`
	Unit            string  `json:"unit"`
	CostPerUnit     float64 `json:"cost_per_unit"`
	TotalCost       float64 `json:"total_cost"`
}

// ProductionBatch is a single production run of one recipe.
//
// Batches are created by the scheduler in status "planned" and are never
// changed by it afterwards; later status transitions belong to the
// production floor workflows.
//
// Storage model (DynamoDB):
//   - PK: id
//   - allocations and order ids are stored inline

type ProductionBatch struct {
	ID                       string                 `json:"id"`
	BatchNumber              string                 `json:"batch_number"`
	RecipeID                 string                 `json:"recipe_id"`
	RecipeName               string                 `json:"recipe_name"`
	Status                   BatchStatus            `json:"status"`
	Priority                 BatchPriority          `json:"priority"`
	BatchSize                int                    `json:"batch_size"`
	ScheduledStart           time.Time              `json:"scheduled_start"`
	ScheduledCompletion      time.Time              `json:"scheduled_completion"`
	EstimatedDurationMinutes int                    `json:"estimated_duration_minutes"`
	MaterialCost             float64                `json:"material_cost"`
	LaborCost                float64                `json:"labor_cost"`
	OverheadCost             float64                `json:"overhead_cost"`
	TotalCost                float64                `json:"total_cost"`
	CostPerUnit              float64                `json:"cost_per_unit"`
	Currency                 string                 `json:"currency"`
	OrderIDs                 []string               `json:"order_ids"`
	IngredientAllocations    []IngredientAllocation `json:"ingredient_allocations"`
	CreatedAt                time.Time              `json:"created_at"`
	UpdatedAt                time.Time              `json:"updated_at"`
}

func (b ProductionBatch) IsActive() bool {
	switch b.Status {
	case BatchStatusPlanned, BatchStatusIngredientsReady, BatchStatusInProgress:
		return true
	}
	return false
}

func (b ProductionBatch) HasOrder(orderID string) bool {
	for _, id := range b.OrderIDs {
		if id == orderID {
			return true
		}
	}
	return false
}
