package response

import (
	"time"

	"umkm_produksi/internal/domain/entities"
)

type BatchResponse struct {
	ID                       string                          `json:"id"`
	BatchNumber              string                          `json:"batch_number"`
	RecipeID                 string                          `json:"recipe_id"`
	RecipeName               string                          `json:"recipe_name"`
	Status                   string                          `json:"status"`
	Priority                 string                          `json:"priority"`
	BatchSize                int                             `json:"batch_size"`
	ScheduledStart           time.Time                       `json:"scheduled_start"`
	ScheduledCompletion      time.Time                       `json:"scheduled_completion"`
	EstimatedDurationMinutes int                             `json:"estimated_duration_minutes"`
	MaterialCost             float64                         `json:"material_cost"`
	LaborCost                float64                         `json:"labor_cost"`
	OverheadCost             float64                         `json:"overhead_cost"`
	TotalCost                float64                         `json:"total_cost"`
	CostPerUnit              float64                         `json:"cost_per_unit"`
	Currency                 string                          `json:"currency"`
	OrderIDs                 []string                        `json:"order_ids"`
	IngredientAllocations    []entities.IngredientAllocation `json:"ingredient_allocations"`
}

type SkippedOrderResponse struct {
	OrderID         string `json:"order_id"`
	RecipeID        string `json:"recipe_id,omitempty"`
	CustomerName    string `json:"customer_name,omitempty"`
	Reason          string `json:"reason"`
	Message         string `json:"message"`
	SuggestedAction string `json:"suggested_action"`
}

type RunSummary struct {
	CreatedBatches      int       `json:"created_batches"`
	SkippedOrders       int       `json:"skipped_orders"`
	ExcludedOrders      int       `json:"excluded_orders"`
	TotalCost           float64   `json:"total_cost"`
	EstimatedCompletion time.Time `json:"estimated_completion"`
}

type SchedulingRunResponse struct {
	RunID             string                           `json:"run_id"`
	DryRun            bool                             `json:"dry_run"`
	Success           bool                             `json:"success"`
	StartedAt         time.Time                        `json:"started_at"`
	FinishedAt        time.Time                        `json:"finished_at"`
	Summary           RunSummary                       `json:"summary"`
	CreatedBatches    []BatchResponse                  `json:"created_batches"`
	SkippedOrders     []SkippedOrderResponse           `json:"skipped_orders"`
	ExcludedOrders    []SkippedOrderResponse           `json:"excluded_orders"`
	IngredientIssues  []entities.IngredientIssue       `json:"ingredient_issues"`
	CapacityWarnings  []string                         `json:"capacity_warnings"`
	PersistenceErrors []entities.BatchPersistenceError `json:"persistence_errors"`
}

type DeliveryTimelineResponse struct {
	RunID    string                      `json:"run_id"`
	Timeline []entities.DeliveryTimeline `json:"timeline"`
}

// FromSchedulingRun flattens a run for clients. Lists are never null.
func FromSchedulingRun(run entities.SchedulingRun) SchedulingRunResponse {
	res := run.Result
	out := SchedulingRunResponse{
		RunID:      run.ID,
		DryRun:     run.DryRun,
		Success:    res.Success,
		StartedAt:  run.StartedAt,
		FinishedAt: run.FinishedAt,
		Summary: RunSummary{
			CreatedBatches:      len(res.CreatedBatches),
			SkippedOrders:       len(res.SkippedOrders),
			ExcludedOrders:      len(res.ExcludedOrders),
			TotalCost:           res.TotalCost,
			EstimatedCompletion: res.EstimatedCompletion,
		},
		CreatedBatches:    make([]BatchResponse, 0, len(res.CreatedBatches)),
		SkippedOrders:     fromSkippedOrders(res.SkippedOrders),
		ExcludedOrders:    fromSkippedOrders(res.ExcludedOrders),
		IngredientIssues:  nonNil(res.IngredientIssues),
		CapacityWarnings:  nonNil(res.CapacityWarnings),
		PersistenceErrors: nonNil(run.PersistenceErrors),
	}
	for _, b := range res.CreatedBatches {
		out.CreatedBatches = append(out.CreatedBatches, FromProductionBatch(b))
	}
	return out
}

func FromProductionBatch(b entities.ProductionBatch) BatchResponse {
	return BatchResponse{
		ID:                       b.ID,
		BatchNumber:              b.BatchNumber,
		RecipeID:                 b.RecipeID,
		RecipeName:               b.RecipeName,
		Status:                   string(b.Status),
		Priority:                 string(b.Priority),
		BatchSize:                b.BatchSize,
		ScheduledStart:           b.ScheduledStart,
		ScheduledCompletion:      b.ScheduledCompletion,
		EstimatedDurationMinutes: b.EstimatedDurationMinutes,
		MaterialCost:             b.MaterialCost,
		LaborCost:                b.LaborCost,
		OverheadCost:             b.OverheadCost,
		TotalCost:                b.TotalCost,
		CostPerUnit:              b.CostPerUnit,
		Currency:                 b.Currency,
		OrderIDs:                 nonNil(b.OrderIDs),
		IngredientAllocations:    nonNil(b.IngredientAllocations),
	}
}

func FromDeliveryTimeline(runID string, tl []entities.DeliveryTimeline) DeliveryTimelineResponse {
	return DeliveryTimelineResponse{RunID: runID, Timeline: nonNil(tl)}
}

func fromSkippedOrders(in []entities.SkippedOrder) []SkippedOrderResponse {
	out := make([]SkippedOrderResponse, 0, len(in))
	for _, s := range in {
		out = append(out, SkippedOrderResponse{
			OrderID:         s.OrderID,
			RecipeID:        s.RecipeID,
			CustomerName:    s.Order.CustomerName,
			Reason:          string(s.Reason),
			Message:         s.Message,
			SuggestedAction: s.SuggestedAction,
		})
	}
	return out
}

func nonNil[T any](in []T) []T {
	if in == nil {
		return []T{}
	}
	return in
}
