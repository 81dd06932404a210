package entities

import "time"

// SkipReason is the machine-readable code attached to every order demand
// the scheduler did not bind to a batch.

type SkipReason string

const (
	SkipReasonAutoSchedulingDisabled SkipReason = "auto_scheduling_disabled"
	SkipReasonDeliveryWindowTooShort SkipReason = "delivery_window_too_short"
	SkipReasonAlreadyBatched         SkipReason = "already_batched"
	SkipReasonOrderNotSchedulable    SkipReason = "order_not_schedulable"
	SkipReasonRecipeNotFound         SkipReason = "recipe_not_found"
	SkipReasonIngredientShortage     SkipReason = "ingredient_shortage"
	SkipReasonCapacityExceeded       SkipReason = "capacity_exceeded"
	SkipReasonUnfitForBatches        SkipReason = "unfit_for_batches"
	SkipReasonSchedulingError        SkipReason = "scheduling_error"
)

type SkippedOrder struct {
	OrderID         string     `json:"order_id"`
	RecipeID        string     `json:"recipe_id,omitempty"`
	Order           Order      `json:"order"`
	Reason          SkipReason `json:"reason"`
	Message         string     `json:"message"`
	SuggestedAction string     `json:"suggested_action"`
}

type IngredientIssue struct {
	IngredientID   string  `json:"ingredient_id"`
	IngredientName string  `json:"ingredient_name"`
	RecipeID       string  `json:"recipe_id"`
	Required       float64 `json:"required"`
	Available      float64 `json:"available"`
	Shortage       float64 `json:"shortage"`
	Critical       bool    `json:"critical"`
}

// SchedulingResult is the sole output of one scheduling run.
//
// Success is true iff at least one batch was created. An empty run with no
// skips, issues or warnings simply had nothing to schedule.
//
// ExcludedOrders lists orders dropped before grouping: already in an active
// batch, inside the delivery buffer, or requested but not schedulable. They
// are kept apart from SkippedOrders.
type SchedulingResult struct {
	Success             bool              `json:"success"`
	CreatedBatches      []ProductionBatch `json:"created_batches"`
	SkippedOrders       []SkippedOrder    `json:"skipped_orders"`
	ExcludedOrders      []SkippedOrder    `json:"excluded_orders"`
	IngredientIssues    []IngredientIssue `json:"ingredient_issues"`
	CapacityWarnings    []string          `json:"capacity_warnings"`
	EstimatedCompletion time.Time         `json:"estimated_completion"`
	TotalCost           float64           `json:"total_cost"`
}

type DeliveryTimeline struct {
	OrderID               string    `json:"order_id"`
	EstimatedReadyDate    time.Time `json:"estimated_ready_date"`
	EstimatedDeliveryDate time.Time `json:"estimated_delivery_date"`
	ProductionBatchID     string    `json:"production_batch_id"`
	OnTimeProbability     float64   `json:"on_time_probability"`
}

// TimelineOptions is the priority context handed to the timeline estimator.
type TimelineOptions struct {
	Priority  BatchPriority `json:"priority"`
	RushOrder bool          `json:"rush_order"`
}

type ProductionTimeline struct {
	ScheduledStart      time.Time `json:"scheduled_start"`
	ScheduledCompletion time.Time `json:"scheduled_completion"`
	DurationMinutes     int       `json:"duration_minutes"`
}

type BatchPersistenceError struct {
	BatchID     string   `json:"batch_id"`
	BatchNumber string   `json:"batch_number"`
	OrderIDs    []string `json:"order_ids"`
	Error       string   `json:"error"`
}

// SchedulingRun wraps one executed scheduling run with its persistence
// outcome. Persistence failures are reported, never retried.
type SchedulingRun struct {
	ID                string                  `json:"id"`
	StartedAt         time.Time               `json:"started_at"`
	FinishedAt        time.Time               `json:"finished_at"`
	DryRun            bool                    `json:"dry_run"`
	Result            SchedulingResult        `json:"result"`
	DeliveryTimeline  []DeliveryTimeline      `json:"delivery_timeline"`
	PersistenceErrors []BatchPersistenceError `json:"persistence_errors,omitempty"`
}
