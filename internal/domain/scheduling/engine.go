package scheduling

import (
	"context"
	"fmt"
	"strings"
	"time"

	"umkm_produksi/internal/domain/entities"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// Snapshot is the read-only input of one scheduling run.
type Snapshot struct {
	Orders        []entities.Order
	ActiveBatches []entities.ProductionBatch
	Inventory     []entities.IngredientAvailability
	Recipes       []entities.Recipe
}

type Outcome struct {
	Result           entities.SchedulingResult
	DeliveryTimeline []entities.DeliveryTimeline
}

// Engine turns confirmed orders into planned production batches.
//
// Schedule is not safe for concurrent runs against the same stock: the
// capacity and ingredient reservations it makes live only in memory until
// the caller persists the batches. Callers must serialize runs.
type Engine struct {
	estimator TimelineEstimator
	clock     func() time.Time
	newID     func() string
}

type Option func(*Engine)

func WithClock(clock func() time.Time) Option {
	return func(e *Engine) { e.clock = clock }
}

func WithIDGenerator(newID func() string) Option {
	return func(e *Engine) { e.newID = newID }
}

func NewEngine(estimator TimelineEstimator, opts ...Option) *Engine {
	e := &Engine{
		estimator: estimator,
		clock:     func() time.Time { return time.Now().UTC() },
		newID:     uuid.NewString,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) Schedule(ctx context.Context, snap Snapshot, cfg Config) (Outcome, error) {
	if err := cfg.Validate(); err != nil {
		return Outcome{}, err
	}
	if e.estimator == nil {
		return Outcome{}, ErrMissingTimelineEstimator
	}

	now := e.clock()
	result := entities.SchedulingResult{EstimatedCompletion: now}

	orders, batched := ExcludeBatchedOrders(snap.Orders, snap.ActiveBatches)
	for _, o := range batched {
		result.ExcludedOrders = append(result.ExcludedOrders, entities.SkippedOrder{
			OrderID:         o.ID,
			Order:           o,
			Reason:          entities.SkipReasonAlreadyBatched,
			Message:         "Order already assigned to an active production batch",
			SuggestedAction: "Track the existing batch",
		})
	}
	if len(batched) > 0 {
		log.WithField("orders", len(batched)).Debug("[scheduling][engine] skipped orders already in active batches")
	}

	if !cfg.AutoScheduleEnabled {
		for _, o := range orders {
			result.SkippedOrders = append(result.SkippedOrders, entities.SkippedOrder{
				OrderID:         o.ID,
				Order:           o,
				Reason:          entities.SkipReasonAutoSchedulingDisabled,
				Message:         "Auto-scheduling disabled",
				SuggestedAction: "Enable auto-scheduling or create batches manually",
			})
		}
		return Outcome{Result: result}, nil
	}

	eligible, tooLate := FilterEligibleOrders(orders, cfg.ScheduleBufferHours, now)
	for _, o := range tooLate {
		result.ExcludedOrders = append(result.ExcludedOrders, entities.SkippedOrder{
			OrderID: o.ID,
			Order:   o,
			Reason:  entities.SkipReasonDeliveryWindowTooShort,
			Message: fmt.Sprintf("Delivery in %.1f hours is inside the %.0f hour scheduling buffer",
				hoursUntil(*o.DeliveryDate, now), cfg.ScheduleBufferHours),
			SuggestedAction: "Produce manually or move the delivery date",
		})
	}

	capacity := AnalyzeCapacity(snap.ActiveBatches, cfg, now)
	result.CapacityWarnings = capacity.Warnings

	recipes := make(map[string]entities.Recipe, len(snap.Recipes))
	for _, r := range snap.Recipes {
		recipes[r.ID] = r
	}
	stock := newStockLedger(snap.Inventory)
	ledger := assignmentLedger{}
	materializer := &batchMaterializer{
		cfg:       cfg,
		estimator: e.estimator,
		now:       now,
		sequence:  newBatchSequence(now, snap.ActiveBatches),
		newID:     e.newID,
	}

	for _, group := range GroupByRecipe(eligible) {
		recipe, ok := recipes[group.RecipeID]
		if !ok {
			result.SkippedOrders = append(result.SkippedOrders, skipDemands(group.Demands,
				entities.SkipReasonRecipeNotFound,
				fmt.Sprintf("Recipe %s not found", group.RecipeID),
				"Check recipe availability")...)
			continue
		}

		recipe = withInventoryPrices(recipe, stock)
		gr, err := e.scheduleGroup(ctx, group, recipe, stock, capacity, ledger, materializer, cfg)
		if err != nil {
			return Outcome{}, err
		}
		result.CreatedBatches = append(result.CreatedBatches, gr.batches...)
		result.SkippedOrders = append(result.SkippedOrders, gr.skipped...)
		result.IngredientIssues = append(result.IngredientIssues, gr.issues...)
	}

	total := 0.0
	for _, b := range result.CreatedBatches {
		total += b.TotalCost
		if b.ScheduledCompletion.After(result.EstimatedCompletion) {
			result.EstimatedCompletion = b.ScheduledCompletion
		}
	}
	result.TotalCost = total
	result.Success = len(result.CreatedBatches) > 0

	return Outcome{
		Result:           result,
		DeliveryTimeline: EstimateDeliveryTimeline(result.CreatedBatches, eligible, now),
	}, nil
}

type groupResult struct {
	batches []entities.ProductionBatch
	skipped []entities.SkippedOrder
	issues  []entities.IngredientIssue
}

func (e *Engine) scheduleGroup(
	ctx context.Context,
	group RecipeGroup,
	recipe entities.Recipe,
	stock stockLedger,
	capacity *CapacityAnalysis,
	ledger assignmentLedger,
	m *batchMaterializer,
	cfg Config,
) (groupResult, error) {
	var out groupResult
	logger := log.WithFields(log.Fields{"recipe_id": recipe.ID, "demands": len(group.Demands)})

	sizes := CalculateBatchSizes(group.TotalQuantity(), cfg)
	report, err := CheckIngredientFeasibility(sizes, recipe, stock)
	if err != nil {
		return groupResult{}, err
	}
	out.issues = report.Issues

	if critical := report.CriticalShortages(); len(critical) > 0 {
		names := make([]string, 0, len(critical))
		for _, c := range critical {
			names = append(names, c.IngredientName)
		}
		logger.WithField("ingredients", names).Info("[scheduling][engine] recipe group blocked by ingredient shortage")
		out.skipped = skipDemands(group.Demands, entities.SkipReasonIngredientShortage,
			"Ingredient shortage: "+strings.Join(names, ", "),
			"Restock ingredients or reduce batch size")
		return out, nil
	}

	pool := group.Demands
	for _, size := range sizes {
		if len(pool) == 0 {
			break
		}
		assigned, rest := AssignDemands(pool, size)
		if len(assigned) == 0 {
			continue
		}
		pool = rest

		if !capacity.TryReserve() {
			logger.WithField("batch_size", size).Info("[scheduling][engine] production capacity exhausted")
			out.skipped = append(out.skipped, skipDemands(assigned, entities.SkipReasonCapacityExceeded,
				"Production capacity exceeded",
				"Schedule for next available slot or increase capacity")...)
			break
		}

		batch, err := m.Materialize(ctx, recipe, size, assigned)
		if err != nil {
			capacity.Release()
			logger.WithError(err).Warn("[scheduling][engine] batch materialization failed")
			out.skipped = append(out.skipped, skipDemands(assigned, entities.SkipReasonSchedulingError,
				"Scheduling error: "+err.Error(),
				"Retry scheduling or plan the batch manually")...)
			break
		}
		if err := ledger.commit(batch.ID, assigned); err != nil {
			return groupResult{}, err
		}
		stock.consume(batch.IngredientAllocations)
		out.batches = append(out.batches, batch)
		logger.WithFields(log.Fields{"batch_number": batch.BatchNumber, "batch_size": size, "orders": len(assigned)}).
			Debug("[scheduling][engine] batch planned")
	}

	out.skipped = append(out.skipped, skipDemands(pool, entities.SkipReasonUnfitForBatches,
		"Could not fit in available batches",
		"Schedule for next production cycle")...)
	return out, nil
}

func skipDemands(demands []Demand, reason entities.SkipReason, message, action string) []entities.SkippedOrder {
	out := make([]entities.SkippedOrder, 0, len(demands))
	for _, d := range demands {
		out = append(out, entities.SkippedOrder{
			OrderID:         d.OrderID,
			RecipeID:        d.RecipeID,
			Order:           d.Order,
			Reason:          reason,
			Message:         message,
			SuggestedAction: action,
		})
	}
	return out
}

// stockLedger is the run-local view of available ingredient stock. Batches
// created earlier in the run reduce what later recipe groups can use.
type stockLedger map[string]entities.IngredientAvailability

func newStockLedger(inventory []entities.IngredientAvailability) stockLedger {
	l := make(stockLedger, len(inventory))
	for _, inv := range inventory {
		l[inv.IngredientID] = inv
	}
	return l
}

func (l stockLedger) consume(allocations []entities.IngredientAllocation) {
	for _, a := range allocations {
		inv, ok := l[a.IngredientID]
		if !ok {
			continue
		}
		inv.AllocatedStock += a.PlannedQuantity
		inv.AvailableStock -= a.PlannedQuantity
		if inv.AvailableStock < 0 {
			inv.AvailableStock = 0
		}
		l[a.IngredientID] = inv
	}
}
