package usecase

import (
	"context"
	"strings"
	"sync/atomic"
	"time"

	"umkm_produksi/internal/domain/entities"
	"umkm_produksi/internal/domain/scheduling"
	"umkm_produksi/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/semaphore"
)

const defaultAcquireTimeout = 2 * time.Second

var (
	ErrSchedulingInProgress = errors.New("another scheduling run is in progress")
	ErrRunNotFound          = errors.New("scheduling run not found")
	ErrInvalidRunID         = errors.New("invalid run id")
)

// schedulableStatuses are the order statuses the repository is asked for.
// The engine applies the same rule again.
var schedulableStatuses = []entities.OrderStatus{entities.OrderStatusConfirmed, entities.OrderStatusPaid}

// IProductionSchedulingUseCase exposes the production scheduling operations.
//
//   - POST /production/schedules => ScheduleProduction()
//   - GET  /production/schedules/:run_id => GetRun()
//   - GET  /production/schedules/:run_id/delivery-timeline => GetDeliveryTimeline()
//   - GET  /production/stats => GetStats()
//   - GET/PUT /production/config => GetConfig() / UpdateConfig()

type IProductionSchedulingUseCase interface {
	ScheduleProduction(ctx context.Context, cmd ScheduleCommand) (entities.SchedulingRun, error)
	GetRun(ctx context.Context, runID string) (entities.SchedulingRun, error)
	GetDeliveryTimeline(ctx context.Context, runID string) ([]entities.DeliveryTimeline, error)
	GetStats(ctx context.Context) (entities.ProductionStats, error)
	GetConfig(ctx context.Context) scheduling.Config
	UpdateConfig(ctx context.Context, cfg scheduling.Config) (scheduling.Config, error)
}

// ScheduleCommand selects how one run executes. An empty OrderIDs schedules
// every pending order; otherwise only the listed ones are considered.
// Override, when set, replaces the current config for this run only.
type ScheduleCommand struct {
	DryRun   bool
	OrderIDs []string
	Override *scheduling.Config
}

// SchedulingDependencies groups the collaborators of ProductionSchedulingUseCase.
// Recorder may be nil.
type SchedulingDependencies struct {
	Orders      interfaces.IOrderRepository
	Ingredients interfaces.IIngredientRepository
	Recipes     interfaces.IRecipeRepository
	Batches     interfaces.IProductionBatchRepository
	Runs        interfaces.ISchedulingRunStore
	Estimator   interfaces.ITimelineEstimator
	Recorder    interfaces.ISchedulingRecorder
}

type ProductionSchedulingUseCase struct {
	deps           SchedulingDependencies
	engine         *scheduling.Engine
	config         atomic.Pointer[scheduling.Config]
	runLock        *semaphore.Weighted
	acquireTimeout time.Duration
	clock          func() time.Time
	newID          func() string
	lastRun        atomic.Pointer[entities.SchedulingRun]
}

var _ IProductionSchedulingUseCase = (*ProductionSchedulingUseCase)(nil)

type UseCaseOption func(*ProductionSchedulingUseCase)

// WithEngineOptions forwards options to the scheduling engine.
func WithEngineOptions(opts ...scheduling.Option) UseCaseOption {
	return func(u *ProductionSchedulingUseCase) {
		u.engine = scheduling.NewEngine(u.deps.Estimator, opts...)
	}
}

func WithRunClock(clock func() time.Time) UseCaseOption {
	return func(u *ProductionSchedulingUseCase) { u.clock = clock }
}

func WithRunIDGenerator(newID func() string) UseCaseOption {
	return func(u *ProductionSchedulingUseCase) { u.newID = newID }
}

// WithAcquireTimeout bounds how long a run waits for the one in progress.
func WithAcquireTimeout(d time.Duration) UseCaseOption {
	return func(u *ProductionSchedulingUseCase) { u.acquireTimeout = d }
}

func NewProductionSchedulingUseCase(deps SchedulingDependencies, cfg scheduling.Config, opts ...UseCaseOption) (*ProductionSchedulingUseCase, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	u := &ProductionSchedulingUseCase{
		deps:           deps,
		engine:         scheduling.NewEngine(deps.Estimator),
		runLock:        semaphore.NewWeighted(1),
		acquireTimeout: defaultAcquireTimeout,
		clock:          func() time.Time { return time.Now().UTC() },
		newID:          uuid.NewString,
	}
	c := cfg.Clone()
	u.config.Store(&c)
	for _, opt := range opts {
		opt(u)
	}
	return u, nil
}

func (u *ProductionSchedulingUseCase) ScheduleProduction(ctx context.Context, cmd ScheduleCommand) (entities.SchedulingRun, error) {
	cfg := u.GetConfig(ctx)
	if cmd.Override != nil {
		if err := cmd.Override.Validate(); err != nil {
			log.WithError(err).Info("[scheduling][usecase] rejected config override")
			return entities.SchedulingRun{}, err
		}
		cfg = cmd.Override.Clone()
	}

	acquireCtx, cancel := context.WithTimeout(ctx, u.acquireTimeout)
	defer cancel()
	if err := u.runLock.Acquire(acquireCtx, 1); err != nil {
		if ctx.Err() != nil {
			return entities.SchedulingRun{}, errors.Wrap(ctx.Err(), "wait for scheduling run")
		}
		log.WithField("timeout", u.acquireTimeout).Info("[scheduling][usecase] run already in progress")
		return entities.SchedulingRun{}, ErrSchedulingInProgress
	}
	defer u.runLock.Release(1)

	run := entities.SchedulingRun{ID: u.newID(), StartedAt: u.clock(), DryRun: cmd.DryRun}
	logger := log.WithFields(log.Fields{"run_id": run.ID, "dry_run": cmd.DryRun, "strategy": cfg.BatchSizeStrategy})
	logger.Info("[scheduling][usecase] run start")

	snap, err := u.loadState(ctx)
	if err != nil {
		logger.WithError(err).Error("[scheduling][usecase] failed loading snapshot")
		return entities.SchedulingRun{}, err
	}
	var missing []string
	if len(cmd.OrderIDs) > 0 {
		snap.Orders, missing = selectOrders(snap.Orders, cmd.OrderIDs)
		logger.WithFields(log.Fields{"requested": len(cmd.OrderIDs), "missing": missing}).Info("[scheduling][usecase] manual selection")
	}
	if ids := recipeIDs(snap.Orders); len(ids) > 0 {
		snap.Recipes, err = u.deps.Recipes.GetByIDs(ctx, ids)
		if err != nil {
			logger.WithError(err).Error("[scheduling][usecase] failed loading snapshot")
			return entities.SchedulingRun{}, errors.Wrap(err, "load recipes")
		}
	}
	logger.WithFields(log.Fields{
		"orders":         len(snap.Orders),
		"active_batches": len(snap.ActiveBatches),
		"ingredients":    len(snap.Inventory),
		"recipes":        len(snap.Recipes),
	}).Debug("[scheduling][usecase] snapshot loaded")

	outcome, err := u.engine.Schedule(ctx, snap, cfg)
	if err != nil {
		logger.WithError(err).Error("[scheduling][usecase] engine failed")
		return entities.SchedulingRun{}, err
	}
	run.Result = outcome.Result
	run.DeliveryTimeline = outcome.DeliveryTimeline
	for _, id := range missing {
		run.Result.ExcludedOrders = append(run.Result.ExcludedOrders, entities.SkippedOrder{
			OrderID:         id,
			Reason:          entities.SkipReasonOrderNotSchedulable,
			Message:         "Order not found or not confirmed/paid",
			SuggestedAction: "Confirm the order before scheduling it",
		})
	}

	if !cmd.DryRun {
		run.PersistenceErrors = u.persistBatches(ctx, logger, outcome.Result.CreatedBatches)
	}
	run.FinishedAt = u.clock()

	if err := u.deps.Runs.Save(ctx, run); err != nil {
		logger.WithError(err).Warn("[scheduling][usecase] failed storing run")
	}
	u.lastRun.Store(&run)
	if u.deps.Recorder != nil {
		u.deps.Recorder.RecordRun(run, run.FinishedAt.Sub(run.StartedAt))
	}

	logger.WithFields(log.Fields{
		"success":            run.Result.Success,
		"created_batches":    len(run.Result.CreatedBatches),
		"skipped_orders":     len(run.Result.SkippedOrders),
		"excluded_orders":    len(run.Result.ExcludedOrders),
		"persistence_errors": len(run.PersistenceErrors),
	}).Info("[scheduling][usecase] run finished")
	return run, nil
}

// loadState reads orders, active batches and stock. Recipes are left to the
// caller since they depend on which orders are scheduled.
func (u *ProductionSchedulingUseCase) loadState(ctx context.Context) (scheduling.Snapshot, error) {
	orders, err := u.deps.Orders.ListByStatuses(ctx, schedulableStatuses)
	if err != nil {
		return scheduling.Snapshot{}, errors.Wrap(err, "load orders")
	}
	active, err := u.deps.Batches.ListActive(ctx)
	if err != nil {
		return scheduling.Snapshot{}, errors.Wrap(err, "load active batches")
	}
	inventory, err := u.deps.Ingredients.ListAvailability(ctx)
	if err != nil {
		return scheduling.Snapshot{}, errors.Wrap(err, "load ingredient availability")
	}
	return scheduling.Snapshot{
		Orders:        orders,
		ActiveBatches: active,
		Inventory:     inventory,
	}, nil
}

// selectOrders keeps the requested orders in load order and reports the
// requested IDs that were not loaded.
func selectOrders(orders []entities.Order, ids []string) (selected []entities.Order, missing []string) {
	want := make(map[string]bool, len(ids))
	for _, id := range ids {
		want[strings.TrimSpace(id)] = true
	}
	found := map[string]bool{}
	for _, o := range orders {
		if want[o.ID] {
			selected = append(selected, o)
			found[o.ID] = true
		}
	}
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id != "" && !found[id] {
			missing = append(missing, id)
			found[id] = true
		}
	}
	return selected, missing
}

// persistBatches writes every batch on its own. A failed batch is reported
// and never retried; the remaining batches are still written.
func (u *ProductionSchedulingUseCase) persistBatches(ctx context.Context, logger *log.Entry, batches []entities.ProductionBatch) []entities.BatchPersistenceError {
	var failures []entities.BatchPersistenceError
	for _, b := range batches {
		if err := u.deps.Batches.CreateWithAllocations(ctx, b); err != nil {
			logger.WithError(err).WithField("batch_number", b.BatchNumber).Error("[scheduling][usecase] failed persisting batch")
			failures = append(failures, entities.BatchPersistenceError{
				BatchID:     b.ID,
				BatchNumber: b.BatchNumber,
				OrderIDs:    b.OrderIDs,
				Error:       err.Error(),
			})
		}
	}
	return failures
}

func recipeIDs(orders []entities.Order) []string {
	seen := map[string]bool{}
	var ids []string
	for _, o := range orders {
		for _, it := range o.Items {
			if it.RecipeID == "" || seen[it.RecipeID] {
				continue
			}
			seen[it.RecipeID] = true
			ids = append(ids, it.RecipeID)
		}
	}
	return ids
}

func (u *ProductionSchedulingUseCase) GetRun(ctx context.Context, runID string) (entities.SchedulingRun, error) {
	runID = strings.TrimSpace(runID)
	if runID == "" {
		return entities.SchedulingRun{}, ErrInvalidRunID
	}

	run, err := u.deps.Runs.Get(ctx, runID)
	if err != nil {
		return entities.SchedulingRun{}, err
	}
	if run.ID == "" {
		return entities.SchedulingRun{}, ErrRunNotFound
	}
	return run, nil
}

func (u *ProductionSchedulingUseCase) GetDeliveryTimeline(ctx context.Context, runID string) ([]entities.DeliveryTimeline, error) {
	run, err := u.GetRun(ctx, runID)
	if err != nil {
		return nil, err
	}
	return run.DeliveryTimeline, nil
}

// GetStats summarizes the current pipeline state and the latest run since
// startup.
func (u *ProductionSchedulingUseCase) GetStats(ctx context.Context) (entities.ProductionStats, error) {
	snap, err := u.loadState(ctx)
	if err != nil {
		log.WithError(err).Error("[scheduling][usecase] failed loading stats")
		return entities.ProductionStats{}, err
	}
	return scheduling.ComputeStats(snap, u.lastRun.Load(), u.clock()), nil
}

func (u *ProductionSchedulingUseCase) GetConfig(_ context.Context) scheduling.Config {
	return u.config.Load().Clone()
}

// UpdateConfig replaces the config used by subsequent runs. A run already in
// progress keeps the config it started with.
func (u *ProductionSchedulingUseCase) UpdateConfig(_ context.Context, cfg scheduling.Config) (scheduling.Config, error) {
	if err := cfg.Validate(); err != nil {
		return scheduling.Config{}, err
	}
	c := cfg.Clone()
	u.config.Store(&c)
	log.WithFields(log.Fields{
		"strategy":            c.BatchSizeStrategy,
		"max_batches_per_day": c.MaxBatchesPerDay,
		"auto_schedule":       c.AutoScheduleEnabled,
	}).Info("[scheduling][usecase] config updated")
	return c.Clone(), nil
}
