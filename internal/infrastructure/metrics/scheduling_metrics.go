package metrics

import (
	"strconv"
	"time"

	"umkm_produksi/internal/domain/entities"
	"umkm_produksi/internal/usecase/interfaces"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	namespace = "umkm"
	subsystem = "scheduling"
)

var (
	runsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "runs_total",
		Help:      "Executed scheduling runs by outcome",
	}, []string{"dry_run", "success"})

	batchesCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "batches_created_total",
		Help:      "Production batches planned by scheduling runs",
	}, []string{"dry_run"})

	skippedOrders = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "skipped_orders_total",
		Help:      "Order demands left unscheduled, by reason",
	}, []string{"reason"})

	excludedOrders = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "excluded_orders_total",
		Help:      "Orders whose delivery date fell inside the scheduling buffer",
	})

	persistenceErrors = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "persistence_errors_total",
		Help:      "Planned batches that could not be written",
	})

	runDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "run_duration_seconds",
		Help:      "Wall time of a scheduling run including persistence",
		Buckets:   prometheus.ExponentialBuckets(0.01, 2, 12),
	})
)

// Recorder publishes run outcomes to the default Prometheus registry.
type Recorder struct{}

var _ interfaces.ISchedulingRecorder = Recorder{}

func NewRecorder() Recorder {
	return Recorder{}
}

func (Recorder) RecordRun(run entities.SchedulingRun, elapsed time.Duration) {
	dryRun := strconv.FormatBool(run.DryRun)
	runsTotal.WithLabelValues(dryRun, strconv.FormatBool(run.Result.Success)).Inc()
	batchesCreated.WithLabelValues(dryRun).Add(float64(len(run.Result.CreatedBatches)))
	for _, s := range run.Result.SkippedOrders {
		skippedOrders.WithLabelValues(string(s.Reason)).Inc()
	}
	excludedOrders.Add(float64(len(run.Result.ExcludedOrders)))
	persistenceErrors.Add(float64(len(run.PersistenceErrors)))
	runDuration.Observe(elapsed.Seconds())
}
