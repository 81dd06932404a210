package timeline

import (
	"context"
	"math"
	"time"

	"umkm_produksi/internal/domain/entities"
	"umkm_produksi/internal/usecase/interfaces"

	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const rushSlot = 15 * time.Minute

var ErrInvalidBatchSize = errors.New("batch size must be positive")

// Config describes the production floor of a small bakery. Environment
// variables use the TIMELINE_ prefix.
type Config struct {
	PrepMinutes        float64 `envconfig:"PREP_MINUTES" default:"30"`
	CookMinutes        float64 `envconfig:"COOK_MINUTES" default:"45"`
	BufferMinutes      float64 `envconfig:"BUFFER_MINUTES" default:"15"`
	RushCookFactor     float64 `envconfig:"RUSH_COOK_FACTOR" default:"0.75"`
	ReferenceBatchSize int     `envconfig:"REFERENCE_BATCH_SIZE" default:"50"`
	ProductionStart    string  `envconfig:"PRODUCTION_START" default:"04:00"`
	Timezone           string  `envconfig:"TIMEZONE" default:"Asia/Jakarta"`
}

// LocalEstimator places every regular batch at the next production start
// and every rush batch at the next 15 minute slot. It keeps no queue, so
// batches of one run may share a start time.
type LocalEstimator struct {
	cfg      Config
	startH   int
	startM   int
	location *time.Location
	clock    func() time.Time
}

var _ interfaces.ITimelineEstimator = (*LocalEstimator)(nil)

func NewLocalEstimator(cfg Config, clock func() time.Time) (*LocalEstimator, error) {
	start, err := time.Parse("15:04", cfg.ProductionStart)
	if err != nil {
		return nil, errors.Wrapf(err, "parse production start %q", cfg.ProductionStart)
	}
	if cfg.ReferenceBatchSize <= 0 {
		return nil, errors.Wrap(ErrInvalidBatchSize, "reference batch size")
	}
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		log.WithError(err).WithField("timezone", cfg.Timezone).Warn("[scheduling][timeline] unknown timezone, using UTC")
		loc = time.UTC
	}
	if clock == nil {
		clock = time.Now
	}
	return &LocalEstimator{
		cfg:      cfg,
		startH:   start.Hour(),
		startM:   start.Minute(),
		location: loc,
		clock:    clock,
	}, nil
}

func NewLocalEstimatorFromEnv() (*LocalEstimator, error) {
	var cfg Config
	if err := envconfig.Process("TIMELINE", &cfg); err != nil {
		return nil, errors.Wrap(err, "load timeline config")
	}
	return NewLocalEstimator(cfg, nil)
}

func (e *LocalEstimator) EstimateProductionTimeline(_ context.Context, recipeID string, batchSize int, opts entities.TimelineOptions) (entities.ProductionTimeline, error) {
	if batchSize <= 0 {
		return entities.ProductionTimeline{}, errors.Wrapf(ErrInvalidBatchSize, "recipe %s batch size %d", recipeID, batchSize)
	}

	rush := opts.RushOrder || opts.Priority == entities.BatchPriorityRush || opts.Priority == entities.BatchPriorityUrgent
	now := e.clock().In(e.location)

	var start time.Time
	cook := e.cfg.CookMinutes
	if rush {
		start = now.Truncate(rushSlot)
		if start.Before(now) {
			start = start.Add(rushSlot)
		}
		cook *= e.cfg.RushCookFactor
	} else {
		start = time.Date(now.Year(), now.Month(), now.Day(), e.startH, e.startM, 0, 0, e.location)
		if start.Before(now) {
			start = start.AddDate(0, 0, 1)
		}
	}

	scale := math.Max(float64(batchSize)/float64(e.cfg.ReferenceBatchSize), 1)
	minutes := int(math.Round((e.cfg.PrepMinutes + cook + e.cfg.BufferMinutes) * scale))

	return entities.ProductionTimeline{
		ScheduledStart:      start.UTC(),
		ScheduledCompletion: start.Add(time.Duration(minutes) * time.Minute).UTC(),
		DurationMinutes:     minutes,
	}, nil
}
