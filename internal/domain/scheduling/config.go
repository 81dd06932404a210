package scheduling

import (
	"umkm_produksi/internal/domain/entities"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

type BatchSizeStrategy string

const (
	StrategyFixed      BatchSizeStrategy = "fixed"
	StrategyOptimal    BatchSizeStrategy = "optimal"
	StrategyOrderBased BatchSizeStrategy = "order_based"
)

const envPrefix = "SCHEDULER"

// Config drives one scheduling run. It is treated as an immutable value:
// callers hand a copy to every run and replace it wholesale to change it.
//
// Environment variables (prefix SCHEDULER_):
//   - AUTO_SCHEDULE_ENABLED, SCHEDULE_BUFFER_HOURS, MAX_BATCHES_PER_DAY
//   - MAX_CONCURRENT_BATCHES, BATCH_SIZE_STRATEGY, DEFAULT_BATCH_SIZE
//   - MIN_BATCH_SIZE, MAX_BATCH_SIZE, PRIORITY_MAPPING (low:low,rush:rush,...)
//   - RUSH_ORDER_THRESHOLD_HOURS, LABOR_HOURLY_RATE, OVERHEAD_RATE, CURRENCY
type Config struct {
	AutoScheduleEnabled     bool                                              `json:"auto_schedule_enabled" envconfig:"AUTO_SCHEDULE_ENABLED" default:"true"`
	ScheduleBufferHours     float64                                           `json:"schedule_buffer_hours" envconfig:"SCHEDULE_BUFFER_HOURS" default:"4" validate:"gte=0"`
	MaxBatchesPerDay        int                                               `json:"max_batches_per_day" envconfig:"MAX_BATCHES_PER_DAY" default:"8" validate:"gte=1"`
	MaxConcurrentBatches    int                                               `json:"max_concurrent_batches" envconfig:"MAX_CONCURRENT_BATCHES" default:"10" validate:"gte=1"`
	BatchSizeStrategy       BatchSizeStrategy                                 `json:"batch_size_strategy" envconfig:"BATCH_SIZE_STRATEGY" default:"optimal" validate:"oneof=fixed optimal order_based"`
	DefaultBatchSize        int                                               `json:"default_batch_size" envconfig:"DEFAULT_BATCH_SIZE" default:"50" validate:"gte=1,gtefield=MinBatchSize,ltefield=MaxBatchSize"`
	MinBatchSize            int                                               `json:"min_batch_size" envconfig:"MIN_BATCH_SIZE" default:"10" validate:"gte=1"`
	MaxBatchSize            int                                               `json:"max_batch_size" envconfig:"MAX_BATCH_SIZE" default:"100" validate:"gtefield=MinBatchSize"`
	PriorityMapping         map[entities.OrderPriority]entities.BatchPriority `json:"priority_mapping" envconfig:"PRIORITY_MAPPING" default:"low:low,normal:normal,high:high,urgent:urgent,rush:rush" validate:"dive,keys,oneof=low normal high urgent rush,endkeys,oneof=low normal high urgent rush"`
	RushOrderThresholdHours float64                                           `json:"rush_order_threshold_hours" envconfig:"RUSH_ORDER_THRESHOLD_HOURS" default:"12" validate:"gte=0"`
	LaborHourlyRate         float64                                           `json:"labor_hourly_rate" envconfig:"LABOR_HOURLY_RATE" default:"25000" validate:"gte=0"`
	OverheadRate            float64                                           `json:"overhead_rate" envconfig:"OVERHEAD_RATE" default:"0.15" validate:"gte=0,lte=1"`
	Currency                string                                            `json:"currency" envconfig:"CURRENCY" default:"IDR" validate:"required,len=3"`
}

var validate = validator.New()

func DefaultConfig() Config {
	return Config{
		AutoScheduleEnabled:  true,
		ScheduleBufferHours:  4,
		MaxBatchesPerDay:     8,
		MaxConcurrentBatches: 10,
		BatchSizeStrategy:    StrategyOptimal,
		DefaultBatchSize:     50,
		MinBatchSize:         10,
		MaxBatchSize:         100,
		PriorityMapping: map[entities.OrderPriority]entities.BatchPriority{
			entities.OrderPriorityLow:    entities.BatchPriorityLow,
			entities.OrderPriorityNormal: entities.BatchPriorityNormal,
			entities.OrderPriorityHigh:   entities.BatchPriorityHigh,
			entities.OrderPriorityUrgent: entities.BatchPriorityUrgent,
			entities.OrderPriorityRush:   entities.BatchPriorityRush,
		},
		RushOrderThresholdHours: 12,
		LaborHourlyRate:         25000,
		OverheadRate:            0.15,
		Currency:                "IDR",
	}
}

// LoadConfigFromEnv reads SCHEDULER_* variables on top of the defaults and
// validates the result.
func LoadConfigFromEnv() (Config, error) {
	var cfg Config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return Config{}, errors.Wrap(err, "load scheduler config")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(ErrInvalidConfig, err.Error())
	}
	return nil
}

// Clone returns a copy that shares no mutable state with c.
func (c Config) Clone() Config {
	out := c
	out.PriorityMapping = make(map[entities.OrderPriority]entities.BatchPriority, len(c.PriorityMapping))
	for k, v := range c.PriorityMapping {
		out.PriorityMapping[k] = v
	}
	return out
}

// BatchPriorityFor maps an order priority through PriorityMapping, falling
// back to the same-named batch priority.
func (c Config) BatchPriorityFor(p entities.OrderPriority) entities.BatchPriority {
	if bp, ok := c.PriorityMapping[p]; ok {
		return bp
	}
	return entities.BatchPriority(p)
}
