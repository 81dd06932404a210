package request

import (
	"umkm_produksi/internal/domain/entities"
	"umkm_produksi/internal/domain/scheduling"
)

// ScheduleRequest triggers one scheduling run. Config, when present, is
// applied on top of the current config for this run only. OrderIDs limits
// the run to the listed orders.
type ScheduleRequest struct {
	DryRun   bool            `json:"dry_run"`
	OrderIDs []string        `json:"order_ids" binding:"omitempty,max=500,dive,required"`
	Config   *ConfigOverride `json:"config"`
}

// ConfigOverride carries optional config fields; nil fields keep the base
// value. It is also the body of PUT /production/config.
type ConfigOverride struct {
	AutoScheduleEnabled     *bool             `json:"auto_schedule_enabled"`
	ScheduleBufferHours     *float64          `json:"schedule_buffer_hours"`
	MaxBatchesPerDay        *int              `json:"max_batches_per_day"`
	MaxConcurrentBatches    *int              `json:"max_concurrent_batches"`
	BatchSizeStrategy       *string           `json:"batch_size_strategy" binding:"omitempty,oneof=fixed optimal order_based"`
	DefaultBatchSize        *int              `json:"default_batch_size"`
	MinBatchSize            *int              `json:"min_batch_size"`
	MaxBatchSize            *int              `json:"max_batch_size"`
	PriorityMapping         map[string]string `json:"priority_mapping"`
	RushOrderThresholdHours *float64          `json:"rush_order_threshold_hours"`
	LaborHourlyRate         *float64          `json:"labor_hourly_rate"`
	OverheadRate            *float64          `json:"overhead_rate"`
	Currency                *string           `json:"currency"`
}

// ApplyTo returns base with every set field replaced. PriorityMapping
// entries are merged into the base mapping.
func (o ConfigOverride) ApplyTo(base scheduling.Config) scheduling.Config {
	cfg := base.Clone()
	if o.AutoScheduleEnabled != nil {
		cfg.AutoScheduleEnabled = *o.AutoScheduleEnabled
	}
	if o.ScheduleBufferHours != nil {
		cfg.ScheduleBufferHours = *o.ScheduleBufferHours
	}
	if o.MaxBatchesPerDay != nil {
		cfg.MaxBatchesPerDay = *o.MaxBatchesPerDay
	}
	if o.MaxConcurrentBatches != nil {
		cfg.MaxConcurrentBatches = *o.MaxConcurrentBatches
	}
	if o.BatchSizeStrategy != nil {
		cfg.BatchSizeStrategy = scheduling.BatchSizeStrategy(*o.BatchSizeStrategy)
	}
	if o.DefaultBatchSize != nil {
		cfg.DefaultBatchSize = *o.DefaultBatchSize
	}
	if o.MinBatchSize != nil {
		cfg.MinBatchSize = *o.MinBatchSize
	}
	if o.MaxBatchSize != nil {
		cfg.MaxBatchSize = *o.MaxBatchSize
	}
	for k, v := range o.PriorityMapping {
		cfg.PriorityMapping[entities.OrderPriority(k)] = entities.BatchPriority(v)
	}
	if o.RushOrderThresholdHours != nil {
		cfg.RushOrderThresholdHours = *o.RushOrderThresholdHours
	}
	if o.LaborHourlyRate != nil {
		cfg.LaborHourlyRate = *o.LaborHourlyRate
	}
	if o.OverheadRate != nil {
		cfg.OverheadRate = *o.OverheadRate
	}
	if o.Currency != nil {
		cfg.Currency = *o.Currency
	}
	return cfg
}
