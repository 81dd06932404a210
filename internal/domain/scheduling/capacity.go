package scheduling

import (
	"fmt"
	"time"

	"umkm_produksi/internal/domain/entities"
)

const (
	highCapacityRatio = 0.8
	dayLayout         = "2006-01-02"
)

// CapacityAnalysis is the run-local capacity ledger. AvailableCapacity is
// only ever decremented in program order and is never persisted.
type CapacityAnalysis struct {
	AvailableCapacity int
	ActiveBatches     int
	DailyBatches      map[string]int
	Warnings          []string
}

func AnalyzeCapacity(batches []entities.ProductionBatch, cfg Config, now time.Time) *CapacityAnalysis {
	ca := &CapacityAnalysis{DailyBatches: map[string]int{}}

	for _, b := range batches {
		if !b.IsActive() {
			continue
		}
		ca.ActiveBatches++
		ca.DailyBatches[b.ScheduledStart.UTC().Format(dayLayout)]++
	}

	today := ca.DailyBatches[now.UTC().Format(dayLayout)]
	if float64(today) >= float64(cfg.MaxBatchesPerDay)*highCapacityRatio {
		ca.Warnings = append(ca.Warnings, fmt.Sprintf("High capacity usage: %d/%d batches today", today, cfg.MaxBatchesPerDay))
	}
	if ca.ActiveBatches >= cfg.MaxConcurrentBatches {
		ca.Warnings = append(ca.Warnings, fmt.Sprintf("Maximum concurrent batches reached: %d", ca.ActiveBatches))
	}

	ca.AvailableCapacity = cfg.MaxBatchesPerDay - today
	if ca.AvailableCapacity < 0 {
		ca.AvailableCapacity = 0
	}
	return ca
}

func (c *CapacityAnalysis) TryReserve() bool {
	if c.AvailableCapacity <= 0 {
		return false
	}
	c.AvailableCapacity--
	return true
}

// Release gives back a slot reserved for a batch that was never created.
func (c *CapacityAnalysis) Release() {
	c.AvailableCapacity++
}
