package scheduling

const (
	optimalScanStep       = 5
	orderBasedUpperFactor = 1.3
)

// CalculateBatchSizes splits total units of demand into batch sizes whose sum
// is at least total, following cfg.BatchSizeStrategy.
func CalculateBatchSizes(total int, cfg Config) []int {
	if total <= 0 {
		return nil
	}

	switch cfg.BatchSizeStrategy {
	case StrategyFixed:
		return fixedBatches(total, cfg.DefaultBatchSize)
	case StrategyOptimal:
		return fixedBatches(total, optimalBatchSize(total, cfg.MinBatchSize, cfg.MaxBatchSize))
	case StrategyOrderBased:
		return orderBasedBatches(total, cfg.DefaultBatchSize, cfg.MaxBatchSize)
	default:
		return []int{min(total, cfg.DefaultBatchSize)}
	}
}

// fixedBatches chunks total into size-sized batches. The last chunk holds the
// remainder and may fall below the configured minimum.
func fixedBatches(total, size int) []int {
	if size <= 0 {
		return nil
	}
	var out []int
	for remaining := total; remaining > 0; remaining -= size {
		out = append(out, min(remaining, size))
	}
	return out
}

// optimalBatchSize scans [minSize, maxSize] in steps of 5 and returns the
// first size with the least overproduction.
func optimalBatchSize(total, minSize, maxSize int) int {
	best := minSize
	bestWaste := batchWaste(total, minSize)
	for size := minSize + optimalScanStep; size <= maxSize; size += optimalScanStep {
		if w := batchWaste(total, size); w < bestWaste {
			best, bestWaste = size, w
		}
	}
	return best
}

func batchWaste(total, size int) int {
	batches := (total + size - 1) / size
	return batches*size - total
}

// orderBasedBatches avoids small trailing batches: a remainder below 130% of
// the preferred size is produced in one go, as long as it fits maxSize.
func orderBasedBatches(total, preferred, maxSize int) []int {
	if preferred <= 0 {
		return nil
	}
	var out []int
	remaining := total
	for remaining > 0 {
		size := min(preferred, maxSize)
		if float64(remaining) < float64(preferred)*orderBasedUpperFactor && remaining <= maxSize {
			size = remaining
		}
		out = append(out, size)
		remaining -= size
	}
	return out
}
