package interfaces

import (
	"context"
	"time"

	"umkm_produksi/internal/domain/entities"
)

// ISchedulingRunStore keeps recent scheduling runs for later lookup.
// Get returns a zero-value run when the id is unknown or expired.

type ISchedulingRunStore interface {
	Save(ctx context.Context, run entities.SchedulingRun) error
	Get(ctx context.Context, id string) (entities.SchedulingRun, error)
}

// ISchedulingRecorder receives the outcome of every executed run.
type ISchedulingRecorder interface {
	RecordRun(run entities.SchedulingRun, elapsed time.Duration)
}
