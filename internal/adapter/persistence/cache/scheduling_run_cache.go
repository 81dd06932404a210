package cache

import (
	"context"
	"os"
	"time"

	"umkm_produksi/internal/domain/entities"
	"umkm_produksi/internal/usecase/interfaces"

	gocache "github.com/patrickmn/go-cache"
	log "github.com/sirupsen/logrus"
)

const (
	defaultRunTTL     = 24 * time.Hour
	defaultRunCleanup = 30 * time.Minute
)

// SchedulingRunCache keeps executed runs in memory so clients can fetch them
// again by id. Runs expire after the configured TTL.
type SchedulingRunCache struct {
	runs *gocache.Cache
}

var _ interfaces.ISchedulingRunStore = (*SchedulingRunCache)(nil)

func NewSchedulingRunCache(ttl, cleanup time.Duration) *SchedulingRunCache {
	return &SchedulingRunCache{runs: gocache.New(ttl, cleanup)}
}

// NewSchedulingRunCacheFromEnv reads SCHEDULING_RUN_TTL (a Go duration,
// default 24h).
func NewSchedulingRunCacheFromEnv() *SchedulingRunCache {
	ttl := defaultRunTTL
	if v := os.Getenv("SCHEDULING_RUN_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			log.WithField("value", v).Warn("[scheduling][cache] invalid SCHEDULING_RUN_TTL, using default")
		} else {
			ttl = d
		}
	}
	return NewSchedulingRunCache(ttl, defaultRunCleanup)
}

func (c *SchedulingRunCache) Save(_ context.Context, run entities.SchedulingRun) error {
	c.runs.Set(run.ID, run, gocache.DefaultExpiration)
	return nil
}

func (c *SchedulingRunCache) Get(_ context.Context, id string) (entities.SchedulingRun, error) {
	v, ok := c.runs.Get(id)
	if !ok {
		return entities.SchedulingRun{}, nil
	}
	run, ok := v.(entities.SchedulingRun)
	if !ok {
		return entities.SchedulingRun{}, nil
	}
	return run, nil
}
