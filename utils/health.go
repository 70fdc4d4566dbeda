// File: utils/health.go
package utils

import (
	"context"
	"sync"
	"time"

	"github.com/CorbanSy/PropDash-sub002/database"
)

// HealthStatus is the latest dependency snapshot served by /health. Each
// entry is probed on a fixed interval, never per-request.
type HealthStatus struct {
	Mongo         bool      `json:"mongo"`
	ScheduleCache bool      `json:"scheduleCache"`
	AuthCache     bool      `json:"authCache"`
	CheckedAt     time.Time `json:"checkedAt"`
}

// Healthy reports whether every dependency answered its last probe.
func (h HealthStatus) Healthy() bool {
	return h.Mongo && h.ScheduleCache && h.AuthCache
}

var (
	currentHealth HealthStatus
	healthMu      sync.RWMutex
)

// GetHealthStatus returns the most recent snapshot. Before the first probe
// completes it reports everything down; callers should treat that as "warming
// up" rather than an outage.
func GetHealthStatus() HealthStatus {
	healthMu.RLock()
	defer healthMu.RUnlock()
	return currentHealth
}

// StartHealthMonitor probes Mongo and both Redis clients on a fixed interval
// and stores the snapshot for the health endpoint.
func StartHealthMonitor(interval time.Duration) {
	if interval <= 0 {
		interval = time.Minute
	}
	probe() // seed before the first tick
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for range ticker.C {
			probe()
		}
	}()
}

func probe() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	snapshot := HealthStatus{
		Mongo:         database.MongoClient != nil && database.MongoClient.Ping(ctx, nil) == nil,
		ScheduleCache: GetCacheClient().Ping(ctx).Err() == nil,
		AuthCache:     GetAuthCacheClient().Ping(ctx).Err() == nil,
		CheckedAt:     time.Now(),
	}

	healthMu.Lock()
	currentHealth = snapshot
	healthMu.Unlock()
}
