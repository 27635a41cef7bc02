package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
)

// HealthStatus represents current status of external services.
type HealthStatus struct {
	Redis     bool      `json:"redis"`
	Upstream  bool      `json:"upstream"`
	CheckedAt time.Time `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	healthMu      sync.RWMutex
)

// GetHealthStatus returns latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	healthMu.RLock()
	defer healthMu.RUnlock()
	return currentHealth
}

// StartHealthMonitor performs periodic health checks and updates in-memory
// state until ctx is cancelled. checkUpstream probes the capacity backend.
func StartHealthMonitor(ctx context.Context, redisClient *redis.Client, checkUpstream func(context.Context) error) {
	go func() {
		ticker := time.NewTicker(60 * time.Second)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				redisHealthy := redisClient.Ping(ctx).Err() == nil
				upstreamHealthy := checkUpstream(ctx) == nil

				healthMu.Lock()
				currentHealth = HealthStatus{
					Redis:     redisHealthy,
					Upstream:  upstreamHealthy,
					CheckedAt: time.Now(),
				}
				healthMu.Unlock()
			}
		}
	}()
}
