package booking

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"slowlove/models"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// StatusFetcher is the poller's view of the capacity backend.
type StatusFetcher interface {
	SlotStatus(ctx context.Context) (*models.SlotStatus, error)
}

// SlotObserver is notified after every successful poll with the new snapshot.
type SlotObserver interface {
	SlotStatusUpdated(status *models.SlotStatus)
}

// SlotView is the read/refresh surface the booking flow uses.
type SlotView interface {
	Status() *models.SlotStatus
	Refresh()
}

const (
	slotStatusCacheKey = "slowlove:slot-status"
	slotStatusCacheTTL = 10 * time.Minute
)

// Poller keeps the slot capacity snapshot fresh. It is the single writer of
// the snapshot; everything else only reads. A failed poll keeps the prior
// snapshot (stale-but-available) and is never surfaced to the visitor.
type Poller struct {
	fetcher  StatusFetcher
	cache    *redis.Client
	interval time.Duration
	logger   *zap.Logger

	mu        sync.RWMutex
	status    *models.SlotStatus
	observers []SlotObserver

	kick chan struct{}
}

func NewPoller(fetcher StatusFetcher, cache *redis.Client, interval time.Duration, logger *zap.Logger) *Poller {
	return &Poller{
		fetcher:  fetcher,
		cache:    cache,
		interval: interval,
		logger:   logger,
		kick:     make(chan struct{}, 1),
	}
}

// AddObserver registers an observer. Must be called before Run.
func (p *Poller) AddObserver(o SlotObserver) {
	p.observers = append(p.observers, o)
}

// Status returns the latest snapshot, or nil before the first successful
// poll. Callers treat nil as all-slots-available (fail-open).
func (p *Poller) Status() *models.SlotStatus {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.status
}

// Refresh schedules an immediate re-poll without waiting for the interval.
func (p *Poller) Refresh() {
	select {
	case p.kick <- struct{}{}:
	default:
	}
}

// Run polls until ctx is cancelled. The first poll fires immediately.
func (p *Poller) Run(ctx context.Context) {
	p.seed(ctx)
	p.Poll(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.Poll(ctx)
		case <-p.kick:
			p.Poll(ctx)
		}
	}
}

// Poll fetches, normalizes and publishes one snapshot. Failures keep the
// previous snapshot.
func (p *Poller) Poll(ctx context.Context) {
	status, err := p.fetcher.SlotStatus(ctx)
	if err != nil {
		p.logger.Debug("slot status poll failed, keeping previous snapshot", zap.Error(err))
		return
	}

	normalized := normalize(status)

	p.mu.Lock()
	p.status = normalized
	observers := p.observers
	p.mu.Unlock()

	p.cacheSnapshot(ctx, normalized)

	for _, o := range observers {
		o.SlotStatusUpdated(normalized)
	}
}

// normalize recomputes every slot's derived fields once, so fullness checks
// are never duplicated downstream.
func normalize(status *models.SlotStatus) *models.SlotStatus {
	out := &models.SlotStatus{
		OK:       status.OK,
		Capacity: status.Capacity,
		Slots:    make(map[string]models.SlotInfo, len(status.Slots)),
	}
	for id, info := range status.Slots {
		out.Slots[id] = info.Normalized()
	}
	return out
}

// seed restores the last known-good snapshot from redis so a restart does
// not begin blind. Best-effort only.
func (p *Poller) seed(ctx context.Context) {
	if p.cache == nil {
		return
	}
	raw, err := p.cache.Get(ctx, slotStatusCacheKey).Result()
	if err != nil {
		return
	}
	var status models.SlotStatus
	if err := json.Unmarshal([]byte(raw), &status); err != nil {
		p.logger.Debug("discarding malformed cached slot status", zap.Error(err))
		return
	}
	p.mu.Lock()
	if p.status == nil {
		p.status = &status
	}
	p.mu.Unlock()
}

func (p *Poller) cacheSnapshot(ctx context.Context, status *models.SlotStatus) {
	if p.cache == nil {
		return
	}
	raw, err := json.Marshal(status)
	if err != nil {
		return
	}
	if err := p.cache.Set(ctx, slotStatusCacheKey, raw, slotStatusCacheTTL).Err(); err != nil {
		p.logger.Debug("slot status cache write failed", zap.Error(err))
	}
}
