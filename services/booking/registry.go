package booking

import (
	"context"
	"sync"
	"time"

	"slowlove/models"

	"go.uber.org/zap"
)

// SessionService manages per-visitor booking flows.
type SessionService interface {
	OpenSession() *Flow
	GetSession(id string) (*Flow, bool)
	CloseSession(id string) bool
}

// Registry holds live booking flows keyed by session id. It implements the
// poller's observer so every fresh capacity snapshot is applied to each
// idle flow, and it sweeps out flows that have been inactive past the TTL.
type Registry struct {
	deps   Deps
	ttl    time.Duration
	logger *zap.Logger

	mu    sync.Mutex
	flows map[string]*Flow
}

func NewRegistry(deps Deps, ttl time.Duration) *Registry {
	return &Registry{
		deps:   deps,
		ttl:    ttl,
		logger: deps.Logger,
		flows:  make(map[string]*Flow),
	}
}

// OpenSession creates and registers a new flow.
func (r *Registry) OpenSession() *Flow {
	flow := NewFlow(r.deps)
	r.mu.Lock()
	r.flows[flow.ID] = flow
	r.mu.Unlock()
	r.logger.Debug("booking session opened", zap.String("session", flow.ID))
	return flow
}

// GetSession looks up a live flow and marks it active.
func (r *Registry) GetSession(id string) (*Flow, bool) {
	r.mu.Lock()
	flow, ok := r.flows[id]
	r.mu.Unlock()
	if ok {
		flow.Touch()
	}
	return flow, ok
}

// CloseSession drops a flow. This is the "navigation reset": a Success flow
// stays terminal until its session is closed.
func (r *Registry) CloseSession(id string) bool {
	r.mu.Lock()
	_, ok := r.flows[id]
	delete(r.flows, id)
	r.mu.Unlock()
	if ok {
		r.logger.Debug("booking session closed", zap.String("session", id))
	}
	return ok
}

// SlotStatusUpdated fans a fresh snapshot out to every flow.
func (r *Registry) SlotStatusUpdated(status *models.SlotStatus) {
	for _, flow := range r.snapshotFlows() {
		flow.SlotStatusUpdated(status)
	}
}

func (r *Registry) snapshotFlows() []*Flow {
	r.mu.Lock()
	defer r.mu.Unlock()
	flows := make([]*Flow, 0, len(r.flows))
	for _, f := range r.flows {
		flows = append(flows, f)
	}
	return flows
}

// RunSweeper evicts inactive flows until ctx is cancelled. A flow that is
// mid-transaction is never evicted, whatever its age.
func (r *Registry) RunSweeper(ctx context.Context) {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.sweep()
		}
	}
}

func (r *Registry) sweep() {
	cutoff := time.Now().Add(-r.ttl)
	for _, flow := range r.snapshotFlows() {
		state := flow.State()
		inFlight := state == models.StateSubmitting ||
			state == models.StateAwaitingCheckout ||
			state == models.StateVerifying
		if inFlight || flow.LastSeen().After(cutoff) {
			continue
		}
		r.mu.Lock()
		delete(r.flows, flow.ID)
		r.mu.Unlock()
		r.logger.Debug("booking session expired", zap.String("session", flow.ID))
	}
}
