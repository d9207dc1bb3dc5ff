package form

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// Registry holds every open form in memory. Nothing is ever persisted: a
// form either gets submitted and discarded, or sits idle until the sweeper
// evicts it.
type Registry struct {
	mu        sync.RWMutex
	instances map[string]*Instance
	ttl       time.Duration
	logger    *zap.SugaredLogger
}

func NewRegistry(ttl time.Duration, logger *zap.SugaredLogger) *Registry {
	return &Registry{
		instances: make(map[string]*Instance),
		ttl:       ttl,
		logger:    logger,
	}
}

// Open registers a new form instance and returns it.
func (r *Registry) Open(mode Mode, turfID int64, seed State) *Instance {
	in := NewInstance(mode, turfID, seed)
	r.mu.Lock()
	r.instances[in.ID] = in
	r.mu.Unlock()
	return in
}

// Lookup finds an open form by id.
func (r *Registry) Lookup(id string) (*Instance, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	in, ok := r.instances[id]
	return in, ok
}

// Discard drops a form, typically right after a successful submission. The
// staged bytes go with it.
func (r *Registry) Discard(id string) {
	r.mu.Lock()
	delete(r.instances, id)
	r.mu.Unlock()
}

// Len reports how many forms are currently open.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.instances)
}

// SweepExpiredEvery evicts idle forms in the background for the life of the
// process.
func (r *Registry) SweepExpiredEvery(interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for range ticker.C {
			if n := r.sweepOnce(time.Now()); n > 0 {
				r.logger.Infow("evicted idle forms", "count", n)
			}
		}
	}()
}

func (r *Registry) sweepOnce(now time.Time) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	evicted := 0
	for id, in := range r.instances {
		if in.Busy() {
			continue
		}
		if in.idleSince(now) > r.ttl {
			delete(r.instances, id)
			evicted++
		}
	}
	return evicted
}
