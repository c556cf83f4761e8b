package store

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"solarcap-sim/internal/model"
	"solarcap-sim/internal/sim"
)

// Run is one completed simulation kept for trace retrieval.
type Run struct {
	ID        string
	CreatedAt time.Time
	Params    model.NodeParams
	Result    *sim.Result

	expiresAt time.Time
}

// RunStore keeps completed runs in memory, keyed by run ID, so the trace of
// a run can be fetched after the fact without re-simulating. Entries expire
// after the TTL and are swept periodically.
type RunStore struct {
	mu    sync.RWMutex
	store map[string]*Run
	ttl   time.Duration
}

// NewRunStore creates a store whose entries live for ttl. The cleanup
// goroutine runs for the life of the process.
func NewRunStore(ttl time.Duration) *RunStore {
	s := &RunStore{
		store: make(map[string]*Run),
		ttl:   ttl,
	}
	go s.cleanup()
	return s
}

// Put stores a completed run and returns its generated ID.
func (s *RunStore) Put(params model.NodeParams, result *sim.Result) string {
	id := uuid.NewString()
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.store[id] = &Run{
		ID:        id,
		CreatedAt: now,
		Params:    params,
		Result:    result,
		expiresAt: now.Add(s.ttl),
	}
	return id
}

// Get retrieves a stored run if present and not expired.
func (s *RunStore) Get(id string) (*Run, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	run, ok := s.store[id]
	if !ok {
		return nil, false
	}
	if time.Now().After(run.expiresAt) {
		return nil, false
	}
	return run, true
}

// Len reports the number of stored runs, expired or not.
func (s *RunStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.store)
}

// cleanup periodically removes expired entries.
func (s *RunStore) cleanup() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		s.mu.Lock()
		now := time.Now()
		for id, run := range s.store {
			if now.After(run.expiresAt) {
				delete(s.store, id)
			}
		}
		s.mu.Unlock()
	}
}
