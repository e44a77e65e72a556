package store

import (
	"sync"

	"nba-chat-service/internal/nlq"
	"nba-chat-service/internal/resolve"
)

// Snapshot bundles the query-understanding components built from one
// vocabulary load. Snapshots are immutable; the roster poller swaps whole
// snapshots and every request reads exactly one.
type Snapshot struct {
	Resolvers  *resolve.Resolvers
	Classifier *nlq.Classifier
}

// ResolverStore keeps the current snapshot behind a read lock.
type ResolverStore struct {
	mu   sync.RWMutex
	snap *Snapshot
}

// NewResolverStore constructs an empty ResolverStore.
func NewResolverStore() *ResolverStore {
	return &ResolverStore{}
}

// Snapshot returns the current snapshot, or nil before the first load.
func (s *ResolverStore) Snapshot() *Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}

// SetSnapshot replaces the current snapshot.
func (s *ResolverStore) SetSnapshot(snap *Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap = snap
}
