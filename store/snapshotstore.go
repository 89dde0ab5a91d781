// Package store keeps serialized bank snapshots. The bank itself is
// purely in-memory; snapshots exist so external tooling can capture and
// restore institution state without reaching into live objects.
package store

import (
	"fmt"
	"sync"
	"time"
)

// Snapshot is one serialized bank, keyed by routing code.
type Snapshot struct {
	RoutingCode int64     `json:"routingCode"`
	State       []byte    `json:"state"`
	Timestamp   time.Time `json:"timestamp"`
}

func NewSnapshot(routingCode int64, state []byte) *Snapshot {
	return &Snapshot{
		RoutingCode: routingCode,
		State:       state,
		Timestamp:   time.Now().UTC(),
	}
}

type SnapshotStore interface {
	SaveSnapshot(snapshot *Snapshot) error

	GetLatestSnapshot(routingCode int64) (snapshot *Snapshot, found bool, err error)
}

type InMemorySnapshotStore struct {
	sync.RWMutex
	snapshots map[int64]*Snapshot
}

func NewInMemorySnapshotStore() *InMemorySnapshotStore {
	return &InMemorySnapshotStore{
		snapshots: make(map[int64]*Snapshot),
	}
}

func (s *InMemorySnapshotStore) SaveSnapshot(snapshot *Snapshot) error {
	if snapshot == nil {
		return fmt.Errorf("cannot save nil snapshot")
	}
	s.Lock()
	defer s.Unlock()

	stateCopy := make([]byte, len(snapshot.State))
	copy(stateCopy, snapshot.State)
	s.snapshots[snapshot.RoutingCode] = &Snapshot{
		RoutingCode: snapshot.RoutingCode,
		State:       stateCopy,
		Timestamp:   snapshot.Timestamp,
	}
	return nil
}

func (s *InMemorySnapshotStore) GetLatestSnapshot(routingCode int64) (*Snapshot, bool, error) {
	s.RLock()
	defer s.RUnlock()

	snapshot, found := s.snapshots[routingCode]
	if !found {
		return nil, false, nil
	}

	stateCopy := make([]byte, len(snapshot.State))
	copy(stateCopy, snapshot.State)
	return &Snapshot{
		RoutingCode: snapshot.RoutingCode,
		State:       stateCopy,
		Timestamp:   snapshot.Timestamp,
	}, true, nil
}
