package cache

import (
	"sync"
	"time"
)

// Snapshot is the last full payload published on a topic.
type Snapshot struct {
	Payload   []byte
	UpdatedAt time.Time
}

// SnapshotCache keeps the latest snapshot per topic so late subscribers
// can be primed without hitting the database.
type SnapshotCache struct {
	mu        sync.RWMutex
	snapshots map[string]Snapshot
	published int
}

func NewSnapshotCache() *SnapshotCache {
	return &SnapshotCache{snapshots: make(map[string]Snapshot)}
}

// Put replaces the snapshot stored for topic.
func (sc *SnapshotCache) Put(topic string, payload []byte) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	sc.snapshots[topic] = Snapshot{Payload: payload, UpdatedAt: time.Now()}
	sc.published++
}

// Get returns the snapshot stored for topic, if any.
func (sc *SnapshotCache) Get(topic string) (Snapshot, bool) {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	s, ok := sc.snapshots[topic]
	return s, ok
}

// Forget drops the snapshot for topic.
func (sc *SnapshotCache) Forget(topic string) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	delete(sc.snapshots, topic)
}

// Stats returns statistics about the current cache
func (sc *SnapshotCache) Stats() map[string]interface{} {
	sc.mu.RLock()
	defer sc.mu.RUnlock()

	bytes := 0
	for _, s := range sc.snapshots {
		bytes += len(s.Payload)
	}
	return map[string]interface{}{
		"cached_topics":   len(sc.snapshots),
		"cached_bytes":    bytes,
		"total_published": sc.published,
	}
}
