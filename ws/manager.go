package ws

import (
	"encoding/json"
	"fmt"
	"sync"

	"realty-server/cache"

	"github.com/gorilla/websocket"
)

// Topic names. Each is suffixed with the user id it is scoped to.
const (
	TopicProperties = "properties"
	TopicContracts  = "contracts"
	TopicSession    = "session"
)

// UserTopic builds the topic name for kind scoped to userID.
func UserTopic(kind, userID string) string {
	return fmt.Sprintf("%s:%s", kind, userID)
}

// Envelope is the frame sent to subscribers.
type Envelope struct {
	Type  string `json:"type"`
	Topic string `json:"topic"`
	Data  any    `json:"data"`
}

// Manager fans snapshots out to topic subscribers and keeps track of
// the websocket connections that own them.
type Manager struct {
	mu          sync.RWMutex
	subscribers map[string]map[*Subscription]struct{}
	connections map[string]*websocket.Conn // connID -> conn
	snapshots   *cache.SnapshotCache
	bufferSize  int
}

func NewManager(snapshots *cache.SnapshotCache) *Manager {
	if snapshots == nil {
		snapshots = cache.NewSnapshotCache()
	}
	return &Manager{
		subscribers: make(map[string]map[*Subscription]struct{}),
		connections: make(map[string]*websocket.Conn),
		snapshots:   snapshots,
		bufferSize:  4,
	}
}

// Subscribe opens a handle on topic. If a snapshot is cached it is
// delivered immediately and primed is true.
func (m *Manager) Subscribe(topic string) (sub *Subscription, primed bool) {
	sub = &Subscription{topic: topic, ch: make(chan []byte, m.bufferSize), mgr: m}

	// Holding the lock across the cache read keeps a concurrent Publish
	// from landing between priming and registration.
	m.mu.Lock()
	defer m.mu.Unlock()
	set, ok := m.subscribers[topic]
	if !ok {
		set = make(map[*Subscription]struct{})
		m.subscribers[topic] = set
	}
	set[sub] = struct{}{}

	if snap, ok := m.snapshots.Get(topic); ok {
		sub.deliver(snap.Payload)
		return sub, true
	}
	return sub, false
}

// Publish hands payload to every subscriber of topic without blocking.
// It is kept as the topic's snapshot only while someone is listening;
// Watch re-primes from storage otherwise.
func (m *Manager) Publish(topic string, payload []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	set := m.subscribers[topic]
	if len(set) == 0 {
		return
	}
	m.snapshots.Put(topic, payload)
	for sub := range set {
		sub.deliver(payload)
	}
}

// PublishJSON wraps data in an Envelope and publishes it.
func (m *Manager) PublishJSON(topic, msgType string, data any) error {
	b, err := json.Marshal(Envelope{Type: msgType, Topic: topic, Data: data})
	if err != nil {
		return fmt.Errorf("encode %s snapshot: %w", msgType, err)
	}
	m.Publish(topic, b)
	return nil
}

// Notify delivers a one-off event that is not kept as a snapshot.
func (m *Manager) Notify(topic, msgType string, data any) error {
	b, err := json.Marshal(Envelope{Type: msgType, Topic: topic, Data: data})
	if err != nil {
		return fmt.Errorf("encode %s event: %w", msgType, err)
	}
	m.mu.RLock()
	subs := make([]*Subscription, 0, len(m.subscribers[topic]))
	for sub := range m.subscribers[topic] {
		subs = append(subs, sub)
	}
	m.mu.RUnlock()
	for _, sub := range subs {
		sub.deliver(b)
	}
	return nil
}

func (m *Manager) unsubscribe(sub *Subscription) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if set, ok := m.subscribers[sub.topic]; ok {
		delete(set, sub)
		if len(set) == 0 {
			delete(m.subscribers, sub.topic)
			m.snapshots.Forget(sub.topic)
		}
	}
}

// SubscriberCount returns how many handles are open on topic.
func (m *Manager) SubscriberCount(topic string) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.subscribers[topic])
}

// Register registers a websocket connection, replacing any existing one.
func (m *Manager) Register(connID string, conn *websocket.Conn) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if old, ok := m.connections[connID]; ok && old != conn {
		_ = old.Close()
	}
	m.connections[connID] = conn
}

// Unregister removes a websocket connection.
func (m *Manager) Unregister(connID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if conn, ok := m.connections[connID]; ok {
		_ = conn.Close()
		delete(m.connections, connID)
	}
}

// List returns a copy of current connection ids.
func (m *Manager) List() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ids := make([]string, 0, len(m.connections))
	for id := range m.connections {
		ids = append(ids, id)
	}
	return ids
}

// Stats merges hub counters with the snapshot cache statistics.
func (m *Manager) Stats() map[string]interface{} {
	m.mu.RLock()
	topics := len(m.subscribers)
	handles := 0
	for _, set := range m.subscribers {
		handles += len(set)
	}
	conns := len(m.connections)
	m.mu.RUnlock()

	stats := m.snapshots.Stats()
	stats["connections"] = conns
	stats["topics"] = topics
	stats["subscriptions"] = handles
	return stats
}
