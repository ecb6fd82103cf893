package transport

import (
	"errors"
	"sync"

	"github.com/gorilla/websocket"
)

var errNotSubscribed = errors.New("connection is not subscribed")

// subscriber is one child connection. mu serializes writes; sent is the sequence number of
// the last table written, so a table older than one already delivered is never written.
type subscriber struct {
	conn *websocket.Conn

	mu   sync.Mutex
	sent uint64
}

func (s *subscriber) send(seq uint64, rec Record) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if seq <= s.sent {
		return false, nil
	}
	if err := s.conn.WriteJSON(rec); err != nil {
		return false, err
	}
	s.sent = seq
	return true, nil
}

// ConnectionManager tracks subscribed children and the last table each one received.
type ConnectionManager struct {
	mu   sync.RWMutex
	subs map[*websocket.Conn]*subscriber
}

func NewConnectionManager() *ConnectionManager {
	return &ConnectionManager{
		subs: make(map[*websocket.Conn]*subscriber),
	}
}

// Add subscribes conn. It has received nothing yet.
func (m *ConnectionManager) Add(conn *websocket.Conn) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.subs[conn] = &subscriber{conn: conn}
}

func (m *ConnectionManager) Remove(conn *websocket.Conn) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.subs, conn)
}

// Len returns the number of subscribed children.
func (m *ConnectionManager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.subs)
}

// Send writes the table numbered seq to conn unless conn already has that table or a newer
// one. It reports whether anything was written.
func (m *ConnectionManager) Send(conn *websocket.Conn, seq uint64, rec Record) (bool, error) {
	m.mu.RLock()
	sub, ok := m.subs[conn]
	m.mu.RUnlock()

	if !ok {
		return false, errNotSubscribed
	}
	return sub.send(seq, rec)
}

// Broadcast sends the table numbered seq to every subscriber and returns how many were
// written. Subscribers whose write fails are dropped and closed.
func (m *ConnectionManager) Broadcast(seq uint64, rec Record) int {
	m.mu.RLock()
	subs := make([]*subscriber, 0, len(m.subs))
	for _, sub := range m.subs {
		subs = append(subs, sub)
	}
	m.mu.RUnlock()

	delivered := 0
	for _, sub := range subs {
		wrote, err := sub.send(seq, rec)
		if err != nil {
			m.Remove(sub.conn)
			_ = sub.conn.Close()
			continue
		}
		if wrote {
			delivered++
		}
	}
	return delivered
}
