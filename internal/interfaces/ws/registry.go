package ws

import "sync"

// Conn is the subset of a websocket connection the registry needs.
type Conn interface {
	WriteJSON(v interface{}) error
}

// syncConn serializes writes to one connection. The transport allows a
// single writer at a time, but popups arrive from request goroutines
// while the read loop may be writing an ack.
type syncConn struct {
	mu   sync.Mutex
	conn Conn
}

func newSyncConn(conn Conn) *syncConn {
	return &syncConn{conn: conn}
}

func (c *syncConn) WriteJSON(v interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteJSON(v)
}

// Registry tracks the open websocket connection per user. One
// connection per user; a reconnect replaces the previous one.
type Registry struct {
	mu    sync.RWMutex
	conns map[int64]Conn
}

func NewRegistry() *Registry {
	return &Registry{conns: make(map[int64]Conn)}
}

func (r *Registry) Add(userID int64, conn Conn) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.conns[userID] = conn
}

// Remove drops the registration, but only if conn is still the
// registered one. A stale goroutine must not evict a fresh connection.
func (r *Registry) Remove(userID int64, conn Conn) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.conns[userID] == conn {
		delete(r.conns, userID)
	}
}

// Get returns the connection for the user, nil when offline.
func (r *Registry) Get(userID int64) Conn {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.conns[userID]
}

// Len reports how many users are connected.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.conns)
}
