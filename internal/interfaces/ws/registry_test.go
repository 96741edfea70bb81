package ws_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bvanacker/bestelportaal-api/internal/interfaces/ws"
)

type stubConn struct {
	mu     sync.Mutex
	frames []interface{}
}

func (s *stubConn) WriteJSON(v interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.frames = append(s.frames, v)
	return nil
}

func TestRegistry_AddGetRemove(t *testing.T) {
	r := ws.NewRegistry()
	conn := &stubConn{}

	assert.Nil(t, r.Get(1))
	r.Add(1, conn)
	assert.Same(t, conn, r.Get(1).(*stubConn))
	assert.Equal(t, 1, r.Len())

	r.Remove(1, conn)
	assert.Nil(t, r.Get(1))
	assert.Zero(t, r.Len())
}

func TestRegistry_ReconnectReplacesConnection(t *testing.T) {
	r := ws.NewRegistry()
	old := &stubConn{}
	fresh := &stubConn{}

	r.Add(1, old)
	r.Add(1, fresh)
	assert.Same(t, fresh, r.Get(1).(*stubConn))

	// The old connection's cleanup must not evict the new one.
	r.Remove(1, old)
	assert.Same(t, fresh, r.Get(1).(*stubConn))

	r.Remove(1, fresh)
	assert.Nil(t, r.Get(1))
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	r := ws.NewRegistry()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(userID int64) {
			defer wg.Done()
			conn := &stubConn{}
			r.Add(userID, conn)
			_ = r.Get(userID)
			r.Remove(userID, conn)
		}(int64(i))
	}
	wg.Wait()
	assert.Zero(t, r.Len())
}
