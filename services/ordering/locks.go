package ordering

import "sync"

// sessionLocks hands out one mutex per session id so turns for the same
// session are serialized while different sessions proceed concurrently.
// Locks are never reclaimed; the set of active sessions is bounded by the
// store's eviction policy, not by this table.
type sessionLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func (l *sessionLocks) acquire(sessionID string) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.locks == nil {
		l.locks = make(map[string]*sync.Mutex)
	}
	lock, ok := l.locks[sessionID]
	if !ok {
		lock = &sync.Mutex{}
		l.locks[sessionID] = lock
	}
	return lock
}
