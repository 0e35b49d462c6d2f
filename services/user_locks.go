package services

import "sync"

// UserLocks serializes mutations per user key, so rapid double-clicks never
// produce lost updates on the same cart. Carts are disjoint by owner, so
// cross-user operations need no coordination.
type UserLocks struct {
	mu    sync.Mutex
	locks map[uint]*sync.Mutex
}

func NewUserLocks() *UserLocks {
	return &UserLocks{locks: make(map[uint]*sync.Mutex)}
}

// Lock acquires the per-user mutex and returns its unlock func.
func (l *UserLocks) Lock(userID uint) func() {
	l.mu.Lock()
	m, ok := l.locks[userID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[userID] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}
