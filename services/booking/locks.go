package booking

import (
	"sync"
)

// propertyLockStore holds a mutex per property so concurrent reserves on
// the same property serialize their check-then-commit, while different
// properties proceed independently. Reads never take these locks.
type propertyLockStore struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// get returns the lock for a property, creating one if it doesn't exist.
func (s *propertyLockStore) get(propertyID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.locks == nil {
		s.locks = make(map[string]*sync.Mutex)
	}
	lock, exists := s.locks[propertyID]
	if !exists {
		lock = &sync.Mutex{}
		s.locks[propertyID] = lock
	}
	return lock
}
