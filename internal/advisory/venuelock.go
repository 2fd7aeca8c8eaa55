package advisory

import "sync"

// venueLocks serializes work per venue key. Entries are reference counted
// and removed once no goroutine holds or waits on them, so the map stays
// proportional to in-flight venues.
type venueLocks struct {
	mu    sync.Mutex
	locks map[string]*venueLock
}

type venueLock struct {
	mu   sync.Mutex
	refs int
}

func newVenueLocks() *venueLocks {
	return &venueLocks{locks: make(map[string]*venueLock)}
}

// Lock blocks until the caller holds the lock for key and returns the
// matching unlock function.
func (v *venueLocks) Lock(key string) func() {
	v.mu.Lock()
	l, ok := v.locks[key]
	if !ok {
		l = &venueLock{}
		v.locks[key] = l
	}
	l.refs++
	v.mu.Unlock()

	l.mu.Lock()
	return func() {
		l.mu.Unlock()
		v.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(v.locks, key)
		}
		v.mu.Unlock()
	}
}

func (v *venueLocks) size() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.locks)
}
