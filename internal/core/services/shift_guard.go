package services

import "sync"

// ShiftGuard serializes period seals against attendance writes per employee.
// It is a keyed two-sided lock: an upsert holds a shared write token across
// its repository write, while a seal holds the exclusive side for the whole
// read-aggregate-clear sequence. Either side fails fast instead of racing the
// other: an upsert committing between the seal's aggregate read and its clear
// would be acknowledged and then silently dropped.
type ShiftGuard struct {
	mu    sync.Mutex
	locks map[string]*shiftLock
}

type shiftLock struct {
	sealing bool
	writers int
}

// NewShiftGuard creates an empty guard.
func NewShiftGuard() *ShiftGuard {
	return &ShiftGuard{locks: make(map[string]*shiftLock)}
}

// TryAcquire attempts to take the exclusive seal lock for the given employee
// key. It returns false while a seal or any attendance write for that
// employee is in flight.
func (g *ShiftGuard) TryAcquire(key string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	l := g.locks[key]
	if l != nil && (l.sealing || l.writers > 0) {
		return false
	}
	if l == nil {
		l = &shiftLock{}
		g.locks[key] = l
	}
	l.sealing = true
	return true
}

// Release frees the exclusive seal lock for the given employee key.
func (g *ShiftGuard) Release(key string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	l := g.locks[key]
	if l == nil {
		return
	}
	l.sealing = false
	if l.writers == 0 {
		delete(g.locks, key)
	}
}

// TryAcquireShared registers an in-flight attendance write for the key. It
// returns false while a seal holds the exclusive side. Multiple writes may
// hold the shared side at once; each must be paired with ReleaseShared.
func (g *ShiftGuard) TryAcquireShared(key string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	l := g.locks[key]
	if l != nil && l.sealing {
		return false
	}
	if l == nil {
		l = &shiftLock{}
		g.locks[key] = l
	}
	l.writers++
	return true
}

// ReleaseShared drops one in-flight attendance write for the key.
func (g *ShiftGuard) ReleaseShared(key string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	l := g.locks[key]
	if l == nil {
		return
	}
	if l.writers > 0 {
		l.writers--
	}
	if !l.sealing && l.writers == 0 {
		delete(g.locks, key)
	}
}

// shiftKey builds the guard key for an employee within an owner's scope.
func shiftKey(ownerID, employeeID string) string {
	return ownerID + "/" + employeeID
}
