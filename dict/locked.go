package dict

import "sync"

// Locked wraps a Dict with a read-write lock so that inserts may run while
// other goroutines look keys up or drive cursors.
//
// The zero value is an empty KeepFirst dict ready to use. A Locked must not
// be copied after first use.
type Locked[K comparable, V any] struct {
	mu   sync.RWMutex
	dict Dict[K, V]
}

// NewLocked returns an empty Locked dict.
func NewLocked[K comparable, V any](opts ...Option) *Locked[K, V] {
	c := NewConfig(opts...)
	l := &Locked[K, V]{}
	l.dict.policy = c.Policy
	l.dict.arena.init(c.Capacity)
	return l
}

// Insert is Dict.Insert under the write lock.
func (l *Locked[K, V]) Insert(key []K, val V) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.dict.Insert(key, val)
}

// Set is Dict.Set under the write lock.
func (l *Locked[K, V]) Set(key []K, val V) (V, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.dict.Set(key, val)
}

// Update calls fn with the value stored under the key while holding the
// write lock. It reports whether the key was found.
func (l *Locked[K, V]) Update(key []K, fn func(*V)) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	p := l.dict.GetPtr(key)
	if p == nil {
		return false
	}
	fn(p)
	return true
}

func (l *Locked[K, V]) Get(key []K) (V, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.dict.Get(key)
}

func (l *Locked[K, V]) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.dict.Len()
}

func (l *Locked[K, V]) Empty() bool {
	return l.Len() == 0
}

// Lookup returns a cursor whose every step takes the read lock.
func (l *Locked[K, V]) Lookup() *LockedLookup[K, V] {
	l.mu.Lock()
	defer l.mu.Unlock()

	// Dict.Lookup allocates the root of an empty dict
	return &LockedLookup[K, V]{owner: l, cur: *l.dict.Lookup()}
}

// LockedLookup is a Lookup over a Locked dict. A single LockedLookup must
// still be driven by one goroutine at a time.
type LockedLookup[K comparable, V any] struct {
	owner *Locked[K, V]
	cur   Lookup[K, V]
}

func (l *LockedLookup[K, V]) PartialSearch(part K) error {
	l.owner.mu.RLock()
	defer l.owner.mu.RUnlock()

	return l.cur.PartialSearch(part)
}

func (l *LockedLookup[K, V]) TryResolve() (V, bool) {
	l.owner.mu.RLock()
	defer l.owner.mu.RUnlock()

	return l.cur.TryResolve()
}

func (l *LockedLookup[K, V]) Reset() {
	l.cur.Reset()
}

func (l *LockedLookup[K, V]) Get(key []K) (V, bool) {
	return l.owner.Get(key)
}

func (l *LockedLookup[K, V]) Depth() int {
	return l.cur.Depth()
}
