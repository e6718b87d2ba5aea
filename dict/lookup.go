package dict

import "errors"

// ErrInvalidKeyPart is returned by PartialSearch when the key part does not
// continue any stored key from the cursor's position. The cursor is back at
// the root when it is returned.
var ErrInvalidKeyPart = errors.New("invalid key part")

// Lookup is a cursor used for incremental searches in a Dict.
//
// The cursor starts at the root and moves one key part at a time. It never
// modifies the dict, so any number of cursors may walk the same dict.
type Lookup[K comparable, V any] struct {
	dict  *Dict[K, V]
	cur   int32
	depth int
	gen   uint32
}

// sync moves a cursor left over from before InitDict back to the root.
func (l *Lookup[K, V]) sync() {
	if l.gen != l.dict.gen {
		l.Reset()
	}
}

// at returns the node under the cursor.
func (l *Lookup[K, V]) at() *node[K, V] {
	l.sync()
	return &l.dict.arena.nodes[l.cur]
}

// PartialSearch moves the cursor along the given key part if it is reachable
// from the current position. Otherwise the cursor is reset to the root and
// ErrInvalidKeyPart is returned.
func (l *Lookup[K, V]) PartialSearch(part K) error {
	next, ok := l.at().child(part)
	if !ok {
		l.Reset()
		return ErrInvalidKeyPart
	}
	l.cur = next
	l.depth++
	return nil
}

// TryResolve returns the value stored under the key parts consumed so far.
func (l *Lookup[K, V]) TryResolve() (val V, ok bool) {
	if p := l.at().val; p != nil {
		return *p, true
	}
	return
}

// Reset moves the cursor back to the root.
func (l *Lookup[K, V]) Reset() {
	l.cur = rootIdx
	l.depth = 0
	l.gen = l.dict.gen
}

// Get is a shortcut for Dict.Get. It ignores the cursor position.
func (l *Lookup[K, V]) Get(key []K) (V, bool) {
	return l.dict.Get(key)
}

// Depth returns the number of key parts consumed since the last reset.
func (l *Lookup[K, V]) Depth() int {
	l.sync()
	return l.depth
}

// AtRoot reports whether the cursor is at the root.
func (l *Lookup[K, V]) AtRoot() bool {
	l.sync()
	return l.cur == rootIdx
}

// CanAdvance reports whether some stored key continues past the current position.
func (l *Lookup[K, V]) CanAdvance() bool {
	return len(l.at().next) != 0
}
