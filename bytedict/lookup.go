package bytedict

import "github.com/aglyzov/capillary/dict"

// Lookup is a cursor used for incremental byte-by-byte searches in a Dict.
type Lookup[V any] struct {
	dict  *Dict[V]
	cur   *node[V]
	depth int
}

// PartialSearch moves the cursor along the byte if it continues some key.
// Otherwise the cursor is reset to the root and dict.ErrInvalidKeyPart is
// returned.
func (l *Lookup[V]) PartialSearch(b byte) error {
	next := l.cur.child(b)
	if next == nil {
		l.Reset()
		return dict.ErrInvalidKeyPart
	}
	l.cur = next
	l.depth++
	return nil
}

// TryResolve returns the value stored under the bytes consumed so far.
func (l *Lookup[V]) TryResolve() (val V, ok bool) {
	if l.cur.val != nil {
		return *l.cur.val, true
	}
	return
}

func (l *Lookup[V]) Reset() {
	l.cur = &l.dict.root
	l.depth = 0
}

// Get is a shortcut for Dict.Get.
func (l *Lookup[V]) Get(key []byte) (V, bool) {
	return l.dict.Get(key)
}

func (l *Lookup[V]) Depth() int {
	return l.depth
}

func (l *Lookup[V]) AtRoot() bool {
	return l.cur == &l.dict.root
}

// CanAdvance reports whether some stored key continues past the current position.
func (l *Lookup[V]) CanAdvance() bool {
	return len(l.cur.children) != 0
}
