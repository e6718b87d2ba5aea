// Package bytedict is a byte-keyed variant of dict.Dict.
//
// Every node keeps a 256-bit bitmap of the bytes that continue some key and
// a dense slice of children ordered by byte value. A child's position in the
// slice is the number of bits set below its byte (popcount rank), so a node
// with three children costs three pointers instead of a 256-slot array.
package bytedict

import (
	"github.com/hideo55/go-popcount"

	"github.com/aglyzov/capillary/dict"
)

type node[V any] struct {
	bitmap   [4]uint64 // 256 bits representing 2**8 next bytes
	children []*node[V]
	val      *V
}

// has reports whether the byte continues some key.
func (n *node[V]) has(b byte) bool {
	return (n.bitmap[b>>6]>>(b&0x3F))&0x01 != 0
}

// rank returns the index of the child for the given byte.
func (n *node[V]) rank(b byte) int {
	ofs := b >> 6
	idx := b & 0x3F // the lowest 6 bits (2**6 == 64)
	cnt := popcount.Count(n.bitmap[ofs] & ((1 << idx) - 1))
	for j := byte(0); j < ofs; j++ {
		cnt += popcount.Count(n.bitmap[j])
	}
	return int(cnt)
}

// child returns the child for the given byte or nil.
func (n *node[V]) child(b byte) *node[V] {
	if !n.has(b) {
		return nil
	}
	return n.children[n.rank(b)]
}

// addChild inserts a new empty child for the byte and returns it.
func (n *node[V]) addChild(b byte) *node[V] {
	cnt := n.rank(b)
	n.bitmap[b>>6] |= 1 << (b & 0x3F)

	next := &node[V]{}
	n.children = append(n.children, nil)
	copy(n.children[cnt+1:], n.children[cnt:])
	n.children[cnt] = next

	return next
}

// Dict is a trie keyed by byte strings.
type Dict[V any] struct {
	root   node[V]
	size   int
	nodes  int
	policy dict.Policy
}

// New returns an empty Dict. Only the policy of the options is used.
func New[V any](opts ...dict.Option) *Dict[V] {
	return &Dict[V]{policy: dict.NewConfig(opts...).Policy}
}

// Len returns the number of keys.
func (d *Dict[V]) Len() int {
	if d == nil {
		return 0
	}
	return d.size
}

func (d *Dict[V]) Empty() bool {
	return d.Len() == 0
}

// Nodes returns the number of nodes, the root excluded.
func (d *Dict[V]) Nodes() int {
	return d.nodes
}

// Insert stores the value under the key and reports whether the key is new.
// An empty key is ignored.
func (d *Dict[V]) Insert(key []byte, val V) bool {
	if len(key) == 0 {
		return false
	}
	cur := &d.root
	for _, b := range key {
		next := cur.child(b)
		if next == nil {
			next = cur.addChild(b)
			d.nodes++
		}
		cur = next
	}
	if cur.val == nil {
		cur.val = &val
		d.size++
		return true
	}
	if d.policy == dict.Replace {
		*cur.val = val
	}
	return false
}

// InsertString is Insert for string keys.
func (d *Dict[V]) InsertString(key string, val V) bool {
	return d.Insert([]byte(key), val)
}

func (d *Dict[V]) find(key []byte) *node[V] {
	if d == nil || len(key) == 0 {
		return nil
	}
	cur := &d.root
	for _, b := range key {
		if cur = cur.child(b); cur == nil {
			return nil
		}
	}
	return cur
}

// GetPtr returns a pointer to the value stored under the key, or nil.
func (d *Dict[V]) GetPtr(key []byte) *V {
	if cur := d.find(key); cur != nil {
		return cur.val
	}
	return nil
}

// Get returns a value associated with the key.
func (d *Dict[V]) Get(key []byte) (val V, ok bool) {
	if p := d.GetPtr(key); p != nil {
		return *p, true
	}
	return
}

// GetString is Get for string keys.
func (d *Dict[V]) GetString(key string) (V, bool) {
	return d.Get([]byte(key))
}

// Lookup returns a new cursor positioned at the root.
func (d *Dict[V]) Lookup() *Lookup[V] {
	return &Lookup[V]{dict: d, cur: &d.root}
}
