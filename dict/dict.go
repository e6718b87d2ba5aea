package dict

import (
	"iter"
)

// Policy decides what Insert does with a key that already holds a value.
type Policy int

const (
	// KeepFirst keeps the value of the first insert; repeated inserts are no-ops.
	KeepFirst Policy = iota
	// Replace overwrites the stored value with the latest insert.
	Replace
)

func (p Policy) String() string {
	switch p {
	case KeepFirst:
		return "keep-first"
	case Replace:
		return "replace"
	}
	return "unknown"
}

// Item is a key-value pair.
type Item[K comparable, V any] struct {
	Key []K
	Val V
}

// Config holds the settings shared by the trie implementations.
type Config struct {
	Policy   Policy
	Capacity int // number of nodes to preallocate
}

// Option configures a Dict.
type Option func(*Config)

// NewConfig applies the options to a default Config.
func NewConfig(opts ...Option) Config {
	var c Config
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// WithPolicy sets the policy applied when an already stored key is inserted again.
func WithPolicy(p Policy) Option {
	return func(c *Config) { c.Policy = p }
}

// WithCapacity preallocates room for n nodes.
func WithCapacity(n int) Option {
	return func(c *Config) { c.Capacity = n }
}

// Dict is a trie keyed by sequences of key parts. It supports whole-key
// lookups as well as incremental searches through a Lookup cursor.
//
// A Dict is not safe for concurrent use when one of the goroutines inserts;
// see Locked.
type Dict[K comparable, V any] struct {
	arena  arena[K, V]
	size   int
	policy Policy
	gen    uint32 // bumped by InitDict so that older cursors start over
}

// New returns an empty Dict.
func New[K comparable, V any](opts ...Option) *Dict[K, V] {
	c := NewConfig(opts...)
	d := &Dict[K, V]{policy: c.Policy}
	d.arena.init(c.Capacity)
	return d
}

// InitDict resets the dict and inserts the items in order.
// Cursors obtained before the reset are moved back to the root on their next step.
func InitDict[K comparable, V any](d *Dict[K, V], items ...Item[K, V]) *Dict[K, V] {
	*d = Dict[K, V]{policy: d.policy, gen: d.gen + 1}
	d.arena.init(len(items) + 1)
	for _, item := range items {
		d.Insert(item.Key, item.Val)
	}
	return d
}

// NewDict returns a KeepFirst Dict holding the given items.
func NewDict[K comparable, V any](items ...Item[K, V]) *Dict[K, V] {
	return InitDict(&Dict[K, V]{}, items...)
}

// Collect builds a Dict from a sequence of key-value pairs. Earlier pairs win
// under the default policy.
func Collect[K comparable, V any](seq iter.Seq2[[]K, V], opts ...Option) *Dict[K, V] {
	d := New[K, V](opts...)
	for key, val := range seq {
		d.Insert(key, val)
	}
	return d
}

// Len returns the number of keys in the dict.
func (d *Dict[K, V]) Len() int {
	return d.size
}

// Empty reports whether the dict holds no keys.
func (d *Dict[K, V]) Empty() bool {
	return d.size == 0
}

// Nodes returns the number of nodes, the root excluded.
func (d *Dict[K, V]) Nodes() int {
	if len(d.arena.nodes) == 0 {
		return 0
	}
	return len(d.arena.nodes) - 1
}

// Policy returns the policy the dict applies on repeated inserts.
func (d *Dict[K, V]) Policy() Policy {
	return d.policy
}

// Insert stores the value under the key and reports whether the key is new.
// An empty key is ignored. What happens to an already stored key depends on
// the dict's Policy.
func (d *Dict[K, V]) Insert(key []K, val V) bool {
	n := d.reach(key)
	if n == nil {
		return false
	}
	if n.val == nil {
		n.val = &val
		d.size++
		return true
	}
	if d.policy == Replace {
		*n.val = val
	}
	return false
}

// Set associates the value with the key regardless of the policy.
// Returns the previous value (if any).
func (d *Dict[K, V]) Set(key []K, val V) (prev V, ok bool) {
	n := d.reach(key)
	if n == nil {
		return
	}
	if n.val == nil {
		n.val = &val
		d.size++
		return
	}
	prev, ok = *n.val, true
	*n.val = val
	return
}

// reach returns the node the key ends at, creating missing nodes on the way.
func (d *Dict[K, V]) reach(key []K) *node[K, V] {
	if len(key) == 0 {
		return nil
	}
	if d.arena.nodes == nil {
		d.arena.init(len(key) + 1)
	}
	cur := rootIdx
	for _, part := range key {
		next, ok := d.arena.nodes[cur].child(part)
		if !ok {
			next = d.arena.link(cur, part)
		}
		cur = next
	}
	return &d.arena.nodes[cur]
}

// Get returns a value associated with the key.
func (d *Dict[K, V]) Get(key []K) (val V, ok bool) {
	if p := d.GetPtr(key); p != nil {
		return *p, true
	}
	return
}

// GetPtr returns a pointer to the value stored under the key, or nil.
// The pointer stays valid after further inserts.
func (d *Dict[K, V]) GetPtr(key []K) *V {
	idx, ok := d.arena.walk(key)
	if !ok {
		return nil
	}
	return d.arena.nodes[idx].val
}

// Has reports whether a value is stored under the key.
func (d *Dict[K, V]) Has(key []K) bool {
	return d.GetPtr(key) != nil
}

// Lookup returns a new cursor positioned at the root.
func (d *Dict[K, V]) Lookup() *Lookup[K, V] {
	if d.arena.nodes == nil {
		d.arena.init(1)
	}
	return &Lookup[K, V]{dict: d, cur: rootIdx, gen: d.gen}
}
