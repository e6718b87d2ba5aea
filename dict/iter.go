package dict

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Iter calls a handler for all keys with a given prefix.
// It returns whether all prefixed keys were iterated.
// The handler can continue the process by returning true or abort with false.
//
// Keys come depth-first, a key before its extensions, siblings in the order
// they were first inserted.
func (d *Dict[K, V]) Iter(prefix []K, handler func(Item[K, V]) bool) bool {
	if d.size == 0 {
		return true
	}
	top := rootIdx
	if len(prefix) > 0 {
		idx, ok := d.arena.walk(prefix)
		if !ok {
			return true
		}
		top = idx
	}
	key := make([]K, len(prefix), len(prefix)+8)
	copy(key, prefix)

	return d.iterate(top, key, handler)
}

// iterate calls the handler for the node's value and recurses into its children unless aborted.
func (d *Dict[K, V]) iterate(idx int32, key []K, h func(Item[K, V]) bool) bool {
	n := &d.arena.nodes[idx]
	if n.val != nil {
		k := make([]K, len(key))
		copy(k, key)
		if !h(Item[K, V]{Key: k, Val: *n.val}) {
			return false
		}
	}
	for _, part := range n.order {
		if !d.iterate(n.next[part], append(key, part), h) {
			return false
		}
	}
	return true
}

// Keys returns all keys in iteration order.
func (d *Dict[K, V]) Keys() [][]K {
	keys := make([][]K, 0, d.size)
	d.Iter(nil, func(item Item[K, V]) bool {
		keys = append(keys, item.Key)
		return true
	})
	return keys
}

// Items returns all key-value pairs in iteration order.
func (d *Dict[K, V]) Items() []Item[K, V] {
	items := make([]Item[K, V], 0, d.size)
	d.Iter(nil, func(item Item[K, V]) bool {
		items = append(items, item)
		return true
	})
	return items
}

// Merge inserts all items of another Dict into this one, each key prefixed
// with the given prefix. Repeated keys follow the receiver's policy.
// Returns itself.
func (d *Dict[K, V]) Merge(other *Dict[K, V], prefix []K) *Dict[K, V] {
	if other == nil {
		return d
	}
	for _, item := range other.Items() {
		key := make([]K, 0, len(prefix)+len(item.Key))
		key = append(append(key, prefix...), item.Key...)
		d.Insert(key, item.Val)
	}
	return d
}

// Dump writes an indented picture of the trie, one node per line.
func (d *Dict[K, V]) Dump(w io.Writer) {
	fmt.Fprintf(w, "ROOT len=%d nodes=%d\n", d.size, d.Nodes())
	if len(d.arena.nodes) == 0 {
		return
	}
	d.dump(w, rootIdx, "  ")
}

func (d *Dict[K, V]) dump(w io.Writer, idx int32, indent string) {
	n := &d.arena.nodes[idx]
	for _, part := range n.order {
		child := n.next[part]
		var b strings.Builder
		b.WriteString(indent)
		b.WriteString(partString(part))
		if v := d.arena.nodes[child].val; v != nil {
			fmt.Fprintf(&b, " => %v", *v)
		}
		fmt.Fprintln(w, b.String())
		d.dump(w, child, indent+"  ")
	}
}

func partString(part any) string {
	switch p := part.(type) {
	case rune:
		return strconv.QuoteRune(p)
	case byte:
		return strconv.QuoteRuneToASCII(rune(p))
	case string:
		return strconv.Quote(p)
	}
	return fmt.Sprint(part)
}
