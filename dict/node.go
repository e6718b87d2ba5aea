package dict

const rootIdx int32 = 0

// node is a single arena slot. The root lives at rootIdx.
type node[K comparable, V any] struct {
	val  *V         // non-nil iff some key ends here
	next map[K]int32 // edges: key part -> child slot
	// order keeps edge creation order so walks are deterministic
	order []K
}

// child returns the slot reached from n by the key part, if any.
func (n *node[K, V]) child(part K) (int32, bool) {
	if n.next == nil {
		return 0, false
	}
	idx, ok := n.next[part]
	return idx, ok
}

// arena holds all the nodes of a Dict addressed by stable indices.
type arena[K comparable, V any] struct {
	nodes []node[K, V]
}

func (a *arena[K, V]) init(capacity int) {
	if capacity < 1 {
		capacity = 1
	}
	a.nodes = make([]node[K, V], 1, capacity)
}

// link adds a new valueless node as a child of the parent slot and returns its index.
func (a *arena[K, V]) link(parent int32, part K) int32 {
	idx := int32(len(a.nodes))
	a.nodes = append(a.nodes, node[K, V]{})

	// NOTE: append may have moved the slice - take the parent address afterwards
	p := &a.nodes[parent]
	if p.next == nil {
		p.next = make(map[K]int32, 1)
	}
	p.next[part] = idx
	p.order = append(p.order, part)

	return idx
}

// walk follows the key from the root and returns the slot it ends at.
func (a *arena[K, V]) walk(key []K) (int32, bool) {
	if len(key) == 0 || len(a.nodes) == 0 {
		return 0, false
	}
	cur := rootIdx
	for _, part := range key {
		next, ok := a.nodes[cur].child(part)
		if !ok {
			return 0, false
		}
		cur = next
	}
	return cur, true
}
