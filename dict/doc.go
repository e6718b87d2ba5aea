// Package dict defines a trie keyed by sequences of key parts (runes, bytes,
// tokens...) with a partial key lookup feature.
//
// Besides the usual whole-key Get, a Dict hands out Lookup cursors. A cursor
// consumes key parts one at a time and can be asked after every step whether
// the parts consumed so far form a stored key. A part that leads nowhere
// puts the cursor back at the root, so the caller can start over with the
// same part. That is what a streaming find-and-replace needs:
//
//	d := dict.New[rune, string]()
//	d.Insert([]rune(":D"), "Hi there")
//	d.Insert([]rune(":)"), "Hello")
//
//	l := d.Lookup()
//	_ = l.PartialSearch(':')
//	_ = l.PartialSearch('D')
//	v, ok := l.TryResolve() // "Hi there", true
//
// Nodes are kept in an arena and addressed by index:
//
//	arena:  [0:root] [1:':'] [2:'D' => "Hi there"] [3:')' => "Hello"]
//
//	root --':'--> 1 --+--'D'--> 2
//	                  `--')'--> 3
//
// A cursor only holds an index, therefore it stays valid while the arena
// grows, and mutation during a search is confined to the cursor itself.
package dict
