// Package replace implements streaming find-and-replace on top of the trie
// cursors of packages dict and bytedict.
//
// The input is consumed one key part at a time (a rune or a byte). A
// replacement fires as soon as the parts seen since the last match resolve
// to a stored key, so at every position the leftmost and shortest key wins:
//
//	table: "aab" => "X"
//	input: "aaab"
//	output: "aX"
package replace

import "slices"

// Cursor is an incremental search cursor over a dictionary of replacements.
// Both *dict.Lookup and *bytedict.Lookup satisfy it.
type Cursor[K, V any] interface {
	// PartialSearch advances the cursor or resets it and returns an error.
	PartialSearch(part K) error
	TryResolve() (V, bool)
	Reset()
}

// Stats describes a finished (or failed) stream.
type Stats struct {
	Parts   int64 // key parts read
	Matches int64 // replacements made
	Written int64 // bytes written
}

// Stream drives a Cursor over a sequence of parts fed one at a time.
//
// Parts that may still become a match are held back. Once they cannot, the
// first of them is passed to emit and the rest are scanned again, so an
// overlapping candidate that starts later is never missed.
type Stream[K any] struct {
	cur     Cursor[K, string]
	emit    func(K) error
	subst   func(string) error
	pending []K
	stats   Stats
}

// NewStream returns a Stream writing verbatim parts through emit and
// replacements through subst.
func NewStream[K any](cur Cursor[K, string], emit func(K) error, subst func(string) error) *Stream[K] {
	cur.Reset()
	return &Stream[K]{cur: cur, emit: emit, subst: subst}
}

// Feed consumes the next part of the input.
func (s *Stream[K]) Feed(part K) error {
	s.stats.Parts++
	return s.step(part)
}

// Flush writes out the parts still held back. It must be called at the end
// of the input; the stream can be fed again afterwards.
func (s *Stream[K]) Flush() error {
	for len(s.pending) != 0 {
		s.cur.Reset()
		if err := s.requeue(nil); err != nil {
			return err
		}
	}
	s.cur.Reset()
	return nil
}

// Pending returns the number of parts held back.
func (s *Stream[K]) Pending() int {
	return len(s.pending)
}

func (s *Stream[K]) Stats() Stats {
	return s.stats
}

func (s *Stream[K]) step(part K) error {
	if s.cur.PartialSearch(part) == nil {
		s.pending = append(s.pending, part)

		val, ok := s.cur.TryResolve()
		if !ok {
			return nil
		}
		s.pending = s.pending[:0]
		s.cur.Reset()
		s.stats.Matches++
		return s.subst(val)
	}

	// the cursor is back at the root
	if len(s.pending) == 0 {
		return s.emit(part)
	}
	return s.requeue(&part)
}

// requeue emits the first pending part and scans the others again followed
// by the optional tail part.
func (s *Stream[K]) requeue(tail *K) error {
	head := s.pending[0]
	rest := slices.Clone(s.pending[1:])
	if tail != nil {
		rest = append(rest, *tail)
	}
	s.pending = s.pending[:0]

	if err := s.emit(head); err != nil {
		return err
	}
	for _, part := range rest {
		if err := s.step(part); err != nil {
			return err
		}
	}
	return nil
}
