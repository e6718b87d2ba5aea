package replace

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/aglyzov/capillary/dict"
)

// Runes replaces keys of a rune dictionary in UTF-8 text.
//
// Invalid UTF-8 sequences are read as utf8.RuneError and written back as
// such; use Bytes for binary input.
type Runes struct {
	dict *dict.Dict[rune, string]
}

// NewRunes builds a replacer from a table. Empty keys are ignored.
//
// Keys are inserted in byte order. Distinct invalid UTF-8 keys decode to the
// same runes, and the one that sorts first wins.
func NewRunes(table map[string]string) *Runes {
	d := dict.New[rune, string](dict.WithCapacity(len(table) * 4))
	for _, from := range slices.Sorted(maps.Keys(table)) {
		d.Insert([]rune(from), table[from])
	}
	return FromDict(d)
}

// FromDict returns a replacer backed by the dict. The dict must not be
// modified while a Copy is running unless it is only read through a Locked.
func FromDict(d *dict.Dict[rune, string]) *Runes {
	if d == nil {
		d = dict.New[rune, string]()
	}
	d.Lookup() // makes sure the arena exists before concurrent readers show up
	return &Runes{dict: d}
}

func (r *Runes) Dict() *dict.Dict[rune, string] {
	return r.dict
}

// Copy copies src to dst replacing every occurrence of a stored key.
// Runes are the key parts.
func (r *Runes) Copy(dst io.Writer, src io.Reader) (Stats, error) {
	return CopyRunes(dst, src, r.dict.Lookup())
}

// String is Copy for in-memory text.
func (r *Runes) String(s string) string {
	var out strings.Builder
	out.Grow(len(s))
	_, _ = r.Copy(&out, strings.NewReader(s))
	return out.String()
}

// CopyRunes streams src to dst through any rune cursor, e.g. a dict.LockedLookup.
func CopyRunes(dst io.Writer, src io.Reader, cur Cursor[rune, string]) (Stats, error) {
	var (
		in      = bufio.NewReader(src)
		out     = bufio.NewWriter(dst)
		written int64
	)

	s := NewStream(cur,
		func(c rune) error {
			n, err := out.WriteRune(c)
			written += int64(n)
			return err
		},
		func(val string) error {
			n, err := out.WriteString(val)
			written += int64(n)
			return err
		},
	)

	stats := func() Stats {
		st := s.Stats()
		st.Written = written
		return st
	}

	for {
		c, _, err := in.ReadRune()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return stats(), fmt.Errorf("read: %w", err)
		}
		if err = s.Feed(c); err != nil {
			return stats(), fmt.Errorf("write: %w", err)
		}
	}

	if err := s.Flush(); err != nil {
		return stats(), fmt.Errorf("write: %w", err)
	}
	if err := out.Flush(); err != nil {
		return stats(), fmt.Errorf("write: %w", err)
	}
	return stats(), nil
}
