package replace

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/aglyzov/capillary/bytedict"
	"github.com/aglyzov/capillary/dict"
)

// Bytes replaces keys of a byte dictionary in arbitrary binary input.
type Bytes struct {
	dict *bytedict.Dict[string]
}

// NewBytes builds a replacer from a table. Empty keys are ignored.
func NewBytes(table map[string]string) *Bytes {
	d := bytedict.New[string]()
	for _, from := range slices.Sorted(maps.Keys(table)) {
		d.InsertString(from, table[from])
	}
	return &Bytes{dict: d}
}

// FromByteDict returns a replacer backed by the dict.
func FromByteDict(d *bytedict.Dict[string]) *Bytes {
	if d == nil {
		d = bytedict.New[string](dict.WithPolicy(dict.KeepFirst))
	}
	return &Bytes{dict: d}
}

func (b *Bytes) Dict() *bytedict.Dict[string] {
	return b.dict
}

// Copy copies src to dst replacing every occurrence of a stored key.
func (b *Bytes) Copy(dst io.Writer, src io.Reader) (Stats, error) {
	var (
		in      = bufio.NewReader(src)
		out     = bufio.NewWriter(dst)
		written int64
	)

	s := NewStream[byte](b.dict.Lookup(),
		func(c byte) error {
			err := out.WriteByte(c)
			if err == nil {
				written++
			}
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
		c, err := in.ReadByte()
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

// String is Copy for in-memory data.
func (b *Bytes) String(s string) string {
	var out strings.Builder
	out.Grow(len(s))
	_, _ = b.Copy(&out, strings.NewReader(s))
	return out.String()
}
