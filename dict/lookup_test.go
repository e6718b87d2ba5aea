package dict

import (
	"testing"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func smileys() *Dict[rune, string] {
	d := New[rune, string]()
	d.Insert(runes(":D"), "Hi there")
	d.Insert(runes(":)"), "Hello")
	return d
}

func TestLookup_New(t *testing.T) {
	t.Parallel()

	l := smileys().Lookup()

	assert.True(t, l.AtRoot())
	assert.Zero(t, l.Depth())
	assert.True(t, l.CanAdvance())

	_, ok := l.TryResolve()
	assert.False(t, ok, "the root never holds a value")
}

func TestLookup_PartialSearch(t *testing.T) {
	t.Parallel()

	d := smileys()

	for _, tcase := range []*struct {
		Name   string
		Parts  string
		ExpErr []bool
		ExpVal string
		ExpOK  bool
	}{
		{"full D", ":D", []bool{false, false}, "Hi there", true},
		{"full )", ":)", []bool{false, false}, "Hello", true},
		{"prefix", ":", []bool{false}, "", false},
		{"dead end", ":x", []bool{false, true}, "", false},
		{"unknown first", "x", []bool{true}, "", false},
		{"past the end", ":DD", []bool{false, false, true}, "", false},
		{"restart after miss", ":x:)", []bool{false, true, false, false}, "Hello", true},
	} {
		tcase := tcase

		t.Run(tcase.Name, func(t *testing.T) {
			t.Parallel()

			l := d.Lookup()

			for i, part := range runes(tcase.Parts) {
				err := l.PartialSearch(part)
				if tcase.ExpErr[i] {
					assert.ErrorIs(t, err, ErrInvalidKeyPart, "part %d", i)
					assert.True(t, l.AtRoot(), "a miss resets the cursor")
				} else {
					assert.NoError(t, err, "part %d", i)
				}
			}

			val, ok := l.TryResolve()
			assert.Equal(t, tcase.ExpOK, ok)
			assert.Equal(t, tcase.ExpVal, val)
		})
	}
}

func TestLookup_ResolvesLikeGet(t *testing.T) {
	t.Parallel()

	const (
		total = 2_000
		seed  = 1234567890
	)

	var (
		d    = New[rune, string]()
		fake = gofakeit.New(seed)
		keys = make([]string, 0, total)
	)

	for i := 0; i < total; i++ {
		key := fake.Word() + " " + fake.Word()
		d.Insert(runes(key), fake.Name())
		keys = append(keys, key)
	}

	l := d.Lookup()

	for _, key := range keys {
		l.Reset()

		for _, part := range runes(key) {
			require.NoError(t, l.PartialSearch(part), key)
		}

		assert.Equal(t, len(runes(key)), l.Depth())

		exp, expOK := d.Get(runes(key))
		val, ok := l.TryResolve()

		assert.Equal(t, expOK, ok, key)
		assert.Equal(t, exp, val, key)
	}
}

func TestLookup_Reset(t *testing.T) {
	t.Parallel()

	l := smileys().Lookup()

	require.NoError(t, l.PartialSearch(':'))
	assert.False(t, l.AtRoot())
	assert.Equal(t, 1, l.Depth())

	l.Reset()

	assert.True(t, l.AtRoot())
	assert.Zero(t, l.Depth())
	require.NoError(t, l.PartialSearch(':'))
	require.NoError(t, l.PartialSearch(')'))

	val, ok := l.TryResolve()
	assert.True(t, ok)
	assert.Equal(t, "Hello", val)
	assert.False(t, l.CanAdvance())
}

func TestLookup_MissBehavesLikeFreshCursor(t *testing.T) {
	t.Parallel()

	d := New[rune, int]()
	d.Insert(runes("ab"), 1)
	d.Insert(runes("ba"), 2)

	used := d.Lookup()
	require.NoError(t, used.PartialSearch('a'))
	require.ErrorIs(t, used.PartialSearch('a'), ErrInvalidKeyPart)

	fresh := d.Lookup()

	for _, part := range runes("ba") {
		assert.Equal(t, fresh.PartialSearch(part), used.PartialSearch(part))
	}

	v1, ok1 := used.TryResolve()
	v2, ok2 := fresh.TryResolve()
	assert.Equal(t, ok2, ok1)
	assert.Equal(t, v2, v1)
	assert.Equal(t, 2, v1)
}

func TestLookup_RetryFailedPart(t *testing.T) {
	t.Parallel()

	d := New[rune, string]()
	d.Insert(runes("ab"), "AB")
	d.Insert(runes("ba"), "BA")

	l := d.Lookup()
	require.NoError(t, l.PartialSearch('a'))

	// 'a' cannot follow "a", but it can start a new candidate
	require.ErrorIs(t, l.PartialSearch('a'), ErrInvalidKeyPart)
	require.NoError(t, l.PartialSearch('a'))
	require.NoError(t, l.PartialSearch('b'))

	val, ok := l.TryResolve()
	assert.True(t, ok)
	assert.Equal(t, "AB", val)
}

func TestLookup_OnlyPrefixStored(t *testing.T) {
	t.Parallel()

	d := New[rune, string]()
	d.Insert(runes(":D"), "Hello")

	_, ok := d.Get(runes(":)"))
	assert.False(t, ok)

	l := d.Lookup()

	require.NoError(t, l.PartialSearch(':'))
	_, ok = l.TryResolve()
	assert.False(t, ok)

	assert.ErrorIs(t, l.PartialSearch(')'), ErrInvalidKeyPart)
	assert.True(t, l.AtRoot())
}

func TestLookup_Independent(t *testing.T) {
	t.Parallel()

	d := smileys()
	a, b := d.Lookup(), d.Lookup()

	require.NoError(t, a.PartialSearch(':'))
	require.NoError(t, b.PartialSearch(':'))
	require.NoError(t, a.PartialSearch('D'))
	require.ErrorIs(t, b.PartialSearch('x'), ErrInvalidKeyPart)

	val, ok := a.TryResolve()
	assert.True(t, ok)
	assert.Equal(t, "Hi there", val)
	assert.True(t, b.AtRoot())

	// neither cursor touched the dict
	assert.Equal(t, 2, d.Len())
	assert.Equal(t, 3, d.Nodes())
}

func TestLookup_SurvivesInserts(t *testing.T) {
	t.Parallel()

	d := New[rune, int]()
	d.Insert(runes("abc"), 1)

	l := d.Lookup()
	require.NoError(t, l.PartialSearch('a'))
	require.NoError(t, l.PartialSearch('b'))

	for i := 0; i < 500; i++ {
		d.Insert([]rune{'b', rune('a' + i%26), rune(i)}, i)
	}
	d.Insert(runes("abd"), 2)

	require.NoError(t, l.PartialSearch('d'))
	val, ok := l.TryResolve()
	assert.True(t, ok)
	assert.Equal(t, 2, val)
}

func TestLookup_Get(t *testing.T) {
	t.Parallel()

	l := smileys().Lookup()
	require.NoError(t, l.PartialSearch(':'))

	val, ok := l.Get(runes(":D"))
	assert.True(t, ok)
	assert.Equal(t, "Hi there", val)

	_, ok = l.Get(runes("D"))
	assert.False(t, ok)

	// the position is untouched
	assert.Equal(t, 1, l.Depth())
	require.NoError(t, l.PartialSearch(')'))
}

func TestLookup_ZeroDict(t *testing.T) {
	t.Parallel()

	var d Dict[byte, int]

	l := d.Lookup()
	assert.ErrorIs(t, l.PartialSearch('a'), ErrInvalidKeyPart)
	assert.False(t, l.CanAdvance())
}

func TestLookup_AfterInitDict(t *testing.T) {
	t.Parallel()

	d := New[rune, int]()
	d.Insert(runes("abc"), 1)

	l := d.Lookup()
	require.NoError(t, l.PartialSearch('a'))
	require.NoError(t, l.PartialSearch('b'))

	InitDict(d)

	assert.True(t, l.AtRoot(), "the old position is gone")
	assert.Zero(t, l.Depth())
	assert.ErrorIs(t, l.PartialSearch('c'), ErrInvalidKeyPart)

	InitDict(d, Item[rune, int]{runes("cd"), 2})

	require.NoError(t, l.PartialSearch('c'))
	require.NoError(t, l.PartialSearch('d'))

	val, ok := l.TryResolve()
	assert.True(t, ok)
	assert.Equal(t, 2, val)

	l.Reset()
	require.NoError(t, l.PartialSearch('c')) // slot 1

	// slot 1 is 'd' now and has no 'c' edge
	InitDict(d, Item[rune, int]{runes("dd"), 3}, Item[rune, int]{runes("cd"), 4})

	require.NoError(t, l.PartialSearch('c'), "searched from the root, not from slot 1")
	require.NoError(t, l.PartialSearch('d'))

	val, ok = l.TryResolve()
	assert.True(t, ok)
	assert.Equal(t, 4, val)
}
