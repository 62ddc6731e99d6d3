package iterate

import (
	"testing"

	"github.com/conneroisu/emberlang/internal/heap"
	"github.com/conneroisu/emberlang/internal/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drainInts(t *testing.T, p *heap.Pool, it *value.Iterator) []int64 {
	t.Helper()
	var got []int64
	for {
		v, err := Next(p, it)
		require.NoError(t, err)
		if v == value.NONE {
			break
		}
		got = append(got, v.(*value.Int).V)
	}

	return got
}

func TestIterateAscendingRange(t *testing.T) {
	p := heap.New()
	r, err := p.NewRange(0, 6, 2)
	require.NoError(t, err)
	it, err := New(p, r)
	require.NoError(t, err)

	assert.Equal(t, []int64{0, 2, 4}, drainInts(t, p, it))
}

func TestIterateDescendingRange(t *testing.T) {
	p := heap.New()
	r, err := p.NewRange(6, 0, -2)
	require.NoError(t, err)
	it, err := New(p, r)
	require.NoError(t, err)

	assert.Equal(t, []int64{6, 4, 2}, drainInts(t, p, it))
}

func TestIterateStringCodePoints(t *testing.T) {
	p := heap.New()
	s := p.NewOwnedStr("aé")
	it, err := New(p, s)
	require.NoError(t, err)

	var got []string
	for {
		v, err := Next(p, it)
		require.NoError(t, err)
		if v == value.NONE {
			break
		}
		got = append(got, v.(*value.Str).V)
	}
	assert.Equal(t, []string{"a", "é"}, got)
}

func TestIterateInvalidUTF8(t *testing.T) {
	p := heap.New()
	s := p.NewOwnedStr(string([]byte{0xFF}))
	it, err := New(p, s)
	require.NoError(t, err)

	_, err = Next(p, it)
	assert.Error(t, err)
}

func TestIterateMapYieldsTuplesAndReuses(t *testing.T) {
	p := heap.New()
	m := p.NewMap()
	m.Set(p.NewOwnedStr("a"), p.NewInt(1))
	m.Set(p.NewOwnedStr("b"), p.NewInt(2))

	it, err := New(p, m)
	require.NoError(t, err)

	first, err := Next(p, it)
	require.NoError(t, err)
	second, err := Next(p, it)
	require.NoError(t, err)
	assert.Same(t, first, second, "map iteration tuple cell should be reused across calls")

	tup := second.(*value.Tuple)
	assert.Equal(t, "b", tup.Elems[0].(*value.Str).V)

	third, err := Next(p, it)
	require.NoError(t, err)
	assert.Same(t, value.NONE, third)
}

func TestIterateInvalidSource(t *testing.T) {
	p := heap.New()
	_, err := New(p, p.NewFunc(&value.Func{}))
	assert.Error(t, err)
}
