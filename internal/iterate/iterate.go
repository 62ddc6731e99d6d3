package iterate

import (
	"fmt"

	"github.com/conneroisu/emberlang/internal/heap"
	"github.com/conneroisu/emberlang/internal/value"
)

// New produces a fresh iterator over a dup of v. Permitted sources are
// range, str, tuple, list, map; anything else errors with "invalid type
// for iteration" (§4.4).
func New(p *heap.Pool, v value.Value) (*value.Iterator, error) {
	src := p.Dupe(v)

	var kind value.CursorKind
	var i int64
	switch s := src.(type) {
	case *value.Range:
		kind = value.CursorInt
		i = s.Start
	case *value.Str:
		kind = value.CursorBytes
	case *value.Tuple:
		kind = value.CursorSeq
	case *value.List:
		kind = value.CursorSeq
	case *value.Map:
		kind = value.CursorMap
	default:
		return nil, fmt.Errorf("invalid type for iteration: %s", value.TagOf(v))
	}

	return p.NewIterator(&value.Iterator{Source: src, Kind: kind, I: i}), nil
}

// Next advances it one step, returning the none singleton on exhaustion
// (§4.4). Cells it allocates (a range's int, a string slice) are tracked
// through p like any other allocation point.
func Next(p *heap.Pool, it *value.Iterator) (value.Value, error) {
	switch it.Kind {
	case value.CursorSeq:
		return nextSeq(it)
	case value.CursorBytes:
		return nextBytes(p, it)
	case value.CursorInt:
		return nextRange(p, it)
	case value.CursorMap:
		return nextMap(it)
	default:
		return nil, fmt.Errorf("iterate: unknown cursor kind %d", it.Kind)
	}
}

func elemsOf(src value.Value) []value.Value {
	switch s := src.(type) {
	case *value.Tuple:
		return s.Elems
	case *value.List:
		return s.Elems
	default:
		return nil
	}
}

func nextSeq(it *value.Iterator) (value.Value, error) {
	elems := elemsOf(it.Source)
	if it.U >= uint64(len(elems)) {
		return value.NONE, nil
	}
	v := elems[it.U]
	it.U++

	return v, nil
}

// utf8LeadLen returns the code-point byte length encoded by a UTF-8 lead
// byte, or 0 if b is not a valid lead byte.
func utf8LeadLen(b byte) int {
	switch {
	case b&0x80 == 0x00:
		return 1
	case b&0xE0 == 0xC0:
		return 2
	case b&0xF0 == 0xE0:
		return 3
	case b&0xF8 == 0xF0:
		return 4
	default:
		return 0
	}
}

func nextBytes(p *heap.Pool, it *value.Iterator) (value.Value, error) {
	s := it.Source.(*value.Str)
	if it.U >= uint64(len(s.V)) {
		return value.NONE, nil
	}
	k := utf8LeadLen(s.V[it.U])
	if k == 0 || it.U+uint64(k) > uint64(len(s.V)) {
		return nil, fmt.Errorf("invalid utf-8 sequence")
	}
	sub := s.V[it.U : it.U+uint64(k)]
	it.U += uint64(k)

	return p.NewBorrowedStr(sub), nil
}

func nextRange(p *heap.Pool, it *value.Iterator) (value.Value, error) {
	r := it.Source.(*value.Range)
	if r.Step > 0 {
		if it.I >= r.End {
			return value.NONE, nil
		}
	} else {
		if it.I <= r.End {
			return value.NONE, nil
		}
	}
	v := p.NewInt(it.I)
	it.I += r.Step

	return v, nil
}

func nextMap(it *value.Iterator) (value.Value, error) {
	m := it.Source.(*value.Map)
	entries := m.Entries()
	if it.U >= uint64(len(entries)) {
		return value.NONE, nil
	}
	e := entries[it.U]
	it.U++

	tup := it.Reuse()
	tup.Elems[0] = e.Key
	tup.Elems[1] = e.Val

	return tup, nil
}
