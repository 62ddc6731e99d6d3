package container

import (
	"fmt"

	"github.com/conneroisu/emberlang/internal/heap"
	"github.com/conneroisu/emberlang/internal/value"
)

// normalizeIndex applies the uniform negative-index rule (§4.3): a
// negative index counts back from length, then the result is
// range-checked.
func normalizeIndex(i int64, length int) (int, error) {
	n := i
	if n < 0 {
		n += int64(length)
	}
	if n < 0 || n >= int64(length) {
		return 0, fmt.Errorf("index %d out of range for length %d", i, length)
	}

	return int(n), nil
}

// Get implements indexed and property-style get (`container[index]`).
func Get(p *heap.Pool, c, index value.Value) (value.Value, error) {
	switch cv := c.(type) {
	case *value.Tuple:
		if idx, ok := index.(*value.Str); ok {
			if idx.V != "len" {
				return nil, fmt.Errorf("tuple has no property %q", idx.V)
			}

			return p.NewInt(int64(len(cv.Elems))), nil
		}

		return getSeq(cv.Elems, index)
	case *value.List:
		switch idx := index.(type) {
		case *value.Str:
			switch idx.V {
			case "len":
				return p.NewInt(int64(len(cv.Elems))), nil
			case "append":
				list := cv

				return p.NewNative("append", 1, func(args []value.Value) (value.Value, error) {
					list.Elems = append(list.Elems, p.Dupe(args[0]))

					return value.NONE, nil
				}), nil
			default:
				return nil, fmt.Errorf("list has no property %q", idx.V)
			}
		default:
			return getSeq(cv.Elems, index)
		}
	case *value.Str:
		idx, ok := index.(*value.Str)
		if !ok {
			return nil, fmt.Errorf("unimplemented: str[%s]", value.TagOf(index))
		}
		if idx.V != "len" {
			return nil, fmt.Errorf("str has no property %q", idx.V)
		}

		return p.NewInt(int64(len(cv.V))), nil
	case *value.Map:
		v, ok := cv.Get(index)
		if !ok {
			return nil, fmt.Errorf("key not found in map")
		}

		return v, nil
	default:
		return nil, fmt.Errorf("cannot index into %s", value.TagOf(c))
	}
}

func getSeq(elems []value.Value, index value.Value) (value.Value, error) {
	i, ok := index.(*value.Int)
	if !ok {
		return nil, fmt.Errorf("unimplemented: index by %s", value.TagOf(index))
	}
	n, err := normalizeIndex(i.V, len(elems))
	if err != nil {
		return nil, err
	}

	return elems[n], nil
}

// Set implements indexed set (`container[index] = v`).
func Set(p *heap.Pool, c, index, v value.Value) error {
	switch cv := c.(type) {
	case *value.Tuple:
		return setSeq(cv.Elems, index, v)
	case *value.List:
		return setSeq(cv.Elems, index, v)
	case *value.Map:
		cv.Set(p.Dupe(index), p.Dupe(v))

		return nil
	default:
		return fmt.Errorf("cannot assign into %s", value.TagOf(c))
	}
}

func setSeq(elems []value.Value, index, v value.Value) error {
	i, ok := index.(*value.Int)
	if !ok {
		return fmt.Errorf("unimplemented: index by %s", value.TagOf(index))
	}
	n, err := normalizeIndex(i.V, len(elems))
	if err != nil {
		return err
	}
	elems[n] = v

	return nil
}

// In implements membership (`v in container`).
func In(needle, haystack value.Value) (bool, error) {
	switch c := haystack.(type) {
	case *value.Str:
		n, ok := needle.(*value.Str)
		if !ok {
			return false, fmt.Errorf("membership in str requires a str, got %s", value.TagOf(needle))
		}

		return containsSubstring(c.V, n.V), nil
	case *value.Tuple:
		return containsElem(c.Elems, needle), nil
	case *value.List:
		return containsElem(c.Elems, needle), nil
	case *value.Map:
		_, ok := c.Get(needle)

		return ok, nil
	case *value.Range:
		n, ok := needle.(*value.Int)
		if !ok {
			return false, fmt.Errorf("membership in range requires an int, got %s", value.TagOf(needle))
		}

		return inRange(c, n.V), nil
	default:
		return false, fmt.Errorf("membership undefined for %s", value.TagOf(haystack))
	}
}

func containsSubstring(haystack, needle string) bool {
	if len(needle) == 0 {
		return true
	}
	for i := 0; i+len(needle) <= len(haystack); i++ {
		if haystack[i:i+len(needle)] == needle {
			return true
		}
	}

	return false
}

func containsElem(elems []value.Value, needle value.Value) bool {
	for _, e := range elems {
		if value.Eql(e, needle) {
			return true
		}
	}

	return false
}

// inRange mirrors the half-open bound next() uses for iteration (§9
// decision 2: "in" uses the same half-open test as iteration, not the
// closed interval §4.3 literally describes, so membership never reports
// true for a value the iterator would never yield.
func inRange(r *value.Range, v int64) bool {
	if r.Step > 0 {
		if v < r.Start || v >= r.End {
			return false
		}
	} else {
		if v > r.Start || v <= r.End {
			return false
		}
	}

	return (v-r.Start)%r.Step == 0
}

// Length implements the `length` operation directly (distinct from the
// `.len` property, which routes through Get).
func Length(v value.Value) (int64, error) {
	switch c := v.(type) {
	case *value.Str:
		return int64(len(c.V)), nil
	case *value.Tuple:
		return int64(len(c.Elems)), nil
	case *value.List:
		return int64(len(c.Elems)), nil
	case *value.Map:
		return int64(c.Len()), nil
	case *value.Range:
		// The number of values iteration yields (half-open, sign of Step).
		if c.Step > 0 && c.Start < c.End {
			return (c.End - c.Start + c.Step - 1) / c.Step, nil
		}
		if c.Step < 0 && c.Start > c.End {
			return (c.Start - c.End - c.Step - 1) / -c.Step, nil
		}

		return 0, nil
	default:
		return 0, fmt.Errorf("length undefined for %s", value.TagOf(v))
	}
}
