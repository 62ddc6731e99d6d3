package cast

import (
	"fmt"
	"strconv"

	"github.com/conneroisu/emberlang/internal/heap"
	"github.com/conneroisu/emberlang/internal/value"
)

// As implements `as(v, target)` (§4.6).
func As(p *heap.Pool, v value.Value, target value.Tag) (value.Value, error) {
	if target == value.TagNone {
		return value.NONE, nil
	}
	if value.TagOf(v) == target {
		return v, nil
	}

	switch target {
	case value.TagBool:
		return asBool(v)
	case value.TagInt:
		return asInt(p, v)
	case value.TagNum:
		return asNum(p, v)
	case value.TagStr, value.TagTuple, value.TagMap, value.TagList:
		return nil, fmt.Errorf("as: cast to %s is reserved (TODO)", target)
	default:
		return nil, fmt.Errorf("as: cast to %s is undefined", target)
	}
}

func asBool(v value.Value) (value.Value, error) {
	switch x := v.(type) {
	case *value.Int:
		return value.Bool(x.V != 0), nil
	case *value.Num:
		return value.Bool(x.V != 0), nil
	case *value.Str:
		switch x.V {
		case "true":
			return value.TRUE, nil
		case "false":
			return value.FALSE, nil
		default:
			return nil, fmt.Errorf("as: cannot parse %q as bool", x.V)
		}
	default:
		return nil, fmt.Errorf("as: cannot cast %s to bool", value.TagOf(v))
	}
}

func asInt(p *heap.Pool, v value.Value) (value.Value, error) {
	if n, ok := v.(*value.Num); ok {
		return p.NewInt(int64(n.V)), nil
	}
	if b, ok := value.BoolOf(v); ok {
		if b {
			return p.NewInt(1), nil
		}

		return p.NewInt(0), nil
	}
	if s, ok := v.(*value.Str); ok {
		n, err := strconv.ParseInt(s.V, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("as: cannot parse %q as int: %w", s.V, err)
		}

		return p.NewInt(n), nil
	}

	return nil, fmt.Errorf("as: cannot cast %s to int", value.TagOf(v))
}

func asNum(p *heap.Pool, v value.Value) (value.Value, error) {
	switch x := v.(type) {
	case *value.Int:
		return p.NewNum(float64(x.V)), nil
	case *value.Str:
		f, err := strconv.ParseFloat(x.V, 64)
		if err != nil {
			return nil, fmt.Errorf("as: cannot parse %q as num: %w", x.V, err)
		}

		return p.NewNum(f), nil
	}
	if b, ok := value.BoolOf(v); ok {
		if b {
			return p.NewNum(1), nil
		}

		return p.NewNum(0), nil
	}

	return nil, fmt.Errorf("as: cannot cast %s to num", value.TagOf(v))
}
