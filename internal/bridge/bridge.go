package bridge

import (
	"fmt"
	"reflect"

	"github.com/conneroisu/emberlang/internal/heap"
	"github.com/conneroisu/emberlang/internal/value"
	"golang.org/x/text/unicode/norm"
)

// VM is the minimal surface a wrapped native function may request as its
// implicit first argument (§4.5 point 2: "If an argument type is *VM, the
// VM pointer is supplied implicitly"). pkg/eval's evaluator satisfies this.
type VM interface {
	Pool() *heap.Pool
}

var vmType = reflect.TypeOf((*VM)(nil)).Elem()

// Enum is implemented by host Go types the bridge should convert to a
// tagged value carrying the enumerator's name and a none payload, mirroring
// the original's compile-time enum case.
type Enum interface {
	EnumName() string
}

// ToRuntime converts a host Go value into a runtime cell, dispatching on
// the dynamic type of v (§4.5 host->runtime). Strings are borrowed (the
// cell aliases the caller's backing array, per the borrowed-ownership rule
// documented on value.Str); everything else is a fresh cell.
func ToRuntime(p *heap.Pool, v interface{}) (value.Value, error) {
	switch x := v.(type) {
	case nil:
		return value.NONE, nil
	case bool:
		return value.Bool(x), nil
	case string:
		return value.NewBorrowedStr(x), nil
	case int:
		return p.NewInt(int64(x)), nil
	case int32:
		return p.NewInt(int64(x)), nil
	case int64:
		return p.NewInt(x), nil
	case float32:
		return p.NewNum(float64(x)), nil
	case float64:
		return p.NewNum(x), nil
	case Enum:
		return p.NewTagged(x.EnumName(), value.NONE), nil
	case error:
		return p.NewErr(value.NewOwnedStr(x.Error())), nil
	case map[string]interface{}:
		m := p.NewMap()
		for k, mv := range x {
			rv, err := ToRuntime(p, mv)
			if err != nil {
				return nil, fmt.Errorf("bridge: converting field %q: %w", k, err)
			}
			m.Set(p.NewOwnedStr(k), rv)
		}

		return m, nil
	default:
		return nil, fmt.Errorf("bridge: %T has no static host->runtime conversion", v)
	}
}

// FromRuntime converts a runtime cell to the host type described by
// target, enforcing the variant per value (§4.5 runtime->host). Strings
// returned this way alias GC-managed storage and are valid only until the
// next collection cycle — callers must copy them to retain past that
// point.
func FromRuntime(v value.Value, target reflect.Type) (interface{}, error) {
	switch target.Kind() {
	case reflect.Struct:
		if target.NumField() == 0 {
			if v != value.NONE {
				return nil, fmt.Errorf("bridge: expected none, got %s", value.TagOf(v))
			}

			return reflect.Zero(target).Interface(), nil
		}
	case reflect.Bool:
		b, ok := value.BoolOf(v)
		if !ok {
			return nil, fmt.Errorf("bridge: expected bool, got %s", value.TagOf(v))
		}

		return b, nil
	case reflect.String:
		s, ok := v.(*value.Str)
		if !ok {
			return nil, fmt.Errorf("bridge: expected str, got %s", value.TagOf(v))
		}
		if !validUTF8NFC(s.V) {
			return nil, fmt.Errorf("bridge: string is not valid NFC-normalized UTF-8")
		}

		return s.V, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := intFromRuntime(v, target.Bits())
		if err != nil {
			return nil, err
		}

		return reflect.ValueOf(n).Convert(target).Interface(), nil
	case reflect.Float32, reflect.Float64:
		f, err := floatFromRuntime(v)
		if err != nil {
			return nil, err
		}
		if target.Kind() == reflect.Float32 {
			f = float64(float32(f))
		}

		return reflect.ValueOf(f).Convert(target).Interface(), nil
	}

	if target == vmType {
		return nil, fmt.Errorf("bridge: *VM must be consumed implicitly, not converted")
	}

	return nil, fmt.Errorf("bridge: unsupported host target %s", target)
}

func intFromRuntime(v value.Value, bits int) (int64, error) {
	switch x := v.(type) {
	case *value.Int:
		return x.V, nil
	case *value.Num:
		return int64(x.V), nil
	default:
		return 0, fmt.Errorf("bridge: expected int or num, got %s", value.TagOf(v))
	}
}

func floatFromRuntime(v value.Value) (float64, error) {
	switch x := v.(type) {
	case *value.Num:
		return x.V, nil
	case *value.Int:
		return float64(x.V), nil
	default:
		return 0, fmt.Errorf("bridge: expected num or int, got %s", value.TagOf(v))
	}
}

// validUTF8NFC reports whether s is valid UTF-8 already in Unicode
// Normalization Form C, using golang.org/x/text/unicode/norm rather than a
// hand-rolled decoder.
func validUTF8NFC(s string) bool {
	return norm.NFC.IsNormalString(s)
}
