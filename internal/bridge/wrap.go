package bridge

import (
	"fmt"
	"reflect"

	"github.com/conneroisu/emberlang/internal/heap"
	"github.com/conneroisu/emberlang/internal/value"
)

// WrapFunc wraps a host Go function as a native value (§4.5 "Native
// function wrapping"). fn must be a func value with a concrete (non-
// variadic, non-generic) signature and at most one return value plus an
// optional trailing error. Any parameter of type VM is supplied implicitly
// from vm at call time and does not consume a positional runtime argument,
// matching point 2 of §4.5 and giving Native.ArgCount the non-implicit
// count required by design decision 4.
func WrapFunc(p *heap.Pool, vm VM, name string, fn interface{}) (*value.Native, error) {
	rv := reflect.ValueOf(fn)
	rt := rv.Type()
	if rt.Kind() != reflect.Func {
		return nil, fmt.Errorf("bridge: WrapFunc requires a function, got %s", rt)
	}
	if rt.IsVariadic() {
		return nil, fmt.Errorf("bridge: variadic host functions are rejected (%s)", name)
	}

	implicit := make([]bool, rt.NumIn())
	argCount := 0
	for i := 0; i < rt.NumIn(); i++ {
		if rt.In(i) == vmType {
			implicit[i] = true

			continue
		}
		argCount++
	}

	switch rt.NumOut() {
	case 0, 1, 2:
	default:
		return nil, fmt.Errorf("bridge: host function %s has unsupported return arity %d", name, rt.NumOut())
	}
	if rt.NumOut() == 2 && !rt.Out(1).Implements(reflect.TypeOf((*error)(nil)).Elem()) {
		return nil, fmt.Errorf("bridge: host function %s's second return value must be error", name)
	}

	call := func(args []value.Value) (value.Value, error) {
		if len(args) != argCount {
			return nil, fmt.Errorf("bridge: %s expects %d argument(s), got %d", name, argCount, len(args))
		}

		in := make([]reflect.Value, rt.NumIn())
		next := 0
		for i := 0; i < rt.NumIn(); i++ {
			if implicit[i] {
				in[i] = reflect.ValueOf(vm)

				continue
			}
			hostArg, err := FromRuntime(args[next], rt.In(i))
			if err != nil {
				return nil, fmt.Errorf("bridge: %s argument %d: %w", name, next, err)
			}
			in[i] = reflect.ValueOf(hostArg)
			next++
		}

		out := rv.Call(in)
		if rt.NumOut() == 2 {
			if errVal := out[1].Interface(); errVal != nil {
				return nil, errVal.(error)
			}
		}
		if rt.NumOut() == 0 {
			return value.NONE, nil
		}

		return ToRuntime(p, out[0].Interface())
	}

	return p.NewNative(name, argCount, call), nil
}
