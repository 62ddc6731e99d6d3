package eval

import (
	"fmt"
	"math"
	"strings"

	"github.com/conneroisu/emberlang/internal/bridge"
	"github.com/conneroisu/emberlang/internal/container"
	"github.com/conneroisu/emberlang/internal/iterate"
	"github.com/conneroisu/emberlang/internal/value"
)

// dumpDepth bounds the recursion dump() performs before abbreviating
// nested compounds as "(...)" / "[...]" / "{...}".
const dumpDepth = 32

// registerBuiltins populates the evaluator with the native function library
// that stands in for ember's mutation, iteration and introspection surface
// (set, iter, next, hash, eql, dump, len), plus a small math and string
// utility set wired through the Host Bridge. The cast/type-test operators
// (as, is) are reserved keywords handled as infix operators by AsExpr/IsExpr
// rather than native functions, since "as"/"is" can never lex as identifiers.
func (e *Evaluator) registerBuiltins() {
	e.registerNative("set", 3, e.nativeSet)
	e.registerNative("iter", 1, e.nativeIter)
	e.registerNative("next", 1, e.nativeNext)
	e.registerNative("hash", 1, e.nativeHash)
	e.registerNative("eql", 2, e.nativeEql)
	e.registerNative("dump", 1, e.nativeDump)
	e.registerNative("len", 1, e.nativeLen)

	e.registerWrapped("sqrt", func(x float64) float64 { return math.Sqrt(x) })
	e.registerWrapped("floor", func(x float64) int64 { return int64(math.Floor(x)) })
	e.registerWrapped("ceil", func(x float64) int64 { return int64(math.Ceil(x)) })
	e.registerWrapped("upper", func(s string) string { return strings.ToUpper(s) })
	e.registerWrapped("lower", func(s string) string { return strings.ToLower(s) })
}

// registerNative registers a directly-implemented native that needs raw
// Value access (container/cast/iterate operations bridge.WrapFunc cannot
// express, since its reflection only converts to concrete host types).
func (e *Evaluator) registerNative(name string, argCount int, fn value.NativeFn) {
	wrapped := func(args []value.Value) (value.Value, error) {
		if len(args) != argCount {
			return nil, fmt.Errorf("%s expects %d argument(s), got %d", name, argCount, len(args))
		}

		return fn(args)
	}
	e.builtins[name] = e.pool.NewNative(name, argCount, wrapped)
}

// registerWrapped registers a host Go function through the Host Bridge.
// Wrap errors here indicate a mismatched signature in this file, not a
// runtime condition, so they panic at startup rather than propagate.
func (e *Evaluator) registerWrapped(name string, fn interface{}) {
	native, err := bridge.WrapFunc(e.pool, e, name, fn)
	if err != nil {
		panic(fmt.Sprintf("eval: built-in %q failed to wrap: %v", name, err))
	}
	e.builtins[name] = native
}

func (e *Evaluator) nativeSet(args []value.Value) (value.Value, error) {
	if err := container.Set(e.pool, args[0], args[1], args[2]); err != nil {
		return nil, err
	}

	return value.NONE, nil
}

func (e *Evaluator) nativeIter(args []value.Value) (value.Value, error) {
	return iterate.New(e.pool, args[0])
}

func (e *Evaluator) nativeNext(args []value.Value) (value.Value, error) {
	it, ok := args[0].(*value.Iterator)
	if !ok {
		return nil, fmt.Errorf("next expects an iterator, got %s", value.TagOf(args[0]))
	}

	return iterate.Next(e.pool, it)
}

func (e *Evaluator) nativeHash(args []value.Value) (value.Value, error) {
	return e.pool.NewInt(int64(value.Hash(args[0]))), nil
}

func (e *Evaluator) nativeEql(args []value.Value) (value.Value, error) {
	return value.Bool(value.Eql(args[0], args[1])), nil
}

func (e *Evaluator) nativeDump(args []value.Value) (value.Value, error) {
	return e.pool.NewOwnedStr(value.DumpString(args[0], dumpDepth)), nil
}

func (e *Evaluator) nativeLen(args []value.Value) (value.Value, error) {
	n, err := container.Length(args[0])
	if err != nil {
		return nil, err
	}

	return e.pool.NewInt(n), nil
}

