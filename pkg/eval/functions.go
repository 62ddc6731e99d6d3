package eval

import (
	"fmt"

	"github.com/conneroisu/emberlang/internal/cast"
	"github.com/conneroisu/emberlang/internal/container"
	"github.com/conneroisu/emberlang/internal/types"
	"github.com/conneroisu/emberlang/internal/value"
)

// evalApply evaluates function application by juxtaposition. ember
// functions are single-argument; multi-argument calls are curried chains of
// ApplyExpr nodes, so this evaluates one argument at a time against both
// interpreted (*value.Func) and native (*value.Native) callables.
func (e *Evaluator) evalApply(expr *types.ApplyExpr, env value.Environment) (value.Value, error) {
	fnVal, err := e.evalExpr(expr.Func, env)
	if err != nil {
		return nil, err
	}

	argVal, err := e.evalExpr(expr.Arg, env)
	if err != nil {
		return nil, err
	}

	return e.applyOne(fnVal, argVal)
}

// applyOne applies fn to a single argument, partially applying natives that
// expect more than one argument.
func (e *Evaluator) applyOne(fnVal, arg value.Value) (value.Value, error) {
	switch fn := fnVal.(type) {
	case *value.Func:
		body, ok := fn.Body.(types.Expr)
		if !ok {
			return nil, fmt.Errorf("eval: function body is not an expression")
		}

		callEnv := fn.Env.Extend()
		callEnv.Set(fn.Param, arg)

		return e.evalExpr(body, callEnv)

	case *value.Native:
		if fn.ArgCount <= 1 {
			return fn.Fn([]value.Value{arg})
		}

		captured := arg
		next := fn.Fn
		remaining := int(fn.ArgCount) - 1

		return e.pool.NewNative(fn.Name, remaining, func(args []value.Value) (value.Value, error) {
			return next(append([]value.Value{captured}, args...))
		}), nil

	default:
		return nil, fmt.Errorf("cannot apply non-function value of type %s", value.TagOf(fnVal))
	}
}

// evalIndex evaluates subscript access `container[index]`, lowered to the
// Container Protocol's Get.
func (e *Evaluator) evalIndex(expr *types.IndexExpr, env value.Environment) (value.Value, error) {
	c, err := e.evalExpr(expr.Container, env)
	if err != nil {
		return nil, err
	}
	idx, err := e.evalExpr(expr.Index, env)
	if err != nil {
		return nil, err
	}

	return container.Get(e.pool, c, idx)
}

// evalIn evaluates the membership test `container ? value`, lowered to the
// Container Protocol's In.
func (e *Evaluator) evalIn(expr *types.InExpr, env value.Environment) (value.Value, error) {
	c, err := e.evalExpr(expr.Container, env)
	if err != nil {
		return nil, err
	}
	v, err := e.evalExpr(expr.Value, env)
	if err != nil {
		return nil, err
	}

	ok, err := container.In(v, c)
	if err != nil {
		return nil, err
	}

	return value.Bool(ok), nil
}

// evalAs evaluates the cast operation `expr as Name`.
func (e *Evaluator) evalAs(expr *types.AsExpr, env value.Environment) (value.Value, error) {
	v, err := e.evalExpr(expr.Expr, env)
	if err != nil {
		return nil, err
	}

	target, err := typeNameToTag(expr.Type)
	if err != nil {
		return nil, err
	}

	return cast.As(e.pool, v, target)
}

// evalIs evaluates the type test `expr is Name`.
func (e *Evaluator) evalIs(expr *types.IsExpr, env value.Environment) (value.Value, error) {
	v, err := e.evalExpr(expr.Expr, env)
	if err != nil {
		return nil, err
	}

	target, err := typeNameToTag(expr.Type)
	if err != nil {
		return nil, err
	}

	return value.Bool(value.Is(v, target)), nil
}

// typeNameToTag maps an ember type name (as written after `as`/`is`) to its
// runtime Tag.
func typeNameToTag(name string) (value.Tag, error) {
	switch name {
	case "none":
		return value.TagNone, nil
	case "bool":
		return value.TagBool, nil
	case "int":
		return value.TagInt, nil
	case "num":
		return value.TagNum, nil
	case "str":
		return value.TagStr, nil
	case "range":
		return value.TagRange, nil
	case "tuple":
		return value.TagTuple, nil
	case "list":
		return value.TagList, nil
	case "map":
		return value.TagMap, nil
	case "err":
		return value.TagErr, nil
	case "func":
		return value.TagFunc, nil
	case "tagged":
		return value.TagTagged, nil
	default:
		return 0, fmt.Errorf("unknown type name %q", name)
	}
}
