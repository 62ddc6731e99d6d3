package eval

import (
	"fmt"

	"github.com/conneroisu/emberlang/internal/heap"
	"github.com/conneroisu/emberlang/internal/types"
	"github.com/conneroisu/emberlang/internal/value"
)

// Evaluator walks an ember AST and computes its runtime value. It owns the
// heap pool every allocation during evaluation is tracked through, and
// satisfies bridge.VM so native functions wrapped through the Host Bridge
// can request it implicitly.
type Evaluator struct {
	pool     *heap.Pool
	builtins map[string]value.Value
}

// New creates an evaluator allocating through pool and registers the
// standard native function library.
func New(pool *heap.Pool) *Evaluator {
	e := &Evaluator{
		pool:     pool,
		builtins: make(map[string]value.Value),
	}
	e.registerBuiltins()

	return e
}

// Pool satisfies bridge.VM, letting wrapped native functions request the
// evaluator's pool as an implicit *VM argument.
func (e *Evaluator) Pool() *heap.Pool { return e.pool }

// Eval evaluates expr in a fresh top-level environment seeded with the
// built-in library.
func (e *Evaluator) Eval(expr types.Expr) (value.Value, error) {
	env := value.NewEnv()

	return e.EvalWithEnv(expr, env)
}

// EvalWithEnv evaluates expr in env, extended with the built-in library.
// Bindings already present in env shadow built-ins of the same name.
func (e *Evaluator) EvalWithEnv(expr types.Expr, env value.Environment) (value.Value, error) {
	root := env.Extend()
	for name, v := range e.builtins {
		if _, shadowed := env.Get(name); shadowed {
			continue
		}
		root.Set(name, v)
	}

	return e.evalExpr(expr, root)
}

// evalExpr is the central AST dispatch.
func (e *Evaluator) evalExpr(expr types.Expr, env value.Environment) (value.Value, error) {
	switch node := expr.(type) {
	case *types.IntExpr:
		return e.pool.NewInt(node.Value), nil
	case *types.NumExpr:
		return e.pool.NewNum(node.Value), nil
	case *types.StringExpr:
		return e.pool.NewOwnedStr(node.Value), nil
	case *types.BoolExpr:
		return value.Bool(node.Value), nil
	case *types.NoneExpr:
		return value.NONE, nil
	case *types.IdentExpr:
		return e.evalIdent(node, env)

	case *types.ListExpr:
		return e.evalList(node, env)
	case *types.TupleExpr:
		return e.evalTuple(node, env)
	case *types.RangeExpr:
		return e.evalRange(node, env)
	case *types.TaggedExpr:
		return e.evalTagged(node, env)
	case *types.MapExpr:
		return e.evalMap(node, env)

	case *types.BinaryExpr:
		return e.evalBinary(node, env)
	case *types.UnaryExpr:
		return e.evalUnary(node, env)

	case *types.IfExpr:
		return e.evalIf(node, env)
	case *types.LetExpr:
		return e.evalLet(node, env)
	case *types.WithExpr:
		return e.evalWith(node, env)
	case *types.AssertExpr:
		return e.evalAssert(node, env)

	case *types.FunctionExpr:
		return e.pool.NewFunc(&value.Func{
			ArgCount: 1,
			Param:    node.Param,
			Body:     node.Body,
			Env:      env,
		}), nil
	case *types.ApplyExpr:
		return e.evalApply(node, env)

	case *types.IndexExpr:
		return e.evalIndex(node, env)
	case *types.InExpr:
		return e.evalIn(node, env)
	case *types.AsExpr:
		return e.evalAs(node, env)
	case *types.IsExpr:
		return e.evalIs(node, env)

	default:
		return nil, fmt.Errorf("eval: unhandled expression type %T", expr)
	}
}

// evalIdent resolves a variable reference against the lexical environment.
func (e *Evaluator) evalIdent(node *types.IdentExpr, env value.Environment) (value.Value, error) {
	if v, ok := env.Get(node.Name); ok {
		return v, nil
	}

	return nil, fmt.Errorf("undefined variable: %s", node.Name)
}

func (e *Evaluator) evalList(node *types.ListExpr, env value.Environment) (value.Value, error) {
	elems := make([]value.Value, len(node.Elements))
	for i, elemExpr := range node.Elements {
		v, err := e.evalExpr(elemExpr, env)
		if err != nil {
			return nil, err
		}
		elems[i] = v
	}

	return e.pool.NewList(elems...), nil
}

func (e *Evaluator) evalTuple(node *types.TupleExpr, env value.Environment) (value.Value, error) {
	elems := make([]value.Value, len(node.Elements))
	for i, elemExpr := range node.Elements {
		v, err := e.evalExpr(elemExpr, env)
		if err != nil {
			return nil, err
		}
		elems[i] = v
	}

	return e.pool.NewTuple(elems...), nil
}

// evalRange evaluates a range literal. A missing step defaults to 1, per
// RangeExpr's documented contract.
func (e *Evaluator) evalRange(node *types.RangeExpr, env value.Environment) (value.Value, error) {
	start, err := e.evalRangeBound(node.Start, env, "start")
	if err != nil {
		return nil, err
	}
	end, err := e.evalRangeBound(node.End, env, "end")
	if err != nil {
		return nil, err
	}

	step := int64(1)
	if node.Step != nil {
		step, err = e.evalRangeBound(node.Step, env, "step")
		if err != nil {
			return nil, err
		}
	}

	return e.pool.NewRange(start, end, step)
}

func (e *Evaluator) evalRangeBound(expr types.Expr, env value.Environment, which string) (int64, error) {
	v, err := e.evalExpr(expr, env)
	if err != nil {
		return 0, err
	}
	i, ok := v.(*value.Int)
	if !ok {
		return 0, fmt.Errorf("range %s must be an int, got %s", which, value.TagOf(v))
	}

	return i.V, nil
}

// evalTagged evaluates a tagged constructor. A payload-less `@Name` defaults
// its value to the none singleton.
func (e *Evaluator) evalTagged(node *types.TaggedExpr, env value.Environment) (value.Value, error) {
	if node.Value == nil {
		return e.pool.NewTagged(node.Name, value.NONE), nil
	}

	v, err := e.evalExpr(node.Value, env)
	if err != nil {
		return nil, err
	}

	return e.pool.NewTagged(node.Name, v), nil
}

// isSimpleExpr reports whether expr is a bare literal, safe to evaluate
// before any sibling map binding regardless of declaration order.
func isSimpleExpr(expr types.Expr) bool {
	switch expr.(type) {
	case *types.IntExpr, *types.NumExpr, *types.StringExpr, *types.BoolExpr, *types.NoneExpr:
		return true
	default:
		return false
	}
}

// evalMap evaluates a map literal. Recursive (`rec`) maps bring their own
// keys into scope as plain identifiers for sibling bindings: simple literal
// bindings are bound first so they're visible regardless of order, then the
// remaining bindings are evaluated in source order, each becoming visible to
// the ones that follow.
func (e *Evaluator) evalMap(node *types.MapExpr, env value.Environment) (value.Value, error) {
	scope := env
	if node.Recursive {
		scope = env.Extend()

		for _, b := range node.Bindings {
			if !isSimpleExpr(b.Value) {
				continue
			}
			v, err := e.evalExpr(b.Value, scope)
			if err != nil {
				return nil, fmt.Errorf("error in map binding %s: %w", b.Key, err)
			}
			scope.Set(b.Key, v)
		}
	}

	m := e.pool.NewMap()
	for _, b := range node.Bindings {
		var v value.Value
		if node.Recursive && isSimpleExpr(b.Value) {
			v, _ = scope.Get(b.Key)
		} else {
			var err error
			v, err = e.evalExpr(b.Value, scope)
			if err != nil {
				return nil, fmt.Errorf("error in map binding %s: %w", b.Key, err)
			}
			if node.Recursive {
				scope.Set(b.Key, v)
			}
		}
		m.Set(e.pool.NewOwnedStr(b.Key), v)
	}

	return m, nil
}
