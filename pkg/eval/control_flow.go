package eval

import (
	"errors"
	"fmt"

	"github.com/conneroisu/emberlang/internal/types"
	"github.com/conneroisu/emberlang/internal/value"
)

// evalIf evaluates an if-then-else expression.
func (e *Evaluator) evalIf(expr *types.IfExpr, env value.Environment) (value.Value, error) {
	cond, err := e.evalExpr(expr.Cond, env)
	if err != nil {
		return nil, err
	}

	condBool, ok := value.BoolOf(cond)
	if !ok {
		return nil, fmt.Errorf("if condition must be bool, got %s", value.TagOf(cond))
	}

	if condBool {
		return e.evalExpr(expr.Then, env)
	}

	return e.evalExpr(expr.Else, env)
}

// evalLet evaluates a let expression. Bindings are evaluated in order, each
// becoming visible to the ones that follow and to the body.
func (e *Evaluator) evalLet(expr *types.LetExpr, env value.Environment) (value.Value, error) {
	letEnv := env.Extend()

	for _, binding := range expr.Bindings {
		val, err := e.evalExpr(binding.Value, letEnv)
		if err != nil {
			return nil, fmt.Errorf("error in let binding %s: %w", binding.Name, err)
		}
		letEnv.Set(binding.Name, val)
	}

	return e.evalExpr(expr.Body, letEnv)
}

// evalWith evaluates a with expression: brings a map's entries into scope
// for its body. The Environment contract has no enumeration method of its
// own, so entries are pulled out through Map.Entries and re-bound by name.
func (e *Evaluator) evalWith(expr *types.WithExpr, env value.Environment) (value.Value, error) {
	scopeVal, err := e.evalExpr(expr.Expr, env)
	if err != nil {
		return nil, err
	}

	m, ok := scopeVal.(*value.Map)
	if !ok {
		return nil, fmt.Errorf("with expression requires a map, got %s", value.TagOf(scopeVal))
	}

	withEnv := env.Extend()
	for _, entry := range m.Entries() {
		key, ok := entry.Key.(*value.Str)
		if !ok {
			return nil, fmt.Errorf("with: map key is not a str, got %s", value.TagOf(entry.Key))
		}
		withEnv.Set(key.V, entry.Val)
	}

	return e.evalExpr(expr.Body, withEnv)
}

// evalAssert evaluates an assert expression.
func (e *Evaluator) evalAssert(expr *types.AssertExpr, env value.Environment) (value.Value, error) {
	cond, err := e.evalExpr(expr.Cond, env)
	if err != nil {
		return nil, err
	}

	condBool, ok := value.BoolOf(cond)
	if !ok {
		return nil, fmt.Errorf("assert condition must be bool, got %s", value.TagOf(cond))
	}

	if !condBool {
		return nil, errors.New("assertion failed")
	}

	return e.evalExpr(expr.Body, env)
}
