package eval

import (
	"errors"
	"fmt"
	"math"

	"github.com/conneroisu/emberlang/internal/types"
	"github.com/conneroisu/emberlang/internal/value"
)

// evalBinary evaluates binary operators.
func (e *Evaluator) evalBinary(expr *types.BinaryExpr, env value.Environment) (value.Value, error) {
	switch expr.Op {
	case types.OpAnd:
		return e.evalAnd(expr, env)
	case types.OpOr:
		return e.evalOr(expr, env)
	}

	left, err := e.evalExpr(expr.Left, env)
	if err != nil {
		return nil, err
	}

	right, err := e.evalExpr(expr.Right, env)
	if err != nil {
		return nil, err
	}

	switch expr.Op {
	case types.OpAdd:
		return e.evalAdd(left, right)
	case types.OpSub:
		return e.evalSub(left, right)
	case types.OpMul:
		return e.evalMul(left, right)
	case types.OpDiv:
		return e.evalDiv(left, right)
	case types.OpMod:
		return e.evalMod(left, right)

	case types.OpConcat:
		return e.evalConcat(left, right)

	case types.OpEq:
		return value.Bool(value.Eql(left, right)), nil
	case types.OpNEq:
		return value.Bool(!value.Eql(left, right)), nil
	case types.OpLT:
		return evalLess(left, right)
	case types.OpGT:
		return evalLess(right, left)
	case types.OpLTE:
		return evalLessEq(left, right)
	case types.OpGTE:
		return evalLessEq(right, left)

	default:
		return nil, fmt.Errorf("unknown binary operator: %v", expr.Op)
	}
}

// evalUnary evaluates unary operators.
func (e *Evaluator) evalUnary(expr *types.UnaryExpr, env value.Environment) (value.Value, error) {
	operand, err := e.evalExpr(expr.Expr, env)
	if err != nil {
		return nil, err
	}

	switch expr.Op {
	case types.OpNot:
		b, ok := value.BoolOf(operand)
		if !ok {
			return nil, fmt.Errorf("! requires a bool operand, got %s", value.TagOf(operand))
		}

		return value.Bool(!b), nil

	case types.OpNeg:
		switch v := operand.(type) {
		case *value.Int:
			return e.pool.NewInt(-v.V), nil
		case *value.Num:
			return e.pool.NewNum(-v.V), nil
		default:
			return nil, fmt.Errorf("- requires a numeric operand, got %s", value.TagOf(operand))
		}

	default:
		return nil, fmt.Errorf("unknown unary operator: %v", expr.Op)
	}
}

// Short-circuit operators.
func (e *Evaluator) evalAnd(expr *types.BinaryExpr, env value.Environment) (value.Value, error) {
	left, err := e.evalExpr(expr.Left, env)
	if err != nil {
		return nil, err
	}

	leftBool, ok := value.BoolOf(left)
	if !ok {
		return nil, fmt.Errorf("&& requires bool operands, got %s", value.TagOf(left))
	}

	if !leftBool {
		return value.FALSE, nil
	}

	right, err := e.evalExpr(expr.Right, env)
	if err != nil {
		return nil, err
	}

	rightBool, ok := value.BoolOf(right)
	if !ok {
		return nil, fmt.Errorf("&& requires bool operands, got %s", value.TagOf(right))
	}

	return value.Bool(rightBool), nil
}

func (e *Evaluator) evalOr(expr *types.BinaryExpr, env value.Environment) (value.Value, error) {
	left, err := e.evalExpr(expr.Left, env)
	if err != nil {
		return nil, err
	}

	leftBool, ok := value.BoolOf(left)
	if !ok {
		return nil, fmt.Errorf("|| requires bool operands, got %s", value.TagOf(left))
	}

	if leftBool {
		return value.TRUE, nil
	}

	right, err := e.evalExpr(expr.Right, env)
	if err != nil {
		return nil, err
	}

	rightBool, ok := value.BoolOf(right)
	if !ok {
		return nil, fmt.Errorf("|| requires bool operands, got %s", value.TagOf(right))
	}

	return value.Bool(rightBool), nil
}

// Arithmetic operations. Mixed int/num operands promote to num; string
// operands are rejected (use ++ for concatenation).
func (e *Evaluator) evalAdd(left, right value.Value) (value.Value, error) {
	switch l := left.(type) {
	case *value.Int:
		switch r := right.(type) {
		case *value.Int:
			return e.pool.NewInt(l.V + r.V), nil
		case *value.Num:
			return e.pool.NewNum(float64(l.V) + r.V), nil
		default:
			return nil, fmt.Errorf("cannot add %s to int", value.TagOf(right))
		}
	case *value.Num:
		switch r := right.(type) {
		case *value.Int:
			return e.pool.NewNum(l.V + float64(r.V)), nil
		case *value.Num:
			return e.pool.NewNum(l.V + r.V), nil
		default:
			return nil, fmt.Errorf("cannot add %s to num", value.TagOf(right))
		}
	default:
		return nil, fmt.Errorf("cannot add values of type %s", value.TagOf(left))
	}
}

func (e *Evaluator) evalSub(left, right value.Value) (value.Value, error) {
	switch l := left.(type) {
	case *value.Int:
		switch r := right.(type) {
		case *value.Int:
			return e.pool.NewInt(l.V - r.V), nil
		case *value.Num:
			return e.pool.NewNum(float64(l.V) - r.V), nil
		default:
			return nil, fmt.Errorf("cannot subtract %s from int", value.TagOf(right))
		}
	case *value.Num:
		switch r := right.(type) {
		case *value.Int:
			return e.pool.NewNum(l.V - float64(r.V)), nil
		case *value.Num:
			return e.pool.NewNum(l.V - r.V), nil
		default:
			return nil, fmt.Errorf("cannot subtract %s from num", value.TagOf(right))
		}
	default:
		return nil, fmt.Errorf("cannot subtract from %s", value.TagOf(left))
	}
}

func (e *Evaluator) evalMul(left, right value.Value) (value.Value, error) {
	switch l := left.(type) {
	case *value.Int:
		switch r := right.(type) {
		case *value.Int:
			return e.pool.NewInt(l.V * r.V), nil
		case *value.Num:
			return e.pool.NewNum(float64(l.V) * r.V), nil
		default:
			return nil, fmt.Errorf("cannot multiply int by %s", value.TagOf(right))
		}
	case *value.Num:
		switch r := right.(type) {
		case *value.Int:
			return e.pool.NewNum(l.V * float64(r.V)), nil
		case *value.Num:
			return e.pool.NewNum(l.V * r.V), nil
		default:
			return nil, fmt.Errorf("cannot multiply num by %s", value.TagOf(right))
		}
	default:
		return nil, fmt.Errorf("cannot multiply %s", value.TagOf(left))
	}
}

func (e *Evaluator) evalDiv(left, right value.Value) (value.Value, error) {
	rf, isZero, err := numericOperand(right)
	if err != nil {
		return nil, err
	}
	if isZero {
		return nil, errors.New("division by zero")
	}

	lf, _, err := numericOperand(left)
	if err != nil {
		return nil, err
	}

	return e.pool.NewNum(lf / rf), nil
}

func (e *Evaluator) evalMod(left, right value.Value) (value.Value, error) {
	li, lok := left.(*value.Int)
	ri, rok := right.(*value.Int)
	if lok && rok {
		if ri.V == 0 {
			return nil, errors.New("division by zero")
		}

		return e.pool.NewInt(li.V % ri.V), nil
	}

	lf, _, err := numericOperand(left)
	if err != nil {
		return nil, err
	}
	rf, isZero, err := numericOperand(right)
	if err != nil {
		return nil, err
	}
	if isZero {
		return nil, errors.New("division by zero")
	}

	return e.pool.NewNum(math.Mod(lf, rf)), nil
}

func numericOperand(v value.Value) (f float64, isZero bool, err error) {
	switch x := v.(type) {
	case *value.Int:
		return float64(x.V), x.V == 0, nil
	case *value.Num:
		return x.V, x.V == 0, nil
	default:
		return 0, false, fmt.Errorf("expected a numeric operand, got %s", value.TagOf(v))
	}
}

// evalConcat implements `++`: string concatenation or list concatenation.
func (e *Evaluator) evalConcat(left, right value.Value) (value.Value, error) {
	switch l := left.(type) {
	case *value.Str:
		r, ok := right.(*value.Str)
		if !ok {
			return nil, fmt.Errorf("cannot concatenate str with %s", value.TagOf(right))
		}

		return e.pool.NewOwnedStr(l.V + r.V), nil
	case *value.List:
		r, ok := right.(*value.List)
		if !ok {
			return nil, fmt.Errorf("cannot concatenate list with %s", value.TagOf(right))
		}
		elems := append(append([]value.Value(nil), l.Elems...), r.Elems...)

		return e.pool.NewList(elems...), nil
	default:
		return nil, fmt.Errorf("++ requires str or list operands, got %s", value.TagOf(left))
	}
}

// Comparison operations. Only numeric and str operands compare ordered.
func evalLess(left, right value.Value) (value.Value, error) {
	switch l := left.(type) {
	case *value.Int:
		switch r := right.(type) {
		case *value.Int:
			return value.Bool(l.V < r.V), nil
		case *value.Num:
			return value.Bool(float64(l.V) < r.V), nil
		default:
			return nil, fmt.Errorf("cannot compare int with %s", value.TagOf(right))
		}
	case *value.Num:
		switch r := right.(type) {
		case *value.Int:
			return value.Bool(l.V < float64(r.V)), nil
		case *value.Num:
			return value.Bool(l.V < r.V), nil
		default:
			return nil, fmt.Errorf("cannot compare num with %s", value.TagOf(right))
		}
	case *value.Str:
		r, ok := right.(*value.Str)
		if !ok {
			return nil, fmt.Errorf("cannot compare str with %s", value.TagOf(right))
		}

		return value.Bool(l.V < r.V), nil
	default:
		return nil, fmt.Errorf("cannot order-compare %s", value.TagOf(left))
	}
}

func evalLessEq(left, right value.Value) (value.Value, error) {
	less, err := evalLess(left, right)
	if err != nil {
		return nil, err
	}
	if b, _ := value.BoolOf(less); b {
		return value.TRUE, nil
	}

	return value.Bool(value.Eql(left, right)), nil
}
