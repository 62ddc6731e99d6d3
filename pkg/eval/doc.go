// Package eval provides the expression evaluator for the ember language.
//
// The evaluator is the final stage of the ember interpreter pipeline, taking
// Abstract Syntax Trees (ASTs) from the parser and computing their runtime
// values against the tagged-union value system in internal/value, allocated
// through the mark-and-sweep internal/heap.Pool.
//
// Architecture:
//
// The evaluator is a tree-walking interpreter with the following components:
//   - evaluator.go: core AST dispatch, literals, lists/tuples/ranges, map literals
//   - operators.go: binary and unary operators, including int/num promotion
//   - control_flow.go: if, let, with and assert
//   - functions.go: function closures, currying, the container (?, []) and
//     cast (as, is) operators
//   - builtins.go: the native function library (set, iter, next, hash, eql,
//     dump, len and a small math/string utility set)
//
// Evaluation strategy:
//
// Evaluation is strictly eager: function arguments, let bindings and map
// values are all computed at the point they're evaluated, not deferred.
// Functions are single-argument; multi-argument calls are chains of
// juxtaposed applications (`f x y` == `(f x) y`), so native functions
// declared with more than one argument are partially applied one argument
// at a time through applyOne.
//
// Recursive (rec) map literals bring their own keys into scope for sibling
// bindings: simple literal bindings (int/num/str/bool/none) are bound first
// regardless of declaration order, then the remaining bindings are evaluated
// in source order with access to everything bound so far.
//
// Usage example:
//
//	l := lexer.New(`let x = 42; f = y: x + y; in f 8`)
//	p := parser.New(l)
//	ast, err := p.Parse()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	pool := heap.New()
//	e := eval.New(pool)
//	result, err := e.Eval(ast)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println(value.DumpString(result, 32)) // Output: 50
package eval
