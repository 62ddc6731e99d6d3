// Package types provides Abstract Syntax Tree (AST) node definitions for
// the ember expression language.
//
// Each expression type implements the Expr interface and represents a
// specific language construct. This package plays the compiler's role of
// handing the tree-walking dispatcher (pkg/eval) typed nodes — the
// stand-in this implementation uses in place of a real bytecode compiler
// and instruction stream.
//
// Expression Categories:
//
// Literals:
//   - IntExpr, NumExpr, StringExpr, BoolExpr, NoneExpr
//
// Identifiers and Variables:
//   - IdentExpr: Variable references (x, myVar)
//
// Operators:
//   - BinaryExpr: Binary operations (1 + 2, x && y, a ++ b)
//   - UnaryExpr: Unary operations (!x, -y)
//
// Control Flow:
//   - IfExpr, LetExpr, WithExpr, AssertExpr
//
// Functions:
//   - FunctionExpr: Single-parameter function literals (x: x + 1)
//   - ApplyExpr: Function application by juxtaposition (f x)
//
// Data Structures:
//   - ListExpr, TupleExpr, MapExpr, RangeExpr, TaggedExpr
//
// Container and Conversion Sugar:
//   - IndexExpr: container[index]
//   - InExpr: container ? value
//   - AsExpr: expr as Name
//   - IsExpr: expr is Name
package types
