// Package parser implements a recursive descent parser with Pratt parsing
// for the ember expression language.
//
// The parser is the second stage of the ember interpreter pipeline,
// transforming a stream of tokens from the lexer into a well-formed Abstract
// Syntax Tree (AST) that can be evaluated by the evaluator.
//
// Architecture:
//
// The parser uses a combination of recursive descent and Pratt parsing
// techniques:
//   - Recursive descent for control structures and complex expressions
//   - Pratt parsing for operators with proper precedence and associativity
//   - Lookahead parsing for disambiguation of syntax elements
//
// Language support:
//
// Literals:
//   - Integers: 42, -10, 0
//   - Nums: 3.14, -0.5, 1.0
//   - Strings: "hello", "world with \"quotes\""
//   - Booleans: true, false
//   - None: none
//   - Tagged values: @Name, @Name(value)
//
// Operators (lowest to highest precedence):
//  1. || (logical or)
//  2. && (logical and)
//  3. == != (equality comparison)
//  4. < > <= >= (relational comparison)
//  5. ? as is (membership, cast, type test)
//  6. ++ (list/string concatenation)
//  7. : (range construction, chains into start:end:step)
//  8. + - (addition/subtraction)
//  9. * / % (multiplication/division/modulo)
//  10. function application (left-associative, by juxtaposition)
//  11. [ ] (subscript indexing - highest precedence)
//
// Control flow:
//   - Conditionals: if condition then value else alternative
//   - Let bindings: let x = 1; y = 2; in x + y
//   - With expressions: with m; expression
//   - Assertions: assert condition; expression
//
// Functions:
//   - Definitions: x: x + 1
//   - Applications: f x (left-associative)
//   - Currying: f x y is parsed as (f x) y
//
// Data structures:
//   - Lists: [1, 2, 3]
//   - Tuples: (1, 2, 3)
//   - Ranges: 0:10 or 0:10:2
//   - Maps: { x = 1; y = 2; }
//   - Recursive maps: rec { x = 1; y = x + 1; }
//
// Container operations:
//   - Indexing: xs[0], m["key"]
//   - Membership: xs ? value
//   - Cast: expr as TypeName
//   - Type test: expr is TypeName
//
// Error handling:
//
// The parser provides comprehensive error reporting:
//   - Syntax error detection with line/column information
//   - Expected token reporting for missing elements
//   - Multiple error collection for better user experience
//   - Structured error types for programmatic handling
//
// Usage example:
//
//	l := lexer.New(`let x = 42; in if x > 0 then "positive" else "negative"`)
//	p := parser.New(l)
//	ast, err := p.Parse()
//	if err != nil {
//	    fmt.Printf("parse error: %v\n", err)
//	    return
//	}
//	// ast now contains the parsed expression tree
package parser
