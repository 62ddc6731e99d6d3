package parser

import (
	"strconv"

	"github.com/conneroisu/emberlang/internal/types"
	"github.com/conneroisu/emberlang/pkg/lexer"
)

// Parser implements a recursive descent parser with Pratt parsing for ember expressions.
// It transforms a stream of tokens from the lexer into an Abstract Syntax Tree (AST).
// The parser uses lookahead (cur/peek tokens) for disambiguation and precedence handling.
type Parser struct {
	l      *lexer.Lexer // The lexer providing the token stream
	cur    lexer.Token  // Current token being processed
	peek   lexer.Token  // Next token (lookahead for parsing decisions)
	errors *ParseErrors // Accumulated parsing errors for comprehensive reporting
}

// New creates a new parser instance from a lexer.
// The parser is initialized with the first two tokens (cur and peek) to enable
// immediate parsing with proper lookahead. This two-token window is essential
// for distinguishing ambiguous constructs and implementing operator precedence.
func New(l *lexer.Lexer) *Parser {
	p := &Parser{
		l:      l,
		errors: &ParseErrors{}, // Initialize empty error collection
	}
	// Prime the parser by reading the first two tokens
	p.advance() // Sets cur to first token, peek to second
	p.advance() // Sets cur to second token, peek to third

	return p
}

// Parse is the main entry point for parsing a complete ember expression.
// It parses the entire token stream into a single expression AST starting
// with the lowest precedence level. Returns either the parsed AST or
// accumulated parsing errors for comprehensive error reporting.
func (p *Parser) Parse() (types.Expr, error) {
	expr := p.parseExpression(precedenceLowest)

	if p.errors.HasErrors() {
		return nil, p.errors
	}

	return expr, nil
}

// Errors returns a slice of error messages from parsing failures.
func (p *Parser) Errors() []string {
	msgs := make([]string, 0, p.errors.Count())
	for _, err := range p.errors.Errors() {
		msgs = append(msgs, err.Error())
	}

	return msgs
}

// advance shifts the token window forward by one position.
func (p *Parser) advance() {
	p.cur = p.peek
	p.peek = p.l.NextToken()
}

// parseExpression implements the core Pratt parsing algorithm for expressions.
// This method handles operator precedence and associativity by:
// 1. Parsing a prefix expression (literals, identifiers, unary ops, etc.)
// 2. Continuously parsing infix operations while precedence allows
// 3. Supporting function application as a special infix operation
func (p *Parser) parseExpression(precedence int) types.Expr {
	prefix := p.parsePrefixExpression()
	if prefix == nil {
		return nil
	}

	for !p.peekIs(lexer.TOKEN_SEMICOLON) && !p.peekIs(lexer.TOKEN_EOF) {
		if precedence >= p.peekPrecedence() && !p.couldBeArgument() {
			break
		}

		if p.isInfixOperator(p.peek.Type) {
			p.advance()
			prefix = p.parseInfixExpression(prefix)
		} else if p.couldBeArgument() && precedence < precedenceCall {
			p.advance()
			prefix = p.parseFunctionApplication(prefix)
		} else {
			break
		}
	}

	return prefix
}

// parsePrefixExpression handles expressions that begin with a prefix element.
// This is the "nud" (null denotation) function in Pratt parsing terminology.
func (p *Parser) parsePrefixExpression() types.Expr {
	switch p.cur.Type {
	case lexer.TOKEN_INT:
		return p.parseInt() // Integer literals: 42, -10, 0
	case lexer.TOKEN_FLOAT:
		return p.parseNum() // Num literals: 3.14, -0.5
	case lexer.TOKEN_STRING:
		return p.parseString() // String literals: "hello", "world"
	case lexer.TOKEN_IDENT:
		return p.parseIdentifierOrFunction() // x, variable, x: x + 1

	case lexer.TOKEN_IF:
		return p.parseIf() // if cond then a else b
	case lexer.TOKEN_LET:
		return p.parseLet() // let x = 1; in x + 2
	case lexer.TOKEN_WITH:
		return p.parseWith() // with map; expr
	case lexer.TOKEN_ASSERT:
		return p.parseAssert() // assert condition; expr

	case lexer.TOKEN_NOT:
		return p.parseUnary(types.OpNot) // Logical negation: !expr
	case lexer.TOKEN_MINUS:
		return p.parseUnary(types.OpNeg) // Arithmetic negation: -expr

	case lexer.TOKEN_AT:
		return p.parseTagged() // Tagged constructor: @Name(value), @Name

	case lexer.TOKEN_LBRACE, lexer.TOKEN_REC:
		return p.parseMap() // Map literals: { x = 1; y = 2; }, rec { ... }
	case lexer.TOKEN_LBRACKET:
		return p.parseList() // Lists: [1, 2, 3]
	case lexer.TOKEN_LPAREN:
		return p.parseGrouped() // Grouping, tuples: (expr), (a, b), (a,), ()

	default:
		p.errors.Addf(p.cur.Line, p.cur.Column,
			"no prefix parse function for %v", p.cur.Type)

		return nil
	}
}

// parseInfixExpression handles binary operators and special infix operations.
// This is the "led" (left denotation) function in Pratt parsing terminology.
func (p *Parser) parseInfixExpression(left types.Expr) types.Expr {
	switch p.cur.Type {
	case lexer.TOKEN_PLUS:
		return p.parseBinary(left, types.OpAdd)
	case lexer.TOKEN_MINUS:
		return p.parseBinary(left, types.OpSub)
	case lexer.TOKEN_MULTIPLY:
		return p.parseBinary(left, types.OpMul)
	case lexer.TOKEN_DIVIDE:
		return p.parseBinary(left, types.OpDiv)
	case lexer.TOKEN_MODULO:
		return p.parseBinary(left, types.OpMod)

	case lexer.TOKEN_CONCAT:
		return p.parseBinary(left, types.OpConcat) // a ++ b

	case lexer.TOKEN_EQ:
		return p.parseBinary(left, types.OpEq)
	case lexer.TOKEN_NEQ:
		return p.parseBinary(left, types.OpNEq)
	case lexer.TOKEN_LT:
		return p.parseBinary(left, types.OpLT)
	case lexer.TOKEN_GT:
		return p.parseBinary(left, types.OpGT)
	case lexer.TOKEN_LTE:
		return p.parseBinary(left, types.OpLTE)
	case lexer.TOKEN_GTE:
		return p.parseBinary(left, types.OpGTE)

	case lexer.TOKEN_AND_OP:
		return p.parseBinary(left, types.OpAnd)
	case lexer.TOKEN_OR_OP:
		return p.parseBinary(left, types.OpOr)

	case lexer.TOKEN_QUESTION:
		return p.parseIn(left) // container ? value
	case lexer.TOKEN_AS:
		return p.parseAs(left) // expr as Name
	case lexer.TOKEN_IS:
		return p.parseIs(left) // expr is Name
	case lexer.TOKEN_COLON:
		return p.parseRange(left) // start:end or start:end:step
	case lexer.TOKEN_LBRACKET:
		return p.parseIndex(left) // container[index]

	default:
		p.errors.Addf(p.cur.Line, p.cur.Column,
			"no infix parse function for %v", p.cur.Type)

		return nil
	}
}

// parseInt parses integer literals from token text to AST nodes.
func (p *Parser) parseInt() types.Expr {
	val, err := strconv.ParseInt(p.cur.Literal, 10, 64)
	if err != nil {
		p.errors.Addf(p.cur.Line, p.cur.Column,
			"could not parse %q as integer", p.cur.Literal)

		return nil
	}

	return &types.IntExpr{Value: val}
}

// parseNum parses num (floating-point) literals from token text to AST nodes.
func (p *Parser) parseNum() types.Expr {
	val, err := strconv.ParseFloat(p.cur.Literal, 64)
	if err != nil {
		p.errors.Addf(p.cur.Line, p.cur.Column,
			"could not parse %q as num", p.cur.Literal)

		return nil
	}

	return &types.NumExpr{Value: val}
}

// parseString creates string literal AST nodes from token text.
// The lexer has already decoded escape sequences and removed quotes, so the
// literal value can be used directly.
func (p *Parser) parseString() types.Expr {
	return &types.StringExpr{Value: p.cur.Literal}
}

// parseIdentifierOrFunction handles identifiers that might be special values
// or functions. This method disambiguates between:
//   - Boolean literals (true, false)
//   - None literal (none)
//   - Function definitions (param: body)
//   - Regular variable references (name)
//
// The disambiguation uses lookahead to detect function syntax
// (identifier : expression). This means a bare identifier immediately
// followed by ':' is always read as a function parameter, never as the
// start of a range literal; ranges that begin with an identifier must be
// parenthesized, e.g. `(n):10`.
func (p *Parser) parseIdentifierOrFunction() types.Expr {
	switch p.cur.Literal {
	case "true":
		return &types.BoolExpr{Value: true}
	case "false":
		return &types.BoolExpr{Value: false}
	case "none":
		return &types.NoneExpr{}
	}

	if p.peekIs(lexer.TOKEN_COLON) {
		return p.parseFunction()
	}

	return &types.IdentExpr{Name: p.cur.Literal}
}

// Helper methods for token inspection and parser state management.

func (p *Parser) curIs(t lexer.TokenType) bool {
	return p.cur.Type == t
}

func (p *Parser) peekIs(t lexer.TokenType) bool {
	return p.peek.Type == t
}

// expectPeek verifies that the next token matches the expected type and consumes it.
func (p *Parser) expectPeek(t lexer.TokenType) bool {
	if p.peekIs(t) {
		p.advance()

		return true
	}

	p.errors.Addf(p.peek.Line, p.peek.Column,
		"expected next token to be %v, got %v", t, p.peek.Type)

	return false
}

// peekPrecedence returns the precedence level of the next token.
func (p *Parser) peekPrecedence() int {
	if prec, ok := precedenceMap[p.peek.Type]; ok {
		return prec
	}

	return precedenceLowest
}

// curPrecedence returns the precedence level of the current token.
func (p *Parser) curPrecedence() int {
	if prec, ok := precedenceMap[p.cur.Type]; ok {
		return prec
	}

	return precedenceLowest
}

// isInfixOperator determines if a token type represents a binary/infix operator.
func (p *Parser) isInfixOperator(t lexer.TokenType) bool {
	_, ok := precedenceMap[t]

	return ok
}

// couldBeArgument determines if the next token could start a function argument.
// Function application in ember is implicit (no parentheses required), so this
// distinguishes "f x" (application) from "f + x" (addition). TOKEN_LBRACKET is
// deliberately absent: a bracket immediately following an expression is always
// read as subscript indexing (see parseIndex), never as a list-literal argument,
// since isInfixOperator is consulted first in parseExpression.
func (p *Parser) couldBeArgument() bool {
	switch p.peek.Type {
	case lexer.TOKEN_INT, lexer.TOKEN_FLOAT, lexer.TOKEN_STRING,
		lexer.TOKEN_IDENT, lexer.TOKEN_LBRACE, lexer.TOKEN_LPAREN,
		lexer.TOKEN_AT,
		lexer.TOKEN_NOT, lexer.TOKEN_MINUS, lexer.TOKEN_IF, lexer.TOKEN_LET,
		lexer.TOKEN_WITH, lexer.TOKEN_ASSERT:
		return true
	default:
		return false
	}
}
