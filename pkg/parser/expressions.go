package parser

import (
	"github.com/conneroisu/emberlang/internal/types"
	"github.com/conneroisu/emberlang/pkg/lexer"
)

// parseUnary parses unary expressions.
func (p *Parser) parseUnary(op types.UnaryOp) types.Expr {
	p.advance()
	expr := p.parseExpression(precedenceCall)

	return &types.UnaryExpr{
		Op:   op,
		Expr: expr,
	}
}

// parseBinary parses binary expressions.
func (p *Parser) parseBinary(left types.Expr, op types.BinaryOp) types.Expr {
	precedence := p.curPrecedence()
	p.advance()
	right := p.parseExpression(precedence)

	return &types.BinaryExpr{
		Left:  left,
		Op:    op,
		Right: right,
	}
}

// parseGrouped parses parenthesized expressions and tuple literals: a plain
// `(expr)` grouping, the empty tuple `()`, a one-element tuple `(a,)`, and
// n-element tuples `(a, b, c)`.
func (p *Parser) parseGrouped() types.Expr {
	p.advance() // skip '('

	if p.curIs(lexer.TOKEN_RPAREN) {
		return &types.TupleExpr{Elements: []types.Expr{}}
	}

	first := p.parseExpression(precedenceLowest)

	if !p.peekIs(lexer.TOKEN_COMMA) {
		if !p.expectPeek(lexer.TOKEN_RPAREN) {
			return nil
		}

		return first
	}

	elems := []types.Expr{first}

	for p.peekIs(lexer.TOKEN_COMMA) {
		p.advance() // consume comma

		if p.peekIs(lexer.TOKEN_RPAREN) {
			p.advance()

			return &types.TupleExpr{Elements: elems}
		}

		p.advance()
		elems = append(elems, p.parseExpression(precedenceLowest))
	}

	if !p.expectPeek(lexer.TOKEN_RPAREN) {
		return nil
	}

	return &types.TupleExpr{Elements: elems}
}

// parseFunction parses function definitions `param: body`.
func (p *Parser) parseFunction() types.Expr {
	param := p.cur.Literal

	if !p.expectPeek(lexer.TOKEN_COLON) {
		return nil
	}

	p.advance()
	body := p.parseExpression(precedenceLowest)

	return &types.FunctionExpr{
		Param: param,
		Body:  body,
	}
}

// parseFunctionApplication parses function applications by juxtaposition.
func (p *Parser) parseFunctionApplication(fn types.Expr) types.Expr {
	arg := p.parseExpression(precedenceCall)

	return &types.ApplyExpr{
		Func: fn,
		Arg:  arg,
	}
}

// parseList parses list literals [a, b, c].
func (p *Parser) parseList() types.Expr {
	p.advance() // skip '['

	list := &types.ListExpr{
		Elements: []types.Expr{},
	}

	if p.curIs(lexer.TOKEN_RBRACKET) {
		return list
	}

	// An element binds tighter than application, so `[f x]` holds two
	// elements, but infix operators still extend it: `[1, 2 * 2]`.
	element := func() types.Expr {
		elem := p.parseExpression(precedenceCall + 1)
		for elem != nil && p.isInfixOperator(p.peek.Type) {
			p.advance()
			elem = p.parseInfixExpression(elem)
		}

		return elem
	}

	list.Elements = append(list.Elements, element())

	for !p.peekIs(lexer.TOKEN_RBRACKET) && !p.peekIs(lexer.TOKEN_EOF) {
		p.advance()
		if p.curIs(lexer.TOKEN_RBRACKET) {
			break
		}
		// Skip commas if present (commas are optional separators).
		if p.curIs(lexer.TOKEN_COMMA) {
			p.advance()
		}
		if p.curIs(lexer.TOKEN_RBRACKET) {
			break
		}
		list.Elements = append(list.Elements, element())
	}

	if !p.expectPeek(lexer.TOKEN_RBRACKET) {
		return nil
	}

	return list
}

// parseMap parses map literals `{ k = v; ... }`, with an optional leading
// `rec` marker.
func (p *Parser) parseMap() types.Expr {
	m := &types.MapExpr{
		Bindings: []types.MapBinding{},
	}

	if p.curIs(lexer.TOKEN_REC) {
		m.Recursive = true
		if !p.expectPeek(lexer.TOKEN_LBRACE) {
			return nil
		}
	}

	p.advance() // skip '{'

	if p.curIs(lexer.TOKEN_RBRACE) {
		return m
	}

	for !p.curIs(lexer.TOKEN_RBRACE) && !p.curIs(lexer.TOKEN_EOF) {
		binding := p.parseMapBinding()
		if binding == nil {
			return nil
		}

		m.Bindings = append(m.Bindings, *binding)

		if p.curIs(lexer.TOKEN_RBRACE) {
			break
		}
	}

	if !p.curIs(lexer.TOKEN_RBRACE) {
		p.errors.Addf(p.cur.Line, p.cur.Column,
			"expected '}', got %v", p.cur.Type)

		return nil
	}

	return m
}

// parseMapBinding parses a single `key = value;` pair.
func (p *Parser) parseMapBinding() *types.MapBinding {
	if !p.curIs(lexer.TOKEN_IDENT) && !p.curIs(lexer.TOKEN_STRING) {
		p.errors.Addf(p.cur.Line, p.cur.Column,
			"expected identifier or string key, got %v", p.cur.Type)

		return nil
	}

	key := p.cur.Literal

	if !p.expectPeek(lexer.TOKEN_ASSIGN) {
		return nil
	}

	p.advance()
	value := p.parseExpression(precedenceLowest)

	if !p.expectPeek(lexer.TOKEN_SEMICOLON) {
		return nil
	}

	p.advance() // position on next token

	return &types.MapBinding{
		Key:   key,
		Value: value,
	}
}

// parseTagged parses tagged constructors `@Name(value)` and `@Name`.
func (p *Parser) parseTagged() types.Expr {
	if !p.expectPeek(lexer.TOKEN_IDENT) {
		return nil
	}

	name := p.cur.Literal

	if !p.peekIs(lexer.TOKEN_LPAREN) {
		return &types.TaggedExpr{Name: name}
	}

	p.advance() // consume '('
	p.advance() // move onto the payload expression

	value := p.parseExpression(precedenceLowest)

	if !p.expectPeek(lexer.TOKEN_RPAREN) {
		return nil
	}

	return &types.TaggedExpr{Name: name, Value: value}
}

// parseIn parses the membership test `container ? value`.
func (p *Parser) parseIn(container types.Expr) types.Expr {
	precedence := p.curPrecedence()
	p.advance()
	value := p.parseExpression(precedence)

	return &types.InExpr{
		Container: container,
		Value:     value,
	}
}

// parseAs parses the cast operation `expr as Name`.
func (p *Parser) parseAs(expr types.Expr) types.Expr {
	if !p.expectPeek(lexer.TOKEN_IDENT) {
		return nil
	}

	return &types.AsExpr{
		Expr: expr,
		Type: p.cur.Literal,
	}
}

// parseIs parses the type test `expr is Name`.
func (p *Parser) parseIs(expr types.Expr) types.Expr {
	if !p.expectPeek(lexer.TOKEN_IDENT) {
		return nil
	}

	return &types.IsExpr{
		Expr: expr,
		Type: p.cur.Literal,
	}
}

// parseRange parses range literals `start:end` and `start:end:step`. The
// leading colon has already become p.cur by the infix dispatch.
func (p *Parser) parseRange(start types.Expr) types.Expr {
	precedence := p.curPrecedence()
	p.advance()
	end := p.parseExpression(precedence)

	r := &types.RangeExpr{Start: start, End: end}

	if p.peekIs(lexer.TOKEN_COLON) {
		p.advance() // consume colon
		p.advance()
		r.Step = p.parseExpression(precedence)
	}

	return r
}

// parseIndex parses subscript access `container[index]`.
func (p *Parser) parseIndex(container types.Expr) types.Expr {
	p.advance() // move onto the index expression

	index := p.parseExpression(precedenceLowest)

	if !p.expectPeek(lexer.TOKEN_RBRACKET) {
		return nil
	}

	return &types.IndexExpr{
		Container: container,
		Index:     index,
	}
}
