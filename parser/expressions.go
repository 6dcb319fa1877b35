package parser

import (
	"strconv"

	"github.com/fxlang/fx/ast"
	"github.com/fxlang/fx/token"
)

func (p *Parser) expression() ast.Expr {
	return p.assignment()
}

// assignment implements spec's right-associative assignment rule: parse a
// left-hand expression first, and only on a following '=' decide whether
// it denotes a Variable (→ Assign) or a Get (→ Set); anything else is a
// non-fatal "Invalid assignment target." diagnostic that still yields the
// already-parsed expression so parsing can continue.
func (p *Parser) assignment() ast.Expr {
	expr := p.or()

	if p.match(token.Equal) {
		equals := p.previous()
		value := p.assignment()

		switch e := expr.(type) {
		case *ast.Variable:
			return &ast.Assign{Name: e.Name, Value: value}
		case *ast.Get:
			return &ast.Set{Object: e.Object, Name: e.Name, Value: value}
		default:
			p.errorAt(equals, "Invalid assignment target.")
			return expr
		}
	}
	return expr
}

func (p *Parser) or() ast.Expr {
	expr := p.and()
	for p.match(token.Or) {
		op := p.previous()
		right := p.and()
		expr = &ast.Logical{LHS: expr, Op: op, RHS: right}
	}
	return expr
}

func (p *Parser) and() ast.Expr {
	expr := p.equality()
	for p.match(token.And) {
		op := p.previous()
		right := p.equality()
		expr = &ast.Logical{LHS: expr, Op: op, RHS: right}
	}
	return expr
}

func (p *Parser) equality() ast.Expr {
	expr := p.comparison()
	for p.match(token.BangEqual, token.EqualEqual) {
		op := p.previous()
		right := p.comparison()
		expr = &ast.Binary{LHS: expr, Op: op, RHS: right}
	}
	return expr
}

func (p *Parser) comparison() ast.Expr {
	expr := p.term()
	for p.match(token.Greater, token.GreaterEqual, token.Less, token.LessEqual) {
		op := p.previous()
		right := p.term()
		expr = &ast.Binary{LHS: expr, Op: op, RHS: right}
	}
	return expr
}

func (p *Parser) term() ast.Expr {
	expr := p.factor()
	for p.match(token.Plus, token.Minus) {
		op := p.previous()
		right := p.factor()
		expr = &ast.Binary{LHS: expr, Op: op, RHS: right}
	}
	return expr
}

func (p *Parser) factor() ast.Expr {
	expr := p.unary()
	for p.match(token.Star, token.Slash) {
		op := p.previous()
		right := p.unary()
		expr = &ast.Binary{LHS: expr, Op: op, RHS: right}
	}
	return expr
}

func (p *Parser) unary() ast.Expr {
	if p.match(token.Bang, token.Minus) {
		op := p.previous()
		right := p.unary()
		return &ast.Unary{Op: op, RHS: right}
	}
	return p.call()
}

func (p *Parser) call() ast.Expr {
	expr := p.primary()
	for {
		switch {
		case p.match(token.LeftParen):
			expr = p.finishCall(expr)
		case p.match(token.Dot):
			name := p.consume(token.Identifier, "Expect property name after '.'.")
			expr = &ast.Get{Object: expr, Name: name}
		default:
			return expr
		}
	}
}

func (p *Parser) finishCall(callee ast.Expr) ast.Expr {
	var args []ast.Expr
	if !p.check(token.RightParen) {
		for {
			if len(args) >= maxArgs {
				p.errorAt(p.peek(), "Can't have more than 255 arguments.")
			}
			args = append(args, p.expression())
			if !p.match(token.Comma) {
				break
			}
		}
	}
	paren := p.consume(token.RightParen, "Expect ')' after arguments.")
	return &ast.Call{Callee: callee, Paren: paren, Args: args}
}

func (p *Parser) primary() ast.Expr {
	switch {
	case p.match(token.False):
		return &ast.Literal{Value: ast.LiteralValue{Kind: ast.LitBoolean, Bool: false}}
	case p.match(token.True):
		return &ast.Literal{Value: ast.LiteralValue{Kind: ast.LitBoolean, Bool: true}}
	case p.match(token.Nil):
		return &ast.Literal{Value: ast.LiteralValue{Kind: ast.LitNil}}
	case p.match(token.Number):
		return &ast.Literal{Value: ast.LiteralValue{Kind: ast.LitNumber, Num: parseNumber(p.previous().Lexeme)}}
	case p.match(token.String):
		return &ast.Literal{Value: ast.LiteralValue{Kind: ast.LitString, Str: p.previous().Lexeme}}
	case p.match(token.Super):
		keyword := p.previous()
		p.consume(token.Dot, "Expect '.' after 'super'.")
		method := p.consume(token.Identifier, "Expect superclass method name.")
		return &ast.Super{Keyword: keyword, Method: method}
	case p.match(token.This):
		return &ast.This{Keyword: p.previous()}
	case p.match(token.Identifier):
		return &ast.Variable{Name: p.previous()}
	case p.match(token.LeftParen):
		expr := p.expression()
		p.consume(token.RightParen, "Expect ')' after expression.")
		return &ast.Grouping{Inner: expr}
	default:
		p.errorAt(p.peek(), "Expect expression.")
		panic(parseError{})
	}
}

func parseNumber(lexeme string) float64 {
	// the lexer already validated this lexeme parses as a float64; a
	// failure here would be a lexer/parser contract bug, not user error.
	f, _ := strconv.ParseFloat(lexeme, 64)
	return f
}
