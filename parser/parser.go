// Package parser implements fxlang's recursive-descent, Pratt-precedence
// parser: token stream → ast.Stmt list.
//
// The overall shape — one method per precedence level, each calling the
// next-tighter level and looping on matching operators — is grounded on
// the structure of go-mix/parser/parser_precedence.go and
// parser_expressions.go, generalized to spec §4.2's grammar. Declaration
// and statement dispatch follows go-mix/parser/parser_statements.go's
// shape. Diagnostics go through fxerr.Reporter rather than the teacher's
// inline formatting, matching SPEC_FULL.md §11.
package parser

import (
	"github.com/fxlang/fx/ast"
	"github.com/fxlang/fx/fxerr"
	"github.com/fxlang/fx/token"
)

const maxArgs = 255

// Parser consumes a flat token slice and produces a statement list.
type Parser struct {
	tokens   []*token.Token
	current  int
	reporter *fxerr.Reporter
}

// New returns a Parser over tokens (as produced by lexer.ScanTokens,
// including the trailing Eof), reporting syntax errors through reporter.
func New(tokens []*token.Token, reporter *fxerr.Reporter) *Parser {
	return &Parser{tokens: tokens, reporter: reporter}
}

// Parse runs `program → declaration* EOF` to completion and returns the
// resulting statement list. Statements that failed to parse are omitted
// (their error was already reported and the parser resynchronized); the
// caller must still check the Reporter's HadError before proceeding to the
// Resolver (spec §4.2: "Parsing is considered failed if any error was
// reported; the Interpreter must not run.").
func (p *Parser) Parse() []ast.Stmt {
	var stmts []ast.Stmt
	for !p.atEnd() {
		if s := p.declaration(); s != nil {
			stmts = append(stmts, s)
		}
	}
	return stmts
}

// --- token cursor primitives ---

func (p *Parser) atEnd() bool {
	return p.peek().Kind == token.Eof
}

func (p *Parser) peek() *token.Token {
	return p.tokens[p.current]
}

func (p *Parser) previous() *token.Token {
	return p.tokens[p.current-1]
}

func (p *Parser) advance() *token.Token {
	if !p.atEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) check(kind token.Kind) bool {
	if p.atEnd() {
		return false
	}
	return p.peek().Kind == kind
}

func (p *Parser) match(kinds ...token.Kind) bool {
	for _, k := range kinds {
		if p.check(k) {
			p.advance()
			return true
		}
	}
	return false
}

// parseError is raised internally to unwind to the nearest statement
// boundary; it is always recovered by synchronize's caller and never
// escapes Parse.
type parseError struct{}

func (parseError) Error() string { return "parse error" }

// consume advances past an expected token kind or reports a syntax error
// and raises a parseError to unwind parsing of the current statement.
func (p *Parser) consume(kind token.Kind, message string) *token.Token {
	if p.check(kind) {
		return p.advance()
	}
	p.errorAt(p.peek(), message)
	panic(parseError{})
}

func (p *Parser) errorAt(tok *token.Token, message string) {
	p.reporter.AtToken(tok, message)
}

// synchronize discards tokens until it reaches a likely statement
// boundary, so one syntax error does not cascade into spurious follow-on
// errors (spec §4.2's sync() helper).
func (p *Parser) synchronize() {
	p.advance()
	for !p.atEnd() {
		if p.previous().Kind == token.Semicolon {
			return
		}
		switch p.peek().Kind {
		case token.Class, token.Fn, token.Var, token.For, token.If,
			token.While, token.Print, token.Return:
			return
		}
		p.advance()
	}
}
