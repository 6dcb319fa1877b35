package ast

import "github.com/fxlang/fx/token"

// Stmt is the sealed interface implemented by every statement node.
type Stmt interface {
	stmtNode()
}

type (
	// Expression is a bare expression statement, evaluated for effect.
	Expression struct {
		Expr Expr
	}

	// Print is `print expr;`.
	Print struct {
		Expr Expr
	}

	// Var is `var name = initializer;` (Initializer may be nil).
	Var struct {
		Name        *token.Token
		Initializer Expr
	}

	// Block is `{ stmts... }`, each introducing a child environment.
	Block struct {
		Stmts []Stmt
	}

	// If is `if (cond) Then else Else` (Else may be nil).
	If struct {
		Condition Expr
		Then      Stmt
		Else      Stmt
	}

	// While is `while (cond) Body`. `for` loops desugar into this plus a
	// wrapping Block at parse time (see parser.forStatement).
	While struct {
		Condition Expr
		Body      Stmt
	}

	// Function is a named function declaration (top-level or a class method).
	Function struct {
		Name   *token.Token
		Params []*token.Token
		Body   []Stmt
	}

	// Return is `return expr?;`. Value is nil for a bare `return;`.
	Return struct {
		Keyword *token.Token
		Value   Expr
	}

	// Class is a class declaration with an optional superclass variable
	// reference and a list of method declarations.
	Class struct {
		Name       *token.Token
		Superclass *Variable
		Methods    []*Function
	}
)

func (*Expression) stmtNode() {}
func (*Print) stmtNode()      {}
func (*Var) stmtNode()        {}
func (*Block) stmtNode()      {}
func (*If) stmtNode()         {}
func (*While) stmtNode()      {}
func (*Function) stmtNode()   {}
func (*Return) stmtNode()     {}
func (*Class) stmtNode()      {}
