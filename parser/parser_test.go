package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fxlang/fx/ast"
	"github.com/fxlang/fx/fxerr"
	"github.com/fxlang/fx/lexer"
)

func parse(t *testing.T, source string) ([]ast.Stmt, *fxerr.Reporter) {
	t.Helper()
	reporter := fxerr.NewReporter()
	toks := lexer.New(source, reporter).ScanTokens()
	stmts := New(toks, reporter).Parse()
	return stmts, reporter
}

func TestParse_ArithmeticPrecedence(t *testing.T) {
	stmts, reporter := parse(t, "print 1 + 2 * 3;")
	require.False(t, reporter.HadError)
	require.Len(t, stmts, 1)
	printStmt, ok := stmts[0].(*ast.Print)
	require.True(t, ok)
	assert.Equal(t, "(+ 1 (* 2 3))", ast.PrintExpr(printStmt.Expr))
}

func TestParse_AssignmentIsRightAssociative(t *testing.T) {
	stmts, reporter := parse(t, "a = b = 3;")
	require.False(t, reporter.HadError)
	exprStmt := stmts[0].(*ast.Expression)
	outer, ok := exprStmt.Expr.(*ast.Assign)
	require.True(t, ok)
	assert.Equal(t, "a", outer.Name.Lexeme)
	inner, ok := outer.Value.(*ast.Assign)
	require.True(t, ok)
	assert.Equal(t, "b", inner.Name.Lexeme)
}

func TestParse_InvalidAssignmentTargetIsNonFatal(t *testing.T) {
	stmts, reporter := parse(t, "1 = 2;")
	assert.True(t, reporter.HadError)
	assert.Contains(t, reporter.Messages()[0], "Invalid assignment target.")
	// parsing still yields the already-parsed expression
	require.Len(t, stmts, 1)
}

func TestParse_ForDesugarsToWhile(t *testing.T) {
	stmts, reporter := parse(t, "for (var i = 0; i < 3; i = i + 1) print i;")
	require.False(t, reporter.HadError)
	require.Len(t, stmts, 1)
	block, ok := stmts[0].(*ast.Block)
	require.True(t, ok)
	require.Len(t, block.Stmts, 2)
	_, isVar := block.Stmts[0].(*ast.Var)
	assert.True(t, isVar)
	whileStmt, isWhile := block.Stmts[1].(*ast.While)
	require.True(t, isWhile)
	body, ok := whileStmt.Body.(*ast.Block)
	require.True(t, ok)
	assert.Len(t, body.Stmts, 2) // original body + increment
}

func TestParse_ForWithNoClauses(t *testing.T) {
	stmts, reporter := parse(t, "for (;;) print 1;")
	require.False(t, reporter.HadError)
	whileStmt, ok := stmts[0].(*ast.While)
	require.True(t, ok)
	lit, ok := whileStmt.Condition.(*ast.Literal)
	require.True(t, ok)
	assert.Equal(t, ast.LitBoolean, lit.Value.Kind)
	assert.True(t, lit.Value.Bool)
}

func TestParse_ClassWithSuperclassAndMethods(t *testing.T) {
	stmts, reporter := parse(t, `
		class B < A -> {
			greet() -> { print "hi"; }
			init(v) -> { this.v = v; }
		}
	`)
	require.False(t, reporter.HadError)
	require.Len(t, stmts, 1)
	class, ok := stmts[0].(*ast.Class)
	require.True(t, ok)
	assert.Equal(t, "B", class.Name.Lexeme)
	require.NotNil(t, class.Superclass)
	assert.Equal(t, "A", class.Superclass.Name.Lexeme)
	require.Len(t, class.Methods, 2)
	assert.Equal(t, "greet", class.Methods[0].Name.Lexeme)
	assert.Equal(t, "init", class.Methods[1].Name.Lexeme)
}

func TestParse_CallAndGetChain(t *testing.T) {
	stmts, reporter := parse(t, "a.b().c;")
	require.False(t, reporter.HadError)
	exprStmt := stmts[0].(*ast.Expression)
	get, ok := exprStmt.Expr.(*ast.Get)
	require.True(t, ok)
	assert.Equal(t, "c", get.Name.Lexeme)
	_, ok = get.Object.(*ast.Call)
	assert.True(t, ok)
}

func TestParse_SuperWithoutDotIsError(t *testing.T) {
	_, reporter := parse(t, `
		class A -> { f() -> { return super; } }
	`)
	assert.True(t, reporter.HadError)
}

func TestParse_TooManyArgumentsIsNonFatal(t *testing.T) {
	var args string
	for i := 0; i < 256; i++ {
		if i > 0 {
			args += ", "
		}
		args += "1"
	}
	stmts, reporter := parse(t, "f("+args+");")
	assert.True(t, reporter.HadError)
	assert.Contains(t, reporter.Messages()[0], "Can't have more than 255 arguments.")
	// parsing still continues and yields the call
	require.Len(t, stmts, 1)
}

func TestParse_MissingSemicolonReportsErrorAndRecovers(t *testing.T) {
	// the missing ';' after `1` desyncs the parser mid-declaration; sync()
	// discards up to and including the next statement boundary (the ';'
	// closing "var b = 2"), and parsing resumes cleanly at `print b;`.
	stmts, reporter := parse(t, "var a = 1\nvar b = 2;\nprint b;")
	assert.True(t, reporter.HadError)
	require.Len(t, stmts, 1)
	printStmt, ok := stmts[0].(*ast.Print)
	require.True(t, ok)
	v, ok := printStmt.Expr.(*ast.Variable)
	require.True(t, ok)
	assert.Equal(t, "b", v.Name.Lexeme)
}
