package resolver

import (
	"github.com/fxlang/fx/ast"
)

func (r *Resolver) resolveExpr(expr ast.Expr) {
	switch e := expr.(type) {
	case *ast.Variable:
		if len(r.scopes) > 0 {
			if ready, ok := r.scopes[len(r.scopes)-1][e.Name.Lexeme]; ok && !ready {
				r.reporter.AtToken(e.Name, "Can't read local variable in its own initializer.")
			}
		}
		r.resolveLocal(e.Name, e.Name.Lexeme)

	case *ast.Assign:
		r.resolveExpr(e.Value)
		r.resolveLocal(e.Name, e.Name.Lexeme)

	case *ast.Binary:
		r.resolveExpr(e.LHS)
		r.resolveExpr(e.RHS)

	case *ast.Call:
		r.resolveExpr(e.Callee)
		for _, arg := range e.Args {
			r.resolveExpr(arg)
		}

	case *ast.Get:
		r.resolveExpr(e.Object)

	case *ast.Set:
		r.resolveExpr(e.Value)
		r.resolveExpr(e.Object)

	case *ast.Grouping:
		r.resolveExpr(e.Inner)

	case *ast.Literal:
		// no sub-expressions, no scope-dependent state

	case *ast.Logical:
		r.resolveExpr(e.LHS)
		r.resolveExpr(e.RHS)

	case *ast.Unary:
		r.resolveExpr(e.RHS)

	case *ast.This:
		if r.currentClass == classNone {
			r.reporter.AtToken(e.Keyword, "Can't use 'this' outside of a class.")
			return
		}
		r.resolveLocal(e.Keyword, "this")

	case *ast.Super:
		switch r.currentClass {
		case classNone:
			r.reporter.AtToken(e.Keyword, "Can't use 'super' outside of a class.")
		case classClass:
			r.reporter.AtToken(e.Keyword, "Can't use 'super' in a class with no superclass.")
		}
		r.resolveLocal(e.Keyword, "super")

	default:
		panic("resolver: unhandled expression type")
	}
}
