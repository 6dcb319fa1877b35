package ast

import (
	"strconv"
	"strings"
)

// PrintExpr renders an expression as a Lisp-style s-expression, e.g.
// `(* (- 420) (group 421))`. This has no role in parsing or evaluation; it
// exists purely so tests can assert parser output without hand-building
// expected trees, the same debugging aid original_source's AstPrinter
// provides over the same expression variants. (It is not named Print
// because that name belongs to the print statement node.)
func PrintExpr(e Expr) string {
	var b strings.Builder
	printExpr(&b, e)
	return b.String()
}

func printExpr(b *strings.Builder, e Expr) {
	switch n := e.(type) {
	case *Binary:
		parenthesize(b, n.Op.Lexeme, n.LHS, n.RHS)
	case *Logical:
		parenthesize(b, n.Op.Lexeme, n.LHS, n.RHS)
	case *Grouping:
		parenthesize(b, "group", n.Inner)
	case *Literal:
		b.WriteString(literalString(n.Value))
	case *Unary:
		parenthesize(b, n.Op.Lexeme, n.RHS)
	case *Variable:
		b.WriteString(n.Name.Lexeme)
	case *Assign:
		parenthesize(b, "= "+n.Name.Lexeme, n.Value)
	case *Call:
		parenthesize(b, "call", append([]Expr{n.Callee}, n.Args...)...)
	case *Get:
		parenthesize(b, "get "+n.Name.Lexeme, n.Object)
	case *Set:
		parenthesize(b, "set "+n.Name.Lexeme, n.Object, n.Value)
	case *This:
		b.WriteString("this")
	case *Super:
		b.WriteString("(super " + n.Method.Lexeme + ")")
	default:
		b.WriteString("<?>")
	}
}

func literalString(v LiteralValue) string {
	switch v.Kind {
	case LitNil:
		return "nil"
	case LitBoolean:
		if v.Bool {
			return "true"
		}
		return "false"
	case LitString:
		return v.Str
	default:
		return trimNumber(v.Num)
	}
}

func trimNumber(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func parenthesize(b *strings.Builder, name string, exprs ...Expr) {
	b.WriteByte('(')
	b.WriteString(name)
	for _, e := range exprs {
		b.WriteByte(' ')
		printExpr(b, e)
	}
	b.WriteByte(')')
}
