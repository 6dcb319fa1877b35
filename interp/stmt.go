package interp

import (
	"fmt"

	"github.com/fxlang/fx/ast"
	"github.com/fxlang/fx/environment"
	"github.com/fxlang/fx/function"
	"github.com/fxlang/fx/object"
)

// execute runs one statement in in.current, returning a non-nil *unwind
// only when it carries (or is) a Return signal that must keep propagating
// upward — e.g. a `return` nested inside `if`/`while`/`{}`.
func (in *Interpreter) execute(stmt ast.Stmt) (*unwind, error) {
	switch s := stmt.(type) {
	case *ast.Expression:
		_, err := in.evaluate(s.Expr)
		return nil, err

	case *ast.Print:
		v, err := in.evaluate(s.Expr)
		if err != nil {
			return nil, err
		}
		fmt.Fprintln(in.Writer, in.stringify(v))
		return nil, nil

	case *ast.Var:
		var v object.Value = object.Nil{}
		if s.Initializer != nil {
			var err error
			v, err = in.evaluate(s.Initializer)
			if err != nil {
				return nil, err
			}
		}
		in.current.Define(s.Name.Lexeme, v)
		return nil, nil

	case *ast.Block:
		return in.executeBlock(s.Stmts, environment.New(in.current))

	case *ast.If:
		cond, err := in.evaluate(s.Condition)
		if err != nil {
			return nil, err
		}
		if object.Truthy(cond) {
			return in.execute(s.Then)
		} else if s.Else != nil {
			return in.execute(s.Else)
		}
		return nil, nil

	case *ast.While:
		for {
			cond, err := in.evaluate(s.Condition)
			if err != nil {
				return nil, err
			}
			if !object.Truthy(cond) {
				return nil, nil
			}
			u, err := in.execute(s.Body)
			if err != nil || u != nil {
				return u, err
			}
		}

	case *ast.Function:
		fn := function.NewUser(s.Name.Lexeme, s.Params, s.Body, in.current, false)
		in.current.Define(s.Name.Lexeme, fn)
		return nil, nil

	case *ast.Return:
		var v object.Value = object.Nil{}
		if s.Value != nil {
			var err error
			v, err = in.evaluate(s.Value)
			if err != nil {
				return nil, err
			}
		}
		return &unwind{value: v}, nil

	case *ast.Class:
		return in.executeClass(s)

	default:
		panic("interp: unhandled statement type")
	}
}

// executeBlock evaluates stmts in env, always restoring in.current
// afterward regardless of exit path.
//
// This is the mandated fix for the second latent bug spec §9 calls out:
// original_source's visit_block_stmt evaluates the block but discards the
// inner Result, silently swallowing both runtime errors and in-flight
// Return unwinds — so e.g. `{ return 1; }` as a bare block statement would
// not actually return. Here both the error and the unwind are captured and
// propagated to the caller.
func (in *Interpreter) executeBlock(stmts []ast.Stmt, env *environment.Environment) (*unwind, error) {
	previous := in.current
	in.current = env
	defer func() { in.current = previous }()

	for _, s := range stmts {
		u, err := in.execute(s)
		if err != nil || u != nil {
			return u, err
		}
	}
	return nil, nil
}

func (in *Interpreter) executeClass(s *ast.Class) (*unwind, error) {
	var superclass *object.Class
	if s.Superclass != nil {
		v, err := in.evaluate(s.Superclass)
		if err != nil {
			return nil, err
		}
		sc, ok := v.(*object.Class)
		if !ok {
			return nil, runtimeErrf(s.Superclass.Name, "Superclass must be a class.")
		}
		superclass = sc
	}

	in.current.Define(s.Name.Lexeme, object.Nil{})

	methodEnv := in.current
	if superclass != nil {
		methodEnv = environment.New(in.current)
		methodEnv.Define("super", superclass)
	}

	methods := make(map[string]object.Callable, len(s.Methods))
	for _, m := range s.Methods {
		isInit := m.Name.Lexeme == "init"
		methods[m.Name.Lexeme] = function.NewUser(m.Name.Lexeme, m.Params, m.Body, methodEnv, isInit)
	}

	class := &object.Class{Name: s.Name.Lexeme, Superclass: superclass, Methods: methods}

	in.current.Assign(s.Name.Lexeme, class)
	return nil, nil
}
