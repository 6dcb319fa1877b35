package interp

import (
	"github.com/fxlang/fx/ast"
	"github.com/fxlang/fx/environment"
	"github.com/fxlang/fx/function"
	"github.com/fxlang/fx/object"
	"github.com/fxlang/fx/token"
)

func (in *Interpreter) evaluate(expr ast.Expr) (object.Value, error) {
	switch e := expr.(type) {
	case *ast.Literal:
		return literalValue(e.Value), nil

	case *ast.Grouping:
		return in.evaluate(e.Inner)

	case *ast.Unary:
		right, err := in.evaluate(e.RHS)
		if err != nil {
			return nil, err
		}
		switch e.Op.Kind {
		case token.Bang:
			return object.Boolean{Value: !object.Truthy(right)}, nil
		case token.Minus:
			n, ok := right.(object.Number)
			if !ok {
				return nil, runtimeErrf(e.Op, "Operand must be a number.")
			}
			return object.Number{Value: -n.Value}, nil
		}
		panic("interp: unhandled unary operator")

	case *ast.Binary:
		return in.evalBinary(e)

	case *ast.Logical:
		left, err := in.evaluate(e.LHS)
		if err != nil {
			return nil, err
		}
		if e.Op.Kind == token.Or {
			if object.Truthy(left) {
				return left, nil
			}
		} else {
			if !object.Truthy(left) {
				return left, nil
			}
		}
		return in.evaluate(e.RHS)

	case *ast.Variable:
		return in.lookUpVariable(e.Name)

	case *ast.Assign:
		value, err := in.evaluate(e.Value)
		if err != nil {
			return nil, err
		}
		if distance, ok := in.depths[e.Name]; ok {
			in.current.AssignAt(distance, e.Name.Lexeme, value)
		} else if !in.Globals.Assign(e.Name.Lexeme, value) {
			return nil, runtimeErrf(e.Name, "Undefined variable '%s'.", e.Name.Lexeme)
		}
		return value, nil

	case *ast.Call:
		return in.evalCall(e)

	case *ast.Get:
		obj, err := in.evaluate(e.Object)
		if err != nil {
			return nil, err
		}
		inst, ok := obj.(*object.Instance)
		if !ok {
			return nil, runtimeErrf(e.Name, "Only instances can have props.")
		}
		v, ok := inst.Get(e.Name.Lexeme)
		if !ok {
			return nil, runtimeErrf(e.Name, "Undefined prop '%s'.", e.Name.Lexeme)
		}
		return v, nil

	case *ast.Set:
		obj, err := in.evaluate(e.Object)
		if err != nil {
			return nil, err
		}
		inst, ok := obj.(*object.Instance)
		if !ok {
			return nil, runtimeErrf(e.Name, "Only instances can have props.")
		}
		value, err := in.evaluate(e.Value)
		if err != nil {
			return nil, err
		}
		inst.Set(e.Name.Lexeme, value)
		return value, nil

	case *ast.This:
		return in.lookUpVariable(e.Keyword)

	case *ast.Super:
		return in.evalSuper(e)

	default:
		panic("interp: unhandled expression type")
	}
}

// lookUpVariable implements spec §4.4's resolved-depth rule: if the
// Resolver recorded a depth for this reference token, read it via GetAt on
// the current environment; otherwise it must be a global.
func (in *Interpreter) lookUpVariable(name *token.Token) (object.Value, error) {
	if distance, ok := in.depths[name]; ok {
		return in.current.GetAt(distance, name.Lexeme), nil
	}
	if v, ok := in.Globals.Get(name.Lexeme); ok {
		return v, nil
	}
	return nil, runtimeErrf(name, "Undefined variable '%s'.", name.Lexeme)
}

func (in *Interpreter) evalBinary(e *ast.Binary) (object.Value, error) {
	left, err := in.evaluate(e.LHS)
	if err != nil {
		return nil, err
	}
	right, err := in.evaluate(e.RHS)
	if err != nil {
		return nil, err
	}

	switch e.Op.Kind {
	case token.Minus, token.Slash, token.Star:
		ln, lok := left.(object.Number)
		rn, rok := right.(object.Number)
		if !lok || !rok {
			return nil, runtimeErrf(e.Op, "Operand must be a number.")
		}
		switch e.Op.Kind {
		case token.Minus:
			return object.Number{Value: ln.Value - rn.Value}, nil
		case token.Slash:
			return object.Number{Value: ln.Value / rn.Value}, nil
		default:
			return object.Number{Value: ln.Value * rn.Value}, nil
		}

	case token.Plus:
		if ln, ok := left.(object.Number); ok {
			if rn, ok := right.(object.Number); ok {
				return object.Number{Value: ln.Value + rn.Value}, nil
			}
		}
		if ls, ok := left.(object.String); ok {
			if rs, ok := right.(object.String); ok {
				return object.String{Value: ls.Value + rs.Value}, nil
			}
		}
		return nil, runtimeErrf(e.Op, "Operands must be numbers or strings.")

	case token.Greater, token.GreaterEqual, token.Less, token.LessEqual:
		ln, lok := left.(object.Number)
		rn, rok := right.(object.Number)
		if !lok || !rok {
			return nil, runtimeErrf(e.Op, "Operand must be a number.")
		}
		switch e.Op.Kind {
		case token.Greater:
			return object.Boolean{Value: ln.Value > rn.Value}, nil
		case token.GreaterEqual:
			return object.Boolean{Value: ln.Value >= rn.Value}, nil
		case token.Less:
			return object.Boolean{Value: ln.Value < rn.Value}, nil
		default:
			return object.Boolean{Value: ln.Value <= rn.Value}, nil
		}

	case token.EqualEqual:
		return object.Boolean{Value: object.Equal(left, right)}, nil
	case token.BangEqual:
		return object.Boolean{Value: !object.Equal(left, right)}, nil
	}
	panic("interp: unhandled binary operator")
}

func (in *Interpreter) evalCall(e *ast.Call) (object.Value, error) {
	callee, err := in.evaluate(e.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]object.Value, 0, len(e.Args))
	for _, a := range e.Args {
		v, err := in.evaluate(a)
		if err != nil {
			return nil, err
		}
		args = append(args, v)
	}

	switch c := callee.(type) {
	case object.Callable:
		if c.Arity() != len(args) {
			return nil, runtimeErrf(e.Paren, "Expected %d args but found %d.", c.Arity(), len(args))
		}
		return in.callCallable(c, args, e.Paren)

	case *object.Class:
		instance := object.NewInstance(c)
		if initMethod, ok := c.FindMethod("init"); ok {
			bound := initMethod.Bind(instance)
			if bound.Arity() != len(args) {
				return nil, runtimeErrf(e.Paren, "Expected %d args but found %d.", bound.Arity(), len(args))
			}
			if _, err := in.callCallable(bound, args, e.Paren); err != nil {
				return nil, err
			}
		}
		return instance, nil

	default:
		return nil, runtimeErrf(e.Paren, "Can only call funcs and classes.")
	}
}

// callCallable invokes a resolved Callable. Native functions run directly;
// User functions follow spec §4.5's five-step invocation contract.
func (in *Interpreter) callCallable(c object.Callable, args []object.Value, paren *token.Token) (object.Value, error) {
	fn, ok := c.(*function.Function)
	if !ok {
		return nil, runtimeErrf(paren, "Can only call funcs and classes.")
	}
	if fn.IsNative {
		return fn.Native(args)
	}

	env := newFunctionEnv(fn, args)
	u, err := in.executeBlock(fn.Body, env)
	if err != nil {
		return nil, err
	}

	if fn.IsInitializer {
		return fn.Closure.GetAt(0, "this"), nil
	}
	if u != nil {
		return u.value, nil
	}
	return object.Nil{}, nil
}

func (in *Interpreter) evalSuper(e *ast.Super) (object.Value, error) {
	distance, ok := in.depths[e.Keyword]
	if !ok {
		panic("interp: resolver invariant violated: unresolved 'super'")
	}
	superVal := in.current.GetAt(distance, "super")
	superclass, ok := superVal.(*object.Class)
	if !ok {
		panic("interp: resolver invariant violated: 'super' bound to a non-Class")
	}
	thisVal := in.current.GetAt(distance-1, "this")
	instance, ok := thisVal.(*object.Instance)
	if !ok {
		panic("interp: resolver invariant violated: 'this' bound to a non-Instance")
	}

	method, ok := superclass.FindMethod(e.Method.Lexeme)
	if !ok {
		return nil, runtimeErrf(e.Method, "Undefined prop: %s", e.Method.Lexeme)
	}
	return method.Bind(instance), nil
}

func newFunctionEnv(fn *function.Function, args []object.Value) *environment.Environment {
	env := environment.New(fn.Closure)
	for i, p := range fn.Params {
		env.Define(p.Lexeme, args[i])
	}
	return env
}

func literalValue(lv ast.LiteralValue) object.Value {
	switch lv.Kind {
	case ast.LitNumber:
		return object.Number{Value: lv.Num}
	case ast.LitString:
		return object.String{Value: lv.Str}
	case ast.LitBoolean:
		return object.Boolean{Value: lv.Bool}
	default:
		return object.Nil{}
	}
}
