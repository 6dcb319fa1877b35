// Package function implements fxlang's Function value: both the
// Native{arity, implementation} and User{name, params, body, closure,
// is_initializer} variants of spec §3.
//
// The field layout (Name/Params/Body/Closure) is grounded on
// go-mix/function/function.go's Function{Name, Params, Body, Scp}; the
// Native variant, IsInitializer flag and Bind method are new, grounded on
// original_source/fxfx.rs (the teacher has neither native functions nor
// classes). Function intentionally has no Call method: invocation needs
// to execute statements, which would make this package import interp,
// which already imports function — exactly the cycle go-mix avoids by
// keeping all invocation logic in eval.Evaluator.CallFunction instead of
// on function.Function itself. interp.Interpreter.callCallable fills that role
// here.
package function

import (
	"fmt"

	"github.com/fxlang/fx/ast"
	"github.com/fxlang/fx/environment"
	"github.com/fxlang/fx/object"
	"github.com/fxlang/fx/token"
)

// NativeImpl is the Go implementation behind a Native function value.
type NativeImpl func(args []object.Value) (object.Value, error)

// Function is fxlang's single Callable implementation, covering both
// natives (IsNative true, Native set) and user-defined functions/methods.
type Function struct {
	Name          string
	IsNative      bool
	Arity_        int
	Native        NativeImpl
	Params        []*token.Token
	Body          []ast.Stmt
	Closure       *environment.Environment
	IsInitializer bool
}

// NewNative builds a native Function wrapping impl, reporting arity as its
// arity for Call's arity check.
func NewNative(name string, arity int, impl NativeImpl) *Function {
	return &Function{Name: name, IsNative: true, Arity_: arity, Native: impl}
}

// NewUser builds a User-variant Function: name, params and body come
// straight from the parsed ast.Function declaration, closure is the
// defining environment, and isInitializer marks methods named "init".
func NewUser(name string, params []*token.Token, body []ast.Stmt, closure *environment.Environment, isInitializer bool) *Function {
	return &Function{
		Name:          name,
		Params:        params,
		Body:          body,
		Closure:       closure,
		IsInitializer: isInitializer,
	}
}

func (*Function) Kind() object.Kind { return object.KindCallable }

// String renders "<native func>" for natives, "<fn name>" for user
// functions, per spec §4.6.
func (f *Function) String() string {
	if f.IsNative {
		return "<native func>"
	}
	return fmt.Sprintf("<fn %s>", f.Name)
}

// Arity returns the function's declared parameter count.
func (f *Function) Arity() int {
	if f.IsNative {
		return f.Arity_
	}
	return len(f.Params)
}

// Bind returns a new User function identical to f except its closure is a
// fresh child environment of f.Closure with "this" bound to instance —
// spec §4.5's method-binding contract, grounded on original_source/fxfx.rs's
// bind.
func (f *Function) Bind(instance *object.Instance) object.Callable {
	env := environment.New(f.Closure)
	env.Define("this", instance)
	return &Function{
		Name:          f.Name,
		Params:        f.Params,
		Body:          f.Body,
		Closure:       env,
		IsInitializer: f.IsInitializer,
	}
}
