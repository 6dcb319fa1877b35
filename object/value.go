// Package object defines fxlang's six runtime value kinds, grounded on
// go-mix/objects/objects.go's GoMixObject interface and one-struct-per-kind
// layout, narrowed to exactly the kinds spec §3 names (no numeric tower, no
// collection types — those are GoMix language features this spec excludes).
package object

// Kind identifies a Value's runtime type, used for diagnostics and type
// tests (e.g. "Operand must be a number.").
type Kind string

const (
	KindNil      Kind = "nil"
	KindBoolean  Kind = "boolean"
	KindNumber   Kind = "number"
	KindString   Kind = "string"
	KindCallable Kind = "callable"
	KindClass    Kind = "class"
	KindInstance Kind = "instance"
)

// Value is implemented by every runtime value kind.
type Value interface {
	Kind() Kind
	// String renders the value the way Print and error diagnostics do
	// (spec §4.6). Never used for equality or type tests.
	String() string
}

// Nil is the language's single null value.
type Nil struct{}

func (Nil) Kind() Kind     { return KindNil }
func (Nil) String() string { return "NIL" }

// Boolean wraps a host bool.
type Boolean struct{ Value bool }

func (Boolean) Kind() Kind { return KindBoolean }
func (b Boolean) String() string {
	if b.Value {
		return "true"
	}
	return "false"
}

// Number is fxlang's single numeric kind: a 64-bit IEEE-754 float (spec's
// Non-goal rules out an integer/float split).
type Number struct{ Value float64 }

func (Number) Kind() Kind { return KindNumber }

// String formats Number with the host default double formatting, per
// spec §4.6.
func (n Number) String() string {
	return formatNumber(n.Value)
}

// String wraps a host string value.
type String struct{ Value string }

func (String) Kind() Kind     { return KindString }
func (s String) String() string { return s.Value }

// Callable is satisfied by function.Function without object importing
// function — the same indirection go-mix/objects/struct.go's
// FunctionInterface uses to keep GoMixStruct free of an import cycle.
type Callable interface {
	Value
	Arity() int
	// Bind returns a copy of the callable with `this` bound to instance,
	// for method lookups via Get (spec §4.5).
	Bind(instance *Instance) Callable
}

// Truthy implements spec's truthiness rule: Nil and Boolean(false) are
// false, everything else is true.
func Truthy(v Value) bool {
	switch n := v.(type) {
	case Nil:
		return false
	case Boolean:
		return n.Value
	default:
		return true
	}
}

// Equal implements spec §4.5's equality rule: Nil==Nil is true; Boolean,
// Number and String compare by value; Class and Instance compare by
// reference identity; anything else (comparing across kinds) is false.
//
// original_source's FxUnit::equals left Class/Instance as `_ => false`
// with a `//TODO define for class and instance`; spec §9 mandates identity
// comparison here instead.
func Equal(a, b Value) bool {
	switch av := a.(type) {
	case Nil:
		_, ok := b.(Nil)
		return ok
	case Boolean:
		bv, ok := b.(Boolean)
		return ok && av.Value == bv.Value
	case Number:
		bv, ok := b.(Number)
		return ok && av.Value == bv.Value
	case String:
		bv, ok := b.(String)
		return ok && av.Value == bv.Value
	case *Class:
		bv, ok := b.(*Class)
		return ok && av == bv
	case *Instance:
		bv, ok := b.(*Instance)
		return ok && av == bv
	default:
		return false
	}
}
