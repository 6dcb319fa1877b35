package object

import "fmt"

// Class is a runtime class value, grounded on go-mix/objects/struct.go's
// GoMixStruct, generalized with a superclass link and method-chain lookup
// per original_source/fxclass.rs (the teacher has no inheritance at all).
//
// Class is a reference-identity value: two Class values are only equal to
// each other when they are the same object (see Equal).
type Class struct {
	Name       string
	Superclass *Class
	Methods    map[string]Callable
}

func (*Class) Kind() Kind { return KindClass }

// String renders just the class name, per spec §4.6.
func (c *Class) String() string { return c.Name }

// FindMethod looks up name on c, then walks the superclass chain; the
// first match wins (spec §8 property 6: "single-inheritance linear
// search").
func (c *Class) FindMethod(name string) (Callable, bool) {
	if m, ok := c.Methods[name]; ok {
		return m, true
	}
	if c.Superclass != nil {
		return c.Superclass.FindMethod(name)
	}
	return nil, false
}

// Instance is a runtime object: a reference to its Class plus a mutable
// field map, grounded on go-mix/objects/struct.go's GoMixObjectInstance.
//
// Instance is a reference-identity value, same as Class.
type Instance struct {
	Class  *Class
	Fields map[string]Value
}

// NewInstance allocates a fresh, fieldless Instance of class.
func NewInstance(class *Class) *Instance {
	return &Instance{Class: class, Fields: make(map[string]Value)}
}

func (*Instance) Kind() Kind { return KindInstance }

// String renders "<classname> instance", per spec §4.6.
func (i *Instance) String() string {
	return fmt.Sprintf("%s instance", i.Class.Name)
}

// Get implements spec §4.5's Get expression: a field hit wins over a
// method of the same name; a method hit is bound to the instance before
// being returned so `this` resolves correctly inside it.
func (i *Instance) Get(name string) (Value, bool) {
	if v, ok := i.Fields[name]; ok {
		return v, true
	}
	if m, ok := i.Class.FindMethod(name); ok {
		return m.Bind(i), true
	}
	return nil, false
}

// Set stores value in the instance's field map, creating the field if it
// does not already exist (spec §3: "Fields are dynamically added on first
// assignment.").
func (i *Instance) Set(name string, value Value) {
	i.Fields[name] = value
}
