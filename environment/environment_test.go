package environment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fxlang/fx/object"
)

func TestDefineAndGet(t *testing.T) {
	env := New(nil)
	env.Define("a", object.Number{Value: 1})
	v, ok := env.Get("a")
	require.True(t, ok)
	assert.Equal(t, object.Number{Value: 1}, v)
}

func TestGetFallsBackToEnclosing(t *testing.T) {
	parent := New(nil)
	parent.Define("a", object.String{Value: "outer"})
	child := New(parent)
	v, ok := child.Get("a")
	require.True(t, ok)
	assert.Equal(t, object.String{Value: "outer"}, v)
}

func TestGetMissingReturnsFalse(t *testing.T) {
	env := New(nil)
	_, ok := env.Get("missing")
	assert.False(t, ok)
}

func TestAssignUpdatesNearestEnclosingBinding(t *testing.T) {
	parent := New(nil)
	parent.Define("a", object.Number{Value: 1})
	child := New(parent)

	ok := child.Assign("a", object.Number{Value: 2})
	require.True(t, ok)

	v, _ := parent.Get("a")
	assert.Equal(t, object.Number{Value: 2}, v)
	_, definedInChild := child.values["a"]
	assert.False(t, definedInChild)
}

func TestAssignUndefinedReturnsFalse(t *testing.T) {
	env := New(nil)
	assert.False(t, env.Assign("missing", object.Nil{}))
}

func TestClosureSharesLiveMutationsAcrossCalls(t *testing.T) {
	// spec §8 S2: a closure observes later mutations to its captured
	// variable, not a snapshot taken at capture time.
	outer := New(nil)
	outer.Define("i", object.Number{Value: 0})

	closureA := New(outer)
	closureB := New(outer)

	outer.Assign("i", object.Number{Value: 1})
	va, _ := closureA.Get("i")
	vb, _ := closureB.Get("i")
	assert.Equal(t, object.Number{Value: 1}, va)
	assert.Equal(t, object.Number{Value: 1}, vb)
}

func TestGetAtAndAssignAt(t *testing.T) {
	global := New(nil)
	global.Define("a", object.Number{Value: 1})
	middle := New(global)
	inner := New(middle)

	assert.Equal(t, object.Number{Value: 1}, inner.GetAt(2, "a"))

	inner.AssignAt(2, "a", object.Number{Value: 99})
	v, _ := global.Get("a")
	assert.Equal(t, object.Number{Value: 99}, v)
}
