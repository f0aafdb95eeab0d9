package object

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mway-lang/monkey/ast"
)

func TestStringHashKeyEquality(t *testing.T) {
	hello1 := &String{Value: "Hello World"}
	hello2 := &String{Value: "Hello World"}
	diff1 := &String{Value: "My name is johnny"}
	diff2 := &String{Value: "My name is johnny"}

	require.Equal(t, hello1.HashKey(), hello2.HashKey())
	require.Equal(t, diff1.HashKey(), diff2.HashKey())
	require.NotEqual(t, hello1.HashKey(), diff1.HashKey())
}

func TestIntegerAndBooleanHashKeys(t *testing.T) {
	one1 := &Integer{Value: 1}
	one2 := &Integer{Value: 1}
	two := &Integer{Value: 2}

	require.Equal(t, one1.HashKey(), one2.HashKey())
	require.NotEqual(t, one1.HashKey(), two.HashKey())

	require.Equal(t, (&Boolean{Value: true}).HashKey(), (&Boolean{Value: true}).HashKey())
	require.NotEqual(t, (&Boolean{Value: true}).HashKey(), (&Boolean{Value: false}).HashKey())
}

func TestHashSetPreservesInsertionOrder(t *testing.T) {
	h := NewHash()
	h.Set(&String{Value: "a"}, &Integer{Value: 1})
	h.Set(&Integer{Value: 2}, &String{Value: "b"})
	h.Set(&Boolean{Value: true}, &Integer{Value: 3})

	require.Len(t, h.Keys, 3)
	require.Equal(t, (&String{Value: "a"}).HashKey(), h.Keys[0])
	require.Equal(t, (&Integer{Value: 2}).HashKey(), h.Keys[1])
	require.Equal(t, (&Boolean{Value: true}).HashKey(), h.Keys[2])

	// overwriting an existing key does not duplicate its slot
	h.Set(&String{Value: "a"}, &Integer{Value: 99})
	require.Len(t, h.Keys, 3)
	require.Equal(t, int32(99), h.Pairs[(&String{Value: "a"}).HashKey()].Value.(*Integer).Value)
}

func TestEnvironmentOuterChain(t *testing.T) {
	outer := NewEnvironment()
	outer.Set("x", &Integer{Value: 1})

	inner := NewEnclosedEnvironment(outer)
	inner.Set("y", &Integer{Value: 2})

	v, ok := inner.Get("x")
	require.True(t, ok)
	require.Equal(t, int32(1), v.(*Integer).Value)

	_, ok = outer.Get("y")
	require.False(t, ok, "assignment in inner frame must not leak outward")
}

func TestFunctionInspect(t *testing.T) {
	f := &Function{Env: NewEnvironment(), Body: &ast.BlockStatement{}}
	require.Contains(t, f.Inspect(), "fn(")
}
