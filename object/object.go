/*
File: monkey/object/object.go
*/

// Package object defines the runtime value model evaluated Monkey
// programs operate on, plus the lexically scoped Environment that binds
// names to values. Every value implements Object; Integer, Boolean, and
// String additionally implement Hashable so they can serve as hash
// keys.
package object

import (
	"bytes"
	"fmt"
	"hash/fnv"
	"strings"

	"github.com/mway-lang/monkey/ast"
)

// ObjectType discriminates the kind of value an Object holds.
type ObjectType string

const (
	INTEGER_OBJ      ObjectType = "INTEGER"
	BOOLEAN_OBJ      ObjectType = "BOOLEAN"
	NULL_OBJ         ObjectType = "NULL"
	RETURN_VALUE_OBJ ObjectType = "RETURN_VALUE"
	ERROR_OBJ        ObjectType = "ERROR"
	FUNCTION_OBJ     ObjectType = "FUNCTION"
	STRING_OBJ       ObjectType = "STRING"
	BUILTIN_OBJ      ObjectType = "BUILTIN"
	ARRAY_OBJ        ObjectType = "ARRAY"
	HASH_OBJ         ObjectType = "HASH"
)

// Object is the interface every runtime value implements.
type Object interface {
	Type() ObjectType
	Inspect() string
}

// Hashable is implemented by value kinds usable as Hash keys: Integer,
// Boolean, and String. Any other kind used as a key produces a runtime
// Error instead.
type Hashable interface {
	HashKey() HashKey
}

// HashKey flattens a hashable value down to a uniform lookup key: its
// kind plus a 64-bit digest of its value.
type HashKey struct {
	Type  ObjectType
	Value uint64
}

// Integer is a signed value within the 32-bit range.
type Integer struct {
	Value int32
}

func (i *Integer) Type() ObjectType { return INTEGER_OBJ }
func (i *Integer) Inspect() string  { return fmt.Sprintf("%d", i.Value) }
func (i *Integer) HashKey() HashKey {
	return HashKey{Type: i.Type(), Value: uint64(uint32(i.Value))}
}

// Boolean wraps a bool. Only the TRUE and FALSE singletons in package
// evaluator should ever be constructed, so identity comparison works.
type Boolean struct {
	Value bool
}

func (b *Boolean) Type() ObjectType { return BOOLEAN_OBJ }
func (b *Boolean) Inspect() string  { return fmt.Sprintf("%t", b.Value) }
func (b *Boolean) HashKey() HashKey {
	var v uint64
	if b.Value {
		v = 1
	}
	return HashKey{Type: b.Type(), Value: v}
}

// Null is the singleton absence-of-value.
type Null struct{}

func (n *Null) Type() ObjectType { return NULL_OBJ }
func (n *Null) Inspect() string  { return "null" }

// ReturnValue wraps the value of a `return` statement so block
// evaluation can propagate it upward without unwrapping it, stopping
// only at the innermost enclosing function call.
type ReturnValue struct {
	Value Object
}

func (rv *ReturnValue) Type() ObjectType { return RETURN_VALUE_OBJ }
func (rv *ReturnValue) Inspect() string  { return rv.Value.Inspect() }

// Error wraps a message produced at the point evaluation failed. Once
// produced it bubbles up through every evaluator call unchanged.
type Error struct {
	Message string
}

func (e *Error) Type() ObjectType { return ERROR_OBJ }
func (e *Error) Inspect() string  { return "Error: " + e.Message }

// Function is a closure: its parameter list and body, plus the
// environment captured at the moment the function literal was
// evaluated. Calling it later resolves free variables through that
// captured environment, not the caller's.
type Function struct {
	Parameters []*ast.Identifier
	Body       *ast.BlockStatement
	Env        *Environment
}

func (f *Function) Type() ObjectType { return FUNCTION_OBJ }
func (f *Function) Inspect() string {
	params := make([]string, len(f.Parameters))
	for i, p := range f.Parameters {
		params[i] = p.String()
	}
	var out bytes.Buffer
	out.WriteString("fn(")
	out.WriteString(strings.Join(params, ", "))
	out.WriteString(") {\n")
	out.WriteString(f.Body.String())
	out.WriteString("\n}")
	return out.String()
}

// String is an immutable byte sequence.
type String struct {
	Value string
}

func (s *String) Type() ObjectType { return STRING_OBJ }
func (s *String) Inspect() string  { return s.Value }
func (s *String) HashKey() HashKey {
	h := fnv.New64a()
	h.Write([]byte(s.Value))
	return HashKey{Type: s.Type(), Value: h.Sum64()}
}

// BuiltinFunction is the Go-side implementation behind a Builtin value.
type BuiltinFunction func(args ...Object) Object

// Builtin wraps a host function exposed to Monkey code under a fixed
// name, e.g. len or puts. Builtins are not hashable: they expose no
// HashKey method, unlike Integer/Boolean/String.
type Builtin struct {
	Fn BuiltinFunction
}

func (b *Builtin) Type() ObjectType { return BUILTIN_OBJ }
func (b *Builtin) Inspect() string  { return "builtin function" }

// Array is an ordered, heterogeneous sequence of values.
type Array struct {
	Elements []Object
}

func (ao *Array) Type() ObjectType { return ARRAY_OBJ }
func (ao *Array) Inspect() string {
	elems := make([]string, len(ao.Elements))
	for i, e := range ao.Elements {
		elems[i] = e.Inspect()
	}
	var out bytes.Buffer
	out.WriteString("[")
	out.WriteString(strings.Join(elems, ", "))
	out.WriteString("]")
	return out.String()
}

// HashPair retains both the original key value and its associated
// value, so a Hash can recover and print the key on iteration even
// though lookups go through the flattened HashKey.
type HashPair struct {
	Key   Object
	Value Object
}

// Hash maps HashKey to HashPair. Keys tracks insertion order so
// Inspect() and any future iteration are deterministic, even though
// the language makes no promise about hash iteration order.
type Hash struct {
	Pairs map[HashKey]HashPair
	Keys  []HashKey
}

func (h *Hash) Type() ObjectType { return HASH_OBJ }
func (h *Hash) Inspect() string {
	pairs := make([]string, 0, len(h.Keys))
	for _, k := range h.Keys {
		pair := h.Pairs[k]
		pairs = append(pairs, fmt.Sprintf("%s: %s", pair.Key.Inspect(), pair.Value.Inspect()))
	}
	var out bytes.Buffer
	out.WriteString("{")
	out.WriteString(strings.Join(pairs, ", "))
	out.WriteString("}")
	return out.String()
}

// Set inserts or overwrites the pair for key's HashKey, appending to
// Keys only on first insertion so iteration order matches the order
// keys first appeared.
func (h *Hash) Set(key Hashable, value Object) {
	hk := key.HashKey()
	if h.Pairs == nil {
		h.Pairs = make(map[HashKey]HashPair)
	}
	if _, exists := h.Pairs[hk]; !exists {
		h.Keys = append(h.Keys, hk)
	}
	h.Pairs[hk] = HashPair{Key: key.(Object), Value: value}
}

// NewHash returns an empty Hash ready for Set calls.
func NewHash() *Hash {
	return &Hash{Pairs: make(map[HashKey]HashPair)}
}
