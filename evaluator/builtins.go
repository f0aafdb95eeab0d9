/*
File: monkey/evaluator/builtins.go
*/

package evaluator

import (
	"fmt"

	"github.com/mway-lang/monkey/object"
)

// builtins is the process-lifetime table of host functions exposed to
// Monkey code. evalIdentifier falls back to this table only after the
// environment chain has been searched, so a user binding can shadow a
// builtin name.
var builtins = map[string]*object.Builtin{
	"len":   {Fn: builtinLen},
	"puts":  {Fn: builtinPuts},
	"first": {Fn: builtinFirst},
	"last":  {Fn: builtinLast},
	"rest":  {Fn: builtinRest},
	"push":  {Fn: builtinPush},
}

func builtinLen(args ...object.Object) object.Object {
	if len(args) != 1 {
		return newError("Wrong number of args: got %d, expected 1", len(args))
	}

	switch arg := args[0].(type) {
	case *object.String:
		return &object.Integer{Value: int32(len(arg.Value))}
	case *object.Array:
		return &object.Integer{Value: int32(len(arg.Elements))}
	case *object.Hash:
		return &object.Integer{Value: int32(len(arg.Keys))}
	default:
		return newError("Argument to `len` not supported, got %s", args[0].Type())
	}
}

// builtinPuts prints each argument's inspect form on its own line and
// returns Null. There is deliberately no mechanism to inject an
// io.Writer here — the REPL and CLI drivers are outside this package's
// scope per spec.md §1, and Go's fmt.Println writing to stdout is the
// simplest faithful rendition of "prints".
func builtinPuts(args ...object.Object) object.Object {
	for _, arg := range args {
		fmt.Println(arg.Inspect())
	}
	return NULL
}

func builtinFirst(args ...object.Object) object.Object {
	if len(args) != 1 {
		return newError("Wrong number of args: got %d, expected 1", len(args))
	}
	arr, ok := args[0].(*object.Array)
	if !ok {
		return newError("Argument to `first` not supported, got %s", args[0].Type())
	}
	if len(arr.Elements) == 0 {
		return NULL
	}
	return arr.Elements[0]
}

func builtinLast(args ...object.Object) object.Object {
	if len(args) != 1 {
		return newError("Wrong number of args: got %d, expected 1", len(args))
	}
	arr, ok := args[0].(*object.Array)
	if !ok {
		return newError("Argument to `last` not supported, got %s", args[0].Type())
	}
	if len(arr.Elements) == 0 {
		return NULL
	}
	return arr.Elements[len(arr.Elements)-1]
}

// builtinRest returns a new array holding every element but the first.
// It never mutates its argument: arrays behave as persistent values
// from the builtins' perspective.
func builtinRest(args ...object.Object) object.Object {
	if len(args) != 1 {
		return newError("Wrong number of args: got %d, expected 1", len(args))
	}
	arr, ok := args[0].(*object.Array)
	if !ok {
		return newError("Argument to `rest` not supported, got %s", args[0].Type())
	}
	length := len(arr.Elements)
	if length == 0 {
		return NULL
	}
	newElements := make([]object.Object, length-1)
	copy(newElements, arr.Elements[1:length])
	return &object.Array{Elements: newElements}
}

// builtinPush returns a new array with x appended, leaving its
// argument untouched.
func builtinPush(args ...object.Object) object.Object {
	if len(args) != 2 {
		return newError("Wrong number of args: got %d, expected 2", len(args))
	}
	arr, ok := args[0].(*object.Array)
	if !ok {
		return newError("Argument to `push` not supported, got %s", args[0].Type())
	}
	length := len(arr.Elements)
	newElements := make([]object.Object, length+1)
	copy(newElements, arr.Elements)
	newElements[length] = args[1]
	return &object.Array{Elements: newElements}
}
