/*
File: monkey/cmd/monkey/main.go
*/

// Command monkey is the process entrypoint for the Monkey interpreter.
// With no arguments it starts the interactive REPL; with -e it
// evaluates a single expression; given a file path it runs that file
// as a script. Grounded on akashmaji946-go-mix's main/main.go mode
// dispatch and conneroisu-gix/main.go's flag-driven CLI shape.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/mway-lang/monkey/evaluator"
	"github.com/mway-lang/monkey/lexer"
	"github.com/mway-lang/monkey/object"
	"github.com/mway-lang/monkey/parser"
	"github.com/mway-lang/monkey/repl"
)

var redColor = color.New(color.FgRed)

func main() {
	expr := flag.String("e", "", "evaluate a single expression and print its result")
	flag.Parse()

	switch {
	case *expr != "":
		runSource(*expr)
	case flag.NArg() > 0:
		runFile(flag.Arg(0))
	default:
		if err := repl.Start(os.Stdout); err != nil {
			redColor.Fprintf(os.Stderr, "repl: %v\n", err)
			os.Exit(1)
		}
	}
}

func runFile(path string) {
	source, err := os.ReadFile(path)
	if err != nil {
		redColor.Fprintf(os.Stderr, "monkey: could not read %s: %v\n", path, err)
		os.Exit(1)
	}
	runSource(string(source))
}

// runSource parses and evaluates source, printing parse errors (if
// any) to stderr and exiting non-zero, otherwise printing the result's
// inspect string to stdout.
func runSource(source string) {
	p := parser.New(lexer.New(source))
	program := p.ParseProgram()

	if errs := p.Errors(); len(errs) > 0 {
		for _, e := range errs {
			redColor.Fprintln(os.Stderr, e)
		}
		os.Exit(1)
	}

	env := object.NewEnvironment()
	result := evaluator.Eval(program, env)
	if result == nil {
		return
	}

	if result.Type() == object.ERROR_OBJ {
		redColor.Fprintln(os.Stderr, result.Inspect())
		os.Exit(1)
	}

	fmt.Println(result.Inspect())
}
