/*
File: monkey/repl/repl.go
*/

// Package repl implements the interactive Read-Eval-Print Loop for the
// Monkey interpreter. It is a driver external to the language core
// (spec.md §1 explicitly scopes the REPL out of the core three
// subsystems): it feeds input lines through lexer -> parser ->
// evaluator and prints the result's inspect string, nothing more.
//
// Grounded on akashmaji946-go-mix/repl/repl.go: readline for line
// editing and history, fatih/color for the banner and result/error
// channels.
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/mway-lang/monkey/evaluator"
	"github.com/mway-lang/monkey/lexer"
	"github.com/mway-lang/monkey/object"
	"github.com/mway-lang/monkey/parser"
)

const prompt = "> "

// Color channels for REPL output: a separator/banner palette and a
// distinct color for results versus errors.
var (
	blueColor   = color.New(color.FgBlue)
	greenColor  = color.New(color.FgGreen)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	cyanColor   = color.New(color.FgCyan)
)

const banner = `
 __  __             _
|  \/  | ___  _ __ | | _____ _   _
| |\/| |/ _ \| '_ \| |/ / _ \ | | |
| |  | | (_) | | | |   <  __/ |_| |
|_|  |_|\___/|_| |_|_|\_\___|\__, |
                              |___/
`

// printBanner writes the startup banner and short usage hints to w.
func printBanner(w io.Writer) {
	blueColor.Fprintln(w, strings.Repeat("-", 40))
	greenColor.Fprintln(w, banner)
	blueColor.Fprintln(w, strings.Repeat("-", 40))
	cyanColor.Fprintln(w, "Type Monkey code and press enter.")
	cyanColor.Fprintln(w, "Type '.exit' or press Ctrl-D to quit.")
	blueColor.Fprintln(w, strings.Repeat("-", 40))
}

// Start runs the REPL loop until the user exits or EOF is reached. A
// single environment persists across the whole session, so a `let`
// bound on one line is visible on the next.
func Start(w io.Writer) error {
	printBanner(w)

	rl, err := readline.New(prompt)
	if err != nil {
		return err
	}
	defer rl.Close()

	env := object.NewEnvironment()

	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF on Ctrl-D, readline.ErrInterrupt on Ctrl-C
			w.Write([]byte("Good bye!\n"))
			return nil
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ".exit" {
			w.Write([]byte("Good bye!\n"))
			return nil
		}

		rl.SaveHistory(line)
		evalLine(w, line, env)
	}
}

// evalLine runs one line of input through the pipeline and prints its
// result. Parser errors are printed in red and the line is discarded;
// a panic escaping the evaluator (a bug, never an expected outcome) is
// recovered so a single bad line cannot kill the session.
func evalLine(w io.Writer, line string, env *object.Environment) {
	defer func() {
		if r := recover(); r != nil {
			redColor.Fprintf(w, "[runtime panic] %v\n", r)
		}
	}()

	p := parser.New(lexer.New(line))
	program := p.ParseProgram()

	if errs := p.Errors(); len(errs) > 0 {
		for _, e := range errs {
			redColor.Fprintln(w, e)
		}
		return
	}

	result := evaluator.Eval(program, env)
	if result == nil {
		return
	}

	if result.Type() == object.ERROR_OBJ {
		redColor.Fprintln(w, result.Inspect())
		return
	}
	yellowColor.Fprintln(w, "uh: "+result.Inspect())
}
