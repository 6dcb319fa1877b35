// Package repl implements fxlang's interactive Read-Eval-Print Loop.
//
// Grounded on go-mix/repl/repl.go's Repl struct (banner/prompt/version
// fields), its use of github.com/chzyer/readline for line editing/history
// and github.com/fatih/color for colored feedback, and its
// executeWithRecovery panic guard. Unlike the teacher's REPL, a line here
// is never auto-echoed as an expression result — original_source/bin/
// fxlang.rs's run_repl feeds each line through the exact same
// lex→parse→resolve→interpret pipeline as file execution and relies
// entirely on explicit `print` statements for output, so this REPL does
// the same instead of inventing an implicit result-echo spec.md never
// asks for.
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/fxlang/fx/fxerr"
	"github.com/fxlang/fx/interp"
	"github.com/fxlang/fx/lexer"
	"github.com/fxlang/fx/parser"
	"github.com/fxlang/fx/resolver"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl holds the cosmetic configuration for an interactive session.
type Repl struct {
	Banner  string
	Version string
	Line    string
	Prompt  string
}

// New returns a Repl ready to Start.
func New(banner, version, line, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Line: line, Prompt: prompt}
}

func (r *Repl) printBanner(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintln(writer, "Type your code and press enter")
	cyanColor.Fprintln(writer, "Type '.exit' to quit")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the REPL loop against writer until the user exits (".exit" or
// EOF/Ctrl-D). One *interp.Interpreter persists across every line, per
// spec §2's "A REPL invokes this pipeline per line, preserving Interpreter
// state across invocations."
func (r *Repl) Start(writer io.Writer) error {
	r.printBanner(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		return err
	}
	defer rl.Close()

	in := interp.New(nil)
	in.Writer = writer

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good Bye!\n"))
			return nil
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Good Bye!\n"))
			return nil
		}
		rl.SaveHistory(line)

		r.evalLine(writer, in, line)
	}
}

// evalLine runs one line through the full pipeline, printing diagnostics
// in red and letting the loop continue regardless of outcome — per spec
// §7: "in the REPL, [runtime errors] are printed and the loop continues
// with preserved globals."
func (r *Repl) evalLine(writer io.Writer, in *interp.Interpreter, line string) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(writer, "[internal error] %v\n", recovered)
		}
	}()

	reporter := fxerr.NewReporter()
	toks := lexer.New(line, reporter).ScanTokens()
	stmts := parser.New(toks, reporter).Parse()
	if reporter.HadError {
		for _, msg := range reporter.Messages() {
			redColor.Fprintf(writer, "%s\n", msg)
		}
		return
	}

	res := resolver.New(reporter)
	res.Resolve(stmts)
	if reporter.HadError {
		for _, msg := range reporter.Messages() {
			redColor.Fprintf(writer, "%s\n", msg)
		}
		return
	}
	in.SetDepths(res.Depths())

	if err := in.Run(stmts); err != nil {
		redColor.Fprintf(writer, "%s\n", err)
	}
}
