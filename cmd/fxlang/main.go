// Command fxlang is the entry point for the fxlang interpreter: bare
// invocation launches the REPL, one argument runs a script file.
//
// Grounded on go-mix/main/main.go's dispatch table and banner/version/
// prompt variables, trimmed to spec §6's exact CLI surface (no "server"
// subcommand — go-mix's is a GoMix-specific extra with no counterpart in
// original_source or spec.md's External Interfaces, see SPEC_FULL.md §13).
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/fxlang/fx/fxerr"
	"github.com/fxlang/fx/interp"
	"github.com/fxlang/fx/lexer"
	"github.com/fxlang/fx/parser"
	"github.com/fxlang/fx/repl"
	"github.com/fxlang/fx/resolver"
)

const version = "v1.0.0"

const banner = `
   ▄████  ▄▄▄ ▄▄  ▄▄▄
  ██      █▄▄▄ ██ █▄▄▄▄ ▄▄▄▄   ▄▄▄▄
  ██▀▀▀   ██   ██ ██  ██ ▀▀▄█  ██ ▄█
  ██      ██   ██ ██▄▄▀█ ▀█▄▄▀  ▀█▄▄▀
`

const line = "----------------------------------------------------------------"
const prompt = "fx >>> "

var redColor = color.New(color.FgRed)

func main() {
	switch len(os.Args) {
	case 1:
		runRepl()
	case 2:
		if os.Args[1] == "--help" || os.Args[1] == "-h" {
			showHelp()
			os.Exit(0)
		}
		if os.Args[1] == "--version" || os.Args[1] == "-v" {
			fmt.Println("fxlang " + version)
			os.Exit(0)
		}
		os.Exit(runFile(os.Args[1]))
	default:
		fmt.Fprintln(os.Stderr, "Usage: fxlang [script]")
		os.Exit(64)
	}
}

func runRepl() {
	r := repl.New(banner, version, line, prompt)
	if err := r.Start(os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(74)
	}
}

// runFile implements spec §6's one-arg invocation: read the file, run it
// once, and return the exit code the process should terminate with
// (0/65/70/74 — see SPEC_FULL.md §13 for why a file-read failure is
// distinguished from a parse failure, unlike original_source/bin/fxlang.rs
// which exits 74 only on its parse-error path).
func runFile(path string) int {
	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to read file %q: %v\n", path, err)
		return 74
	}

	reporter := fxerr.NewReporter()
	toks := lexer.New(string(src), reporter).ScanTokens()
	stmts := parser.New(toks, reporter).Parse()
	if reporter.HadError {
		printDiagnostics(reporter)
		return 65
	}

	res := resolver.New(reporter)
	res.Resolve(stmts)
	if reporter.HadError {
		printDiagnostics(reporter)
		return 65
	}

	in := interp.New(res.Depths())
	if err := in.Run(stmts); err != nil {
		redColor.Fprintln(os.Stderr, err)
		return 70
	}
	return 0
}

func printDiagnostics(reporter *fxerr.Reporter) {
	for _, msg := range reporter.Messages() {
		redColor.Fprintln(os.Stderr, msg)
	}
}

func showHelp() {
	fmt.Println("fxlang " + version)
	fmt.Println("Usage:")
	fmt.Println("  fxlang              start the interactive REPL")
	fmt.Println("  fxlang <script>     run a script file")
	fmt.Println("  fxlang --help       show this help")
	fmt.Println("  fxlang --version    show the version")
}
