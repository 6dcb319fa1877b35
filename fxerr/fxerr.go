// Package fxerr centralizes the diagnostic taxonomy shared across the
// Lexer, Parser, Resolver and Interpreter, grounded on original_source's
// error.rs `report`/`parser_error`/`runtime_error` helpers and generalized
// into a single accumulating Reporter, the way eval.Evaluator.CreateError
// centralizes error formatting for the teacher's evaluator.
package fxerr

import (
	"fmt"

	"github.com/fxlang/fx/token"
)

// RuntimeError is a failure raised during Interpreter execution. It carries
// the offending Token so the diagnostic can point at a precise source
// location.
type RuntimeError struct {
	Token   *token.Token
	Message string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("[line %d] %s", e.Token.Line, e.Message)
}

// NewRuntimeError builds a RuntimeError at tok with a formatted message.
func NewRuntimeError(tok *token.Token, format string, args ...any) *RuntimeError {
	return &RuntimeError{Token: tok, Message: fmt.Sprintf(format, args...)}
}

// Reporter accumulates diagnostics from the Lexer, Parser and Resolver.
// Each stage writes through one Reporter; the driver (REPL or CLI) checks
// HadError after each stage and skips the rest of the pipeline if set, per
// spec §7.
type Reporter struct {
	HadError bool
	messages []string
}

// NewReporter returns a Reporter ready to accumulate diagnostics.
func NewReporter() *Reporter {
	return &Reporter{}
}

// Error reports a diagnostic with no token context (e.g. a lexical error,
// which has no lexeme to quote): "[line N] Error: message".
func (r *Reporter) Error(line int, message string) {
	r.report(line, "", message)
}

// AtToken reports a diagnostic anchored to tok: "[line N] Error at
// 'lexeme': message", or "[line N] Error at end: message" for an Eof token.
func (r *Reporter) AtToken(tok *token.Token, message string) {
	if tok.Kind == token.Eof {
		r.report(tok.Line, " at end", message)
	} else {
		r.report(tok.Line, fmt.Sprintf(" at '%s'", tok.Lexeme), message)
	}
}

func (r *Reporter) report(line int, where, message string) {
	r.HadError = true
	r.messages = append(r.messages, fmt.Sprintf("[line %d] Error%s: %s", line, where, message))
}

// Messages returns every diagnostic accumulated so far, in report order.
func (r *Reporter) Messages() []string {
	return r.messages
}
