package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fxlang/fx/fxerr"
	"github.com/fxlang/fx/token"
)

type expectedToken struct {
	Kind   token.Kind
	Lexeme string
}

func scan(t *testing.T, source string) ([]*token.Token, *fxerr.Reporter) {
	t.Helper()
	reporter := fxerr.NewReporter()
	toks := New(source, reporter).ScanTokens()
	return toks, reporter
}

func TestScanTokens_Punctuation(t *testing.T) {
	tests := []struct {
		Input    string
		Expected []expectedToken
	}{
		{
			Input: `(){},.+;*`,
			Expected: []expectedToken{
				{token.LeftParen, "("},
				{token.RightParen, ")"},
				{token.LeftBrace, "{"},
				{token.RightBrace, "}"},
				{token.Comma, ","},
				{token.Dot, "."},
				{token.Plus, "+"},
				{token.Semicolon, ";"},
				{token.Star, "*"},
			},
		},
		{
			Input: `! != = == < <= > >= - ->`,
			Expected: []expectedToken{
				{token.Bang, "!"},
				{token.BangEqual, "!="},
				{token.Equal, "="},
				{token.EqualEqual, "=="},
				{token.Less, "<"},
				{token.LessEqual, "<="},
				{token.Greater, ">"},
				{token.GreaterEqual, ">="},
				{token.Minus, "-"},
				{token.Gives, "->"},
			},
		},
	}

	for _, test := range tests {
		toks, reporter := scan(t, test.Input)
		assert.False(t, reporter.HadError)
		// drop the trailing Eof
		toks = toks[:len(toks)-1]
		assert.Equal(t, len(test.Expected), len(toks))
		for i, want := range test.Expected {
			assert.Equal(t, want.Kind, toks[i].Kind)
			assert.Equal(t, want.Lexeme, toks[i].Lexeme)
		}
	}
}

func TestScanTokens_KeywordsAndIdentifiers(t *testing.T) {
	toks, reporter := scan(t, `fn class super this var while for if else and or return print true false nil notAKeyword`)
	assert.False(t, reporter.HadError)
	want := []token.Kind{
		token.Fn, token.Class, token.Super, token.This, token.Var, token.While,
		token.For, token.If, token.Else, token.And, token.Or, token.Return,
		token.Print, token.True, token.False, token.Nil, token.Identifier,
	}
	assert.Equal(t, len(want)+1, len(toks)) // +1 for Eof
	for i, k := range want {
		assert.Equal(t, k, toks[i].Kind)
	}
}

func TestScanTokens_NumbersAndStrings(t *testing.T) {
	toks, reporter := scan(t, `123 3.14 "hello world"`)
	assert.False(t, reporter.HadError)
	assert.Equal(t, token.Number, toks[0].Kind)
	assert.Equal(t, "123", toks[0].Lexeme)
	assert.Equal(t, token.Number, toks[1].Kind)
	assert.Equal(t, "3.14", toks[1].Lexeme)
	assert.Equal(t, token.String, toks[2].Kind)
	assert.Equal(t, "hello world", toks[2].Lexeme)
}

func TestScanTokens_LineCounting(t *testing.T) {
	toks, reporter := scan(t, "var a = 1;\nvar b = 2;\n")
	assert.False(t, reporter.HadError)
	assert.Equal(t, 1, toks[0].Line)
	// "var" on line 2 is the 6th token (var a = 1 ;)
	assert.Equal(t, 2, toks[5].Line)
}

func TestScanTokens_LineComment(t *testing.T) {
	toks, reporter := scan(t, "// a comment\nvar a = 1;")
	assert.False(t, reporter.HadError)
	assert.Equal(t, token.Var, toks[0].Kind)
	assert.Equal(t, 2, toks[0].Line)
}

func TestScanTokens_UnterminatedStringReportsError(t *testing.T) {
	_, reporter := scan(t, `"never closed`)
	assert.True(t, reporter.HadError)
	assert.Contains(t, reporter.Messages()[0], "Unterminated string.")
}

func TestScanTokens_UnexpectedCharacterReportsErrorAndContinues(t *testing.T) {
	toks, reporter := scan(t, `var a = 1; @ var b = 2;`)
	assert.True(t, reporter.HadError)
	assert.Contains(t, reporter.Messages()[0], "Unexpected character.")
	// scanning continued past the bad character
	var sawSecondVar bool
	for _, tok := range toks {
		if tok.Kind == token.Identifier && tok.Lexeme == "b" {
			sawSecondVar = true
		}
	}
	assert.True(t, sawSecondVar)
}
