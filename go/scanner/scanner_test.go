// Copyright 2026 The Minilex Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package scanner

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// expected is a compact (kind, lexeme) pair for table-driven scan tests.
type expected struct {
	kind   TokenKind
	lexeme string
}

func scanAll(t *testing.T, input string) []Token {
	t.Helper()
	tokens, err := New(input).Scan()
	require.NoError(t, err, "Scan should succeed for input %q", input)
	return tokens
}

func TestScanBasicConstructs(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []expected
	}{
		{
			name:  "keywords and identifiers",
			input: "var x print _tmp varx",
			expected: []expected{
				{Keyword, "var"},
				{Identifier, "x"},
				{Keyword, "print"},
				{Identifier, "_tmp"},
				{Identifier, "varx"},
			},
		},
		{
			name:  "integer and decimal numbers",
			input: "123 45.67 0",
			expected: []expected{
				{Number, "123"},
				{Number, "45.67"},
				{Number, "0"},
			},
		},
		{
			name:  "parens and braces",
			input: "(){}",
			expected: []expected{
				{Paren, "("},
				{Paren, ")"},
				{Brace, "{"},
				{Brace, "}"},
			},
		},
		{
			name:  "single character symbols",
			input: "+ - * / % = ; , . :",
			expected: []expected{
				{Symbol, "+"}, {Symbol, "-"}, {Symbol, "*"}, {Symbol, "/"},
				{Symbol, "%"}, {Symbol, "="}, {Symbol, ";"}, {Symbol, ","},
				{Symbol, "."}, {Symbol, ":"},
			},
		},
		{
			name:  "two character symbols",
			input: "== != <= >=",
			expected: []expected{
				{Symbol, "=="}, {Symbol, "!="}, {Symbol, "<="}, {Symbol, ">="},
			},
		},
		{
			name:  "unicode identifier",
			input: "café π",
			expected: []expected{
				{Identifier, "café"},
				{Identifier, "π"},
			},
		},
		{
			name:  "identifier with digits",
			input: "x1 a_2b",
			expected: []expected{
				{Identifier, "x1"},
				{Identifier, "a_2b"},
			},
		},
		{
			name:  "second dot terminates a decimal",
			input: "1.5.2",
			expected: []expected{
				{Number, "1.5"},
				{Symbol, "."},
				{Number, "2"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := scanAll(t, tt.input)
			require.Len(t, tokens, len(tt.expected)+1, "token count mismatch")

			for i, want := range tt.expected {
				assert.Equal(t, want.kind, tokens[i].Kind, "token %d kind", i)
				assert.Equal(t, want.lexeme, tokens[i].Lexeme, "token %d lexeme", i)
			}
			assert.Equal(t, EndOfInput, tokens[len(tokens)-1].Kind, "last token must be EndOfInput")
		})
	}
}

func TestScanExampleProgram(t *testing.T) {
	tokens := scanAll(t, "var x = 10;\nprint x;")

	want := []expected{
		{Keyword, "var"},
		{Identifier, "x"},
		{Symbol, "="},
		{Number, "10"},
		{Symbol, ";"},
		{Keyword, "print"},
		{Identifier, "x"},
		{Symbol, ";"},
		{EndOfInput, ""},
	}
	require.Len(t, tokens, len(want))
	for i, w := range want {
		assert.Equal(t, w.kind, tokens[i].Kind, "token %d kind", i)
		assert.Equal(t, w.lexeme, tokens[i].Lexeme, "token %d lexeme", i)
	}

	// The print keyword starts the second line.
	assert.Equal(t, 2, tokens[5].Line)
	assert.Equal(t, 1, tokens[5].Column)
}

func TestScanPositions(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		index  int
		line   int
		column int
	}{
		{"first token", "var x", 0, 1, 1},
		{"token after spaces", "   foo", 0, 1, 4},
		{"token after tab", "\tfoo", 0, 1, 2},
		{"token on second line", "a\nb", 1, 2, 1},
		{"token after newline and indent", "a\n  b", 1, 2, 3},
		{"two char symbol position", "x ==", 1, 1, 3},
		{"crlf line ending", "a\r\nb", 1, 2, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := scanAll(t, tt.input)
			require.Greater(t, len(tokens), tt.index)
			assert.Equal(t, tt.line, tokens[tt.index].Line, "line")
			assert.Equal(t, tt.column, tokens[tt.index].Column, "column")
		})
	}
}

func TestScanEmptyInput(t *testing.T) {
	tokens := scanAll(t, "")
	require.Len(t, tokens, 1)
	assert.Equal(t, EndOfInput, tokens[0].Kind)
	assert.Equal(t, "", tokens[0].Lexeme)
	assert.Equal(t, 1, tokens[0].Line)
	assert.Equal(t, 1, tokens[0].Column)
}

func TestScanWhitespaceOnlyInput(t *testing.T) {
	tokens := scanAll(t, " \t\r\n ")
	require.Len(t, tokens, 1)
	assert.Equal(t, EndOfInput, tokens[0].Kind)
	assert.Equal(t, 2, tokens[0].Line)
	assert.Equal(t, 2, tokens[0].Column)
}

func TestScanEndOfInputIsUnique(t *testing.T) {
	tokens := scanAll(t, "var x = 1;")
	count := 0
	for _, tok := range tokens {
		if tok.Kind == EndOfInput {
			count++
		}
	}
	assert.Equal(t, 1, count, "exactly one EndOfInput token")
	assert.True(t, tokens[len(tokens)-1].IsEnd(), "EndOfInput must be last")
}

// The concatenated lexemes must reconstruct the non-whitespace content of the
// input under the scanner's own tokenization rules.
func TestScanRoundTrip(t *testing.T) {
	inputs := []string{
		"var x = 10;\nprint x;",
		"a+b*(c-d)%e",
		"x<=1 != y>=2",
		"{foo:1.25, bar:2}",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			tokens := scanAll(t, input)

			var sb strings.Builder
			for _, tok := range tokens {
				sb.WriteString(tok.Lexeme)
			}

			stripped := strings.Map(func(r rune) rune {
				switch r {
				case ' ', '\t', '\r', '\n':
					return -1
				}
				return r
			}, input)
			assert.Equal(t, stripped, sb.String())
		})
	}
}

func TestScanKeywordDisjointness(t *testing.T) {
	tests := []struct {
		lexeme string
		kind   TokenKind
	}{
		{"var", Keyword},
		{"print", Keyword},
		{"Var", Identifier},
		{"PRINT", Identifier},
		{"variable", Identifier},
		{"printx", Identifier},
		{"_var", Identifier},
	}

	for _, tt := range tests {
		t.Run(tt.lexeme, func(t *testing.T) {
			tokens := scanAll(t, tt.lexeme)
			require.Len(t, tokens, 2)
			assert.Equal(t, tt.kind, tokens[0].Kind)
			assert.Equal(t, tt.lexeme, tokens[0].Lexeme)
		})
	}
}

func TestScanTwoCharSymbolPriority(t *testing.T) {
	tokens := scanAll(t, "==")
	require.Len(t, tokens, 2)
	assert.Equal(t, Symbol, tokens[0].Kind)
	assert.Equal(t, "==", tokens[0].Lexeme)

	// A bare "=" at end of input stays a single-character symbol.
	tokens = scanAll(t, "x =")
	require.Len(t, tokens, 3)
	assert.Equal(t, "=", tokens[1].Lexeme)
}

func TestScanInvalidCharacter(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		char   rune
		line   int
		column int
	}{
		{"at sign", "@", '@', 1, 1},
		{"hash after identifier", "foo #", '#', 1, 5},
		{"on second line", "var x;\n?", '?', 2, 1},
		{"control character", "\x07", '\a', 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := New(tt.input).Scan()
			require.Error(t, err)
			assert.Nil(t, tokens, "no partial sequence on error")

			var lexErr *LexicalError
			require.ErrorAs(t, err, &lexErr)
			assert.Equal(t, tt.char, lexErr.Char)
			assert.Equal(t, tt.line, lexErr.Line)
			assert.Equal(t, tt.column, lexErr.Column)
		})
	}
}

func TestScanMalformedNumbers(t *testing.T) {
	t.Run("valid decimal", func(t *testing.T) {
		tokens := scanAll(t, "12.5")
		require.Len(t, tokens, 2)
		assert.Equal(t, Number, tokens[0].Kind)
		assert.Equal(t, "12.5", tokens[0].Lexeme)
	})

	t.Run("trailing dot at end of input", func(t *testing.T) {
		tokens, err := New("12.").Scan()
		require.Error(t, err)
		assert.Nil(t, tokens)

		var lexErr *LexicalError
		require.ErrorAs(t, err, &lexErr)
		// At end of input the dot itself is reported at the cursor position.
		assert.Equal(t, '.', lexErr.Char)
		assert.Equal(t, 1, lexErr.Line)
		assert.Equal(t, 4, lexErr.Column)
	})

	t.Run("double dot", func(t *testing.T) {
		tokens, err := New("12..3").Scan()
		require.Error(t, err)
		assert.Nil(t, tokens)

		var lexErr *LexicalError
		require.ErrorAs(t, err, &lexErr)
		// The second dot is the character after the consumed decimal point.
		assert.Equal(t, '.', lexErr.Char)
		assert.Equal(t, 1, lexErr.Line)
		assert.Equal(t, 4, lexErr.Column)
	})

	t.Run("letter after dot", func(t *testing.T) {
		tokens, err := New("3.x").Scan()
		require.Error(t, err)
		assert.Nil(t, tokens)

		var lexErr *LexicalError
		require.ErrorAs(t, err, &lexErr)
		assert.Equal(t, 'x', lexErr.Char)
		assert.Equal(t, 3, lexErr.Column)
	})
}

func TestScannerIsSingleUse(t *testing.T) {
	s := New("var x")
	first, err := s.Scan()
	require.NoError(t, err)
	require.Len(t, first, 3)

	// A second call sees an exhausted cursor and yields only EndOfInput.
	second, err := s.Scan()
	require.NoError(t, err)
	require.Len(t, second, 1)
	assert.Equal(t, EndOfInput, second[0].Kind)
}
