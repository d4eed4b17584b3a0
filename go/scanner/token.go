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

import "fmt"

// TokenKind classifies a scanned token.
type TokenKind int

const (
	// Identifier is a name: a letter or underscore followed by letters,
	// digits, and underscores, that is not a reserved word.
	Identifier TokenKind = iota
	// Keyword is a reserved word of the language (var, print).
	Keyword
	// Number is an integer or decimal literal (123, 45.67).
	Number
	// Symbol is a one- or two-character operator or punctuation mark.
	Symbol
	// Paren is "(" or ")"; the lexeme tells which.
	Paren
	// Brace is "{" or "}"; the lexeme tells which.
	Brace
	// EndOfInput terminates every token sequence exactly once.
	EndOfInput
)

// String returns the kind name used in token dumps.
func (k TokenKind) String() string {
	switch k {
	case Identifier:
		return "IDENTIFIER"
	case Keyword:
		return "KEYWORD"
	case Number:
		return "NUMBER"
	case Symbol:
		return "SYMBOL"
	case Paren:
		return "PAREN"
	case Brace:
		return "BRACE"
	case EndOfInput:
		return "EOF"
	default:
		return fmt.Sprintf("TokenKind(%d)", int(k))
	}
}

// Token is one classified unit of source text. Line and Column are 1-based
// and point at the first character of the lexeme. Tokens are values and are
// never mutated after creation.
type Token struct {
	Kind   TokenKind
	Lexeme string
	Line   int
	Column int
}

// NewToken creates a token at the given source position.
func NewToken(kind TokenKind, lexeme string, line, column int) Token {
	return Token{
		Kind:   kind,
		Lexeme: lexeme,
		Line:   line,
		Column: column,
	}
}

func (t Token) String() string {
	return fmt.Sprintf("<%s, '%s', line=%d, col=%d>", t.Kind, t.Lexeme, t.Line, t.Column)
}

// IsKeyword reports whether the token is a reserved word.
func (t Token) IsKeyword() bool {
	return t.Kind == Keyword
}

// IsSymbol reports whether the token is an operator or punctuation mark,
// optionally one of the given lexemes.
func (t Token) IsSymbol(lexemes ...string) bool {
	if t.Kind != Symbol {
		return false
	}
	if len(lexemes) == 0 {
		return true
	}
	for _, lex := range lexemes {
		if t.Lexeme == lex {
			return true
		}
	}
	return false
}

// IsEnd reports whether the token marks the end of input.
func (t Token) IsEnd() bool {
	return t.Kind == EndOfInput
}
