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

// Package scanner turns Mini source text into a flat sequence of classified
// tokens with source positions, for consumption by a parser.
package scanner

import "unicode"

// Classification tables. These are process-wide constants and are never
// mutated after init.
var (
	keywords = map[string]struct{}{
		"var":   {},
		"print": {},
	}

	singleCharSymbols = map[rune]struct{}{
		'+': {}, '-': {}, '*': {}, '/': {}, '%': {},
		'=': {}, ';': {}, ',': {}, '.': {}, ':': {},
	}

	twoCharSymbols = map[string]struct{}{
		"==": {}, "!=": {}, "<=": {}, ">=": {},
	}
)

// Scanner performs a single left-to-right pass over one input string. It
// holds mutable cursor state with no internal locking: an instance must not
// be shared across goroutines, and it is consumed by exactly one call to
// Scan.
type Scanner struct {
	ctx *scanContext
}

// New creates a Scanner over the complete source text.
func New(input string) *Scanner {
	return &Scanner{ctx: newScanContext(input)}
}

// Scan tokenizes the whole input. The returned sequence always ends with
// exactly one EndOfInput token positioned at the final cursor location, or
// (1,1) for empty input. On the first unrecognized or malformed construct it
// returns a *LexicalError and no tokens; the scanner never prints and never
// recovers.
func (s *Scanner) Scan() ([]Token, error) {
	var tokens []Token
	for {
		s.skipWhitespace()
		if s.ctx.atEnd() {
			break
		}

		tok, err := s.next()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
	}

	return append(tokens, NewToken(EndOfInput, "", s.ctx.line, s.ctx.column)), nil
}

// next scans one token. The dispatch order is part of the contract: the
// identifier-start check runs before the symbol checks, and the two-character
// symbol lookup runs before the single-character one so that "==" is never
// split into two "=" tokens.
func (s *Scanner) next() (Token, error) {
	c := s.ctx.peek()
	line, col := s.ctx.line, s.ctx.column

	switch {
	case isIdentifierStart(c):
		lexeme := s.readIdentifier()
		if _, ok := keywords[lexeme]; ok {
			return NewToken(Keyword, lexeme, line, col), nil
		}
		return NewToken(Identifier, lexeme, line, col), nil

	case unicode.IsDigit(c):
		lexeme, err := s.readNumber()
		if err != nil {
			return Token{}, err
		}
		return NewToken(Number, lexeme, line, col), nil

	case c == '(' || c == ')':
		s.ctx.advance()
		return NewToken(Paren, string(c), line, col), nil

	case c == '{' || c == '}':
		s.ctx.advance()
		return NewToken(Brace, string(c), line, col), nil
	}

	// The two-character lookup is attempted only when more than one rune
	// remains.
	if two := s.lookahead2(); two != "" {
		if _, ok := twoCharSymbols[two]; ok {
			s.ctx.advance()
			s.ctx.advance()
			return NewToken(Symbol, two, line, col), nil
		}
	}

	if _, ok := singleCharSymbols[c]; ok {
		s.ctx.advance()
		return NewToken(Symbol, string(c), line, col), nil
	}

	return Token{}, s.invalidChar(c, line, col)
}

// skipWhitespace consumes a maximal run of spaces, tabs, carriage returns,
// and newlines.
func (s *Scanner) skipWhitespace() {
	for !s.ctx.atEnd() {
		switch s.ctx.peek() {
		case ' ', '\t', '\r', '\n':
			s.ctx.advance()
		default:
			return
		}
	}
}

// readIdentifier consumes a maximal run of identifier characters. The first
// rune was already validated by the caller.
func (s *Scanner) readIdentifier() string {
	start := s.ctx.pos
	s.ctx.advance()
	for !s.ctx.atEnd() && isIdentifierPart(s.ctx.peek()) {
		s.ctx.advance()
	}
	return s.ctx.text(start)
}

// readNumber consumes a maximal run of digits, optionally followed by one
// decimal point and a further run of digits. A second dot terminates the
// number without being consumed. A consumed decimal point must be followed
// by a digit: a trailing bare "12." is an error, not a Number token plus a
// "." symbol. At end of input the dot itself is reported at the cursor
// position.
func (s *Scanner) readNumber() (string, error) {
	start := s.ctx.pos
	seenDot := false

	for !s.ctx.atEnd() {
		c := s.ctx.peek()
		switch {
		case unicode.IsDigit(c):
			s.ctx.advance()
		case c == '.' && !seenDot:
			seenDot = true
			s.ctx.advance()
			if s.ctx.atEnd() {
				return "", s.invalidChar('.', s.ctx.line, s.ctx.column)
			}
			if !unicode.IsDigit(s.ctx.peek()) {
				return "", s.invalidChar(s.ctx.peek(), s.ctx.line, s.ctx.column)
			}
		default:
			return s.ctx.text(start), nil
		}
	}
	return s.ctx.text(start), nil
}

// lookahead2 returns the next two runes, or "" when fewer than two remain.
func (s *Scanner) lookahead2() string {
	if s.ctx.atEnd() || s.ctx.atEndNext() {
		return ""
	}
	return string([]rune{s.ctx.peek(), s.ctx.peekNext()})
}

func (s *Scanner) invalidChar(c rune, line, column int) error {
	return &LexicalError{
		Char:       c,
		Line:       line,
		Column:     column,
		SourceLine: s.ctx.sourceLine(line),
	}
}

// isIdentifierStart reports whether a rune can begin an identifier: any
// Unicode letter or underscore.
func isIdentifierStart(c rune) bool {
	return unicode.IsLetter(c) || c == '_'
}

// isIdentifierPart reports whether a rune can continue an identifier.
func isIdentifierPart(c rune) bool {
	return unicode.IsLetter(c) || unicode.IsDigit(c) || c == '_'
}
