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

import "strings"

// scanContext is the cursor over the input. It tracks the rune offset plus
// the 1-based line and column of the rune the cursor points at. Consuming a
// newline increments line and resets column to 1; consuming anything else
// increments column by one. The offset never moves backwards.
type scanContext struct {
	src    []rune
	lines  []string // split source, kept for error diagnostics
	pos    int
	line   int
	column int
}

func newScanContext(input string) *scanContext {
	return &scanContext{
		src:    []rune(input),
		lines:  strings.Split(input, "\n"),
		line:   1,
		column: 1,
	}
}

func (ctx *scanContext) atEnd() bool {
	return ctx.pos >= len(ctx.src)
}

// atEndNext reports whether fewer than two runes remain.
func (ctx *scanContext) atEndNext() bool {
	return ctx.pos+1 >= len(ctx.src)
}

// peek returns the rune under the cursor. Callers must check atEnd first.
func (ctx *scanContext) peek() rune {
	return ctx.src[ctx.pos]
}

// peekNext returns the rune after the cursor. Callers must check atEndNext
// first.
func (ctx *scanContext) peekNext() rune {
	return ctx.src[ctx.pos+1]
}

// advance consumes one rune and updates the line/column bookkeeping.
func (ctx *scanContext) advance() rune {
	r := ctx.src[ctx.pos]
	ctx.pos++
	if r == '\n' {
		ctx.line++
		ctx.column = 1
	} else {
		ctx.column++
	}
	return r
}

// text returns the consumed input between start and the current offset.
func (ctx *scanContext) text(start int) string {
	return string(ctx.src[start:ctx.pos])
}

// sourceLine returns the full text of a 1-based source line, or "" when the
// line index is out of range.
func (ctx *scanContext) sourceLine(line int) string {
	if line < 1 || line > len(ctx.lines) {
		return ""
	}
	return ctx.lines[line-1]
}
