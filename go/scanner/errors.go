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
	"fmt"
	"strings"
	"unicode"
)

// errorMarker prefixes every lexical diagnostic.
const errorMarker = "❌"

// LexicalError is the single error kind the scanner produces: an input
// character that starts no valid token, or a decimal point with no digit
// after it. The first error aborts the scan; there is no recovery and no
// partial token sequence.
type LexicalError struct {
	Char       rune
	Line       int // 1-based
	Column     int // 1-based
	SourceLine string
}

// Error renders the full diagnostic: the offending character and position,
// the text of the offending source line, and a caret aligned under the
// offending column.
func (e *LexicalError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s lexical error: invalid character '%s' at line %d, column %d\n",
		errorMarker, printableChar(e.Char), e.Line, e.Column)
	sb.WriteString(e.SourceLine)
	sb.WriteByte('\n')
	sb.WriteString(caretPointer(e.Column))
	return sb.String()
}

// caretPointer builds the pointer line: column-1 spaces followed by a caret.
func caretPointer(column int) string {
	if column < 1 {
		column = 1
	}
	return strings.Repeat(" ", column-1) + "^"
}

// printableChar renders control characters as a hex escape so the diagnostic
// stays on one line.
func printableChar(c rune) string {
	if unicode.IsControl(c) {
		return fmt.Sprintf(`\u%04x`, c)
	}
	return string(c)
}
