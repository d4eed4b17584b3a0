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

package command

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/minilex/minilex/go/scanner"
)

// tokenRecord is the serialized shape of a token for json/yaml output.
type tokenRecord struct {
	Kind   string `json:"kind" yaml:"kind"`
	Lexeme string `json:"lexeme" yaml:"lexeme"`
	Line   int    `json:"line" yaml:"line"`
	Column int    `json:"column" yaml:"column"`
}

// writeTokens renders the token stream in the requested format. The trailing
// end-of-input token is dropped unless includeEOF is set.
func writeTokens(w io.Writer, tokens []scanner.Token, format string, includeEOF bool) error {
	if !includeEOF && len(tokens) > 0 && tokens[len(tokens)-1].IsEnd() {
		tokens = tokens[:len(tokens)-1]
	}

	switch format {
	case "", "text":
		for _, tok := range tokens {
			fmt.Fprintln(w, tok)
		}
		return nil
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(toRecords(tokens))
	case "yaml":
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(toRecords(tokens)); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q (expected text, json, or yaml)", format)
	}
}

func toRecords(tokens []scanner.Token) []tokenRecord {
	records := make([]tokenRecord, len(tokens))
	for i, tok := range tokens {
		records[i] = tokenRecord{
			Kind:   tok.Kind.String(),
			Lexeme: tok.Lexeme,
			Line:   tok.Line,
			Column: tok.Column,
		}
	}
	return records
}
