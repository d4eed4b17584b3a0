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
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/minilex/minilex/go/scanner"
)

// errLexicalFailure signals main to exit non-zero after the diagnostic has
// already been printed.
var errLexicalFailure = errors.New("lexical analysis failed")

func addScanCommand(root *cobra.Command, mc *MinilexCommand) {
	scan := &cobra.Command{
		Use:   "scan [file]",
		Short: "Tokenize Mini source text",
		Long: `scan tokenizes the named file, or, with no argument, reads lines from
standard input until a line equal to the sentinel (default "EOF") and
tokenizes the accumulated text.

On success the token stream is printed to standard output. On a lexical
error the diagnostic is printed to standard error and the command exits
with a non-zero status.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return mc.runScan(cmd, args)
		},
	}

	root.AddCommand(scan)
}

func (mc *MinilexCommand) runScan(cmd *cobra.Command, args []string) error {
	var source string
	if len(args) == 1 {
		data, err := afero.ReadFile(mc.fs, args[0])
		if err != nil {
			return fmt.Errorf("reading %s: %w", args[0], err)
		}
		source = string(data)
	} else {
		var err error
		source, err = readUntilSentinel(cmd.InOrStdin(), cmd.OutOrStdout(), mc.sentinel.Get())
		if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}
	}

	tokens, err := scanner.New(source).Scan()
	if err != nil {
		return mc.reportScanError(cmd.ErrOrStderr(), err)
	}

	return writeTokens(cmd.OutOrStdout(), tokens, mc.format.Get(), mc.includeEOF.Get())
}

// reportScanError prints the lexical diagnostic verbatim to the error stream
// and converts the error into the terse failure main exits on. The scanner
// itself never prints; presentation happens only here.
func (mc *MinilexCommand) reportScanError(w io.Writer, err error) error {
	var lexErr *scanner.LexicalError
	if errors.As(err, &lexErr) {
		fmt.Fprintln(w, lexErr.Error())
		return errLexicalFailure
	}
	return err
}

// readUntilSentinel collects lines from r until a line equal to the sentinel
// or end of input, re-joining them with newlines.
func readUntilSentinel(r io.Reader, w io.Writer, sentinel string) (string, error) {
	fmt.Fprintf(w, "Paste your source text. End with a line containing only: %s\n", sentinel)

	var sb strings.Builder
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()
		if line == sentinel {
			break
		}
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	return sb.String(), sc.Err()
}
