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
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/minilex/minilex/go/logutil"
	"github.com/minilex/minilex/go/viperutil"
)

// MinilexCommand holds the configuration shared by all minilex subcommands.
type MinilexCommand struct {
	reg *viperutil.Registry
	vc  *viperutil.ViperConfig
	lg  *logutil.Logger

	// fs abstracts file access so command tests can run on an in-memory
	// filesystem.
	fs afero.Fs

	sentinel   viperutil.Value[string]
	format     viperutil.Value[string]
	includeEOF viperutil.Value[bool]
}

// GetRootCommand creates and returns the root command for minilex with all
// subcommands attached.
func GetRootCommand() *cobra.Command {
	return getRootCommand(afero.NewOsFs())
}

func getRootCommand(fs afero.Fs) *cobra.Command {
	reg := viperutil.NewRegistry()
	mc := &MinilexCommand{
		reg: reg,
		vc:  viperutil.NewViperConfig(reg),
		lg:  logutil.NewLogger(reg),
		fs:  fs,
		sentinel: viperutil.Configure(reg, "sentinel", viperutil.Options[string]{
			Default:  "EOF",
			EnvVars:  []string{"ML_SENTINEL"},
			FlagName: "sentinel",
		}),
		format: viperutil.Configure(reg, "format", viperutil.Options[string]{
			Default:  "text",
			FlagName: "format",
		}),
		includeEOF: viperutil.Configure(reg, "include-eof", viperutil.Options[bool]{
			FlagName: "include-eof",
		}),
	}

	root := &cobra.Command{
		Use:   "minilex",
		Short: "Tokenizer for the Mini scripting language",
		Long: `minilex converts Mini source text into a flat stream of classified
tokens with line and column positions.

Get started with:
  minilex scan program.mini     # Tokenize a file
  minilex scan                  # Paste source, end with a line "EOF"
  minilex watch program.mini    # Re-tokenize whenever the file changes

Configuration:
  minilex searches for a config file named 'minilex' (.yaml, .yml, .json,
  .toml) in the directories given by --config-path, or uses the file named
  by --config-file. Flags override config file values.`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Silence usage for application errors; flag errors still show it.
			cmd.SilenceUsage = true

			if err := mc.vc.LoadConfig(mc.reg); err != nil {
				return err
			}
			mc.lg.SetupLogging()
			return nil
		},
	}

	mc.vc.RegisterFlags(root.PersistentFlags())
	mc.lg.RegisterFlags(root.PersistentFlags())

	// Scan options are persistent so they work for scan and watch alike.
	root.PersistentFlags().String("sentinel", mc.sentinel.Default(), "Line that ends interactive input.")
	root.PersistentFlags().String("format", mc.format.Default(), "Token output format (text, json, yaml).")
	root.PersistentFlags().Bool("include-eof", mc.includeEOF.Default(), "Include the trailing end-of-input token in the output.")
	viperutil.BindFlags(root.PersistentFlags(), mc.sentinel, mc.format, mc.includeEOF)

	addScanCommand(root, mc)
	addWatchCommand(root, mc)

	return root
}
