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
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/minilex/minilex/go/scanner"
)

func addWatchCommand(root *cobra.Command, mc *MinilexCommand) {
	watch := &cobra.Command{
		Use:   "watch <file>",
		Short: "Re-tokenize a file whenever it changes",
		Long: `watch tokenizes the named file, then keeps watching it and prints a
fresh token stream after every change. Lexical errors are printed as
diagnostics without stopping the watch. Interrupt to stop.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return mc.runWatch(cmd, args[0])
		},
	}

	root.AddCommand(watch)
}

func (mc *MinilexCommand) runWatch(cmd *cobra.Command, path string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory, not the file: editors that replace the file on
	// save would otherwise drop the watch.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("watching %s: %w", path, err)
	}

	lg := mc.lg.GetLogger()
	lg.Info("watching for changes", "path", path)
	mc.scanAndReport(cmd, path)

	for {
		select {
		case <-cmd.Context().Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != filepath.Clean(path) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				lg.Debug("file changed", "op", event.Op.String())
				mc.scanAndReport(cmd, path)
			}
		case werr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			lg.Warn("watch error", "error", werr)
		}
	}
}

// scanAndReport tokenizes one snapshot of the file. Failures are reported
// and swallowed so the watch keeps running.
func (mc *MinilexCommand) scanAndReport(cmd *cobra.Command, path string) {
	lg := mc.lg.GetLogger()

	data, err := afero.ReadFile(mc.fs, path)
	if err != nil {
		lg.Warn("read failed", "path", path, "error", err)
		return
	}

	tokens, err := scanner.New(string(data)).Scan()
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
		return
	}

	if err := writeTokens(cmd.OutOrStdout(), tokens, mc.format.Get(), mc.includeEOF.Get()); err != nil {
		lg.Warn("output failed", "error", err)
		return
	}
	lg.Info("scanned", "path", path, "tokens", len(tokens))
}
