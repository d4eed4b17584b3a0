/*
Copyright 2026 The Minilex Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// minilex tokenizes Mini source text and prints the resulting token stream,
// for inspecting what the scanner hands to a parser.
package main

import (
	"log/slog"
	"os"

	"github.com/minilex/minilex/go/cmd/minilex/command"
)

func main() {
	if err := command.GetRootCommand().Execute(); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}
