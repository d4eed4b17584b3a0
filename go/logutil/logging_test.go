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

package logutil

import (
	"log/slog"
	"os"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minilex/minilex/go/viperutil"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"ERROR", slog.LevelError},
		{"", slog.LevelInfo},
		{"bogus", slog.LevelInfo},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, parseLevel(tt.input), "input %q", tt.input)
	}
}

func TestParseOutput(t *testing.T) {
	assert.Equal(t, os.Stdout, parseOutput("stdout"))
	assert.Equal(t, os.Stderr, parseOutput("stderr"))
	assert.Equal(t, os.Stderr, parseOutput(""))
	assert.Equal(t, os.Stderr, parseOutput("/nonexistent-dir/nope.log"),
		"unwritable path falls back to stderr")
}

func TestLoggerDefaults(t *testing.T) {
	reg := viperutil.NewRegistry()
	lg := NewLogger(reg)

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	lg.RegisterFlags(fs)
	require.NoError(t, fs.Parse([]string{"--log-level", "debug"}))

	assert.Equal(t, "debug", lg.logLevel.Get())
	assert.Equal(t, "text", lg.logFormat.Get())
	assert.Equal(t, "stderr", lg.logOutput.Get())
}

func TestSetupLoggingRunsOnce(t *testing.T) {
	prev := slog.Default()
	defer slog.SetDefault(prev)

	reg := viperutil.NewRegistry()
	lg := NewLogger(reg)

	lg.SetupLogging()
	first := lg.GetLogger()
	require.NotNil(t, first)

	lg.SetupLogging()
	assert.Same(t, first, lg.GetLogger(), "second setup must not replace the logger")
}

func TestGetLoggerBeforeSetup(t *testing.T) {
	reg := viperutil.NewRegistry()
	lg := NewLogger(reg)
	assert.NotNil(t, lg.GetLogger(), "falls back to slog default")
}
