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

// Package logutil configures the process-wide slog logger from command-line
// flags and config values.
package logutil

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/spf13/pflag"

	"github.com/minilex/minilex/go/viperutil"
)

// Logger holds the logging configuration for one command tree and the slog
// logger built from it.
type Logger struct {
	logLevel  viperutil.Value[string]
	logFormat viperutil.Value[string]
	logOutput viperutil.Value[string]

	once   sync.Once
	mu     sync.Mutex
	logger *slog.Logger
}

// NewLogger registers the logging keys on the registry.
func NewLogger(reg *viperutil.Registry) *Logger {
	return &Logger{
		logLevel: viperutil.Configure(reg, "log.level", viperutil.Options[string]{
			Default:  "info",
			FlagName: "log-level",
		}),
		logFormat: viperutil.Configure(reg, "log.format", viperutil.Options[string]{
			Default:  "text",
			FlagName: "log-format",
		}),
		logOutput: viperutil.Configure(reg, "log.output", viperutil.Options[string]{
			Default:  "stderr",
			FlagName: "log-output",
		}),
	}
}

// RegisterFlags registers logging-related command line flags. This must be
// called before the command parses its flags.
func (lg *Logger) RegisterFlags(fs *pflag.FlagSet) {
	fs.String("log-level", lg.logLevel.Default(), "Log level (debug, info, warn, error)")
	fs.String("log-format", lg.logFormat.Default(), "Log format (json, text)")
	fs.String("log-output", lg.logOutput.Default(), "Log output (stdout, stderr, or file path)")
	viperutil.BindFlags(fs, lg.logLevel, lg.logFormat, lg.logOutput)
}

// SetupLogging initializes the logger based on the configured values and
// installs it as the slog default. It runs at most once; it should be called
// after flags are parsed but before any logging occurs.
func (lg *Logger) SetupLogging() {
	lg.once.Do(func() {
		level := parseLevel(lg.logLevel.Get())
		output := parseOutput(lg.logOutput.Get())

		var handler slog.Handler
		switch strings.ToLower(lg.logFormat.Get()) {
		case "json":
			handler = slog.NewJSONHandler(output, &slog.HandlerOptions{Level: level})
		default:
			handler = slog.NewTextHandler(output, &slog.HandlerOptions{Level: level})
		}

		logger := slog.New(handler)
		slog.SetDefault(logger)

		lg.mu.Lock()
		lg.logger = logger
		lg.mu.Unlock()
	})
}

// GetLogger returns the configured logger, or the slog default when
// SetupLogging has not run yet.
func (lg *Logger) GetLogger() *slog.Logger {
	lg.mu.Lock()
	defer lg.mu.Unlock()
	if lg.logger == nil {
		return slog.Default()
	}
	return lg.logger
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func parseOutput(s string) io.Writer {
	switch strings.ToLower(s) {
	case "stdout":
		return os.Stdout
	case "", "stderr":
		return os.Stderr
	default:
		file, err := os.OpenFile(s, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return os.Stderr
		}
		return file
	}
}
