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

package viperutil

import (
	"log/slog"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Flaggable is the non-generic surface of a Value that BindFlags needs.
type Flaggable interface {
	// Key is the configuration key the value is registered under.
	Key() string
	// FlagName is the command-line flag bound to the key, or "" if none.
	FlagName() string

	bind(fs *pflag.FlagSet)
}

// Value is a typed handle on one registered configuration key. Get resolves
// through the usual viper precedence: flag, environment variable, config
// file, default.
type Value[T any] interface {
	Flaggable

	Default() T
	Get() T
}

// Options configures a Value at registration time.
type Options[T any] struct {
	// Default is the value returned when nothing else sets the key.
	Default T
	// FlagName, if set, names the pflag that BindFlags will bind to the key.
	FlagName string
	// EnvVars are environment variables bound to the key.
	EnvVars []string
	// GetFunc overrides the decode step for types mapstructure cannot
	// handle on its own.
	GetFunc func(v *viper.Viper, key string) T
}

type value[T any] struct {
	reg      *Registry
	key      string
	flagName string
	def      T
	get      func(v *viper.Viper, key string) T
}

// Configure registers a key on the registry and returns its typed handle.
func Configure[T any](reg *Registry, key string, opts Options[T]) Value[T] {
	reg.v.SetDefault(key, opts.Default)
	for _, env := range opts.EnvVars {
		// BindEnv only fails when called with no arguments.
		_ = reg.v.BindEnv(key, env)
	}

	return &value[T]{
		reg:      reg,
		key:      key,
		flagName: opts.FlagName,
		def:      opts.Default,
		get:      opts.GetFunc,
	}
}

func (val *value[T]) Key() string      { return val.key }
func (val *value[T]) FlagName() string { return val.flagName }
func (val *value[T]) Default() T       { return val.def }

func (val *value[T]) Get() T {
	if val.get != nil {
		return val.get(val.reg.v, val.key)
	}

	raw := val.reg.v.Get(val.key)
	if raw == nil {
		return val.def
	}

	var out T
	if err := mapstructure.WeakDecode(raw, &out); err != nil {
		slog.Warn("failed to decode config value, using default",
			"key", val.key, "error", err)
		return val.def
	}
	return out
}

func (val *value[T]) bind(fs *pflag.FlagSet) {
	if val.flagName == "" {
		return
	}
	if f := fs.Lookup(val.flagName); f != nil {
		_ = val.reg.v.BindPFlag(val.key, f)
	}
}

// BindFlags binds each value's flag on the given flag set to its
// configuration key. Flags must already be defined on the set; values with
// no flag name are skipped.
func BindFlags(fs *pflag.FlagSet, values ...Flaggable) {
	for _, val := range values {
		val.bind(fs)
	}
}
