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

// Package viperutil provides a small typed layer over viper: each command
// tree gets its own isolated Registry, and every configuration key is
// registered through Configure, which ties together its default, its flag,
// and its environment variables.
package viperutil

import "github.com/spf13/viper"

// Registry holds an isolated viper instance for one command tree. Values
// registered on one Registry are invisible to every other, which keeps
// commands and tests from stepping on shared global state.
type Registry struct {
	v *viper.Viper
}

// NewRegistry creates a new isolated configuration registry.
func NewRegistry() *Registry {
	return &Registry{v: viper.New()}
}

// Viper exposes the backing viper instance for config-file loading.
func (reg *Registry) Viper() *viper.Viper {
	return reg.v
}
