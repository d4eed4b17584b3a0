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
	"errors"
	"fmt"
	"log/slog"
	"os"
	"reflect"
	"sort"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// ViperConfig carries the flags that control config-file loading: where to
// search, what the file is called, and what to do when it is missing.
type ViperConfig struct {
	configPaths      Value[[]string]
	configName       Value[string]
	configFile       Value[string]
	notFoundHandling Value[ConfigFileNotFoundHandling]
}

// NewViperConfig registers the config-loading keys on the registry.
func NewViperConfig(reg *Registry) *ViperConfig {
	return &ViperConfig{
		configPaths: Configure(reg, "config.paths", Options[[]string]{
			Default:  []string{"."},
			EnvVars:  []string{"ML_CONFIG_PATH"},
			FlagName: "config-path",
		}),
		configName: Configure(reg, "config.name", Options[string]{
			Default:  "minilex",
			EnvVars:  []string{"ML_CONFIG_NAME"},
			FlagName: "config-name",
		}),
		configFile: Configure(reg, "config.file", Options[string]{
			EnvVars:  []string{"ML_CONFIG_FILE"},
			FlagName: "config-file",
		}),
		notFoundHandling: Configure(reg, "config.notfound.handling", Options[ConfigFileNotFoundHandling]{
			Default:  WarnOnConfigFileNotFound,
			GetFunc:  getHandlingValue,
			FlagName: "config-file-not-found-handling",
		}),
	}
}

// RegisterFlags installs the flags that control config loading. It must run
// before the command parses its flags.
func (vc *ViperConfig) RegisterFlags(fs *pflag.FlagSet) {
	fs.StringSlice("config-path", vc.configPaths.Default(), "Paths to search for config files in.")
	fs.String("config-name", vc.configName.Default(), "Name of the config file (without extension) to search for.")
	fs.String("config-file", vc.configFile.Default(), "Full path of the config file (with extension) to use. If set, --config-path and --config-name are ignored.")

	h := vc.notFoundHandling.Default()
	fs.Var(&h, "config-file-not-found-handling",
		fmt.Sprintf("Behavior when a config file is not found. (Options: %s)", strings.Join(handlingNames, ", ")))

	BindFlags(fs, vc.configPaths, vc.configName, vc.configFile, vc.notFoundHandling)
}

// LoadConfig finds and loads a config file into the registry. Search follows
// viper's behavior: --config-file, if set, is used to the exclusion of the
// path/name flags. A missing config file is handled per the
// --config-file-not-found-handling flag.
func (vc *ViperConfig) LoadConfig(reg *Registry) error {
	v := reg.Viper()

	var err error
	switch file := vc.configFile.Get(); file {
	case "":
		name := vc.configName.Get()
		if name == "" {
			return nil
		}
		v.SetConfigName(name)
		for _, path := range vc.configPaths.Get() {
			v.AddConfigPath(path)
		}
		err = v.ReadInConfig()
	default:
		v.SetConfigFile(file)
		err = v.ReadInConfig()
	}

	if err != nil && isConfigFileNotFoundError(err) {
		switch vc.notFoundHandling.Get() {
		case IgnoreConfigFileNotFound:
			return nil
		case WarnOnConfigFileNotFound:
			slog.Warn("no config file found, using defaults, flags, and environment",
				"name", vc.configName.Get(), "paths", vc.configPaths.Get())
			return nil
		case ErrorOnConfigFileNotFound, ExitOnConfigFileNotFound:
			slog.Error("failed to read in config", "error", err)
		}
	}

	return err
}

// isConfigFileNotFoundError checks if the error is caused because the file
// wasn't found.
func isConfigFileNotFoundError(err error) bool {
	if errors.As(err, &viper.ConfigFileNotFoundError{}) {
		return true
	}
	return errors.Is(err, os.ErrNotExist)
}

// ConfigFileNotFoundHandling is an enum to control how LoadConfig treats a
// missing config file.
type ConfigFileNotFoundHandling int

const (
	// IgnoreConfigFileNotFound proceeds silently; config comes entirely from
	// defaults, environment variables, and flags.
	IgnoreConfigFileNotFound ConfigFileNotFoundHandling = iota
	// WarnOnConfigFileNotFound logs a warning and proceeds.
	WarnOnConfigFileNotFound
	// ErrorOnConfigFileNotFound logs an error and returns it.
	ErrorOnConfigFileNotFound
	// ExitOnConfigFileNotFound is treated like error; the caller decides the
	// exit status.
	ExitOnConfigFileNotFound
)

var (
	handlingNames         []string
	handlingNamesToValues = map[string]int{
		"ignore": int(IgnoreConfigFileNotFound),
		"warn":   int(WarnOnConfigFileNotFound),
		"error":  int(ErrorOnConfigFileNotFound),
		"exit":   int(ExitOnConfigFileNotFound),
	}
	handlingValuesToNames map[int]string
)

func init() {
	handlingNames = make([]string, 0, len(handlingNamesToValues))
	handlingValuesToNames = make(map[int]string, len(handlingNamesToValues))

	for name, val := range handlingNamesToValues {
		handlingValuesToNames[val] = name
		handlingNames = append(handlingNames, name)
	}

	sort.Strings(handlingNames)
}

func getHandlingValue(v *viper.Viper, key string) ConfigFileNotFoundHandling {
	var h ConfigFileNotFoundHandling
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: decodeHandlingValue,
		Result:     &h,
	})
	if err == nil {
		err = dec.Decode(v.Get(key))
	}
	if err != nil {
		h = WarnOnConfigFileNotFound
		slog.Warn("failed to decode config handling value, using default",
			"key", key, "error", err)
	}
	return h
}

func decodeHandlingValue(from, to reflect.Type, data any) (any, error) {
	var h ConfigFileNotFoundHandling
	if to != reflect.TypeOf(h) {
		return data, nil
	}

	switch {
	case from == reflect.TypeOf(h):
		return data.(ConfigFileNotFoundHandling), nil
	case from.Kind() == reflect.Int:
		return ConfigFileNotFoundHandling(data.(int)), nil
	case from.Kind() == reflect.String:
		if err := h.Set(data.(string)); err != nil {
			return h, err
		}
		return h, nil
	}

	return data, fmt.Errorf("invalid value for ConfigFileNotFoundHandling: %v", data)
}

// Set implements pflag.Value.
func (h *ConfigFileNotFoundHandling) Set(arg string) error {
	larg := strings.ToLower(arg)
	if v, ok := handlingNamesToValues[larg]; ok {
		*h = ConfigFileNotFoundHandling(v)
		return nil
	}
	return fmt.Errorf("unknown handling name %s", arg)
}

// String implements pflag.Value.
func (h *ConfigFileNotFoundHandling) String() string {
	if name, ok := handlingValuesToNames[int(*h)]; ok {
		return name
	}
	return "<UNKNOWN>"
}

// Type implements pflag.Value.
func (h *ConfigFileNotFoundHandling) Type() string { return "ConfigFileNotFoundHandling" }
