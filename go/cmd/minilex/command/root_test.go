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
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommandStructure(t *testing.T) {
	root := GetRootCommand()
	assert.Equal(t, "minilex", root.Use)

	var names []string
	for _, sub := range root.Commands() {
		names = append(names, sub.Name())
	}
	assert.Contains(t, names, "scan")
	assert.Contains(t, names, "watch")

	for _, flag := range []string{
		"sentinel", "format", "include-eof",
		"config-path", "config-name", "config-file",
		"log-level", "log-format", "log-output",
	} {
		assert.NotNil(t, root.PersistentFlags().Lookup(flag), "missing persistent flag %q", flag)
	}
}

func TestConfigFileSetsScanOptions(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "minilex.yaml")
	require.NoError(t, afero.WriteFile(afero.NewOsFs(), cfg, []byte("sentinel: STOP\nformat: json\n"), 0o644))

	fs := afero.NewMemMapFs()
	stdin := "print 1;\nSTOP\n"

	root := getRootCommand(fs)
	var out, errOut bytes.Buffer
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs([]string{"scan", "--config-file", cfg})

	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "only: STOP")
	assert.Contains(t, out.String(), `"kind": "KEYWORD"`)
}
