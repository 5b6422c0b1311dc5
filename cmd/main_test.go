package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"strided/pkg/stridederrors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfig = `
logger:
  level: debug
  json: true
buffers:
  - name: v
    values: [1, 2, 3, 4, 5, 6, 7, 8, 9, 10]
walks:
  - name: odd-sum
    buffer: v
    stride: 2
    op: sum
  - name: backwards
    buffer: v
    start: 9
    stride: -3
    op: collect
`

func TestRootCommand_RunsConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stridewalk.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testConfig), 0o644))

	var out bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--config", path})
	require.NoError(t, cmd.Execute())

	logs := out.String()
	assert.Contains(t, logs, `"walk":"odd-sum"`)
	assert.Contains(t, logs, `"sum":25`)
	assert.Contains(t, logs, `"values":[10,7,4,1]`)
}

func TestRootCommand_MissingConfigUsesDefault(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"-c", filepath.Join(t.TempDir(), "absent.yaml")})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "walk finished")
}

func TestRootCommand_InvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logger: {level: info}\nwalks:\n  - {name: w, buffer: nope, op: sum}\n"), 0o644))

	cmd := newRootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"-c", path})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown buffer")
	assert.Contains(t, err.Error(), "load config: ")
	assert.True(t, errors.Is(err, stridederrors.ErrInvalidArgument), "got %v", err)
}
