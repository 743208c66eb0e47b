package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soverel/pressable/internal/config"
)

func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd(nil)
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := executeCommand(t, "version")

	require.NoError(t, err)
	assert.Contains(t, out, "Pressable dev")
	assert.Contains(t, out, "commit: none")
	assert.Contains(t, out, "built: unknown")
}

func TestShowcaseCommand(t *testing.T) {
	out, err := executeCommand(t, "showcase")

	require.NoError(t, err)
	assert.Contains(t, out, "=== Pressable Showcase ===")
	assert.Contains(t, out, "Plain Button")
	assert.Contains(t, out, "Bordered Button")
	assert.Contains(t, out, "Gradient Button")
	assert.Contains(t, out, "Disabled Button")
	assert.Contains(t, out, "--- neumorphic ---")
}

func TestRootRunsShowcaseByDefault(t *testing.T) {
	out, err := executeCommand(t)

	require.NoError(t, err)
	assert.Contains(t, out, "=== Pressable Showcase ===")
}

func TestShowcaseWithConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pressable.yaml")
	content := "width: 40\ncolor_profile: ascii\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	out, err := executeCommand(t, "showcase", "--fill", "--config", path)

	require.NoError(t, err)
	assert.Contains(t, out, "Filled Button")
}

func TestShowcaseRejectsInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pressable.yaml")
	require.NoError(t, os.WriteFile(path, []byte("width: -2\n"), 0o644))

	_, err := executeCommand(t, "showcase", "--config", path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "width")
}

func TestLoadHarnessDefaults(t *testing.T) {
	harness, err := loadHarness(&rootFlags{})

	require.NoError(t, err)
	assert.Equal(t, config.Default(), harness)
}
