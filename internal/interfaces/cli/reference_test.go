package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReferenceShowDefaults(t *testing.T) {
	out, err := runCommand(t, "reference", "show")
	require.NoError(t, err)

	var ref map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &ref))
	assert.Equal(t, "2025.2", ref["Version"])
}

func TestReferenceValidateDefaults(t *testing.T) {
	out, err := runCommand(t, "reference", "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "is valid")
}

func TestReferenceValidateFromConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yaml := `
risk:
  reference:
    version: "override"
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))

	out, err := runCommand(t, "--config", path, "reference", "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "override")
}

func TestReferenceValidateRejectsBrokenConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	// Weights that do not sum to 1 fail config validation during load.
	yaml := `
risk:
  reference:
    weights:
      events: 0.9
      pep: 0.9
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))

	_, err := runCommand(t, "--config", path, "reference", "validate")
	assert.Error(t, err)
}
