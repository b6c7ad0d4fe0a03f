package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/featurekit/matrixgen/internal/featureset"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "features.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefault(t *testing.T) {
	set, err := Default().Set()
	require.NoError(t, err)
	assert.Equal(t, []string{"bstr", "bash", "fish", "sh"}, set.Names())
}

func TestLoad(t *testing.T) {
	path := writeManifest(t, `
package: shell-quote
features:
  - name: bstr
    description: byte-string support
  - name: bash
  - name: fish
  - name: sh
`)

	m, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "shell-quote", m.Package)

	set, err := m.Set()
	require.NoError(t, err)
	assert.Equal(t, []string{"bstr", "bash", "fish", "sh"}, set.Names())
}

func TestLoad_DuplicateFeature(t *testing.T) {
	path := writeManifest(t, `
features:
  - name: bash
  - name: bash
`)

	_, err := Load(path)
	require.ErrorIs(t, err, featureset.ErrDuplicateName)
}

func TestLoad_EmptyFeatureName(t *testing.T) {
	path := writeManifest(t, `
features:
  - name: bash
  - name: ""
`)

	_, err := Load(path)
	require.ErrorIs(t, err, featureset.ErrEmptyName)
}

func TestLoad_BadYAML(t *testing.T) {
	path := writeManifest(t, "features: [unclosed\n")

	_, err := Load(path)
	require.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
