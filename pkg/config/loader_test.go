// pkg/config/loader_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: Real filesystem (temp dirs)
// PURPOSE: Test manifest layering: defaults, file overrides, env overrides

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acc-tools/accinst/pkg/config"
	"github.com/acc-tools/accinst/pkg/errors"
	"github.com/acc-tools/accinst/pkg/types"
)

func TestDefault(t *testing.T) {
	m := config.Default()

	assert.Equal(t, "acc", m.ToolName)
	assert.Equal(t, "acc", m.ExecutableSource)
	assert.Equal(t, "modules", m.ResourceDir)
	assert.Equal(t, "MODULES_INSTALL_PATH", m.PlaceholderToken)
	assert.Equal(t, "perl", m.Interpreter)
	assert.Equal(t, types.PlatformWindows, m.ReservedSubtrees["windows"])
}

func TestLoadNoManifestFile(t *testing.T) {
	m, err := config.Load(t.TempDir())

	require.NoError(t, err)
	assert.Equal(t, config.Default(), m, "missing manifest file falls back to defaults")
}

func TestLoadTOMLOverride(t *testing.T) {
	root := t.TempDir()
	content := `tool_name = "abi-checker"
placeholder_token = "RESOURCE_ROOT"
`
	require.NoError(t, os.WriteFile(filepath.Join(root, config.ManifestFileTOML), []byte(content), 0644))

	m, err := config.Load(root)

	require.NoError(t, err)
	assert.Equal(t, "abi-checker", m.ToolName)
	assert.Equal(t, "RESOURCE_ROOT", m.PlaceholderToken)
	// Unset fields keep their defaults
	assert.Equal(t, "modules", m.ResourceDir)
	assert.Equal(t, "perl", m.Interpreter)
}

func TestLoadYAMLOverride(t *testing.T) {
	root := t.TempDir()
	content := "tool_name: abi-checker\nresource_dir: payload\n"
	require.NoError(t, os.WriteFile(filepath.Join(root, config.ManifestFileYAML), []byte(content), 0644))

	m, err := config.Load(root)

	require.NoError(t, err)
	assert.Equal(t, "abi-checker", m.ToolName)
	assert.Equal(t, "payload", m.ResourceDir)
}

func TestLoadTOMLWinsOverYAML(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, config.ManifestFileTOML), []byte(`tool_name = "from-toml"`), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(root, config.ManifestFileYAML), []byte("tool_name: from-yaml"), 0644))

	m, err := config.Load(root)

	require.NoError(t, err)
	assert.Equal(t, "from-toml", m.ToolName)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("ACCINST_TOOL_NAME", "env-tool")

	m, err := config.Load(t.TempDir())

	require.NoError(t, err)
	assert.Equal(t, "env-tool", m.ToolName)
}

func TestLoadMalformedManifest(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, config.ManifestFileTOML), []byte("tool_name = ["), 0644))

	_, err := config.Load(root)

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrManifestLoad))
}

func TestLoadRejectsEmptyToolName(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, config.ManifestFileTOML), []byte(`tool_name = ""`), 0644))

	_, err := config.Load(root)

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrManifestLoad))
}

func TestGenerateManifestContent(t *testing.T) {
	content, err := config.GenerateManifestContent()

	require.NoError(t, err)
	assert.Contains(t, content, `tool_name = 'acc'`)
	assert.Contains(t, content, "placeholder_token")
	assert.Contains(t, content, "# accinst distribution manifest.")
}
