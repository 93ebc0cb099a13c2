// pkg/install/install_test.go
// TEST TYPE: Business Logic Integration
// DEPENDENCIES: Memory FS
// PURPOSE: Test lifecycle orchestration: install, update, remove, conflicts

package install_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acc-tools/accinst/pkg/errors"
	"github.com/acc-tools/accinst/pkg/install"
	"github.com/acc-tools/accinst/pkg/testutil"
	"github.com/acc-tools/accinst/pkg/types"
)

func run(t *testing.T, env *testutil.TestEnvironment, cfg types.InstallConfig, pathEnv string) (*install.Result, error) {
	t.Helper()
	return install.Run(install.Options{
		Config: cfg,
		FS:     env.FS,
		Getenv: testutil.Getenv(map[string]string{"PATH": pathEnv}),
	})
}

func TestInstallPlain(t *testing.T) {
	env := testutil.NewEnvironment(t)
	env.AddResource("core/y.dat", "y-data")

	result, err := run(t, env, env.Config(types.OperationInstall), "/usr/bin:/bin")

	require.NoError(t, err)
	assert.True(t, result.PlaceholderFound)
	assert.False(t, result.PathAdvisory, "/usr/bin is on PATH")
	assert.Equal(t, 1, result.DeployedFiles)
	assert.False(t, result.WroteShim)

	body := env.ReadFile("/usr/bin/acc")
	assert.Contains(t, body, `"/usr/share/acc"`, "plain install bakes the absolute resource path")
	assert.NotContains(t, body, "MODULES_INSTALL_PATH")

	assert.Equal(t, "y-data", env.ReadFile("/usr/share/acc/modules/core/y.dat"))
}

func TestInstallStagedScenario(t *testing.T) {
	// prefix=/opt/acc, destdir=/tmp/build, one resource file.
	env := testutil.NewEnvironment(t)
	env.AddResource("core/y.dat", "y-data")
	env.MkdirAll("/tmp/build/opt/acc")

	cfg := env.Config(types.OperationInstall)
	cfg.Prefix = "/opt/acc"
	cfg.DestDir = "/tmp/build"

	result, err := run(t, env, cfg, "")

	require.NoError(t, err)
	assert.True(t, result.Paths.Staged)

	body := env.ReadFile("/tmp/build/opt/acc/bin/acc")
	assert.Contains(t, body, `"../share/acc"`, "staged install embeds a relative path")
	assert.False(t, strings.Contains(body, "/tmp/build"), "destdir must never leak into the executable")

	assert.Equal(t, "y-data", env.ReadFile("/tmp/build/opt/acc/share/acc/modules/core/y.dat"))
}

func TestInstallConflict(t *testing.T) {
	env := testutil.NewEnvironment(t)

	_, err := run(t, env, env.Config(types.OperationInstall), "")
	require.NoError(t, err)
	installed := env.ReadFile("/usr/bin/acc")

	_, err = run(t, env, env.Config(types.OperationInstall), "")

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConflict))
	assert.Equal(t, installed, env.ReadFile("/usr/bin/acc"), "conflict leaves the existing installation untouched")
}

func TestUpdateEqualsRemoveThenInstall(t *testing.T) {
	build := func(t *testing.T) *testutil.TestEnvironment {
		env := testutil.NewEnvironment(t)
		env.AddResource("core/y.dat", "v1")
		_, err := run(t, env, env.Config(types.OperationInstall), "")
		require.NoError(t, err)
		// Simulate a stale file from the previous version and a changed payload.
		env.WriteFile("/usr/share/acc/modules/core/stale.dat", "old")
		env.WriteFile("/dist/modules/core/y.dat", "v2")
		return env
	}

	viaUpdate := build(t)
	_, err := run(t, viaUpdate, viaUpdate.Config(types.OperationUpdate), "")
	require.NoError(t, err)

	viaRemoveInstall := build(t)
	_, err = run(t, viaRemoveInstall, viaRemoveInstall.Config(types.OperationRemove), "")
	require.NoError(t, err)
	_, err = run(t, viaRemoveInstall, viaRemoveInstall.Config(types.OperationInstall), "")
	require.NoError(t, err)

	for _, env := range []*testutil.TestEnvironment{viaUpdate, viaRemoveInstall} {
		assert.Equal(t, "v2", env.ReadFile("/usr/share/acc/modules/core/y.dat"))
		assert.False(t, env.Exists("/usr/share/acc/modules/core/stale.dat"),
			"stale files from the previous installation must not survive")
	}
	assert.Equal(t, viaUpdate.ReadFile("/usr/bin/acc"), viaRemoveInstall.ReadFile("/usr/bin/acc"))
}

func TestUpdateWithoutExistingInstallation(t *testing.T) {
	env := testutil.NewEnvironment(t)

	result, err := run(t, env, env.Config(types.OperationUpdate), "")

	require.NoError(t, err, "update proceeds even when nothing is installed")
	assert.False(t, result.RemovedExecutable)
	assert.True(t, env.Exists("/usr/bin/acc"))
}

func TestRemoveIdempotent(t *testing.T) {
	env := testutil.NewEnvironment(t)
	env.AddResource("core/y.dat", "y")

	_, err := run(t, env, env.Config(types.OperationInstall), "")
	require.NoError(t, err)

	first, err := run(t, env, env.Config(types.OperationRemove), "")
	require.NoError(t, err)
	assert.True(t, first.RemovedExecutable)
	assert.True(t, first.RemovedResources)
	assert.False(t, env.Exists("/usr/bin/acc"))
	assert.False(t, env.Exists("/usr/share/acc"))

	second, err := run(t, env, env.Config(types.OperationRemove), "")
	require.NoError(t, err, "second remove must not error")
	assert.False(t, second.RemovedExecutable)
	assert.False(t, second.RemovedResources)
}

func TestInstallUnwritablePrefix(t *testing.T) {
	env := testutil.NewEnvironment(t)

	_, err := install.Run(install.Options{
		Config: env.Config(types.OperationInstall),
		FS:     env.ReadOnly(),
		Getenv: testutil.Getenv(nil),
	})

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrPermission),
		"expected PERMISSION, got %v", err)
	assert.False(t, env.Exists("/usr/bin/acc"))
}

func TestInstallMissingPlaceholder(t *testing.T) {
	env := testutil.NewEnvironment(t)
	env.WriteFile("/dist/acc", "#!/usr/bin/perl\nno marker at all\n")

	result, err := run(t, env, env.Config(types.OperationInstall), "")

	require.NoError(t, err, "missing placeholder is surfaced, not fatal")
	assert.False(t, result.PlaceholderFound)
	assert.Equal(t, "#!/usr/bin/perl\nno marker at all\n", env.ReadFile("/usr/bin/acc"))
}

func TestInstallUnreadablePayload(t *testing.T) {
	env := testutil.NewEnvironment(t)
	cfg := env.Config(types.OperationInstall)
	cfg.SourceRoot = "/missing-dist"

	_, err := run(t, env, cfg, "")

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrTemplate))
}

func TestInstallNoResourceTree(t *testing.T) {
	env := testutil.NewEnvironment(t)
	// Environment ships no modules/ directory at all.

	result, err := run(t, env, env.Config(types.OperationInstall), "")

	require.NoError(t, err)
	assert.Zero(t, result.DeployedFiles)
	assert.True(t, env.Exists("/usr/bin/acc"))
}

func TestInstallPathAdvisory(t *testing.T) {
	env := testutil.NewEnvironment(t)

	result, err := run(t, env, env.Config(types.OperationInstall), "/opt/other/bin")

	require.NoError(t, err)
	assert.True(t, result.PathAdvisory, "/usr/bin absent from PATH triggers the advisory")
}

func TestInstallWindowsShim(t *testing.T) {
	env := testutil.NewEnvironment(t)
	env.MkdirAll("/target")

	cfg := env.Config(types.OperationInstall)
	cfg.Prefix = "/target"
	cfg.Platform = types.PlatformWindows

	result, err := run(t, env, cfg, "")

	require.NoError(t, err)
	assert.True(t, result.WroteShim)

	shim := env.ReadFile("/target/bin/acc.cmd")
	assert.Contains(t, shim, "@echo off")
	assert.Contains(t, shim, `perl "%~dp0\acc" %*`)
}

func TestDryRunTouchesNothing(t *testing.T) {
	env := testutil.NewEnvironment(t)
	env.AddResource("core/y.dat", "y")

	cfg := env.Config(types.OperationInstall)
	cfg.DryRun = true

	result, err := run(t, env, cfg, "")

	require.NoError(t, err)
	assert.True(t, result.DryRun)
	assert.Equal(t, 1, result.DeployedFiles)
	assert.False(t, env.Exists("/usr/bin/acc"))
	assert.False(t, env.Exists("/usr/share/acc"))
}

func TestRunRejectsUnknownOperation(t *testing.T) {
	env := testutil.NewEnvironment(t)
	cfg := env.Config(types.Operation("frobnicate"))

	_, err := run(t, env, cfg, "")

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigInvalid))
}

func TestPlatformExclusionEndToEnd(t *testing.T) {
	env := testutil.NewEnvironment(t)
	env.AddResource("Targets/windows/x.dat", "w")
	env.AddResource("core/y.dat", "y")

	_, err := run(t, env, env.Config(types.OperationInstall), "")

	require.NoError(t, err)
	assert.True(t, env.Exists("/usr/share/acc/modules/core/y.dat"))
	assert.False(t, env.Exists("/usr/share/acc/modules/Targets/windows/x.dat"),
		"windows-reserved subtree is not deployed on a posix host")
}
