// pkg/testutil/environment.go
// DEPENDENCIES: None (base test utilities)
// PURPOSE: Build installer test environments on a memory filesystem

package testutil

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"

	"github.com/acc-tools/accinst/pkg/config"
	"github.com/acc-tools/accinst/pkg/filesystem"
	"github.com/acc-tools/accinst/pkg/types"
)

// DefaultPayload is the payload script used by test distributions. It
// carries the default placeholder token once.
const DefaultPayload = "#!/usr/bin/perl\nmy $modules = \"MODULES_INSTALL_PATH\";\nrun($modules);\n"

// TestEnvironment provides a distribution and a target prefix on a shared
// memory filesystem.
type TestEnvironment struct {
	// FS is the memory-backed filesystem all components run against.
	FS types.FS

	// SourceRoot is the distribution root containing the payload script.
	SourceRoot string

	// Prefix is an existing target prefix directory.
	Prefix string

	// Manifest is the default manifest describing the distribution.
	Manifest types.Manifest

	t   *testing.T
	mem afero.Fs
}

// NewEnvironment creates a memory filesystem holding a minimal acc
// distribution at /dist and an empty target prefix at /usr.
func NewEnvironment(t *testing.T) *TestEnvironment {
	t.Helper()

	mem := afero.NewMemMapFs()
	env := &TestEnvironment{
		FS:         filesystem.NewAferoFS(mem),
		SourceRoot: "/dist",
		Prefix:     "/usr",
		Manifest:   config.Default(),
		t:          t,
		mem:        mem,
	}

	env.MkdirAll("/dist")
	env.MkdirAll("/usr")
	env.WriteFile(filepath.Join(env.SourceRoot, env.Manifest.ExecutableSource), DefaultPayload)

	return env
}

// MkdirAll creates a directory tree, failing the test on error.
func (e *TestEnvironment) MkdirAll(path string) {
	e.t.Helper()
	if err := e.mem.MkdirAll(path, 0755); err != nil {
		e.t.Fatalf("MkdirAll(%s): %v", path, err)
	}
}

// WriteFile writes a file with parent directories, failing the test on error.
func (e *TestEnvironment) WriteFile(path, content string) {
	e.t.Helper()
	if err := e.mem.MkdirAll(filepath.Dir(path), 0755); err != nil {
		e.t.Fatalf("MkdirAll(%s): %v", filepath.Dir(path), err)
	}
	if err := afero.WriteFile(e.mem, path, []byte(content), 0644); err != nil {
		e.t.Fatalf("WriteFile(%s): %v", path, err)
	}
}

// AddResource writes a file under the distribution's resource tree, e.g.
// AddResource("core/y.dat", "data") creates /dist/modules/core/y.dat.
func (e *TestEnvironment) AddResource(relPath, content string) {
	e.t.Helper()
	e.WriteFile(filepath.Join(e.SourceRoot, e.Manifest.ResourceDir, relPath), content)
}

// ReadOnly returns a read-only view of the environment filesystem, for
// exercising permission failures against a populated tree.
func (e *TestEnvironment) ReadOnly() types.FS {
	return filesystem.NewAferoFS(afero.NewReadOnlyFs(e.mem))
}

// Exists reports whether a path exists on the environment filesystem.
func (e *TestEnvironment) Exists(path string) bool {
	_, err := e.mem.Stat(path)
	return err == nil
}

// ReadFile reads a file, failing the test on error.
func (e *TestEnvironment) ReadFile(path string) string {
	e.t.Helper()
	data, err := afero.ReadFile(e.mem, path)
	if err != nil {
		e.t.Fatalf("ReadFile(%s): %v", path, err)
	}
	return string(data)
}

// Config returns an InstallConfig for the environment's distribution.
func (e *TestEnvironment) Config(op types.Operation) types.InstallConfig {
	return types.InstallConfig{
		Operation:  op,
		Prefix:     e.Prefix,
		SourceRoot: e.SourceRoot,
		Platform:   types.PlatformPOSIX,
		Manifest:   e.Manifest,
	}
}
