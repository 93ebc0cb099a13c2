// Package paths computes the absolute target paths for an installation from
// an InstallConfig: the executable directory, the resource directory, and
// the resource reference that gets templated into the installed executable.
//
// The absolute-vs-relative templating choice is the single behavioral fork
// of the resolver: a plain install bakes the absolute resource directory
// into the executable, while a destdir-staged install embeds a path relative
// to the executable's own directory so the staged tree stays relocatable.
package paths

import (
	"path/filepath"
	"strings"

	"github.com/acc-tools/accinst/pkg/errors"
	"github.com/acc-tools/accinst/pkg/types"
)

// Subdirectory names under the prefix.
const (
	BinDir   = "bin"
	ShareDir = "share"
)

// Resolve derives the target paths for cfg. It fails with CONFIG_INVALID if
// the prefix is empty or relative, if the destdir is relative or not an
// existing directory, or if the composed prefix does not exist as a
// directory. fs is consulted only for existence checks.
func Resolve(fs types.FS, cfg types.InstallConfig) (types.ResolvedPaths, error) {
	var rp types.ResolvedPaths

	prefix := Normalize(cfg.Prefix)
	if prefix == "" {
		return rp, errors.New(errors.ErrConfigInvalid, "prefix is empty; pass --prefix")
	}
	if !filepath.IsAbs(prefix) {
		return rp, errors.Newf(errors.ErrConfigInvalid, "prefix %q is not an absolute path", cfg.Prefix)
	}

	destdir := Normalize(cfg.DestDir)
	if destdir != "" {
		if !filepath.IsAbs(destdir) {
			return rp, errors.Newf(errors.ErrConfigInvalid, "destdir %q is not an absolute path", cfg.DestDir)
		}
		if err := requireDir(fs, destdir, "destdir"); err != nil {
			return rp, err
		}
	}

	effective := filepath.Join(destdir, prefix)
	if err := requireDir(fs, effective, "prefix"); err != nil {
		return rp, err
	}

	tool := cfg.Manifest.ToolName
	rp.ExecutableDir = filepath.Join(effective, BinDir)
	rp.ExecutablePath = filepath.Join(rp.ExecutableDir, tool)
	rp.ResourceDir = filepath.Join(effective, ShareDir, tool)
	rp.FinalBinDir = filepath.Join(prefix, BinDir)
	rp.Staged = destdir != ""

	if rp.Staged {
		rel, err := filepath.Rel(rp.ExecutableDir, rp.ResourceDir)
		if err != nil {
			return rp, errors.Wrap(err, errors.ErrInternal, "failed to relativize resource path")
		}
		rp.TemplatedResourcePath = rel
	} else {
		rp.TemplatedResourcePath = rp.ResourceDir
	}

	return rp, nil
}

// Normalize trims trailing path separators from p, except when p is a
// filesystem root ("/", a drive root like "C:\" or a UNC share root).
func Normalize(p string) string {
	if p == "" {
		return ""
	}
	trimmed := strings.TrimRight(p, string(filepath.Separator)+"/")
	if trimmed == filepath.VolumeName(p) {
		// The whole value was a root; trimming further would turn it into
		// a relative path ("C:\" -> "C:").
		return trimmed + string(filepath.Separator)
	}
	return trimmed
}

func requireDir(fs types.FS, path, label string) error {
	info, err := fs.Stat(path)
	if err != nil {
		return errors.Newf(errors.ErrConfigInvalid, "%s directory %q does not exist", label, path)
	}
	if !info.IsDir() {
		return errors.Newf(errors.ErrConfigInvalid, "%s %q is not a directory", label, path)
	}
	return nil
}
