package install

import (
	"path/filepath"
	"sort"

	"github.com/acc-tools/accinst/pkg/errors"
	"github.com/acc-tools/accinst/pkg/platform"
	"github.com/acc-tools/accinst/pkg/types"
)

// Walk enumerates every entry under root and returns the deployment
// manifest, sorted by relative path for reproducible deployment order.
// Entries inside a subtree reserved for a platform other than host are
// skipped entirely, recursively.
func Walk(fs types.FS, root string, host types.Platform, reserved map[string]types.Platform) ([]types.DeployEntry, error) {
	var entries []types.DeployEntry
	if err := walkDir(fs, root, "", host, reserved, &entries); err != nil {
		return nil, err
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].RelPath < entries[j].RelPath
	})
	return entries, nil
}

func walkDir(fs types.FS, root, rel string, host types.Platform, reserved map[string]types.Platform, out *[]types.DeployEntry) error {
	dirEntries, err := fs.ReadDir(filepath.Join(root, rel))
	if err != nil {
		return errors.Wrapf(err, errors.ErrDeploy, "failed to read source directory %q", filepath.Join(root, rel))
	}
	for _, de := range dirEntries {
		entryRel := filepath.Join(rel, de.Name())
		if platform.Excluded(entryRel, host, reserved) {
			continue
		}
		*out = append(*out, types.DeployEntry{RelPath: entryRel, IsDir: de.IsDir()})
		if de.IsDir() {
			if err := walkDir(fs, root, entryRel, host, reserved, out); err != nil {
				return err
			}
		}
	}
	return nil
}

// Deploy copies the manifest entries from srcRoot into dstRoot, recreating
// directory structure and creating parent directories as needed. Any I/O
// error aborts the whole deployment; already-copied files are left in place.
// Returns the number of files and directories deployed.
func Deploy(fs types.FS, srcRoot, dstRoot string, manifest []types.DeployEntry, dryRun bool) (files, dirs int, err error) {
	for _, entry := range manifest {
		dst := filepath.Join(dstRoot, entry.RelPath)

		if entry.IsDir {
			if !dryRun {
				if err := fs.MkdirAll(dst, 0755); err != nil {
					return files, dirs, errors.Wrapf(err, errors.ErrDeploy, "failed to create directory %q", dst)
				}
			}
			dirs++
			continue
		}

		if !dryRun {
			if err := fs.MkdirAll(filepath.Dir(dst), 0755); err != nil {
				return files, dirs, errors.Wrapf(err, errors.ErrDeploy, "failed to create directory %q", filepath.Dir(dst))
			}
			data, err := fs.ReadFile(filepath.Join(srcRoot, entry.RelPath))
			if err != nil {
				return files, dirs, errors.Wrapf(err, errors.ErrDeploy, "failed to read %q", filepath.Join(srcRoot, entry.RelPath))
			}
			if err := fs.WriteFile(dst, data, 0644); err != nil {
				return files, dirs, errors.Wrapf(err, errors.ErrDeploy, "failed to write %q", dst)
			}
		}
		files++
	}
	return files, dirs, nil
}
