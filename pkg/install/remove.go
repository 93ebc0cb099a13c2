package install

import (
	"github.com/rs/zerolog"

	"github.com/acc-tools/accinst/pkg/errors"
	"github.com/acc-tools/accinst/pkg/types"
)

// removeInstallation deletes the installed executable, the launcher shim and
// the resource tree. Missing targets are not errors, so removal is
// idempotent and safe against partially-completed prior runs.
func removeInstallation(fs types.FS, cfg types.InstallConfig, rp types.ResolvedPaths, result *Result, logger zerolog.Logger) error {
	if _, err := fs.Stat(rp.ExecutablePath); err == nil {
		if !cfg.DryRun {
			if err := fs.Remove(rp.ExecutablePath); err != nil {
				return errors.Wrapf(err, errors.ErrDeploy, "failed to remove %q", rp.ExecutablePath)
			}
		}
		result.RemovedExecutable = true
		logger.Debug().Str("path", rp.ExecutablePath).Msg("Removed executable")
	}

	shimPath := rp.ExecutablePath + ShimSuffix
	if _, err := fs.Stat(shimPath); err == nil {
		if !cfg.DryRun {
			if err := fs.Remove(shimPath); err != nil {
				return errors.Wrapf(err, errors.ErrDeploy, "failed to remove launcher shim %q", shimPath)
			}
		}
		logger.Debug().Str("path", shimPath).Msg("Removed launcher shim")
	}

	if _, err := fs.Stat(rp.ResourceDir); err == nil {
		if !cfg.DryRun {
			if err := fs.RemoveAll(rp.ResourceDir); err != nil {
				return errors.Wrapf(err, errors.ErrDeploy, "failed to remove resource tree %q", rp.ResourceDir)
			}
		}
		result.RemovedResources = true
		logger.Debug().Str("path", rp.ResourceDir).Msg("Removed resource tree")
	}

	return nil
}
