package install

import (
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/acc-tools/accinst/pkg/errors"
	"github.com/acc-tools/accinst/pkg/filesystem"
	"github.com/acc-tools/accinst/pkg/logging"
	"github.com/acc-tools/accinst/pkg/paths"
	"github.com/acc-tools/accinst/pkg/platform"
	"github.com/acc-tools/accinst/pkg/types"
)

// Options contains the inputs for a lifecycle run.
type Options struct {
	// Config is the immutable invocation configuration.
	Config types.InstallConfig

	// FS is the target filesystem. Defaults to the OS filesystem.
	FS types.FS

	// Getenv looks up environment variables (PATH advisory). Defaults to
	// os.Getenv; injected for testability.
	Getenv func(string) string
}

// Result contains the outcome of a lifecycle run.
type Result struct {
	// Operation that was performed.
	Operation types.Operation `json:"operation"`

	// Paths resolved for this run.
	Paths types.ResolvedPaths `json:"paths"`

	// RemovedExecutable is true when an existing executable was deleted.
	RemovedExecutable bool `json:"removedExecutable"`

	// RemovedResources is true when an existing resource tree was deleted.
	RemovedResources bool `json:"removedResources"`

	// DeployedFiles and DeployedDirs count the resource tree entries written.
	DeployedFiles int `json:"deployedFiles"`
	DeployedDirs  int `json:"deployedDirs"`

	// WroteShim is true when a Windows launcher shim was written.
	WroteShim bool `json:"wroteShim"`

	// PlaceholderFound is false when the payload source did not contain the
	// placeholder token and substitution was a no-op.
	PlaceholderFound bool `json:"placeholderFound"`

	// PathAdvisory is true when the final bin directory is absent from the
	// PATH environment variable and the user should be warned.
	PathAdvisory bool `json:"pathAdvisory"`

	// DryRun reports whether this was a dry run.
	DryRun bool `json:"dryRun"`
}

// Run validates the configuration, resolves target paths and performs the
// configured operation. All errors carry a stable error code and abort the
// run immediately; nothing is retried.
func Run(opts Options) (*Result, error) {
	logger := logging.GetLogger("install")
	cfg := opts.Config

	if opts.FS == nil {
		opts.FS = filesystem.NewOS()
	}
	if opts.Getenv == nil {
		opts.Getenv = os.Getenv
	}
	fs := opts.FS

	if !cfg.Operation.Valid() {
		return nil, errors.New(errors.ErrConfigInvalid, "no operation selected (install, update or remove)")
	}

	logger.Debug().
		Str("operation", string(cfg.Operation)).
		Str("prefix", cfg.Prefix).
		Str("destdir", cfg.DestDir).
		Bool("dryRun", cfg.DryRun).
		Msg("Starting lifecycle run")

	rp, err := paths.Resolve(fs, cfg)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Operation:        cfg.Operation,
		Paths:            rp,
		PlaceholderFound: true,
		DryRun:           cfg.DryRun,
	}

	if !cfg.DryRun {
		if err := ensureWritable(fs, rp); err != nil {
			return nil, err
		}
	}

	switch cfg.Operation {
	case types.OperationRemove:
		err = removeInstallation(fs, cfg, rp, result, logger)

	case types.OperationInstall:
		if Installed(fs, rp) {
			return nil, errors.Newf(errors.ErrConflict,
				"%s is already installed under %q; run remove first or use update", cfg.Manifest.ToolName, cfg.Prefix).
				WithDetail("executable", rp.ExecutablePath).
				WithDetail("resources", rp.ResourceDir)
		}
		err = installPayload(opts, cfg, rp, result, logger)

	case types.OperationUpdate:
		// Update is remove-then-install, unconditionally.
		if err = removeInstallation(fs, cfg, rp, result, logger); err == nil {
			err = installPayload(opts, cfg, rp, result, logger)
		}
	}
	if err != nil {
		return nil, err
	}

	logger.Info().
		Str("operation", string(cfg.Operation)).
		Int("files", result.DeployedFiles).
		Int("dirs", result.DeployedDirs).
		Msg("Lifecycle run completed")
	return result, nil
}

// ensureWritable verifies the effective prefix accepts writes by creating
// and deleting a probe file. A uid check would be meaningless on staged
// destdir trees and on Windows; an actual write is authoritative everywhere.
func ensureWritable(fs types.FS, rp types.ResolvedPaths) error {
	probe := filepath.Join(filepath.Dir(rp.ExecutableDir), ".accinst-probe")
	if err := fs.WriteFile(probe, []byte{}, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrPermission,
			"target prefix %q is not writable; run with elevated privileges", filepath.Dir(rp.ExecutableDir))
	}
	if err := fs.Remove(probe); err != nil {
		return errors.Wrapf(err, errors.ErrPermission, "failed to clean up probe file %q", probe)
	}
	return nil
}

// installPayload templates and writes the executable, writes the Windows
// shim when required, deploys the resource tree and evaluates the PATH
// advisory.
func installPayload(opts Options, cfg types.InstallConfig, rp types.ResolvedPaths, result *Result, logger zerolog.Logger) error {
	fs := opts.FS

	body, found, err := templateExecutable(fs, cfg, rp.TemplatedResourcePath)
	if err != nil {
		return err
	}
	result.PlaceholderFound = found
	if !found {
		logger.Warn().
			Str("token", cfg.Manifest.PlaceholderToken).
			Msg("Placeholder token not found in payload source; installed executable keeps its compiled-in resource path")
	}

	if !cfg.DryRun {
		if err := fs.MkdirAll(rp.ExecutableDir, 0755); err != nil {
			return errors.Wrapf(err, errors.ErrDeploy, "failed to create %q", rp.ExecutableDir)
		}
		if err := fs.WriteFile(rp.ExecutablePath, body, 0755); err != nil {
			return errors.Wrapf(err, errors.ErrDeploy, "failed to write %q", rp.ExecutablePath)
		}
		// WriteFile permissions only apply on creation; make sure an
		// overwritten executable is still executable.
		if err := fs.Chmod(rp.ExecutablePath, 0755); err != nil {
			return errors.Wrapf(err, errors.ErrDeploy, "failed to set permissions on %q", rp.ExecutablePath)
		}
	}
	logger.Debug().Str("path", rp.ExecutablePath).Msg("Installed executable")

	if cfg.Platform == types.PlatformWindows {
		shimPath := rp.ExecutablePath + ShimSuffix
		if !cfg.DryRun {
			if err := fs.WriteFile(shimPath, launcherShim(cfg.Manifest), 0755); err != nil {
				return errors.Wrapf(err, errors.ErrDeploy, "failed to write launcher shim %q", shimPath)
			}
		}
		result.WroteShim = true
		logger.Debug().Str("path", shimPath).Msg("Wrote launcher shim")
	}

	srcResources := filepath.Join(cfg.SourceRoot, cfg.Manifest.ResourceDir)
	if info, err := fs.Stat(srcResources); err == nil && info.IsDir() {
		manifest, err := Walk(fs, srcResources, cfg.Platform, cfg.Manifest.ReservedSubtrees)
		if err != nil {
			return err
		}
		dstResources := filepath.Join(rp.ResourceDir, cfg.Manifest.ResourceDir)
		files, dirs, err := Deploy(fs, srcResources, dstResources, manifest, cfg.DryRun)
		if err != nil {
			return err
		}
		result.DeployedFiles = files
		result.DeployedDirs = dirs
	} else {
		logger.Debug().Str("path", srcResources).Msg("Distribution ships no resource tree; skipping deployment")
	}

	result.PathAdvisory = !platform.OnSearchPath(opts.Getenv("PATH"), rp.FinalBinDir, cfg.Platform)
	return nil
}
