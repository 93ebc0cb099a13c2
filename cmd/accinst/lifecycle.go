package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/acc-tools/accinst/pkg/config"
	"github.com/acc-tools/accinst/pkg/install"
	"github.com/acc-tools/accinst/pkg/platform"
	"github.com/acc-tools/accinst/pkg/style"
	"github.com/acc-tools/accinst/pkg/types"
)

// runLifecycle builds the immutable InstallConfig from flags, environment
// and the distribution manifest, runs the engine and reports the outcome.
func runLifecycle(cmd *cobra.Command, flags *rootFlags, op types.Operation) error {
	host := platform.Current()

	prefix := flags.prefix
	if prefix == "" {
		prefix = platform.DefaultPrefix(host)
	}

	// DESTDIR is the conventional staging variable understood by package
	// builders; the flag wins when both are set.
	destdir := flags.destdir
	if destdir == "" {
		destdir = os.Getenv("DESTDIR")
	}

	source := flags.source
	if source == "" {
		source = defaultSourceRoot()
	}

	manifest, err := config.Load(source)
	if err != nil {
		return err
	}

	result, err := install.Run(install.Options{
		Config: types.InstallConfig{
			Operation:  op,
			Prefix:     prefix,
			DestDir:    destdir,
			SourceRoot: source,
			Platform:   host,
			Manifest:   manifest,
			DryRun:     flags.dryRun,
		},
	})
	if err != nil {
		return err
	}

	printResult(cmd.OutOrStdout(), result, manifest.PlaceholderToken)
	return nil
}

func printResult(w io.Writer, result *install.Result, token string) {
	rp := result.Paths

	switch result.Operation {
	case types.OperationRemove:
		printRemoval(w, result)

	case types.OperationInstall, types.OperationUpdate:
		printRemoval(w, result)
		fmt.Fprintf(w, MsgInstalledFormat, style.Success(style.SuccessIndicator), style.Path(rp.ExecutablePath))
		if result.WroteShim {
			fmt.Fprintf(w, MsgShimFormat, style.Path(rp.ExecutablePath+install.ShimSuffix))
		}
		if result.DeployedFiles > 0 || result.DeployedDirs > 0 {
			fmt.Fprintf(w, MsgResourcesFormat, result.DeployedFiles, result.DeployedDirs, style.Path(rp.ResourceDir))
		}
		if !result.PlaceholderFound {
			fmt.Fprintf(w, MsgNoPlaceholderFmt, style.Warning(style.WarningIndicator), token)
		}
		if result.PathAdvisory {
			fmt.Fprintf(w, MsgPathAdvisoryFormat, style.Warning(style.WarningIndicator), style.Path(rp.FinalBinDir))
		}
	}

	if result.DryRun {
		fmt.Fprint(w, MsgDryRunNotice)
	}
}

func printRemoval(w io.Writer, result *install.Result) {
	rp := result.Paths

	if result.RemovedExecutable {
		fmt.Fprintf(w, MsgRemovedExecFormat, style.Success(style.SuccessIndicator), style.Path(rp.ExecutablePath))
	}
	if result.RemovedResources {
		fmt.Fprintf(w, MsgRemovedResFormat, style.Success(style.SuccessIndicator), style.Path(rp.ResourceDir))
	}
	if result.Operation == types.OperationRemove && !result.RemovedExecutable && !result.RemovedResources {
		fmt.Fprint(w, MsgNothingToRemove)
	}
}
