package main

import (
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/acc-tools/accinst/internal/version"
	"github.com/acc-tools/accinst/pkg/errors"
	"github.com/acc-tools/accinst/pkg/logging"
)

// rootFlags holds the persistent flag values shared by the lifecycle
// subcommands. They are read once, when a subcommand runs.
type rootFlags struct {
	verbosity int
	dryRun    bool
	prefix    string
	destdir   string
	source    string
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:     "accinst",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logging based on verbosity
			logging.SetupLogger(flags.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand: show help and report incorrect usage
			_ = cmd.Help()
			return errors.New(errors.ErrConfigInvalid, MsgErrNoOperation)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&flags.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().BoolVar(&flags.dryRun, "dry-run", false, MsgFlagDryRun)
	rootCmd.PersistentFlags().StringVar(&flags.prefix, "prefix", "", MsgFlagPrefix)
	rootCmd.PersistentFlags().StringVar(&flags.destdir, "destdir", "", MsgFlagDestdir)
	rootCmd.PersistentFlags().StringVar(&flags.source, "source", "", MsgFlagSource)

	// Add all commands
	rootCmd.AddCommand(newInstallCmd(flags))
	rootCmd.AddCommand(newUpdateCmd(flags))
	rootCmd.AddCommand(newRemoveCmd(flags))
	rootCmd.AddCommand(newManifestCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// defaultSourceRoot returns the distribution root when --source is not
// given: the directory of the running executable, with the current working
// directory as a fallback.
func defaultSourceRoot() string {
	if exe, err := os.Executable(); err == nil {
		return filepath.Dir(exe)
	}
	if cwd, err := os.Getwd(); err == nil {
		return cwd
	}
	return "."
}
