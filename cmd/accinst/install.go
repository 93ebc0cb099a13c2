package main

import (
	"github.com/spf13/cobra"

	"github.com/acc-tools/accinst/pkg/types"
)

// newInstallCmd creates the install command
func newInstallCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:     "install",
		Short:   MsgInstallShort,
		Long:    MsgInstallLong,
		Example: MsgInstallExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLifecycle(cmd, flags, types.OperationInstall)
		},
	}
}
