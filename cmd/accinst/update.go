package main

import (
	"github.com/spf13/cobra"

	"github.com/acc-tools/accinst/pkg/types"
)

// newUpdateCmd creates the update command
func newUpdateCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "update",
		Short: MsgUpdateShort,
		Long:  MsgUpdateLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLifecycle(cmd, flags, types.OperationUpdate)
		},
	}
}
