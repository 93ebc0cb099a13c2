package main

import (
	"github.com/spf13/cobra"

	"github.com/acc-tools/accinst/pkg/types"
)

// newRemoveCmd creates the remove command
func newRemoveCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:     "remove",
		Short:   MsgRemoveShort,
		Long:    MsgRemoveLong,
		Example: MsgRemoveExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLifecycle(cmd, flags, types.OperationRemove)
		},
	}
}
