package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/acc-tools/accinst/pkg/config"
)

// newManifestCmd creates the manifest command
func newManifestCmd() *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:   "manifest",
		Short: MsgManifestShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := config.GenerateManifestContent()
			if err != nil {
				return err
			}

			if !write {
				fmt.Fprint(cmd.OutOrStdout(), content)
				return nil
			}

			if err := os.WriteFile(config.ManifestFileTOML, []byte(content), 0644); err != nil {
				return fmt.Errorf("failed to write %s: %w", config.ManifestFileTOML, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), MsgManifestWrittenFmt, config.ManifestFileTOML)
			return nil
		},
	}

	cmd.Flags().BoolVar(&write, "write", false, MsgFlagWrite)

	return cmd
}
