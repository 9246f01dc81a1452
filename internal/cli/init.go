package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"kanban-cli/internal/config"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a sample config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := config.Default().Save()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Config written to %s\nAdd your tracker URL, email and API token, then run `kanban`.\n", p)
			return nil
		},
	}
}
