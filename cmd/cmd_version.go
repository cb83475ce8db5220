package cmd

import (
	"fmt"

	"github.com/gaze-network/block-explorer/core/constants"
	"github.com/spf13/cobra"
)

func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show block-explorer version",
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), constants.Version)
			return nil
		},
	}
}
