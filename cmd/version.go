package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dmitrijs2005/docconvert/internal/buildinfo"
)

// NewVersionCommand returns the command to get the docconvert version.
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the docconvert version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			buildinfo.PrintBuildData(cmd.OutOrStdout())
			return nil
		},
	}
}
