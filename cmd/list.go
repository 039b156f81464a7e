package cmd

import (
	"github.com/spf13/cobra"

	"crusher.dev/pkg/crusher/internal/domain"
)

var listDiffFlag bool

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List source files with target and variant counts",
		Long:  listLongDescription,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return workflow.Estimate(cmd.Context(), domain.EstimateArgs{
				InputArgs:    inputArgs(),
				StrategyArgs: strategyArgs(),
				ShowDiff:     listDiffFlag,
			})
		},
	}

	cmd.Flags().BoolVar(&listDiffFlag, diffFlagName, false, "print a unified diff of every variant")

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
