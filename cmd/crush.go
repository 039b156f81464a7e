package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"crusher.dev/pkg/crusher/internal/adapter"
	"crusher.dev/pkg/crusher/internal/domain"
	m "crusher.dev/pkg/crusher/internal/model"
)

var crushParallelFlag int
var crushManifestFlag bool

// crushCmd represents the crush command.
var crushCmd = newCrushCmd()

func newCrushCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "crush",
		Short: "Generate and write variants",
		Long:  crushLongDescription,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return workflow.Crush(cmd.Context(), domain.CrushArgs{
				InputArgs:    inputArgs(),
				StrategyArgs: strategyArgs(),
				Output:       m.Path(viper.GetString(outputFlagName)),
				Parallel:     viper.GetInt(parallelConfigKey),
				Manifest:     viper.GetBool(manifestConfigKey),
			})
		},
	}

	configureCrushFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(crushCmd)
}

func configureCrushFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&crushParallelFlag, parallelFlagName, "p", viper.GetInt(parallelConfigKey), "number of parallel workers writing variants")
	bindFlagToConfig(cmd.Flags().Lookup(parallelFlagName), parallelConfigKey)

	cmd.Flags().BoolVar(&crushManifestFlag, manifestFlagName, viper.GetBool(manifestConfigKey), "also write "+adapter.ManifestFileName+" describing every variant")
	bindFlagToConfig(cmd.Flags().Lookup(manifestFlagName), manifestConfigKey)
}
