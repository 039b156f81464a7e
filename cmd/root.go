// Package cmd provides the root command and CLI setup for crusher.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"crusher.dev/pkg/crusher/internal/adapter"
	"crusher.dev/pkg/crusher/internal/controller"
	"crusher.dev/pkg/crusher/internal/domain"
	"crusher.dev/pkg/crusher/internal/domain/mutagens"
	m "crusher.dev/pkg/crusher/internal/model"
)

var rustFileAdapter adapter.RustFileAdapter
var sourceFSAdapter adapter.SourceFSAdapter
var variantStore adapter.VariantStore
var mutagen domain.Mutagen
var workflow domain.Workflow
var ui controller.UI

// Root-level flags shared by crush and list.
var (
	outputDirFlag  string
	inputFileFlag  string
	inputDirFlag   string
	extensionFlag  string
	recursiveFlag  bool
	strategyFlag   string
	keepGoingFlag  bool
	prefixFlag     string
	declNamesFlag  bool
	logFileFlag    string
	verboseLogFlag bool
)

func init() {
	configureRootFlags(rootCmd)

	rootCmd.PersistentPreRun = func(_ *cobra.Command, _ []string) {
		configureLogger(logFileFlag, verboseLogFlag)
	}

	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	rustFileAdapter = adapter.NewLocalRustFileAdapter()
	sourceFSAdapter = adapter.NewLocalSourceFSAdapter()
	variantStore = adapter.NewVariantStore()
	mutagen = domain.NewMutagen(rustFileAdapter, sourceFSAdapter)
	workflow = domain.NewWorkflow(
		sourceFSAdapter,
		variantStore,
		ui,
		mutagen,
	)
}

const inputHelp = `Inputs are selected with either:
  --input-file path/to/file.rs   crush a single file
  --input-dir  path/to/crate     crush every *.rs file below a directory`

const rootLongDescription = `Crusher generates syntactic mutants of Rust sources. For every occurrence
of a targeted construct it writes a full copy of the file with that one
occurrence replaced, producing near-identical inputs for fuzzing parsers,
type checkers and other compiler front ends.

` + inputHelp

const crushLongDescription = `Generate every variant of the selected sources and write them to the
output directory (default: current directory) as <prefix><index>.<ext>.

` + inputHelp

const listLongDescription = `List source files with their target and variant counts without writing
anything.

` + inputHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "crusher",
		Short: "Rust mutant generator",
		Long:  rootLongDescription,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

// newRootCmd builds a standalone root command with its flags bound.
func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()

	flags.StringVarP(&outputDirFlag, outputFlagName, "o", viper.GetString(outputFlagName), "output directory for generated variants (default: current directory)")
	bindFlagToConfig(flags.Lookup(outputFlagName), outputFlagName)

	flags.StringVarP(&inputFileFlag, inputFileFlagName, "f", "", "single source file to crush")
	flags.StringVarP(&inputDirFlag, inputDirFlagName, "d", "", "directory scanned for source files")

	flags.StringVarP(&extensionFlag, extensionFlagName, "e", viper.GetString(extensionConfigKey), "extension of the files scanned in --input-dir")
	bindFlagToConfig(flags.Lookup(extensionFlagName), extensionConfigKey)

	flags.BoolVarP(&recursiveFlag, recursiveFlagName, "r", viper.GetBool(recursiveConfigKey), "scan sub-directories of --input-dir")
	bindFlagToConfig(flags.Lookup(recursiveFlagName), recursiveConfigKey)

	flags.StringVarP(&strategyFlag, strategyFlagName, "s", viper.GetString(strategyConfigKey), fmt.Sprintf("mutation strategy %v", mutagens.Names()))
	bindFlagToConfig(flags.Lookup(strategyFlagName), strategyConfigKey)

	flags.BoolVarP(&keepGoingFlag, keepGoingFlagName, "k", viper.GetBool(keepGoingConfigKey), "skip unreadable or unparseable files in --input-dir instead of aborting")
	bindFlagToConfig(flags.Lookup(keepGoingFlagName), keepGoingConfigKey)

	flags.StringVar(&prefixFlag, prefixFlagName, viper.GetString(prefixConfigKey), "file name prefix of generated variants")
	bindFlagToConfig(flags.Lookup(prefixFlagName), prefixConfigKey)

	flags.BoolVar(&declNamesFlag, declarationNamesFlagName, viper.GetBool(declarationNamesConfigKey), "typename strategy: also mutate the declared names of items")
	bindFlagToConfig(flags.Lookup(declarationNamesFlagName), declarationNamesConfigKey)

	flags.StringVar(&logFileFlag, logFileFlagName, "", "log file path (default: "+defaultLogFilename+")")
	flags.BoolVarP(&verboseLogFlag, verboseFlagName, "v", false, "log at debug level")

	cmd.MarkFlagsMutuallyExclusive(inputFileFlagName, inputDirFlagName)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// inputArgs reads the input selection from the command line and config.
func inputArgs() domain.InputArgs {
	return domain.InputArgs{
		File:      m.Path(inputFileFlag),
		Dir:       m.Path(inputDirFlag),
		Extension: viper.GetString(extensionConfigKey),
		Recursive: viper.GetBool(recursiveConfigKey),
		KeepGoing: viper.GetBool(keepGoingConfigKey),
	}
}

func strategyArgs() domain.StrategyArgs {
	return domain.StrategyArgs{
		Strategy: m.StrategyName(viper.GetString(strategyConfigKey)),
		Options: mutagens.Options{
			IncludeDeclarationNames: viper.GetBool(declarationNamesConfigKey),
		},
		Prefix: viper.GetString(prefixConfigKey),
	}
}
