package cmd

import (
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"

	"crusher.dev/pkg/crusher/internal/domain/mutagens"
)

const treeSitterModule = "github.com/smacker/go-tree-sitter"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the version information",
		Long:  "Displays the build version, the Go and parser versions, and the available strategies.",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Println("strategies\t", strategyList())

			info, ok := debug.ReadBuildInfo()
			if !ok || info.Main.Version == "" {
				cmd.Println("version: unknown")
				return
			}

			cmd.Println("crusher version\t", info.Main.Version)
			cmd.Println("go version\t", info.GoVersion)

			if parser := moduleVersion(info, treeSitterModule); parser != "" {
				cmd.Println("tree-sitter\t", parser)
			}
		},
	}
}

func strategyList() string {
	names := mutagens.Names()
	parts := make([]string, 0, len(names))

	for _, name := range names {
		parts = append(parts, string(name))
	}

	return strings.Join(parts, ", ")
}

func moduleVersion(info *debug.BuildInfo, path string) string {
	for _, dep := range info.Deps {
		if dep.Path == path {
			return dep.Version
		}
	}

	return ""
}

// versionCmd represents the version command.
var versionCmd = newVersionCmd()

func init() {
	rootCmd.AddCommand(versionCmd)
}
