// Package main provides the entry point for the astgen CLI tool.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/astgen/cmd/astgen/commands"
	"github.com/Sumatoshi-tech/astgen/pkg/version"
)

var verbose bool

func main() {
	rootCmd := &cobra.Command{
		Use:   "astgen",
		Short: "astgen - AST definition generator",
		Long: `astgen regenerates the interpreter's AST node definitions from
declarative grammar specifications: for each node family it emits the sum
type, the visitor trait, the exhaustive accept dispatch and one constructor
per variant.

Commands:
  generate  Regenerate the AST definition files
  list      Show the grammars and what will be generated for them`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			setupLogging()
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	// Add commands.
	rootCmd.AddCommand(commands.NewGenerateCommand())
	rootCmd.AddCommand(commands.NewListCommand())
	rootCmd.AddCommand(versionCmd())

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func setupLogging() {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelInfo
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Fprintf(os.Stdout, "astgen %s (commit: %s, built: %s)\n", version.Version, version.Commit, version.Date)
		},
	}
}
