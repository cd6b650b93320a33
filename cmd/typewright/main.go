package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	log *zap.SugaredLogger

	jsonLog bool
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "typewright",
	Short: "typewright - compile a type graph into validated JavaScript bindings",
	Long: `typewright - compile a declared type graph into JavaScript bindings.

Given a graph description (JSON or YAML), typewright assigns legal
collision-free identifiers to every type, compiles the graph into a
descriptor table, and emits a self-contained JavaScript artifact whose
deserializers validate input data at runtime.

Examples:
  typewright generate -i types.yaml -o types.js
  typewright generate -i types.yaml -o types.js --no-runtime-typecheck
  typewright check -i types.yaml -t Point value.json`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initLogger(jsonLog, verbose)
	},
}

func initLogger(jsonOutput, verbose bool) error {
	var cfg zap.Config
	if jsonOutput {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.DisableStacktrace = true
	}
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	} else {
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	zl, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	log = zl.Sugar()
	return nil
}

func init() {
	// Colored output only when attached to a terminal.
	color.NoColor = !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd())

	rootCmd.PersistentFlags().BoolVar(&jsonLog, "json-log", false, "emit logs as JSON")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(checkCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
