package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"advent/internal/config"
	"advent/internal/days"
	"advent/internal/input"
	"advent/internal/picker"
	"advent/internal/report"
	"advent/internal/solver"
)

var (
	// Global flags
	verbose    bool
	configPath string
	inputsDir  string

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "advent",
	Short: "advent - Advent of Code 2020 solutions (days 1-17)",
	Long: `advent solves Advent of Code 2020 puzzles against your own inputs.

Puzzle inputs are read from an inputs directory as day-N-input files,
configurable via advent.yaml, the --inputs flag, or ADVENT_INPUTS.

Run without arguments to pick a day interactively.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Initialize logger
		cfg := zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		if verbose {
			cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = cfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: pick a day interactively
		return runPicker(cmd)
	},
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath, "Config file path")
	rootCmd.PersistentFlags().StringVar(&inputsDir, "inputs", "", "Puzzle inputs directory (overrides config)")

	// Add commands to root
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(allCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(checkCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// app bundles the pieces every command needs.
type app struct {
	cfg      *config.Config
	registry *solver.Registry
	runner   *solver.Runner
}

// newApp loads configuration and wires the registry to its inputs.
func newApp() (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if inputsDir != "" {
		cfg.InputsDir = inputsDir
	}

	registry := solver.NewRegistry()
	if err := days.RegisterAll(registry); err != nil {
		return nil, err
	}

	store := input.NewStore(cfg.InputsDir)
	return &app{
		cfg:      cfg,
		registry: registry,
		runner:   solver.NewRunner(registry, store, logger),
	}, nil
}

// runPicker shows the interactive day list, then solves the chosen day.
func runPicker(cmd *cobra.Command) error {
	if !isatty.IsTerminal(os.Stdin.Fd()) || !isatty.IsTerminal(os.Stdout.Fd()) {
		return cmd.Help()
	}

	a, err := newApp()
	if err != nil {
		return err
	}

	day, err := picker.Pick(a.registry)
	if err != nil {
		if err == picker.ErrNoSelection {
			return nil
		}
		return err
	}

	rep, err := a.runner.Run(day)
	if err != nil {
		return err
	}
	cmd.Print(report.Render(rep))
	return nil
}
