// dxtract scans a directory of dxp analysis files and writes one normalized
// intermediate model JSON file per input.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"dxtract/internal/config"
	"dxtract/internal/runner"
)

var (
	inputDir   string
	outputDir  string
	configFile string
	debug      bool
	verbose    bool
	showHelp   bool
)

func init() {
	flag.StringVar(&inputDir, "input", "", "Input directory with .dxp files (default: dxp_input)")
	flag.StringVar(&inputDir, "i", "", "Input directory (shorthand)")

	flag.StringVar(&outputDir, "output", "", "Output directory for _IM.json files (default: im_output)")
	flag.StringVar(&outputDir, "o", "", "Output directory (shorthand)")

	flag.StringVar(&configFile, "config", "", "Config file (YAML/JSON)")
	flag.StringVar(&configFile, "c", "", "Config file (shorthand)")

	flag.BoolVar(&debug, "debug", false, "Dump decoded models to stderr")
	flag.BoolVar(&verbose, "v", false, "Verbose output")
	flag.BoolVar(&showHelp, "h", false, "Show help")
	flag.BoolVar(&showHelp, "help", false, "Show help")

	flag.Usage = usage
}

func usage() {
	fmt.Fprintf(os.Stderr, `dxtract - dxp intermediate model extractor

Usage:
    dxtract [options]

Options:
`)
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, `
Examples:
    # Process ./dxp_input into ./im_output
    dxtract

    # Pick the directories explicitly
    dxtract -i reports -o models

    # Load classifier tables from a config file
    dxtract -c dxtract.yaml

    # Dump every decoded model while debugging a document
    dxtract -i reports -o models --debug -v

`)
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	flag.Parse()

	if showHelp {
		flag.Usage()
		return nil
	}

	// Load configuration
	cfg := config.New()
	if configFile != "" {
		if err := cfg.LoadFile(configFile); err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
	}

	// Apply CLI overrides
	if inputDir != "" {
		cfg.InputDir = inputDir
	}
	if outputDir != "" {
		cfg.OutputDir = outputDir
	}

	log, err := newLogger(verbose)
	if err != nil {
		return fmt.Errorf("building logger: %w", err)
	}
	defer log.Sync()

	// One id per invocation so log lines from a run stay correlatable.
	log = log.With(zap.String("run", uuid.NewString()))

	sum, err := runner.New(cfg, log, os.Stdout, debug).Run()
	if err != nil {
		return err
	}

	fmt.Printf("done: %d parsed, %d skipped\n", sum.Processed, sum.Skipped)
	return nil
}

// newLogger builds the console logger: warnings only by default, everything
// when verbose.
func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	return cfg.Build()
}
