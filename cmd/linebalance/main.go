package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/vsinha/linebalance/pkg/interfaces/cli/commands"
)

func main() {
	args := os.Args[1:]
	if len(args) > 0 && args[0] == "generate" {
		runGenerate(args[1:])
		return
	}
	runBalance(args)
}

func runBalance(args []string) {
	flags := flag.NewFlagSet("linebalance", flag.ExitOnError)

	// Command line flags
	var (
		processesFile = flags.String(
			"processes",
			"",
			"Path to the process sheet CSV file",
		)
		planFile   = flags.String("plan", "", "Path to the line plan file (YAML or JSON)")
		analyze    = flags.Bool("analyze", false, "Run takt analysis instead of balancing")
		operators  = flags.Int("operators", 0, "Total operators for takt analysis")
		outputDir  = flags.String("output", "", "Output directory for results (optional)")
		format     = flags.String("format", "text", "Output format: text, json, csv, html")
		ctFallback = flags.String("ct-fallback", "zero", "CT fallback policy: zero, smv")
		traceFile  = flags.String("trace", "", "Write OpenTelemetry spans to the given file")
		verbose    = flags.Bool("verbose", false, "Enable verbose output")
		help       = flags.Bool("help", false, "Show help message")
	)

	_ = flags.Parse(args)

	// Create command configuration
	config := commands.Config{
		ProcessesFile: *processesFile,
		PlanFile:      *planFile,
		Analyze:       *analyze,
		Operators:     *operators,
		OutputDir:     *outputDir,
		Format:        *format,
		CTFallback:    *ctFallback,
		TraceFile:     *traceFile,
		Verbose:       *verbose,
		Help:          *help,
	}

	// Create and execute command
	cmd := commands.NewBalanceCommand(config)
	ctx := context.Background()

	if err := cmd.Execute(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runGenerate(args []string) {
	flags := flag.NewFlagSet("linebalance generate", flag.ExitOnError)

	var (
		sections  = flags.Int("sections", 0, "Number of sections to generate")
		processes = flags.Int("processes", 0, "Number of processes per section")
		outputDir = flags.String("output", "", "Output directory for the generated line")
		seed      = flags.Int64("seed", 0, "Random seed (0 uses the current time)")
		verbose   = flags.Bool("verbose", false, "Enable verbose output")
		help      = flags.Bool("help", false, "Show help message")
	)

	_ = flags.Parse(args)

	config := commands.GenerateConfig{
		Sections:  *sections,
		Processes: *processes,
		OutputDir: *outputDir,
		Seed:      *seed,
		Verbose:   *verbose,
		Help:      *help,
	}

	cmd := commands.NewGenerateCommand(config)
	ctx := context.Background()

	if err := cmd.Execute(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
