package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/vsinha/linebalance/pkg/application/dto"
	"github.com/vsinha/linebalance/pkg/application/services/analysis"
	"github.com/vsinha/linebalance/pkg/application/services/balancing"
	"github.com/vsinha/linebalance/pkg/domain/entities"
	"github.com/vsinha/linebalance/pkg/domain/repositories"
	"github.com/vsinha/linebalance/pkg/domain/services"
	planconfig "github.com/vsinha/linebalance/pkg/infrastructure/config"
	"github.com/vsinha/linebalance/pkg/infrastructure/events"
	"github.com/vsinha/linebalance/pkg/infrastructure/repositories/csv"
	"github.com/vsinha/linebalance/pkg/infrastructure/repositories/memory"
	"github.com/vsinha/linebalance/pkg/infrastructure/tracing"
	"github.com/vsinha/linebalance/pkg/interfaces/cli/output"
)

// Config holds configuration for the balance command
type Config struct {
	ProcessesFile string
	PlanFile      string
	Operators     int
	Analyze       bool
	OutputDir     string
	Format        string
	CTFallback    string
	TraceFile     string
	Verbose       bool
	Help          bool
}

// balancer is satisfied by both the plain and the event-driven service
type balancer interface {
	Balance(ctx context.Context, repo repositories.ProcessRepository, req balancing.Request) (*entities.LineResult, error)
}

// BalanceCommand handles the main balancing execution logic
type BalanceCommand struct {
	config Config
}

// NewBalanceCommand creates a new balance command with the given configuration
func NewBalanceCommand(config Config) *BalanceCommand {
	return &BalanceCommand{
		config: config,
	}
}

// Execute runs the balance command
func (c *BalanceCommand) Execute(ctx context.Context) error {
	if c.config.Help {
		c.showHelp()
		return nil
	}

	// Validate inputs
	if err := c.validateInputs(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	if c.config.TraceFile != "" {
		if err := tracing.Init("linebalance", "1.0.0", c.config.TraceFile); err != nil {
			return fmt.Errorf("failed to initialise tracing: %w", err)
		}
	}

	plan, err := c.loadPlan(ctx)
	if err != nil {
		return fmt.Errorf("error loading plan: %w", err)
	}

	fallback, err := csv.ParseCTFallback(c.config.CTFallback)
	if err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	if c.config.Verbose {
		c.printHeader(plan)
	}

	// Load the process sheet
	if c.config.Verbose {
		fmt.Println("📂 Loading process sheet...")
	}

	loader := csv.NewLoaderWithFallback(fallback)
	sections, err := loader.LoadSections(ctx, c.config.ProcessesFile)
	if err != nil {
		return fmt.Errorf("error loading processes: %w", err)
	}

	repo := memory.NewProcessRepository(len(sections))
	if err := repo.LoadSections(sections); err != nil {
		return fmt.Errorf("failed to load sections into repository: %w", err)
	}

	if c.config.Verbose {
		total := 0
		for _, section := range sections {
			total += len(section.Processes)
		}
		fmt.Printf("✅ Data loaded successfully:\n")
		fmt.Printf("  Sections: %d\n", len(sections))
		fmt.Printf("  Processes: %d\n\n", total)
	}

	if c.config.Analyze {
		return c.runAnalyze(ctx, repo)
	}
	return c.runBalance(ctx, repo, sections, plan)
}

// runAnalyze performs takt analysis for both time bases
func (c *BalanceCommand) runAnalyze(ctx context.Context, repo *memory.ProcessRepository) error {
	service := balancing.NewService()

	if c.config.Verbose {
		fmt.Printf("🔄 Running takt analysis for %d operators...\n\n", c.config.Operators)
	}

	smv, err := service.Takt(ctx, repo, c.config.Operators, entities.BasisSMV)
	if err != nil {
		return fmt.Errorf("error analyzing takt time: %w", err)
	}
	ct, err := service.Takt(ctx, repo, c.config.Operators, entities.BasisCT)
	if err != nil {
		return fmt.Errorf("error analyzing takt time: %w", err)
	}

	outputConfig := output.Config{
		Format:  c.config.Format,
		Verbose: c.config.Verbose,
	}
	if err := output.GenerateTakt(dto.NewTaktReport(smv, ct), outputConfig); err != nil {
		return fmt.Errorf("error generating output: %w", err)
	}
	return nil
}

// runBalance performs the full balancing pipeline and renders the report
func (c *BalanceCommand) runBalance(
	ctx context.Context,
	repo *memory.ProcessRepository,
	sections []*entities.Section,
	plan *planconfig.Plan,
) error {
	analyzer := buildAnalyzer(plan)

	var store *events.InMemoryStore
	var service balancer
	if c.config.Verbose {
		store = events.NewInMemoryStore()
		service = balancing.NewEventDrivenServiceWithAnalyzer(analyzer, store)
	} else {
		service = balancing.NewServiceWithAnalyzer(analyzer)
	}

	req := balancing.Request{
		OperatorCounts: plan.OperatorCounts(),
		Basis:          plan.TimeBasis(),
		Selected:       plan.SelectedSections(),
	}

	validation := services.NewPlanValidator().ValidatePlan(sections, req.OperatorCounts, req.Selected)
	if c.config.Verbose && len(validation.Warnings) > 0 {
		fmt.Println("⚠️ Plan checks:")
		for _, warning := range validation.Warnings {
			fmt.Printf("  - %s\n", warning)
		}
		fmt.Println()
	}

	if c.config.Verbose {
		fmt.Println("🔄 Running line balancing...")
	}

	startTime := time.Now()
	result, err := service.Balance(ctx, repo, req)
	balanceTime := time.Since(startTime)

	if err != nil {
		return fmt.Errorf("error balancing line: %w", err)
	}

	if c.config.Verbose {
		fmt.Printf("✅ Balancing completed in %v\n\n", balanceTime)
	}

	report := &output.Report{
		Line:     dto.NewLineReport(result),
		Result:   result,
		Sections: sections,
		Basis:    req.Basis,
	}
	outputConfig := output.Config{
		Format:      c.config.Format,
		OutputDir:   c.config.OutputDir,
		Verbose:     c.config.Verbose,
		BalanceTime: balanceTime,
		InputFile:   c.config.ProcessesFile,
	}

	if err := output.Generate(report, outputConfig); err != nil {
		return fmt.Errorf("error generating output: %w", err)
	}

	if store != nil {
		c.printEventLog(store, result.RunID)
	}

	if c.config.Verbose {
		fmt.Println("🏁 Line balancing complete!")
	}
	return nil
}

// printEventLog prints the run's event trail when verbose mode is on
func (c *BalanceCommand) printEventLog(store *events.InMemoryStore, runID string) {
	runEvents, err := store.RunEvents(runID)
	if err != nil {
		fmt.Printf("Warning: failed to read event log: %v\n", err)
		return
	}

	fmt.Printf("🧾 Event log (%d events):\n", len(runEvents))
	for _, event := range runEvents {
		fmt.Printf("  %d. %s\n", event.Sequence(), event.Type())
	}
	fmt.Println()
}

// buildAnalyzer applies the plan's suggestion tuning to a line analyzer
func buildAnalyzer(plan *planconfig.Plan) *analysis.LineAnalyzer {
	var opts []analysis.Option
	if plan.Suggestions.BottleneckKeyword != "" {
		opts = append(opts, analysis.WithBottleneckKeyword(plan.Suggestions.BottleneckKeyword))
	}
	if plan.Suggestions.SpreadThreshold > 0 {
		opts = append(opts, analysis.WithSpreadThreshold(plan.Suggestions.SpreadThreshold))
	}
	return analysis.NewLineAnalyzer(opts...)
}

// loadPlan reads the line plan, falling back to defaults when none is given
func (c *BalanceCommand) loadPlan(ctx context.Context) (*planconfig.Plan, error) {
	if c.config.PlanFile == "" {
		return planconfig.Default(), nil
	}
	return planconfig.Load(ctx, c.config.PlanFile)
}

// validateInputs validates the command configuration
func (c *BalanceCommand) validateInputs() error {
	if c.config.ProcessesFile == "" {
		return fmt.Errorf("must specify -processes <csv>")
	}
	if c.config.Analyze && c.config.Operators <= 0 {
		return fmt.Errorf("analyze mode requires -operators <n> greater than zero")
	}
	return nil
}

// printHeader prints the command header information
func (c *BalanceCommand) printHeader(plan *planconfig.Plan) {
	fmt.Printf("🚀 Line Balancer CLI\n")
	fmt.Printf("Process sheet: %s\n", c.config.ProcessesFile)
	if c.config.PlanFile != "" {
		fmt.Printf("Plan: %s\n", c.config.PlanFile)
	}
	fmt.Printf("Time basis: %s\n", plan.TimeBasis())
	fmt.Printf("Output format: %s\n", c.config.Format)
	if c.config.OutputDir != "" {
		fmt.Printf("Output directory: %s\n", c.config.OutputDir)
	}
	fmt.Println()
}

// showHelp displays the help message
func (c *BalanceCommand) showHelp() {
	fmt.Printf(`Line Balancer CLI - Water-Flow Balancing for Garment Sewing Lines

USAGE:
    linebalance -processes <csv>                     # Balance with default plan
    linebalance -processes <csv> -plan <yaml|json>   # Balance with a line plan
    linebalance -processes <csv> -analyze -operators <n>   # Takt analysis

OPTIONS:
    -processes <file>   Path to the process sheet CSV
    -plan <file>        Path to the line plan (YAML or JSON)
    -analyze            Run takt analysis instead of balancing
    -operators <n>      Total operators for takt analysis
    -format <fmt>       Output format: text, json, csv, html (default: text)
    -output <dir>       Output directory for generated reports
    -ct-fallback <p>    CT fallback policy: zero, smv (default: zero)
    -trace <file>       Write OpenTelemetry spans to the given file
    -verbose            Enable verbose output with the run's event log
    -help               Show this help message

PROCESS SHEET FORMAT:

processes.csv:
    no,section,flow,machine,process,smv,ct,part
    1,Front,F1,SNLS,Join shoulder seam,40,38,Front
    2,Front,F2,OL,Attach collar,30,31,Collar
    3,Assembly,A1,SNLS,Side seam,20,22,Body

Rows without a positive smv or without a section name are skipped. A missing
ct falls back to the -ct-fallback policy.

LINE PLAN FORMAT:

plan.yaml:
    basis: smv                 # smv or ct
    operators:
      Front: 2
      Assembly: 3
    selected_sections: [Front, Assembly]
    suggestions:
      bottleneck_keyword: ass
      spread_threshold: 20

EXAMPLES:
    # Balance a line with 1 operator per section
    linebalance -processes examples/shirt_line/processes.csv

    # Balance against a plan with HTML report
    linebalance -processes data/processes.csv -plan data/plan.yaml -format html -output results/

    # Estimate operators per section for a headcount of 20
    linebalance -processes data/processes.csv -analyze -operators 20

    # Verbose run with the event log and a trace file
    linebalance -processes data/processes.csv -plan data/plan.yaml -verbose -trace trace.json
`)
}
