package output

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/vsinha/linebalance/pkg/application/dto"
	"github.com/vsinha/linebalance/pkg/domain/entities"
)

// Config holds configuration for report generation
type Config struct {
	Format      string
	OutputDir   string
	Verbose     bool
	BalanceTime time.Duration
	InputFile   string
}

// Report bundles everything the renderers need: the report payload, the
// source sections the worksheet matrix is laid out from, and the raw result.
type Report struct {
	Line     *dto.LineReport
	Result   *entities.LineResult
	Sections []*entities.Section
	Basis    entities.TimeBasis
}

// Generate creates output in the specified format
func Generate(report *Report, config Config) error {
	switch config.Format {
	case "text":
		return generateTextOutput(report, config)
	case "json":
		return generateJSONOutput(report, config)
	case "csv":
		return generateCSVOutput(report, config)
	case "html":
		return generateHTMLOutput(report, config)
	default:
		return fmt.Errorf("unsupported output format: %s", config.Format)
	}
}

// generateTextOutput creates human-readable text output
func generateTextOutput(report *Report, config Config) error {
	line := report.Line

	fmt.Printf("📊 Line Balancing Summary (%s)\n", strings.ToUpper(report.Basis.String()))
	fmt.Printf("==============================\n\n")

	fmt.Printf("Bottleneck: %gs\n", line.Bottleneck)
	fmt.Printf("Output: %d pcs/hr\n", line.Output)
	fmt.Printf("Efficiency: %g%%\n", line.EffSMV)
	fmt.Printf("Line Balance: %g%%\n", line.LineBalanceEff)
	fmt.Printf("Balance Time: %v\n\n", config.BalanceTime)

	for _, section := range line.SectionsResults {
		fmt.Printf("🧵 %s (%d operators, %gs used)\n", section.Name, section.NumOps, section.TotalTimeUsed)
		fmt.Printf("%-10s %-10s %-8s %s\n", "Operator", "Load (s)", "Status", "Tasks")
		fmt.Printf("%-10s %-10s %-8s %s\n", "----------", "----------", "--------", "-----")

		for _, op := range section.Operators {
			labels := make([]string, 0, len(op.Tasks))
			for _, task := range op.Tasks {
				labels = append(labels, task.Desc)
			}
			fmt.Printf("%-10s %-10.2f %-8s %s\n", op.Op, op.Sec, op.Color, strings.Join(labels, "; "))
		}
		fmt.Println()
	}

	if line.Suggest != "" {
		fmt.Printf("💡 %s\n", line.Suggest)
	}

	return nil
}

// generateJSONOutput creates JSON output
func generateJSONOutput(report *Report, config Config) error {
	jsonData, err := json.MarshalIndent(report.Line, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if config.OutputDir == "" {
		fmt.Println(string(jsonData))
		return nil
	}

	if err := os.MkdirAll(config.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	filename := filepath.Join(config.OutputDir, "balance_report.json")
	if err := os.WriteFile(filename, jsonData, 0644); err != nil {
		return fmt.Errorf("failed to write JSON file: %w", err)
	}

	if config.Verbose {
		fmt.Printf("💾 JSON report saved to: %s\n", filename)
	}
	return nil
}

// generateCSVOutput writes the worksheet matrix as CSV
func generateCSVOutput(report *Report, config Config) error {
	if config.OutputDir == "" {
		return fmt.Errorf("output directory required for CSV format")
	}

	if err := os.MkdirAll(config.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	filename := filepath.Join(config.OutputDir, "balance_worksheet.csv")
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create worksheet file: %w", err)
	}
	defer file.Close()

	worksheet := dto.BuildWorksheet(report.Sections, report.Result)
	if err := worksheet.WriteCSV(file); err != nil {
		return fmt.Errorf("failed to write worksheet CSV: %w", err)
	}

	if config.Verbose {
		fmt.Printf("💾 Worksheet saved to: %s\n", filename)
	}
	return nil
}

// GenerateTakt renders a takt analysis in text or JSON format
func GenerateTakt(report *dto.TaktReport, config Config) error {
	switch config.Format {
	case "text":
		printTaktTable("SMV", report.SMVData)
		printTaktTable("CT", report.CTData)
		return nil
	case "json":
		jsonData, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(jsonData))
		return nil
	default:
		return fmt.Errorf("unsupported output format for analysis: %s", config.Format)
	}
}

func printTaktTable(mode string, data dto.TaktDataPayload) {
	fmt.Printf("⏱️  Takt Analysis (%s)\n", mode)
	fmt.Printf("Total Time: %gs  Takt Time: %gs\n", data.TotalTime, data.TaktTime)
	fmt.Printf("%-20s %-12s %-14s %s\n", "Section", "Total (s)", "Theoretical", "Suggested")
	fmt.Printf("%-20s %-12s %-14s %s\n", "--------------------", "------------", "--------------", "---------")
	for _, section := range data.Sections {
		fmt.Printf("%-20s %-12g %-14g %d\n", section.Name, section.Total, section.Theoretical, section.Suggested)
	}
	fmt.Println()
}
