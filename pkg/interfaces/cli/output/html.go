package output

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/vsinha/linebalance/pkg/application/dto"
)

//go:embed templates/*.html
var templateFS embed.FS

// TemplateData contains all data for rendering the HTML report
type TemplateData struct {
	Line                 *dto.LineReport
	Basis                string
	Suggestions          []string
	Worksheet            *dto.Worksheet
	BalanceTimeFormatted string
	GeneratedAt          string
	InputFile            string
}

// RenderHTML renders the line report as a standalone HTML document
func RenderHTML(report *Report, config Config) (string, error) {
	data := &TemplateData{
		Line:                 report.Line,
		Basis:                strings.ToUpper(report.Basis.String()),
		Suggestions:          report.Result.Suggestions,
		Worksheet:            dto.BuildWorksheet(report.Sections, report.Result),
		BalanceTimeFormatted: formatDuration(config.BalanceTime),
		GeneratedAt:          time.Now().Format("2006-01-02 15:04:05"),
		InputFile:            config.InputFile,
	}

	tmpl, err := template.New("report.html").Funcs(template.FuncMap{
		"isSplit": func(cell string) bool { return strings.HasSuffix(cell, "*") },
	}).ParseFS(templateFS, "templates/report.html")
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}
	return buf.String(), nil
}

// generateHTMLOutput creates the HTML report file
func generateHTMLOutput(report *Report, config Config) error {
	if config.OutputDir == "" {
		return fmt.Errorf("output directory required for HTML format")
	}

	html, err := RenderHTML(report, config)
	if err != nil {
		return fmt.Errorf("failed to generate HTML report: %w", err)
	}

	if err := os.MkdirAll(config.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	filename := filepath.Join(config.OutputDir, "balance_report.html")
	if err := os.WriteFile(filename, []byte(html), 0644); err != nil {
		return fmt.Errorf("failed to write HTML file: %w", err)
	}

	if config.Verbose {
		fmt.Printf("🌐 HTML report saved to: %s\n", filename)
	}
	return nil
}

// formatDuration formats a time duration into human-readable format
func formatDuration(d time.Duration) string {
	if d < time.Second {
		return "< 1s"
	}
	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	if d < time.Hour {
		return fmt.Sprintf("%.1fm", d.Minutes())
	}
	return fmt.Sprintf("%.1fh", d.Hours())
}
