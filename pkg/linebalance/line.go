// Package linebalance provides a small embeddable API over the balancing
// pipeline. Programs that only need results can load a process sheet and
// call Balance or Analyze without wiring loaders, repositories and services
// themselves.
package linebalance

import (
	"context"
	"fmt"

	"github.com/vsinha/linebalance/pkg/application/dto"
	"github.com/vsinha/linebalance/pkg/application/services/balancing"
	"github.com/vsinha/linebalance/pkg/domain/entities"
	"github.com/vsinha/linebalance/pkg/infrastructure/repositories/csv"
	"github.com/vsinha/linebalance/pkg/infrastructure/repositories/memory"
)

// Line is a parsed process sheet ready for balancing. A Line is safe for
// concurrent use; every call runs against the same loaded sections.
type Line struct {
	sections []*entities.Section
	repo     *memory.ProcessRepository
	service  *balancing.Service
}

// Load parses a process sheet held in memory
func Load(data []byte) (*Line, error) {
	sections, err := csv.NewLoader().ParseSections(data)
	if err != nil {
		return nil, err
	}
	return newLine(sections)
}

// LoadFile reads and parses a process sheet from a local path or URL
func LoadFile(ctx context.Context, path string) (*Line, error) {
	sections, err := csv.NewLoader().LoadSections(ctx, path)
	if err != nil {
		return nil, err
	}
	return newLine(sections)
}

func newLine(sections []*entities.Section) (*Line, error) {
	repo := memory.NewProcessRepository(len(sections))
	if err := repo.LoadSections(sections); err != nil {
		return nil, err
	}
	return &Line{
		sections: sections,
		repo:     repo,
		service:  balancing.NewService(),
	}, nil
}

// Sections lists the section names in sheet order
func (l *Line) Sections() []string {
	names := make([]string, 0, len(l.sections))
	for _, section := range l.sections {
		names = append(names, string(section.Name))
	}
	return names
}

// Balance balances the line with the given operator counts per section and
// returns the report payload. Sections missing from the map get one
// operator; the basis is "smv" or "ct".
func (l *Line) Balance(ctx context.Context, operators map[string]int, basis string) (*dto.LineReport, error) {
	result, err := l.balance(ctx, operators, basis)
	if err != nil {
		return nil, err
	}
	return dto.NewLineReport(result), nil
}

// Worksheet balances the line and returns the per-operator worksheet used
// on the sewing floor
func (l *Line) Worksheet(ctx context.Context, operators map[string]int, basis string) (*dto.Worksheet, error) {
	result, err := l.balance(ctx, operators, basis)
	if err != nil {
		return nil, err
	}
	return dto.BuildWorksheet(l.sections, result), nil
}

// Analyze sizes each section for the given total headcount under both bases
func (l *Line) Analyze(ctx context.Context, totalOperators int) (*dto.TaktReport, error) {
	if totalOperators <= 0 {
		return nil, fmt.Errorf("totalOperators must be greater than zero")
	}

	smv, err := l.service.Takt(ctx, l.repo, totalOperators, entities.BasisSMV)
	if err != nil {
		return nil, err
	}
	ct, err := l.service.Takt(ctx, l.repo, totalOperators, entities.BasisCT)
	if err != nil {
		return nil, err
	}
	return dto.NewTaktReport(smv, ct), nil
}

func (l *Line) balance(ctx context.Context, operators map[string]int, basis string) (*entities.LineResult, error) {
	parsed, err := entities.ParseTimeBasis(basis)
	if err != nil {
		return nil, err
	}

	counts := make(map[entities.SectionName]int, len(operators))
	for name, count := range operators {
		counts[entities.SectionName(name)] = count
	}

	return l.service.Balance(ctx, l.repo, balancing.Request{
		OperatorCounts: counts,
		Basis:          parsed,
	})
}
