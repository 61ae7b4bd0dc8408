package balancing

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/vsinha/linebalance/pkg/application/services/analysis"
	"github.com/vsinha/linebalance/pkg/domain/entities"
	"github.com/vsinha/linebalance/pkg/domain/repositories"
)

// Request carries one balancing run's inputs. Sections absent from
// OperatorCounts get one operator, and non-positive counts clamp to 1.
// Selected restricts which sections feed the line-balance percentage;
// empty means all. A RunID is generated when left empty.
type Request struct {
	RunID          string
	OperatorCounts map[entities.SectionName]int
	Basis          entities.TimeBasis
	Selected       []entities.SectionName
}

// Service implements the line-balancing pipeline: allocate every section
// under the requested basis, derive per-section metrics, then aggregate the
// line-level result.
type Service struct {
	allocator *Allocator
	analyzer  *analysis.LineAnalyzer
}

// NewService creates a balancing service with default suggestion tuning
func NewService() *Service {
	return NewServiceWithAnalyzer(analysis.NewLineAnalyzer())
}

// NewServiceWithAnalyzer creates a balancing service with a tuned line analyzer
func NewServiceWithAnalyzer(analyzer *analysis.LineAnalyzer) *Service {
	return &Service{
		allocator: NewAllocator(),
		analyzer:  analyzer,
	}
}

// Balance balances every section held by the repository and aggregates the
// line result. The computation itself performs no I/O; the context is checked
// between sections so a cancelled request stops early.
func (s *Service) Balance(
	ctx context.Context,
	repo repositories.ProcessRepository,
	req Request,
) (*entities.LineResult, error) {
	sections, err := repo.GetAllSections()
	if err != nil {
		return nil, fmt.Errorf("failed to load sections: %w", err)
	}

	results := make([]entities.SectionResult, 0, len(sections))
	var totalPrimary float64
	for _, section := range sections {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		count := operatorCount(req.OperatorCounts, section.Name)
		operators := s.allocator.Allocate(section.Processes, count, req.Basis)
		target := s.allocator.TargetCycleTime(section.Processes, count, req.Basis)

		results = append(results, BuildSectionResult(*section, operators, count, req.Basis, target))
		totalPrimary += section.TotalTime(entities.BasisSMV)
	}

	line := s.analyzer.Analyze(results, totalPrimary, req.Basis, req.Selected)
	line.RunID = req.RunID
	if line.RunID == "" {
		line.RunID = uuid.NewString()
	}
	return &line, nil
}

// Takt runs the takt-time analysis for one basis over the repository's
// sections, sizing each section for the given total headcount.
func (s *Service) Takt(
	ctx context.Context,
	repo repositories.ProcessRepository,
	totalOperators int,
	basis entities.TimeBasis,
) (*entities.TaktAnalysis, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sections, err := repo.GetAllSections()
	if err != nil {
		return nil, fmt.Errorf("failed to load sections: %w", err)
	}

	flat := make([]entities.Section, 0, len(sections))
	for _, section := range sections {
		flat = append(flat, *section)
	}

	result := analysis.Takt(flat, totalOperators, basis)
	return &result, nil
}

// operatorCount resolves a section's headcount from the request map.
func operatorCount(counts map[entities.SectionName]int, name entities.SectionName) int {
	count, ok := counts[name]
	if !ok || count < 1 {
		return 1
	}
	return count
}
