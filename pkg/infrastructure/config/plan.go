package config

import (
	"context"
	"fmt"
	"strings"

	"github.com/viant/afs"
	"gopkg.in/yaml.v3"

	"github.com/vsinha/linebalance/pkg/domain/entities"
)

// Plan is one balancing run's configuration: how many operators each section
// gets, which time basis drives the allocation, and which sections count
// toward the line-balance percentage. Plans parse from YAML or JSON.
type Plan struct {
	Basis       string           `yaml:"basis" json:"basis"`
	Operators   map[string]int   `yaml:"operators" json:"operators"`
	Selected    []string         `yaml:"selected_sections" json:"selected_sections"`
	Suggestions SuggestionTuning `yaml:"suggestions" json:"suggestions"`
}

// SuggestionTuning adjusts the line analyzer's advisory checks. Zero values
// keep the analyzer defaults.
type SuggestionTuning struct {
	BottleneckKeyword string  `yaml:"bottleneck_keyword" json:"bottleneck_keyword"`
	SpreadThreshold   float64 `yaml:"spread_threshold" json:"spread_threshold"`
}

// Default returns a plan that balances every section with one operator on
// the primary basis
func Default() *Plan {
	return &Plan{Basis: entities.BasisSMV.String()}
}

// Load reads and validates a plan from the given URL (file://, mem:// or a
// plain path)
func Load(ctx context.Context, URL string) (*Plan, error) {
	fs := afs.New()
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to load plan from %s: %w", URL, err)
	}

	plan, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("invalid plan %s: %w", URL, err)
	}
	return plan, nil
}

// Parse decodes and validates a plan document
func Parse(data []byte) (*Plan, error) {
	plan := &Plan{}
	if err := yaml.Unmarshal(data, plan); err != nil {
		return nil, fmt.Errorf("failed to parse plan: %w", err)
	}
	if err := plan.Validate(); err != nil {
		return nil, err
	}
	return plan, nil
}

// Validate normalizes the plan and rejects values the balancer cannot use.
// An empty basis defaults to the primary basis.
func (p *Plan) Validate() error {
	if strings.TrimSpace(p.Basis) == "" {
		p.Basis = entities.BasisSMV.String()
	}
	if _, err := entities.ParseTimeBasis(p.Basis); err != nil {
		return err
	}
	if p.Suggestions.SpreadThreshold < 0 {
		return fmt.Errorf("spread threshold cannot be negative, got %g", p.Suggestions.SpreadThreshold)
	}
	return nil
}

// TimeBasis returns the plan's parsed basis, primary when unset or invalid
func (p *Plan) TimeBasis() entities.TimeBasis {
	basis, err := entities.ParseTimeBasis(p.Basis)
	if err != nil {
		return entities.BasisSMV
	}
	return basis
}

// OperatorCounts returns the section headcounts as domain names
func (p *Plan) OperatorCounts() map[entities.SectionName]int {
	counts := make(map[entities.SectionName]int, len(p.Operators))
	for name, count := range p.Operators {
		counts[entities.SectionName(name)] = count
	}
	return counts
}

// SelectedSections returns the sections chosen for the line-balance
// percentage, nil when the plan selects all
func (p *Plan) SelectedSections() []entities.SectionName {
	if len(p.Selected) == 0 {
		return nil
	}
	names := make([]entities.SectionName, 0, len(p.Selected))
	for _, name := range p.Selected {
		names = append(names, entities.SectionName(name))
	}
	return names
}
