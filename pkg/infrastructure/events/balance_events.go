package events

import (
	"github.com/vsinha/linebalance/pkg/domain/entities"
)

const (
	RunStartedEvent      = "balance.run.started"
	SectionBalancedEvent = "balance.section.balanced"
	BottleneckFoundEvent = "balance.bottleneck.found"
	RunCompletedEvent    = "balance.run.completed"
)

type RunStarted struct {
	Basis    string   `json:"basis"`
	Sections []string `json:"sections"`
}

type SectionBalanced struct {
	Section       string  `json:"section"`
	OperatorCount int     `json:"operator_count"`
	Bottleneck    float64 `json:"bottleneck"`
	EfficiencySMV float64 `json:"efficiency_smv"`
	EfficiencyCT  float64 `json:"efficiency_ct"`
}

type BottleneckFound struct {
	Sections []string `json:"sections"`
	Seconds  float64  `json:"seconds"`
}

type RunCompleted struct {
	Bottleneck  float64 `json:"bottleneck"`
	OutputRate  int     `json:"output_rate"`
	Efficiency  float64 `json:"efficiency"`
	LineBalance float64 `json:"line_balance"`
	Suggestions int     `json:"suggestions"`
}

func NewRunStartedEvent(runID string, basis entities.TimeBasis, names []entities.SectionName) Event {
	sections := make([]string, 0, len(names))
	for _, name := range names {
		sections = append(sections, string(name))
	}
	return NewEvent(RunStartedEvent, runID, RunStarted{
		Basis:    basis.String(),
		Sections: sections,
	})
}

func NewSectionBalancedEvent(runID string, result entities.SectionResult) Event {
	return NewEvent(SectionBalancedEvent, runID, SectionBalanced{
		Section:       string(result.Name),
		OperatorCount: result.OperatorCount,
		Bottleneck:    result.Bottleneck,
		EfficiencySMV: result.EfficiencySMV,
		EfficiencyCT:  result.EfficiencyCT,
	})
}

// NewBottleneckFoundEvent records which sections sit at the line bottleneck.
// Only meaningful when the line has a positive bottleneck.
func NewBottleneckFoundEvent(runID string, line entities.LineResult) Event {
	var sections []string
	for _, res := range line.Sections {
		if res.Bottleneck == line.Bottleneck {
			sections = append(sections, string(res.Name))
		}
	}
	return NewEvent(BottleneckFoundEvent, runID, BottleneckFound{
		Sections: sections,
		Seconds:  line.Bottleneck,
	})
}

func NewRunCompletedEvent(runID string, line entities.LineResult) Event {
	return NewEvent(RunCompletedEvent, runID, RunCompleted{
		Bottleneck:  line.Bottleneck,
		OutputRate:  line.OutputRate,
		Efficiency:  line.Efficiency,
		LineBalance: line.LineBalance,
		Suggestions: len(line.Suggestions),
	})
}
