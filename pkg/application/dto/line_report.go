package dto

import (
	"strings"

	"github.com/vsinha/linebalance/pkg/application/services/shared"
	"github.com/vsinha/linebalance/pkg/domain/entities"
)

// TaskPayload is one assigned task fragment on the wire
type TaskPayload struct {
	No         int     `json:"no"`
	Desc       string  `json:"desc"`
	Time       float64 `json:"time"`
	Percentage float64 `json:"percentage"`
}

// OperatorPayload is one operator column on the wire. Op carries the display
// name ("Op 1") and Color the status color used by report frontends.
type OperatorPayload struct {
	Op    string        `json:"op"`
	Sec   float64       `json:"sec"`
	Tasks []TaskPayload `json:"tasks"`
	Color string        `json:"color"`
}

// SectionPayload is one balanced section on the wire
type SectionPayload struct {
	Name          string            `json:"name"`
	TotalTimeUsed float64           `json:"total_time_used"`
	Operators     []OperatorPayload `json:"operators"`
	SectionBn     float64           `json:"section_bn"`
	SecOutput     int               `json:"sec_output"`
	SecEffSMV     float64           `json:"sec_eff_smv"`
	SecEffCT      float64           `json:"sec_eff_ct"`
	NumOps        int               `json:"num_ops"`
}

// LineReport is the complete balancing response payload. Suggest carries the
// advisory lines joined into one display string.
type LineReport struct {
	RunID           string           `json:"run_id"`
	Bottleneck      float64          `json:"bottleneck"`
	Output          int              `json:"output"`
	EffSMV          float64          `json:"eff_smv"`
	LineBalanceEff  float64          `json:"line_balance_eff"`
	Suggest         string           `json:"suggest"`
	SectionsResults []SectionPayload `json:"sections_results"`
}

// NewLineReport converts a domain line result into the wire payload
func NewLineReport(line *entities.LineResult) *LineReport {
	sections := make([]SectionPayload, 0, len(line.Sections))
	for _, section := range line.Sections {
		sections = append(sections, newSectionPayload(section))
	}

	return &LineReport{
		RunID:           line.RunID,
		Bottleneck:      shared.Round(line.Bottleneck, 2),
		Output:          line.OutputRate,
		EffSMV:          line.Efficiency,
		LineBalanceEff:  line.LineBalance,
		Suggest:         strings.Join(line.Suggestions, " "),
		SectionsResults: sections,
	}
}

func newSectionPayload(section entities.SectionResult) SectionPayload {
	operators := make([]OperatorPayload, 0, len(section.Operators))
	for _, op := range section.Operators {
		tasks := make([]TaskPayload, 0, len(op.Tasks))
		for _, task := range op.Tasks {
			tasks = append(tasks, TaskPayload{
				No:         task.ProcessNo,
				Desc:       task.Label,
				Time:       task.Sec,
				Percentage: task.Percentage,
			})
		}
		operators = append(operators, OperatorPayload{
			Op:    op.DisplayName(),
			Sec:   op.Sec,
			Tasks: tasks,
			Color: op.Status.Color(),
		})
	}

	return SectionPayload{
		Name:          string(section.Name),
		TotalTimeUsed: section.TotalTimeUsed,
		Operators:     operators,
		SectionBn:     section.Bottleneck,
		SecOutput:     section.OutputRate,
		SecEffSMV:     section.EfficiencySMV,
		SecEffCT:      section.EfficiencyCT,
		NumOps:        section.OperatorCount,
	}
}
