package balancing

import (
	"github.com/vsinha/linebalance/pkg/application/services/shared"
	"github.com/vsinha/linebalance/pkg/domain/entities"
)

// BuildSectionResult derives one section's metrics from its allocation and
// marks section-bottleneck operators. Efficiency for BOTH bases is computed
// against the bottleneck of the selected basis's allocation; comparing the
// alternative basis's total against the same allocation is intentional.
// The line-level pass may later override operator statuses.
func BuildSectionResult(
	section entities.Section,
	operators []entities.Operator,
	operatorCount int,
	basis entities.TimeBasis,
	targetCT float64,
) entities.SectionResult {
	var bottleneck float64
	for _, op := range operators {
		if op.Sec > bottleneck {
			bottleneck = op.Sec
		}
	}

	for i := range operators {
		if bottleneck > 0 && operators[i].Sec == bottleneck {
			operators[i].Status = entities.StatusSectionBottleneck
		} else {
			operators[i].Status = entities.StatusNormal
		}
	}

	outputRate := 0
	if bottleneck > 0 {
		outputRate = shared.RoundInt(3600 / bottleneck)
	}

	var effSMV, effCT float64
	if denom := bottleneck * float64(operatorCount); denom > 0 {
		effSMV = shared.Round(section.TotalTime(entities.BasisSMV)*100/denom, 1)
		effCT = shared.Round(section.TotalTime(entities.BasisCT)*100/denom, 1)
	}

	return entities.SectionResult{
		Name:          section.Name,
		Basis:         basis,
		TargetCycle:   targetCT,
		OperatorCount: operatorCount,
		Operators:     operators,
		TotalTimeUsed: shared.Round(section.TotalTime(basis), 2),
		Bottleneck:    bottleneck,
		OutputRate:    outputRate,
		EfficiencySMV: effSMV,
		EfficiencyCT:  effCT,
	}
}
