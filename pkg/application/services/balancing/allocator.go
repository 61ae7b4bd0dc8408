package balancing

import (
	"github.com/vsinha/linebalance/pkg/domain/entities"
)

// epsilon is the tolerance under which remaining process time counts as fully
// placed and remaining operator capacity counts as exhausted.
const epsilon = 0.001

// Allocator distributes a section's ordered processes across operators using
// sequential water-flow fill: each operator is filled toward the target cycle
// time, excess time from one process spills onto the next operator, and the
// cursor never moves backward or resets between processes.
type Allocator struct{}

// NewAllocator creates a new allocator
func NewAllocator() *Allocator {
	return &Allocator{}
}

// TargetCycleTime returns the ideal per-operator time for the given processes
// and operator count under the selected basis, 0 when operatorCount <= 0.
func (a *Allocator) TargetCycleTime(
	processes []entities.Process,
	operatorCount int,
	basis entities.TimeBasis,
) float64 {
	if operatorCount <= 0 {
		return 0
	}
	var total float64
	for _, p := range processes {
		total += p.Duration(basis)
	}
	return total / float64(operatorCount)
}

// Allocate walks the processes in production order exactly once and returns
// the resulting operators, indexed 1..operatorCount. A non-positive operator
// count yields an empty slice, not an error. When accumulated work overruns
// the available operators, everything left lands on the final operator, whose
// time may then exceed the target cycle time.
func (a *Allocator) Allocate(
	processes []entities.Process,
	operatorCount int,
	basis entities.TimeBasis,
) []entities.Operator {
	if operatorCount <= 0 {
		return []entities.Operator{}
	}

	targetCT := a.TargetCycleTime(processes, operatorCount, basis)

	operators := make([]entities.Operator, operatorCount)
	for i := range operators {
		operators[i] = entities.Operator{Index: i + 1, Tasks: []entities.TaskFragment{}}
	}

	cursor := 0
	for _, proc := range processes {
		duration := proc.Duration(basis)
		remaining := duration

		for remaining > epsilon {
			// Past the last operator: clamp and force the rest onto it.
			overflow := cursor >= operatorCount
			if overflow {
				cursor = operatorCount - 1
			}
			op := &operators[cursor]

			spaceLeft := targetCT - op.Sec
			if !overflow && spaceLeft <= epsilon {
				cursor++
				continue
			}

			take := remaining
			if !overflow && spaceLeft < take {
				take = spaceLeft
			}

			percentage := 0.0
			if duration > 0 {
				percentage = take / duration * 100
			}

			op.Tasks = append(op.Tasks, entities.TaskFragment{
				ProcessNo:  proc.No,
				Label:      entities.TaskLabel(proc, percentage),
				Sec:        take,
				Percentage: percentage,
			})
			op.Sec += take
			remaining -= take

			// Operator filled but the process still has time left: spill
			// onto the next operator without resetting position.
			if remaining > epsilon {
				cursor++
			}
		}
	}

	return operators
}
