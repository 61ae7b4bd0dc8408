package entities

import "fmt"

// OperatorStatus classifies an operator for display coloring only;
// it never influences allocation or metrics.
type OperatorStatus int

const (
	StatusNormal OperatorStatus = iota
	StatusSectionBottleneck
	StatusLineBottleneck
)

// String method for OperatorStatus enum
func (s OperatorStatus) String() string {
	switch s {
	case StatusNormal:
		return "normal"
	case StatusSectionBottleneck:
		return "section-bottleneck"
	case StatusLineBottleneck:
		return "line-bottleneck"
	default:
		return "unknown"
	}
}

// Color returns the display color used by reports for this status
func (s OperatorStatus) Color() string {
	switch s {
	case StatusSectionBottleneck:
		return "orange"
	case StatusLineBottleneck:
		return "red"
	default:
		return "green"
	}
}

// TaskFragment is a (possibly partial) assignment of one process's time to
// one operator. Percentage is the share of the originating process's duration
// this fragment represents.
type TaskFragment struct {
	ProcessNo  int
	Label      string
	Sec        float64
	Percentage float64
}

// Operator represents one worker slot within a section's balanced result.
// Index is 1-based within its section; Sec is the accumulated assigned time.
type Operator struct {
	Index  int
	Sec    float64
	Tasks  []TaskFragment
	Status OperatorStatus
}

// DisplayName returns the operator's report label (e.g. "Op 3")
func (o Operator) DisplayName() string {
	return fmt.Sprintf("Op %d", o.Index)
}

// TaskLabel formats the display label for a fragment of the given process.
// The percentage suffix appears only for partial assignments (< 99.9%), and
// the part name, when present, is appended last.
func TaskLabel(p Process, percentage float64) string {
	label := fmt.Sprintf("No.%d: %s", p.No, p.Description)
	if percentage < 99.9 {
		label += fmt.Sprintf(" (%.0f%%)", percentage)
	}
	if p.Part != "" {
		label += fmt.Sprintf(" - %q", p.Part)
	}
	return label
}
