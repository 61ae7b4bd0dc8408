package entities

import (
	"fmt"
	"strings"
)

// SectionName identifies a named production section (e.g. "Front", "Assembly")
type SectionName string

// TimeBasis selects which of the two duration values a computation reads
type TimeBasis int

const (
	BasisSMV TimeBasis = iota
	BasisCT
)

// String method for TimeBasis enum
func (b TimeBasis) String() string {
	switch b {
	case BasisSMV:
		return "smv"
	case BasisCT:
		return "ct"
	default:
		return "unknown"
	}
}

// ParseTimeBasis converts a request-level mode string into a TimeBasis
func ParseTimeBasis(s string) (TimeBasis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "smv":
		return BasisSMV, nil
	case "ct", "ngie":
		return BasisCT, nil
	default:
		return BasisSMV, fmt.Errorf("invalid time basis: %s (expected: smv or ct)", s)
	}
}

// Process represents an atomic unit of garment-assembly work.
// SMV and CT carry the two alternative durations in seconds; Flow, Machine
// and Part are metadata carried through untouched for reporting.
type Process struct {
	No          int
	Description string
	SMV         float64
	CT          float64
	Flow        string
	Machine     string
	Part        string
}

// NewProcess creates a validated Process
func NewProcess(
	no int,
	description string,
	smv, ct float64,
	flow, machine, part string,
) (*Process, error) {
	if strings.TrimSpace(description) == "" {
		return nil, fmt.Errorf("process description cannot be empty")
	}
	if smv < 0 {
		return nil, fmt.Errorf("primary time cannot be negative, got %g", smv)
	}
	if ct < 0 {
		return nil, fmt.Errorf("secondary time cannot be negative, got %g", ct)
	}

	return &Process{
		No:          no,
		Description: description,
		SMV:         smv,
		CT:          ct,
		Flow:        flow,
		Machine:     machine,
		Part:        part,
	}, nil
}

// Duration returns the process time under the given basis
func (p Process) Duration(basis TimeBasis) float64 {
	if basis == BasisCT {
		return p.CT
	}
	return p.SMV
}
