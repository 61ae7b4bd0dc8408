package entities

import "fmt"

// Section is a named, ordered sequence of processes. Order is production
// sequence and must be preserved through allocation and reporting.
type Section struct {
	Name      SectionName
	Processes []Process
}

// NewSection creates a validated Section
func NewSection(name SectionName, processes []Process) (*Section, error) {
	if name == "" {
		return nil, fmt.Errorf("section name cannot be empty")
	}
	return &Section{Name: name, Processes: processes}, nil
}

// Append adds a process at the end of the section's production sequence
func (s *Section) Append(p Process) {
	s.Processes = append(s.Processes, p)
}

// TotalTime sums the section's process durations under the given basis
func (s Section) TotalTime(basis TimeBasis) float64 {
	var total float64
	for _, p := range s.Processes {
		total += p.Duration(basis)
	}
	return total
}
