package services

import (
	"fmt"

	"github.com/vsinha/linebalance/pkg/domain/entities"
)

// PlanValidator checks a balance request against the parsed sections before
// the allocator runs. Findings are advisory except Errors, which callers
// should treat as client input problems.
type PlanValidator struct{}

// NewPlanValidator creates a new plan validator
func NewPlanValidator() *PlanValidator {
	return &PlanValidator{}
}

// ValidationResult contains the results of plan validation
type ValidationResult struct {
	UnknownSections  []entities.SectionName
	UnknownSelected  []entities.SectionName
	DuplicateNumbers map[entities.SectionName][]int
	Errors           []string
	Warnings         []string
}

// ValidatePlan validates configured operator counts and the selected-section
// subset against the sections actually present in the data.
func (v *PlanValidator) ValidatePlan(
	sections []*entities.Section,
	operatorCounts map[entities.SectionName]int,
	selected []entities.SectionName,
) *ValidationResult {
	result := &ValidationResult{
		UnknownSections:  make([]entities.SectionName, 0),
		UnknownSelected:  make([]entities.SectionName, 0),
		DuplicateNumbers: make(map[entities.SectionName][]int),
		Errors:           make([]string, 0),
		Warnings:         make([]string, 0),
	}

	known := make(map[entities.SectionName]bool, len(sections))
	for _, section := range sections {
		known[section.Name] = true

		if dups := duplicateProcessNumbers(section); len(dups) > 0 {
			result.DuplicateNumbers[section.Name] = dups
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("section %s has duplicate process numbers: %v", section.Name, dups))
		}
	}

	for name, count := range operatorCounts {
		if !known[name] {
			result.UnknownSections = append(result.UnknownSections, name)
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("plan names unknown section %s", name))
		}
		if count <= 0 {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("section %s has non-positive operator count %d, clamping to 1", name, count))
		}
	}

	for _, name := range selected {
		if !known[name] {
			result.UnknownSelected = append(result.UnknownSelected, name)
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("selected section %s not present in data, skipping", name))
		}
	}

	if len(sections) == 0 {
		result.Warnings = append(result.Warnings, "no sections parsed, result will be empty")
	}

	return result
}

// duplicateProcessNumbers reports process numbers appearing more than once
// within one section. Numbers need not be dense, but duplicates make the
// worksheet's per-process rows ambiguous.
func duplicateProcessNumbers(section *entities.Section) []int {
	seen := make(map[int]int)
	var dups []int
	for _, p := range section.Processes {
		seen[p.No]++
		if seen[p.No] == 2 {
			dups = append(dups, p.No)
		}
	}
	return dups
}
