package services

import (
	"testing"

	"github.com/vsinha/linebalance/pkg/domain/entities"
)

func TestPlanValidator_ValidatePlan(t *testing.T) {
	validator := NewPlanValidator()

	sections := []*entities.Section{
		{Name: "Front", Processes: []entities.Process{
			{No: 1, Description: "a", SMV: 10},
			{No: 2, Description: "b", SMV: 12},
		}},
		{Name: "Assembly", Processes: []entities.Process{
			{No: 5, Description: "c", SMV: 30},
			{No: 5, Description: "d", SMV: 14},
		}},
	}

	result := validator.ValidatePlan(
		sections,
		map[entities.SectionName]int{"Front": 2, "Assembly": 3, "Sleeves": 1},
		[]entities.SectionName{"Front", "Collar"},
	)

	if len(result.Errors) != 0 {
		t.Fatalf("Expected no errors, got %v", result.Errors)
	}
	if len(result.UnknownSections) != 1 || result.UnknownSections[0] != "Sleeves" {
		t.Errorf("Expected unknown section Sleeves, got %v", result.UnknownSections)
	}
	if len(result.UnknownSelected) != 1 || result.UnknownSelected[0] != "Collar" {
		t.Errorf("Expected unknown selected section Collar, got %v", result.UnknownSelected)
	}
	if dups := result.DuplicateNumbers["Assembly"]; len(dups) != 1 || dups[0] != 5 {
		t.Errorf("Expected duplicate process number 5 in Assembly, got %v", dups)
	}
	if len(result.Warnings) != 3 {
		t.Errorf("Expected 3 warnings, got %d: %v", len(result.Warnings), result.Warnings)
	}
}

func TestPlanValidator_NonPositiveCounts(t *testing.T) {
	validator := NewPlanValidator()
	sections := []*entities.Section{
		{Name: "Back", Processes: []entities.Process{{No: 1, Description: "a", SMV: 5}}},
	}

	result := validator.ValidatePlan(
		sections,
		map[entities.SectionName]int{"Back": 0},
		nil,
	)

	if len(result.Warnings) != 1 {
		t.Fatalf("Expected 1 warning, got %d: %v", len(result.Warnings), result.Warnings)
	}
}

func TestPlanValidator_EmptyData(t *testing.T) {
	validator := NewPlanValidator()

	result := validator.ValidatePlan(nil, nil, nil)

	if len(result.Warnings) != 1 {
		t.Fatalf("Expected empty-data warning, got %v", result.Warnings)
	}
	if len(result.Errors) != 0 {
		t.Errorf("Expected no errors for empty data, got %v", result.Errors)
	}
}
