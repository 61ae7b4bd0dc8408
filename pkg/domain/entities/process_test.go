package entities

import "testing"

func TestProcess_Validation(t *testing.T) {
	validProc, err := NewProcess(3, "Attach collar", 40, 38.5, "F1", "SNLS", "Collar")
	if err != nil {
		t.Fatalf("Expected valid process creation to succeed: %v", err)
	}
	if validProc.No != 3 {
		t.Errorf("Expected process no 3, got %d", validProc.No)
	}
	if validProc.Part != "Collar" {
		t.Errorf("Expected part Collar, got %s", validProc.Part)
	}

	// Test validation failures
	testCases := []struct {
		name        string
		description string
		smv         float64
		ct          float64
		expectError string
	}{
		{"empty description", "", 10, 10, "process description cannot be empty"},
		{"blank description", "   ", 10, 10, "process description cannot be empty"},
		{"negative primary time", "Sew hem", -1, 10, "primary time cannot be negative, got -1"},
		{"negative secondary time", "Sew hem", 10, -0.5, "secondary time cannot be negative, got -0.5"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewProcess(1, tc.description, tc.smv, tc.ct, "", "", "")
			if err == nil {
				t.Fatalf("Expected error for %s, but got none", tc.name)
			}
			if err.Error() != tc.expectError {
				t.Errorf("Expected error '%s', got '%s'", tc.expectError, err.Error())
			}
		})
	}
}

func TestProcess_Duration(t *testing.T) {
	proc := Process{No: 1, Description: "Join shoulder", SMV: 42, CT: 36.5}

	if got := proc.Duration(BasisSMV); got != 42 {
		t.Errorf("Expected SMV duration 42, got %g", got)
	}
	if got := proc.Duration(BasisCT); got != 36.5 {
		t.Errorf("Expected CT duration 36.5, got %g", got)
	}
}

func TestParseTimeBasis(t *testing.T) {
	testCases := []struct {
		input     string
		expected  TimeBasis
		expectErr bool
	}{
		{"smv", BasisSMV, false},
		{"SMV", BasisSMV, false},
		{"ct", BasisCT, false},
		{" CT ", BasisCT, false},
		{"ngie", BasisCT, false},
		{"", BasisSMV, true},
		{"minutes", BasisSMV, true},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			basis, err := ParseTimeBasis(tc.input)
			if tc.expectErr {
				if err == nil {
					t.Fatalf("Expected error for input %q, but got none", tc.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error for input %q: %v", tc.input, err)
			}
			if basis != tc.expected {
				t.Errorf("Expected basis %v, got %v", tc.expected, basis)
			}
		})
	}
}

func TestTimeBasis_String(t *testing.T) {
	if BasisSMV.String() != "smv" {
		t.Errorf("Expected smv, got %s", BasisSMV.String())
	}
	if BasisCT.String() != "ct" {
		t.Errorf("Expected ct, got %s", BasisCT.String())
	}
	if TimeBasis(99).String() != "unknown" {
		t.Errorf("Expected unknown, got %s", TimeBasis(99).String())
	}
}
