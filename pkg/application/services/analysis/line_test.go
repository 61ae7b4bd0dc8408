package analysis

import (
	"strings"
	"testing"

	"github.com/vsinha/linebalance/pkg/domain/entities"
)

func sectionResult(name string, totalUsed float64, operatorCount int, secs ...float64) entities.SectionResult {
	ops := make([]entities.Operator, len(secs))
	var bottleneck float64
	for i, sec := range secs {
		ops[i] = entities.Operator{Index: i + 1, Sec: sec}
		if sec > bottleneck {
			bottleneck = sec
		}
	}
	return entities.SectionResult{
		Name:          entities.SectionName(name),
		Basis:         entities.BasisSMV,
		OperatorCount: operatorCount,
		Operators:     ops,
		TotalTimeUsed: totalUsed,
		Bottleneck:    bottleneck,
	}
}

func TestAnalyzeLineMetrics(t *testing.T) {
	analyzer := NewLineAnalyzer()
	results := []entities.SectionResult{
		sectionResult("Front", 90, 2, 45, 45),
		sectionResult("Assembly", 80, 1, 80),
	}

	line := analyzer.Analyze(results, 170, entities.BasisSMV, nil)

	if line.Bottleneck != 80 {
		t.Errorf("bottleneck = %g, want 80", line.Bottleneck)
	}
	if line.OutputRate != 45 {
		t.Errorf("output rate = %d, want 45", line.OutputRate)
	}
	// 170 * 100 / (80 * 3)
	if line.Efficiency != 70.8 {
		t.Errorf("efficiency = %g, want 70.8", line.Efficiency)
	}
	// Cycles 45 and 80: (125 * 100) / (80 * 2)
	if line.LineBalance != 78.13 {
		t.Errorf("line balance = %g, want 78.13", line.LineBalance)
	}
	if line.TotalOperators != 3 {
		t.Errorf("total operators = %d, want 3", line.TotalOperators)
	}

	// The 80s operator is re-marked as the line bottleneck.
	if got := line.Sections[1].Operators[0].Status; got != entities.StatusLineBottleneck {
		t.Errorf("Assembly operator status = %v, want line-bottleneck", got)
	}
	for _, op := range line.Sections[0].Operators {
		if op.Status == entities.StatusLineBottleneck {
			t.Errorf("Front operator %d wrongly marked as line bottleneck", op.Index)
		}
	}
}

func TestAnalyzeSuggestions(t *testing.T) {
	analyzer := NewLineAnalyzer()
	results := []entities.SectionResult{
		sectionResult("Front", 90, 2, 45, 45),
		sectionResult("Assembly", 80, 1, 80),
	}

	line := analyzer.Analyze(results, 170, entities.BasisSMV, nil)

	if len(line.Suggestions) != 3 {
		t.Fatalf("got %d suggestions: %v", len(line.Suggestions), line.Suggestions)
	}
	if want := "🛑 Critical Bottleneck: 80s in Assembly."; line.Suggestions[0] != want {
		t.Errorf("suggestion[0] = %q, want %q", line.Suggestions[0], want)
	}
	if want := "👉 Action: Check Assembly machines."; line.Suggestions[1] != want {
		t.Errorf("suggestion[1] = %q, want %q", line.Suggestions[1], want)
	}
	// Gap between 80s bottleneck and 45s fastest operator exceeds 20s.
	if !strings.Contains(line.Suggestions[2], "Workload spread") {
		t.Errorf("suggestion[2] = %q, want workload spread warning", line.Suggestions[2])
	}
}

func TestAnalyzeBottleneckTiesJoined(t *testing.T) {
	analyzer := NewLineAnalyzer(WithSpreadThreshold(100))
	results := []entities.SectionResult{
		sectionResult("Front", 80, 1, 80),
		sectionResult("Back", 80, 1, 80),
	}

	line := analyzer.Analyze(results, 160, entities.BasisSMV, nil)

	var found bool
	for _, s := range line.Suggestions {
		if strings.Contains(s, "Front & Back") {
			found = true
		}
	}
	if !found {
		t.Errorf("tied bottleneck sections not joined: %v", line.Suggestions)
	}
}

func TestAnalyzeExcellentBalance(t *testing.T) {
	analyzer := NewLineAnalyzer(WithSpreadThreshold(100))
	results := []entities.SectionResult{
		sectionResult("Front", 50, 1, 50),
		sectionResult("Back", 50, 1, 50),
	}

	line := analyzer.Analyze(results, 100, entities.BasisSMV, nil)

	if line.LineBalance != 100 {
		t.Fatalf("line balance = %g, want 100", line.LineBalance)
	}
	if len(line.Suggestions) == 0 || !strings.Contains(line.Suggestions[0], "Excellent") {
		t.Errorf("expected excellent-balance note first, got %v", line.Suggestions)
	}
}

func TestAnalyzeSelectedSections(t *testing.T) {
	analyzer := NewLineAnalyzer()
	results := []entities.SectionResult{
		sectionResult("P2", 383, 5, 76.6, 76.6, 76.6, 76.6, 76.6),
		sectionResult("Assembly", 263.82, 3, 87.94, 87.94, 87.94),
		sectionResult("Packing", 40, 1, 40),
	}

	t.Run("subset", func(t *testing.T) {
		selected := []entities.SectionName{"P2", "Assembly"}
		line := analyzer.Analyze(results, 686.82, entities.BasisSMV, selected)

		// Cycles 76.6 and 87.94: (164.54 * 100) / (87.94 * 2)
		if line.LineBalance != 93.55 {
			t.Errorf("line balance = %g, want 93.55", line.LineBalance)
		}
	})

	t.Run("unknown names ignored", func(t *testing.T) {
		selected := []entities.SectionName{"P2", "Missing"}
		line := analyzer.Analyze(results, 686.82, entities.BasisSMV, selected)

		// Only P2 contributes, so the single cycle balances perfectly.
		if line.LineBalance != 100 {
			t.Errorf("line balance = %g, want 100", line.LineBalance)
		}
	})
}

func TestAnalyzeEmptyInput(t *testing.T) {
	analyzer := NewLineAnalyzer()

	line := analyzer.Analyze(nil, 0, entities.BasisSMV, nil)

	if line.Bottleneck != 0 || line.OutputRate != 0 || line.Efficiency != 0 || line.LineBalance != 0 {
		t.Errorf("expected all-zero metrics, got %+v", line)
	}
	// A 0% balance still trips the low-balance warning; nothing else fires.
	if len(line.Suggestions) != 1 || !strings.Contains(line.Suggestions[0], "low") {
		t.Errorf("suggestions = %v", line.Suggestions)
	}
	for _, s := range line.Suggestions {
		if strings.Contains(s, "Bottleneck") {
			t.Errorf("bottleneck suggestion appended with zero bottleneck: %q", s)
		}
	}
}

func TestAnalyzeCustomKeyword(t *testing.T) {
	analyzer := NewLineAnalyzer(WithBottleneckKeyword("PACK"), WithSpreadThreshold(100))
	results := []entities.SectionResult{
		sectionResult("Packing", 80, 1, 80),
	}

	line := analyzer.Analyze(results, 80, entities.BasisSMV, nil)

	var found bool
	for _, s := range line.Suggestions {
		if strings.Contains(s, "Action") {
			found = true
		}
	}
	if !found {
		t.Errorf("keyword hint missing: %v", line.Suggestions)
	}
}
