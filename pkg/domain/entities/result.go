package entities

// SectionResult holds one section's balanced outcome and derived metrics.
// Bottleneck is kept unrounded so equality checks against the line bottleneck
// compare the exact accumulated values; TotalTimeUsed is rounded to 2 places
// when the result is built and is the figure line-balance math reads.
type SectionResult struct {
	Name          SectionName
	Basis         TimeBasis
	TargetCycle   float64
	OperatorCount int
	Operators     []Operator
	TotalTimeUsed float64
	Bottleneck    float64
	OutputRate    int
	EfficiencySMV float64
	EfficiencyCT  float64
}

// LineResult aggregates all sections of one balance run.
type LineResult struct {
	RunID          string
	Basis          TimeBasis
	Bottleneck     float64
	OutputRate     int
	Efficiency     float64
	LineBalance    float64
	Suggestions    []string
	Sections       []SectionResult
	TotalOperators int
}

// TaktSection is one section's share of a takt-time analysis.
type TaktSection struct {
	Name        SectionName
	Total       float64
	Theoretical float64
	Suggested   int
}

// TaktAnalysis is the outcome of a takt-time analysis for one basis: the
// line total, the takt time for the requested operator count, and the
// theoretical/suggested operator split per section.
type TaktAnalysis struct {
	Basis     TimeBasis
	TotalTime float64
	TaktTime  float64
	Sections  []TaktSection
}
