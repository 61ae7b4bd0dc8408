package analysis

import (
	"fmt"
	"math"
	"strings"

	"github.com/vsinha/linebalance/pkg/application/services/shared"
	"github.com/vsinha/linebalance/pkg/domain/entities"
)

const (
	defaultBottleneckKeyword = "ass"
	defaultSpreadThreshold   = 20.0
)

// Option configures a LineAnalyzer
type Option func(*LineAnalyzer)

// WithBottleneckKeyword sets the substring that triggers the targeted
// machine-check hint when it appears in a bottleneck section's name
func WithBottleneckKeyword(keyword string) Option {
	return func(a *LineAnalyzer) {
		a.keyword = strings.ToLower(keyword)
	}
}

// WithSpreadThreshold sets the gap in seconds between the line bottleneck and
// the fastest operator above which the workload-spread warning fires
func WithSpreadThreshold(seconds float64) Option {
	return func(a *LineAnalyzer) {
		a.spreadThreshold = seconds
	}
}

// LineAnalyzer aggregates per-section balancing results into line-level
// metrics and advisory suggestions.
type LineAnalyzer struct {
	keyword         string
	spreadThreshold float64
}

// NewLineAnalyzer creates a line analyzer with default suggestion tuning
func NewLineAnalyzer(opts ...Option) *LineAnalyzer {
	a := &LineAnalyzer{
		keyword:         defaultBottleneckKeyword,
		spreadThreshold: defaultSpreadThreshold,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Analyze computes the global bottleneck, output rate, efficiency and
// line-balance percentage over the given section results, re-marking any
// operator sitting exactly at the line bottleneck. totalPrimary is the line's
// total primary (SMV) time across all sections. selected restricts which
// sections contribute to the line-balance percentage; empty means all, and
// names that match no section are ignored. The returned result carries the
// same section slice with statuses updated in place.
func (a *LineAnalyzer) Analyze(
	results []entities.SectionResult,
	totalPrimary float64,
	basis entities.TimeBasis,
	selected []entities.SectionName,
) entities.LineResult {
	var lineBottleneck float64
	totalOperators := 0
	for _, res := range results {
		totalOperators += len(res.Operators)
		for _, op := range res.Operators {
			if op.Sec > 0 && op.Sec > lineBottleneck {
				lineBottleneck = op.Sec
			}
		}
	}

	for i := range results {
		for j := range results[i].Operators {
			if results[i].Operators[j].Sec == lineBottleneck {
				results[i].Operators[j].Status = entities.StatusLineBottleneck
			}
		}
	}

	outputRate := 0
	if lineBottleneck > 0 {
		outputRate = shared.RoundInt(3600 / lineBottleneck)
	}

	var efficiency float64
	if denom := lineBottleneck * float64(totalOperators); denom > 0 {
		efficiency = shared.Round(totalPrimary*100/denom, 1)
	}

	lineBalance := lineBalancePercent(cycleTimes(results, selected))

	return entities.LineResult{
		Basis:          basis,
		Bottleneck:     lineBottleneck,
		OutputRate:     outputRate,
		Efficiency:     efficiency,
		LineBalance:    lineBalance,
		Suggestions:    a.suggestions(results, lineBottleneck, lineBalance),
		Sections:       results,
		TotalOperators: totalOperators,
	}
}

// cycleTimes returns the per-section average cycle time (total time used over
// operator count) for the selected sections, preserving selection order.
func cycleTimes(results []entities.SectionResult, selected []entities.SectionName) []float64 {
	var cycles []float64

	appendCycle := func(res entities.SectionResult) {
		if res.OperatorCount > 0 {
			cycles = append(cycles, res.TotalTimeUsed/float64(res.OperatorCount))
		} else {
			cycles = append(cycles, 0)
		}
	}

	if len(selected) == 0 {
		for _, res := range results {
			appendCycle(res)
		}
		return cycles
	}

	for _, name := range selected {
		for _, res := range results {
			if res.Name == name {
				appendCycle(res)
				break
			}
		}
	}
	return cycles
}

// lineBalancePercent measures how evenly the section cycle times sit relative
// to the slowest one: sum(cycles) * 100 / (max(cycles) * count).
func lineBalancePercent(cycles []float64) float64 {
	if len(cycles) == 0 {
		return 0
	}
	var sum, max float64
	for _, c := range cycles {
		sum += c
		if c > max {
			max = c
		}
	}
	denom := max * float64(len(cycles))
	if denom <= 0 {
		return 0
	}
	return shared.Round(sum*100/denom, 2)
}

// suggestions builds the advisory text lines in fixed order. Each check is
// independent and additive; none of them affects the computed metrics.
func (a *LineAnalyzer) suggestions(
	results []entities.SectionResult,
	lineBottleneck, lineBalance float64,
) []string {
	var out []string

	if lineBalance < 60 {
		out = append(out, fmt.Sprintf("⚠️ Line Balance is low (%g%%). Consider combining processes.", lineBalance))
	} else if lineBalance > 90 {
		out = append(out, fmt.Sprintf("✅ Excellent Line Balance (%g%%).", lineBalance))
	}

	if lineBottleneck > 0 {
		var names []string
		for _, res := range results {
			if res.Bottleneck == lineBottleneck {
				names = append(names, string(res.Name))
			}
		}
		out = append(out, fmt.Sprintf("🛑 Critical Bottleneck: %gs in %s.",
			shared.Round(lineBottleneck, 2), strings.Join(names, " & ")))

		for _, name := range names {
			if strings.Contains(strings.ToLower(name), a.keyword) {
				out = append(out, "👉 Action: Check Assembly machines.")
				break
			}
		}

		fastest := math.Inf(1)
		for _, res := range results {
			for _, op := range res.Operators {
				if op.Sec < fastest {
					fastest = op.Sec
				}
			}
		}
		if gap := lineBottleneck - fastest; !math.IsInf(fastest, 1) && gap > a.spreadThreshold {
			out = append(out, fmt.Sprintf("📊 Workload spread is high: %gs between slowest and fastest operator.",
				shared.Round(gap, 2)))
		}
	}

	return out
}
