package analysis

import (
	"github.com/vsinha/linebalance/pkg/application/services/shared"
	"github.com/vsinha/linebalance/pkg/domain/entities"
)

// Takt computes a takt-time analysis for one basis: the line total, the takt
// time for the given headcount, and for each section the theoretical operator
// requirement along with a suggested whole-number count (never below 1).
// Totals, takt and theoretical values are rounded to 2 places.
func Takt(sections []entities.Section, totalOperators int, basis entities.TimeBasis) entities.TaktAnalysis {
	var total float64
	for _, sec := range sections {
		total += sec.TotalTime(basis)
	}

	var takt float64
	if totalOperators > 0 {
		takt = total / float64(totalOperators)
	}

	out := entities.TaktAnalysis{
		Basis:     basis,
		TotalTime: shared.Round(total, 2),
		TaktTime:  shared.Round(takt, 2),
		Sections:  make([]entities.TaktSection, 0, len(sections)),
	}

	for _, sec := range sections {
		secTotal := sec.TotalTime(basis)

		var theoretical float64
		if takt > 0 {
			theoretical = secTotal / takt
		}

		suggested := shared.RoundInt(theoretical)
		if suggested < 1 {
			suggested = 1
		}

		out.Sections = append(out.Sections, entities.TaktSection{
			Name:        sec.Name,
			Total:       shared.Round(secTotal, 2),
			Theoretical: shared.Round(theoretical, 2),
			Suggested:   suggested,
		})
	}

	return out
}
