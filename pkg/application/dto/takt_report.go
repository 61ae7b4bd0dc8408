package dto

import (
	"github.com/vsinha/linebalance/pkg/domain/entities"
)

// TaktSectionPayload is one section's takt figures on the wire
type TaktSectionPayload struct {
	Name        string  `json:"name"`
	Total       float64 `json:"total"`
	Theoretical float64 `json:"theoretical"`
	Suggested   int     `json:"suggested"`
}

// TaktDataPayload is the takt analysis for a single basis
type TaktDataPayload struct {
	TotalTime float64              `json:"total_time"`
	TaktTime  float64              `json:"takt_time"`
	Sections  []TaktSectionPayload `json:"sections"`
}

// TaktReport carries both bases so a frontend can toggle between them
type TaktReport struct {
	SMVData TaktDataPayload `json:"smv_data"`
	CTData  TaktDataPayload `json:"ct_data"`
}

// NewTaktReport converts the two per-basis analyses into the wire payload
func NewTaktReport(smv, ct *entities.TaktAnalysis) *TaktReport {
	return &TaktReport{
		SMVData: newTaktData(smv),
		CTData:  newTaktData(ct),
	}
}

func newTaktData(analysis *entities.TaktAnalysis) TaktDataPayload {
	sections := make([]TaktSectionPayload, 0, len(analysis.Sections))
	for _, section := range analysis.Sections {
		sections = append(sections, TaktSectionPayload{
			Name:        string(section.Name),
			Total:       section.Total,
			Theoretical: section.Theoretical,
			Suggested:   section.Suggested,
		})
	}
	return TaktDataPayload{
		TotalTime: analysis.TotalTime,
		TaktTime:  analysis.TaktTime,
		Sections:  sections,
	}
}
