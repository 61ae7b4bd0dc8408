package dto

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/vsinha/linebalance/pkg/application/services/shared"
	"github.com/vsinha/linebalance/pkg/domain/entities"
)

// staticHeaders are the fixed leading columns of the worksheet matrix;
// operator columns follow, one per operator across all sections.
var staticHeaders = []string{"No", "Section", "Flow", "MC", "Process", "SMV", "CT", "Part"}

// Worksheet is the line-plan matrix: one row per process in original sheet
// order, and one column per operator. Each cell holds the time fragment that
// operator absorbed from the row's process. Fragments of a process split
// across more than one operator carry a trailing "*".
type Worksheet struct {
	GroupRow  []string
	HeaderRow []string
	Rows      [][]string
}

type assignmentKey struct {
	section entities.SectionName
	no      int
}

// BuildWorksheet lays out the balanced line as a worksheet matrix. Sections
// and result sections are matched by name so the caller can pass the same
// slices it balanced with.
func BuildWorksheet(sections []*entities.Section, line *entities.LineResult) *Worksheet {
	groupRow := make([]string, len(staticHeaders))
	headerRow := append([]string{}, staticHeaders...)

	// Map every task fragment to its operator's global column.
	assignments := make(map[assignmentKey]map[int]float64)
	for _, res := range line.Sections {
		if len(res.Operators) == 0 {
			continue
		}
		groupRow = append(groupRow, string(res.Name))
		for i := 1; i < len(res.Operators); i++ {
			groupRow = append(groupRow, "")
		}

		for _, op := range res.Operators {
			col := len(headerRow)
			headerRow = append(headerRow, op.DisplayName())
			for _, task := range op.Tasks {
				key := assignmentKey{section: res.Name, no: task.ProcessNo}
				if assignments[key] == nil {
					assignments[key] = make(map[int]float64)
				}
				assignments[key][col] = task.Sec
			}
		}
	}

	worksheet := &Worksheet{GroupRow: groupRow, HeaderRow: headerRow}
	for _, section := range sections {
		for _, process := range section.Processes {
			row := make([]string, len(headerRow))
			row[0] = strconv.Itoa(process.No)
			row[1] = string(section.Name)
			row[2] = process.Flow
			row[3] = process.Machine
			row[4] = process.Description
			row[5] = formatSeconds(process.SMV)
			row[6] = formatSeconds(process.CT)
			row[7] = process.Part

			cells := assignments[assignmentKey{section: section.Name, no: process.No}]
			split := len(cells) > 1
			for col, seconds := range cells {
				value := formatSeconds(shared.Round(seconds, 2))
				if split {
					value += "*"
				}
				row[col] = value
			}
			worksheet.Rows = append(worksheet.Rows, row)
		}
	}
	return worksheet
}

// WriteCSV renders the worksheet as CSV: the section group row, the header
// row, then one row per process.
func (w *Worksheet) WriteCSV(out io.Writer) error {
	writer := csv.NewWriter(out)
	if err := writer.Write(w.GroupRow); err != nil {
		return fmt.Errorf("failed to write worksheet group row: %w", err)
	}
	if err := writer.Write(w.HeaderRow); err != nil {
		return fmt.Errorf("failed to write worksheet header row: %w", err)
	}
	for _, row := range w.Rows {
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write worksheet row: %w", err)
		}
	}
	writer.Flush()
	return writer.Error()
}

// WorksheetFilename names the exported worksheet for the given basis
func WorksheetFilename(basis entities.TimeBasis) string {
	return fmt.Sprintf("Balancing_Worksheet_%s.csv", strings.ToUpper(basis.String()))
}

func formatSeconds(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
