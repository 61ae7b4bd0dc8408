package csv

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"github.com/viant/afs"

	"github.com/vsinha/linebalance/pkg/domain/entities"
)

// CTFallback selects how a missing or non-positive secondary (CT) time is
// resolved during parsing.
type CTFallback int

const (
	// CTFallbackZero leaves the secondary time at 0 so CT summaries expose
	// unmeasured processes
	CTFallbackZero CTFallback = iota
	// CTFallbackSMV mirrors the primary time into the secondary
	CTFallbackSMV
)

// String method for CTFallback enum
func (f CTFallback) String() string {
	switch f {
	case CTFallbackSMV:
		return "smv"
	default:
		return "zero"
	}
}

// ParseCTFallback converts a flag value into a CTFallback
func ParseCTFallback(s string) (CTFallback, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "zero":
		return CTFallbackZero, nil
	case "smv":
		return CTFallbackSMV, nil
	default:
		return CTFallbackZero, fmt.Errorf("invalid ct fallback: %s (expected: zero or smv)", s)
	}
}

var expectedHeader = []string{"no", "section", "flow", "machine", "process", "smv", "ct", "part"}

// Loader reads process sheets into insertion-ordered sections. Malformed
// rows are skipped individually, never aborting the parse: rows without a
// positive primary time or without a section name carry no balanceable work.
type Loader struct {
	fallback CTFallback
	fs       afs.Service
}

// NewLoader creates a loader with the zero CT fallback
func NewLoader() *Loader {
	return NewLoaderWithFallback(CTFallbackZero)
}

// NewLoaderWithFallback creates a loader with an explicit CT fallback policy
func NewLoaderWithFallback(fallback CTFallback) *Loader {
	return &Loader{
		fallback: fallback,
		fs:       afs.New(),
	}
}

// LoadSections reads the process sheet at URL (file://, mem:// or a plain
// path) and returns its sections in first-appearance order
func (l *Loader) LoadSections(ctx context.Context, URL string) ([]*entities.Section, error) {
	data, err := l.fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to open process sheet %s: %w", URL, err)
	}

	sections, err := l.ParseSections(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse process sheet %s: %w", URL, err)
	}
	return sections, nil
}

// ParseSections parses process-sheet bytes. Rows belonging to the same
// section merge in encounter order even when interleaved with other sections.
func (l *Loader) ParseSections(data []byte) ([]*entities.Section, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1 // row widths are checked per row

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read process sheet: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("process sheet must have a header row")
	}
	if !validateHeader(records[0], expectedHeader) {
		return nil, fmt.Errorf("process sheet header mismatch. Expected: %v, Got: %v", expectedHeader, records[0])
	}

	var sections []*entities.Section
	index := make(map[entities.SectionName]int)

	for i, record := range records[1:] {
		process, name, ok := l.parseRow(record, i+1)
		if !ok {
			continue
		}

		if at, exists := index[name]; exists {
			sections[at].Append(*process)
			continue
		}

		section, err := entities.NewSection(name, []entities.Process{*process})
		if err != nil {
			continue
		}
		index[name] = len(sections)
		sections = append(sections, section)
	}

	return sections, nil
}

// parseRow converts one data row, reporting ok=false for rows the sheet
// policy skips. rowNum is the 1-based data row index used when the sheet
// leaves the process number blank.
func (l *Loader) parseRow(record []string, rowNum int) (*entities.Process, entities.SectionName, bool) {
	if len(record) != len(expectedHeader) {
		return nil, "", false
	}

	smv, err := strconv.ParseFloat(strings.TrimSpace(record[5]), 64)
	if err != nil || smv <= 0 {
		return nil, "", false
	}

	name := strings.TrimSpace(record[1])
	if name == "" {
		return nil, "", false
	}

	ct, err := strconv.ParseFloat(strings.TrimSpace(record[6]), 64)
	if err != nil || ct <= 0 {
		ct = 0
		if l.fallback == CTFallbackSMV {
			ct = smv
		}
	}

	no, err := strconv.Atoi(strings.TrimSpace(record[0]))
	if err != nil {
		no = rowNum
	}

	process, err := entities.NewProcess(
		no,
		strings.TrimSpace(record[4]),
		smv,
		ct,
		strings.TrimSpace(record[2]),
		strings.TrimSpace(record[3]),
		strings.TrimSpace(record[7]),
	)
	if err != nil {
		return nil, "", false
	}
	return process, entities.SectionName(name), true
}

func validateHeader(actual, expected []string) bool {
	if len(actual) != len(expected) {
		return false
	}
	for i, col := range expected {
		if strings.ToLower(strings.TrimSpace(actual[i])) != col {
			return false
		}
	}
	return true
}
