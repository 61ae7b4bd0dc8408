// Package testing provides shared line fixtures for tests that need
// realistic sections without parsing a CSV sheet first.
package testing

import (
	"fmt"

	"github.com/vsinha/linebalance/pkg/domain/entities"
	"github.com/vsinha/linebalance/pkg/infrastructure/repositories/memory"
)

// mustCreateProcess is a helper for tests - panics on validation error
func mustCreateProcess(
	no int,
	description string,
	smv, ct float64,
	flow, machine, part string,
) entities.Process {
	process, err := entities.NewProcess(no, description, smv, ct, flow, machine, part)
	if err != nil {
		panic(err)
	}
	return *process
}

// mustCreateSection is a helper for tests - panics on validation error
func mustCreateSection(name string, processes []entities.Process) *entities.Section {
	section, err := entities.NewSection(entities.SectionName(name), processes)
	if err != nil {
		panic(err)
	}
	return section
}

// mustLoadRepository loads sections into a fresh in-memory repository
func mustLoadRepository(sections []*entities.Section) *memory.ProcessRepository {
	repo := memory.NewProcessRepository(len(sections))
	if err := repo.LoadSections(sections); err != nil {
		panic(err)
	}
	return repo
}

// BuildShirtLineData builds a men's shirt line: two preparation sections
// feeding final assembly, with measured cycle times close to their SMVs.
// Section totals under SMV: Front 100s, Sleeve 75s, Assembly 165s.
func BuildShirtLineData() ([]*entities.Section, *memory.ProcessRepository) {
	sections := []*entities.Section{
		mustCreateSection("Front", []entities.Process{
			mustCreateProcess(1, "Join shoulder seam", 40, 38, "F1", "SNLS", "Front panel"),
			mustCreateProcess(2, "Attach front placket", 35, 36, "F2", "OL", "Front panel"),
			mustCreateProcess(3, "Topstitch placket", 25, 24, "F3", "SNLS", "Front panel"),
		}),
		mustCreateSection("Sleeve", []entities.Process{
			mustCreateProcess(4, "Hem sleeve opening", 30, 31, "S1", "OL", "Sleeve"),
			mustCreateProcess(5, "Attach cuff", 45, 47, "S2", "SNLS", "Cuff"),
		}),
		mustCreateSection("Assembly", []entities.Process{
			mustCreateProcess(6, "Set sleeves", 55, 56, "A1", "OL", "Body"),
			mustCreateProcess(7, "Close side seams", 60, 58, "A2", "OL", "Body"),
			mustCreateProcess(8, "Attach collar", 50, 52, "A3", "DNLS", "Collar"),
		}),
	}

	return sections, mustLoadRepository(sections)
}

// BuildSimpleLineData creates simple test data for basic tests
func BuildSimpleLineData() ([]*entities.Section, *memory.ProcessRepository) {
	sections := []*entities.Section{
		mustCreateSection("Front", []entities.Process{
			mustCreateProcess(1, "Join shoulder seam", 40, 38, "F1", "SNLS", "Front"),
			mustCreateProcess(2, "Attach collar", 30, 31, "F2", "OL", "Collar"),
			mustCreateProcess(3, "Topstitch collar", 20, 22, "F3", "SNLS", "Collar"),
		}),
		mustCreateSection("Assembly", []entities.Process{
			mustCreateProcess(4, "Side seam", 80, 78, "A1", "OL", "Body"),
		}),
	}

	return sections, mustLoadRepository(sections)
}

// BuildWideLineData generates a deterministic line with the given number of
// sections and processes per section, for performance tests. Process times
// cycle through 10-59 seconds so every section balances differently.
func BuildWideLineData(sectionCount, processesPerSection int) ([]*entities.Section, *memory.ProcessRepository) {
	sections := make([]*entities.Section, 0, sectionCount)

	no := 0
	for i := 0; i < sectionCount; i++ {
		processes := make([]entities.Process, 0, processesPerSection)
		for j := 0; j < processesPerSection; j++ {
			no++
			smv := float64(10 + (no*7)%50)
			processes = append(processes, mustCreateProcess(
				no,
				fmt.Sprintf("Operation %d", no),
				smv,
				smv*1.05,
				fmt.Sprintf("W%d", no),
				"SNLS",
				"Body",
			))
		}
		sections = append(sections, mustCreateSection(fmt.Sprintf("Section %d", i+1), processes))
	}

	return sections, mustLoadRepository(sections)
}
