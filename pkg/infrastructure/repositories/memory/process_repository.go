package memory

import (
	"fmt"

	"github.com/vsinha/linebalance/pkg/domain/entities"
	"github.com/vsinha/linebalance/pkg/domain/repositories"
)

// ProcessRepository provides in-memory section storage. Sections keep their
// insertion order; loading a section under an existing name appends its
// processes to the section already held.
type ProcessRepository struct {
	sections   []entities.Section
	sectionMap map[entities.SectionName]int
}

// NewProcessRepository creates a new in-memory process repository
func NewProcessRepository(expectedSections int) *ProcessRepository {
	return &ProcessRepository{
		sections:   make([]entities.Section, 0, expectedSections),
		sectionMap: make(map[entities.SectionName]int, expectedSections),
	}
}

// Verify interface compliance
var _ repositories.ProcessRepository = (*ProcessRepository)(nil)

// LoadSections loads sections into the repository
func (r *ProcessRepository) LoadSections(sections []*entities.Section) error {
	for _, section := range sections {
		if section == nil {
			return fmt.Errorf("cannot load nil section")
		}
		r.AddSection(*section)
	}
	return nil
}

// AddSection adds a section, merging into an existing section of the same name
func (r *ProcessRepository) AddSection(section entities.Section) {
	if index, exists := r.sectionMap[section.Name]; exists {
		for _, p := range section.Processes {
			r.sections[index].Append(p)
		}
		return
	}
	r.sectionMap[section.Name] = len(r.sections)
	r.sections = append(r.sections, section)
}

// AddProcess appends one process to the named section, creating the section
// at the end of the order if it does not exist yet
func (r *ProcessRepository) AddProcess(name entities.SectionName, p entities.Process) {
	if index, exists := r.sectionMap[name]; exists {
		r.sections[index].Append(p)
		return
	}
	r.sectionMap[name] = len(r.sections)
	r.sections = append(r.sections, entities.Section{
		Name:      name,
		Processes: []entities.Process{p},
	})
}

// GetSection returns the named section
func (r *ProcessRepository) GetSection(name entities.SectionName) (*entities.Section, error) {
	index, exists := r.sectionMap[name]
	if !exists {
		return nil, fmt.Errorf("section not found: %s", name)
	}
	return &r.sections[index], nil
}

// GetAllSections returns all sections in insertion order
func (r *ProcessRepository) GetAllSections() ([]*entities.Section, error) {
	var sections []*entities.Section
	for i := range r.sections {
		sections = append(sections, &r.sections[i])
	}
	return sections, nil
}

// SectionNames returns the section names in insertion order
func (r *ProcessRepository) SectionNames() []entities.SectionName {
	names := make([]entities.SectionName, 0, len(r.sections))
	for _, section := range r.sections {
		names = append(names, section.Name)
	}
	return names
}
