package repositories

import "github.com/vsinha/linebalance/pkg/domain/entities"

// ProcessRepository provides access to parsed sections in production order.
// Implementations must preserve section insertion order and the process
// order within each section.
type ProcessRepository interface {
	GetSection(name entities.SectionName) (*entities.Section, error)
	GetAllSections() ([]*entities.Section, error)
	SectionNames() []entities.SectionName
	LoadSections(sections []*entities.Section) error
}
