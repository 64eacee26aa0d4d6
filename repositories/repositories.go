package repositories

import (
	"github.com/pdlamini/portfolio/database"
)

// Repositories struct holds all repository interfaces
type Repositories struct {
	Contact ContactRepository
	Audit   AuditRepository
}

// NewRepositories creates and initializes all repositories
func NewRepositories(db *database.DB) *Repositories {
	return &Repositories{
		Contact: NewContactRepository(db),
		Audit:   NewAuditRepository(db),
	}
}
