package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository        *UserRepository
	InstitutionRepository *InstitutionRepository
	StudentRepository     *StudentRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:        NewUserRepository(db),
		InstitutionRepository: NewInstitutionRepository(db),
		StudentRepository:     NewStudentRepository(db),
	}
}
