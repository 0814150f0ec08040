package repositories

import "github.com/jackc/pgx/v5/pgxpool"

// Repositories bundles all entity repositories over one connection pool
type Repositories struct {
	UserRepository    *UserRepository
	StudentRepository *StudentRepository
	CompanyRepository *CompanyRepository
}

// NewRepositories creates the repository container
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:    NewUserRepository(db),
		StudentRepository: NewStudentRepository(db),
		CompanyRepository: NewCompanyRepository(db),
	}
}
