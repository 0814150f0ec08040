package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/srkad/placement-portal/internal/app/models"
)

// CompanyRepository handles database operations for company listings
type CompanyRepository struct {
	db *pgxpool.Pool
}

// NewCompanyRepository creates a new company repository
func NewCompanyRepository(db *pgxpool.Pool) *CompanyRepository {
	return &CompanyRepository{
		db: db,
	}
}

// Create inserts a new company listing and sets its generated ID
func (r *CompanyRepository) Create(ctx context.Context, company *models.Company) error {
	query := `
		INSERT INTO companies (name, role, location, package, schedule_date, eligibility, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		company.Name,
		company.Role,
		company.Location,
		company.Package,
		company.ScheduleDate,
		company.Eligibility,
		company.Notes,
	).Scan(&company.ID, &company.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating company: %w", err)
	}

	return nil
}

// GetAll retrieves all company listings, newest first
func (r *CompanyRepository) GetAll(ctx context.Context) ([]*models.Company, error) {
	query := `
		SELECT id, name, role, location, package, schedule_date, eligibility, notes, created_at
		FROM companies
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error retrieving companies: %w", err)
	}
	defer rows.Close()

	var companies []*models.Company
	for rows.Next() {
		var c models.Company
		if err := rows.Scan(
			&c.ID,
			&c.Name,
			&c.Role,
			&c.Location,
			&c.Package,
			&c.ScheduleDate,
			&c.Eligibility,
			&c.Notes,
			&c.CreatedAt,
		); err != nil {
			return nil, err
		}
		companies = append(companies, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return companies, nil
}
