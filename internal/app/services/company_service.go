package services

import (
	"context"
	"strings"

	"github.com/srkad/placement-portal/internal/app/models"
	"github.com/srkad/placement-portal/internal/app/models/dto"
	"github.com/srkad/placement-portal/internal/pkg/apperrors"
)

// CompanyStore is the storage surface the company workflows need
type CompanyStore interface {
	Create(ctx context.Context, company *models.Company) error
	GetAll(ctx context.Context) ([]*models.Company, error)
}

// CompanyService handles company listing workflows
type CompanyService struct {
	companies CompanyStore
}

// NewCompanyService creates a new company service
func NewCompanyService(companies CompanyStore) *CompanyService {
	return &CompanyService{
		companies: companies,
	}
}

// optional maps an empty form value to NULL
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// Create saves a company listing. Only the name is required.
func (s *CompanyService) Create(ctx context.Context, req dto.CompanyRequest) (*models.Company, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.NewValidationError("Company name is required")
	}

	company := &models.Company{
		Name:         name,
		Role:         optional(req.Role),
		Location:     optional(req.Location),
		Package:      optional(req.Package),
		ScheduleDate: optional(req.ScheduleDate),
		Eligibility:  optional(req.Eligibility),
		Notes:        optional(req.Notes),
	}

	if err := s.companies.Create(ctx, company); err != nil {
		return nil, err
	}

	return company, nil
}

// GetAll returns every listing, newest first
func (s *CompanyService) GetAll(ctx context.Context) ([]*models.Company, error) {
	return s.companies.GetAll(ctx)
}
