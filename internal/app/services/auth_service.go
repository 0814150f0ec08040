package services

import (
	"context"

	"github.com/srkad/placement-portal/internal/app/models"
	"github.com/srkad/placement-portal/internal/app/models/dto"
	"github.com/srkad/placement-portal/internal/pkg/apperrors"
)

// UserStore is the storage surface the account workflows need
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	FindByCredentials(ctx context.Context, email, password string) (*models.User, error)
}

// AuthService handles account self-registration and login
type AuthService struct {
	users UserStore
}

// NewAuthService creates a new auth service
func NewAuthService(users UserStore) *AuthService {
	return &AuthService{
		users: users,
	}
}

// Register creates a portal account. A taken email reports as a duplicate
// with the message the login page expects.
func (s *AuthService) Register(ctx context.Context, req dto.RegisterUserRequest) (*models.User, error) {
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return nil, apperrors.NewValidationError("Name, email, and password are required")
	}

	user := &models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if dup, ok := apperrors.IsDuplicate(err); ok {
			return nil, apperrors.NewDuplicateError(dup.Field, "Account already exists. Please login.")
		}
		return nil, err
	}

	return user, nil
}

// Login checks the email/password pair and returns the matching account
func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (*models.User, error) {
	if req.Email == "" || req.Password == "" {
		return nil, apperrors.NewValidationError("Email and password are required")
	}

	user, err := s.users.FindByCredentials(ctx, req.Email, req.Password)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	return user, nil
}
