package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/srkad/placement-portal/internal/app/models"
	"github.com/srkad/placement-portal/internal/pkg/apperrors"
	"github.com/srkad/placement-portal/internal/pkg/dberrors"
)

// UserRepository handles database operations for portal accounts
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

// Create inserts a new account and sets its generated ID. A taken email comes
// back as a DuplicateError tagged with the email field.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (name, email, password, is_admin)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query, user.Name, user.Email, user.Password, user.IsAdmin).
		Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		if field, ok := dberrors.ConflictField(err); ok {
			return apperrors.NewDuplicateError(field, "")
		}
		return fmt.Errorf("error creating user: %w", err)
	}

	return nil
}

// CreateIfAbsent inserts an account unless the email is already taken.
// Returns true when a row was inserted. Used by startup seeding.
func (r *UserRepository) CreateIfAbsent(ctx context.Context, user *models.User) (bool, error) {
	query := `
		INSERT INTO users (name, email, password, is_admin)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (email) DO NOTHING
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query, user.Name, user.Email, user.Password, user.IsAdmin).
		Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("error seeding user: %w", err)
	}

	return true, nil
}

// FindByCredentials returns the account matching the email/password pair, or
// nil when there is no match. Plaintext comparison is the established account
// behavior; see models.User.
func (r *UserRepository) FindByCredentials(ctx context.Context, email, password string) (*models.User, error) {
	query := `
		SELECT id, name, email, password, is_admin, created_at
		FROM users
		WHERE email = $1 AND password = $2
	`

	var user models.User
	err := r.db.QueryRow(ctx, query, email, password).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.Password,
		&user.IsAdmin,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error looking up credentials: %w", err)
	}

	return &user, nil
}
