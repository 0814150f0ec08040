package dberrors

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/srkad/placement-portal/internal/pkg/apperrors"
)

// Constraint names declared in migrations/001_init.sql. The adapter maps them
// to conflict fields so callers never inspect error text.
const (
	ConstraintStudentsUSN   = "students_usn_key"
	ConstraintStudentsEmail = "students_email_lower_idx"
	ConstraintUsersEmail    = "users_email_key"
)

const uniqueViolationCode = "23505"

// IsUniqueViolation checks if the error is a PostgreSQL unique violation.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

// ConflictField returns which column a unique violation implicates. The second
// return is false when err is not a unique violation at all. An unrecognized
// constraint reports ConflictFieldData.
func ConflictField(err error) (apperrors.ConflictField, bool) {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != uniqueViolationCode {
		return "", false
	}

	switch pgErr.ConstraintName {
	case ConstraintStudentsUSN:
		return apperrors.ConflictFieldUSN, true
	case ConstraintStudentsEmail, ConstraintUsersEmail:
		return apperrors.ConflictFieldEmail, true
	default:
		return apperrors.ConflictFieldData, true
	}
}
