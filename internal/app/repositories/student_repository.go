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

const studentColumns = `id, first_name, last_name, usn, gender, email, phone, department, batch, skills, domain, resume_path, created_at`

// StudentRepository handles database operations for students
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
	}
}

func scanStudent(row pgx.Row) (*models.Student, error) {
	var s models.Student
	err := row.Scan(
		&s.ID,
		&s.FirstName,
		&s.LastName,
		&s.USN,
		&s.Gender,
		&s.Email,
		&s.Phone,
		&s.Department,
		&s.Batch,
		&s.Skills,
		&s.Domain,
		&s.ResumePath,
		&s.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func collectStudents(rows pgx.Rows) ([]*models.Student, error) {
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		students = append(students, student)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return students, nil
}

// translateConflict converts a unique violation on the students table into a
// field-tagged DuplicateError. Any other error passes through unchanged.
func translateConflict(err error) error {
	field, ok := dberrors.ConflictField(err)
	if !ok {
		return err
	}
	return apperrors.NewDuplicateError(field, "")
}

// Create inserts a new student and sets its generated ID and creation time.
// A racing registration that loses to the unique constraints comes back as a
// DuplicateError, same as a pre-check hit.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	query := `
		INSERT INTO students (first_name, last_name, usn, gender, email, phone, department, batch, skills, domain, resume_path)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		student.FirstName,
		student.LastName,
		student.USN,
		student.Gender,
		student.Email,
		student.Phone,
		student.Department,
		student.Batch,
		student.Skills,
		student.Domain,
		student.ResumePath,
	).Scan(&student.ID, &student.CreatedAt)
	if err != nil {
		if dup := translateConflict(err); dup != err {
			return dup
		}
		return fmt.Errorf("error creating student: %w", err)
	}

	return nil
}

// GetAll retrieves all students, newest first
func (r *StudentRepository) GetAll(ctx context.Context) ([]*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error retrieving students: %w", err)
	}

	return collectStudents(rows)
}

// GetByID retrieves a student by ID
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE id = $1`

	student, err := scanStudent(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return student, nil
}

// FindConflicting returns an existing student whose email matches
// case-insensitively or whose USN matches exactly, or nil when neither does.
// This is the advisory pre-check; the unique constraints remain the authority.
func (r *StudentRepository) FindConflicting(ctx context.Context, email, usn string) (*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE LOWER(email) = LOWER($1) OR usn = $2 LIMIT 1`

	student, err := scanStudent(r.db.QueryRow(ctx, query, email, usn))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error checking for existing student: %w", err)
	}

	return student, nil
}

// Update rewrites all mutable fields of a student. The resume path is left
// untouched; it is assigned once during registration.
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	query := `
		UPDATE students
		SET first_name = $1, last_name = $2, usn = $3, gender = $4, email = $5, phone = $6, department = $7, batch = $8, skills = $9, domain = $10
		WHERE id = $11
	`

	cmdTag, err := r.db.Exec(ctx, query,
		student.FirstName,
		student.LastName,
		student.USN,
		student.Gender,
		student.Email,
		student.Phone,
		student.Department,
		student.Batch,
		student.Skills,
		student.Domain,
		student.ID,
	)
	if err != nil {
		if dup := translateConflict(err); dup != err {
			return dup
		}
		return fmt.Errorf("error updating student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// Delete removes a student by ID and returns the stored resume path, if any,
// so the caller can remove the file afterwards.
func (r *StudentRepository) Delete(ctx context.Context, id int64) (*string, error) {
	query := `DELETE FROM students WHERE id = $1 RETURNING resume_path`

	var resumePath *string
	err := r.db.QueryRow(ctx, query, id).Scan(&resumePath)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error deleting student: %w", err)
	}

	return resumePath, nil
}

// GetByDepartmentAndBatch retrieves students of one department and batch,
// ordered by first name.
func (r *StudentRepository) GetByDepartmentAndBatch(ctx context.Context, department, batch string) ([]*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE department = $1 AND batch = $2 ORDER BY first_name`

	rows, err := r.db.Query(ctx, query, department, batch)
	if err != nil {
		return nil, fmt.Errorf("error retrieving students by department and batch: %w", err)
	}

	return collectStudents(rows)
}

// Search runs the skills/domain filter built by buildSearchQuery,
// ordered by first name.
func (r *StudentRepository) Search(ctx context.Context, skillTokens []string, domain string) ([]*models.Student, error) {
	query, args := buildSearchQuery(skillTokens, domain)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error searching students: %w", err)
	}

	return collectStudents(rows)
}
