package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/srkad/placement-portal/internal/app/models"
	"github.com/srkad/placement-portal/internal/app/models/dto"
	"github.com/srkad/placement-portal/internal/pkg/apperrors"
	"github.com/srkad/placement-portal/internal/pkg/logger"
)

// MaxResumeSize is the upload limit for résumé PDFs.
const MaxResumeSize = 10 << 20 // 10 MiB

const resumeSubDir = "resumes"

// StudentStore is the storage surface the student workflows need
type StudentStore interface {
	Create(ctx context.Context, student *models.Student) error
	GetAll(ctx context.Context) ([]*models.Student, error)
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	FindConflicting(ctx context.Context, email, usn string) (*models.Student, error)
	Update(ctx context.Context, student *models.Student) error
	Delete(ctx context.Context, id int64) (*string, error)
	GetByDepartmentAndBatch(ctx context.Context, department, batch string) ([]*models.Student, error)
	Search(ctx context.Context, skillTokens []string, domain string) ([]*models.Student, error)
}

// ResumeStorage saves and removes uploaded résumé files
type ResumeStorage interface {
	SaveFile(fileHeader *multipart.FileHeader, subDir string) (string, error)
	DeleteFile(relPath string) error
}

// StudentService handles student registration, search and CRUD workflows
type StudentService struct {
	students StudentStore
	storage  ResumeStorage
}

// NewStudentService creates a new student service
func NewStudentService(students StudentStore, storage ResumeStorage) *StudentService {
	return &StudentService{
		students: students,
		storage:  storage,
	}
}

// normalizeStudent trims every field, lowercases the email and joins skills
// with ", " when they arrive as multiple values. Returns a ValidationError
// when a required field is empty after trimming.
func normalizeStudent(req dto.StudentRequest) (*models.Student, error) {
	student := &models.Student{
		FirstName:  strings.TrimSpace(req.FirstName),
		LastName:   strings.TrimSpace(req.LastName),
		USN:        strings.TrimSpace(req.USN),
		Gender:     models.Gender(strings.TrimSpace(req.Gender)),
		Email:      strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:      strings.TrimSpace(req.Phone),
		Department: strings.TrimSpace(req.Department),
		Batch:      strings.TrimSpace(req.Batch),
		Domain:     strings.TrimSpace(req.Domain),
	}

	var skills []string
	for _, s := range req.Skills {
		if s = strings.TrimSpace(s); s != "" {
			skills = append(skills, s)
		}
	}
	student.Skills = strings.Join(skills, ", ")

	if student.FirstName == "" || student.LastName == "" || student.USN == "" ||
		student.Gender == "" || student.Email == "" || student.Phone == "" ||
		student.Department == "" || student.Batch == "" || student.Skills == "" ||
		student.Domain == "" {
		return nil, apperrors.NewValidationError("All fields are required")
	}

	if !models.ValidGender(string(student.Gender)) {
		return nil, apperrors.NewValidationError("Gender must be Male, Female or Other")
	}

	return student, nil
}

// duplicateStudentError attaches the field-specific message the frontend
// shows. Precedence when reporting: usn > email > generic.
func duplicateStudentError(field apperrors.ConflictField) error {
	switch field {
	case apperrors.ConflictFieldUSN:
		return apperrors.NewDuplicateError(field, "Student with this USN already exists")
	case apperrors.ConflictFieldEmail:
		return apperrors.NewDuplicateError(field, "Student with this email already exists")
	default:
		return apperrors.NewDuplicateError(apperrors.ConflictFieldData, "Student with this information already exists")
	}
}

// validateResume accepts a single PDF of at most MaxResumeSize. A nil header
// means no file was uploaded, which is fine.
func validateResume(fileHeader *multipart.FileHeader) error {
	if fileHeader == nil {
		return nil
	}

	if ext := strings.ToLower(filepath.Ext(fileHeader.Filename)); ext != ".pdf" {
		return apperrors.NewValidationError("Only PDF files are allowed")
	}

	if fileHeader.Size > MaxResumeSize {
		return apperrors.NewValidationError("Resume must be 10 MB or smaller")
	}

	return nil
}

// Register validates and normalizes a registration, stores the optional
// résumé, and inserts the record.
//
// The duplicate pre-check is advisory: two concurrent registrations can both
// pass it, and the loser's insert then trips the unique constraint. That
// violation is mapped to the same DuplicateError as a pre-check hit. The
// résumé is written before the insert; if the insert then fails, the file
// stays behind as a known, accepted leak.
func (s *StudentService) Register(ctx context.Context, req dto.StudentRequest, resume *multipart.FileHeader) (*models.Student, error) {
	student, err := normalizeStudent(req)
	if err != nil {
		return nil, err
	}

	if err := validateResume(resume); err != nil {
		return nil, err
	}

	existing, err := s.students.FindConflicting(ctx, student.Email, student.USN)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		// USN takes precedence when both fields would conflict
		if existing.USN == student.USN {
			return nil, duplicateStudentError(apperrors.ConflictFieldUSN)
		}
		return nil, duplicateStudentError(apperrors.ConflictFieldEmail)
	}

	if resume != nil {
		resumePath, err := s.storage.SaveFile(resume, resumeSubDir)
		if err != nil {
			return nil, fmt.Errorf("failed to store resume: %w", err)
		}
		student.ResumePath = &resumePath
	}

	if err := s.students.Create(ctx, student); err != nil {
		if dup, ok := apperrors.IsDuplicate(err); ok {
			return nil, duplicateStudentError(dup.Field)
		}
		return nil, err
	}

	return student, nil
}

// GetAll returns every student, newest first
func (s *StudentService) GetAll(ctx context.Context) ([]*models.Student, error) {
	return s.students.GetAll(ctx)
}

// GetByID returns one student
func (s *StudentService) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	return s.students.GetByID(ctx, id)
}

// Update rewrites all mutable fields with the same validation and duplicate
// mapping as registration. The unique constraints do the conflict detection
// here; no pre-check is needed.
func (s *StudentService) Update(ctx context.Context, id int64, req dto.StudentRequest) (*models.Student, error) {
	student, err := normalizeStudent(req)
	if err != nil {
		return nil, err
	}
	student.ID = id

	if err := s.students.Update(ctx, student); err != nil {
		if dup, ok := apperrors.IsDuplicate(err); ok {
			return nil, duplicateStudentError(dup.Field)
		}
		return nil, err
	}

	return student, nil
}

// Delete removes a student and then their stored résumé. A failed file
// removal is logged, not surfaced; the record is already gone.
func (s *StudentService) Delete(ctx context.Context, id int64) error {
	resumePath, err := s.students.Delete(ctx, id)
	if err != nil {
		return err
	}

	if resumePath != nil {
		if err := s.storage.DeleteFile(*resumePath); err != nil {
			logger.Warn().Err(err).Str("path", *resumePath).Msg("Failed to remove resume after delete")
		}
	}

	return nil
}

// GetByDepartmentAndBatch returns one department's batch, ordered by first name
func (s *StudentService) GetByDepartmentAndBatch(ctx context.Context, department, batch string) ([]*models.Student, error) {
	return s.students.GetByDepartmentAndBatch(ctx, department, batch)
}

// tokenizeSkills splits a free-text skills query on runs of comma, tab,
// newline and space, dropping empty tokens.
func tokenizeSkills(raw string) []string {
	return strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == '\n' || r == '\t' || r == ' '
	})
}

// Search filters students by skill tokens and/or a domain term. At least one
// must be present after normalization. Both inputs are lowercased; matching
// is case-insensitive substring containment.
func (s *StudentService) Search(ctx context.Context, skillsQuery, domainQuery string) ([]*models.Student, error) {
	skillTokens := tokenizeSkills(strings.ToLower(skillsQuery))
	domain := strings.TrimSpace(strings.ToLower(domainQuery))

	if len(skillTokens) == 0 && domain == "" {
		return nil, apperrors.NewValidationError("Provide skills or domain to search")
	}

	return s.students.Search(ctx, skillTokens, domain)
}
