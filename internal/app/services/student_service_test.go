package services_test

import (
	"context"
	"errors"
	"mime/multipart"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/srkad/placement-portal/internal/app/models"
	"github.com/srkad/placement-portal/internal/app/models/dto"
	"github.com/srkad/placement-portal/internal/app/services"
	"github.com/srkad/placement-portal/internal/pkg/apperrors"
)

type fakeStudentStore struct {
	created      []*models.Student
	createErr    error
	conflict     *models.Student
	findErr      error
	all          []*models.Student
	updated      *models.Student
	updateErr    error
	deletedIDs   []int64
	deleteErr    error
	deleteResume *string
	searchTokens []string
	searchDomain string
	searchResult []*models.Student
}

func (f *fakeStudentStore) Create(_ context.Context, student *models.Student) error {
	if f.createErr != nil {
		return f.createErr
	}
	student.ID = int64(len(f.created) + 1)
	f.created = append(f.created, student)
	return nil
}

func (f *fakeStudentStore) GetAll(context.Context) ([]*models.Student, error) {
	return f.all, nil
}

func (f *fakeStudentStore) GetByID(_ context.Context, id int64) (*models.Student, error) {
	for _, st := range f.all {
		if st.ID == id {
			return st, nil
		}
	}
	return nil, apperrors.ErrStudentNotFound
}

func (f *fakeStudentStore) FindConflicting(context.Context, string, string) (*models.Student, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.conflict, nil
}

func (f *fakeStudentStore) Update(_ context.Context, student *models.Student) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updated = student
	return nil
}

func (f *fakeStudentStore) Delete(_ context.Context, id int64) (*string, error) {
	if f.deleteErr != nil {
		return nil, f.deleteErr
	}
	f.deletedIDs = append(f.deletedIDs, id)
	return f.deleteResume, nil
}

func (f *fakeStudentStore) GetByDepartmentAndBatch(context.Context, string, string) ([]*models.Student, error) {
	return f.all, nil
}

func (f *fakeStudentStore) Search(_ context.Context, skillTokens []string, domain string) ([]*models.Student, error) {
	f.searchTokens = skillTokens
	f.searchDomain = domain
	return f.searchResult, nil
}

type fakeResumeStorage struct {
	savedPath string
	saveErr   error
	saved     []*multipart.FileHeader
	deleted   []string
	deleteErr error
}

func (f *fakeResumeStorage) SaveFile(fileHeader *multipart.FileHeader, subDir string) (string, error) {
	if f.saveErr != nil {
		return "", f.saveErr
	}
	f.saved = append(f.saved, fileHeader)
	if f.savedPath != "" {
		return f.savedPath, nil
	}
	return "uploads/" + subDir + "/stored.pdf", nil
}

func (f *fakeResumeStorage) DeleteFile(relPath string) error {
	f.deleted = append(f.deleted, relPath)
	return f.deleteErr
}

func validStudentRequest() dto.StudentRequest {
	return dto.StudentRequest{
		FirstName:  "  Asha ",
		LastName:   "Rao",
		USN:        "1MS21CS001",
		Gender:     "Female",
		Email:      " Asha.Rao@Example.COM ",
		Phone:      "9876543210",
		Department: "CSE",
		Batch:      "2025",
		Skills:     dto.StringOrList{"Go", " SQL ", ""},
		Domain:     "Backend",
	}
}

var _ = Describe("StudentService", func() {
	var (
		store   *fakeStudentStore
		storage *fakeResumeStorage
		service *services.StudentService
		ctx     context.Context
	)

	BeforeEach(func() {
		store = &fakeStudentStore{}
		storage = &fakeResumeStorage{}
		service = services.NewStudentService(store, storage)
		ctx = context.Background()
	})

	Describe("Register", func() {
		It("trims fields, lowercases the email and joins skills", func() {
			student, err := service.Register(ctx, validStudentRequest(), nil)

			Expect(err).NotTo(HaveOccurred())
			Expect(student.FirstName).To(Equal("Asha"))
			Expect(student.Email).To(Equal("asha.rao@example.com"))
			Expect(student.Skills).To(Equal("Go, SQL"))
			Expect(student.ID).To(Equal(int64(1)))
			Expect(store.created).To(HaveLen(1))
		})

		It("rejects a whitespace-only required field", func() {
			req := validStudentRequest()
			req.Phone = "   "

			_, err := service.Register(ctx, req, nil)

			Expect(apperrors.IsValidation(err)).To(BeTrue())
			Expect(err.Error()).To(Equal("All fields are required"))
			Expect(store.created).To(BeEmpty())
		})

		It("rejects an unknown gender value", func() {
			req := validStudentRequest()
			req.Gender = "other things"

			_, err := service.Register(ctx, req, nil)

			Expect(apperrors.IsValidation(err)).To(BeTrue())
			Expect(err.Error()).To(Equal("Gender must be Male, Female or Other"))
		})

		It("rejects a non-PDF resume before touching storage", func() {
			resume := &multipart.FileHeader{Filename: "resume.docx", Size: 1024}

			_, err := service.Register(ctx, validStudentRequest(), resume)

			Expect(apperrors.IsValidation(err)).To(BeTrue())
			Expect(err.Error()).To(Equal("Only PDF files are allowed"))
			Expect(storage.saved).To(BeEmpty())
			Expect(store.created).To(BeEmpty())
		})

		It("rejects a resume over the size limit", func() {
			resume := &multipart.FileHeader{Filename: "resume.pdf", Size: services.MaxResumeSize + 1}

			_, err := service.Register(ctx, validStudentRequest(), resume)

			Expect(apperrors.IsValidation(err)).To(BeTrue())
			Expect(err.Error()).To(Equal("Resume must be 10 MB or smaller"))
		})

		It("accepts a resume exactly at the size limit", func() {
			resume := &multipart.FileHeader{Filename: "Resume.PDF", Size: services.MaxResumeSize}
			storage.savedPath = "uploads/resumes/kept.pdf"

			student, err := service.Register(ctx, validStudentRequest(), resume)

			Expect(err).NotTo(HaveOccurred())
			Expect(student.ResumePath).NotTo(BeNil())
			Expect(*student.ResumePath).To(Equal("uploads/resumes/kept.pdf"))
			Expect(storage.saved).To(HaveLen(1))
		})

		It("reports the USN when both USN and email collide", func() {
			store.conflict = &models.Student{
				USN:   "1MS21CS001",
				Email: "asha.rao@example.com",
			}

			_, err := service.Register(ctx, validStudentRequest(), nil)

			dup, ok := apperrors.IsDuplicate(err)
			Expect(ok).To(BeTrue())
			Expect(dup.Field).To(Equal(apperrors.ConflictFieldUSN))
			Expect(dup.Error()).To(Equal("Student with this USN already exists"))
		})

		It("reports the email when only the email collides", func() {
			store.conflict = &models.Student{
				USN:   "1MS21CS999",
				Email: "asha.rao@example.com",
			}

			_, err := service.Register(ctx, validStudentRequest(), nil)

			dup, ok := apperrors.IsDuplicate(err)
			Expect(ok).To(BeTrue())
			Expect(dup.Field).To(Equal(apperrors.ConflictFieldEmail))
			Expect(dup.Error()).To(Equal("Student with this email already exists"))
		})

		It("maps a constraint violation raced past the pre-check to the same duplicate", func() {
			store.createErr = apperrors.NewDuplicateError(apperrors.ConflictFieldUSN, "")

			_, err := service.Register(ctx, validStudentRequest(), nil)

			dup, ok := apperrors.IsDuplicate(err)
			Expect(ok).To(BeTrue())
			Expect(dup.Error()).To(Equal("Student with this USN already exists"))
		})

		It("passes through unexpected storage failures", func() {
			boom := errors.New("connection reset")
			store.findErr = boom

			_, err := service.Register(ctx, validStudentRequest(), nil)

			Expect(errors.Is(err, boom)).To(BeTrue())
		})
	})

	Describe("Update", func() {
		It("normalizes the payload and keeps the requested id", func() {
			student, err := service.Update(ctx, 42, validStudentRequest())

			Expect(err).NotTo(HaveOccurred())
			Expect(student.ID).To(Equal(int64(42)))
			Expect(store.updated.Email).To(Equal("asha.rao@example.com"))
		})

		It("maps a unique violation to the field-specific message", func() {
			store.updateErr = apperrors.NewDuplicateError(apperrors.ConflictFieldEmail, "")

			_, err := service.Update(ctx, 42, validStudentRequest())

			dup, ok := apperrors.IsDuplicate(err)
			Expect(ok).To(BeTrue())
			Expect(dup.Error()).To(Equal("Student with this email already exists"))
		})
	})

	Describe("Delete", func() {
		It("removes the stored resume after the record", func() {
			path := "uploads/resumes/old.pdf"
			store.deleteResume = &path

			Expect(service.Delete(ctx, 7)).To(Succeed())
			Expect(store.deletedIDs).To(Equal([]int64{7}))
			Expect(storage.deleted).To(Equal([]string{path}))
		})

		It("skips file removal when no resume was stored", func() {
			Expect(service.Delete(ctx, 7)).To(Succeed())
			Expect(storage.deleted).To(BeEmpty())
		})

		It("succeeds even when the resume file cannot be removed", func() {
			path := "uploads/resumes/old.pdf"
			store.deleteResume = &path
			storage.deleteErr = errors.New("permission denied")

			Expect(service.Delete(ctx, 7)).To(Succeed())
		})

		It("surfaces a missing student", func() {
			store.deleteErr = apperrors.ErrStudentNotFound

			err := service.Delete(ctx, 99)

			Expect(errors.Is(err, apperrors.ErrStudentNotFound)).To(BeTrue())
		})
	})

	Describe("Search", func() {
		It("rejects a query with neither skills nor domain", func() {
			_, err := service.Search(ctx, "  ,\t\n ", "   ")

			Expect(apperrors.IsValidation(err)).To(BeTrue())
			Expect(err.Error()).To(Equal("Provide skills or domain to search"))
		})

		It("tokenizes skills on commas, tabs, newlines and spaces", func() {
			_, err := service.Search(ctx, "Go, Docker\tK8s\nSQL", "")

			Expect(err).NotTo(HaveOccurred())
			Expect(store.searchTokens).To(Equal([]string{"go", "docker", "k8s", "sql"}))
			Expect(store.searchDomain).To(BeEmpty())
		})

		It("lowercases and trims the domain term", func() {
			_, err := service.Search(ctx, "", "  Machine Learning  ")

			Expect(err).NotTo(HaveOccurred())
			Expect(store.searchTokens).To(BeEmpty())
			Expect(store.searchDomain).To(Equal("machine learning"))
		})

		It("returns whatever the store matched", func() {
			store.searchResult = []*models.Student{{ID: 1, FirstName: "Asha"}}

			students, err := service.Search(ctx, "go", "backend")

			Expect(err).NotTo(HaveOccurred())
			Expect(students).To(HaveLen(1))
			Expect(students[0].FirstName).To(Equal("Asha"))
		})
	})
})
