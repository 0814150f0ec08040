package services_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/srkad/placement-portal/internal/app/models"
	"github.com/srkad/placement-portal/internal/app/models/dto"
	"github.com/srkad/placement-portal/internal/app/services"
	"github.com/srkad/placement-portal/internal/pkg/apperrors"
)

type fakeUserStore struct {
	created   []*models.User
	createErr error
	match     *models.User
	findErr   error
	lastEmail string
	lastPass  string
}

func (f *fakeUserStore) Create(_ context.Context, user *models.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	user.ID = int64(len(f.created) + 1)
	f.created = append(f.created, user)
	return nil
}

func (f *fakeUserStore) FindByCredentials(_ context.Context, email, password string) (*models.User, error) {
	f.lastEmail = email
	f.lastPass = password
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.match, nil
}

var _ = Describe("AuthService", func() {
	var (
		store   *fakeUserStore
		service *services.AuthService
		ctx     context.Context
	)

	BeforeEach(func() {
		store = &fakeUserStore{}
		service = services.NewAuthService(store)
		ctx = context.Background()
	})

	Describe("Register", func() {
		It("creates the account and assigns an id", func() {
			user, err := service.Register(ctx, dto.RegisterUserRequest{
				Name:     "Priya",
				Email:    "priya@example.com",
				Password: "secret",
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(user.ID).To(Equal(int64(1)))
			Expect(store.created).To(HaveLen(1))
		})

		It("rejects a missing field", func() {
			_, err := service.Register(ctx, dto.RegisterUserRequest{
				Name:  "Priya",
				Email: "priya@example.com",
			})

			Expect(apperrors.IsValidation(err)).To(BeTrue())
			Expect(err.Error()).To(Equal("Name, email, and password are required"))
		})

		It("reports a taken email with the login hint", func() {
			store.createErr = apperrors.NewDuplicateError(apperrors.ConflictFieldEmail, "")

			_, err := service.Register(ctx, dto.RegisterUserRequest{
				Name:     "Priya",
				Email:    "priya@example.com",
				Password: "secret",
			})

			dup, ok := apperrors.IsDuplicate(err)
			Expect(ok).To(BeTrue())
			Expect(dup.Error()).To(Equal("Account already exists. Please login."))
		})
	})

	Describe("Login", func() {
		It("returns the matching account", func() {
			store.match = &models.User{ID: 3, Email: "priya@example.com", IsAdmin: true}

			user, err := service.Login(ctx, dto.LoginRequest{
				Email:    "priya@example.com",
				Password: "secret",
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(user.ID).To(Equal(int64(3)))
			Expect(store.lastEmail).To(Equal("priya@example.com"))
			Expect(store.lastPass).To(Equal("secret"))
		})

		It("rejects a blank email or password", func() {
			_, err := service.Login(ctx, dto.LoginRequest{Email: "priya@example.com"})

			Expect(apperrors.IsValidation(err)).To(BeTrue())
			Expect(err.Error()).To(Equal("Email and password are required"))
		})

		It("maps no match to invalid credentials", func() {
			_, err := service.Login(ctx, dto.LoginRequest{
				Email:    "priya@example.com",
				Password: "wrong",
			})

			Expect(errors.Is(err, apperrors.ErrInvalidCredentials)).To(BeTrue())
		})
	})
})
