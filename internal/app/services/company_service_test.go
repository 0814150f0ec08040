package services_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/srkad/placement-portal/internal/app/models"
	"github.com/srkad/placement-portal/internal/app/models/dto"
	"github.com/srkad/placement-portal/internal/app/services"
	"github.com/srkad/placement-portal/internal/pkg/apperrors"
)

type fakeCompanyStore struct {
	created []*models.Company
	all     []*models.Company
}

func (f *fakeCompanyStore) Create(_ context.Context, company *models.Company) error {
	company.ID = int64(len(f.created) + 1)
	f.created = append(f.created, company)
	return nil
}

func (f *fakeCompanyStore) GetAll(context.Context) ([]*models.Company, error) {
	return f.all, nil
}

var _ = Describe("CompanyService", func() {
	var (
		store   *fakeCompanyStore
		service *services.CompanyService
		ctx     context.Context
	)

	BeforeEach(func() {
		store = &fakeCompanyStore{}
		service = services.NewCompanyService(store)
		ctx = context.Background()
	})

	Describe("Create", func() {
		It("requires a company name", func() {
			_, err := service.Create(ctx, dto.CompanyRequest{Name: "   "})

			Expect(apperrors.IsValidation(err)).To(BeTrue())
			Expect(err.Error()).To(Equal("Company name is required"))
			Expect(store.created).To(BeEmpty())
		})

		It("stores empty optional fields as NULL", func() {
			company, err := service.Create(ctx, dto.CompanyRequest{
				Name: " Initech ",
				Role: "SDE-1",
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(company.Name).To(Equal("Initech"))
			Expect(company.Role).NotTo(BeNil())
			Expect(*company.Role).To(Equal("SDE-1"))
			Expect(company.Location).To(BeNil())
			Expect(company.Package).To(BeNil())
			Expect(company.Notes).To(BeNil())
		})
	})

	Describe("GetAll", func() {
		It("returns the listings from the store", func() {
			store.all = []*models.Company{{ID: 1, Name: "Initech"}}

			companies, err := service.GetAll(ctx)

			Expect(err).NotTo(HaveOccurred())
			Expect(companies).To(HaveLen(1))
		})
	})
})
