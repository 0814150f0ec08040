package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/srkad/placement-portal/internal/app/models/dto"
	"github.com/srkad/placement-portal/internal/app/services"
	"github.com/srkad/placement-portal/internal/middleware"
)

// CompanyController handles company listing endpoints
type CompanyController struct {
	companyService *services.CompanyService
}

// NewCompanyController creates a new CompanyController
func NewCompanyController(companyService *services.CompanyService) *CompanyController {
	return &CompanyController{
		companyService: companyService,
	}
}

// GetAll lists all companies
// @Summary List companies
// @Tags companies
// @Produce json
// @Success 200 {array} models.Company
// @Failure 500 {object} dto.ErrorResponse
// @Router /companies [get]
func (c *CompanyController) GetAll(ctx *gin.Context) {
	companies, err := c.companyService.GetAll(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, companies)
}

// Create saves a company listing
// @Summary Create a company listing
// @Tags companies
// @Accept json
// @Produce json
// @Param request body dto.CompanyRequest true "Company details"
// @Success 201 {object} dto.CreateCompanyResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /companies [post]
func (c *CompanyController) Create(ctx *gin.Context) {
	var req dto.CompanyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid company data"))
		return
	}

	company, err := c.companyService.Create(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.CreateCompanyResponse{
		Message:   "Company saved",
		CompanyID: company.ID,
	})
}
