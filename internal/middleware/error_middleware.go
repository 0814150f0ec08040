package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/srkad/placement-portal/internal/app/models/dto"
	"github.com/srkad/placement-portal/internal/pkg/apperrors"
	"github.com/srkad/placement-portal/internal/pkg/logger"
)

// HandleAPIError translates domain errors into HTTP responses. Validation
// failures and duplicates carry their own user-facing messages; anything
// unrecognized is a storage-level failure, logged server-side and answered
// with a generic body.
func HandleAPIError(c *gin.Context, err error) {
	var validationErr *apperrors.ValidationError
	var duplicateErr *apperrors.DuplicateError

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(validationErr.Message))
	case errors.As(err, &duplicateErr):
		c.JSON(http.StatusConflict, dto.NewErrorResponse(duplicateErr.Error()))
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Invalid email or password"))
	case errors.Is(err, apperrors.ErrStudentNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("Student not found"))
	case errors.Is(err, apperrors.ErrUserNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("User not found"))
	case errors.Is(err, apperrors.ErrCompanyNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("Company not found"))
	default:
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled API error")
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Database error"))
	}
}
