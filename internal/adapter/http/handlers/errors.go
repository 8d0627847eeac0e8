package handlers

import (
	"errors"
	"net/http"

	"quicksizer/internal/domain/entities"
	"quicksizer/internal/usecase"
	"quicksizer/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPayload       = pkg.NewDomainErrorSimple("INVALID_PAYLOAD", "Request body is not a valid questionnaire payload", http.StatusBadRequest)
	errInvalidQuestionnaire = pkg.NewDomainErrorSimple("INVALID_QUESTIONNAIRE_ID", "Questionnaire id must be an integer", http.StatusBadRequest)
	errQuestionnaireMissing = pkg.NewDomainErrorSimple("QUESTIONNAIRE_NOT_FOUND", "Questionnaire not found", http.StatusNotFound)
	errEstimateMissing      = pkg.NewDomainErrorSimple("ESTIMATE_NOT_FOUND", "Estimate not found", http.StatusNotFound)
	errResultMissing        = pkg.NewDomainErrorSimple("RESULT_NOT_FOUND", "No questionnaire found for this session", http.StatusNotFound)
)

func mapError(err error) *pkg.AppError {
	var ve *entities.ValidationError
	switch {
	case errors.As(err, &ve):
		return pkg.NewDomainError("VALIDATION_ERROR", ve.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrDuplicateSession):
		return pkg.NewDomainError("DUPLICATE_SESSION", "A questionnaire already exists for this session", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrStorageFailure):
		return pkg.NewDomainError("STORAGE_UNAVAILABLE", "Storage is temporarily unavailable", err, http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

// writeError renders err and records it on the context for the access log.
func writeError(c *gin.Context, err error) {
	appErr := mapError(err)
	_ = c.Error(appErr)

	var ve *entities.ValidationError
	if errors.As(err, &ve) {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPErrorWithDetails(gin.H{"field": ve.Field}))
		return
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func writeAppError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
