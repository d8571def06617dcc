package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/job-finder/backend/internal/service"
	"github.com/job-finder/backend/pkg/logger"
)

type messageResponse struct {
	Message string `json:"message"`
} // @name MessageResponse

// abortWithServiceError translates the service error taxonomy onto HTTP:
// validation and conflicts are 400, bad credentials 401, wrong role or
// foreign ownership 403, unknown entities 404. Anything unrecognized is a
// logged 500 with no detail leaked.
func abortWithServiceError(c *gin.Context, err error) {
	var status int

	switch {
	case errors.Is(err, service.ErrMissingContact),
		errors.Is(err, service.ErrUserAlreadyExists),
		errors.Is(err, service.ErrInvalidVerificationCode),
		errors.Is(err, service.ErrCompanyNameRequired),
		errors.Is(err, service.ErrAlreadyApplied),
		errors.Is(err, service.ErrInvalidStatus):
		status = http.StatusBadRequest
	case errors.Is(err, service.ErrInvalidCredentials):
		status = http.StatusUnauthorized
	case errors.Is(err, service.ErrEmployerOnly),
		errors.Is(err, service.ErrEmployeeOnly),
		errors.Is(err, service.ErrNotJobOwner):
		status = http.StatusForbidden
	case errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrJobNotFound),
		errors.Is(err, service.ErrApplicationNotFound):
		status = http.StatusNotFound
	default:
		logger.Error("request failed", zap.Error(err))
		c.AbortWithStatusJSON(http.StatusInternalServerError, messageResponse{Message: "internal server error"})
		return
	}

	c.AbortWithStatusJSON(status, messageResponse{Message: err.Error()})
}

func abortWithBindingError(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusBadRequest, messageResponse{Message: err.Error()})
}
