// internal/handlers/errors.go
package handlers

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/curioshop/curios-backend/internal/services"
	"github.com/curioshop/curios-backend/internal/utils"
)

// writeServiceError maps the service error taxonomy onto HTTP responses.
func writeServiceError(c *gin.Context, err error) {
	var validationErr *services.ValidationError
	switch {
	case errors.As(err, &validationErr):
		utils.ValidationErrorResponse(c, validationErr.Fields)
	case errors.Is(err, services.ErrPermissionDenied):
		utils.ForbiddenResponse(c, "")
	case errors.Is(err, services.ErrInvalidPage):
		utils.NotFoundResponse(c, "Invalid page.")
	case errors.Is(err, services.ErrNotFound):
		utils.NotFoundResponse(c, "")
	case errors.Is(err, services.ErrAuthenticationFailed):
		utils.UnauthorizedResponse(c, detailMessage(err, services.ErrAuthenticationFailed))
	case errors.Is(err, services.ErrConflict):
		utils.BadRequestResponse(c, detailMessage(err, services.ErrConflict))
	default:
		utils.InternalErrorResponse(c, "")
	}
}

// detailMessage strips the sentinel prefix so only the human-readable part
// of a wrapped error reaches the wire.
func detailMessage(err error, sentinel error) string {
	return strings.TrimPrefix(err.Error(), sentinel.Error()+": ")
}
