package public

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fixmylab/internal/shared/errors"
	"fixmylab/internal/shared/i18n"
	"fixmylab/internal/shared/utils"
)

// respondError answers a failed public request in the caller's language.
// Validation errors keep their specific message; everything else collapses
// to the generic localized message for the operation, so backend details
// never leak to customers.
func respondError(c *gin.Context, err error, genericKey string) {
	tag := i18n.Match(c.GetHeader("Accept-Language"))

	if appErr := errors.GetAppError(err); appErr != nil {
		switch {
		case errors.IsValidationError(err):
			utils.ErrorResponseWithError(c, err)
			return
		case errors.IsNotFoundError(err):
			utils.ErrorResponse(c, http.StatusNotFound, i18n.T(tag, "ticket.not_found"))
			return
		case errors.IsUnauthorizedError(err):
			utils.ErrorResponse(c, http.StatusUnauthorized, i18n.T(tag, "auth.required"))
			return
		default:
			utils.ErrorResponse(c, appErr.Code, i18n.T(tag, genericKey))
			return
		}
	}

	utils.ErrorResponse(c, http.StatusInternalServerError, i18n.T(tag, genericKey))
}
