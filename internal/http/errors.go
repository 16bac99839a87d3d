package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"postboard/internal/domain"
)

// respondError is the single translation boundary between the error taxonomy
// and the wire: validation 422, not found 404, unauthorized 403, everything
// else a logged 500.
func (h *Handler) respondError(c *gin.Context, err error) {
	var (
		validationErr    *domain.ValidationError
		authorizationErr *domain.AuthorizationError
	)
	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"message": "The given data was invalid.",
			"errors":  validationErr.Errors,
		})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Resource not found."})
	case errors.As(err, &authorizationErr):
		c.JSON(http.StatusForbidden, gin.H{"message": authorizationErr.Reason})
	default:
		h.logger.WithError(err).Error("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error."})
	}
}
