package httpserver

import (
	"errors"
	"net/http"

	"quickcheck/internal/domain"

	"github.com/gin-gonic/gin"
)

const (
	msgProductNotFound   = "Product not found"
	msgQRProductNotFound = "Product not found. Please add the product first."
)

// writeError maps domain errors onto HTTP responses. Anything unrecognised is
// a store or transport failure and is reported with its original message.
func writeError(c *gin.Context, err error, notFoundMsg string) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": notFoundMsg})
	case errors.Is(err, domain.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error(), "retryable": domain.IsRetryable(err)})
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
