package httpserver

import (
	"errors"
	"net/http"

	"quickcheck/internal/domain"
	"quickcheck/internal/metrics"

	"github.com/gin-gonic/gin"
)

func listStatusesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": domain.StatusCatalog()})
}

// statusLookupHandler serves the public check-status page. A missing code is
// an expected outcome here and is reported with the code echoed back.
func statusLookupHandler(svc StatusService) gin.HandlerFunc {
	return func(c *gin.Context) {
		code := c.Param("code")
		view, err := svc.Lookup(c.Request.Context(), code)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				metrics.StatusLookups.WithLabelValues("not_found").Inc()
				c.JSON(http.StatusNotFound, gin.H{
					"error":   msgProductNotFound,
					"code":    code,
					"message": "The product code you entered was not found in our system",
				})
				return
			}
			metrics.StatusLookups.WithLabelValues("error").Inc()
			writeError(c, err, msgProductNotFound)
			return
		}
		metrics.StatusLookups.WithLabelValues("found").Inc()
		c.JSON(http.StatusOK, gin.H{"data": view})
	}
}
