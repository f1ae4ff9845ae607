package httpserver

import (
	"mime"
	"net/http"

	"quickcheck/internal/metrics"

	"github.com/gin-gonic/gin"
)

// qrHandler returns the QR link as JSON with a data URL, or the raw PNG
// when format=png is requested.
func qrHandler(svc QRService) gin.HandlerFunc {
	return func(c *gin.Context) {
		link, err := svc.Generate(c.Request.Context(), c.Param("code"))
		if err != nil {
			writeError(c, err, msgQRProductNotFound)
			return
		}
		if c.Query("format") == "png" {
			metrics.QRLinksGenerated.WithLabelValues("png").Inc()
			c.Header("Content-Disposition", mime.FormatMediaType("inline", map[string]string{"filename": link.Code + "-qr.png"}))
			c.Data(http.StatusOK, "image/png", link.PNG)
			return
		}
		metrics.QRLinksGenerated.WithLabelValues("json").Inc()
		c.JSON(http.StatusOK, gin.H{
			"qrCode":        link.DataURL(),
			"url":           link.URL,
			"productCode":   link.Code,
			"productStatus": link.Status,
		})
	}
}
