package handler

import (
	"net/http"

	"storefront-service/pkg/logger"
	"storefront-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// UploadImage forwards an admin's image to the external image host and
// returns the hosted URL. Binary data never touches the document store.
func UploadImage(c echo.Context) error {
	log := logger.FromContext(c)

	fileHeader, err := c.FormFile("image")
	if err != nil {
		log.Warn("Upload request without image file", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "image file is required"})
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.Error("Failed to open uploaded file", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid image file"})
	}
	defer file.Close()

	url, err := uploader.Upload(c.Request().Context(), fileHeader.Filename, file)
	if err != nil {
		prometheus.UploadsCounter.WithLabelValues("error").Inc()
		log.Error("Image upload failed", zap.Error(err))
		return c.JSON(http.StatusBadGateway, echo.Map{"error": "image upload failed"})
	}

	prometheus.UploadsCounter.WithLabelValues("ok").Inc()
	return c.JSON(http.StatusOK, echo.Map{"url": url})
}
