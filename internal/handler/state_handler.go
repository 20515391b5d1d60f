package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"storefront-service/pkg/logger"
	"storefront-service/prometheus"

	"github.com/cespare/xxhash/v2"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// GetState returns the whole AppState document. The response carries the
// document revision in X-Revision (admin clients echo it back on writes) and
// a content-hash ETag so unchanged state answers with 304.
func GetState(c echo.Context) error {
	log := logger.FromContext(c)

	st, rev := appStore.Load(c.Request().Context())
	if rev == 0 {
		prometheus.DocumentLoadsCounter.WithLabelValues("degraded").Inc()
	} else {
		prometheus.DocumentLoadsCounter.WithLabelValues("ok").Inc()
	}

	data, err := json.Marshal(st)
	if err != nil {
		log.Error("Failed to encode state", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to encode state"})
	}

	etag := fmt.Sprintf("\"%x\"", xxhash.Sum64(data))
	c.Response().Header().Set("ETag", etag)
	c.Response().Header().Set("X-Revision", strconv.FormatInt(rev, 10))

	if c.Request().Header.Get("If-None-Match") == etag {
		return c.NoContent(http.StatusNotModified)
	}

	return c.JSONBlob(http.StatusOK, data)
}
