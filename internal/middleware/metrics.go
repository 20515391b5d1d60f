package middleware

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"storefront-service/prometheus"

	"github.com/labstack/echo/v4"
)

// MetricsMiddleware adds prometheus metrics to track HTTP requests
func MetricsMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		// Start timer for request duration
		start := time.Now()

		// Process request
		err := next(c)

		// Calculate request duration
		duration := time.Since(start).Seconds()

		// The status label comes from the response, except when the handler
		// returned an error: echo's error handler runs after this middleware,
		// so the eventual status has to be read off the error itself.
		status := c.Response().Status
		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			status = httpErr.Code
		} else if err != nil {
			status = http.StatusInternalServerError
		}

		// The route template is the path label; requests that matched no
		// route share one label so the cardinality stays bounded no matter
		// what clients probe for.
		path := c.Path()
		if path == "" || strings.HasSuffix(path, "*") ||
			errors.Is(err, echo.ErrNotFound) || errors.Is(err, echo.ErrMethodNotAllowed) {
			path = "unmatched"
		}

		method := c.Request().Method
		statusLabel := strconv.Itoa(status)

		// Record metrics
		prometheus.HttpRequestsTotal.WithLabelValues(method, path, statusLabel).Inc()
		prometheus.HttpRequestDuration.WithLabelValues(method, path, statusLabel).Observe(duration)

		return err
	}
}
