package middleware

import (
	"storefront-service/pkg/logger"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// RequestIDMiddleware tags each request with an ID. An inbound X-Request-ID
// (set by a proxy or a retrying client) is kept so log lines correlate across
// hops; otherwise one is generated.
func RequestIDMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := c.Request().Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}

		// Echo it back so clients can quote it in reports
		c.Response().Header().Set("X-Request-ID", requestID)

		// Add the request ID to the context
		c.Set("request_id", requestID)

		// Add request ID to logger context
		log := logger.GetLogger().With(zap.String("request_id", requestID))
		c.Set("logger", log)

		return next(c)
	}
}
