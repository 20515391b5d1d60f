package handler

import (
	"net/http"

	"storefront-service/internal/middleware"
	"storefront-service/internal/view"
	"storefront-service/pkg/logger"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ResolveView maps a browser path onto the screen to render. Unknown paths
// and unknown ids fall through to the home view; this endpoint never 404s.
func ResolveView(c echo.Context) error {
	log := logger.FromContext(c)

	path := c.QueryParam("path")
	if path == "" {
		path = "/"
	}

	st, _ := appStore.Load(c.Request().Context())
	v := view.Resolve(path, st, middleware.IsAdmin(c))

	log.Debug("Resolved view",
		zap.String("path", path),
		zap.String("view", string(v.Type)))
	return c.JSON(http.StatusOK, v)
}
