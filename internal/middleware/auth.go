package middleware

import (
	"net/http"
	"strings"

	"storefront-service/pkg/jwtutil"
	"storefront-service/pkg/logger"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// AuthMiddleware validates the admin JWT on protected routes. Admin sessions
// are transient: there is no refresh, a reload without a token simply
// re-authenticates.
func AuthMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		log := logger.FromContext(c)

		// Get the Authorization header
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			log.Warn("Missing Authorization header")
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing authorization token"})
		}

		// Check if it's a Bearer token
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			log.Warn("Invalid Authorization header format")
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid authorization format, expected Bearer token"})
		}

		// Extract the token
		tokenString := parts[1]

		// Validate the token
		claims, err := jwtutil.ValidateToken(tokenString)
		if err != nil {
			log.Error("Invalid JWT token", zap.Error(err))
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid or expired token"})
		}

		// Store admin info in context for later use
		c.Set("email", claims.Email)
		c.Set("is_admin", true)

		// Token is valid, proceed with the request
		return next(c)
	}
}

// IsAdmin reports whether the request carries a valid admin token. Used by
// routes that render differently for admins but stay public.
func IsAdmin(c echo.Context) bool {
	authHeader := c.Request().Header.Get("Authorization")
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return false
	}
	_, err := jwtutil.ValidateToken(parts[1])
	return err == nil
}
