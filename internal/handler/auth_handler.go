package handler

import (
	"net/http"

	"storefront-service/pkg/jwtutil"
	"storefront-service/pkg/logger"
	"storefront-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Login checks the fixed admin credential pair and issues a JWT. This is an
// exact string match against configured values, a placeholder rather than a
// security boundary: no hashing, no lockout, no attempt counting.
func Login(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.AuthAttemptsCounter.Inc()

	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := c.Bind(&req); err != nil {
		log.Error("Failed to parse login request", zap.Error(err))
		prometheus.AuthErrorsCounter.Inc()
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}

	if req.Email != appConfig.Store.AdminEmail || req.Password != appConfig.Store.AdminPassword {
		log.Warn("Invalid admin credentials", zap.String("email", req.Email))
		prometheus.AuthErrorsCounter.Inc()
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
	}

	token, err := jwtutil.GenerateToken(req.Email)
	if err != nil {
		log.Error("Failed to generate token", zap.Error(err))
		prometheus.AuthErrorsCounter.Inc()
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "token error"})
	}

	prometheus.AuthSuccessCounter.Inc()
	log.Info("Admin logged in", zap.String("email", req.Email))
	return c.JSON(http.StatusOK, echo.Map{"token": token})
}
