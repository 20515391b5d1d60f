package handler

import (
	"errors"
	"net/http"

	"storefront-service/internal/checkout"
	"storefront-service/pkg/logger"
	"storefront-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Checkout turns the cart into a pending order and a pre-filled WhatsApp
// link. Empty customer fields are rejected without touching any state, and a
// failed document save aborts the checkout instead of losing the order.
func Checkout(c echo.Context) error {
	log := logger.FromContext(c)
	key := c.Param("key")

	var req struct {
		CustomerName string `json:"customerName"`
		PhoneNumber  string `json:"phoneNumber"`
	}
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		prometheus.RecordCheckoutError("invalid_request")
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}

	result, err := checkoutSvc.Checkout(c.Request().Context(), key, req.CustomerName, req.PhoneNumber)
	switch {
	case errors.Is(err, checkout.ErrMissingFields):
		prometheus.RecordCheckoutError("missing_fields")
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "customer name and phone number are required"})
	case errors.Is(err, checkout.ErrEmptyCart):
		prometheus.RecordCheckoutError("empty_cart")
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "cart is empty"})
	case err != nil:
		log.Error("Checkout failed", zap.Error(err))
		prometheus.RecordCheckoutError("save_failed")
		return c.JSON(http.StatusBadGateway, echo.Map{"error": "order could not be saved, please retry"})
	}

	prometheus.OrdersCounter.Inc()
	return c.JSON(http.StatusCreated, result)
}
