package handler

import (
	"net/http"

	"storefront-service/internal/cart"
	"storefront-service/internal/model"
	"storefront-service/pkg/logger"
	"storefront-service/prometheus"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type cartResponse struct {
	Key   string           `json:"key"`
	Items []model.CartItem `json:"items"`
	Total float64          `json:"total"`
}

// CreateCart issues a fresh cart key for a new client
func CreateCart(c echo.Context) error {
	key := uuid.New().String()
	prometheus.RecordCartOperation("create")
	return c.JSON(http.StatusCreated, cartResponse{Key: key, Items: []model.CartItem{}})
}

// GetCart returns the cart for a key; unknown keys read as empty carts
func GetCart(c echo.Context) error {
	key := c.Param("key")
	items := carts.Load(c.Request().Context(), key)
	return c.JSON(http.StatusOK, cartResponse{Key: key, Items: items, Total: cart.Total(items)})
}

// AddCartItem puts one unit of a product into the cart, incrementing the
// quantity when the product is already there. The stored item is a full
// product snapshot taken from the current catalog.
func AddCartItem(c echo.Context) error {
	log := logger.FromContext(c)
	key := c.Param("key")

	var req struct {
		ProductID string `json:"productId"`
	}
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}

	st, _ := appStore.Load(c.Request().Context())
	product, ok := st.FindProduct(req.ProductID)
	if !ok {
		log.Warn("Product not found for cart add", zap.String("product_id", req.ProductID))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "product not found"})
	}

	items, err := carts.Add(c.Request().Context(), key, product)
	if err != nil {
		return c.JSON(http.StatusBadGateway, echo.Map{"error": "cart could not be saved"})
	}

	prometheus.RecordCartOperation("add")
	log.Info("Product added to cart",
		zap.String("cart_key", key),
		zap.String("product_id", product.ID))
	return c.JSON(http.StatusOK, cartResponse{Key: key, Items: items, Total: cart.Total(items)})
}

// UpdateCartItem applies a quantity delta, clamped so quantity never drops
// below 1. Removal is a separate operation.
func UpdateCartItem(c echo.Context) error {
	log := logger.FromContext(c)
	key := c.Param("key")
	productID := c.Param("productId")

	var req struct {
		Delta int `json:"delta"`
	}
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}

	items, err := carts.UpdateQuantity(c.Request().Context(), key, productID, req.Delta)
	if err != nil {
		return c.JSON(http.StatusBadGateway, echo.Map{"error": "cart could not be saved"})
	}

	prometheus.RecordCartOperation("update_quantity")
	return c.JSON(http.StatusOK, cartResponse{Key: key, Items: items, Total: cart.Total(items)})
}

// RemoveCartItem filters the product out of the cart
func RemoveCartItem(c echo.Context) error {
	key := c.Param("key")
	productID := c.Param("productId")

	items, err := carts.Remove(c.Request().Context(), key, productID)
	if err != nil {
		return c.JSON(http.StatusBadGateway, echo.Map{"error": "cart could not be saved"})
	}

	prometheus.RecordCartOperation("remove")
	return c.JSON(http.StatusOK, cartResponse{Key: key, Items: items, Total: cart.Total(items)})
}

// ClearCart empties the cart
func ClearCart(c echo.Context) error {
	key := c.Param("key")

	if err := carts.Clear(c.Request().Context(), key); err != nil {
		return c.JSON(http.StatusBadGateway, echo.Map{"error": "cart could not be saved"})
	}

	prometheus.RecordCartOperation("clear")
	return c.JSON(http.StatusOK, cartResponse{Key: key, Items: []model.CartItem{}})
}
