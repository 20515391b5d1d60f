package checkout

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"net/url"
	"strings"
	"time"

	"storefront-service/internal/cart"
	"storefront-service/internal/model"
	"storefront-service/internal/store"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Validation and state errors surfaced to the customer
var (
	ErrMissingFields = errors.New("customer name and phone number are required")
	ErrEmptyCart     = errors.New("cart is empty")
)

// Service turns a cart into a persisted order and a pre-filled WhatsApp link
type Service struct {
	store          *store.Store
	carts          *cart.Service
	whatsAppNumber string
	log            *zap.Logger
}

// NewService creates a checkout service
func NewService(st *store.Store, carts *cart.Service, whatsAppNumber string, log *zap.Logger) *Service {
	return &Service{store: st, carts: carts, whatsAppNumber: whatsAppNumber, log: log}
}

// Result is what the customer gets back from a successful checkout
type Result struct {
	Order       model.Order `json:"order"`
	WhatsAppURL string      `json:"whatsappUrl"`
}

// Checkout validates the customer fields, snapshots the cart into a new
// pending order at the head of AppState.orders, persists the document and
// only then builds the WhatsApp link and clears the cart. A failed save
// aborts the whole operation: no link is produced and the cart stays intact,
// so an order the customer believes in is never silently lost.
func (s *Service) Checkout(ctx context.Context, cartKey, customerName, phoneNumber string) (*Result, error) {
	if strings.TrimSpace(customerName) == "" || strings.TrimSpace(phoneNumber) == "" {
		return nil, ErrMissingFields
	}

	items := s.carts.Load(ctx, cartKey)
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	order := buildOrder(items, customerName, phoneNumber, time.Now())

	st, _ := s.store.Load(ctx)
	st.Orders = append([]model.Order{order}, st.Orders...)

	if _, err := s.store.Save(ctx, st); err != nil {
		s.log.Error("Checkout aborted, order could not be persisted",
			zap.String("order_id", order.ID),
			zap.Error(err))
		return nil, fmt.Errorf("persist order: %w", err)
	}

	if err := s.carts.Clear(ctx, cartKey); err != nil {
		// The order is already persisted; a cart that failed to clear is an
		// annoyance, not a lost sale.
		s.log.Warn("Failed to clear cart after checkout",
			zap.String("cart_key", cartKey),
			zap.Error(err))
	}

	s.log.Info("Order placed",
		zap.String("order_id", order.ID),
		zap.Float64("total", order.Total),
		zap.Int("line_items", len(order.Items)))

	return &Result{
		Order:       order,
		WhatsAppURL: s.whatsAppLink(order),
	}, nil
}

func buildOrder(items []model.CartItem, customerName, phoneNumber string, now time.Time) model.Order {
	lines := make([]model.OrderItem, 0, len(items))
	for _, it := range items {
		lines = append(lines, model.OrderItem{
			ProductName: it.Product.Name,
			Quantity:    it.Quantity,
			Price:       it.Product.EffectivePrice(),
		})
	}

	return model.Order{
		ID:           newOrderID(),
		CustomerName: customerName,
		PhoneNumber:  phoneNumber,
		Total:        cart.Total(items),
		Status:       model.OrderStatusPending,
		Date:         now.Format("02/01/2006"),
		Items:        lines,
	}
}

// newOrderID returns "ORD-" plus a 4-digit number in [1000,9999]
func newOrderID() string {
	return fmt.Sprintf("ORD-%d", rand.IntN(9000)+1000)
}

// whatsAppLink renders the order as the message template customers expect and
// URL-encodes it into a wa.me deep link.
func (s *Service) whatsAppLink(order model.Order) string {
	var b strings.Builder

	b.WriteString("*طلب جديد*\n\n")
	b.WriteString(fmt.Sprintf("رقم الطلب: %s\n", order.ID))
	b.WriteString(fmt.Sprintf("الاسم: %s\n", order.CustomerName))
	b.WriteString(fmt.Sprintf("الهاتف: %s\n\n", order.PhoneNumber))
	b.WriteString("*المنتجات:*\n")
	for _, it := range order.Items {
		price := decimal.NewFromFloat(it.Price).StringFixed(2)
		b.WriteString(fmt.Sprintf("- %s ×%d = %s د.أ\n", it.ProductName, it.Quantity, price))
	}
	total := decimal.NewFromFloat(order.Total).StringFixed(2)
	b.WriteString(fmt.Sprintf("\n*الإجمالي: %s د.أ*", total))

	return fmt.Sprintf("https://wa.me/%s?text=%s", s.whatsAppNumber, url.QueryEscape(b.String()))
}
