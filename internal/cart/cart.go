package cart

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"storefront-service/internal/model"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// CartRecord holds one client's serialized cart list. It is the server-side
// analog of a browser local-storage key and is independent of the state
// document: carts are never written into AppState.
type CartRecord struct {
	Key       string `gorm:"primaryKey;type:varchar(64)"`
	Items     string `gorm:"type:text"`
	UpdatedAt time.Time
}

func (CartRecord) TableName() string { return "cart_records" }

// Service implements the cart operations. Every mutation persists the full
// serialized list for its key.
type Service struct {
	db  *gorm.DB
	log *zap.Logger
}

// NewService creates a cart service and migrates its table
func NewService(db *gorm.DB, log *zap.Logger) (*Service, error) {
	if err := db.AutoMigrate(&CartRecord{}); err != nil {
		return nil, err
	}
	return &Service{db: db, log: log}, nil
}

// Load returns the cart for the given key. A missing record or a payload that
// fails to parse yields an empty cart, never an error.
func (s *Service) Load(ctx context.Context, key string) []model.CartItem {
	var rec CartRecord
	err := s.db.WithContext(ctx).First(&rec, "key = ?", key).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.log.Error("Failed to load cart, starting empty",
				zap.String("cart_key", key),
				zap.Error(err))
		}
		return []model.CartItem{}
	}

	var items []model.CartItem
	if err := json.Unmarshal([]byte(rec.Items), &items); err != nil {
		s.log.Warn("Discarding unparseable cart payload",
			zap.String("cart_key", key),
			zap.Error(err))
		return []model.CartItem{}
	}
	if items == nil {
		items = []model.CartItem{}
	}
	return items
}

// Add increments the quantity when the product is already in the cart,
// otherwise appends it with quantity 1.
func (s *Service) Add(ctx context.Context, key string, product model.Product) ([]model.CartItem, error) {
	items := s.Load(ctx, key)

	found := false
	for i := range items {
		if items[i].Product.ID == product.ID {
			items[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		items = append(items, model.CartItem{Product: product, Quantity: 1})
	}

	return items, s.save(ctx, key, items)
}

// UpdateQuantity applies delta to the item's quantity, clamped to a minimum
// of 1. Decrementing from 1 is a no-op; removal goes through Remove.
func (s *Service) UpdateQuantity(ctx context.Context, key, productID string, delta int) ([]model.CartItem, error) {
	items := s.Load(ctx, key)

	for i := range items {
		if items[i].Product.ID == productID {
			q := items[i].Quantity + delta
			if q < 1 {
				q = 1
			}
			items[i].Quantity = q
			break
		}
	}

	return items, s.save(ctx, key, items)
}

// Remove filters the item out entirely
func (s *Service) Remove(ctx context.Context, key, productID string) ([]model.CartItem, error) {
	items := s.Load(ctx, key)

	kept := items[:0]
	for _, it := range items {
		if it.Product.ID != productID {
			kept = append(kept, it)
		}
	}

	return kept, s.save(ctx, key, kept)
}

// Clear empties the cart, called after a successful checkout
func (s *Service) Clear(ctx context.Context, key string) error {
	return s.save(ctx, key, []model.CartItem{})
}

func (s *Service) save(ctx context.Context, key string, items []model.CartItem) error {
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}

	rec := CartRecord{Key: key, Items: string(data)}
	res := s.db.WithContext(ctx).Model(&CartRecord{}).Where("key = ?", key).Update("items", string(data))
	if res.Error != nil {
		s.log.Error("Failed to persist cart",
			zap.String("cart_key", key),
			zap.Error(res.Error))
		return res.Error
	}
	if res.RowsAffected == 0 {
		if err := s.db.WithContext(ctx).Create(&rec).Error; err != nil {
			s.log.Error("Failed to persist cart",
				zap.String("cart_key", key),
				zap.Error(err))
			return err
		}
	}
	return nil
}

// Total sums effective unit price times quantity over the cart. The math runs
// on decimals so line totals don't accumulate float error.
func Total(items []model.CartItem) float64 {
	sum := decimal.Zero
	for _, it := range items {
		line := decimal.NewFromFloat(it.Product.EffectivePrice()).
			Mul(decimal.NewFromInt(int64(it.Quantity)))
		sum = sum.Add(line)
	}
	f, _ := sum.Float64()
	return f
}

// TotalString formats the cart total with two decimal places
func TotalString(items []model.CartItem) string {
	sum := decimal.Zero
	for _, it := range items {
		line := decimal.NewFromFloat(it.Product.EffectivePrice()).
			Mul(decimal.NewFromInt(int64(it.Quantity)))
		sum = sum.Add(line)
	}
	return sum.StringFixed(2)
}
