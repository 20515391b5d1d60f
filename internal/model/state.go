package model

import "time"

// Product is a catalog item. Category is matched against Category.Name by
// string equality, not by id; renaming a category orphans products that still
// carry the old name and their listings simply come up empty.
type Product struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Price           float64  `json:"price"`
	DiscountPrice   float64  `json:"discountPrice,omitempty"`
	Category        string   `json:"category"`
	Image           string   `json:"image"`
	Images          []string `json:"images,omitempty"`
	Description     string   `json:"description"`
	LongDescription string   `json:"longDescription,omitempty"`
}

// EffectivePrice returns the discount price when one is set and non-zero,
// otherwise the regular price. A discount price of exactly 0 means "no
// discount", matching the stored document's semantics.
func (p Product) EffectivePrice() float64 {
	if p.DiscountPrice != 0 {
		return p.DiscountPrice
	}
	return p.Price
}

// Category groups products by name
type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image"`
}

// Brand is a featured manufacturer shown on the home page
type Brand struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Logo  string `json:"logo"`
	Image string `json:"image"`
}

// HeroSlide is one slide of the home page hero carousel; list order is
// display order
type HeroSlide struct {
	ID         string `json:"id"`
	Image      string `json:"image"`
	Title      string `json:"title"`
	Subtitle   string `json:"subtitle"`
	ButtonText string `json:"buttonText"`
}

// Ad is a banner cycled round-robin between home page category sections
type Ad struct {
	ID    string `json:"id"`
	Image string `json:"image"`
	Link  string `json:"link,omitempty"`
}

// SpecialOffer is a time-boxed discounted price on a specific product,
// distinct from the product's own permanent discount price
type SpecialOffer struct {
	ID         string    `json:"id"`
	ProductID  string    `json:"productId"`
	EndTime    time.Time `json:"endTime"`
	OfferPrice float64   `json:"offerPrice"`
}

// Order statuses
const (
	OrderStatusPending   = "pending"
	OrderStatusCompleted = "completed"
	OrderStatusCancelled = "cancelled"
)

// OrderItem is a denormalized line item snapshot taken at checkout time, so
// historical orders stay stable when the catalog later changes
type OrderItem struct {
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

// Order is a submitted customer order. Total is computed at checkout and
// never recomputed; Date is a display-formatted string.
type Order struct {
	ID           string      `json:"id"`
	CustomerName string      `json:"customerName"`
	PhoneNumber  string      `json:"phoneNumber"`
	Total        float64     `json:"total"`
	Status       string      `json:"status"`
	Date         string      `json:"date"`
	Items        []OrderItem `json:"items"`
}

// HelpSection is a free-text help page
type HelpSection struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// CartItem pairs a full product snapshot with a quantity. Carts live in their
// own per-client store and are never part of the persisted AppState document.
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// AppState is the aggregate root and the unit of persistence: the document
// store holds exactly one AppState under a fixed key, read and overwritten
// whole on every change.
type AppState struct {
	Products      []Product      `json:"products"`
	Categories    []Category     `json:"categories"`
	Brands        []Brand        `json:"brands"`
	HeroSlides    []HeroSlide    `json:"heroSlides"`
	Orders        []Order        `json:"orders"`
	Ads           []Ad           `json:"ads"`
	SpecialOffers []SpecialOffer `json:"specialOffers"`
	HelpSections  []HelpSection  `json:"helpSections"`
}

// FindProduct returns the product with the given id, if any
func (s *AppState) FindProduct(id string) (Product, bool) {
	for _, p := range s.Products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

// FindCategory returns the category with the given id, if any
func (s *AppState) FindCategory(id string) (Category, bool) {
	for _, c := range s.Categories {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}

// FindHelpSection returns the help section with the given id, if any
func (s *AppState) FindHelpSection(id string) (HelpSection, bool) {
	for _, h := range s.HelpSections {
		if h.ID == id {
			return h, true
		}
	}
	return HelpSection{}, false
}

// ProductsInCategory returns the products whose category string equals the
// category name, preserving catalog order
func (s *AppState) ProductsInCategory(name string) []Product {
	var out []Product
	for _, p := range s.Products {
		if p.Category == name {
			out = append(out, p)
		}
	}
	return out
}
