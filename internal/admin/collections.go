package admin

import (
	"errors"
	"time"

	"storefront-service/internal/model"
)

// ErrUnknownCollection is returned for a collection key AppState doesn't have
var ErrUnknownCollection = errors.New("unknown collection")

// ErrNoFactory marks collections whose records are created elsewhere (orders
// come from checkout, never from the admin console).
var ErrNoFactory = errors.New("collection does not support creation")

// ErrNotFound marks an id with no matching record in the collection
var ErrNotFound = errors.New("item not found")

// Collection binds the generic helpers to one typed AppState list
type Collection struct {
	// Add constructs a default record, inserts it and returns its id
	Add func(st *model.AppState) (string, error)
	// Update shallow-merges the partial JSON onto the matching record
	Update func(st *model.AppState, id string, partial []byte) error
	// Delete removes the matching record
	Delete func(st *model.AppState, id string) error
}

// Collections returns the key→collection mapping the admin surface operates
// on. Keys match the JSON field names of the persisted document.
func Collections() map[string]Collection {
	return map[string]Collection{
		"products": {
			// New products go to the head of the catalog so the admin sees
			// them immediately.
			Add: func(st *model.AppState) (string, error) {
				p := model.Product{
					ID:          model.NewEntityID(),
					Name:        "منتج جديد",
					Price:       0,
					Category:    firstCategoryName(st),
					Image:       "https://picsum.photos/400/400",
					Description: "وصف مختصر للمنتج...",
					Images:      []string{},
				}
				st.Products = Prepend(st.Products, p)
				return p.ID, nil
			},
			Update: func(st *model.AppState, id string, partial []byte) error {
				list, ok, err := UpdateByID(st.Products, id, partial)
				st.Products = list
				return firstErr(ok, err)
			},
			Delete: func(st *model.AppState, id string) error {
				list, ok := DeleteByID(st.Products, id)
				st.Products = list
				return firstErr(ok, nil)
			},
		},
		"categories": {
			Add: func(st *model.AppState) (string, error) {
				c := model.Category{
					ID:    model.NewEntityID(),
					Name:  "قسم جديد",
					Image: "https://picsum.photos/200/200",
				}
				st.Categories = append(st.Categories, c)
				return c.ID, nil
			},
			Update: func(st *model.AppState, id string, partial []byte) error {
				list, ok, err := UpdateByID(st.Categories, id, partial)
				st.Categories = list
				return firstErr(ok, err)
			},
			Delete: func(st *model.AppState, id string) error {
				list, ok := DeleteByID(st.Categories, id)
				st.Categories = list
				return firstErr(ok, nil)
			},
		},
		"brands": {
			Add: func(st *model.AppState) (string, error) {
				b := model.Brand{
					ID:    model.NewEntityID(),
					Name:  "علامة جديدة",
					Logo:  "https://picsum.photos/200/100",
					Image: "https://picsum.photos/800/600",
				}
				st.Brands = append(st.Brands, b)
				return b.ID, nil
			},
			Update: func(st *model.AppState, id string, partial []byte) error {
				list, ok, err := UpdateByID(st.Brands, id, partial)
				st.Brands = list
				return firstErr(ok, err)
			},
			Delete: func(st *model.AppState, id string) error {
				list, ok := DeleteByID(st.Brands, id)
				st.Brands = list
				return firstErr(ok, nil)
			},
		},
		"heroSlides": {
			Add: func(st *model.AppState) (string, error) {
				h := model.HeroSlide{
					ID:         model.NewEntityID(),
					Image:      "https://picsum.photos/1600/600",
					Title:      "عنوان السلايد الجديد",
					Subtitle:   "نص إضافي هنا",
					ButtonText: "تسوق الآن",
				}
				st.HeroSlides = append(st.HeroSlides, h)
				return h.ID, nil
			},
			Update: func(st *model.AppState, id string, partial []byte) error {
				list, ok, err := UpdateByID(st.HeroSlides, id, partial)
				st.HeroSlides = list
				return firstErr(ok, err)
			},
			Delete: func(st *model.AppState, id string) error {
				list, ok := DeleteByID(st.HeroSlides, id)
				st.HeroSlides = list
				return firstErr(ok, nil)
			},
		},
		"ads": {
			Add: func(st *model.AppState) (string, error) {
				a := model.Ad{
					ID:    model.NewEntityID(),
					Image: "https://springgreen-leopard-502388.hostingersite.com/wp-content/uploads/2024/08/toys_slider_desk_ar-1920x290-1.jpg",
				}
				st.Ads = append(st.Ads, a)
				return a.ID, nil
			},
			Update: func(st *model.AppState, id string, partial []byte) error {
				list, ok, err := UpdateByID(st.Ads, id, partial)
				st.Ads = list
				return firstErr(ok, err)
			},
			Delete: func(st *model.AppState, id string) error {
				list, ok := DeleteByID(st.Ads, id)
				st.Ads = list
				return firstErr(ok, nil)
			},
		},
		"specialOffers": {
			// A new offer defaults to the first product at 80% of its price,
			// ending a day from now.
			Add: func(st *model.AppState) (string, error) {
				if len(st.Products) == 0 {
					return "", errors.New("cannot create an offer without products")
				}
				o := model.SpecialOffer{
					ID:         model.NewEntityID(),
					ProductID:  st.Products[0].ID,
					EndTime:    time.Now().Add(model.DefaultOfferDuration),
					OfferPrice: st.Products[0].Price * 0.8,
				}
				st.SpecialOffers = append(st.SpecialOffers, o)
				return o.ID, nil
			},
			Update: func(st *model.AppState, id string, partial []byte) error {
				list, ok, err := UpdateByID(st.SpecialOffers, id, partial)
				st.SpecialOffers = list
				return firstErr(ok, err)
			},
			Delete: func(st *model.AppState, id string) error {
				list, ok := DeleteByID(st.SpecialOffers, id)
				st.SpecialOffers = list
				return firstErr(ok, nil)
			},
		},
		"orders": {
			Update: func(st *model.AppState, id string, partial []byte) error {
				list, ok, err := UpdateByID(st.Orders, id, partial)
				st.Orders = list
				return firstErr(ok, err)
			},
			Delete: func(st *model.AppState, id string) error {
				list, ok := DeleteByID(st.Orders, id)
				st.Orders = list
				return firstErr(ok, nil)
			},
		},
		"helpSections": {
			Add: func(st *model.AppState) (string, error) {
				h := model.HelpSection{
					ID:      model.NewEntityID(),
					Title:   "قسم مساعدة جديد",
					Content: "",
				}
				st.HelpSections = append(st.HelpSections, h)
				return h.ID, nil
			},
			Update: func(st *model.AppState, id string, partial []byte) error {
				list, ok, err := UpdateByID(st.HelpSections, id, partial)
				st.HelpSections = list
				return firstErr(ok, err)
			},
			Delete: func(st *model.AppState, id string) error {
				list, ok := DeleteByID(st.HelpSections, id)
				st.HelpSections = list
				return firstErr(ok, nil)
			},
		},
	}
}

func firstCategoryName(st *model.AppState) string {
	if len(st.Categories) > 0 {
		return st.Categories[0].Name
	}
	return "غير مصنف"
}

func firstErr(found bool, err error) error {
	if err != nil {
		return err
	}
	if !found {
		return ErrNotFound
	}
	return nil
}
