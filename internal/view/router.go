package view

import (
	"strings"
	"time"

	"storefront-service/internal/model"
	"storefront-service/internal/offer"
)

// ViewType identifies the screen a path resolves to
type ViewType string

const (
	ViewHome     ViewType = "home"
	ViewAdmin    ViewType = "admin"
	ViewCategory ViewType = "category"
	ViewProduct  ViewType = "product"
	ViewOffers   ViewType = "offers"
	ViewHelp     ViewType = "help"
	ViewContact  ViewType = "contact"
)

// View is the resolved screen plus everything the client needs to render it
type View struct {
	Type      ViewType `json:"type"`
	Path      string   `json:"path"`
	ShowLogin bool     `json:"showLogin,omitempty"`

	Home     *HomeView          `json:"home,omitempty"`
	Category *CategoryView      `json:"categoryPage,omitempty"`
	Product  *model.Product     `json:"product,omitempty"`
	Offers   *OffersView        `json:"offers,omitempty"`
	Help     *model.HelpSection `json:"help,omitempty"`
}

// HomeSection is one category block on the home page: up to four products and
// the ad banner cycled in after it
type HomeSection struct {
	Category model.Category  `json:"category"`
	Products []model.Product `json:"products"`
	Ad       *model.Ad       `json:"ad,omitempty"`
}

// HomeView is the home page payload
type HomeView struct {
	HeroSlides []model.HeroSlide `json:"heroSlides"`
	Categories []model.Category  `json:"categories"`
	Brands     []model.Brand     `json:"brands"`
	Sections   []HomeSection     `json:"sections"`
}

// CategoryView lists every product whose category string equals the
// category's name
type CategoryView struct {
	Category model.Category  `json:"category"`
	Products []model.Product `json:"products"`
}

// FlashSaleItem joins a special offer onto its product. Expired offers stay
// in the list until an admin deletes them. Countdown is a snapshot taken at
// resolve time; clients keep ticking from it.
type FlashSaleItem struct {
	Product    model.Product   `json:"product"`
	OfferPrice float64         `json:"offerPrice"`
	EndTime    string          `json:"endTime"`
	Countdown  offer.Countdown `json:"countdown"`
}

// OffersView is the special-offers page payload
type OffersView struct {
	Discounted []model.Product `json:"discounted"`
	FlashSales []FlashSaleItem `json:"flashSales"`
}

// Resolve maps a browser path onto the view to render. Matching runs in fixed
// precedence order against the exact route shape; extra segments and any
// other miss fall through to the home view. Resolution never fails.
func Resolve(path string, st *model.AppState, isAdmin bool) View {
	segs := splitPath(path)

	if len(segs) >= 1 {
		switch segs[0] {
		case "admin":
			if len(segs) == 1 {
				if isAdmin {
					return View{Type: ViewAdmin, Path: path}
				}
				// Unauthenticated /admin degrades to home with the login prompt open
				v := homeView(path, st)
				v.ShowLogin = true
				return v
			}
		case "category":
			if len(segs) == 2 {
				if cat, ok := st.FindCategory(segs[1]); ok {
					return View{Type: ViewCategory, Path: path, Category: &CategoryView{
						Category: cat,
						Products: st.ProductsInCategory(cat.Name),
					}}
				}
			}
		case "product":
			if len(segs) == 2 {
				if p, ok := st.FindProduct(segs[1]); ok {
					return View{Type: ViewProduct, Path: path, Product: &p}
				}
			}
		case "offers":
			if len(segs) == 1 {
				return View{Type: ViewOffers, Path: path, Offers: offersView(st)}
			}
		case "help":
			if len(segs) == 2 {
				if h, ok := st.FindHelpSection(segs[1]); ok {
					return View{Type: ViewHelp, Path: path, Help: &h}
				}
			}
		case "contact":
			if len(segs) == 1 {
				return View{Type: ViewContact, Path: path}
			}
		}
	}

	return homeView(path, st)
}

func homeView(path string, st *model.AppState) View {
	home := &HomeView{
		HeroSlides: st.HeroSlides,
		Categories: st.Categories,
		Brands:     st.Brands,
	}

	for i, cat := range st.Categories {
		products := st.ProductsInCategory(cat.Name)
		if len(products) > 4 {
			products = products[:4]
		}

		section := HomeSection{Category: cat, Products: products}
		// Ads cycle round-robin against category index; sections with no
		// products show no banner.
		if len(st.Ads) > 0 && len(products) > 0 {
			ad := st.Ads[i%len(st.Ads)]
			section.Ad = &ad
		}
		home.Sections = append(home.Sections, section)
	}

	return View{Type: ViewHome, Path: path, Home: home}
}

func offersView(st *model.AppState) *OffersView {
	out := &OffersView{}
	now := time.Now()

	for _, p := range st.Products {
		if p.DiscountPrice != 0 && p.DiscountPrice < p.Price {
			out.Discounted = append(out.Discounted, p)
		}
	}

	// Offers pointing at deleted products are skipped; expiry is deliberately
	// not checked here.
	for _, o := range st.SpecialOffers {
		p, ok := st.FindProduct(o.ProductID)
		if !ok {
			continue
		}
		out.FlashSales = append(out.FlashSales, FlashSaleItem{
			Product:    p,
			OfferPrice: o.OfferPrice,
			EndTime:    o.EndTime.Format(time.RFC3339),
			Countdown:  offer.Remaining(o.EndTime, now),
		})
	}

	return out
}

func splitPath(path string) []string {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "/")
}
