package view

import (
	"testing"
	"time"

	"storefront-service/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testState() *model.AppState {
	return &model.AppState{
		Products: []model.Product{
			{ID: "p1", Name: "blender", Price: 120, Category: "kitchen"},
			{ID: "p2", Name: "espresso machine", Price: 85, Category: "coffee"},
			{ID: "p3", Name: "iron", Price: 45, DiscountPrice: 30, Category: "kitchen"},
			{ID: "p4", Name: "mixer", Price: 60, Category: "kitchen"},
			{ID: "p5", Name: "kettle", Price: 25, Category: "kitchen"},
			{ID: "p6", Name: "toaster", Price: 35, Category: "kitchen"},
		},
		Categories: []model.Category{
			{ID: "c1", Name: "kitchen"},
			{ID: "c2", Name: "coffee"},
			{ID: "c3", Name: "empty"},
		},
		Ads: []model.Ad{
			{ID: "ad1", Image: "a1.jpg"},
			{ID: "ad2", Image: "a2.jpg"},
		},
		HelpSections: []model.HelpSection{
			{ID: "shipping", Title: "Shipping"},
		},
		SpecialOffers: []model.SpecialOffer{
			{ID: "o1", ProductID: "p2", EndTime: time.Now().Add(-time.Hour), OfferPrice: 70},
			{ID: "o2", ProductID: "gone", EndTime: time.Now().Add(time.Hour), OfferPrice: 1},
		},
	}
}

func TestResolvePrecedence(t *testing.T) {
	st := testState()

	tests := []struct {
		path     string
		isAdmin  bool
		expected ViewType
	}{
		{"/", false, ViewHome},
		{"", false, ViewHome},
		{"/admin", true, ViewAdmin},
		{"/admin", false, ViewHome},
		{"/category/c1", false, ViewCategory},
		{"/category/unknown", false, ViewHome},
		{"/category", false, ViewHome},
		{"/product/p1", false, ViewProduct},
		{"/product/does-not-exist", false, ViewHome},
		{"/offers", false, ViewOffers},
		{"/help/shipping", false, ViewHelp},
		{"/help/unknown", false, ViewHome},
		{"/contact", false, ViewContact},
		{"/no/such/route", false, ViewHome},
		// Extra segments beyond the route shape fall through to home
		{"/admin/settings", true, ViewHome},
		{"/category/c1/extra", false, ViewHome},
		{"/product/p1/extra", false, ViewHome},
		{"/offers/today", false, ViewHome},
		{"/contact/us", false, ViewHome},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			v := Resolve(tt.path, st, tt.isAdmin)
			assert.Equal(t, tt.expected, v.Type)
		})
	}
}

func TestResolveAdminUnauthenticatedOpensLogin(t *testing.T) {
	st := testState()

	v := Resolve("/admin", st, false)
	assert.Equal(t, ViewHome, v.Type)
	assert.True(t, v.ShowLogin)
	require.NotNil(t, v.Home)

	// Regular home views don't prompt for login
	v = Resolve("/", st, false)
	assert.False(t, v.ShowLogin)

	// Only the exact /admin path prompts; deeper paths are plain home
	v = Resolve("/admin/settings", st, false)
	assert.Equal(t, ViewHome, v.Type)
	assert.False(t, v.ShowLogin)
}

func TestResolveCategoryFiltersByName(t *testing.T) {
	st := testState()

	v := Resolve("/category/c2", st, false)
	require.NotNil(t, v.Category)
	assert.Equal(t, "coffee", v.Category.Category.Name)
	require.Len(t, v.Category.Products, 1)
	assert.Equal(t, "p2", v.Category.Products[0].ID)
}

func TestHomeSectionsCapProductsAndCycleAds(t *testing.T) {
	st := testState()

	v := Resolve("/", st, false)
	require.NotNil(t, v.Home)
	require.Len(t, v.Home.Sections, 3)

	// kitchen has 5 products, capped at 4
	kitchen := v.Home.Sections[0]
	assert.Len(t, kitchen.Products, 4)
	require.NotNil(t, kitchen.Ad)
	assert.Equal(t, "ad1", kitchen.Ad.ID)

	// Ads cycle by category index modulo ad count
	coffee := v.Home.Sections[1]
	require.NotNil(t, coffee.Ad)
	assert.Equal(t, "ad2", coffee.Ad.ID)

	// Sections without products carry no banner
	empty := v.Home.Sections[2]
	assert.Empty(t, empty.Products)
	assert.Nil(t, empty.Ad)
}

func TestOffersView(t *testing.T) {
	st := testState()

	v := Resolve("/offers", st, false)
	require.NotNil(t, v.Offers)

	// Products with a real discount
	require.Len(t, v.Offers.Discounted, 1)
	assert.Equal(t, "p3", v.Offers.Discounted[0].ID)

	// Expired offers stay listed; offers whose product is gone are skipped
	require.Len(t, v.Offers.FlashSales, 1)
	assert.Equal(t, "p2", v.Offers.FlashSales[0].Product.ID)
	assert.Equal(t, 70.0, v.Offers.FlashSales[0].OfferPrice)
	assert.True(t, v.Offers.FlashSales[0].Countdown.Ended)
}

func TestResolveTrailingSlash(t *testing.T) {
	st := testState()
	assert.Equal(t, ViewOffers, Resolve("/offers/", st, false).Type)
	assert.Equal(t, ViewCategory, Resolve("/category/c1/", st, false).Type)
}
