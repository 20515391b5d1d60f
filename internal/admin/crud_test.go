package admin

import (
	"testing"

	"storefront-service/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleProducts() []model.Product {
	return []model.Product{
		{ID: "p1", Name: "blender", Price: 120, Category: "kitchen"},
		{ID: "p2", Name: "iron", Price: 45, Category: "home"},
		{ID: "p3", Name: "kettle", Price: 25, Category: "kitchen"},
	}
}

func TestUpdateByIDShallowMerge(t *testing.T) {
	list := sampleProducts()

	out, found, err := UpdateByID(list, "p2", []byte(`{"price": 50}`))
	require.NoError(t, err)
	assert.True(t, found)

	// Only the fields present in the payload change
	assert.Equal(t, 50.0, out[1].Price)
	assert.Equal(t, "iron", out[1].Name)
	assert.Equal(t, "home", out[1].Category)

	// Order preserved, other records untouched
	assert.Equal(t, "p1", out[0].ID)
	assert.Equal(t, "p3", out[2].ID)
	assert.Equal(t, 120.0, out[0].Price)

	// The input list is not mutated
	assert.Equal(t, 45.0, list[1].Price)
}

func TestUpdateByIDMissing(t *testing.T) {
	list := sampleProducts()

	out, found, err := UpdateByID(list, "nope", []byte(`{"price": 1}`))
	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, list, out)
}

func TestUpdateByIDBadPayload(t *testing.T) {
	list := sampleProducts()

	_, found, err := UpdateByID(list, "p1", []byte(`{broken`))
	assert.Error(t, err)
	assert.False(t, found)
}

func TestDeleteByIDRemovesExactlyOne(t *testing.T) {
	list := sampleProducts()

	out, found := DeleteByID(list, "p2")
	assert.True(t, found)
	require.Len(t, out, 2)
	assert.Equal(t, "p1", out[0].ID)
	assert.Equal(t, "p3", out[1].ID)

	out, found = DeleteByID(list, "missing")
	assert.False(t, found)
	assert.Len(t, out, 3)
}

func TestPrepend(t *testing.T) {
	list := []model.Category{{ID: "c1"}, {ID: "c2"}}
	out := Prepend(list, model.Category{ID: "c0"})
	require.Len(t, out, 3)
	assert.Equal(t, "c0", out[0].ID)
	assert.Equal(t, "c1", out[1].ID)
}

func TestProductFactoryPrepends(t *testing.T) {
	st := &model.AppState{
		Products:   sampleProducts(),
		Categories: []model.Category{{ID: "c1", Name: "kitchen"}},
	}

	id, err := Collections()["products"].Add(st)
	require.NoError(t, err)
	require.Len(t, st.Products, 4)

	// New products land at the head with placeholder defaults
	created := st.Products[0]
	assert.Equal(t, id, created.ID)
	assert.Equal(t, 0.0, created.Price)
	assert.Equal(t, "kitchen", created.Category)
}

func TestOfferFactoryNeedsProducts(t *testing.T) {
	st := &model.AppState{}
	_, err := Collections()["specialOffers"].Add(st)
	assert.Error(t, err)

	st.Products = sampleProducts()
	id, err := Collections()["specialOffers"].Add(st)
	require.NoError(t, err)
	require.Len(t, st.SpecialOffers, 1)
	assert.Equal(t, id, st.SpecialOffers[0].ID)
	assert.Equal(t, "p1", st.SpecialOffers[0].ProductID)
	// Defaults to 80% of the product's price
	assert.InDelta(t, 96.0, st.SpecialOffers[0].OfferPrice, 0.001)
}

func TestOrdersAreNotCreatable(t *testing.T) {
	col, ok := Collections()["orders"]
	require.True(t, ok)
	assert.Nil(t, col.Add)
	assert.NotNil(t, col.Update)
	assert.NotNil(t, col.Delete)
}

func TestOrderStatusUpdate(t *testing.T) {
	st := &model.AppState{Orders: []model.Order{
		{ID: "ORD-1234", Status: model.OrderStatusPending, Total: 100},
	}}

	err := Collections()["orders"].Update(st, "ORD-1234", []byte(`{"status": "completed"}`))
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusCompleted, st.Orders[0].Status)
	// Total is never recomputed
	assert.Equal(t, 100.0, st.Orders[0].Total)
}

func TestUnknownCollectionKey(t *testing.T) {
	_, ok := Collections()["carts"]
	assert.False(t, ok, "carts are not part of the persisted document")
}
