package square

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"brewflow/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestFetchCatalogParsesItemsAndVariations(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/catalog/list", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		assert.Equal(t, "ITEM", r.URL.Query().Get("types"))

		_, _ = w.Write([]byte(`{
			"objects": [
				{
					"type": "ITEM",
					"id": "item-matcha",
					"item_data": {
						"name": "Matcha",
						"variations": [
							{"id": "v-honey-oat", "item_variation_data": {"name": "Honey Oat", "price_money": {"amount": 1000, "currency": "USD"}}},
							{"id": "v-eispanner", "item_variation_data": {"name": "Eispanner", "price_money": {"amount": 1100, "currency": "USD"}}}
						]
					}
				},
				{"type": "CATEGORY", "id": "cat-drinks"}
			]
		}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "test-token", "loc-1", zap.NewNop())
	items, err := client.FetchCatalog(context.Background())
	require.NoError(t, err)

	require.Len(t, items, 1)
	assert.Equal(t, "Matcha", items[0].Name)
	require.Len(t, items[0].Variations, 2)
	assert.Equal(t, models.Variation{ID: "v-honey-oat", Label: "Honey Oat", Price: 1000}, items[0].Variations[0])
}

func TestFetchCatalogFollowsCursor(t *testing.T) {
	page := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		page++
		if r.URL.Query().Get("cursor") == "" {
			_, _ = w.Write([]byte(`{"cursor": "next-page", "objects": [
				{"type": "ITEM", "id": "i1", "item_data": {"name": "Soda", "variations": [{"id": "v1", "item_variation_data": {"name": "Can", "price_money": {"amount": 299}}}]}}
			]}`))
			return
		}
		assert.Equal(t, "next-page", r.URL.Query().Get("cursor"))
		_, _ = w.Write([]byte(`{"objects": [
			{"type": "ITEM", "id": "i2", "item_data": {"name": "Juice", "variations": [{"id": "v2", "item_variation_data": {"name": "Bottle", "price_money": {"amount": 399}}}]}}
		]}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "test-token", "loc-1", zap.NewNop())
	items, err := client.FetchCatalog(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, page)
	require.Len(t, items, 2)
	assert.Equal(t, "Soda", items[0].Name)
	assert.Equal(t, "Juice", items[1].Name)
}

func TestCreateOrderPostsLineItems(t *testing.T) {
	var got createOrderRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/orders", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"order": {"id": "abc123"}}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "test-token", "loc-1", zap.NewNop())
	orderID, err := client.CreateOrder(context.Background(), []models.LineItem{
		{VariationID: "v-coffee", Quantity: 2, UnitPrice: 350},
	})
	require.NoError(t, err)
	assert.Equal(t, "abc123", orderID)

	assert.NotEmpty(t, got.IdempotencyKey)
	assert.Equal(t, "loc-1", got.Order.LocationID)
	require.Len(t, got.Order.LineItems, 1)
	assert.Equal(t, "v-coffee", got.Order.LineItems[0].CatalogObjectID)
	assert.Equal(t, "2", got.Order.LineItems[0].Quantity)
}

func TestCreateOrderResolvesFirstLocation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v2/locations":
			_, _ = w.Write([]byte(`{"locations": [{"id": "loc-main"}, {"id": "loc-annex"}]}`))
		case "/v2/orders":
			var req createOrderRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "loc-main", req.Order.LocationID)
			_, _ = w.Write([]byte(`{"order": {"id": "ord-1"}}`))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "test-token", "", zap.NewNop())
	orderID, err := client.CreateOrder(context.Background(), []models.LineItem{
		{VariationID: "v1", Quantity: 1},
	})
	require.NoError(t, err)
	assert.Equal(t, "ord-1", orderID)

	// Location is cached after the first lookup.
	_, err = client.CreateOrder(context.Background(), []models.LineItem{{VariationID: "v1", Quantity: 1}})
	require.NoError(t, err)
}

func TestCreateOrderSurfacesBackendErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"errors": [{"category": "INVALID_REQUEST_ERROR", "code": "NOT_FOUND", "detail": "catalog object missing"}]}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "test-token", "loc-1", zap.NewNop())
	_, err := client.CreateOrder(context.Background(), []models.LineItem{
		{VariationID: "v-gone", Quantity: 1},
	})
	require.Error(t, err)

	var backendErr *BackendError
	require.ErrorAs(t, err, &backendErr)
	assert.Equal(t, "NOT_FOUND", backendErr.Code)
}
