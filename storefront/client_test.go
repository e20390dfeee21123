package storefront_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-storefront/storefront"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientListProductsSendsQueryAndDecodesEnvelope(t *testing.T) {
	var gotQuery map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/products", r.URL.Path)
		gotQuery = map[string]string{
			"page":   r.URL.Query().Get("page"),
			"limit":  r.URL.Query().Get("limit"),
			"search": r.URL.Query().Get("search"),
			"sort":   r.URL.Query().Get("sort"),
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"data":    []storefront.Product{{ID: "p1", Name: "Tote", Price: 1000}},
		})
	}))
	defer server.Close()

	client := storefront.NewClient(server.URL)
	products, err := client.ListProducts(context.Background(), storefront.ListOptions{
		Page: 2, Limit: 6, Search: "tote", Sort: storefront.SortPriceAsc,
	})
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "p1", products[0].ID)
	assert.Equal(t, map[string]string{"page": "2", "limit": "6", "search": "tote", "sort": "price-asc"}, gotQuery)
}

func TestClientListProductsRemoteFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := storefront.NewClient(server.URL)
	_, err := client.ListProducts(context.Background(), storefront.ListOptions{Page: 1, Limit: 12})
	assert.ErrorIs(t, err, storefront.ErrRemote)
}

func TestClientListProductsUnsuccessfulEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"success": false, "error": "bad query"})
	}))
	defer server.Close()

	client := storefront.NewClient(server.URL)
	_, err := client.ListProducts(context.Background(), storefront.ListOptions{Page: 1, Limit: 12})
	require.ErrorIs(t, err, storefront.ErrRemote)
	assert.Contains(t, err.Error(), "bad query")
}

func TestClientGetProductNotFoundIsDistinct(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]interface{}{"success": false, "error": "Product not found"})
	}))
	defer server.Close()

	client := storefront.NewClient(server.URL)
	_, err := client.GetProduct(context.Background(), "missing")
	assert.ErrorIs(t, err, storefront.ErrNotFound)
	assert.NotErrorIs(t, err, storefront.ErrRemote)
}

func TestClientGetProduct(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/products/p1", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"data":    storefront.Product{ID: "p1", Name: "Tote"},
		})
	}))
	defer server.Close()

	client := storefront.NewClient(server.URL)
	product, err := client.GetProduct(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, "Tote", product.Name)
}

func TestClientListOrders(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/orders", r.URL.Path)
		json.NewEncoder(w).Encode([]storefront.Order{
			{ID: "o1", CustomerEmail: "a@x.com"},
			{ID: "o2", CustomerEmail: "b@x.com"},
		})
	}))
	defer server.Close()

	client := storefront.NewClient(server.URL)
	orders, err := client.ListOrders(context.Background())
	require.NoError(t, err)
	assert.Len(t, orders, 2)
}

func TestClientCreateOrder(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var order storefront.Order
		require.NoError(t, json.NewDecoder(r.Body).Decode(&order))
		order.ID = "64f1a2b3c4d5e6f7a8b9c0d1"
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(order)
	}))
	defer server.Close()

	client := storefront.NewClient(server.URL)
	created, err := client.CreateOrder(context.Background(), storefront.Order{
		CustomerName:  "Jane Doe",
		CustomerEmail: "jane@example.com",
		Total:         "2000.00",
	})
	require.NoError(t, err)
	assert.Equal(t, "64f1a2b3c4d5e6f7a8b9c0d1", created.ID)
	assert.Equal(t, "2000.00", created.Total)
}

func TestClientCreateOrderFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := storefront.NewClient(server.URL)
	_, err := client.CreateOrder(context.Background(), storefront.Order{})
	assert.ErrorIs(t, err, storefront.ErrRemote)
}

func TestClientTransportErrorIsRemote(t *testing.T) {
	client := storefront.NewClient("http://127.0.0.1:1")
	_, err := client.ListOrders(context.Background())
	assert.ErrorIs(t, err, storefront.ErrRemote)
}
