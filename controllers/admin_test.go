package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-storefront/controllers"
	"go-storefront/middleware"
	"go-storefront/models"
	"go-storefront/repository"
	"go-storefront/repository/memory"
	"go-storefront/utils"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// adminRouter mirrors the admin subrouters the application registers.
func adminRouter(products *memory.ProductRepository, orders *memory.OrderRepository) *mux.Router {
	pc := controllers.NewProductController(products)
	oc := controllers.NewOrderController(orders, nil)
	router := mux.NewRouter()

	admin := router.PathPrefix("/products").Subrouter()
	admin.Use(middleware.AuthMiddleware)
	admin.Use(middleware.AdminMiddleware)
	admin.HandleFunc("", pc.CreateProduct).Methods("POST")
	admin.HandleFunc("/{id}", pc.DeleteProduct).Methods("DELETE")

	adminOrders := router.PathPrefix("/orders").Subrouter()
	adminOrders.Use(middleware.AuthMiddleware)
	adminOrders.Use(middleware.AdminMiddleware)
	adminOrders.HandleFunc("/{id}/status", oc.UpdateOrderStatus).Methods("PATCH")

	return router
}

func bearerRequest(t *testing.T, method, path, token string, payload interface{}) *http.Request {
	t.Helper()
	var body bytes.Buffer
	if payload != nil {
		require.NoError(t, json.NewEncoder(&body).Encode(payload))
	}
	req := httptest.NewRequest(method, path, &body)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func TestProductWritesRequireAdminRole(t *testing.T) {
	products := memory.NewProductRepository()
	router := adminRouter(products, memory.NewOrderRepository())

	userToken, err := utils.GenerateJWT("jane@example.com", "user")
	require.NoError(t, err)
	adminToken, err := utils.GenerateJWT("admin@example.com", "admin")
	require.NoError(t, err)

	product := models.Product{Name: "Tote", Price: 1500}

	// No token at all.
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, bearerRequest(t, "POST", "/products", "", product))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Signed in, but not an admin.
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, bearerRequest(t, "POST", "/products", userToken, product))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	all, err := products.List(context.Background(), repository.ProductQuery{})
	require.NoError(t, err)
	assert.Empty(t, all, "rejected requests must not reach the store")

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, bearerRequest(t, "POST", "/products", adminToken, product))
	require.Equal(t, http.StatusCreated, rec.Code)

	all, err = products.List(context.Background(), repository.ProductQuery{})
	require.NoError(t, err)
	require.Len(t, all, 1)

	// Delete goes through the same gate.
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, bearerRequest(t, "DELETE", "/products/"+all[0].ID.Hex(), userToken, nil))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, bearerRequest(t, "DELETE", "/products/"+all[0].ID.Hex(), adminToken, nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestOrderStatusUpdateRequiresAdminRole(t *testing.T) {
	orders := memory.NewOrderRepository()
	router := adminRouter(memory.NewProductRepository(), orders)

	order := submission()
	order.Status = models.StatusPending
	require.NoError(t, orders.Insert(context.Background(), &order))

	userToken, err := utils.GenerateJWT("jane@example.com", "user")
	require.NoError(t, err)
	adminToken, err := utils.GenerateJWT("admin@example.com", "admin")
	require.NoError(t, err)

	patch := map[string]string{"status": models.StatusConfirmed}
	path := "/orders/" + order.ID.Hex() + "/status"

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, bearerRequest(t, "PATCH", path, "", patch))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, bearerRequest(t, "PATCH", path, userToken, patch))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	stored, err := orders.Get(context.Background(), order.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, stored.Status, "gated requests must not change the order")

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, bearerRequest(t, "PATCH", path, adminToken, patch))
	require.Equal(t, http.StatusOK, rec.Code)

	stored, err = orders.Get(context.Background(), order.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, models.StatusConfirmed, stored.Status)
}
