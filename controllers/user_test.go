package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-storefront/controllers"
	"go-storefront/middleware"
	"go-storefront/models"
	"go-storefront/repository/memory"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func userRouter(repo *memory.UserRepository) *mux.Router {
	uc := controllers.NewUserController(repo)
	router := mux.NewRouter()
	router.HandleFunc("/register", uc.Register).Methods("POST")
	router.HandleFunc("/login", uc.Login).Methods("POST")
	protected := router.PathPrefix("/profile").Subrouter()
	protected.Use(middleware.AuthMiddleware)
	protected.HandleFunc("", uc.GetProfile).Methods("GET")
	return router
}

func postJSON(t *testing.T, router *mux.Router, path string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("POST", path, bytes.NewReader(body)))
	return rec
}

func TestRegisterLoginProfileFlow(t *testing.T) {
	repo := memory.NewUserRepository()
	router := userRouter(repo)

	rec := postJSON(t, router, "/register", map[string]string{
		"firstName": "Jane",
		"lastName":  "Doe",
		"email":     "jane@example.com",
		"password":  "hunter22",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	// Duplicate registration is rejected.
	rec = postJSON(t, router, "/register", map[string]string{
		"email":    "jane@example.com",
		"password": "hunter22",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Wrong password is rejected.
	rec = postJSON(t, router, "/login", map[string]string{
		"email":    "jane@example.com",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = postJSON(t, router, "/login", map[string]string{
		"email":    "jane@example.com",
		"password": "hunter22",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	var loginResp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &loginResp))
	token := loginResp["token"]
	require.NotEmpty(t, token)

	req := httptest.NewRequest("GET", "/profile", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var profile models.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &profile))
	assert.Equal(t, "jane@example.com", profile.Email)
	assert.Equal(t, "Jane", profile.FirstName)
	assert.Empty(t, profile.Password)
}

func TestProfileRequiresToken(t *testing.T) {
	router := userRouter(memory.NewUserRepository())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/profile", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req := httptest.NewRequest("GET", "/profile", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
