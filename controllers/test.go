package controllers

import (
	"encoding/json"
	"net/http"

	"go-storefront/models"
	"go-storefront/repository"

	"github.com/gorilla/mux"
)

// TestController handles the scratch CRUD resource used for endpoint smoke
// checks. It is not part of the storefront domain.
type TestController struct {
	Repo repository.TestRepository
}

// NewTestController creates a new TestController
func NewTestController(repo repository.TestRepository) *TestController {
	return &TestController{Repo: repo}
}

// ListTests retrieves all scratch documents
func (tc *TestController) ListTests(w http.ResponseWriter, r *http.Request) {
	tests, err := tc.Repo.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch tests")
		return
	}
	writeJSON(w, http.StatusOK, tests)
}

// CreateTest creates a scratch document
func (tc *TestController) CreateTest(w http.ResponseWriter, r *http.Request) {
	var t models.Test
	if err := json.NewDecoder(r.Body).Decode(&t); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if err := tc.Repo.Insert(r.Context(), &t); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to create test")
		return
	}
	writeJSON(w, http.StatusCreated, t)
}

// GetTest retrieves a scratch document by ID
func (tc *TestController) GetTest(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	t, err := tc.Repo.Get(r.Context(), params["id"])
	if err != nil {
		writeError(w, statusForRepoErr(err), "Test not found")
		return
	}
	writeJSON(w, http.StatusOK, t)
}

// UpdateTest replaces a scratch document
func (tc *TestController) UpdateTest(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	var t models.Test
	if err := json.NewDecoder(r.Body).Decode(&t); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if err := tc.Repo.Update(r.Context(), params["id"], t); err != nil {
		writeError(w, statusForRepoErr(err), "Failed to update test")
		return
	}
	writeJSON(w, http.StatusOK, t)
}

// DeleteTest removes a scratch document
func (tc *TestController) DeleteTest(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	if err := tc.Repo.Delete(r.Context(), params["id"]); err != nil {
		writeError(w, statusForRepoErr(err), "Failed to delete test")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Test deleted"})
}
