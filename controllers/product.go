package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"go-storefront/models"
	"go-storefront/repository"

	"github.com/gorilla/mux"
)

// Page sizes the storefront requests: a bigger first page, smaller follow-ups
// while scrolling.
const DefaultPageSize = 12

// ProductController handles product-related requests
type ProductController struct {
	Repo repository.ProductRepository
}

// NewProductController creates a new ProductController
func NewProductController(repo repository.ProductRepository) *ProductController {
	return &ProductController{Repo: repo}
}

func intQuery(r *http.Request, key string, def int) int {
	v := r.URL.Query().Get(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		return def
	}
	return n
}

// ListProducts retrieves one page of the catalog with search and sort applied
func (pc *ProductController) ListProducts(w http.ResponseWriter, r *http.Request) {
	query := repository.ProductQuery{
		Page:   intQuery(r, "page", 1),
		Limit:  intQuery(r, "limit", DefaultPageSize),
		Search: r.URL.Query().Get("search"),
		Sort:   r.URL.Query().Get("sort"),
	}

	products, err := pc.Repo.List(r.Context(), query)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, envelope{Success: false, Error: "Error fetching products"})
		return
	}

	writeJSON(w, http.StatusOK, envelope{Success: true, Data: products})
}

// GetProductByID retrieves a single product by ID
func (pc *ProductController) GetProductByID(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	product, err := pc.Repo.Get(r.Context(), params["id"])
	if err != nil {
		writeJSON(w, statusForRepoErr(err), envelope{Success: false, Error: "Product not found"})
		return
	}

	writeJSON(w, http.StatusOK, envelope{Success: true, Data: product})
}

// CreateProduct handles adding a new product (Admin only)
func (pc *ProductController) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var product models.Product
	if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
		writeJSON(w, http.StatusBadRequest, envelope{Success: false, Error: "Invalid input"})
		return
	}
	if err := product.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, envelope{Success: false, Error: err.Error()})
		return
	}

	now := time.Now().UTC()
	product.CreatedAt = now
	product.UpdatedAt = now

	if err := pc.Repo.Insert(r.Context(), &product); err != nil {
		writeJSON(w, http.StatusInternalServerError, envelope{Success: false, Error: "Error creating product"})
		return
	}

	writeJSON(w, http.StatusCreated, envelope{Success: true, Data: product})
}

// UpdateProduct handles updating a product (Admin only)
func (pc *ProductController) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)

	var product models.Product
	if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
		writeJSON(w, http.StatusBadRequest, envelope{Success: false, Error: "Invalid input"})
		return
	}
	if err := product.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, envelope{Success: false, Error: err.Error()})
		return
	}

	existing, err := pc.Repo.Get(r.Context(), params["id"])
	if err != nil {
		writeJSON(w, statusForRepoErr(err), envelope{Success: false, Error: "Product not found"})
		return
	}

	product.CreatedAt = existing.CreatedAt
	product.UpdatedAt = time.Now().UTC()

	if err := pc.Repo.Update(r.Context(), params["id"], product); err != nil {
		writeJSON(w, statusForRepoErr(err), envelope{Success: false, Error: "Error updating product"})
		return
	}

	writeJSON(w, http.StatusOK, envelope{Success: true, Data: product})
}

// DeleteProduct handles deleting a product (Admin only)
func (pc *ProductController) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	if err := pc.Repo.Delete(r.Context(), params["id"]); err != nil {
		writeJSON(w, statusForRepoErr(err), envelope{Success: false, Error: "Error deleting product"})
		return
	}

	writeJSON(w, http.StatusOK, envelope{Success: true})
}
