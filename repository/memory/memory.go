// Package memory implements the repository interfaces in process memory.
// It backs handler tests and local development without a MongoDB instance,
// mirroring the paging, search and sort semantics of the mongodb adapters.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"go-storefront/models"
	"go-storefront/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProductRepository keeps products in a slice guarded by a mutex.
type ProductRepository struct {
	mu       sync.Mutex
	products []models.Product
}

// NewProductRepository creates an empty in-memory product store.
func NewProductRepository() *ProductRepository {
	return &ProductRepository{}
}

func matchesSearch(p models.Product, term string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	return strings.Contains(strings.ToLower(p.Name), term) ||
		strings.Contains(strings.ToLower(p.Details), term)
}

func sortProducts(products []models.Product, key string) {
	switch key {
	case repository.SortPriceAsc:
		sort.SliceStable(products, func(i, j int) bool { return products[i].Price < products[j].Price })
	case repository.SortPriceDesc:
		sort.SliceStable(products, func(i, j int) bool { return products[i].Price > products[j].Price })
	case repository.SortNameAsc:
		sort.SliceStable(products, func(i, j int) bool { return products[i].Name < products[j].Name })
	case repository.SortNameDesc:
		sort.SliceStable(products, func(i, j int) bool { return products[i].Name > products[j].Name })
	default:
		sort.SliceStable(products, func(i, j int) bool { return products[i].CreatedAt.After(products[j].CreatedAt) })
	}
}

// List returns one page of the catalog matching the query.
func (r *ProductRepository) List(_ context.Context, q repository.ProductQuery) ([]models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	matched := []models.Product{}
	for _, p := range r.products {
		if matchesSearch(p, q.Search) {
			matched = append(matched, p)
		}
	}
	sortProducts(matched, q.Sort)

	if q.Limit <= 0 {
		return matched, nil
	}
	page := q.Page
	if page < 1 {
		page = 1
	}
	start := (page - 1) * q.Limit
	if start >= len(matched) {
		return []models.Product{}, nil
	}
	end := start + q.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], nil
}

// Get fetches a single product by id.
func (r *ProductRepository) Get(_ context.Context, id string) (models.Product, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return models.Product{}, repository.ErrInvalidID
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.products {
		if p.ID.Hex() == id {
			return p, nil
		}
	}
	return models.Product{}, repository.ErrNotFound
}

// Insert adds a product and fills in a generated id.
func (r *ProductRepository) Insert(_ context.Context, p *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}
	r.products = append(r.products, *p)
	return nil
}

// Update replaces the product's mutable fields.
func (r *ProductRepository) Update(_ context.Context, id string, p models.Product) error {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return repository.ErrInvalidID
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, existing := range r.products {
		if existing.ID.Hex() == id {
			p.ID = existing.ID
			r.products[i] = p
			return nil
		}
	}
	return repository.ErrNotFound
}

// Delete removes a product.
func (r *ProductRepository) Delete(_ context.Context, id string) error {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return repository.ErrInvalidID
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, existing := range r.products {
		if existing.ID.Hex() == id {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

// OrderRepository keeps orders in a slice guarded by a mutex.
type OrderRepository struct {
	mu     sync.Mutex
	orders []models.Order
}

// NewOrderRepository creates an empty in-memory order store.
func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

// List returns every order, newest first.
func (r *OrderRepository) List(_ context.Context) ([]models.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	orders := make([]models.Order, len(r.orders))
	copy(orders, r.orders)
	sort.SliceStable(orders, func(i, j int) bool { return orders[i].CreatedAt.After(orders[j].CreatedAt) })
	return orders, nil
}

// Get fetches a single order by id.
func (r *OrderRepository) Get(_ context.Context, id string) (models.Order, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return models.Order{}, repository.ErrInvalidID
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, o := range r.orders {
		if o.ID.Hex() == id {
			return o, nil
		}
	}
	return models.Order{}, repository.ErrNotFound
}

// Insert adds an order and fills in a generated id.
func (r *OrderRepository) Insert(_ context.Context, o *models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if o.ID.IsZero() {
		o.ID = primitive.NewObjectID()
	}
	r.orders = append(r.orders, *o)
	return nil
}

// UpdateStatus sets the order status.
func (r *OrderRepository) UpdateStatus(_ context.Context, id, status string) error {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return repository.ErrInvalidID
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, o := range r.orders {
		if o.ID.Hex() == id {
			r.orders[i].Status = status
			return nil
		}
	}
	return repository.ErrNotFound
}

// UserRepository keeps users in a map keyed by email.
type UserRepository struct {
	mu    sync.Mutex
	users map[string]models.User
}

// NewUserRepository creates an empty in-memory user store.
func NewUserRepository() *UserRepository {
	return &UserRepository{users: map[string]models.User{}}
}

// GetByEmail looks a user up by their primary email.
func (r *UserRepository) GetByEmail(_ context.Context, email string) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[email]
	if !ok {
		return models.User{}, repository.ErrNotFound
	}
	return user, nil
}

// Insert adds a user and fills in a generated id.
func (r *UserRepository) Insert(_ context.Context, u *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	r.users[u.Email] = *u
	return nil
}

// TestRepository keeps scratch documents in a slice guarded by a mutex.
type TestRepository struct {
	mu    sync.Mutex
	tests []models.Test
}

// NewTestRepository creates an empty in-memory scratch store.
func NewTestRepository() *TestRepository {
	return &TestRepository{}
}

// List returns every scratch document.
func (r *TestRepository) List(_ context.Context) ([]models.Test, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	tests := make([]models.Test, len(r.tests))
	copy(tests, r.tests)
	return tests, nil
}

// Get fetches a scratch document by id.
func (r *TestRepository) Get(_ context.Context, id string) (models.Test, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return models.Test{}, repository.ErrInvalidID
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range r.tests {
		if t.ID.Hex() == id {
			return t, nil
		}
	}
	return models.Test{}, repository.ErrNotFound
}

// Insert adds a scratch document and fills in a generated id.
func (r *TestRepository) Insert(_ context.Context, t *models.Test) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if t.ID.IsZero() {
		t.ID = primitive.NewObjectID()
	}
	r.tests = append(r.tests, *t)
	return nil
}

// Update replaces the scratch document's fields.
func (r *TestRepository) Update(_ context.Context, id string, t models.Test) error {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return repository.ErrInvalidID
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, existing := range r.tests {
		if existing.ID.Hex() == id {
			t.ID = existing.ID
			r.tests[i] = t
			return nil
		}
	}
	return repository.ErrNotFound
}

// Delete removes a scratch document.
func (r *TestRepository) Delete(_ context.Context, id string) error {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return repository.ErrInvalidID
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, existing := range r.tests {
		if existing.ID.Hex() == id {
			r.tests = append(r.tests[:i], r.tests[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}
