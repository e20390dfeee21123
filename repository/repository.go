// Package repository defines the storage capability interfaces the
// controllers depend on. Production uses the mongodb adapters; tests use the
// memory adapters.
package repository

import (
	"context"
	"errors"

	"go-storefront/models"
)

var (
	// ErrNotFound is returned when no document matches the given identifier.
	ErrNotFound = errors.New("not found")
	// ErrInvalidID is returned for identifiers the backend cannot parse.
	ErrInvalidID = errors.New("invalid id")
)

// Product sort keys. The vocabulary is shared with the storefront client so
// local and remote ordering agree.
const (
	SortNewest    = "newest"
	SortPriceAsc  = "price-asc"
	SortPriceDesc = "price-desc"
	SortNameAsc   = "name-asc"
	SortNameDesc  = "name-desc"
)

// ProductQuery selects one page of the catalog.
type ProductQuery struct {
	Page   int // 1-based; values < 1 are treated as 1
	Limit  int
	Search string // case-insensitive substring over name and details
	Sort   string // one of the Sort* keys; anything else falls back to newest
}

// ProductRepository provides CRUD over the catalog.
type ProductRepository interface {
	List(ctx context.Context, q ProductQuery) ([]models.Product, error)
	Get(ctx context.Context, id string) (models.Product, error)
	Insert(ctx context.Context, p *models.Product) error
	Update(ctx context.Context, id string, p models.Product) error
	Delete(ctx context.Context, id string) error
}

// OrderRepository provides append-and-read access to orders. Orders are never
// mutated after creation except for administrative status changes.
type OrderRepository interface {
	List(ctx context.Context) ([]models.Order, error)
	Get(ctx context.Context, id string) (models.Order, error)
	Insert(ctx context.Context, o *models.Order) error
	UpdateStatus(ctx context.Context, id, status string) error
}

// UserRepository backs the identity collaborator.
type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (models.User, error)
	Insert(ctx context.Context, u *models.User) error
}

// TestRepository covers the scratch CRUD resource.
type TestRepository interface {
	List(ctx context.Context) ([]models.Test, error)
	Get(ctx context.Context, id string) (models.Test, error)
	Insert(ctx context.Context, t *models.Test) error
	Update(ctx context.Context, id string, t models.Test) error
	Delete(ctx context.Context, id string) error
}
