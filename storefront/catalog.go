package storefront

import (
	"context"
	"sort"
	"strings"
	"sync"
)

// Page sizes: a bigger first load, smaller pages while scrolling.
const (
	InitialPageSize = 12
	PageSize        = 6

	// scrollThreshold is how close to the bottom, in pixels, the viewport
	// must be before the next page is requested.
	scrollThreshold = 200
)

// ProductFetcher requests one page of products from the remote store.
// Client implements it.
type ProductFetcher interface {
	ListProducts(ctx context.Context, opts ListOptions) ([]Product, error)
}

// Catalog holds the pages fetched so far and supports local filter and sort
// over them. Filtering never re-queries the remote store; only an explicit
// Fetch does.
type Catalog struct {
	mu       sync.Mutex
	fetcher  ProductFetcher
	products []Product
	selected map[string]string // product id -> currently displayed image
	page     int
	gen      int
	fetching bool
	hasMore  bool
}

// NewCatalog returns an empty catalog backed by the given fetcher.
func NewCatalog(fetcher ProductFetcher) *Catalog {
	return &Catalog{
		fetcher:  fetcher,
		selected: map[string]string{},
		hasMore:  true,
	}
}

// Fetch requests a page with the given search and sort. Page 1 replaces the
// loaded set; later pages append. Each product's displayed image is seeded
// with its first image. A short page means no more pages exist. If a newer
// fetch starts while this one is in flight, the late result is discarded
// instead of overwriting fresher state and the call reports ErrSuperseded.
func (c *Catalog) Fetch(ctx context.Context, page int, search, sortKey string, initial bool) error {
	limit := PageSize
	if initial {
		limit = InitialPageSize
	}

	c.mu.Lock()
	c.gen++
	gen := c.gen
	c.fetching = true
	c.mu.Unlock()

	products, err := c.fetcher.ListProducts(ctx, ListOptions{
		Page:   page,
		Limit:  limit,
		Search: search,
		Sort:   sortKey,
	})

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen {
		// A newer fetch owns the state now; nothing here was written.
		if err != nil {
			return err
		}
		return ErrSuperseded
	}
	c.fetching = false
	if err != nil {
		return err
	}

	if page <= 1 {
		c.products = products
		c.selected = map[string]string{}
	} else {
		c.products = append(c.products, products...)
	}
	for _, p := range products {
		if _, ok := c.selected[p.ID]; !ok && len(p.Images) > 0 {
			c.selected[p.ID] = p.Images[0]
		}
	}

	c.page = page
	if initial && page == 1 {
		// The bigger first load spans several scroll pages; account for them
		// so the next append starts where this load ended.
		c.page = limit / PageSize
	}
	c.hasMore = len(products) == limit
	return nil
}

// FetchNext loads the page after the last one fetched, if more pages are
// believed to exist and no fetch is in flight.
func (c *Catalog) FetchNext(ctx context.Context, search, sortKey string) error {
	c.mu.Lock()
	if c.fetching || !c.hasMore {
		c.mu.Unlock()
		return nil
	}
	next := c.page + 1
	c.mu.Unlock()
	return c.Fetch(ctx, next, search, sortKey, false)
}

// Products returns a copy of every product fetched so far.
func (c *Catalog) Products() []Product {
	c.mu.Lock()
	defer c.mu.Unlock()
	products := make([]Product, len(c.products))
	copy(products, c.products)
	return products
}

// Filter returns the loaded products whose name or details contain term,
// case-insensitively. An empty term matches everything.
func (c *Catalog) Filter(term string) []Product {
	products := c.Products()
	if term == "" {
		return products
	}
	term = strings.ToLower(term)
	filtered := []Product{}
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), term) ||
			strings.Contains(strings.ToLower(p.Details), term) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// View is what the product grid binds to: the loaded set filtered by term,
// then sorted by key.
func (c *Catalog) View(term, sortKey string) []Product {
	products := c.Filter(term)
	sortView(products, sortKey)
	return products
}

func sortView(products []Product, key string) {
	switch key {
	case SortPriceAsc:
		sort.SliceStable(products, func(i, j int) bool { return products[i].Price < products[j].Price })
	case SortPriceDesc:
		sort.SliceStable(products, func(i, j int) bool { return products[i].Price > products[j].Price })
	case SortNameAsc:
		sort.SliceStable(products, func(i, j int) bool { return products[i].Name < products[j].Name })
	case SortNameDesc:
		sort.SliceStable(products, func(i, j int) bool { return products[i].Name > products[j].Name })
	case SortNewest:
		sort.SliceStable(products, func(i, j int) bool { return products[i].CreatedAt.After(products[j].CreatedAt) })
	}
}

// ShouldLoadMore reports whether the infinite-scroll trigger fires: within
// scrollThreshold of the document bottom, no fetch in flight, and more pages
// believed to exist.
func (c *Catalog) ShouldLoadMore(scrollTop, viewportHeight, docHeight float64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.fetching || !c.hasMore {
		return false
	}
	return scrollTop+viewportHeight >= docHeight-scrollThreshold
}

// HasMore reports whether another page is believed to exist.
func (c *Catalog) HasMore() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hasMore
}

// Fetching reports whether a fetch is in flight.
func (c *Catalog) Fetching() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fetching
}

// Page returns the scroll position in PageSize-sized pages, 0 before any
// fetch. The bigger initial load counts for the pages it spans.
func (c *Catalog) Page() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.page
}

// SelectedImage returns the currently displayed image for a product.
func (c *Catalog) SelectedImage(productID string) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.selected[productID]
}

// SelectImage switches the displayed image for a product (the image
// indicator dots under a product card).
func (c *Catalog) SelectImage(productID, image string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.selected[productID] = image
}
