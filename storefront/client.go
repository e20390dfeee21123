package storefront

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// Client talks to the storefront API. Failures are surfaced once, never
// retried; a not-found is reported distinctly from any other failure.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient returns a Client for the given base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{},
	}
}

type productEnvelope struct {
	Success bool      `json:"success"`
	Data    []Product `json:"data"`
	Error   string    `json:"error"`
}

type singleProductEnvelope struct {
	Success bool    `json:"success"`
	Data    Product `json:"data"`
	Error   string  `json:"error"`
}

func (c *Client) get(ctx context.Context, path string, query url.Values) (*http.Response, error) {
	u := c.BaseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRemote, err)
	}
	return resp, nil
}

// ListProducts requests one page of the catalog.
func (c *Client) ListProducts(ctx context.Context, opts ListOptions) ([]Product, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(opts.Page))
	query.Set("limit", strconv.Itoa(opts.Limit))
	if opts.Search != "" {
		query.Set("search", opts.Search)
	}
	if opts.Sort != "" {
		query.Set("sort", opts.Sort)
	}

	resp, err := c.get(ctx, "/products", query)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: products returned %d", ErrRemote, resp.StatusCode)
	}
	var env productEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRemote, err)
	}
	if !env.Success {
		return nil, fmt.Errorf("%w: %s", ErrRemote, env.Error)
	}
	return env.Data, nil
}

// GetProduct fetches a single product. A missing product is ErrNotFound.
func (c *Client) GetProduct(ctx context.Context, id string) (Product, error) {
	resp, err := c.get(ctx, "/products/"+url.PathEscape(id), nil)
	if err != nil {
		return Product{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return Product{}, ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return Product{}, fmt.Errorf("%w: product returned %d", ErrRemote, resp.StatusCode)
	}
	var env singleProductEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return Product{}, fmt.Errorf("%w: %v", ErrRemote, err)
	}
	if !env.Success {
		return Product{}, fmt.Errorf("%w: %s", ErrRemote, env.Error)
	}
	return env.Data, nil
}

// ListOrders fetches the full order list. The server does not filter by
// customer; callers scope the result themselves.
func (c *Client) ListOrders(ctx context.Context) ([]Order, error) {
	resp, err := c.get(ctx, "/orders", nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: orders returned %d", ErrRemote, resp.StatusCode)
	}
	var orders []Order
	if err := json.NewDecoder(resp.Body).Decode(&orders); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRemote, err)
	}
	return orders, nil
}

// CreateOrder submits an order. There is no retry and no idempotency key; a
// duplicate submission creates a duplicate order.
func (c *Client) CreateOrder(ctx context.Context, order Order) (Order, error) {
	body, err := json.Marshal(order)
	if err != nil {
		return Order{}, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/orders", bytes.NewReader(body))
	if err != nil {
		return Order{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return Order{}, fmt.Errorf("%w: %v", ErrRemote, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return Order{}, fmt.Errorf("%w: order submission returned %d", ErrRemote, resp.StatusCode)
	}
	var created Order
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return Order{}, fmt.Errorf("%w: %v", ErrRemote, err)
	}
	return created, nil
}
