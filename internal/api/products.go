package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/Karthiknalam/mern-store-frontend/internal/domain"
)

// ProductPage is one page of catalog results. Total is the page count, not
// the record count; that is how the backend reports it.
type ProductPage struct {
	Products []domain.Product `json:"products"`
	Total    int              `json:"total"`
}

func (c *Client) ListProducts(ctx context.Context, page, limit int, search string) (ProductPage, error) {
	query := url.Values{
		"page":   {strconv.Itoa(page)},
		"limit":  {strconv.Itoa(limit)},
		"search": {search},
	}

	var out ProductPage
	if err := c.do(ctx, http.MethodGet, "/api/products/all", query, nil, &out); err != nil {
		return ProductPage{}, err
	}
	return out, nil
}

// CreateProduct adds a catalog record. Admin-gated by the backend.
func (c *Client) CreateProduct(ctx context.Context, p domain.Product) (domain.Product, error) {
	var out domain.Product
	if err := c.do(ctx, http.MethodPost, "/api/products", nil, p, &out); err != nil {
		return domain.Product{}, err
	}
	return out, nil
}

// UpdateProduct patches the record with the given id. Admin-gated.
func (c *Client) UpdateProduct(ctx context.Context, id string, p domain.Product) (domain.Product, error) {
	var out domain.Product
	if err := c.do(ctx, http.MethodPatch, "/api/products/"+id, nil, p, &out); err != nil {
		return domain.Product{}, err
	}
	return out, nil
}

// DeleteProduct removes the record with the given id. Admin-gated.
func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/products/"+id, nil, nil, nil)
}
