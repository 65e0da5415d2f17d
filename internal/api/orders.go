package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/Karthiknalam/mern-store-frontend/internal/domain"
)

// OrderPage is one page of the admin order listing. Total is the page count.
type OrderPage struct {
	Orders []domain.OrderRecord `json:"orders"`
	Total  int                  `json:"total"`
}

// CreateOrder submits an order snapshot. Requires an authenticated session;
// the backend rejects the call with 401 otherwise.
func (c *Client) CreateOrder(ctx context.Context, order domain.Order) (domain.OrderRecord, error) {
	var out domain.OrderRecord
	if err := c.do(ctx, http.MethodPost, "/api/orders", nil, order, &out); err != nil {
		return domain.OrderRecord{}, err
	}
	return out, nil
}

// OrdersByEmail returns the order history for one customer.
func (c *Client) OrdersByEmail(ctx context.Context, email string) ([]domain.OrderRecord, error) {
	var out []domain.OrderRecord
	if err := c.do(ctx, http.MethodGet, "/api/orders/"+url.PathEscape(email), nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListOrders pages through all orders, optionally filtered by status.
// Admin-gated.
func (c *Client) ListOrders(ctx context.Context, page, limit int, status domain.OrderStatus) (OrderPage, error) {
	query := url.Values{
		"page":   {strconv.Itoa(page)},
		"limit":  {strconv.Itoa(limit)},
		"status": {status.String()},
	}

	var out OrderPage
	if err := c.do(ctx, http.MethodGet, "/api/orders/", query, nil, &out); err != nil {
		return OrderPage{}, err
	}
	return out, nil
}

// UpdateOrderStatus moves an order to a new status. Admin-gated.
func (c *Client) UpdateOrderStatus(ctx context.Context, id string, status domain.OrderStatus) (domain.OrderRecord, error) {
	payload := struct {
		Status domain.OrderStatus `json:"status"`
	}{Status: status}

	var out domain.OrderRecord
	if err := c.do(ctx, http.MethodPatch, "/api/orders/"+id, nil, payload, &out); err != nil {
		return domain.OrderRecord{}, err
	}
	return out, nil
}
