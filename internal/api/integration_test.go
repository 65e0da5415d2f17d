package api_test

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Karthiknalam/mern-store-frontend/internal/api"
	"github.com/Karthiknalam/mern-store-frontend/internal/devserver"
	"github.com/Karthiknalam/mern-store-frontend/internal/domain"
	"github.com/Karthiknalam/mern-store-frontend/internal/session"
)

// The integration test drives the client against the in-memory dev backend,
// end to end: register, login, browse, place an order, read it back, then
// exercise the admin surface.
func TestClientAgainstDevServer(t *testing.T) {
	srv := devserver.New()
	srv.SeedAdmin("admin@example.com", "secret")
	srv.SeedProduct(domain.Product{ProductName: "Widget", Description: "a widget", Price: 10})
	srv.SeedProduct(domain.Product{ProductName: "Gadget", Description: "a gadget", Price: 5.5})

	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	sessions := session.NewStore()
	client := api.New(ts.URL, sessions)
	ctx := context.Background()

	// Sign up and log in.
	require.NoError(t, client.Register(ctx, api.Registration{
		FirstName: "Jane", LastName: "Doe", Email: "jane@example.com", Password: "pw",
	}))
	sess, err := client.Login(ctx, api.Credentials{Email: "jane@example.com", Password: "pw"})
	require.NoError(t, err)
	require.True(t, sess.IsAuthenticated())
	sessions.Set(sess)

	// Browse the catalog.
	page, err := client.ListProducts(ctx, 1, 10, "")
	require.NoError(t, err)
	require.Len(t, page.Products, 2)

	// Admin endpoints are closed to a plain user.
	_, err = client.ListUsers(ctx, 1, 10, "")
	assert.ErrorIs(t, err, api.ErrUnauthorized)

	// Place an order for two widgets.
	widget := page.Products[0]
	rec, err := client.CreateOrder(ctx, domain.Order{
		Items:          []domain.CartLine{{Product: widget, Qty: 2}},
		OrderValue:     2 * widget.Price,
		Email:          sess.Email,
		UserID:         sess.ID,
		IdempotencyKey: "it-key-1",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusPending, rec.Status)

	history, err := client.OrdersByEmail(ctx, sess.Email)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, rec.ID, history[0].ID)

	// Profile round-trip.
	profile, err := client.GetProfile(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, "Jane", profile.FirstName)

	profile, err = client.UpdateProfile(ctx, sess.ID, api.ProfileUpdate{FirstName: "Janet"})
	require.NoError(t, err)
	assert.Equal(t, "Janet", profile.FirstName)

	// Switch to the admin session for the back office.
	adminSess, err := client.Login(ctx, api.Credentials{Email: "admin@example.com", Password: "secret"})
	require.NoError(t, err)
	require.True(t, adminSess.IsAdmin())
	sessions.Set(adminSess)

	users, err := client.ListUsers(ctx, 1, 10, "jane")
	require.NoError(t, err)
	require.Len(t, users.Users, 1)

	created, err := client.CreateProduct(ctx, domain.Product{ProductName: "Sprocket", Price: 3})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	updatedRec, err := client.UpdateOrderStatus(ctx, rec.ID, domain.OrderStatusShipped)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusShipped, updatedRec.Status)

	orders, err := client.ListOrders(ctx, 1, 5, domain.OrderStatusShipped)
	require.NoError(t, err)
	require.Len(t, orders.Orders, 1)

	require.NoError(t, client.DeleteProduct(ctx, created.ID))
}
