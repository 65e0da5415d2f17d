package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Karthiknalam/mern-store-frontend/internal/domain"
)

type stubSessions struct {
	sess domain.Session
}

func (s stubSessions) Get() domain.Session { return s.sess }

func TestDo_AttachesBearerToken(t *testing.T) {
	var gotAuth string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(ProductPage{})
	}))
	defer ts.Close()

	client := New(ts.URL, stubSessions{sess: domain.Session{Token: "tok-123"}})
	if _, err := client.ListProducts(context.Background(), 1, 10, ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotAuth != "Bearer tok-123" {
		t.Errorf("expected bearer header, got %q", gotAuth)
	}
}

func TestDo_NoTokenWhenLoggedOut(t *testing.T) {
	var gotAuth string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(ProductPage{})
	}))
	defer ts.Close()

	client := New(ts.URL, stubSessions{})
	if _, err := client.ListProducts(context.Background(), 1, 10, ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotAuth != "" {
		t.Errorf("expected no Authorization header, got %q", gotAuth)
	}
}

func TestDo_QueryParams(t *testing.T) {
	var gotQuery map[string]string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		gotQuery = map[string]string{
			"page":   q.Get("page"),
			"limit":  q.Get("limit"),
			"search": q.Get("search"),
		}
		json.NewEncoder(w).Encode(ProductPage{})
	}))
	defer ts.Close()

	client := New(ts.URL, stubSessions{})
	if _, err := client.ListProducts(context.Background(), 3, 5, "widget"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := map[string]string{"page": "3", "limit": "5", "search": "widget"}
	for k, v := range want {
		if gotQuery[k] != v {
			t.Errorf("query %s: expected %q, got %q", k, v, gotQuery[k])
		}
	}
}

func TestDo_MapsUnauthorized(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"error": "admin privileges required"})
	}))
	defer ts.Close()

	client := New(ts.URL, stubSessions{sess: domain.Session{Token: "tok"}})
	_, err := client.ListUsers(context.Background(), 1, 10, "")

	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestDo_MapsOtherStatuses(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(map[string]string{"error": "email already registered"})
	}))
	defer ts.Close()

	client := New(ts.URL, stubSessions{})
	err := client.Register(context.Background(), Registration{
		FirstName: "Jane", LastName: "Doe", Email: "jane@example.com", Password: "pw",
	})

	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected StatusError, got %v", err)
	}
	if statusErr.Status != http.StatusConflict {
		t.Errorf("expected status 409, got %d", statusErr.Status)
	}
	if statusErr.Message != "email already registered" {
		t.Errorf("expected backend message, got %q", statusErr.Message)
	}
}

func TestCreateOrder_SendsSnapshot(t *testing.T) {
	var got domain.Order
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/orders" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		json.NewDecoder(r.Body).Decode(&got)
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(domain.OrderRecord{ID: "o1", Status: domain.OrderStatusPending})
	}))
	defer ts.Close()

	client := New(ts.URL, stubSessions{sess: domain.Session{Token: "tok"}})
	order := domain.Order{
		Items:          []domain.CartLine{{Product: domain.Product{ID: "p1", Price: 10}, Qty: 2}},
		OrderValue:     20,
		Email:          "jane@example.com",
		UserID:         "u1",
		IdempotencyKey: "key-1",
	}

	rec, err := client.CreateOrder(context.Background(), order)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.ID != "o1" {
		t.Errorf("expected record o1, got %q", rec.ID)
	}
	if got.IdempotencyKey != "key-1" {
		t.Errorf("idempotency key not sent, got %q", got.IdempotencyKey)
	}
	if got.OrderValue != 20 {
		t.Errorf("expected orderValue 20, got %v", got.OrderValue)
	}
}
