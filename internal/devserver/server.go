// Package devserver is an in-memory stand-in for the store backend. It
// serves the same REST surface the client consumes, so integration tests
// and local development do not need the real deployment. State is lost on
// exit.
package devserver

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/Karthiknalam/mern-store-frontend/internal/domain"
)

type Server struct {
	store *memStore
}

func New() *Server {
	return &Server{store: newMemStore()}
}

// Handler builds the router for the consumed REST surface.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.Compress(5))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/products/all", s.handleListProducts)
		r.Post("/products", s.requireAdmin(s.handleCreateProduct))
		r.Patch("/products/{id}", s.requireAdmin(s.handleUpdateProduct))
		r.Delete("/products/{id}", s.requireAdmin(s.handleDeleteProduct))

		r.Post("/users/register", s.handleRegister)
		r.Post("/users/login", s.handleLogin)
		r.Get("/users/{id}/profile", s.handleGetProfile)
		r.Patch("/users/{id}/profile", s.handleUpdateProfile)
		r.Get("/users/", s.requireAdmin(s.handleListUsers))
		r.Post("/users", s.requireAdmin(s.handleCreateUser))
		r.Patch("/users/{id}", s.requireAdmin(s.handleUpdateUser))
		r.Delete("/users/{id}", s.requireAdmin(s.handleDeleteUser))

		r.Post("/orders", s.requireAuth(s.handleCreateOrder))
		r.Get("/orders/", s.requireAdmin(s.handleListOrders))
		r.Patch("/orders/{id}", s.requireAdmin(s.handleUpdateOrder))
		r.Get("/orders/{email}", s.handleOrdersByEmail)
	})

	return r
}

// Seed helpers used by main and by tests.

func (s *Server) SeedAdmin(email, password string) domain.User {
	u, err := s.store.addUser(domain.User{
		FirstName: "Store",
		LastName:  "Admin",
		Email:     email,
		Role:      "admin",
	}, password)
	if err != nil {
		log.Printf("seed admin: %v", err)
	}
	return u
}

func (s *Server) SeedProduct(p domain.Product) domain.Product {
	return s.store.addProduct(p)
}

// bearerUser resolves the Authorization header to a user, if any.
func (s *Server) bearerUser(r *http.Request) (domain.User, bool) {
	header := r.Header.Get("Authorization")
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || token == "" {
		return domain.User{}, false
	}
	return s.store.userByToken(token)
}

func (s *Server) requireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := s.bearerUser(r); !ok {
			respondError(w, http.StatusUnauthorized, "missing or invalid token")
			return
		}
		next(w, r)
	}
}

func (s *Server) requireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, ok := s.bearerUser(r)
		if !ok || u.Role != "admin" {
			respondError(w, http.StatusUnauthorized, "admin privileges required")
			return
		}
		next(w, r)
	}
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// pageParams pulls page/limit/search out of the query string with the
// defaults the storefront uses.
func pageParams(r *http.Request) (page, limit int, search string) {
	q := r.URL.Query()
	page, _ = strconv.Atoi(q.Get("page"))
	if page <= 0 {
		page = 1
	}
	limit, _ = strconv.Atoi(q.Get("limit"))
	if limit <= 0 {
		limit = 10
	}
	return page, limit, q.Get("search")
}
