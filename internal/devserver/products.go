package devserver

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Karthiknalam/mern-store-frontend/internal/domain"
)

func (s *Server) handleListProducts(w http.ResponseWriter, r *http.Request) {
	page, limit, search := pageParams(r)
	products, total := s.store.listProducts(page, limit, search)

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"products": products,
		"total":    total,
	})
}

func (s *Server) handleCreateProduct(w http.ResponseWriter, r *http.Request) {
	var p domain.Product
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if p.ProductName == "" {
		respondError(w, http.StatusBadRequest, "productName is required")
		return
	}
	if p.Price < 0 {
		respondError(w, http.StatusBadRequest, "price must not be negative")
		return
	}

	respondJSON(w, http.StatusCreated, s.store.addProduct(p))
}

func (s *Server) handleUpdateProduct(w http.ResponseWriter, r *http.Request) {
	var patch domain.Product
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if patch.Price < 0 {
		respondError(w, http.StatusBadRequest, "price must not be negative")
		return
	}

	updated, err := s.store.updateProduct(chi.URLParam(r, "id"), patch)
	if errors.Is(err, ErrNotFound) {
		respondError(w, http.StatusNotFound, "product not found")
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

func (s *Server) handleDeleteProduct(w http.ResponseWriter, r *http.Request) {
	if err := s.store.deleteProduct(chi.URLParam(r, "id")); errors.Is(err, ErrNotFound) {
		respondError(w, http.StatusNotFound, "product not found")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
