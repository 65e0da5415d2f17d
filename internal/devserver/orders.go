package devserver

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Karthiknalam/mern-store-frontend/internal/domain"
)

func (s *Server) handleCreateOrder(w http.ResponseWriter, r *http.Request) {
	var order domain.Order
	if err := json.NewDecoder(r.Body).Decode(&order); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if len(order.Items) == 0 {
		respondError(w, http.StatusBadRequest, "order has no items")
		return
	}

	rec, created := s.store.addOrder(order)
	status := http.StatusCreated
	if !created {
		// Same idempotency key as an earlier submission, replay the record.
		status = http.StatusOK
	}
	respondJSON(w, status, rec)
}

func (s *Server) handleOrdersByEmail(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, s.store.ordersByEmail(chi.URLParam(r, "email")))
}

func (s *Server) handleListOrders(w http.ResponseWriter, r *http.Request) {
	page, limit, _ := pageParams(r)
	status := domain.OrderStatus(r.URL.Query().Get("status"))
	if status != "" && !status.Valid() {
		respondError(w, http.StatusBadRequest, "unknown status filter")
		return
	}

	orders, total := s.store.listOrders(page, limit, status)
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"orders": orders,
		"total":  total,
	})
}

func (s *Server) handleUpdateOrder(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Status domain.OrderStatus `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if !payload.Status.Valid() {
		respondError(w, http.StatusBadRequest, "unknown status")
		return
	}

	rec, err := s.store.updateOrderStatus(chi.URLParam(r, "id"), payload.Status)
	if errors.Is(err, ErrNotFound) {
		respondError(w, http.StatusNotFound, "order not found")
		return
	}
	respondJSON(w, http.StatusOK, rec)
}
