package devserver

import (
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Karthiknalam/mern-store-frontend/internal/domain"
)

var (
	ErrNotFound       = errors.New("record not found")
	ErrDuplicateEmail = errors.New("email already registered")
)

// userRecord keeps the password alongside the public user fields. Passwords
// stay in memory in the clear; this server is a development fixture, not a
// credential store.
type userRecord struct {
	domain.User
	Password string
}

// memStore backs the dev server. Everything lives behind one mutex and is
// gone when the process exits.
type memStore struct {
	mu       sync.RWMutex
	products []domain.Product
	users    []userRecord
	orders   []domain.OrderRecord
	tokens   map[string]string // bearer token -> user id
	idemKeys map[string]string // idempotency key -> order id
}

func newMemStore() *memStore {
	return &memStore{
		tokens:   make(map[string]string),
		idemKeys: make(map[string]string),
	}
}

// paginate slices a filtered result set and reports the page count the
// storefront expects in the "total" field.
func paginate[T any](items []T, page, limit int) ([]T, int) {
	if limit <= 0 {
		limit = 10
	}
	if page <= 0 {
		page = 1
	}

	totalPages := (len(items) + limit - 1) / limit
	start := (page - 1) * limit
	if start >= len(items) {
		return []T{}, totalPages
	}
	end := start + limit
	if end > len(items) {
		end = len(items)
	}
	return items[start:end], totalPages
}

func (s *memStore) addProduct(p domain.Product) domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	p.ID = uuid.NewString()
	s.products = append(s.products, p)
	return p
}

func (s *memStore) listProducts(page, limit int, search string) ([]domain.Product, int) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]domain.Product, 0, len(s.products))
	needle := strings.ToLower(search)
	for _, p := range s.products {
		if needle == "" || strings.Contains(strings.ToLower(p.ProductName), needle) {
			matched = append(matched, p)
		}
	}
	return paginate(matched, page, limit)
}

func (s *memStore) updateProduct(id string, patch domain.Product) (domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID != id {
			continue
		}
		if patch.ProductName != "" {
			s.products[i].ProductName = patch.ProductName
		}
		if patch.Description != "" {
			s.products[i].Description = patch.Description
		}
		if patch.Price != 0 {
			s.products[i].Price = patch.Price
		}
		if patch.ImgURL != "" {
			s.products[i].ImgURL = patch.ImgURL
		}
		return s.products[i], nil
	}
	return domain.Product{}, ErrNotFound
}

func (s *memStore) deleteProduct(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (s *memStore) addUser(u domain.User, password string) (domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.Email == u.Email {
			return domain.User{}, ErrDuplicateEmail
		}
	}

	u.ID = uuid.NewString()
	u.CreatedAt = time.Now().UTC()
	if u.Role == "" {
		u.Role = "user"
	}
	s.users = append(s.users, userRecord{User: u, Password: password})
	return u, nil
}

func (s *memStore) authenticate(email, password string) (domain.User, string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == email && u.Password == password {
			token := uuid.NewString()
			s.tokens[token] = u.User.ID
			return u.User, token, true
		}
	}
	return domain.User{}, "", false
}

func (s *memStore) userByToken(token string) (domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.tokens[token]
	if !ok {
		return domain.User{}, false
	}
	for _, u := range s.users {
		if u.User.ID == id {
			return u.User, true
		}
	}
	return domain.User{}, false
}

func (s *memStore) userByID(id string) (domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.User.ID == id {
			return u.User, true
		}
	}
	return domain.User{}, false
}

func (s *memStore) listUsers(page, limit int, search string) ([]domain.User, int) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]domain.User, 0, len(s.users))
	needle := strings.ToLower(search)
	for _, u := range s.users {
		hay := strings.ToLower(u.FirstName + " " + u.LastName + " " + u.Email)
		if needle == "" || strings.Contains(hay, needle) {
			matched = append(matched, u.User)
		}
	}
	return paginate(matched, page, limit)
}

func (s *memStore) updateUser(id string, patch userPatch) (domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].User.ID != id {
			continue
		}
		if patch.FirstName != "" {
			s.users[i].FirstName = patch.FirstName
		}
		if patch.LastName != "" {
			s.users[i].LastName = patch.LastName
		}
		if patch.Email != "" {
			s.users[i].Email = patch.Email
		}
		if patch.Role != "" {
			s.users[i].Role = patch.Role
		}
		if patch.Password != "" {
			s.users[i].Password = patch.Password
		}
		return s.users[i].User, nil
	}
	return domain.User{}, ErrNotFound
}

func (s *memStore) deleteUser(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].User.ID == id {
			s.users = append(s.users[:i], s.users[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// addOrder stores an order, reusing the existing record when the same
// idempotency key was seen before.
func (s *memStore) addOrder(order domain.Order) (domain.OrderRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if order.IdempotencyKey != "" {
		if id, seen := s.idemKeys[order.IdempotencyKey]; seen {
			for _, rec := range s.orders {
				if rec.ID == id {
					return rec, false
				}
			}
		}
	}

	rec := domain.OrderRecord{
		ID:         uuid.NewString(),
		Items:      order.Items,
		OrderValue: order.OrderValue,
		Email:      order.Email,
		UserID:     order.UserID,
		Status:     domain.OrderStatusPending,
		CreatedAt:  time.Now().UTC(),
	}
	s.orders = append(s.orders, rec)
	if order.IdempotencyKey != "" {
		s.idemKeys[order.IdempotencyKey] = rec.ID
	}
	return rec, true
}

func (s *memStore) ordersByEmail(email string) []domain.OrderRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.OrderRecord, 0)
	for _, rec := range s.orders {
		if rec.Email == email {
			out = append(out, rec)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

func (s *memStore) listOrders(page, limit int, status domain.OrderStatus) ([]domain.OrderRecord, int) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]domain.OrderRecord, 0, len(s.orders))
	for _, rec := range s.orders {
		if status == "" || rec.Status == status {
			matched = append(matched, rec)
		}
	}
	return paginate(matched, page, limit)
}

func (s *memStore) updateOrderStatus(id string, status domain.OrderStatus) (domain.OrderRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].ID == id {
			s.orders[i].Status = status
			return s.orders[i], nil
		}
	}
	return domain.OrderRecord{}, ErrNotFound
}
