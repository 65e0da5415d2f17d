// Package checkout turns the current cart and session into an order
// submission. One attempt runs Idle -> Submitting -> {success, failure} and
// always lands back in Idle: success empties the cart, failure leaves it
// untouched so the user can resubmit by hand. Nothing here retries.
package checkout

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/Karthiknalam/mern-store-frontend/internal/cart"
	"github.com/Karthiknalam/mern-store-frontend/internal/domain"
)

var (
	// ErrEmptyCart: nothing to order. Checked before any network call.
	ErrEmptyCart = errors.New("cart is empty")

	// ErrNotAuthenticated: no session token. Checked before any network call.
	ErrNotAuthenticated = errors.New("not logged in")

	// ErrSubmitInFlight rejects a re-entrant submit while one is running.
	ErrSubmitInFlight = errors.New("an order submission is already in progress")
)

// OrderPoster is the slice of the API client the submitter needs.
type OrderPoster interface {
	CreateOrder(ctx context.Context, order domain.Order) (domain.OrderRecord, error)
}

// SessionSource yields the identity the order is placed under.
type SessionSource interface {
	Get() domain.Session
}

type Submitter struct {
	poster   OrderPoster
	cart     *cart.Cart
	sessions SessionSource

	submitting atomic.Bool
}

func NewSubmitter(poster OrderPoster, c *cart.Cart, sessions SessionSource) *Submitter {
	return &Submitter{
		poster:   poster,
		cart:     c,
		sessions: sessions,
	}
}

// InFlight reports whether a submission is currently running, so the UI can
// disable its control.
func (s *Submitter) InFlight() bool {
	return s.submitting.Load()
}

// Submit places one order from the current cart and session. Each attempt
// carries a fresh idempotency key, so a duplicate submission of the same
// snapshot cannot create two orders even if the user manages to retry it.
//
// Completion is the return itself: the caller decides what to do next
// (confirmation, navigation) instead of the submitter scheduling it.
func (s *Submitter) Submit(ctx context.Context) (domain.OrderRecord, error) {
	if !s.submitting.CompareAndSwap(false, true) {
		return domain.OrderRecord{}, ErrSubmitInFlight
	}
	defer s.submitting.Store(false)

	sess := s.sessions.Get()
	if !sess.IsAuthenticated() {
		return domain.OrderRecord{}, ErrNotAuthenticated
	}

	lines := s.cart.Lines()
	if len(lines) == 0 {
		return domain.OrderRecord{}, ErrEmptyCart
	}

	// Order value is computed from the captured lines, not read back from
	// the live cart, so the snapshot stays internally consistent.
	var orderValue float64
	for _, l := range lines {
		orderValue += l.LineTotal()
	}

	order := domain.Order{
		Items:          lines,
		OrderValue:     orderValue,
		Email:          sess.Email,
		UserID:         sess.ID,
		IdempotencyKey: uuid.NewString(),
	}

	rec, err := s.poster.CreateOrder(ctx, order)
	if err != nil {
		return domain.OrderRecord{}, err
	}

	s.cart.Clear()
	return rec, nil
}
