// Package catalog wraps product-list fetches with the guards the browsing
// screen needs: fetching different parameters cancels the fetch still in
// flight, a response belonging to a superseded fetch is discarded by
// sequence number rather than by arrival order, and identical concurrent
// fetches collapse into one backend call.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/Karthiknalam/mern-store-frontend/internal/api"
)

// ErrSuperseded is returned when a fetch for different parameters was
// issued while this one was in flight. Callers drop the result without
// rendering it.
var ErrSuperseded = errors.New("fetch superseded by a newer request")

// Lister is the slice of the API client the fetcher needs.
type Lister interface {
	ListProducts(ctx context.Context, page, limit int, search string) (api.ProductPage, error)
}

type Fetcher struct {
	lister Lister

	mu     sync.Mutex
	seq    uint64 // bumped per Fetch call
	key    string // parameters of the latest Fetch
	ctx    context.Context
	cancel context.CancelFunc

	sfg singleflight.Group
}

func NewFetcher(lister Lister) *Fetcher {
	return &Fetcher{lister: lister}
}

// Fetch loads one page of products. Concurrent fetches for the same
// parameters share a single backend call. A fetch for different parameters
// cancels whatever is in flight, and the loser reports ErrSuperseded no
// matter which response arrived first.
//
// Shared flights run on their own context so that one caller backing out
// cannot fail the others; supersession is the only cancellation path.
func (f *Fetcher) Fetch(_ context.Context, page, limit int, search string) (api.ProductPage, error) {
	key := fmt.Sprintf("%d|%d|%s", page, limit, search)

	f.mu.Lock()
	f.seq++
	seq := f.seq
	if f.key != key && f.cancel != nil {
		f.cancel()
		f.ctx, f.cancel = nil, nil
	}
	f.key = key
	if f.ctx == nil {
		f.ctx, f.cancel = context.WithCancel(context.Background())
	}
	fctx := f.ctx
	f.mu.Unlock()

	v, err, _ := f.sfg.Do(key, func() (interface{}, error) {
		return f.lister.ListProducts(fctx, page, limit, search)
	})

	f.mu.Lock()
	stale := seq != f.seq && key != f.key
	if seq == f.seq && f.cancel != nil {
		// Latest call is done with the flight context.
		f.cancel()
		f.ctx, f.cancel = nil, nil
	}
	f.mu.Unlock()

	if stale {
		return api.ProductPage{}, ErrSuperseded
	}
	if err != nil {
		return api.ProductPage{}, err
	}
	return v.(api.ProductPage), nil
}
