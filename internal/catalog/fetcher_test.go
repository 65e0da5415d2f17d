package catalog

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Karthiknalam/mern-store-frontend/internal/api"
	"github.com/Karthiknalam/mern-store-frontend/internal/domain"
)

type fakeLister struct {
	mu    sync.Mutex
	calls int32

	// hold, when non-nil, blocks a call until closed; entered is signalled
	// when a call starts waiting.
	hold    chan struct{}
	entered chan struct{}
}

func (f *fakeLister) ListProducts(ctx context.Context, page, limit int, search string) (api.ProductPage, error) {
	atomic.AddInt32(&f.calls, 1)

	f.mu.Lock()
	hold := f.hold
	entered := f.entered
	f.mu.Unlock()

	if hold != nil {
		if entered != nil {
			entered <- struct{}{}
		}
		select {
		case <-hold:
		case <-ctx.Done():
			return api.ProductPage{}, ctx.Err()
		}
	}

	return api.ProductPage{
		Products: []domain.Product{{ID: search, ProductName: "result", Price: float64(page)}},
		Total:    page,
	}, nil
}

func (f *fakeLister) setHold(hold, entered chan struct{}) {
	f.mu.Lock()
	f.hold = hold
	f.entered = entered
	f.mu.Unlock()
}

func TestFetch_ReturnsPage(t *testing.T) {
	lister := &fakeLister{}
	f := NewFetcher(lister)

	page, err := f.Fetch(context.Background(), 2, 5, "widget")

	require.NoError(t, err)
	assert.Equal(t, 2, page.Total)
	require.Len(t, page.Products, 1)
	assert.Equal(t, "widget", page.Products[0].ID)
}

func TestFetch_NewerRequestSupersedesOlder(t *testing.T) {
	lister := &fakeLister{}
	f := NewFetcher(lister)

	hold := make(chan struct{})
	entered := make(chan struct{}, 1)
	lister.setHold(hold, entered)

	type result struct {
		page api.ProductPage
		err  error
	}
	first := make(chan result, 1)
	go func() {
		p, err := f.Fetch(context.Background(), 1, 5, "old")
		first <- result{p, err}
	}()

	<-entered // first fetch is in flight

	// Second fetch for different params; its backend call completes
	// immediately.
	lister.setHold(nil, nil)
	page, err := f.Fetch(context.Background(), 2, 5, "new")
	require.NoError(t, err)
	assert.Equal(t, 2, page.Total)

	// The first fetch's context was cancelled; regardless of when its
	// response lands, the caller gets ErrSuperseded, not stale data.
	close(hold)
	got := <-first
	assert.ErrorIs(t, got.err, ErrSuperseded)
}

func TestFetch_IdenticalConcurrentFetchesShareOneCall(t *testing.T) {
	lister := &fakeLister{}
	f := NewFetcher(lister)

	hold := make(chan struct{})
	entered := make(chan struct{}, 1)
	lister.setHold(hold, entered)

	var wg sync.WaitGroup
	results := make(chan error, 2)
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, err := f.Fetch(context.Background(), 1, 5, "same")
		results <- err
	}()

	<-entered // leader is in flight

	wg.Add(1)
	go func() {
		defer wg.Done()
		_, err := f.Fetch(context.Background(), 1, 5, "same")
		results <- err
	}()

	// Give the second fetch time to join the in-flight call.
	time.Sleep(50 * time.Millisecond)
	close(hold)
	wg.Wait()

	assert.NoError(t, <-results)
	assert.NoError(t, <-results)
	assert.Equal(t, int32(1), atomic.LoadInt32(&lister.calls), "identical fetches share one backend call")
}

func TestFetch_SequentialFetchesAllApply(t *testing.T) {
	lister := &fakeLister{}
	f := NewFetcher(lister)

	for page := 1; page <= 3; page++ {
		got, err := f.Fetch(context.Background(), page, 5, "")
		require.NoError(t, err)
		assert.Equal(t, page, got.Total)
	}
	assert.Equal(t, int32(3), atomic.LoadInt32(&lister.calls))
}
