package session

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chocozoo/storefront/internal/cart"
	"github.com/chocozoo/storefront/internal/catalog"
	"github.com/chocozoo/storefront/internal/checkout"
	"github.com/chocozoo/storefront/internal/filters"
	"github.com/chocozoo/storefront/pkg/enums"
)

type stubRecorder struct {
	mu        sync.Mutex
	mutations []string
	active    int
}

func (s *stubRecorder) IncCartMutation(op string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mutations = append(s.mutations, op)
}

func (s *stubRecorder) SetActiveSessions(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = n
}

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

var bear = catalog.Product{ID: 1, Name: "Panda Bar", Price: decimal.RequireFromString("10")}

func TestResolveCreatesAndReuses(t *testing.T) {
	t.Parallel()

	rec := &stubRecorder{}
	reg := NewRegistry(Params{Recorder: rec})

	first, created := reg.Resolve("")
	require.True(t, created)
	_, err := uuid.Parse(first.ID)
	require.NoError(t, err, "blank ids get a generated uuid")

	again, created := reg.Resolve(first.ID)
	assert.False(t, created)
	assert.Same(t, first, again)

	bogus, created := reg.Resolve("not-a-uuid")
	assert.True(t, created)
	assert.NotEqual(t, "not-a-uuid", bogus.ID)

	known := uuid.NewString()
	restored, created := reg.Resolve(known)
	assert.True(t, created)
	assert.Equal(t, known, restored.ID, "well-formed unknown ids are kept")

	assert.Equal(t, 3, reg.Len())
	assert.Equal(t, 3, rec.active)
}

func TestSessionsAreIsolated(t *testing.T) {
	t.Parallel()

	reg := NewRegistry(Params{})
	a, _ := reg.Resolve("")
	b, _ := reg.Resolve("")

	a.Cart.AddToCart(bear)
	a.ToggleFilter(catalog.CategoryAnimalType, "Bear")
	a.SetSearchTerm("panda")

	assert.True(t, b.Cart.IsEmpty())
	assert.True(t, b.Selection().IsEmpty())
	assert.Empty(t, b.SearchTerm())
}

func TestBadgeFollowsCart(t *testing.T) {
	t.Parallel()

	rec := &stubRecorder{}
	reg := NewRegistry(Params{Recorder: rec})
	s, _ := reg.Resolve("")

	s.Cart.AddToCart(bear)
	s.Cart.AddToCart(bear)
	assert.Equal(t, 2, s.Badge())

	s.Cart.UpdateQuantity(bear.ID, 5)
	assert.Equal(t, 5, s.Badge())

	s.Cart.ClearCart()
	assert.Equal(t, 0, s.Badge())
	assert.Equal(t, []string{"add", "add", "update", "clear"}, rec.mutations)
}

func TestBadgeIgnoresStaleCartEvents(t *testing.T) {
	t.Parallel()

	s, _ := NewRegistry(Params{}).Resolve("")

	// Two concurrent adds whose notifications arrive newest first.
	s.applyCartEvent(cart.Event{Seq: 2, Op: cart.OpAdd, Snapshot: cart.Snapshot{ItemCount: 2}})
	s.applyCartEvent(cart.Event{Seq: 1, Op: cart.OpAdd, Snapshot: cart.Snapshot{ItemCount: 1}})
	assert.Equal(t, 2, s.Badge())

	s.applyCartEvent(cart.Event{Seq: 3, Op: cart.OpClear})
	assert.Equal(t, 0, s.Badge())
}

func TestBadgeMatchesCartUnderConcurrentMutations(t *testing.T) {
	t.Parallel()

	s, _ := NewRegistry(Params{Recorder: &stubRecorder{}}).Resolve("")
	other := catalog.Product{ID: 2, Name: "Penguin Pop", Price: decimal.RequireFromString("8")}

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			s.Cart.AddToCart(bear)
		}()
		go func(q int) {
			defer wg.Done()
			s.Cart.AddToCart(other)
			s.Cart.UpdateQuantity(other.ID, q%3+1)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, s.Cart.TotalItemCount(), s.Badge())
}

func TestFilterStateOnSession(t *testing.T) {
	t.Parallel()

	reg := NewRegistry(Params{})
	s, _ := reg.Resolve("")

	s.SetSearchTerm("bar")
	sel := s.ToggleFilter(catalog.CategorySize, "Small")
	assert.True(t, sel.IsSelected(catalog.CategorySize, "Small"))

	sel = s.ToggleFilter(catalog.CategorySize, "Small")
	assert.False(t, sel.Has(catalog.CategorySize))

	s.ToggleFilter(catalog.CategoryOnSale, filters.OnSaleOption)
	s.ClearFilters()
	assert.True(t, s.Selection().IsEmpty())
	assert.Equal(t, "bar", s.SearchTerm(), "clearing filters keeps the search term")
}

func TestSweepDropsIdleSessions(t *testing.T) {
	t.Parallel()

	clock := &fakeClock{now: time.Date(2024, 2, 14, 9, 0, 0, 0, time.UTC)}
	rec := &stubRecorder{}
	reg := NewRegistry(Params{Recorder: rec, IdleTTL: time.Hour, Now: clock.Now})

	stale, _ := reg.Resolve("")
	clock.Advance(30 * time.Minute)
	fresh, _ := reg.Resolve("")

	clock.Advance(45 * time.Minute)
	removed := reg.Sweep(context.Background())
	assert.Equal(t, 1, removed)
	assert.Equal(t, 1, reg.Len())
	assert.Equal(t, 1, rec.active)

	_, ok := reg.Get(stale.ID)
	assert.False(t, ok)
	got, ok := reg.Get(fresh.ID)
	require.True(t, ok)
	assert.Same(t, fresh, got)

	// A swept cart no longer reports mutations.
	before := len(rec.mutations)
	stale.Cart.AddToCart(bear)
	assert.Len(t, rec.mutations, before)
}

func TestResolveTouchesSession(t *testing.T) {
	t.Parallel()

	clock := &fakeClock{now: time.Date(2024, 2, 14, 9, 0, 0, 0, time.UTC)}
	reg := NewRegistry(Params{IdleTTL: time.Hour, Now: clock.Now})

	s, _ := reg.Resolve("")
	for i := 0; i < 3; i++ {
		clock.Advance(40 * time.Minute)
		reg.Resolve(s.ID)
	}
	assert.Equal(t, 0, reg.Sweep(context.Background()))
	assert.Equal(t, clock.Now(), s.LastSeen())
}

func TestRunStopsOnCancel(t *testing.T) {
	t.Parallel()

	reg := NewRegistry(Params{})
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- reg.Run(ctx, time.Millisecond) }()

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatalf("sweeper did not stop")
	}
}

func TestPendingOrderIsTakenOnce(t *testing.T) {
	t.Parallel()

	reg := NewRegistry(Params{})
	s, _ := reg.Resolve("")

	assert.Empty(t, s.TakePendingOrder().Items, "no review yet")

	s.Cart.AddToCart(bear)
	s.SetPendingOrder(checkout.BuildOrder(s.Cart, nil, enums.PaymentMethodInterac, nil))

	order := s.TakePendingOrder()
	require.Len(t, order.Items, 1)
	assert.Equal(t, enums.PaymentMethodInterac, order.PaymentMethod)
	assert.Empty(t, s.TakePendingOrder().Items)
}
