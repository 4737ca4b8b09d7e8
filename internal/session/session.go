package session

import (
	"sync"
	"time"

	"github.com/chocozoo/storefront/internal/cart"
	"github.com/chocozoo/storefront/internal/catalog"
	"github.com/chocozoo/storefront/internal/checkout"
	"github.com/chocozoo/storefront/internal/filters"
)

// Session is one shopper's state: a cart plus the shop page filters.
type Session struct {
	ID   string
	Cart *cart.Store

	mu          sync.Mutex
	selection   filters.Selection
	searchTerm  string
	badge       int
	badgeSeq    uint64
	pending     *checkout.Order
	lastSeen    time.Time
	unsubscribe func()
}

func newSession(id string, now time.Time, recorder Recorder) *Session {
	s := &Session{
		ID:        id,
		Cart:      cart.NewStore(),
		selection: filters.Empty(),
		lastSeen:  now,
	}
	s.unsubscribe = s.Cart.Subscribe(func(ev cart.Event) {
		s.applyCartEvent(ev)
		if recorder != nil {
			recorder.IncCartMutation(string(ev.Op))
		}
	})
	return s
}

// applyCartEvent moves the badge forward. Events from concurrent mutations
// can arrive out of order; an older one never overwrites a newer count.
func (s *Session) applyCartEvent(ev cart.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if ev.Seq <= s.badgeSeq {
		return
	}
	s.badgeSeq = ev.Seq
	s.badge = ev.Snapshot.ItemCount
}

// Badge is the cart item count as last reported by the cart.
func (s *Session) Badge() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.badge
}

func (s *Session) Selection() filters.Selection {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selection
}

func (s *Session) SearchTerm() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.searchTerm
}

// SetSearchTerm replaces the search term; filters are untouched.
func (s *Session) SetSearchTerm(term string) {
	s.mu.Lock()
	s.searchTerm = term
	s.mu.Unlock()
}

// ToggleFilter flips value within category and returns the new selection.
func (s *Session) ToggleFilter(category catalog.Category, value string) filters.Selection {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selection = filters.Toggle(s.selection, category, value)
	return s.selection
}

// ClearFilters drops every category filter; the search term stays.
func (s *Session) ClearFilters() {
	s.mu.Lock()
	s.selection = filters.ClearAll()
	s.mu.Unlock()
}

// SetPendingOrder keeps the order built on the review step until it is
// confirmed.
func (s *Session) SetPendingOrder(order checkout.Order) {
	s.mu.Lock()
	s.pending = &order
	s.mu.Unlock()
}

// TakePendingOrder hands back the reviewed order and forgets it. Without a
// reviewed order it returns the zero Order, which never confirms.
func (s *Session) TakePendingOrder() checkout.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pending == nil {
		return checkout.Order{}
	}
	order := *s.pending
	s.pending = nil
	return order
}

func (s *Session) LastSeen() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

func (s *Session) idleSince(now time.Time) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.Sub(s.lastSeen)
}

func (s *Session) close() {
	if s.unsubscribe != nil {
		s.unsubscribe()
	}
}
