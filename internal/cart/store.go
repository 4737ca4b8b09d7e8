package cart

import (
	"sync"

	"github.com/shopspring/decimal"

	"github.com/chocozoo/storefront/internal/catalog"
)

// Item is a product snapshot taken when it was first added, plus a quantity
// that is always at least 1.
type Item struct {
	ProductID catalog.ProductID `json:"id"`
	Name      string            `json:"name"`
	ImageURL  string            `json:"imageUrl,omitempty"`
	Price     decimal.Decimal   `json:"price"`
	IsOnSale  bool              `json:"isOnSale"`
	SalePrice *decimal.Decimal  `json:"salePrice,omitempty"`
	Quantity  int               `json:"quantity"`
}

func newItem(p catalog.Product) Item {
	item := Item{
		ProductID: p.ID,
		Name:      p.Name,
		ImageURL:  p.ImageURL,
		Price:     p.Price,
		IsOnSale:  p.IsOnSale,
		Quantity:  1,
	}
	if p.SalePrice != nil {
		sale := *p.SalePrice
		item.SalePrice = &sale
	}
	return item
}

// Op identifies the mutation that produced an Event.
type Op string

const (
	OpAdd    Op = "add"
	OpRemove Op = "remove"
	OpUpdate Op = "update"
	OpClear  Op = "clear"
)

// Event is delivered to subscribers after a mutation. Seq increases with
// every mutation of the store; concurrent mutations may deliver their events
// out of order, so listeners that keep derived state drop events whose Seq is
// not newer than the last one they applied.
type Event struct {
	Seq       uint64
	Op        Op
	ProductID catalog.ProductID
	Quantity  int
	Snapshot  Snapshot
}

// Listener receives cart events synchronously.
type Listener func(Event)

// Snapshot is a point-in-time copy of the cart with its derived figures.
type Snapshot struct {
	Items     []Item          `json:"items"`
	Total     decimal.Decimal `json:"total"`
	Savings   decimal.Decimal `json:"savings"`
	ItemCount int             `json:"itemCount"`
}

type subscription struct {
	id int
	fn Listener
}

// Store owns the cart of one session. Mutations notify subscribers after the
// change is applied, outside the lock, in subscription order. Calls that
// change nothing (removing or updating an absent item) do not notify.
type Store struct {
	mu     sync.Mutex
	items  []Item
	subs   []subscription
	nextID int
	seq    uint64
}

func NewStore() *Store {
	return &Store{}
}

// Subscribe registers fn and returns a function that removes it.
func (s *Store) Subscribe(fn Listener) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	id := s.nextID
	s.subs = append(s.subs, subscription{id: id, fn: fn})

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

// AddToCart increments the product's quantity, inserting it with quantity 1
// the first time.
func (s *Store) AddToCart(p catalog.Product) {
	s.mu.Lock()
	qty := 1
	if i := s.indexOf(p.ID); i >= 0 {
		s.items[i].Quantity++
		qty = s.items[i].Quantity
	} else {
		s.items = append(s.items, newItem(p))
	}
	ev := s.eventLocked(OpAdd, p.ID, qty)
	s.mu.Unlock()

	s.notify(ev)
}

// RemoveFromCart deletes the item; an absent id is a no-op.
func (s *Store) RemoveFromCart(id catalog.ProductID) {
	s.mu.Lock()
	i := s.indexOf(id)
	if i < 0 {
		s.mu.Unlock()
		return
	}
	s.removeAt(i)
	ev := s.eventLocked(OpRemove, id, 0)
	s.mu.Unlock()

	s.notify(ev)
}

// UpdateQuantity sets the item's quantity. A quantity of zero or less removes
// the item, so no entry ever holds a non-positive quantity. An absent id is a
// no-op.
func (s *Store) UpdateQuantity(id catalog.ProductID, quantity int) {
	s.mu.Lock()
	i := s.indexOf(id)
	if i < 0 {
		s.mu.Unlock()
		return
	}

	var ev Event
	if quantity <= 0 {
		s.removeAt(i)
		ev = s.eventLocked(OpRemove, id, 0)
	} else {
		if s.items[i].Quantity == quantity {
			s.mu.Unlock()
			return
		}
		s.items[i].Quantity = quantity
		ev = s.eventLocked(OpUpdate, id, quantity)
	}
	s.mu.Unlock()

	s.notify(ev)
}

// ClearCart empties the cart and always notifies.
func (s *Store) ClearCart() {
	s.mu.Lock()
	s.items = nil
	ev := s.eventLocked(OpClear, 0, 0)
	s.mu.Unlock()

	s.notify(ev)
}

// ClearIfMatches empties the cart only when it still holds exactly items
// (same products, same quantities). The check and the clear happen under one
// lock. It reports whether the cart was cleared.
func (s *Store) ClearIfMatches(items []Item) bool {
	s.mu.Lock()
	if len(items) == 0 || !s.sameLinesLocked(items) {
		s.mu.Unlock()
		return false
	}
	s.items = nil
	ev := s.eventLocked(OpClear, 0, 0)
	s.mu.Unlock()

	s.notify(ev)
	return true
}

// Items returns a copy of the cart lines in insertion order.
func (s *Store) Items() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.copyItems()
}

// Item returns the line for id, if present.
func (s *Store) Item(id catalog.ProductID) (Item, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.indexOf(id); i >= 0 {
		return copyItem(s.items[i]), true
	}
	return Item{}, false
}

func (s *Store) CartTotal() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Total(s.items)
}

// TotalItemCount sums quantities; it feeds the cart badge and differs from
// the number of lines.
func (s *Store) TotalItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ItemCount(s.items)
}

func (s *Store) IsEmpty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items) == 0
}

func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Store) snapshotLocked() Snapshot {
	return Snapshot{
		Items:     s.copyItems(),
		Total:     Total(s.items),
		Savings:   Savings(s.items),
		ItemCount: ItemCount(s.items),
	}
}

func (s *Store) eventLocked(op Op, id catalog.ProductID, qty int) Event {
	s.seq++
	return Event{Seq: s.seq, Op: op, ProductID: id, Quantity: qty, Snapshot: s.snapshotLocked()}
}

func (s *Store) notify(ev Event) {
	s.mu.Lock()
	subs := make([]subscription, len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	for _, sub := range subs {
		sub.fn(ev)
	}
}

func (s *Store) indexOf(id catalog.ProductID) int {
	for i := range s.items {
		if s.items[i].ProductID == id {
			return i
		}
	}
	return -1
}

func (s *Store) removeAt(i int) {
	s.items = append(s.items[:i:i], s.items[i+1:]...)
}

func (s *Store) copyItems() []Item {
	out := make([]Item, len(s.items))
	for i, item := range s.items {
		out[i] = copyItem(item)
	}
	return out
}

func copyItem(item Item) Item {
	if item.SalePrice != nil {
		sale := *item.SalePrice
		item.SalePrice = &sale
	}
	return item
}

// sameLinesLocked reports whether items holds exactly the products and quantities
// of the store, ignoring line order.
func (s *Store) sameLinesLocked(items []Item) bool {
	if len(items) != len(s.items) {
		return false
	}
	for _, want := range items {
		i := s.indexOf(want.ProductID)
		if i < 0 || s.items[i].Quantity != want.Quantity {
			return false
		}
	}
	return true
}
