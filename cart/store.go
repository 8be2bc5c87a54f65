// Package cart holds one session's shopping cart: an ordered list of lines
// plus the drawer-open flag. Every mutation persists the lines through the
// storage port and notifies subscribers of the new count and subtotal.
package cart

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"grillz/models"
	"grillz/storage"
)

// Subscriber receives the cart item count and subtotal after each mutation
// that changes the lines.
type Subscriber func(count, subtotal int)

type Store struct {
	mu    *sync.Mutex
	lines []models.CartLine
	open  bool
	kv    storage.KV
	subs  []Subscriber
	now   func() time.Time
}

// NewStore builds a store guarded by its own lock, seeded from the
// storage port. Malformed or missing stored JSON degrades to an empty
// cart.
func NewStore(kv storage.KV) *Store {
	return NewSharedStore(kv, &sync.Mutex{})
}

// NewSharedStore builds a store guarded by mu. A session shares one mutex
// between its cart and order history so order placement can commit both
// stores in a single critical section.
func NewSharedStore(kv storage.KV, mu *sync.Mutex) *Store {
	s := &Store{mu: mu, kv: kv, now: time.Now}
	data, ok, err := kv.Load(context.Background(), storage.CartKey)
	if err != nil {
		log.Printf("cart: load failed, starting empty: %v", err)
		return s
	}
	if !ok {
		return s
	}
	if err := json.Unmarshal(data, &s.lines); err != nil {
		log.Printf("cart: stored cart unreadable, starting empty: %v", err)
		s.lines = nil
	}
	return s
}

// Subscribe registers a callback for count/subtotal changes. Not safe to
// call concurrently with mutations; wire subscribers at session setup.
// Subscribers run under the session lock and must not call back into the
// store or the checkout machine.
func (s *Store) Subscribe(fn Subscriber) {
	s.subs = append(s.subs, fn)
}

// SessionLock returns the mutex guarding this store. The checkout machine
// holds it across order placement so history and cart commit together.
func (s *Store) SessionLock() *sync.Mutex {
	return s.mu
}

// AddItem appends a new line, or increments the quantity when a line with
// the same item id exists. On merge the existing line's customizations and
// instructions win; the new call's are discarded. Quantity <= 0 is a no-op.
func (s *Store) AddItem(item models.MenuItem, quantity int, customizations []string, specialInstructions string) {
	if quantity <= 0 {
		return
	}
	s.mu.Lock()
	for i := range s.lines {
		if s.lines[i].ItemID == item.ItemID {
			s.lines[i].Quantity += quantity
			s.persistAndNotify()
			s.mu.Unlock()
			return
		}
	}
	s.lines = append(s.lines, models.CartLine{
		MenuItem:            item,
		Quantity:            quantity,
		Customizations:      append([]string(nil), customizations...),
		SpecialInstructions: specialInstructions,
		AddedAt:             s.now(),
	})
	s.persistAndNotify()
	s.mu.Unlock()
}

// RemoveItem drops the line entirely regardless of quantity. No-op when
// the id is absent.
func (s *Store) RemoveItem(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.lines {
		if s.lines[i].ItemID == id {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			s.persistAndNotify()
			return
		}
	}
}

// SetQuantity sets a line's quantity absolutely. A requested quantity <= 0
// removes the line; the store never keeps a line below quantity 1.
func (s *Store) SetQuantity(id string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.lines {
		if s.lines[i].ItemID == id {
			if quantity <= 0 {
				s.lines = append(s.lines[:i], s.lines[i+1:]...)
			} else {
				s.lines[i].Quantity = quantity
			}
			s.persistAndNotify()
			return
		}
	}
}

// AdjustQuantity changes a line's quantity by delta, clamped to a floor of
// 1. Unlike SetQuantity it never removes the line; the stepper buttons in
// the cart drawer use this variant.
func (s *Store) AdjustQuantity(id string, delta int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.lines {
		if s.lines[i].ItemID == id {
			q := s.lines[i].Quantity + delta
			if q < 1 {
				q = 1
			}
			if q == s.lines[i].Quantity {
				return
			}
			s.lines[i].Quantity = q
			s.persistAndNotify()
			return
		}
	}
}

// Clear empties the lines. The open flag is untouched.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ClearLocked()
}

// ClearLocked is Clear for callers already holding the session lock.
func (s *Store) ClearLocked() {
	if len(s.lines) == 0 {
		return
	}
	s.lines = nil
	s.persistAndNotify()
}

// ToggleOpen flips the drawer visibility.
func (s *Store) ToggleOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.open = !s.open
	return s.open
}

// SetOpen sets the drawer visibility directly.
func (s *Store) SetOpen(open bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.open = open
}

// IsOpen reports the drawer visibility.
func (s *Store) IsOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.open
}

// Lines returns a copy of the cart lines in display order.
func (s *Store) Lines() []models.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.copyLines()
}

// LinesLocked is Lines for callers already holding the session lock.
func (s *Store) LinesLocked() []models.CartLine {
	return s.copyLines()
}

// Count is the total quantity across all lines.
func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.countLocked()
}

// Subtotal is the sum of price * quantity over the lines.
func (s *Store) Subtotal() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.subtotalLocked()
}

// Snapshot copies the lines into order items. The copies share nothing
// with the live cart.
func (s *Store) Snapshot() []models.OrderItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.SnapshotLocked()
}

// SnapshotLocked is Snapshot for callers already holding the session lock.
func (s *Store) SnapshotLocked() []models.OrderItem {
	items := make([]models.OrderItem, 0, len(s.lines))
	for _, l := range s.lines {
		items = append(items, models.OrderItem{
			ItemID:              l.ItemID,
			Name:                l.Name,
			Price:               l.Price,
			Quantity:            l.Quantity,
			Customizations:      append([]string(nil), l.Customizations...),
			SpecialInstructions: l.SpecialInstructions,
		})
	}
	return items
}

func (s *Store) copyLines() []models.CartLine {
	out := make([]models.CartLine, len(s.lines))
	copy(out, s.lines)
	for i := range out {
		out[i].Customizations = append([]string(nil), s.lines[i].Customizations...)
	}
	return out
}

func (s *Store) countLocked() int {
	n := 0
	for _, l := range s.lines {
		n += l.Quantity
	}
	return n
}

func (s *Store) subtotalLocked() int {
	total := 0
	for _, l := range s.lines {
		total += l.Price * l.Quantity
	}
	return total
}

// persistAndNotify saves the lines and fans out to subscribers. A failed
// save is logged and the in-memory mutation stands; the caller must hold
// the lock.
func (s *Store) persistAndNotify() {
	data, err := json.Marshal(s.lines)
	if err != nil {
		log.Printf("cart: marshal failed: %v", err)
	} else if err := s.kv.Save(context.Background(), storage.CartKey, data); err != nil {
		log.Printf("cart: save failed, keeping in-memory state: %v", err)
	}
	count, subtotal := s.countLocked(), s.subtotalLocked()
	for _, fn := range s.subs {
		fn(count, subtotal)
	}
}
