// Package orders keeps the per-session order history: an append-only,
// newest-first list of completed orders persisted through the storage port.
package orders

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"sync"

	"grillz/catalog"
	"grillz/models"
	"grillz/storage"
)

var ErrNotFound = errors.New("order not found")

type Store struct {
	mu     *sync.Mutex
	orders []models.Order
	kv     storage.KV
}

// NewStore builds a store guarded by its own lock, loading the persisted
// history once. Malformed stored JSON degrades to an empty list.
func NewStore(kv storage.KV) *Store {
	return NewSharedStore(kv, &sync.Mutex{})
}

// NewSharedStore builds a store guarded by mu. A session shares one mutex
// between its order history and cart so order placement can commit both
// stores in a single critical section.
func NewSharedStore(kv storage.KV, mu *sync.Mutex) *Store {
	s := &Store{mu: mu, kv: kv}
	data, ok, err := kv.Load(context.Background(), storage.OrdersKey)
	if err != nil {
		log.Printf("orders: load failed, starting empty: %v", err)
		return s
	}
	if !ok {
		return s
	}
	if err := json.Unmarshal(data, &s.orders); err != nil {
		log.Printf("orders: stored history unreadable, starting empty: %v", err)
		s.orders = nil
	}
	return s
}

// Add prepends a completed order so the list stays newest-first.
func (s *Store) Add(order models.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.AddLocked(order)
}

// AddLocked is Add for callers already holding the session lock.
func (s *Store) AddLocked(order models.Order) {
	s.orders = append([]models.Order{order}, s.orders...)
	s.persist()
}

// List returns a copy of all orders, newest first.
func (s *Store) List() []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Order, len(s.orders))
	copy(out, s.orders)
	return out
}

// Get returns one order by id.
func (s *Store) Get(id string) (models.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range s.orders {
		if o.OrderID == id {
			return o, true
		}
	}
	return models.Order{}, false
}

// Len reports the number of stored orders.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.orders)
}

// ToggleFavorite flips the favorite flag. Absent ids are a no-op.
func (s *Store) ToggleFavorite(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		if s.orders[i].OrderID == id {
			s.orders[i].IsFavorite = !s.orders[i].IsFavorite
			s.persist()
			return
		}
	}
}

// SetRating records a 1-5 rating on a past order.
func (s *Store) SetRating(id string, rating int) error {
	if rating < 1 || rating > 5 {
		return errors.New("rating must be between 1 and 5")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		if s.orders[i].OrderID == id {
			s.orders[i].Rating = rating
			s.persist()
			return nil
		}
	}
	return ErrNotFound
}

// Remove deletes an order. The storefront UI never calls this; it exists
// for support tooling.
func (s *Store) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		if s.orders[i].OrderID == id {
			s.orders = append(s.orders[:i], s.orders[i+1:]...)
			s.persist()
			return
		}
	}
}

// Replayer is the slice of the cart store that Reorder needs.
type Replayer interface {
	AddItem(item models.MenuItem, quantity int, customizations []string, specialInstructions string)
}

// Reorder replays a past order's item snapshots into the cart, preserving
// quantities and customizations. Items still on the menu are replayed at
// their current catalog entry; items since removed fall back to the
// snapshot fields. The stored order is not mutated.
func (s *Store) Reorder(id string, dst Replayer) error {
	order, ok := s.Get(id)
	if !ok {
		return ErrNotFound
	}
	for _, it := range order.Items {
		item, found := catalog.Get(it.ItemID)
		if !found {
			item = models.MenuItem{
				ItemID: it.ItemID,
				Name:   it.Name,
				Price:  it.Price,
			}
		}
		dst.AddItem(item, it.Quantity, append([]string(nil), it.Customizations...), it.SpecialInstructions)
	}
	return nil
}

// persist saves the whole list; the caller must hold the lock. Failures
// are logged and the in-memory state stands.
func (s *Store) persist() {
	data, err := json.Marshal(s.orders)
	if err != nil {
		log.Printf("orders: marshal failed: %v", err)
		return
	}
	if err := s.kv.Save(context.Background(), storage.OrdersKey, data); err != nil {
		log.Printf("orders: save failed, keeping in-memory state: %v", err)
	}
}
