// Package session keeps the per-visitor storefront state: each guest
// session owns a cart, an order history, and a checkout machine, all
// persisted under a session-scoped key prefix.
package session

import (
	"net/http"
	"sync"
	"time"

	"grillz/analytics"
	"grillz/cart"
	"grillz/checkout"
	"grillz/globals"
	"grillz/middleware"
	"grillz/models"
	"grillz/notify"
	"grillz/orders"
	"grillz/pricing"
	"grillz/storage"
	"grillz/utils"
)

// Session is one guest's storefront state.
type Session struct {
	ID       string
	Cart     *cart.Store
	Orders   *orders.Store
	Checkout *checkout.Machine

	lastSeen time.Time
}

// Registry hands out sessions by id, creating them on first use.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*Session

	cfg       pricing.Config
	prepDelay time.Duration
	hub       *notify.Hub
	newKV     func(namespace string) storage.KV
}

func NewRegistry(cfg pricing.Config, prepDelay time.Duration, hub *notify.Hub) *Registry {
	reg := &Registry{
		sessions:  make(map[string]*Session),
		cfg:       cfg,
		prepDelay: prepDelay,
		hub:       hub,
		newKV: func(namespace string) storage.KV {
			return storage.NewRedisKV(namespace)
		},
	}
	go reg.sweep()
	return reg
}

// Get returns the session for id, building its stores on first use. The
// stores are built outside the registry lock; seeding one session from
// storage never stalls another session's request.
func (reg *Registry) Get(id string) *Session {
	reg.mu.Lock()
	if s, ok := reg.sessions[id]; ok {
		s.lastSeen = time.Now()
		reg.mu.Unlock()
		return s
	}
	reg.mu.Unlock()

	s := reg.build(id)

	reg.mu.Lock()
	defer reg.mu.Unlock()
	if existing, ok := reg.sessions[id]; ok {
		// lost the build race; the first one in wins
		existing.lastSeen = time.Now()
		return existing
	}
	s.lastSeen = time.Now()
	reg.sessions[id] = s
	return s
}

func (reg *Registry) build(id string) *Session {
	kv := reg.newKV("sess:" + id)
	lock := &sync.Mutex{}
	c := cart.NewSharedStore(kv, lock)
	o := orders.NewSharedStore(kv, lock)
	m := checkout.NewMachine(c, o, reg.cfg, reg.prepDelay)

	sid := id
	c.Subscribe(func(count, subtotal int) {
		if reg.hub != nil {
			reg.hub.CartChanged(sid, count, subtotal)
		}
	})
	m.OnPlaced(func(order models.Order) {
		if reg.hub != nil {
			reg.hub.OrderPlaced(sid, order.OrderID)
			reg.hub.Toast(sid, "success", "Order placed!",
				"Your order "+order.OrderID+" is being prepared. Total "+utils.FormatNaira(order.Total),
				5*time.Second)
		}
		analytics.Emit(globals.Ctx, "order_placed", sid, map[string]string{
			"orderId": order.OrderID,
			"total":   utils.FormatNaira(order.Total),
		})
	})

	return &Session{ID: id, Cart: c, Orders: o, Checkout: m}
}

// FromRequest resolves the session the middleware identified. Requests
// that skipped the session middleware share a fallback guest session.
func (reg *Registry) FromRequest(r *http.Request) *Session {
	sid := middleware.SessionID(r)
	if sid == "" {
		sid = "guest"
	}
	return reg.Get(sid)
}

// Idle sessions are dropped from memory; their state stays in redis and
// is reloaded on the next request.
func (reg *Registry) sweep() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()
	for range ticker.C {
		cutoff := time.Now().Add(-1 * time.Hour)
		reg.mu.Lock()
		for id, s := range reg.sessions {
			if s.lastSeen.Before(cutoff) {
				s.Checkout.Close()
				delete(reg.sessions, id)
			}
		}
		reg.mu.Unlock()
	}
}
