// Package storage is the durable key-value port behind the cart and order
// history stores. Writes are whole-document replaces; there is exactly one
// writer per session, so last-writer-wins is sufficient.
package storage

import (
	"context"
	"sync"

	"grillz/rdx"

	"github.com/redis/go-redis/v9"
)

// Keys owned by the storefront stores. Each store owns a disjoint key.
const (
	CartKey   = "cart-items"
	OrdersKey = "order-history"
)

// KV loads and saves one JSON document per key. Load returns ok=false when
// the key has never been written.
type KV interface {
	Load(ctx context.Context, key string) (data []byte, ok bool, err error)
	Save(ctx context.Context, key string, data []byte) error
}

// RedisKV persists documents in Redis, namespaced per session so concurrent
// sessions never share keys.
type RedisKV struct {
	Namespace string
}

func NewRedisKV(namespace string) *RedisKV {
	return &RedisKV{Namespace: namespace}
}

func (r *RedisKV) key(key string) string {
	if r.Namespace == "" {
		return key
	}
	return r.Namespace + ":" + key
}

func (r *RedisKV) Load(ctx context.Context, key string) ([]byte, bool, error) {
	val, err := rdx.Conn.Get(ctx, r.key(key)).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return val, true, nil
}

func (r *RedisKV) Save(ctx context.Context, key string, data []byte) error {
	return rdx.Conn.Set(ctx, r.key(key), data, 0).Err()
}

// MemKV is an in-memory KV used by tests and as a fallback.
type MemKV struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemKV() *MemKV {
	return &MemKV{data: make(map[string][]byte)}
}

func (m *MemKV) Load(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	d, ok := m.data[key]
	if !ok {
		return nil, false, nil
	}
	cp := make([]byte, len(d))
	copy(cp, d)
	return cp, true, nil
}

func (m *MemKV) Save(_ context.Context, key string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := make([]byte, len(data))
	copy(cp, data)
	m.data[key] = cp
	return nil
}
