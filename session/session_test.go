package session

import (
	"context"
	"sync"
	"testing"
	"time"

	"grillz/pricing"
	"grillz/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRegistry() *Registry {
	reg := NewRegistry(pricing.Config{
		TaxRate:               0.075,
		DeliveryFee:           500,
		FreeDeliveryThreshold: 3000,
	}, time.Millisecond, nil)
	reg.newKV = func(string) storage.KV { return storage.NewMemKV() }
	return reg
}

func TestGetReturnsSameSessionForSameID(t *testing.T) {
	reg := testRegistry()
	a := reg.Get("s1")
	b := reg.Get("s1")
	assert.Same(t, a, b)
	assert.NotSame(t, a, reg.Get("s2"))
}

func TestConcurrentGetsShareOneSession(t *testing.T) {
	reg := testRegistry()
	var wg sync.WaitGroup
	got := make([]*Session, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got[i] = reg.Get("s1")
		}(i)
	}
	wg.Wait()
	for i := 1; i < len(got); i++ {
		assert.Same(t, got[0], got[i])
	}
}

// gatedKV signals when a load starts and blocks it until the gate opens.
type gatedKV struct {
	*storage.MemKV
	gate    chan struct{}
	loading chan struct{}
	once    sync.Once
}

func (k *gatedKV) Load(ctx context.Context, key string) ([]byte, bool, error) {
	k.once.Do(func() { close(k.loading) })
	<-k.gate
	return k.MemKV.Load(ctx, key)
}

func TestSlowSeedDoesNotBlockOtherSessions(t *testing.T) {
	reg := testRegistry()
	gate := make(chan struct{})
	loading := make(chan struct{})
	slow := &gatedKV{MemKV: storage.NewMemKV(), gate: gate, loading: loading}
	reg.newKV = func(ns string) storage.KV {
		if ns == "sess:slow" {
			return slow
		}
		return storage.NewMemKV()
	}

	go reg.Get("slow")
	<-loading // the slow session is now stuck in its storage load

	done := make(chan struct{})
	go func() {
		reg.Get("fast")
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("another session's request stalled behind a slow storage load")
	}

	close(gate)
	require.NotNil(t, reg.Get("slow"))
}
