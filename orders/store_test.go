package orders

import (
	"context"
	"testing"
	"time"

	"grillz/cart"
	"grillz/models"
	"grillz/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func order(id string, ts int64) models.Order {
	return models.Order{
		OrderID:   id,
		Timestamp: ts,
		Date:      time.UnixMilli(ts).Format("2006-01-02"),
		Status:    models.OrderStatusCompleted,
		Items: []models.OrderItem{
			{ItemID: "a", Name: "Classic Chicken Shawarma", Price: 1800, Quantity: 2, Customizations: []string{"extra sauce"}},
			{ItemID: "b", Name: "French Fries (Large)", Price: 800, Quantity: 1},
		},
		Total: 4400,
	}
}

func TestListNewestFirst(t *testing.T) {
	s := NewStore(storage.NewMemKV())

	s.Add(order("ORD1", 100))
	s.Add(order("ORD2", 200))
	s.Add(order("ORD3", 300))

	got := s.List()
	require.Len(t, got, 3)
	assert.Equal(t, "ORD3", got[0].OrderID)
	assert.Equal(t, "ORD1", got[2].OrderID)
}

func TestToggleFavorite(t *testing.T) {
	s := NewStore(storage.NewMemKV())
	s.Add(order("ORD1", 100))

	s.ToggleFavorite("ORD1")
	o, _ := s.Get("ORD1")
	assert.True(t, o.IsFavorite)

	s.ToggleFavorite("ORD1")
	o, _ = s.Get("ORD1")
	assert.False(t, o.IsFavorite)

	s.ToggleFavorite("missing") // no-op, no panic
}

func TestSetRating(t *testing.T) {
	s := NewStore(storage.NewMemKV())
	s.Add(order("ORD1", 100))

	require.NoError(t, s.SetRating("ORD1", 5))
	o, _ := s.Get("ORD1")
	assert.Equal(t, 5, o.Rating)

	assert.Error(t, s.SetRating("ORD1", 0))
	assert.Error(t, s.SetRating("ORD1", 6))
	assert.ErrorIs(t, s.SetRating("missing", 3), ErrNotFound)
}

func TestReorderRoundTrip(t *testing.T) {
	s := NewStore(storage.NewMemKV())
	s.Add(order("ORD1", 100))
	c := cart.NewStore(storage.NewMemKV())

	require.NoError(t, s.Reorder("ORD1", c))

	lines := c.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, "a", lines[0].ItemID)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, []string{"extra sauce"}, lines[0].Customizations)
	assert.Equal(t, "b", lines[1].ItemID)
	assert.Equal(t, 1, lines[1].Quantity)

	// the stored order is untouched by the replay
	o, _ := s.Get("ORD1")
	assert.Equal(t, 2, o.Items[0].Quantity)
	assert.ErrorIs(t, s.Reorder("missing", c), ErrNotFound)
}

func TestReorderUsesLiveCatalogEntry(t *testing.T) {
	s := NewStore(storage.NewMemKV())
	o := order("ORD1", 100)
	// stale snapshot of an item still on the menu
	o.Items = []models.OrderItem{
		{ItemID: "classic-chicken", Name: "Old Name", Price: 1, Quantity: 1},
	}
	s.Add(o)
	c := cart.NewStore(storage.NewMemKV())

	require.NoError(t, s.Reorder("ORD1", c))

	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, "classic-chicken", lines[0].ItemID)
	assert.Equal(t, "Classic Chicken Shawarma", lines[0].Name)
	assert.Equal(t, 1800, lines[0].Price)
	assert.Equal(t, "shawarma", lines[0].Category)
}

func TestReorderFallsBackForRemovedItems(t *testing.T) {
	s := NewStore(storage.NewMemKV())
	s.Add(order("ORD1", 100)) // item ids "a" and "b" are off the menu
	c := cart.NewStore(storage.NewMemKV())

	require.NoError(t, s.Reorder("ORD1", c))

	lines := c.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, "Classic Chicken Shawarma", lines[0].Name)
	assert.Equal(t, 1800, lines[0].Price)
	assert.Empty(t, lines[0].Category, "replayed lines must not carry a fabricated category")
}

func TestPersistenceRoundTrip(t *testing.T) {
	kv := storage.NewMemKV()
	s := NewStore(kv)
	s.Add(order("ORD1", 100))
	s.ToggleFavorite("ORD1")
	require.NoError(t, s.SetRating("ORD1", 4))

	reloaded := NewStore(kv)
	require.Equal(t, 1, reloaded.Len())
	o, ok := reloaded.Get("ORD1")
	require.True(t, ok)
	assert.True(t, o.IsFavorite)
	assert.Equal(t, 4, o.Rating)
	assert.Equal(t, []string{"extra sauce"}, o.Items[0].Customizations)
}

func TestMalformedStoredHistoryDegradesToEmpty(t *testing.T) {
	kv := storage.NewMemKV()
	require.NoError(t, kv.Save(context.Background(), storage.OrdersKey, []byte("[broken")))

	s := NewStore(kv)

	assert.Equal(t, 0, s.Len())
}

func TestRemove(t *testing.T) {
	s := NewStore(storage.NewMemKV())
	s.Add(order("ORD1", 100))
	s.Add(order("ORD2", 200))

	s.Remove("ORD1")

	assert.Equal(t, 1, s.Len())
	_, ok := s.Get("ORD1")
	assert.False(t, ok)
	s.Remove("ORD1") // no-op
}
