package cart

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"grillz/models"
	"grillz/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func item(id string, price int) models.MenuItem {
	return models.MenuItem{ItemID: id, Name: id, Price: price, Category: "shawarma"}
}

func TestAddSameIDMergesLines(t *testing.T) {
	s := NewStore(storage.NewMemKV())

	s.AddItem(item("classic-chicken", 1800), 1, nil, "")
	s.AddItem(item("classic-chicken", 1800), 1, nil, "")

	lines := s.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, 2, s.Count())
}

func TestAddSameIDKeepsFirstCustomizations(t *testing.T) {
	s := NewStore(storage.NewMemKV())

	s.AddItem(item("lagos-fire", 2000), 1, []string{"extra sauce"}, "no onions")
	s.AddItem(item("lagos-fire", 2000), 2, []string{"mild"}, "ignored")

	lines := s.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 3, lines[0].Quantity)
	assert.Equal(t, []string{"extra sauce"}, lines[0].Customizations)
	assert.Equal(t, "no onions", lines[0].SpecialInstructions)
}

func TestAddNonPositiveQuantityIsNoop(t *testing.T) {
	s := NewStore(storage.NewMemKV())

	s.AddItem(item("plantain", 600), 0, nil, "")
	s.AddItem(item("plantain", 600), -2, nil, "")

	assert.Empty(t, s.Lines())
}

func TestSetQuantityRemovesAtZero(t *testing.T) {
	s := NewStore(storage.NewMemKV())
	s.AddItem(item("jollof-rice", 700), 3, nil, "")

	s.SetQuantity("jollof-rice", 0)
	assert.Empty(t, s.Lines())

	s.AddItem(item("jollof-rice", 700), 3, nil, "")
	s.SetQuantity("jollof-rice", -5)
	assert.Empty(t, s.Lines())
}

func TestSetQuantityAbsolute(t *testing.T) {
	s := NewStore(storage.NewMemKV())
	s.AddItem(item("suya-platter", 3200), 1, nil, "")

	s.SetQuantity("suya-platter", 4)

	lines := s.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 4, lines[0].Quantity)
}

func TestAdjustQuantityClampsToOne(t *testing.T) {
	s := NewStore(storage.NewMemKV())
	s.AddItem(item("grilled-corn", 500), 2, nil, "")

	s.AdjustQuantity("grilled-corn", -1)
	s.AdjustQuantity("grilled-corn", -1)
	s.AdjustQuantity("grilled-corn", -1)

	lines := s.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 1, lines[0].Quantity, "decrement past 1 clamps, never removes")
}

func TestRemoveItemAbsentIsNoop(t *testing.T) {
	s := NewStore(storage.NewMemKV())
	s.AddItem(item("coleslaw", 400), 1, nil, "")

	s.RemoveItem("no-such-item")

	assert.Len(t, s.Lines(), 1)
}

func TestClearLeavesOpenFlag(t *testing.T) {
	s := NewStore(storage.NewMemKV())
	s.AddItem(item("salad", 500), 1, nil, "")
	s.SetOpen(true)

	s.Clear()

	assert.Empty(t, s.Lines())
	assert.True(t, s.IsOpen())
}

func TestPersistenceRoundTrip(t *testing.T) {
	kv := storage.NewMemKV()
	s := NewStore(kv)

	s.AddItem(item("classic-chicken", 1800), 2, []string{"extra sauce", "extra sauce"}, "")
	s.AddItem(item("beef-shawarma", 2200), 1, nil, "ring the bell")
	s.AddItem(item("french-fries", 800), 3, nil, "")

	reloaded := NewStore(kv)
	lines := reloaded.Lines()
	require.Len(t, lines, 3)
	assert.Equal(t, []string{"extra sauce", "extra sauce"}, lines[0].Customizations,
		"duplicate customizations and their order survive the round trip")
	assert.Equal(t, "ring the bell", lines[1].SpecialInstructions)
	assert.Equal(t, 3, lines[2].Quantity)
	assert.Equal(t, s.Subtotal(), reloaded.Subtotal())
}

func TestMalformedStoredCartDegradesToEmpty(t *testing.T) {
	kv := storage.NewMemKV()
	require.NoError(t, kv.Save(context.Background(), storage.CartKey, []byte("{not json")))

	s := NewStore(kv)

	assert.Empty(t, s.Lines())
}

type failingKV struct{}

func (failingKV) Load(context.Context, string) ([]byte, bool, error) {
	return nil, false, errors.New("quota exceeded")
}
func (failingKV) Save(context.Context, string, []byte) error {
	return errors.New("quota exceeded")
}

func TestSaveFailureDoesNotLoseMutation(t *testing.T) {
	s := NewStore(failingKV{})

	s.AddItem(item("mixed-grill", 4500), 1, nil, "")

	assert.Len(t, s.Lines(), 1, "mutation proceeds in memory when persistence fails")
}

func TestSubscriberSeesCountAndSubtotal(t *testing.T) {
	s := NewStore(storage.NewMemKV())
	var gotCount, gotSubtotal int
	s.Subscribe(func(count, subtotal int) {
		gotCount, gotSubtotal = count, subtotal
	})

	s.AddItem(item("classic-chicken", 1800), 2, nil, "")

	assert.Equal(t, 2, gotCount)
	assert.Equal(t, 3600, gotSubtotal)

	s.RemoveItem("classic-chicken")
	assert.Equal(t, 0, gotCount)
	assert.Equal(t, 0, gotSubtotal)
}

func TestSnapshotIsACopy(t *testing.T) {
	s := NewStore(storage.NewMemKV())
	s.AddItem(item("lagos-fire", 2000), 1, []string{"extra pepper"}, "")

	snap := s.Snapshot()
	snap[0].Quantity = 99
	snap[0].Customizations[0] = "mutated"

	lines := s.Lines()
	assert.Equal(t, 1, lines[0].Quantity)
	assert.Equal(t, "extra pepper", lines[0].Customizations[0])
}

func TestStoredCartIsPlainLineArray(t *testing.T) {
	kv := storage.NewMemKV()
	s := NewStore(kv)
	s.AddItem(item("bottled-water", 300), 1, nil, "")
	_ = s

	data, ok, err := kv.Load(context.Background(), storage.CartKey)
	require.NoError(t, err)
	require.True(t, ok)

	var lines []models.CartLine
	require.NoError(t, json.Unmarshal(data, &lines))
	require.Len(t, lines, 1)
	assert.Equal(t, "bottled-water", lines[0].ItemID)
	assert.Equal(t, 300, lines[0].Price)
}
