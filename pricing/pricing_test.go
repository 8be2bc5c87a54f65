package pricing

import (
	"testing"

	"grillz/models"

	"github.com/stretchr/testify/assert"
)

func testConfig() Config {
	return Config{
		TaxRate:               0.075,
		DeliveryFee:           500,
		FreeDeliveryThreshold: 3000,
		EstimatedDelivery:     "30-45 minutes",
	}
}

func line(id string, price, qty int) models.CartLine {
	return models.CartLine{
		MenuItem: models.MenuItem{ItemID: id, Name: id, Price: price, Category: "shawarma"},
		Quantity: qty,
	}
}

func TestQuoteClassicChicken(t *testing.T) {
	// classic-chicken x2: subtotal 3600, tax 270, delivery free (>=3000)
	q := Quote([]models.CartLine{line("classic-chicken", 1800, 2)}, testConfig())

	assert.Equal(t, 3600, q.Subtotal)
	assert.Equal(t, 270, q.Tax)
	assert.Equal(t, 0, q.DeliveryFee)
	assert.Equal(t, 3870, q.Total)
}

func TestQuoteIdentity(t *testing.T) {
	carts := [][]models.CartLine{
		nil,
		{line("a", 1800, 1)},
		{line("a", 1800, 2), line("b", 333, 3)},
		{line("a", 1, 1), line("b", 2999, 1)},
		{line("a", 10000, 7)},
	}
	cfg := testConfig()
	for _, lines := range carts {
		q := Quote(lines, cfg)
		assert.Equal(t, q.Subtotal+q.Tax+q.DeliveryFee, q.Total)
		assert.Equal(t, Tax(q.Subtotal, cfg.TaxRate), q.Tax)
	}
}

func TestFreeDeliveryThresholdBoundary(t *testing.T) {
	cfg := testConfig()

	// exactly at the threshold: free
	assert.Equal(t, 0, DeliveryFee(3000, cfg))
	// one Naira below: flat fee
	assert.Equal(t, 500, DeliveryFee(2999, cfg))
}

func TestEmptyCart(t *testing.T) {
	cfg := testConfig()
	q := Quote(nil, cfg)

	assert.Equal(t, 0, q.Subtotal)
	assert.Equal(t, 0, q.Tax)
	// 0 >= 3000 is false, so the flat fee still applies
	assert.Equal(t, 500, q.DeliveryFee)
	assert.Equal(t, 500, q.Total)

	cfg.FreeDeliveryThreshold = 0
	assert.Equal(t, 0, DeliveryFee(0, cfg))
}

func TestTaxRoundsHalfUp(t *testing.T) {
	// 1234 * 0.075 = 92.55 -> 93; 100 * 0.075 = 7.5 -> 8
	assert.Equal(t, 93, Tax(1234, 0.075))
	assert.Equal(t, 8, Tax(100, 0.075))
	assert.Equal(t, 0, Tax(0, 0.075))
}
