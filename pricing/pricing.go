// Package pricing derives order totals from cart lines. All functions are
// pure and deterministic given the same lines and config.
package pricing

import (
	"math"
	"os"
	"strconv"

	"grillz/models"
)

// Config carries the business rates. Amounts are whole Naira.
type Config struct {
	TaxRate               float64
	DeliveryFee           int
	FreeDeliveryThreshold int
	EstimatedDelivery     string
}

// LoadConfig reads the business config from the environment, falling back
// to the launch defaults.
func LoadConfig() Config {
	cfg := Config{
		TaxRate:               0.075,
		DeliveryFee:           500,
		FreeDeliveryThreshold: 3000,
		EstimatedDelivery:     "30-45 minutes",
	}
	if v := os.Getenv("TAX_RATE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.TaxRate = f
		}
	}
	if v := os.Getenv("DELIVERY_FEE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.DeliveryFee = n
		}
	}
	if v := os.Getenv("FREE_DELIVERY_THRESHOLD"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.FreeDeliveryThreshold = n
		}
	}
	if v := os.Getenv("ESTIMATED_DELIVERY_TIME"); v != "" {
		cfg.EstimatedDelivery = v + " minutes"
	}
	return cfg
}

// Totals is a complete price breakdown. Total == Subtotal + Tax + DeliveryFee.
type Totals struct {
	Subtotal    int `json:"subtotal"`
	Tax         int `json:"tax"`
	DeliveryFee int `json:"deliveryFee"`
	Total       int `json:"total"`
}

// Subtotal sums price * quantity over all lines.
func Subtotal(lines []models.CartLine) int {
	total := 0
	for _, l := range lines {
		total += l.Price * l.Quantity
	}
	return total
}

// Tax rounds subtotal * rate half away from zero, matching the storefront's
// display math.
func Tax(subtotal int, rate float64) int {
	return int(math.Round(float64(subtotal) * rate))
}

// DeliveryFee is waived once the subtotal reaches the free-delivery
// threshold. An empty cart (subtotal 0) still pays the flat fee unless the
// threshold itself is 0.
func DeliveryFee(subtotal int, cfg Config) int {
	if subtotal >= cfg.FreeDeliveryThreshold {
		return 0
	}
	return cfg.DeliveryFee
}

// Quote derives the full breakdown for a cart.
func Quote(lines []models.CartLine, cfg Config) Totals {
	sub := Subtotal(lines)
	tax := Tax(sub, cfg.TaxRate)
	fee := DeliveryFee(sub, cfg)
	return Totals{
		Subtotal:    sub,
		Tax:         tax,
		DeliveryFee: fee,
		Total:       sub + tax + fee,
	}
}
