package models

import "time"

// TrackEvent is a fire-and-forget analytics event emitted by the storefront.
type TrackEvent struct {
	Name       string            `json:"name" bson:"name"`
	SessionID  string            `json:"sessionId,omitempty" bson:"sessionId,omitempty"`
	Properties map[string]string `json:"properties,omitempty" bson:"properties,omitempty"`
	OccurredAt time.Time         `json:"occurredAt" bson:"occurredAt"`
}

// IdempotencyRecord stores one Idempotency-Key replay record.
type IdempotencyRecord struct {
	Key         string                 `json:"key" bson:"key"`
	Method      string                 `json:"method" bson:"method"`
	Path        string                 `json:"path" bson:"path"`
	SessionID   string                 `json:"sessionId" bson:"sessionId"`
	RequestHash string                 `json:"request_hash" bson:"request_hash"`
	Response    map[string]interface{} `json:"response,omitempty" bson:"response,omitempty"`
	CreatedAt   time.Time              `json:"created_at" bson:"created_at"`
	ExpiresAt   time.Time              `json:"expires_at" bson:"expires_at"`
}

// Promotion is a marketing promotion shown on the storefront.
type Promotion struct {
	PromoID     string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Discount    string `json:"discount"`
	Terms       string `json:"terms,omitempty"`
}

// Deal is a bundled special with a discounted price.
type Deal struct {
	Name            string `json:"name"`
	Description     string `json:"description"`
	OriginalPrice   int    `json:"originalPrice"`
	DiscountedPrice int    `json:"discountedPrice"`
}

// OpeningHours lists display-formatted store hours.
type OpeningHours struct {
	Weekdays string `json:"weekdays"`
	Weekends string `json:"weekends"`
}

// Location is one physical branch of the restaurant.
type Location struct {
	LocationID  string       `json:"id"`
	Name        string       `json:"name"`
	Address     string       `json:"address"`
	Phone       string       `json:"phone"`
	Email       string       `json:"email"`
	Hours       OpeningHours `json:"hours"`
	Lat         float64      `json:"lat"`
	Lng         float64      `json:"lng"`
	Features    []string     `json:"features"`
	Rating      float64      `json:"rating"`
	ReviewCount int          `json:"reviewCount"`
	Image       string       `json:"image,omitempty"`
}
