package models

import "time"

// CartLine is one distinct item entry in the cart. The line identity key is
// MenuItem.ItemID; the cart never holds two lines for the same id.
type CartLine struct {
	MenuItem            `bson:",inline"`
	Quantity            int       `json:"quantity" bson:"quantity"`
	Customizations      []string  `json:"customizations,omitempty" bson:"customizations,omitempty"`
	SpecialInstructions string    `json:"specialInstructions,omitempty" bson:"specialInstructions,omitempty"`
	AddedAt             time.Time `json:"addedAt" bson:"addedAt"`
}

// Customer is the delivery contact collected during checkout.
type Customer struct {
	Name    string `json:"name" bson:"name"`
	Phone   string `json:"phone" bson:"phone"`
	Address string `json:"address" bson:"address"`
	Email   string `json:"email,omitempty" bson:"email,omitempty"`
}

// CheckoutDraft holds the in-progress, not-yet-committed checkout details.
// It is ephemeral and never persisted.
type CheckoutDraft struct {
	Customer      Customer `json:"customer"`
	PaymentMethod string   `json:"paymentMethod"` // "card", "bank-transfer", "cash"
}
