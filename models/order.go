package models

// Order statuses.
const (
	OrderStatusCompleted = "completed"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

// OrderItem is a snapshot copy of a cart line taken at placement time.
// It shares no ownership with the live cart.
type OrderItem struct {
	ItemID              string   `json:"id" bson:"itemid"`
	Name                string   `json:"name" bson:"name"`
	Price               int      `json:"price" bson:"price"`
	Quantity            int      `json:"quantity" bson:"quantity"`
	Customizations      []string `json:"customizations,omitempty" bson:"customizations,omitempty"`
	SpecialInstructions string   `json:"specialInstructions,omitempty" bson:"specialInstructions,omitempty"`
}

// Order is a finalized, persisted order.
type Order struct {
	OrderID       string      `json:"id" bson:"orderid"`
	Date          string      `json:"date" bson:"date"`
	Timestamp     int64       `json:"timestamp" bson:"timestamp"`
	Items         []OrderItem `json:"items" bson:"items"`
	Subtotal      int         `json:"subtotal" bson:"subtotal"`
	Tax           int         `json:"tax" bson:"tax"`
	DeliveryFee   int         `json:"deliveryFee" bson:"deliveryFee"`
	Total         int         `json:"total" bson:"total"`
	Status        string      `json:"status" bson:"status"`
	Customer      Customer    `json:"customer" bson:"customer"`
	PaymentMethod string      `json:"paymentMethod,omitempty" bson:"paymentMethod,omitempty"`
	DeliveryTime  string      `json:"deliveryTime" bson:"deliveryTime"`
	Rating        int         `json:"rating,omitempty" bson:"rating,omitempty"`
	IsFavorite    bool        `json:"isFavorite,omitempty" bson:"isFavorite,omitempty"`
}
