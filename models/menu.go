package models

// MenuItem is one orderable item from the catalog. Prices are whole Naira.
type MenuItem struct {
	ItemID       string `json:"id" bson:"itemid"`
	Name         string `json:"name" bson:"name"`
	Description  string `json:"description" bson:"description"`
	Price        int    `json:"price" bson:"price"`
	Category     string `json:"category" bson:"category"`
	Image        string `json:"image,omitempty" bson:"image,omitempty"`
	IsPopular    bool   `json:"isPopular,omitempty" bson:"isPopular,omitempty"`
	IsSpicy      bool   `json:"isSpicy,omitempty" bson:"isSpicy,omitempty"`
	IsVegetarian bool   `json:"isVegetarian,omitempty" bson:"isVegetarian,omitempty"`
}

// MenuCategory groups catalog items for display.
type MenuCategory struct {
	CategoryID  string     `json:"id" bson:"categoryid"`
	Name        string     `json:"name" bson:"name"`
	Description string     `json:"description" bson:"description"`
	Items       []MenuItem `json:"items" bson:"items"`
}
