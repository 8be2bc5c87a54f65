package catalog

import "grillz/models"

// menuData is the static Lagos Shawarma & Grills menu. The catalog is
// read-only; edits happen out of band by shipping new data.
var menuData = []models.MenuCategory{
	{
		CategoryID:  "combos",
		Name:        "Combo Deals",
		Description: "Amazing value combos for hungry customers",
		Items: []models.MenuItem{
			{ItemID: "couple-combo", Name: "Couple Combo", Description: "2 shawarmas + 2 drinks + fries for 2 people", Price: 3500, Category: "combos", IsPopular: true},
			{ItemID: "family-feast", Name: "Family Feast", Description: "4 shawarmas + 4 drinks + large fries for 4 people", Price: 6500, Category: "combos", IsPopular: true},
			{ItemID: "office-lunch", Name: "Office Lunch Special", Description: "5 shawarmas + 5 drinks + sides for 5 people", Price: 8000, Category: "combos"},
			{ItemID: "student-pack", Name: "Student Pack", Description: "1 shawarma + 1 drink + small fries", Price: 2000, Category: "combos"},
		},
	},
	{
		CategoryID:  "shawarma",
		Name:        "Shawarma Varieties",
		Description: "Authentic shawarma made with fresh ingredients and traditional recipes",
		Items: []models.MenuItem{
			{ItemID: "classic-chicken", Name: "Classic Chicken Shawarma", Description: "Tender chicken marinated in special spices, wrapped in warm pita with vegetables and sauce", Price: 1800, Category: "shawarma", IsPopular: true},
			{ItemID: "beef-shawarma", Name: "Beef Shawarma", Description: "Juicy beef strips marinated in Arabic spices, served with tahini sauce", Price: 2200, Category: "shawarma"},
			{ItemID: "mixed-shawarma", Name: "Mixed Shawarma", Description: "Perfect combination of chicken and beef shawarma with extra toppings", Price: 2500, Category: "shawarma", IsPopular: true},
			{ItemID: "vegetarian-shawarma", Name: "Vegetarian Shawarma", Description: "Fresh vegetables, falafel, and hummus wrapped in warm pita bread", Price: 1500, Category: "shawarma", IsVegetarian: true},
			{ItemID: "lagos-fire", Name: "Spicy \"Lagos Fire\" Shawarma", Description: "For the brave! Extra spicy shawarma with habanero and special Lagos spices", Price: 2000, Category: "shawarma", IsSpicy: true, IsPopular: true},
		},
	},
	{
		CategoryID:  "grills",
		Name:        "Grill Items",
		Description: "Perfectly grilled meats and vegetables with authentic Nigerian flavors",
		Items: []models.MenuItem{
			{ItemID: "grilled-wings", Name: "Grilled Chicken Wings (6pcs)", Description: "Marinated chicken wings grilled to perfection, served with dipping sauce", Price: 2800, Category: "grills", IsPopular: true},
			{ItemID: "suya-platter", Name: "Suya Platter", Description: "Traditional Nigerian suya with spices and sides", Price: 3200, Category: "grills", IsSpicy: true},
			{ItemID: "grilled-fish", Name: "Grilled Fish", Description: "Fresh tilapia grilled to perfection with Nigerian spices", Price: 2500, Category: "grills"},
			{ItemID: "mixed-grill", Name: "Mixed Grill Platter", Description: "Assorted grilled meats and vegetables perfect for sharing", Price: 4500, Category: "grills", IsPopular: true},
			{ItemID: "grilled-corn", Name: "Grilled Corn on Cob", Description: "Sweet corn grilled and seasoned with Nigerian spices", Price: 500, Category: "grills"},
		},
	},
	{
		CategoryID:  "sides",
		Name:        "Sides & Extras",
		Description: "Perfect accompaniments to complete your meal",
		Items: []models.MenuItem{
			{ItemID: "french-fries", Name: "French Fries (Large)", Description: "Crispy golden fries seasoned to perfection", Price: 800, Category: "sides", IsPopular: true},
			{ItemID: "plantain", Name: "Fried Plantain", Description: "Sweet ripe plantains fried to golden perfection", Price: 600, Category: "sides"},
			{ItemID: "coleslaw", Name: "Coleslaw", Description: "Fresh and creamy coleslaw with a hint of spice", Price: 400, Category: "sides"},
			{ItemID: "jollof-rice", Name: "Jollof Rice", Description: "Authentic Nigerian jollof rice with vegetables", Price: 700, Category: "sides", IsPopular: true},
			{ItemID: "salad", Name: "Garden Salad", Description: "Mixed greens with our special dressing", Price: 500, Category: "sides", IsVegetarian: true},
		},
	},
	{
		CategoryID:  "beverages",
		Name:        "Beverages",
		Description: "Refreshing drinks to complement your meal",
		Items: []models.MenuItem{
			{ItemID: "soft-drinks", Name: "Soft Drinks (Coke, Fanta, etc.)", Description: "Assorted carbonated soft drinks", Price: 400, Category: "beverages", IsPopular: true},
			{ItemID: "fresh-juice", Name: "Fresh Juice", Description: "Freshly squeezed fruit juices", Price: 600, Category: "beverages"},
			{ItemID: "bottled-water", Name: "Bottled Water", Description: "Pure bottled water", Price: 300, Category: "beverages"},
			{ItemID: "local-drinks", Name: "Local Drinks (Zobo, Kunu)", Description: "Traditional Nigerian drinks", Price: 400, Category: "beverages"},
		},
	},
}
