// Package promos serves the static marketing content: promotions, special
// deals, branch locations, and the hero copy.
package promos

import (
	"net/http"

	"grillz/models"
	"grillz/utils"

	"github.com/julienschmidt/httprouter"
)

var promotions = []models.Promotion{
	{PromoID: "grand-opening", Title: "Grand Opening Special", Description: "20% OFF on all items for first week", Discount: "20% OFF"},
	{PromoID: "student-discount", Title: "Student Discount", Description: "Show your student ID and get 15% off your order", Discount: "15% OFF"},
	{PromoID: "free-delivery", Title: "Free Delivery", Description: "Free delivery on orders above ₦3,000", Discount: "FREE DELIVERY"},
	{PromoID: "happy-hour", Title: "Happy Hour", Description: "Buy 2 shawarmas, get 1 free every weekday 2-5 PM", Discount: "BOGO"},
	{PromoID: "loyalty", Title: "Loyalty Rewards", Description: "Earn points with every purchase and get free meals", Discount: "POINTS SYSTEM", Terms: "100 points = ₦100 discount. Sign up required."},
	{PromoID: "catering", Title: "Corporate Catering", Description: "Special rates for office events and meetings", Discount: "SPECIAL RATES"},
}

var deals = []models.Deal{
	{Name: "Student Combo", Description: "Shawarma + Fries + Drink", OriginalPrice: 3000, DiscountedPrice: 2500},
	{Name: "Office Lunch", Description: "Mixed Grill + Jollof Rice + Drink", OriginalPrice: 5600, DiscountedPrice: 4000},
	{Name: "Family Pack", Description: "4 Shawarmas + 2 Sides + 4 Drinks", OriginalPrice: 10000, DiscountedPrice: 8500},
}

var locations = []models.Location{
	{
		LocationID: "ikoyi", Name: "Ikoyi Branch",
		Address: "123 Awolowo Road, Ikoyi, Lagos",
		Phone:   "+234 800 000 0001", Email: "ikoyi@lagosshawarma.com",
		Hours:    models.OpeningHours{Weekdays: "10:00 AM - 10:00 PM", Weekends: "11:00 AM - 11:00 PM"},
		Lat:      6.4527, Lng: 3.3947,
		Features: []string{"Dine-in", "Takeout", "Delivery", "Parking Available"},
		Rating:   4.8, ReviewCount: 1250,
	},
	{
		LocationID: "lekki", Name: "Lekki Branch",
		Address: "456 Lekki-Epe Expressway, Lekki Phase 1, Lagos",
		Phone:   "+234 800 000 0002", Email: "lekki@lagosshawarma.com",
		Hours:    models.OpeningHours{Weekdays: "10:00 AM - 10:00 PM", Weekends: "11:00 AM - 11:00 PM"},
		Lat:      6.4419, Lng: 3.4762,
		Features: []string{"Dine-in", "Takeout", "Delivery", "Outdoor Seating"},
		Rating:   4.7, ReviewCount: 980,
	},
	{
		LocationID: "yaba", Name: "Yaba Branch",
		Address: "789 Herbert Macaulay Way, Yaba, Lagos",
		Phone:   "+234 800 000 0003", Email: "yaba@lagosshawarma.com",
		Hours:    models.OpeningHours{Weekdays: "10:00 AM - 9:00 PM", Weekends: "11:00 AM - 10:00 PM"},
		Lat:      6.5244, Lng: 3.3792,
		Features: []string{"Dine-in", "Takeout", "Delivery", "Student Discount"},
		Rating:   4.6, ReviewCount: 750,
	},
}

// GetPromotions lists active promotions and special deals.
func GetPromotions(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"promotions": promotions,
		"deals":      deals,
	})
}

// GetLocations lists the restaurant branches.
func GetLocations(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, locations)
}

// GetHero serves the landing copy and company contact details.
func GetHero(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"companyName": "Lagos Shawarma & Grills",
		"tagline":     "Authentic shawarma and grills, made fresh in Lagos",
		"phone":       "+234 800 000 0000",
		"email":       "info@lagosshawarma.com",
	})
}
