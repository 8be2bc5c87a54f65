package routes

import (
	"net/http"

	"grillz/analytics"
	"grillz/cart"
	"grillz/catalog"
	"grillz/checkout"
	"grillz/idempo"
	"grillz/images"
	"grillz/middleware"
	"grillz/notify"
	"grillz/orders"
	"grillz/pricing"
	"grillz/promos"
	"grillz/ratelim"
	"grillz/search"
	"grillz/session"

	"github.com/julienschmidt/httprouter"
)

func AddStaticRoutes(router *httprouter.Router) {
	router.ServeFiles("/static/menupic/*filepath", http.Dir("static/menupic"))
	router.ServeFiles("/static/uploads/*filepath", http.Dir("static/uploads"))
}

func AddCatalogRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.GET("/api/menu", rl.Limit(catalog.GetCatalog))
	router.GET("/api/menu/items", rl.Limit(catalog.GetItems))
	router.GET("/api/menu/items/:itemid", rl.Limit(catalog.GetItem))
	router.GET("/api/menu/items/:itemid/image", images.ResolveImage)
	router.POST("/api/menu/items/:itemid/image", rl.Limit(images.UploadMenuPic))
}

func AddSearchRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.GET("/api/search", rl.Limit(search.SearchMenu))
	router.GET("/api/suggestions", rl.Limit(search.SuggestMenu))
}

func AddCartRoutes(router *httprouter.Router, reg *session.Registry, rl *ratelim.RateLimiter) {
	h := cart.NewHandlers(func(r *http.Request) *cart.Store {
		return reg.FromRequest(r).Cart
	})

	router.GET("/api/cart", middleware.GuestSession(h.GetCart))
	router.POST("/api/cart/items", middleware.GuestSession(rl.Limit(h.AddItem)))
	router.DELETE("/api/cart/items/:itemid", middleware.GuestSession(h.RemoveItem))
	router.PUT("/api/cart/items/:itemid/quantity", middleware.GuestSession(h.SetQuantity))
	router.PATCH("/api/cart/items/:itemid/quantity", middleware.GuestSession(h.AdjustQuantity))
	router.DELETE("/api/cart", middleware.GuestSession(h.ClearCart))
	router.POST("/api/cart/toggle", middleware.GuestSession(h.ToggleCart))
}

func AddCheckoutRoutes(router *httprouter.Router, reg *session.Registry, cfg pricing.Config, rl *ratelim.RateLimiter) {
	h := checkout.NewHandlers(func(r *http.Request) checkout.Session {
		s := reg.FromRequest(r)
		return checkout.Session{Machine: s.Checkout, Cart: s.Cart}
	}, cfg)

	router.GET("/api/checkout", middleware.GuestSession(h.GetState))
	router.POST("/api/checkout/next", middleware.GuestSession(h.Next))
	router.POST("/api/checkout/back", middleware.GuestSession(h.Back))
	router.POST("/api/checkout/close", middleware.GuestSession(h.Close))
	router.PUT("/api/checkout/delivery", middleware.GuestSession(h.SetDelivery))
	router.PUT("/api/checkout/payment", middleware.GuestSession(h.SetPayment))
	router.POST("/api/checkout/submit", middleware.GuestSession(idempo.Middleware(rl.Limit(h.Submit))))
}

func AddOrderRoutes(router *httprouter.Router, reg *session.Registry, rl *ratelim.RateLimiter) {
	h := orders.NewHandlers(func(r *http.Request) orders.Session {
		s := reg.FromRequest(r)
		return orders.Session{Orders: s.Orders, Cart: s.Cart}
	})

	router.GET("/api/orders", middleware.GuestSession(h.ListOrders))
	router.GET("/api/orders/:orderid", middleware.GuestSession(h.GetOrder))
	router.POST("/api/orders/:orderid/favorite", middleware.GuestSession(h.ToggleFavorite))
	router.PUT("/api/orders/:orderid/rating", middleware.GuestSession(h.SetRating))
	router.POST("/api/orders/:orderid/reorder", middleware.GuestSession(rl.Limit(h.Reorder)))
	router.DELETE("/api/orders/:orderid", middleware.GuestSession(h.RemoveOrder))
	router.GET("/api/orders/:orderid/receipt", middleware.GuestSession(h.PrintReceipt))
}

func AddAnalyticsRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.POST("/api/track", middleware.GuestSession(rl.Limit(analytics.Track)))
	router.GET("/api/metrics", analytics.GetMetrics)
}

func AddContentRoutes(router *httprouter.Router) {
	router.GET("/api/promotions", promos.GetPromotions)
	router.GET("/api/locations", promos.GetLocations)
	router.GET("/api/hero", promos.GetHero)
}

func AddNotifyRoutes(router *httprouter.Router, hub *notify.Hub) {
	router.GET("/ws/notify", middleware.GuestSession(notify.WebSocketHandler(hub)))
}
