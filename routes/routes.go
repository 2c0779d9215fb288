package routes

import (
	"gadgetry/cart"
	"gadgetry/catalog"
	"gadgetry/checkout"
	"gadgetry/events"
	"gadgetry/ratelim"

	"github.com/julienschmidt/httprouter"
)

func AddCatalogRoutes(router *httprouter.Router) {
	router.GET("/api/products", catalog.GetProducts)
	router.GET("/api/products/:id", catalog.GetProduct)
}

func AddCartRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.GET("/api/cart", cart.GetCart)
	router.POST("/api/cart", rl.Limit(cart.AddToCart))
	router.DELETE("/api/cart/:id", rl.Limit(cart.RemoveFromCart))
}

func AddCheckoutRoutes(router *httprouter.Router, rl *ratelim.RateLimiter, hub *events.Hub) {
	router.POST("/api/checkout", rl.Limit(checkout.Checkout(hub)))
}

func AddOrderRoutes(router *httprouter.Router) {
	router.GET("/api/orders", checkout.GetOrders)
	router.GET("/api/orders/:orderid", checkout.GetOrder)
	router.GET("/api/orders/:orderid/receipt", checkout.PrintReceipt)
}

func AddEventsRoutes(router *httprouter.Router, hub *events.Hub) {
	router.GET("/ws/orders", events.OrderFeed(hub))
}
