package models

import "time"

// Product is one catalog record. Products are seeded once at startup
// and never mutated afterwards.
type Product struct {
	ID          string  `json:"id" bson:"id"`
	Name        string  `json:"name" bson:"name"`
	Price       float64 `json:"price" bson:"price"`
	Image       string  `json:"image,omitempty" bson:"image,omitempty"`
	Description string  `json:"description,omitempty" bson:"description,omitempty"`
}

// CartItem is one line in the global cart: one row per distinct product,
// quantity aggregated. Name and price are snapshots taken at insert time.
type CartItem struct {
	ID          string    `json:"id" bson:"id"`
	ProductID   string    `json:"productId" bson:"productId"`
	ProductName string    `json:"productName" bson:"productName"`
	Price       float64   `json:"price" bson:"price"` // unit price snapshot
	Qty         int       `json:"qty" bson:"qty"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
}

// CartView is the GET /api/cart response. Total is always recomputed,
// never stored.
type CartView struct {
	Items []CartItem `json:"items"`
	Total float64    `json:"total"`
}

// Order is a finalized checkout. Orders are append-only; the struct
// doubles as the receipt returned to the client.
type Order struct {
	OrderID       string     `json:"orderId" bson:"orderId"`
	Total         float64    `json:"total" bson:"total"`
	Timestamp     time.Time  `json:"timestamp" bson:"timestamp"`
	Items         []CartItem `json:"items" bson:"items"`
	CustomerName  string     `json:"customerName" bson:"customerName"`
	CustomerEmail string     `json:"customerEmail" bson:"customerEmail"`
}

// CheckoutRequest is the client payload for POST /api/checkout. The item
// list is the client's snapshot of its cart, taken as-is.
type CheckoutRequest struct {
	CartItems []CartItem `json:"cartItems"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
}

// OrderEvent is pushed to websocket subscribers and the Redis
// order-events channel after a successful checkout.
type OrderEvent struct {
	Action    string    `json:"action"`
	OrderID   string    `json:"orderId"`
	Total     float64   `json:"total"`
	Timestamp time.Time `json:"timestamp"`
}
