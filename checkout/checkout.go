package checkout

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"gadgetry/cart"
	"gadgetry/db"
	"gadgetry/events"
	"gadgetry/models"
	"gadgetry/rdx"
	"gadgetry/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

const orderEventsChannel = "order-events"

// Checkout validates the submitted cart, persists the order, clears the
// cart store, and returns a receipt. The order-insert and cart-clear are
// two separate writes with no transaction around them; a failure between
// the two leaves the stale cart in place (logged, not compensated).
func Checkout(hub *events.Hub) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		defer cancel()

		var req models.CheckoutRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Println("Checkout decode error:", err)
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON payload")
			return
		}

		if err := validate(req); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}

		// the client's price snapshot is what gets totalled, not a
		// re-lookup of current catalog prices
		order := models.Order{
			OrderID:       "ORD" + utils.GenerateRandomDigitString(10),
			Total:         cart.Total(req.CartItems),
			Timestamp:     time.Now().UTC(),
			Items:         req.CartItems,
			CustomerName:  strings.TrimSpace(req.Name),
			CustomerEmail: strings.TrimSpace(req.Email),
		}

		if _, err := db.OrdersCollection.InsertOne(ctx, order); err != nil {
			log.Println("Checkout InsertOne error:", err)
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to process checkout")
			return
		}

		// clears the whole cart, not just the submitted items
		if _, err := db.CartCollection.DeleteMany(ctx, bson.M{}); err != nil {
			log.Println("Checkout cart cleanup error:", err)
		}

		announce(hub, order)

		utils.RespondWithJSON(w, http.StatusOK, order)
	}
}

// announce pushes the order event to websocket subscribers and the Redis
// channel. Both are best-effort; a lost event never fails the checkout.
func announce(hub *events.Hub, order models.Order) {
	event := models.OrderEvent{
		Action:    "order_placed",
		OrderID:   order.OrderID,
		Total:     order.Total,
		Timestamp: order.Timestamp,
	}
	data, err := json.Marshal(event)
	if err != nil {
		log.Println("Checkout event marshal error:", err)
		return
	}

	hub.Broadcast(data)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := rdx.Publish(ctx, orderEventsChannel, data); err != nil {
		log.Println("Checkout event publish error:", err)
	}
}
