package cart

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"gadgetry/db"
	"gadgetry/models"
	"gadgetry/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Total computes the cart total as the sum of price × qty over the line
// items. It is recomputed on every read and never stored.
func Total(items []models.CartItem) float64 {
	var sum float64
	for _, item := range items {
		sum += item.Price * float64(item.Qty)
	}
	return sum
}

// GetCart returns every line item plus the computed total.
func GetCart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	items, err := utils.FindAndDecode[models.CartItem](ctx, db.CartCollection, bson.M{})
	if err != nil {
		log.Println("GetCart Find error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Could not retrieve cart")
		return
	}
	if items == nil {
		items = []models.CartItem{}
	}

	utils.RespondWithJSON(w, http.StatusOK, models.CartView{Items: items, Total: Total(items)})
}

type addRequest struct {
	ProductID string `json:"productId"`
	Qty       int    `json:"qty"`
}

// AddToCart increments the quantity of an existing line item, or inserts
// a new one snapshotting the product's current name and price. Replies
// 200 for an increment, 201 for a fresh line item.
func AddToCart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var req addRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Println("AddToCart decode error:", err)
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if req.ProductID == "" || req.Qty < 1 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid productId or quantity")
		return
	}

	var product models.Product
	err := db.ProductsCollection.FindOne(ctx, bson.M{"id": req.ProductID}).Decode(&product)
	if errors.Is(err, mongo.ErrNoDocuments) {
		utils.RespondWithError(w, http.StatusNotFound, "Product not found")
		return
	}
	if err != nil {
		log.Println("AddToCart product lookup error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to add to cart")
		return
	}

	// $inc keeps the per-document increment atomic; the find-or-create
	// pair itself is still last-write-wins.
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.CartItem
	err = db.CartCollection.FindOneAndUpdate(ctx,
		bson.M{"productId": req.ProductID},
		bson.M{"$inc": bson.M{"qty": req.Qty}},
		opts,
	).Decode(&updated)
	if err == nil {
		utils.RespondWithJSON(w, http.StatusOK, updated)
		return
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		log.Println("AddToCart FindOneAndUpdate error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to add to cart")
		return
	}

	item := models.CartItem{
		ID:          "cart_" + utils.GetUUID(),
		ProductID:   product.ID,
		ProductName: product.Name,
		Price:       product.Price,
		Qty:         req.Qty,
		CreatedAt:   time.Now().UTC(),
	}
	if _, err := db.CartCollection.InsertOne(ctx, item); err != nil {
		log.Println("AddToCart InsertOne error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to add to cart")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, item)
}

// RemoveFromCart deletes a single line item by its id.
func RemoveFromCart(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	err := db.CartCollection.FindOneAndDelete(ctx, bson.M{"id": ps.ByName("id")}).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		utils.RespondWithError(w, http.StatusNotFound, "Cart item not found")
		return
	}
	if err != nil {
		log.Println("RemoveFromCart FindOneAndDelete error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to remove from cart")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "Item removed from cart"})
}
