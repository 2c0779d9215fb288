package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"gadgetry/db"
	"gadgetry/models"
	"gadgetry/rdx"
	"gadgetry/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	productCacheKey = "catalog:products"
	productCacheTTL = 60 * time.Second
)

// GetProducts returns the full catalog in storage order. The serialized
// list is cached in Redis; a cold or unreachable cache falls through to
// Mongo.
func GetProducts(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if cached, err := rdx.RdxGet(ctx, productCacheKey); err == nil && cached != "" {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(cached))
		return
	}

	products, err := utils.FindAndDecode[models.Product](ctx, db.ProductsCollection, bson.M{})
	if err != nil {
		log.Println("GetProducts Find error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch products")
		return
	}
	if products == nil {
		products = []models.Product{}
	}

	if data, err := json.Marshal(products); err == nil {
		if err := rdx.RdxSet(ctx, productCacheKey, string(data), productCacheTTL); err != nil {
			log.Println("GetProducts cache set error:", err)
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, products)
}

// GetProduct returns a single product by its catalog id.
func GetProduct(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var product models.Product
	err := db.ProductsCollection.FindOne(ctx, bson.M{"id": ps.ByName("id")}).Decode(&product)
	if errors.Is(err, mongo.ErrNoDocuments) {
		utils.RespondWithError(w, http.StatusNotFound, "Product not found")
		return
	}
	if err != nil {
		log.Println("GetProduct FindOne error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch product")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, product)
}
