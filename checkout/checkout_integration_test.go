package checkout

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"gadgetry/cart"
	"gadgetry/db"
	"gadgetry/events"
	"gadgetry/models"
	"gadgetry/rdx"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"go.mongodb.org/mongo-driver/bson"
)

func setupTestDB(t *testing.T) {
	ctx := context.Background()

	// Start MongoDB container
	mongoContainer, err := mongodb.Run(ctx, "mongo:7")
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := mongoContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %s", err)
		}
	})

	uri, err := mongoContainer.ConnectionString(ctx)
	require.NoError(t, err)

	t.Setenv("MONGODB_URI", uri)
	t.Setenv("MONGODB_DB", "testdb")
	require.NoError(t, db.Init(ctx))
	t.Cleanup(func() { _ = db.Close(ctx) })

	// order events are best-effort; an unreachable Redis only logs
	rdx.Init()
}

func TestCheckoutPersistsOrderAndClearsCart(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()

	items := []interface{}{
		models.CartItem{ID: "cart_a", ProductID: "1", ProductName: "Wireless Headphones", Price: 3000, Qty: 2},
		models.CartItem{ID: "cart_b", ProductID: "2", ProductName: "Smart Watch", Price: 1200, Qty: 1},
	}
	_, err := db.CartCollection.InsertMany(ctx, items)
	require.NoError(t, err)

	body := `{
		"cartItems": [
			{"id":"cart_a","productId":"1","productName":"Wireless Headphones","price":3000,"qty":2},
			{"id":"cart_b","productId":"2","productName":"Smart Watch","price":1200,"qty":1}
		],
		"name": "  Al  ",
		"email": "al@example.com"
	}`
	req := httptest.NewRequest("POST", "/api/checkout", strings.NewReader(body))
	rec := httptest.NewRecorder()
	Checkout(events.NewHub())(rec, req, nil)
	require.Equal(t, 200, rec.Code)

	var receipt models.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &receipt))
	assert.NotEmpty(t, receipt.OrderID)
	assert.Equal(t, "Al", receipt.CustomerName)
	assert.Equal(t, "al@example.com", receipt.CustomerEmail)
	assert.Equal(t, 7200.0, receipt.Total)

	// the receipt total matches its own line items
	assert.Equal(t, receipt.Total, cart.Total(receipt.Items))

	// the order is in the append-only log
	orders, err := db.OrdersCollection.CountDocuments(ctx, bson.M{"orderId": receipt.OrderID})
	require.NoError(t, err)
	assert.Equal(t, int64(1), orders)

	// a subsequent cart read comes back empty
	cartRec := httptest.NewRecorder()
	cart.GetCart(cartRec, httptest.NewRequest("GET", "/api/cart", nil), nil)
	require.Equal(t, 200, cartRec.Code)

	var view models.CartView
	require.NoError(t, json.Unmarshal(cartRec.Body.Bytes(), &view))
	assert.Empty(t, view.Items)
	assert.Equal(t, 0.0, view.Total)
}

func TestCheckoutValidationLeavesCartIntact(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()

	_, err := db.CartCollection.InsertOne(ctx, models.CartItem{
		ID: "cart_a", ProductID: "1", ProductName: "Wireless Headphones", Price: 3000, Qty: 1,
	})
	require.NoError(t, err)

	body := `{"cartItems":[{"id":"cart_a","productId":"1","price":3000,"qty":1}],"name":"A","email":"al@example.com"}`
	req := httptest.NewRequest("POST", "/api/checkout", strings.NewReader(body))
	rec := httptest.NewRecorder()
	Checkout(events.NewHub())(rec, req, nil)
	require.Equal(t, 400, rec.Code)

	count, err := db.CartCollection.CountDocuments(ctx, bson.M{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	orders, err := db.OrdersCollection.CountDocuments(ctx, bson.M{})
	require.NoError(t, err)
	assert.Equal(t, int64(0), orders)
}
