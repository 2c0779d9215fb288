package db

import (
	"context"
	"os"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	ProductsCollection *mongo.Collection
	CartCollection     *mongo.Collection
	OrdersCollection   *mongo.Collection
	Client             *mongo.Client
)

// Init connects to MongoDB and binds the collection handles. Connection
// string and database name come from the environment; defaults suit
// local development.
func Init(ctx context.Context) error {
	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}
	name := os.Getenv("MONGODB_DB")
	if name == "" {
		name = "gadgetry"
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return err
	}

	Client = client
	database := client.Database(name)
	ProductsCollection = database.Collection("products")
	CartCollection = database.Collection("cartitems")
	OrdersCollection = database.Collection("orders")

	return ensureIndexes(ctx)
}

// ensureIndexes backs the "one line item per product" cart invariant and
// the unique external ids with unique indexes.
func ensureIndexes(ctx context.Context) error {
	unique := options.Index().SetUnique(true)

	if _, err := ProductsCollection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "id", Value: 1}},
		Options: unique,
	}); err != nil {
		return err
	}
	if _, err := CartCollection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: unique},
		{Keys: bson.D{{Key: "productId", Value: 1}}, Options: unique},
	}); err != nil {
		return err
	}
	_, err := OrdersCollection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "orderId", Value: 1}},
		Options: unique,
	})
	return err
}

func Close(ctx context.Context) error {
	if Client == nil {
		return nil
	}
	return Client.Disconnect(ctx)
}
