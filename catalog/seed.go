package catalog

import (
	"context"
	"log"
	"os"

	"gadgetry/db"
	"gadgetry/models"
	"gadgetry/rdx"

	"go.mongodb.org/mongo-driver/bson"
)

// seedProducts is the fixed catalog. Products are read-only at runtime.
var seedProducts = []models.Product{
	{
		ID:          "1",
		Name:        "Wireless Headphones",
		Price:       3000,
		Description: "High-quality wireless headphones with noise cancellation",
		Image:       "https://m.media-amazon.com/images/I/61UgZSYRllL.jpg",
	},
	{
		ID:          "2",
		Name:        "Smart Watch",
		Price:       1200,
		Description: "Fitness tracking smart watch with heart rate monitor",
		Image:       "https://sc04.alicdn.com/kf/H258cc3bceab9484b9288c1030f66ee37J.jpg",
	},
	{
		ID:          "3",
		Name:        "Laptop Stand",
		Price:       1300,
		Description: "Ergonomic aluminum laptop stand for better posture",
		Image:       "https://alogic.co/cdn/shop/files/Alogic_Elite_Power_Laptop_Stand_With_Wireless_Charger_Black_1.webp?v=1751890807&width=1200",
	},
	{
		ID:          "4",
		Name:        "USB-C Hub",
		Price:       780,
		Description: "7-in-1 USB-C hub with HDMI, USB 3.0, and SD card reader",
		Image:       "https://m.media-amazon.com/images/I/61QbS525pgL.jpg",
	},
	{
		ID:          "5",
		Name:        "Mechanical Keyboard",
		Price:       2700,
		Description: "RGB mechanical gaming keyboard with blue switches",
		Image:       "https://m.media-amazon.com/images/I/71g6wzBOsvL.jpg",
	},
	{
		ID:          "6",
		Name:        "Wireless Mouse",
		Price:       1020,
		Description: "Ergonomic wireless mouse with adjustable DPI",
		Image:       "https://m.media-amazon.com/images/I/61qpQ7ZsSmL.jpg",
	},
	{
		ID:          "7",
		Name:        "Phone Stand",
		Price:       780,
		Description: "Adjustable phone stand for desk or bedside table",
		Image:       "https://m.media-amazon.com/images/I/61igxtquV0L.jpg",
	},
	{
		ID:          "8",
		Name:        "Webcam HD",
		Price:       3680,
		Description: "1080p HD webcam with built-in microphone",
		Image:       "https://m.media-amazon.com/images/I/61-K2lXmHQL.jpg",
	},
	{
		ID:          "10",
		Name:        "Portable Charger",
		Price:       480,
		Description: "20000mAh portable power bank with fast charging",
		Image:       "https://m.media-amazon.com/images/I/71NVBNrF1pL._AC_UF894,1000_QL80_.jpg",
	},
}

// EnsureSeeded inserts the fixed product set when the collection is
// empty. SEED=force drops the collection first and reseeds.
func EnsureSeeded(ctx context.Context) error {
	if os.Getenv("SEED") == "force" {
		if _, err := db.ProductsCollection.DeleteMany(ctx, bson.M{}); err != nil {
			return err
		}
	} else {
		count, err := db.ProductsCollection.CountDocuments(ctx, bson.M{})
		if err != nil {
			return err
		}
		if count > 0 {
			return nil
		}
	}

	docs := make([]interface{}, 0, len(seedProducts))
	for _, p := range seedProducts {
		docs = append(docs, p)
	}
	if _, err := db.ProductsCollection.InsertMany(ctx, docs); err != nil {
		return err
	}

	// stale cached list would shadow the fresh seed
	if err := rdx.RdxDel(ctx, productCacheKey); err != nil {
		log.Println("EnsureSeeded cache invalidation error:", err)
	}

	log.Printf("Seeded %d products", len(seedProducts))
	return nil
}
