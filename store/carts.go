package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/stylofy/stylofy-backend-go/models"
)

type CartStore struct {
	col      *mongo.Collection
	products *ProductStore
}

func NewCartStore(db *mongo.Database, products *ProductStore) *CartStore {
	return &CartStore{col: db.Collection("carts"), products: products}
}

// Add inserts a new cart entry unconditionally once the referenced product
// is known to exist. Repeated adds with the same user/product pair
// accumulate duplicate entries; there is no dedup and no stock check.
func (s *CartStore) Add(ctx context.Context, cart models.Cart) (models.Cart, error) {
	ok, err := s.products.Exists(ctx, cart.Product)
	if err != nil {
		return models.Cart{}, err
	}
	if !ok {
		return models.Cart{}, ErrNotFound
	}

	cart.ID = primitive.NewObjectID()
	cart.CreatedAt = time.Now()
	cart.UpdatedAt = time.Now()

	if _, err := s.col.InsertOne(ctx, cart); err != nil {
		return models.Cart{}, err
	}
	return cart, nil
}
