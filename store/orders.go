package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/stylofy/stylofy-backend-go/models"
)

type OrderStore struct {
	col      *mongo.Collection
	products *ProductStore
}

func NewOrderStore(db *mongo.Database, products *ProductStore) *OrderStore {
	return &OrderStore{col: db.Collection("orders"), products: products}
}

// Create persists a new order with status pending. The referenced product
// must exist; there is no stock decrement and no payment capture, the order
// is purely a record of intent.
func (s *OrderStore) Create(ctx context.Context, order models.Order) (models.Order, error) {
	ok, err := s.products.Exists(ctx, order.Product)
	if err != nil {
		return models.Order{}, err
	}
	if !ok {
		return models.Order{}, ErrNotFound
	}

	order.ID = primitive.NewObjectID()
	order.Status = models.OrderStatusPending
	order.CreatedAt = time.Now()
	order.UpdatedAt = time.Now()

	if _, err := s.col.InsertOne(ctx, order); err != nil {
		return models.Order{}, err
	}
	return order, nil
}

// ListForUser returns the orders placed by email, newest first, each with
// its product resolved inline.
func (s *OrderStore) ListForUser(ctx context.Context, email string) ([]models.PopulatedOrder, error) {
	return s.populated(ctx, bson.M{"user": email})
}

// ListAll returns every order, newest first, populated. Admin listing.
func (s *OrderStore) ListAll(ctx context.Context) ([]models.PopulatedOrder, error) {
	return s.populated(ctx, bson.M{})
}

func (s *OrderStore) populated(ctx context.Context, match bson.M) ([]models.PopulatedOrder, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "products",
			"localField":   "product",
			"foreignField": "_id",
			"as":           "product",
		}}},
		{{Key: "$unwind", Value: "$product"}},
		{{Key: "$sort", Value: bson.M{"createdAt": -1}}},
	}

	cursor, err := s.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	orders := []models.PopulatedOrder{}
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// UpdateStatus moves an order to one of the admin transition targets.
// Status validation happens at the handler, before any store access.
func (s *OrderStore) UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.OrderStatus) error {
	update := bson.M{
		"$set": bson.M{
			"status":    status,
			"updatedAt": time.Now(),
		},
	}

	result, err := s.col.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete cancels an order. The requester must be the order's owner; this is
// a deliberate hardening over behavior that let any authenticated user
// cancel any order.
func (s *OrderStore) Delete(ctx context.Context, id primitive.ObjectID, requester string) error {
	var order models.Order
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&order)
	if err == mongo.ErrNoDocuments {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	if order.User != requester {
		return ErrNotOwner
	}

	_, err = s.col.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
