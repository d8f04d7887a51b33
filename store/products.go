package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/stylofy/stylofy-backend-go/models"
)

// homepageSize is the fixed sample size for the homepage listing.
const homepageSize = 8

type ProductStore struct {
	col *mongo.Collection
}

func NewProductStore(db *mongo.Database) *ProductStore {
	return &ProductStore{col: db.Collection("products")}
}

func (s *ProductStore) Create(ctx context.Context, product models.Product) (models.Product, error) {
	product.ID = primitive.NewObjectID()
	product.CreatedAt = time.Now()
	product.UpdatedAt = time.Now()

	if _, err := s.col.InsertOne(ctx, product); err != nil {
		return models.Product{}, err
	}
	return product, nil
}

// Homepage returns the fixed-size sample in insertion order.
func (s *ProductStore) Homepage(ctx context.Context) ([]models.Product, error) {
	return s.find(ctx, options.Find().SetLimit(homepageSize))
}

// ListPaged returns products at [start, start+limit) in insertion order.
// Callers normalize the pagination inputs first.
func (s *ProductStore) ListPaged(ctx context.Context, start, limit int64) ([]models.Product, error) {
	return s.find(ctx, options.Find().SetSkip(start).SetLimit(limit))
}

func (s *ProductStore) find(ctx context.Context, opts *options.FindOptions) ([]models.Product, error) {
	cursor, err := s.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	products := []models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (s *ProductStore) GetByID(ctx context.Context, id primitive.ObjectID) (models.Product, error) {
	var product models.Product
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&product)
	if err == mongo.ErrNoDocuments {
		return models.Product{}, ErrNotFound
	}
	if err != nil {
		return models.Product{}, err
	}
	return product, nil
}

// Exists reports whether a product document with the given id is persisted.
// Orders and cart entries must only ever reference existing products.
func (s *ProductStore) Exists(ctx context.Context, id primitive.ObjectID) (bool, error) {
	count, err := s.col.CountDocuments(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListWithSellers is the legacy full dump: every product with the seller's
// name and email joined in.
func (s *ProductStore) ListWithSellers(ctx context.Context) ([]models.ProductWithSeller, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$lookup", Value: bson.M{
			"from":         "users",
			"localField":   "seller",
			"foreignField": "email",
			"as":           "sellerInfo",
		}}},
		{{Key: "$unwind", Value: bson.M{
			"path":                       "$sellerInfo",
			"preserveNullAndEmptyArrays": true,
		}}},
		{{Key: "$project", Value: bson.M{
			"sellerInfo.password": 0,
			"sellerInfo.provider": 0,
			"sellerInfo.image":    0,
		}}},
	}

	cursor, err := s.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	products := []models.ProductWithSeller{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}
