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

type UserStore struct {
	col *mongo.Collection
}

func NewUserStore(db *mongo.Database) *UserStore {
	return &UserStore{col: db.Collection("users")}
}

// EnsureIndexes creates the unique email index. Sign-user idempotence rests
// on the store rejecting a second record with the same email, not on the
// find-then-insert sequence alone.
func (s *UserStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

// FindByEmail resolves an email to its persisted user record. The persisted
// role is the authoritative one; callers must never trust a credential's
// role claim alone.
func (s *UserStore) FindByEmail(ctx context.Context, email string) (models.User, error) {
	var user models.User
	err := s.col.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return models.User{}, ErrNotFound
	}
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}

// SignUser creates the user on first sign-in and returns the existing record
// on every later call with the same email. The second return value reports
// whether a new record was created.
func (s *UserStore) SignUser(ctx context.Context, user models.User) (models.User, bool, error) {
	existing, err := s.FindByEmail(ctx, user.Email)
	if err == nil {
		return existing, false, nil
	}
	if err != ErrNotFound {
		return models.User{}, false, err
	}

	user.ID = primitive.NewObjectID()
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()

	_, err = s.col.InsertOne(ctx, user)
	if mongo.IsDuplicateKeyError(err) {
		// A concurrent sign-in won the insert; the unique email index
		// guarantees there is exactly one record to return.
		existing, ferr := s.FindByEmail(ctx, user.Email)
		if ferr != nil {
			return models.User{}, false, ferr
		}
		return existing, false, nil
	}
	if err != nil {
		return models.User{}, false, err
	}
	return user, true, nil
}

// ListAll returns every user record. Passwords stay out of responses via the
// model's JSON tags.
func (s *UserStore) ListAll(ctx context.Context) ([]models.User, error) {
	cursor, err := s.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	users := []models.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// ListSummaries builds the admin directory in a single aggregation: each
// user joined with the count of their orders and listed products. One round
// trip, never a query per user.
func (s *UserStore) ListSummaries(ctx context.Context, start, limit int64) ([]models.UserSummary, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$lookup", Value: bson.M{
			"from":         "orders",
			"localField":   "email",
			"foreignField": "user",
			"as":           "orders",
		}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "products",
			"localField":   "email",
			"foreignField": "seller",
			"as":           "products",
		}}},
		{{Key: "$project", Value: bson.M{
			"name":         1,
			"email":        1,
			"role":         1,
			"createdAt":    1,
			"updatedAt":    1,
			"orderCount":   bson.M{"$size": "$orders"},
			"productCount": bson.M{"$size": "$products"},
		}}},
		{{Key: "$skip", Value: start}},
		{{Key: "$limit", Value: limit}},
	}

	cursor, err := s.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	summaries := []models.UserSummary{}
	if err := cursor.All(ctx, &summaries); err != nil {
		return nil, err
	}
	return summaries, nil
}
