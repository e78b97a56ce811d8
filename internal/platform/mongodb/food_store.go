package mongodb

import (
	"context"
	"errors"
	"log/slog"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/cookieter/cookieter-api/internal/store"
)

// FoodStore implements store.FoodStore against the foods collection.
type FoodStore struct {
	coll   *mongo.Collection
	logger *slog.Logger
}

// Ensure FoodStore implements the store.FoodStore interface
var _ store.FoodStore = (*FoodStore)(nil)

// NewFoodStore creates a new FoodStore backed by the given database.
func NewFoodStore(db *mongo.Database, logger *slog.Logger) *FoodStore {
	return &FoodStore{
		coll:   db.Collection(foodsCollection),
		logger: logger.With("component", "food_store"),
	}
}

// Create inserts the listing document verbatim and returns the assigned
// ObjectID as a hex string.
func (s *FoodStore) Create(ctx context.Context, doc store.Document) (string, error) {
	res, err := s.coll.InsertOne(ctx, doc)
	if err != nil {
		return "", store.NewStoreError("food", "create", "insert failed", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", store.NewStoreError("food", "create", "unexpected inserted id type", nil)
	}

	s.logger.DebugContext(ctx, "listing created", "food_id", oid.Hex())
	return oid.Hex(), nil
}

// List returns the listings matching the query's filter in its sort order.
func (s *FoodStore) List(ctx context.Context, q store.FoodQuery) ([]store.Document, error) {
	cursor, err := s.coll.Find(ctx, buildFoodFilter(q.Filter), buildFoodSort(q.Sort))
	if err != nil {
		return nil, store.NewStoreError("food", "list", "find failed", err)
	}

	docs := []store.Document{}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, store.NewStoreError("food", "list", "cursor drain failed", err)
	}
	return docs, nil
}

// ListAll returns every listing with no filter or sort.
func (s *FoodStore) ListAll(ctx context.Context) ([]store.Document, error) {
	return s.List(ctx, store.FoodQuery{})
}

// GetByID returns the listing with the given identifier.
func (s *FoodStore) GetByID(ctx context.Context, id string) (store.Document, error) {
	oid, err := objectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	var doc store.Document
	err = s.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, store.ErrFoodNotFound
		}
		return nil, store.NewStoreError("food", "get", "find failed", err)
	}
	return doc, nil
}

// ListByDonor returns the listings submitted by the given donor email.
func (s *FoodStore) ListByDonor(ctx context.Context, email string) ([]store.Document, error) {
	cursor, err := s.coll.Find(ctx, bson.M{"donarEmail": email})
	if err != nil {
		return nil, store.NewStoreError("food", "list_by_donor", "find failed", err)
	}

	docs := []store.Document{}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, store.NewStoreError("food", "list_by_donor", "cursor drain failed", err)
	}
	return docs, nil
}

// Update applies the given fields to the listing with a $set. The caller
// restricts fields to the updatable set.
func (s *FoodStore) Update(ctx context.Context, id string, fields store.Document) (store.UpdateCounts, error) {
	oid, err := objectIDFromHex(id)
	if err != nil {
		return store.UpdateCounts{}, err
	}

	res, err := s.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": fields})
	if err != nil {
		return store.UpdateCounts{}, store.NewStoreError("food", "update", "update failed", err)
	}

	return store.UpdateCounts{
		Matched:  res.MatchedCount,
		Modified: res.ModifiedCount,
	}, nil
}

// Delete removes the listing and returns the number of documents removed.
func (s *FoodStore) Delete(ctx context.Context, id string) (int64, error) {
	oid, err := objectIDFromHex(id)
	if err != nil {
		return 0, err
	}

	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return 0, store.NewStoreError("food", "delete", "delete failed", err)
	}

	s.logger.DebugContext(ctx, "listing delete attempted", "food_id", id, "deleted", res.DeletedCount)
	return res.DeletedCount, nil
}
