package mongodb

import (
	"context"
	"errors"
	"log/slog"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/cookieter/cookieter-api/internal/store"
)

// StatusDelivered is the terminal claim status set by the fulfillment
// transition. A claim with no explicit status is pending.
const StatusDelivered = "Delivered"

// RequestStore implements store.RequestStore against the foodRequest
// collection. Fulfillment also touches the foods collection, inside a
// multi-document transaction.
type RequestStore struct {
	requests *mongo.Collection
	foods    *mongo.Collection
	client   *mongo.Client
	logger   *slog.Logger
}

// Ensure RequestStore implements the store.RequestStore interface
var _ store.RequestStore = (*RequestStore)(nil)

// NewRequestStore creates a new RequestStore backed by the given database.
func NewRequestStore(db *mongo.Database, logger *slog.Logger) *RequestStore {
	return &RequestStore{
		requests: db.Collection(requestsCollection),
		foods:    db.Collection(foodsCollection),
		client:   db.Client(),
		logger:   logger.With("component", "request_store"),
	}
}

// EnsureIndexes creates the unique compound index on
// (foodId, requesterEmail). The index is what enforces the at-most-one
// claim invariant; application code never does a read-before-write check.
func (s *RequestStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.requests.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "foodId", Value: 1},
			{Key: "requesterEmail", Value: 1},
		},
		Options: options.Index().
			SetUnique(true).
			SetName("uniq_food_requester"),
	})
	if err != nil {
		return store.NewStoreError("food request", "ensure_indexes", "index creation failed", err)
	}
	return nil
}

// Create inserts the claim document verbatim. A duplicate-key error from
// the unique index is reported as store.ErrDuplicateRequest.
func (s *RequestStore) Create(ctx context.Context, doc store.Document) (string, error) {
	res, err := s.requests.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", store.ErrDuplicateRequest
		}
		return "", store.NewStoreError("food request", "create", "insert failed", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", store.NewStoreError("food request", "create", "unexpected inserted id type", nil)
	}

	s.logger.DebugContext(ctx, "claim created", "request_id", oid.Hex())
	return oid.Hex(), nil
}

// ListByRequester returns the requester's claims projected to the display
// subset.
func (s *RequestStore) ListByRequester(ctx context.Context, email string) ([]store.Document, error) {
	cursor, err := s.requests.Find(ctx,
		bson.M{"requesterEmail": email},
		options.Find().SetProjection(requesterProjection))
	if err != nil {
		return nil, store.NewStoreError("food request", "list_by_requester", "find failed", err)
	}

	docs := []store.Document{}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, store.NewStoreError("food request", "list_by_requester", "cursor drain failed", err)
	}
	return docs, nil
}

// ListByDonorFood returns the claims against one of the donor's listings
// projected to the review subset.
func (s *RequestStore) ListByDonorFood(ctx context.Context, donorEmail, foodID string) ([]store.Document, error) {
	cursor, err := s.requests.Find(ctx,
		bson.M{"donarEmail": donorEmail, "foodId": foodID},
		options.Find().SetProjection(donorProjection))
	if err != nil {
		return nil, store.NewStoreError("food request", "list_by_donor_food", "find failed", err)
	}

	docs := []store.Document{}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, store.NewStoreError("food request", "list_by_donor_food", "cursor drain failed", err)
	}
	return docs, nil
}

// Delete removes the claim and returns the number of documents removed.
func (s *RequestStore) Delete(ctx context.Context, id string) (int64, error) {
	oid, err := objectIDFromHex(id)
	if err != nil {
		return 0, err
	}

	res, err := s.requests.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return 0, store.NewStoreError("food request", "delete", "delete failed", err)
	}
	return res.DeletedCount, nil
}

// Fulfill deletes the listing and marks the claim Delivered inside one
// transaction. If the claim does not exist the transaction aborts, which
// also undoes the listing delete.
func (s *RequestStore) Fulfill(ctx context.Context, requestID, foodID string) (store.UpdateCounts, error) {
	requestOID, err := objectIDFromHex(requestID)
	if err != nil {
		return store.UpdateCounts{}, err
	}
	foodOID, err := objectIDFromHex(foodID)
	if err != nil {
		return store.UpdateCounts{}, err
	}

	session, err := s.client.StartSession()
	if err != nil {
		return store.UpdateCounts{}, store.NewStoreError("food request", "fulfill", "session start failed", err)
	}
	defer session.EndSession(ctx)

	result, err := session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		if _, err := s.foods.DeleteOne(sc, bson.M{"_id": foodOID}); err != nil {
			return nil, err
		}

		res, err := s.requests.UpdateOne(sc,
			bson.M{"_id": requestOID},
			bson.M{"$set": bson.M{"status": StatusDelivered}})
		if err != nil {
			return nil, err
		}
		if res.MatchedCount == 0 {
			return nil, store.ErrRequestNotFound
		}

		return store.UpdateCounts{
			Matched:  res.MatchedCount,
			Modified: res.ModifiedCount,
		}, nil
	})
	if err != nil {
		if errors.Is(err, store.ErrRequestNotFound) {
			return store.UpdateCounts{}, store.ErrRequestNotFound
		}
		return store.UpdateCounts{}, store.NewStoreError(
			"food request", "fulfill", store.ErrTransactionFailed.Error(), err)
	}

	counts, ok := result.(store.UpdateCounts)
	if !ok {
		return store.UpdateCounts{}, store.NewStoreError("food request", "fulfill", "unexpected transaction result", nil)
	}

	s.logger.InfoContext(ctx, "claim fulfilled",
		"request_id", requestID,
		"food_id", foodID)
	return counts, nil
}
