package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
)

// Document is a schema-less listing or claim document. Inserts are
// verbatim: whatever shape the client submits is what the store keeps and
// returns.
type Document = bson.M

// UpdateCounts reports the outcome of an update operation.
type UpdateCounts struct {
	Matched  int64
	Modified int64
}

// FoodStore defines the interface for donation listing persistence.
type FoodStore interface {
	// Create inserts the document verbatim and returns the store-assigned
	// identifier as a hex string. No shape validation is performed.
	Create(ctx context.Context, doc Document) (string, error)

	// List returns the listings matching the query's filter, in the
	// query's sort order. An empty filter matches everything; SortNone
	// leaves the order unspecified.
	List(ctx context.Context, q FoodQuery) ([]Document, error)

	// ListAll returns every listing with no filter or sort.
	ListAll(ctx context.Context) ([]Document, error)

	// GetByID returns the listing with the given identifier.
	// Returns ErrFoodNotFound if it does not exist and ErrInvalidID if the
	// identifier is not a valid ObjectID hex string.
	GetByID(ctx context.Context, id string) (Document, error)

	// ListByDonor returns the listings whose donarEmail equals email.
	ListByDonor(ctx context.Context, email string) ([]Document, error)

	// Update overwrites the given fields on the listing. Callers restrict
	// fields to the updatable set; the store applies them as-is.
	// A missing listing is reported through the returned counts
	// (Matched == 0), not as an error.
	Update(ctx context.Context, id string, fields Document) (UpdateCounts, error)

	// Delete removes the listing with the given identifier and returns the
	// number of documents removed (0 or 1). Deleting an absent listing is
	// not an error.
	Delete(ctx context.Context, id string) (int64, error)
}
