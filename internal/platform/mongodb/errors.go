package mongodb

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/cookieter/cookieter-api/internal/store"
)

// objectIDFromHex parses a caller-supplied identifier, mapping parse
// failures onto store.ErrInvalidID so handlers can answer 400 instead of
// leaking driver errors.
func objectIDFromHex(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", store.ErrInvalidID, id)
	}
	return oid, nil
}
