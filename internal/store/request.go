package store

import "context"

// RequestStore defines the interface for claim (food request) persistence.
type RequestStore interface {
	// Create inserts the claim document verbatim and returns the
	// store-assigned identifier as a hex string.
	// Returns ErrDuplicateRequest when a claim with the same
	// (foodId, requesterEmail) pair already exists; the uniqueness
	// invariant is enforced by the store's unique index, not by a
	// read-before-write.
	Create(ctx context.Context, doc Document) (string, error)

	// ListByRequester returns the claims whose requesterEmail equals
	// email, projected down to the requester's display fields: foodName,
	// foodImage, donarName, pickUpLocation, expiredDate, requestDate,
	// donateMoney, status.
	ListByRequester(ctx context.Context, email string) ([]Document, error)

	// ListByDonorFood returns the claims against the donor's listing,
	// projected down to the donor's review fields: requesterName,
	// requesterEmail, requesterImage, requestDate, status,
	// additionalNotes, foodId.
	ListByDonorFood(ctx context.Context, donorEmail, foodID string) ([]Document, error)

	// Delete removes the claim with the given identifier and returns the
	// number of documents removed (0 or 1).
	Delete(ctx context.Context, id string) (int64, error)

	// Fulfill finalizes a claim: it deletes the referenced listing and
	// sets the claim's status to "Delivered" as a single atomic
	// transaction. If the claim does not exist the transaction is aborted,
	// the listing is left in place, and ErrRequestNotFound is returned.
	// On any other failure neither change is observable.
	Fulfill(ctx context.Context, requestID, foodID string) (UpdateCounts, error)
}
