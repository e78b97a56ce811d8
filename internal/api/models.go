package api

// Common request/response structures. The acknowledgment shapes mirror the
// raw driver results the web client already consumes (insertedId,
// deletedCount, matchedCount/modifiedCount).

// IssueTokenRequest defines the identity payload for the credential
// issuance endpoint.
type IssueTokenRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// SuccessResponse acknowledges credential issuance and termination.
type SuccessResponse struct {
	Success bool `json:"success"`
}

// InsertResponse acknowledges a document insert.
type InsertResponse struct {
	Acknowledged bool   `json:"acknowledged"`
	InsertedID   string `json:"insertedId"`
}

// DeleteResponse acknowledges a delete with the number of documents
// removed (0 or 1).
type DeleteResponse struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}

// UpdateResponse acknowledges an update.
type UpdateResponse struct {
	Acknowledged  bool  `json:"acknowledged"`
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}
