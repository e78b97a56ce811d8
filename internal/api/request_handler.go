package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/cookieter/cookieter-api/internal/api/shared"
	"github.com/cookieter/cookieter-api/internal/store"
)

// RequestHandler handles claim (food request) API requests.
type RequestHandler struct {
	requests store.RequestStore
}

// NewRequestHandler creates a new RequestHandler with the given
// dependencies.
func NewRequestHandler(requests store.RequestStore) *RequestHandler {
	return &RequestHandler{requests: requests}
}

// Create handles POST /food-request. The claim document is inserted
// verbatim; the store's unique index rejects a second claim for the same
// (foodId, requesterEmail) pair with a Conflict.
func (h *RequestHandler) Create(w http.ResponseWriter, r *http.Request) {
	var doc store.Document
	if err := shared.DecodeJSON(r, &doc); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	foodID, _ := doc["foodId"].(string)
	requesterEmail, _ := doc["requesterEmail"].(string)
	if foodID == "" || requesterEmail == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "foodId and requesterEmail are required")
		return
	}

	if !identityMatches(r, requesterEmail) {
		shared.RespondWithError(w, r, http.StatusForbidden, "Forbidden Access!")
		return
	}

	id, err := h.requests.Create(r.Context(), doc)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create food request")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, InsertResponse{
		Acknowledged: true,
		InsertedID:   id,
	})
}

// ListByRequester handles GET /find-food-request?email=... The queried
// email must match the authenticated identity; results carry only the
// requester display fields.
func (h *RequestHandler) ListByRequester(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if !identityMatches(r, email) {
		shared.RespondWithError(w, r, http.StatusForbidden, "Forbidden Access!")
		return
	}

	docs, err := h.requests.ListByRequester(r.Context(), email)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list food requests")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, docs)
}

// ListByDonorFood handles GET /manage-food-request?email=...&id=... The
// donor email must match the authenticated identity; results carry only
// the donor review fields.
func (h *RequestHandler) ListByDonorFood(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	email := params.Get("email")
	if !identityMatches(r, email) {
		shared.RespondWithError(w, r, http.StatusForbidden, "Forbidden Access!")
		return
	}

	docs, err := h.requests.ListByDonorFood(r.Context(), email, params.Get("id"))
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list food requests")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, docs)
}

// Delete handles DELETE /food-request/{id}.
func (h *RequestHandler) Delete(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.requests.Delete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		HandleAPIError(w, r, err, "Failed to delete food request")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, DeleteResponse{
		Acknowledged: true,
		DeletedCount: deleted,
	})
}

// Fulfill handles PATCH /manage-food-request?id=...&foodId=... It removes
// the listing and marks the claim Delivered as one atomic transition.
func (h *RequestHandler) Fulfill(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	requestID := params.Get("id")
	foodID := params.Get("foodId")
	if requestID == "" || foodID == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "id and foodId are required")
		return
	}

	counts, err := h.requests.Fulfill(r.Context(), requestID, foodID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to fulfill food request")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, UpdateResponse{
		Acknowledged:  true,
		MatchedCount:  counts.Matched,
		ModifiedCount: counts.Modified,
	})
}
