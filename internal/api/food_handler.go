package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/cookieter/cookieter-api/internal/api/middleware"
	"github.com/cookieter/cookieter-api/internal/api/shared"
	"github.com/cookieter/cookieter-api/internal/store"
)

// allowedUpdateFields is the fixed field set an update may overwrite.
// Fields outside this set are left untouched even if present in the
// request body.
var allowedUpdateFields = []string{
	"foodName",
	"foodImage",
	"foodQuantity",
	"expiredDate",
	"pickUpLocation",
	"category",
	"additionalNotes",
}

// FoodHandler handles donation listing API requests.
type FoodHandler struct {
	foods store.FoodStore
}

// NewFoodHandler creates a new FoodHandler with the given dependencies.
func NewFoodHandler(foods store.FoodStore) *FoodHandler {
	return &FoodHandler{foods: foods}
}

// Create handles POST /add-food. The submitted document is inserted
// verbatim; any shape is accepted.
func (h *FoodHandler) Create(w http.ResponseWriter, r *http.Request) {
	var doc store.Document
	if err := shared.DecodeJSON(r, &doc); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	id, err := h.foods.Create(r.Context(), doc)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create food")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, InsertResponse{
		Acknowledged: true,
		InsertedID:   id,
	})
}

// List handles GET /foods with optional category, search, sort, and
// sortItem query parameters. Search overrides category; one sort field is
// honored per request.
func (h *FoodHandler) List(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	q := store.FoodQuery{
		Filter: store.NewFoodFilter(params.Get("category"), params.Get("search")),
		Sort:   store.NewFoodSort(params.Get("sort"), params.Get("sortItem")),
	}

	docs, err := h.foods.List(r.Context(), q)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list foods")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, docs)
}

// ListAll handles GET /find-foods, returning every listing.
func (h *FoodHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	docs, err := h.foods.ListAll(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list foods")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, docs)
}

// GetByID handles GET /food/{id}. An absent listing is a 404.
func (h *FoodHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	doc, err := h.foods.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get food")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, doc)
}

// ListByDonor handles GET /manage-food?email=... The queried email must
// match the authenticated identity.
func (h *FoodHandler) ListByDonor(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if !identityMatches(r, email) {
		shared.RespondWithError(w, r, http.StatusForbidden, "Forbidden Access!")
		return
	}

	docs, err := h.foods.ListByDonor(r.Context(), email)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list foods")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, docs)
}

// Update handles PATCH /update-mfood/{id}. Only the fixed updatable field
// set is applied; everything else in the body is ignored.
func (h *FoodHandler) Update(w http.ResponseWriter, r *http.Request) {
	var body store.Document
	if err := shared.DecodeJSON(r, &body); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	fields := store.Document{}
	for _, key := range allowedUpdateFields {
		if value, ok := body[key]; ok {
			fields[key] = value
		}
	}

	counts, err := h.foods.Update(r.Context(), chi.URLParam(r, "id"), fields)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to update food")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, UpdateResponse{
		Acknowledged:  true,
		MatchedCount:  counts.Matched,
		ModifiedCount: counts.Modified,
	})
}

// Delete handles DELETE /manage-food/{id}. Deleting an absent listing
// acknowledges with a zero count.
func (h *FoodHandler) Delete(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.foods.Delete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		HandleAPIError(w, r, err, "Failed to delete food")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, DeleteResponse{
		Acknowledged: true,
		DeletedCount: deleted,
	})
}

// identityMatches reports whether the authenticated identity email equals
// the email the request is scoped to.
func identityMatches(r *http.Request, email string) bool {
	identity, ok := middleware.GetIdentityEmail(r)
	return ok && email != "" && identity == email
}
