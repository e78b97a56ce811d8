package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cookieter/cookieter-api/internal/api/shared"
	"github.com/cookieter/cookieter-api/internal/mocks"
	"github.com/cookieter/cookieter-api/internal/store"
)

// withIdentity attaches an authenticated identity email to the request,
// the way the auth middleware does.
func withIdentity(req *http.Request, email string) *http.Request {
	ctx := context.WithValue(req.Context(), shared.IdentityEmailContextKey, email)
	return req.WithContext(ctx)
}

// withURLParam attaches a chi route parameter to the request.
func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestFoodHandler_Create(t *testing.T) {
	t.Parallel()

	var captured store.Document
	foods := &mocks.MockFoodStore{
		CreateFn: func(ctx context.Context, doc store.Document) (string, error) {
			captured = doc
			return "65f0c9d1ab12cd34ef56ab78", nil
		},
	}
	handler := NewFoodHandler(foods)

	body := `{"foodName":"Milk","foodQuantity":2,"anyExtraField":"kept"}`
	req := httptest.NewRequest("POST", "/add-food", strings.NewReader(body))
	recorder := httptest.NewRecorder()

	handler.Create(recorder, req)

	require.Equal(t, http.StatusCreated, recorder.Code)

	var resp InsertResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	assert.True(t, resp.Acknowledged)
	assert.Equal(t, "65f0c9d1ab12cd34ef56ab78", resp.InsertedID)

	// Insert is verbatim: arbitrary fields pass through untouched.
	assert.Equal(t, "Milk", captured["foodName"])
	assert.Equal(t, "kept", captured["anyExtraField"])
}

func TestFoodHandler_Create_InvalidJSON(t *testing.T) {
	t.Parallel()

	handler := NewFoodHandler(&mocks.MockFoodStore{})

	req := httptest.NewRequest("POST", "/add-food", strings.NewReader(`{`))
	recorder := httptest.NewRecorder()

	handler.Create(recorder, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestFoodHandler_List_QueryConstruction(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		rawQuery string
		want     store.FoodQuery
	}{
		{
			name:     "no parameters",
			rawQuery: "",
			want:     store.FoodQuery{},
		},
		{
			name:     "category normalized",
			rawQuery: "category=DairyAndEggs",
			want: store.FoodQuery{
				Filter: store.FoodFilter{Kind: store.FilterByCategory, Category: "Dairy&Eggs"},
			},
		},
		{
			name:     "search overrides category",
			rawQuery: "category=Vegetables&search=mil",
			want: store.FoodQuery{
				Filter: store.FoodFilter{Kind: store.FilterBySearch, Search: "mil"},
			},
		},
		{
			name:     "sort ascending by expiry",
			rawQuery: "sort=asc&sortItem=expiredDate",
			want: store.FoodQuery{
				Sort: store.FoodSort{Field: store.SortByExpireDate, Ascending: true},
			},
		},
		{
			name:     "sort descending by quantity",
			rawQuery: "sort=desc&sortItem=foodQuantity",
			want: store.FoodQuery{
				Sort: store.FoodSort{Field: store.SortByQuantity},
			},
		},
		{
			name:     "unrecognized sort item ignored",
			rawQuery: "sort=asc&sortItem=foodName",
			want:     store.FoodQuery{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var captured store.FoodQuery
			foods := &mocks.MockFoodStore{
				ListFn: func(ctx context.Context, q store.FoodQuery) ([]store.Document, error) {
					captured = q
					return []store.Document{}, nil
				},
			}
			handler := NewFoodHandler(foods)

			req := httptest.NewRequest("GET", "/foods?"+tt.rawQuery, nil)
			recorder := httptest.NewRecorder()

			handler.List(recorder, req)

			require.Equal(t, http.StatusOK, recorder.Code)
			assert.Equal(t, tt.want, captured)
		})
	}
}

func TestFoodHandler_GetByID_NotFound(t *testing.T) {
	t.Parallel()

	foods := &mocks.MockFoodStore{Err: store.ErrFoodNotFound}
	handler := NewFoodHandler(foods)

	req := withURLParam(httptest.NewRequest("GET", "/food/65f0c9d1ab12cd34ef56ab78", nil),
		"id", "65f0c9d1ab12cd34ef56ab78")
	recorder := httptest.NewRecorder()

	handler.GetByID(recorder, req)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestFoodHandler_GetByID_InvalidID(t *testing.T) {
	t.Parallel()

	foods := &mocks.MockFoodStore{Err: store.ErrInvalidID}
	handler := NewFoodHandler(foods)

	req := withURLParam(httptest.NewRequest("GET", "/food/nope", nil), "id", "nope")
	recorder := httptest.NewRecorder()

	handler.GetByID(recorder, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestFoodHandler_ListByDonor_OwnershipEnforced(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		identity       string
		queriedEmail   string
		expectedStatus int
	}{
		{
			name:           "matching identity",
			identity:       "donor@example.com",
			queriedEmail:   "donor@example.com",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "mismatched identity",
			identity:       "other@example.com",
			queriedEmail:   "donor@example.com",
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "empty email parameter",
			identity:       "donor@example.com",
			queriedEmail:   "",
			expectedStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewFoodHandler(&mocks.MockFoodStore{Docs: []store.Document{}})

			req := httptest.NewRequest("GET", "/manage-food?email="+tt.queriedEmail, nil)
			req = withIdentity(req, tt.identity)
			recorder := httptest.NewRecorder()

			handler.ListByDonor(recorder, req)

			assert.Equal(t, tt.expectedStatus, recorder.Code)
		})
	}
}

func TestFoodHandler_Update_RestrictsFieldSet(t *testing.T) {
	t.Parallel()

	var captured store.Document
	foods := &mocks.MockFoodStore{
		UpdateFn: func(ctx context.Context, id string, fields store.Document) (store.UpdateCounts, error) {
			captured = fields
			return store.UpdateCounts{Matched: 1, Modified: 1}, nil
		},
	}
	handler := NewFoodHandler(foods)

	body := `{
		"foodName": "Bread",
		"foodQuantity": 3,
		"donarEmail": "attacker@example.com",
		"status": "Delivered",
		"_id": "overridden"
	}`
	req := withURLParam(
		httptest.NewRequest("PATCH", "/update-mfood/65f0c9d1ab12cd34ef56ab78", strings.NewReader(body)),
		"id", "65f0c9d1ab12cd34ef56ab78")
	recorder := httptest.NewRecorder()

	handler.Update(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)

	assert.Equal(t, "Bread", captured["foodName"])
	assert.Equal(t, float64(3), captured["foodQuantity"])
	// Fields outside the fixed updatable set never reach the store.
	assert.NotContains(t, captured, "donarEmail")
	assert.NotContains(t, captured, "status")
	assert.NotContains(t, captured, "_id")

	var resp UpdateResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	assert.Equal(t, int64(1), resp.MatchedCount)
}

func TestFoodHandler_Delete_AbsentIsZeroCount(t *testing.T) {
	t.Parallel()

	handler := NewFoodHandler(&mocks.MockFoodStore{Deleted: 0})

	req := withURLParam(
		httptest.NewRequest("DELETE", "/manage-food/65f0c9d1ab12cd34ef56ab78", nil),
		"id", "65f0c9d1ab12cd34ef56ab78")
	recorder := httptest.NewRecorder()

	handler.Delete(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)

	var resp DeleteResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	assert.True(t, resp.Acknowledged)
	assert.Zero(t, resp.DeletedCount)
}

func TestFoodHandler_List_StoreFailureSendsResponse(t *testing.T) {
	t.Parallel()

	handler := NewFoodHandler(&mocks.MockFoodStore{Err: assert.AnError})

	req := httptest.NewRequest("GET", "/foods", nil)
	recorder := httptest.NewRecorder()

	handler.List(recorder, req)

	// Failures never leave the client hanging.
	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.NotEmpty(t, recorder.Body.String())
}
