package mongodb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/cookieter/cookieter-api/internal/store"
)

func TestBuildFoodFilter(t *testing.T) {
	t.Run("none matches everything", func(t *testing.T) {
		assert.Equal(t, bson.M{}, buildFoodFilter(store.FoodFilter{Kind: store.FilterNone}))
	})

	t.Run("category is an exact match", func(t *testing.T) {
		filter := buildFoodFilter(store.FoodFilter{
			Kind:     store.FilterByCategory,
			Category: "Dairy&Eggs",
		})
		assert.Equal(t, bson.M{"category": "Dairy&Eggs"}, filter)
	})

	t.Run("search is a case-insensitive regex on foodName", func(t *testing.T) {
		filter := buildFoodFilter(store.FoodFilter{
			Kind:   store.FilterBySearch,
			Search: "mil",
		})
		regex, ok := filter["foodName"].(primitive.Regex)
		require.True(t, ok)
		assert.Equal(t, "mil", regex.Pattern)
		assert.Equal(t, "i", regex.Options)
	})

	t.Run("search metacharacters are quoted", func(t *testing.T) {
		filter := buildFoodFilter(store.FoodFilter{
			Kind:   store.FilterBySearch,
			Search: "a.c",
		})
		regex := filter["foodName"].(primitive.Regex)
		assert.Equal(t, `a\.c`, regex.Pattern)
	})
}

func TestBuildFoodSort(t *testing.T) {
	tests := []struct {
		name string
		sort store.FoodSort
		want bson.D
	}{
		{
			name: "no sort",
			sort: store.FoodSort{Field: store.SortNone},
			want: nil,
		},
		{
			name: "expiry ascending",
			sort: store.FoodSort{Field: store.SortByExpireDate, Ascending: true},
			want: bson.D{{Key: "expiredDate", Value: 1}},
		},
		{
			name: "expiry descending",
			sort: store.FoodSort{Field: store.SortByExpireDate},
			want: bson.D{{Key: "expiredDate", Value: -1}},
		},
		{
			name: "quantity ascending",
			sort: store.FoodSort{Field: store.SortByQuantity, Ascending: true},
			want: bson.D{{Key: "foodQuantity", Value: 1}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := buildFoodSort(tt.sort)
			if tt.want == nil {
				assert.Nil(t, opts.Sort)
				return
			}
			assert.Equal(t, tt.want, opts.Sort)
		})
	}
}

func TestObjectIDFromHex(t *testing.T) {
	oid := primitive.NewObjectID()

	t.Run("valid hex round-trips", func(t *testing.T) {
		got, err := objectIDFromHex(oid.Hex())
		require.NoError(t, err)
		assert.Equal(t, oid, got)
	})

	t.Run("invalid hex maps to ErrInvalidID", func(t *testing.T) {
		_, err := objectIDFromHex("not-an-object-id")
		assert.ErrorIs(t, err, store.ErrInvalidID)
	})
}

func TestProjections_FixedFieldSets(t *testing.T) {
	requesterFields := make([]string, 0, len(requesterProjection))
	for _, e := range requesterProjection {
		requesterFields = append(requesterFields, e.Key)
	}
	assert.ElementsMatch(t, []string{
		"foodName", "foodImage", "donarName", "pickUpLocation",
		"expiredDate", "requestDate", "donateMoney", "status",
	}, requesterFields)

	donorFields := make([]string, 0, len(donorProjection))
	for _, e := range donorProjection {
		donorFields = append(donorFields, e.Key)
	}
	assert.ElementsMatch(t, []string{
		"requesterName", "requesterEmail", "requesterImage",
		"requestDate", "status", "additionalNotes", "foodId",
	}, donorFields)
}
