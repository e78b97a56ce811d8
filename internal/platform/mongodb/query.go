package mongodb

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/cookieter/cookieter-api/internal/store"
)

// Collection names used by the web client's original data set.
const (
	foodsCollection    = "foods"
	requestsCollection = "foodRequest"
)

// buildFoodFilter translates the tagged filter variant into a BSON filter
// document. Search terms are quoted so regex metacharacters in user input
// match literally.
func buildFoodFilter(f store.FoodFilter) bson.M {
	switch f.Kind {
	case store.FilterByCategory:
		return bson.M{"category": f.Category}
	case store.FilterBySearch:
		return bson.M{"foodName": primitive.Regex{
			Pattern: regexp.QuoteMeta(f.Search),
			Options: "i",
		}}
	default:
		return bson.M{}
	}
}

// buildFoodSort translates the sort spec into find options. SortNone
// returns options with no sort set.
func buildFoodSort(s store.FoodSort) *options.FindOptions {
	opts := options.Find()

	var key string
	switch s.Field {
	case store.SortByExpireDate:
		key = "expiredDate"
	case store.SortByQuantity:
		key = "foodQuantity"
	default:
		return opts
	}

	direction := -1
	if s.Ascending {
		direction = 1
	}
	return opts.SetSort(bson.D{{Key: key, Value: direction}})
}

// requesterProjection is the fixed display subset returned to a requester
// listing their own claims.
var requesterProjection = bson.D{
	{Key: "foodName", Value: 1},
	{Key: "foodImage", Value: 1},
	{Key: "donarName", Value: 1},
	{Key: "pickUpLocation", Value: 1},
	{Key: "expiredDate", Value: 1},
	{Key: "requestDate", Value: 1},
	{Key: "donateMoney", Value: 1},
	{Key: "status", Value: 1},
}

// donorProjection is the fixed review subset returned to a donor listing
// the claims against one of their listings.
var donorProjection = bson.D{
	{Key: "requesterName", Value: 1},
	{Key: "requesterEmail", Value: 1},
	{Key: "requesterImage", Value: 1},
	{Key: "requestDate", Value: 1},
	{Key: "status", Value: 1},
	{Key: "additionalNotes", Value: 1},
	{Key: "foodId", Value: 1},
}
