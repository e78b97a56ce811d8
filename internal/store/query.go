package store

import (
	"regexp"
	"strings"
)

// FilterKind tags the listing filter variant. Exactly one filter applies to
// a query; when both a search term and a category are supplied, the search
// term wins.
type FilterKind int

const (
	// FilterNone matches every listing.
	FilterNone FilterKind = iota

	// FilterByCategory matches listings whose category equals the
	// normalized category string exactly.
	FilterByCategory

	// FilterBySearch matches listings whose food name contains the search
	// term, case-insensitively.
	FilterBySearch
)

// FoodFilter is the tagged filter variant for listing queries.
type FoodFilter struct {
	Kind     FilterKind
	Category string // set when Kind == FilterByCategory
	Search   string // set when Kind == FilterBySearch
}

// SortField names the single listing field a query may sort by.
type SortField int

const (
	// SortNone leaves the result order up to the store.
	SortNone SortField = iota

	// SortByExpireDate sorts by the listing expiry date.
	SortByExpireDate

	// SortByQuantity sorts by the listing quantity.
	SortByQuantity
)

// FoodSort describes the requested result ordering.
type FoodSort struct {
	Field     SortField
	Ascending bool
}

// FoodQuery combines the filter and sort applied to a listing list request.
type FoodQuery struct {
	Filter FoodFilter
	Sort   FoodSort
}

// NewFoodFilter builds the filter variant from raw query parameters,
// applying the single priority rule: a non-empty search term overrides any
// category. Categories arrive from the web client with "&" spelled out as
// the literal token "And" ("DairyAndEggs"), which is normalized back to the
// stored form ("Dairy&Eggs").
func NewFoodFilter(category, search string) FoodFilter {
	if search != "" {
		return FoodFilter{Kind: FilterBySearch, Search: search}
	}
	if category != "" {
		return FoodFilter{Kind: FilterByCategory, Category: NormalizeCategory(category)}
	}
	return FoodFilter{Kind: FilterNone}
}

// NewFoodSort builds the sort spec from raw query parameters. Only
// "expiredDate" and "foodQuantity" are sortable; any other sortItem, or an
// empty order, yields an unsorted query. Any order other than "asc" sorts
// descending.
func NewFoodSort(order, sortItem string) FoodSort {
	if order == "" {
		return FoodSort{Field: SortNone}
	}

	var field SortField
	switch sortItem {
	case "expiredDate":
		field = SortByExpireDate
	case "foodQuantity":
		field = SortByQuantity
	default:
		return FoodSort{Field: SortNone}
	}

	return FoodSort{Field: field, Ascending: order == "asc"}
}

var categoryAndToken = regexp.MustCompile(`(?i)and`)

// NormalizeCategory replaces every literal "And" token (any casing) with
// "&", so "DairyAndEggs" matches the stored category "Dairy&Eggs". Values
// without the token pass through unchanged.
func NormalizeCategory(category string) string {
	if !strings.Contains(strings.ToLower(category), "and") {
		return category
	}
	return categoryAndToken.ReplaceAllString(category, "&")
}
