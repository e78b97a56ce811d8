package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewFoodFilter(t *testing.T) {
	tests := []struct {
		name     string
		category string
		search   string
		want     FoodFilter
	}{
		{
			name: "no parameters",
			want: FoodFilter{Kind: FilterNone},
		},
		{
			name:     "category only",
			category: "Vegetables",
			want:     FoodFilter{Kind: FilterByCategory, Category: "Vegetables"},
		},
		{
			name:     "category with And token normalized",
			category: "DairyAndEggs",
			want:     FoodFilter{Kind: FilterByCategory, Category: "Dairy&Eggs"},
		},
		{
			name:   "search only",
			search: "mil",
			want:   FoodFilter{Kind: FilterBySearch, Search: "mil"},
		},
		{
			name:     "search overrides category",
			category: "DairyAndEggs",
			search:   "milk",
			want:     FoodFilter{Kind: FilterBySearch, Search: "milk"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewFoodFilter(tt.category, tt.search))
		})
	}
}

func TestNormalizeCategory(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"DairyAndEggs", "Dairy&Eggs"},
		{"DairyandEggs", "Dairy&Eggs"},
		{"Vegetables", "Vegetables"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeCategory(tt.in), "input %q", tt.in)
	}
}

func TestNewFoodSort(t *testing.T) {
	tests := []struct {
		name     string
		order    string
		sortItem string
		want     FoodSort
	}{
		{
			name: "no order means unsorted",
			want: FoodSort{Field: SortNone},
		},
		{
			name:     "ascending by expiry date",
			order:    "asc",
			sortItem: "expiredDate",
			want:     FoodSort{Field: SortByExpireDate, Ascending: true},
		},
		{
			name:     "descending by expiry date",
			order:    "desc",
			sortItem: "expiredDate",
			want:     FoodSort{Field: SortByExpireDate},
		},
		{
			name:     "ascending by quantity",
			order:    "asc",
			sortItem: "foodQuantity",
			want:     FoodSort{Field: SortByQuantity, Ascending: true},
		},
		{
			name:     "unrecognized sort item yields unsorted",
			order:    "asc",
			sortItem: "foodName",
			want:     FoodSort{Field: SortNone},
		},
		{
			name:     "any non-asc order sorts descending",
			order:    "bananas",
			sortItem: "foodQuantity",
			want:     FoodSort{Field: SortByQuantity},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewFoodSort(tt.order, tt.sortItem))
		})
	}
}
