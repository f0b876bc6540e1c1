package model

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateProductDraft(t *testing.T) {
	tests := []struct {
		name       string
		draft      ProductDraft
		errorCount int
	}{
		{
			name:       "Empty draft fails every check",
			draft:      ProductDraft{},
			errorCount: 4,
		},
		{
			name: "Valid draft yields no errors",
			draft: ProductDraft{
				Name:     "Mug",
				Price:    10,
				Category: "Kitchen",
				ImageURL: "http://x/y.png",
			},
			errorCount: 0,
		},
		{
			name: "Whitespace-only name and category fail",
			draft: ProductDraft{
				Name:     "   ",
				Price:    10,
				Category: "\t",
				ImageURL: "http://x/y.png",
			},
			errorCount: 2,
		},
		{
			name: "Zero price fails",
			draft: ProductDraft{
				Name:     "Mug",
				Price:    0,
				Category: "Kitchen",
				ImageURL: "http://x/y.png",
			},
			errorCount: 1,
		},
		{
			name: "Negative price fails",
			draft: ProductDraft{
				Name:     "Mug",
				Price:    -5,
				Category: "Kitchen",
				ImageURL: "http://x/y.png",
			},
			errorCount: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateProductDraft(tt.draft)
			assert.Len(t, errs, tt.errorCount)
		})
	}
}

func TestParseProductFilter(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		expected ProductFilter
	}{
		{
			name:     "Empty query matches everything",
			query:    "",
			expected: ProductFilter{},
		},
		{
			name:     "All sentinel collapses to no category filter",
			query:    "category=all",
			expected: ProductFilter{},
		},
		{
			name:     "Category and search",
			query:    "category=Cocina&search=mug",
			expected: ProductFilter{Category: "Cocina", Search: "mug"},
		},
		{
			name:     "Search is trimmed",
			query:    "search=+mug+",
			expected: ProductFilter{Search: "mug"},
		},
		{
			name:     "Malformed price bounds are ignored",
			query:    "min=abc&max=",
			expected: ProductFilter{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, err := url.ParseQuery(tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, ParseProductFilter(values))
		})
	}
}

func TestParseProductFilter_PriceBounds(t *testing.T) {
	values, err := url.ParseQuery("min=10000&max=50000")
	require.NoError(t, err)

	f := ParseProductFilter(values)
	require.NotNil(t, f.MinPrice)
	require.NotNil(t, f.MaxPrice)
	assert.Equal(t, 10000.0, *f.MinPrice)
	assert.Equal(t, 50000.0, *f.MaxPrice)
}

func TestProductFilter_QueryValues(t *testing.T) {
	min := 10000.0

	tests := []struct {
		name     string
		filter   ProductFilter
		expected string
	}{
		{
			name:     "Zero filter writes nothing",
			filter:   ProductFilter{},
			expected: "",
		},
		{
			name:     "All sentinel is omitted",
			filter:   ProductFilter{Category: CategoryAll},
			expected: "",
		},
		{
			name:     "Active fields are written",
			filter:   ProductFilter{Category: "Cocina", Search: "mug", MinPrice: &min},
			expected: "category=Cocina&min=10000&search=mug",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.filter.QueryValues().Encode())
		})
	}
}

// Parsing what was written must land on the same filter state.
func TestProductFilter_SyncRoundTrip(t *testing.T) {
	min, max := 5000.0, 90000.0
	f := ProductFilter{Category: "Hogar", Search: "lámpara", MinPrice: &min, MaxPrice: &max}

	assert.Equal(t, f, ParseProductFilter(f.QueryValues()))
}
