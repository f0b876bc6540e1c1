package model

import (
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Product represents a catalogue product as stored in the products table.
type Product struct {
	ID        string    `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Price     float64   `json:"price" db:"price"`
	Category  string    `json:"category" db:"category"`
	ImageURL  string    `json:"image_url" db:"image_url"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Category represents a catalogue category. Category.Name doubles as the
// string key referenced by Product.Category.
type Category struct {
	ID   string `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

// ProductDraft is the operator-supplied payload for creating or updating a
// product. Identity and timestamps are owned by the store.
type ProductDraft struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
	ImageURL string  `json:"image_url"`
}

// ValidateProductDraft checks a draft and returns one human-readable message
// per failed check. An empty slice means the draft is valid. It never
// returns an error value; callers decide whether a non-empty result blocks
// the write.
func ValidateProductDraft(d ProductDraft) []string {
	var errs []string
	if strings.TrimSpace(d.Name) == "" {
		errs = append(errs, "name is required")
	}
	if d.Price <= 0 {
		errs = append(errs, "price must be greater than 0")
	}
	if strings.TrimSpace(d.Category) == "" {
		errs = append(errs, "category is required")
	}
	if strings.TrimSpace(d.ImageURL) == "" {
		errs = append(errs, "an image must be uploaded")
	}
	return errs
}

// CategoryAll is the sentinel category value meaning "no category filter".
const CategoryAll = "all"

// ProductFilter holds the catalogue filter state. The zero value matches
// every product; all active criteria combine with AND.
type ProductFilter struct {
	// Category filters by exact match; "" or CategoryAll disables it.
	Category string
	// Search filters by case-insensitive substring match on the product name.
	Search string
	// MinPrice and MaxPrice are inclusive bounds; nil disables each.
	MinPrice *float64
	MaxPrice *float64
}

// HasCategory reports whether the category filter is active.
func (f ProductFilter) HasCategory() bool {
	return f.Category != "" && f.Category != CategoryAll
}

// ParseProductFilter derives a filter from URL query parameters. Absent,
// empty and "all" values all collapse to "no filter"; malformed price bounds
// are ignored rather than rejected.
func ParseProductFilter(values url.Values) ProductFilter {
	f := ProductFilter{
		Category: values.Get("category"),
		Search:   strings.TrimSpace(values.Get("search")),
	}
	if f.Category == CategoryAll {
		f.Category = ""
	}
	if v, err := strconv.ParseFloat(values.Get("min"), 64); err == nil {
		f.MinPrice = &v
	}
	if v, err := strconv.ParseFloat(values.Get("max"), 64); err == nil {
		f.MaxPrice = &v
	}
	return f
}

// QueryValues renders the filter back into URL query parameters. Inactive
// fields are omitted, so the mapping is best-effort rather than invertible.
func (f ProductFilter) QueryValues() url.Values {
	values := url.Values{}
	if f.HasCategory() {
		values.Set("category", f.Category)
	}
	if f.Search != "" {
		values.Set("search", f.Search)
	}
	if f.MinPrice != nil {
		values.Set("min", strconv.FormatFloat(*f.MinPrice, 'f', -1, 64))
	}
	if f.MaxPrice != nil {
		values.Set("max", strconv.FormatFloat(*f.MaxPrice, 'f', -1, 64))
	}
	return values
}

// CatalogStats is the admin dashboard summary. Both counts come from the
// store; no partial summary is ever produced.
type CatalogStats struct {
	TotalProducts   int64 `json:"total_products"`
	TotalCategories int64 `json:"total_categories"`
}
