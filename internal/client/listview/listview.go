// Package listview implements the generic list screen behavior shared by
// every entity: hold the full fetched collection, apply a free-text search
// and exact-match categorical filters client-side, and paginate the result.
package listview

import (
	"context"
	"strings"
)

// DefaultPageSize is the page size every list screen uses.
const DefaultPageSize = 5

// FilterAll is the sentinel filter value that disables filtering on a
// dimension.
const FilterAll = "All"

// Field extracts one searchable or filterable text field from a record.
type Field[T any] func(T) string

// Config describes one list screen: which fields the search term matches
// against and the page size.
type Config[T any] struct {
	// PageSize defaults to DefaultPageSize when zero.
	PageSize int
	// SearchFields are the fields the search term is matched against. A
	// record matches if any of them contains the term case-insensitively.
	SearchFields []Field[T]
}

type dimension[T any] struct {
	name  string
	field Field[T]
	value string
}

// Controller holds one list screen's state: the fetched collection, the
// search term, the filter values, and the current page. All filtering and
// pagination is client-side; the only server round-trip is Load.
type Controller[T any] struct {
	cfg        Config[T]
	dimensions []dimension[T]
	collection []T
	search     string
	page       int
	loading    bool
}

// New creates a list controller.
func New[T any](cfg Config[T]) *Controller[T] {
	if cfg.PageSize <= 0 {
		cfg.PageSize = DefaultPageSize
	}
	return &Controller[T]{
		cfg:  cfg,
		page: 1,
	}
}

// AddFilter registers a categorical filter dimension, initially set to the
// FilterAll sentinel.
func (c *Controller[T]) AddFilter(name string, field Field[T]) {
	c.dimensions = append(c.dimensions, dimension[T]{
		name:  name,
		field: field,
		value: FilterAll,
	})
}

// Load replaces the collection with a fresh fetch and resets to page 1. The
// loading flag is set for the duration of the fetch.
func (c *Controller[T]) Load(ctx context.Context, list func(context.Context) ([]T, error)) error {
	c.loading = true
	records, err := list(ctx)
	c.loading = false
	if err != nil {
		return err
	}
	c.collection = records
	c.page = 1
	return nil
}

// Loading reports whether a collection fetch is outstanding.
func (c *Controller[T]) Loading() bool {
	return c.loading
}

// SetSearch changes the search term and resets to page 1.
func (c *Controller[T]) SetSearch(term string) {
	c.search = term
	c.page = 1
}

// Search returns the current search term.
func (c *Controller[T]) Search() string {
	return c.search
}

// SetFilter changes one filter dimension's value and resets to page 1.
// Unknown dimension names are ignored.
func (c *Controller[T]) SetFilter(name, value string) {
	for i := range c.dimensions {
		if c.dimensions[i].name == name {
			c.dimensions[i].value = value
			c.page = 1
			return
		}
	}
}

// Filter returns the current value of one filter dimension, or FilterAll
// when the dimension is unknown.
func (c *Controller[T]) Filter(name string) string {
	for _, d := range c.dimensions {
		if d.name == name {
			return d.value
		}
	}
	return FilterAll
}

// Filtered returns the records that pass every filter dimension and match
// the search term, in collection order.
func (c *Controller[T]) Filtered() []T {
	term := strings.ToLower(strings.TrimSpace(c.search))

	var result []T
	for _, record := range c.collection {
		if !c.matchesFilters(record) {
			continue
		}
		if term != "" && !c.matchesSearch(record, term) {
			continue
		}
		result = append(result, record)
	}
	return result
}

func (c *Controller[T]) matchesFilters(record T) bool {
	for _, d := range c.dimensions {
		if d.value == FilterAll {
			continue
		}
		if d.field(record) != d.value {
			return false
		}
	}
	return true
}

func (c *Controller[T]) matchesSearch(record T, term string) bool {
	for _, field := range c.cfg.SearchFields {
		if strings.Contains(strings.ToLower(field(record)), term) {
			return true
		}
	}
	return false
}

// TotalPages returns the page count over the filtered set, always at least 1.
func (c *Controller[T]) TotalPages() int {
	pages := (len(c.Filtered()) + c.cfg.PageSize - 1) / c.cfg.PageSize
	if pages < 1 {
		pages = 1
	}
	return pages
}

// CurrentPage returns the 1-based current page number.
func (c *Controller[T]) CurrentPage() int {
	return c.page
}

// SetPage moves to the given 1-based page, clamped to [1, TotalPages].
func (c *Controller[T]) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	if total := c.TotalPages(); page > total {
		page = total
	}
	c.page = page
}

// Page returns the current page's slice of the filtered set.
func (c *Controller[T]) Page() []T {
	filtered := c.Filtered()
	start := (c.page - 1) * c.cfg.PageSize
	if start >= len(filtered) {
		return nil
	}
	end := start + c.cfg.PageSize
	if end > len(filtered) {
		end = len(filtered)
	}
	return filtered[start:end]
}
