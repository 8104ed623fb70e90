package catalog

import (
	"strings"

	"github.com/samber/lo"
)

// Field extracts the searchable strings of one item attribute.
type Field[T any] func(item T) []string

// Text builds a Field from a single string accessor.
func Text[T any](fn func(T) string) Field[T] {
	return func(item T) []string {
		return []string{fn(item)}
	}
}

// List builds a Field from a string slice accessor; each entry is matched on its own.
func List[T any](fn func(T) []string) Field[T] {
	return Field[T](fn)
}

// FieldSet is the configured set of fields a query is matched against.
type FieldSet[T any] []Field[T]

// Fields builds a FieldSet.
func Fields[T any](fields ...Field[T]) FieldSet[T] {
	return FieldSet[T](fields)
}

// NormalizeQuery trims surrounding whitespace and lower-cases the query.
func NormalizeQuery(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

// Match reports whether item stays visible for query. A blank query keeps every item.
func (fs FieldSet[T]) Match(query string, item T) bool {
	needle := NormalizeQuery(query)
	if needle == "" {
		return true
	}
	return fs.matchNormalized(needle, item)
}

func (fs FieldSet[T]) matchNormalized(needle string, item T) bool {
	for _, field := range fs {
		for _, value := range field(item) {
			if strings.Contains(strings.ToLower(value), needle) {
				return true
			}
		}
	}
	return false
}

// Predicate returns the filter predicate bound to query.
func (fs FieldSet[T]) Predicate(query string) func(T) bool {
	needle := NormalizeQuery(query)
	return func(item T) bool {
		if needle == "" {
			return true
		}
		return fs.matchNormalized(needle, item)
	}
}

// Filter keeps the items matching query in their original order.
func Filter[T any](items []T, query string, fs FieldSet[T]) []T {
	pred := fs.Predicate(query)
	return lo.Filter(items, func(item T, _ int) bool {
		return pred(item)
	})
}
