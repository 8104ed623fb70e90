package repository

import (
	"context"
	"fmt"
)

// StaticCatalog serves a fixed in-memory list. It ignores the query; the
// catalog view applies the filter predicate.
type StaticCatalog[T any] struct {
	kind  string
	items []T
}

// NewStaticCatalog creates a StaticCatalog over items.
func NewStaticCatalog[T any](kind string, items []T) *StaticCatalog[T] {
	return &StaticCatalog[T]{kind: kind, items: items}
}

// Fetch returns a copy of every item
func (c *StaticCatalog[T]) Fetch(ctx context.Context, query string) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out, nil
}

func (c *StaticCatalog[T]) Source() string {
	return fmt.Sprintf("static:%s", c.kind)
}
