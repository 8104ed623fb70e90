// Package catalog implements the browsing pattern shared by every catalog page:
// a store loaded from a fetcher, a substring filter predicate, a single
// selection and the view composing them.
package catalog

import (
	"context"
	"errors"
	"fmt"
)

// Item is a catalog record with an identifier that is stable within a store snapshot.
type Item interface {
	CatalogID() string
}

// Fetcher loads catalog items. Implementations may ignore query or return a
// superset of the matching items; callers always apply the filter predicate.
type Fetcher[T Item] interface {
	Fetch(ctx context.Context, query string) ([]T, error)
}

// FetcherFunc adapts a function to Fetcher.
type FetcherFunc[T Item] func(ctx context.Context, query string) ([]T, error)

func (f FetcherFunc[T]) Fetch(ctx context.Context, query string) ([]T, error) {
	return f(ctx, query)
}

// Sourced is implemented by fetchers that can name their backing source.
type Sourced interface {
	Source() string
}

var (
	// ErrEmptyID is wrapped by LoadError when a fetched item has no identifier.
	ErrEmptyID = errors.New("item without id")
	// ErrDuplicateID is wrapped by LoadError when two fetched items share an identifier.
	ErrDuplicateID = errors.New("duplicate item id")
)

// LoadError reports a catalog that could not be populated.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load catalog from %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// NotFoundError reports an id that is not part of the current result set.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("catalog item %q not found", e.ID)
}

// SourceOf names the source behind a fetcher for error messages.
func SourceOf(f any) string {
	if s, ok := f.(Sourced); ok {
		return s.Source()
	}
	return fmt.Sprintf("%T", f)
}
