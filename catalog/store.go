package catalog

import (
	"context"
	"fmt"
)

// Store holds the full ordered list backing one page visit.
// It is read-only once loaded.
type Store[T Item] struct {
	fetcher Fetcher[T]
	items   []T
	loaded  bool
}

// NewStore creates a Store that loads from fetcher.
func NewStore[T Item](fetcher Fetcher[T]) *Store[T] {
	return &Store[T]{fetcher: fetcher}
}

// Load populates the store. A failed load leaves any previous snapshot untouched.
func (s *Store[T]) Load(ctx context.Context) error {
	source := SourceOf(s.fetcher)
	if s.fetcher == nil {
		return &LoadError{Source: source, Err: fmt.Errorf("no fetcher configured")}
	}

	items, err := s.fetcher.Fetch(ctx, "")
	if err != nil {
		return &LoadError{Source: source, Err: err}
	}

	seen := make(map[string]struct{}, len(items))
	for i, item := range items {
		id := item.CatalogID()
		if id == "" {
			return &LoadError{Source: source, Err: fmt.Errorf("position %d: %w", i, ErrEmptyID)}
		}
		if _, dup := seen[id]; dup {
			return &LoadError{Source: source, Err: fmt.Errorf("%w: %s", ErrDuplicateID, id)}
		}
		seen[id] = struct{}{}
	}

	s.items = items
	s.loaded = true
	return nil
}

// All returns a copy of every item in insertion order.
func (s *Store[T]) All() []T {
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// Loaded reports whether a Load has succeeded.
func (s *Store[T]) Loaded() bool {
	return s.loaded
}

// Len returns the number of items held.
func (s *Store[T]) Len() int {
	return len(s.items)
}
