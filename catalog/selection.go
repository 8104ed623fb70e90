package catalog

// Selection tracks the single item whose detail overlay is open.
type Selection[T any] struct {
	item T
	ok   bool
}

// Select replaces any previous selection with item.
func (s *Selection[T]) Select(item T) {
	s.item = item
	s.ok = true
}

// Clear drops the selection. It is a no-op when nothing is selected.
func (s *Selection[T]) Clear() {
	var zero T
	s.item = zero
	s.ok = false
}

// Current returns the selected item, ok is false when there is none.
func (s *Selection[T]) Current() (T, bool) {
	return s.item, s.ok
}
