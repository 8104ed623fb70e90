package catalog

// DefaultEmptyMessage is shown when a query matches nothing and no message was configured.
const DefaultEmptyMessage = "No results found."

// ViewConfig parameterizes a View for one catalog type.
type ViewConfig[T any] struct {
	Fields       FieldSet[T]
	EmptyMessage string
}

// ViewModel is everything needed to draw a catalog page.
type ViewModel[T any] struct {
	Query        string
	Items        []T
	Selected     T
	HasSelection bool
	Empty        bool
	EmptyMessage string
	Total        int
}

// View composes a loaded Store, the filter predicate and the selection.
type View[T Item] struct {
	store     *Store[T]
	cfg       ViewConfig[T]
	query     string
	results   []T
	selection Selection[T]
}

// NewView creates a View showing the whole store.
func NewView[T Item](store *Store[T], cfg ViewConfig[T]) *View[T] {
	if cfg.EmptyMessage == "" {
		cfg.EmptyMessage = DefaultEmptyMessage
	}
	v := &View[T]{store: store, cfg: cfg}
	v.results = store.All()
	return v
}

// Submit recomputes the visible items from the full store. A selection that
// is no longer visible is cleared.
func (v *View[T]) Submit(query string) {
	v.query = query
	v.results = Filter(v.store.All(), query, v.cfg.Fields)
	if current, ok := v.selection.Current(); ok {
		if _, found := v.find(current.CatalogID()); !found {
			v.selection.Clear()
		}
	}
}

// Select opens the detail of the visible item with id. An id outside the
// current results clears the selection and returns a NotFoundError.
func (v *View[T]) Select(id string) error {
	item, ok := v.find(id)
	if !ok {
		v.selection.Clear()
		return &NotFoundError{ID: id}
	}
	v.selection.Select(item)
	return nil
}

// Clear closes the detail overlay.
func (v *View[T]) Clear() {
	v.selection.Clear()
}

// Current returns the selected item.
func (v *View[T]) Current() (T, bool) {
	return v.selection.Current()
}

// Overlay reports the detail overlay implied by the selection.
func (v *View[T]) Overlay() Overlay {
	if item, ok := v.selection.Current(); ok {
		return ItemDetail(item.CatalogID())
	}
	return NoOverlay()
}

// Results returns the visible items in store order.
func (v *View[T]) Results() []T {
	out := make([]T, len(v.results))
	copy(out, v.results)
	return out
}

// Render derives the view model from the results and the selection only.
func (v *View[T]) Render() ViewModel[T] {
	selected, ok := v.selection.Current()
	return ViewModel[T]{
		Query:        v.query,
		Items:        v.Results(),
		Selected:     selected,
		HasSelection: ok,
		Empty:        len(v.results) == 0,
		EmptyMessage: v.cfg.EmptyMessage,
		Total:        v.store.Len(),
	}
}

func (v *View[T]) find(id string) (T, bool) {
	for _, item := range v.results {
		if item.CatalogID() == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}
