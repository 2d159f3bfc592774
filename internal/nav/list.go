package nav

import "slices"

// List is an ordered collection with an optional single selection cursor.
// The cursor, when set, always indexes an existing item.
type List[T comparable] struct {
	items    []T
	cursor   int
	selected bool
	limit    int
}

// NewList returns a list holding a copy of items with nothing selected.
func NewList[T comparable](items ...T) *List[T] {
	return &List[T]{items: slices.Clone(items)}
}

// SetLimit caps the list length. Zero or negative means unbounded. When the
// list is already longer, the oldest (tail) entries are dropped.
func (l *List[T]) SetLimit(n int) {
	l.limit = n
	l.trim()
}

// Items returns a copy of the items in display order.
func (l *List[T]) Items() []T { return slices.Clone(l.items) }

// Get returns the item at i.
func (l *List[T]) Get(i int) (T, bool) {
	var zero T
	if i < 0 || i >= len(l.items) {
		return zero, false
	}
	return l.items[i], true
}

func (l *List[T]) contains(item T) bool {
	return slices.Contains(l.items, item)
}

// Selected returns the cursor position, if any.
func (l *List[T]) Selected() (int, bool) {
	if !l.selected {
		return 0, false
	}
	return l.cursor, true
}

// SelectedItem returns the item under the cursor, if any.
func (l *List[T]) SelectedItem() (T, bool) {
	i, ok := l.Selected()
	if !ok {
		var zero T
		return zero, false
	}
	return l.Get(i)
}

// selectAt moves the cursor to i. Out of range indexes clear the selection.
func (l *List[T]) selectAt(i int) {
	if i < 0 || i >= len(l.items) {
		l.unselect()
		return
	}
	l.cursor, l.selected = i, true
}

func (l *List[T]) unselect() {
	l.cursor, l.selected = 0, false
}

// Next moves the cursor down one item, wrapping to the top. With nothing
// selected it selects the first item.
func (l *List[T]) Next() {
	if len(l.items) == 0 {
		return
	}
	if !l.selected {
		l.selectAt(0)
		return
	}
	l.selectAt((l.cursor + 1) % len(l.items))
}

// Previous moves the cursor up one item, wrapping to the bottom. With nothing
// selected it selects the last item.
func (l *List[T]) Previous() {
	if len(l.items) == 0 {
		return
	}
	if !l.selected || l.cursor == 0 {
		l.selectAt(len(l.items) - 1)
		return
	}
	l.selectAt(l.cursor - 1)
}

// InsertFront adds item at the head of the list unless an equal item is
// already present. It reports whether the item was inserted. A selected
// cursor keeps pointing at the same item.
func (l *List[T]) InsertFront(item T) bool {
	if l.contains(item) {
		return false
	}
	l.items = slices.Insert(l.items, 0, item)
	if l.selected {
		l.cursor++
	}
	l.trim()
	return true
}

func (l *List[T]) trim() {
	if l.limit > 0 && len(l.items) > l.limit {
		clear(l.items[l.limit:])
		l.items = l.items[:l.limit]
	}
	l.clamp()
}

func (l *List[T]) clamp() {
	if !l.selected {
		return
	}
	if len(l.items) == 0 {
		l.unselect()
		return
	}
	if l.cursor >= len(l.items) {
		l.cursor = len(l.items) - 1
	}
}
