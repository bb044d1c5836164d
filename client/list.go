package client

// List is the per-view state triple the dashboard keeps for each resource:
// items plus independent loading and error flags. Mutations reconcile the
// local slice instead of refetching: created items are prepended, updates
// replace in place, deletions filter out by id.
type List[T any] struct {
	Items   []T
	Loading bool
	Err     error
}

// Begin marks a fetch in flight and clears the previous error.
func (l *List[T]) Begin() {
	l.Loading = true
	l.Err = nil
}

// End records a fetch result. On error the previous items are kept so the
// view can offer a manual retry.
func (l *List[T]) End(items []T, err error) {
	l.Loading = false
	l.Err = err
	if err == nil {
		l.Items = items
	}
}

// Prepend inserts a newly created item at the top.
func (l *List[T]) Prepend(item T) {
	l.Items = append([]T{item}, l.Items...)
}

// Replace swaps the first item matching match for item.
func (l *List[T]) Replace(match func(T) bool, item T) {
	for i := range l.Items {
		if match(l.Items[i]) {
			l.Items[i] = item
			return
		}
	}
}

// Remove filters out every item matching match.
func (l *List[T]) Remove(match func(T) bool) {
	kept := l.Items[:0]
	for _, item := range l.Items {
		if !match(item) {
			kept = append(kept, item)
		}
	}
	l.Items = kept
}
