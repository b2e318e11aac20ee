package world

// workList is a FIFO queue that refuses an item already waiting in it.
// Membership is tracked in a set so deduplication stays O(1).
type workList[T comparable] struct {
	items  []T
	head   int
	queued map[T]struct{}
}

func newWorkList[T comparable]() *workList[T] {
	return &workList[T]{queued: make(map[T]struct{})}
}

// Push appends v unless it is already queued. It reports whether v was added.
func (w *workList[T]) Push(v T) bool {
	if _, ok := w.queued[v]; ok {
		return false
	}
	w.queued[v] = struct{}{}
	w.items = append(w.items, v)
	return true
}

// Pop removes and returns the oldest item.
func (w *workList[T]) Pop() (T, bool) {
	var zero T
	if w.head >= len(w.items) {
		return zero, false
	}
	v := w.items[w.head]
	w.items[w.head] = zero
	w.head++
	delete(w.queued, v)

	// Reclaim the consumed prefix once it dominates the backing array.
	if w.head > 1024 && w.head*2 > len(w.items) {
		n := copy(w.items, w.items[w.head:])
		clear(w.items[n:])
		w.items = w.items[:n]
		w.head = 0
	}
	return v, true
}

func (w *workList[T]) Len() int { return len(w.items) - w.head }

func (w *workList[T]) Contains(v T) bool {
	_, ok := w.queued[v]
	return ok
}

// Take empties the list and returns its items in order.
func (w *workList[T]) Take() []T {
	out := append([]T(nil), w.items[w.head:]...)
	w.Reset()
	return out
}

func (w *workList[T]) Reset() {
	w.items = w.items[:0]
	w.head = 0
	clear(w.queued)
}
