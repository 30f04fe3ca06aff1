package iheap

// Queue is a priority queue over the heap algorithms for callers that
// do not want to manage the backing slice themselves. Elements still
// learn their slot through SetHeapIndex, so a queued object can remove
// or reprioritize itself by passing that slot back in.
type Queue[T Indexed] struct {
	less  Less[T]
	items []T
}

func NewQueue[T Indexed](less Less[T]) *Queue[T] {
	return &Queue[T]{less: less}
}

// Heapify builds a queue in place over items. Every element is told
// its slot, including the ones heapification never moves.
func Heapify[T Indexed](items []T, less Less[T]) *Queue[T] {
	for i, e := range items {
		e.SetHeapIndex(i)
	}
	n := len(items)
	for i := n/2 - 1; i >= 0; i-- {
		downHeap(items, i, i, n, items[i], less)
	}
	return &Queue[T]{less: less, items: items}
}

func (q *Queue[T]) Len() int {
	return len(q.items)
}

// Peek returns the highest-priority element without removing it.
func (q *Queue[T]) Peek() (top T, ok bool) {
	if len(q.items) == 0 {
		return top, false
	}
	return q.items[0], true
}

// Push inserts x.
func (q *Queue[T]) Push(x T) {
	q.items = append(q.items, x)
	Push(q.items, q.less)
}

// Pop removes and returns the highest-priority element.
func (q *Queue[T]) Pop() (top T, ok bool) {
	n := len(q.items)
	if n == 0 {
		return top, false
	}
	Pop(q.items, q.less)
	top = q.items[n-1]
	clear(q.items[n-1:])
	q.items = q.items[:n-1]
	return top, true
}

// PopAt removes and returns the element whose recorded slot is pos.
func (q *Queue[T]) PopAt(pos int) (x T, ok bool) {
	n := len(q.items)
	if pos < 0 || pos >= n {
		return x, false
	}
	PopAt(q.items, pos, q.less)
	x = q.items[n-1]
	clear(q.items[n-1:])
	q.items = q.items[:n-1]
	return x, true
}

// Up re-sifts after the element at pos rose in priority.
func (q *Queue[T]) Up(pos int) {
	Up(q.items, pos, q.less)
}

// Down re-sifts after the element at pos dropped in priority.
func (q *Queue[T]) Down(pos int) {
	Down(q.items, pos, q.less)
}

// Fix re-sifts pos without knowing which way the priority went.
func (q *Queue[T]) Fix(pos int) {
	Down(q.items, pos, q.less)
	Up(q.items, pos, q.less)
}
