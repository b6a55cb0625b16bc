package queue

import "github.com/arloliu/go-scpikit/internal/util"

// sliceQueue implements the Queue interface using a slice.
type sliceQueue[T any] struct {
	items []T
}

// NewSliceQueue creates a new slice backed queue holding items.
func NewSliceQueue[T any](items ...T) Queue[T] {
	return &sliceQueue[T]{items: util.CloneSlice(items)}
}

func (q *sliceQueue[T]) Dequeue() (T, bool) {
	var zero T
	if len(q.items) == 0 {
		return zero, false
	}
	item := q.items[0]
	q.items[0] = zero
	q.items = q.items[1:]

	return item, true
}

func (q *sliceQueue[T]) Peek() (T, bool) {
	if len(q.items) == 0 {
		var zero T
		return zero, false
	}

	return q.items[0], true
}

func (q *sliceQueue[T]) Items() []T {
	return util.CloneSlice(q.items)
}

func (q *sliceQueue[T]) IsEmpty() bool {
	return len(q.items) == 0
}
