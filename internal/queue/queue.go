// Package queue provides the FIFO used to hold scripted protocol lines.
package queue

// Queue defines the interface of a FIFO of T.
type Queue[T any] interface {
	// Dequeue removes and returns the item at the head of the queue.
	// ok is false when the queue is empty.
	Dequeue() (item T, ok bool)
	// Peek returns the item at the head of the queue without removing it.
	Peek() (item T, ok bool)
	// Items returns a copy of the queued items, head first.
	Items() []T
	// IsEmpty returns true if the queue is empty, false otherwise.
	IsEmpty() bool
}
