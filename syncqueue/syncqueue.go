// Package syncqueue provides a small FIFO queue that can be shared between
// goroutines.
package syncqueue

import "sync"

// A Queue is an ordered collection guarded by a single mutex. The zero value
// is an empty queue ready to use.
type Queue[T comparable] struct {
	mu       sync.Mutex
	elements []T
}

// New creates an empty queue.
func New[T comparable]() *Queue[T] {
	return &Queue[T]{}
}

// Put appends an element to the tail of the queue.
func (q *Queue[T]) Put(e T) {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.elements = append(q.elements, e)
}

// Remove deletes the first element equal to e. It reports whether an element
// was removed.
func (q *Queue[T]) Remove(e T) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	for i, x := range q.elements {
		if x == e {
			q.elements = append(q.elements[:i], q.elements[i+1:]...)
			return true
		}
	}

	return false
}

// ToSlice returns a copy of the queue content in insertion order. The copy
// can be iterated without holding any lock.
func (q *Queue[T]) ToSlice() []T {
	q.mu.Lock()
	defer q.mu.Unlock()

	out := make([]T, len(q.elements))
	copy(out, q.elements)

	return out
}

// Clear removes all elements.
func (q *Queue[T]) Clear() {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.elements = nil
}

// Size returns the number of elements.
func (q *Queue[T]) Size() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	return len(q.elements)
}

// IsEmpty reports whether the queue holds no element.
func (q *Queue[T]) IsEmpty() bool {
	return q.Size() == 0
}
