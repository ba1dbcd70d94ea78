package waitqueue

import "container/list"

// Queue is a FIFO of deferred records of type T, backed by a doubly linked
// list so PushFront and PopFront are both O(1) — list.List gives us that
// without hand-rolling the node-swap logic Qpush/QpushFirst manage in C.
type Queue[T any] struct {
	l *list.List
}

// New returns an empty Queue.
func New[T any]() *Queue[T] {
	return &Queue[T]{l: list.New()}
}

// PushBack enqueues rec with the lowest priority — last out. This is the
// path a freshly-deferred arrival takes (spec.md §4.4/§4.9).
func (q *Queue[T]) PushBack(rec T) {
	q.l.PushBack(rec)
}

// PushFront enqueues rec with the highest priority — first out. Used when a
// retried record is still unreachable and must regain head position rather
// than go to the back of the line (spec.md §4.9's retry loop).
func (q *Queue[T]) PushFront(rec T) {
	q.l.PushFront(rec)
}

// PopFront removes and returns the head record. ok is false if the queue was
// empty, in which case the returned record is the zero value of T.
func (q *Queue[T]) PopFront() (rec T, ok bool) {
	front := q.l.Front()
	if front == nil {
		return rec, false
	}
	q.l.Remove(front)
	return front.Value.(T), true
}

// IsEmpty reports whether the queue currently holds no records.
func (q *Queue[T]) IsEmpty() bool {
	return q.l.Len() == 0
}

// Len returns the number of records currently queued.
func (q *Queue[T]) Len() int {
	return q.l.Len()
}
