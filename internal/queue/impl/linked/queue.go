// Package linked implements a FIFO queue on top of a singly linked chain of
// nodes, tracking both the front and the back so that push and pop are O(1).
//
// The zero value of Queue is an empty queue ready to use. A Queue is not safe
// for concurrent use; see the mutex package for a synchronized variant.
package linked

import (
	"github.com/Philanthropists/fifoqueue/internal/queue"
)

type Node[T any] struct {
	Value T
	next  *Node[T]
}

// NewNode returns a detached node holding value.
func NewNode[T any](value T) *Node[T] {
	return &Node[T]{Value: value}
}

// Allocator builds the node for a value. Returning nil reports that no node
// could be provided and the operation fails with queue.ErrAllocationFailure.
type Allocator[T any] func(value T) *Node[T]

type Queue[T any] struct {
	Allocator Allocator[T]
	Observer  queue.Observer[T]

	front     *Node[T]
	back      *Node[T]
	size      int
	destroyed bool
}

type Option[T any] func(*Queue[T])

func WithAllocator[T any](a Allocator[T]) Option[T] {
	return func(q *Queue[T]) {
		q.Allocator = a
	}
}

func WithObserver[T any](o queue.Observer[T]) Option[T] {
	return func(q *Queue[T]) {
		q.Observer = o
	}
}

// CreateQueue returns a queue holding first as its only element.
func CreateQueue[T any](first T, opts ...Option[T]) (*Queue[T], error) {
	q := &Queue[T]{}
	for _, opt := range opts {
		opt(q)
	}

	n := q.newNode(first)
	if n == nil {
		return nil, queue.ErrAllocationFailure
	}

	q.front, q.back = n, n
	q.size = 1
	q.notify(queue.Create, first)

	return q, nil
}

func (q *Queue[T]) newNode(v T) *Node[T] {
	if q.Allocator == nil {
		return NewNode(v)
	}

	return q.Allocator(v)
}

func (q *Queue[T]) valid() bool {
	return q != nil && !q.destroyed
}

func (q *Queue[T]) notify(op queue.Op, v T) {
	if q.Observer == nil {
		return
	}

	q.Observer.Observe(queue.Event[T]{
		Op:       op,
		Value:    v,
		Count:    q.size,
		Contents: q.Values(),
	})
}

func (q *Queue[T]) PushBack(v T) error {
	if !q.valid() {
		return queue.ErrInvalidQueue
	}

	n := q.newNode(v)
	if n == nil {
		return queue.ErrAllocationFailure
	}
	// nodes handed out by an allocator must not drag a chain along
	n.next = nil

	if q.back == nil {
		q.front = n
	} else {
		q.back.next = n
	}
	q.back = n
	q.size++

	q.notify(queue.Push, v)

	return nil
}

func (q *Queue[T]) Pop() (T, error) {
	var zero T
	if !q.valid() {
		return zero, queue.ErrInvalidQueue
	}

	if q.front == nil {
		return zero, queue.ErrEmptyQueue
	}

	head := q.front
	q.front = head.next
	head.next = nil
	if q.front == nil {
		q.back = nil
	}
	q.size--

	q.notify(queue.Pop, head.Value)

	return head.Value, nil
}

func (q *Queue[T]) Peek() (T, error) {
	var zero T
	if !q.valid() {
		return zero, queue.ErrInvalidQueue
	}

	if q.front == nil {
		return zero, queue.ErrEmptyQueue
	}

	q.notify(queue.Peek, q.front.Value)

	return q.front.Value, nil
}

func (q *Queue[T]) Size() int {
	if !q.valid() {
		return 0
	}

	return q.size
}

func (q *Queue[T]) IsEmpty() bool {
	return q.Size() == 0
}

// Values returns a front to back copy of the elements.
func (q *Queue[T]) Values() []T {
	if !q.valid() {
		return nil
	}

	vs := make([]T, 0, q.size)
	for n := q.front; n != nil; n = n.next {
		vs = append(vs, n.Value)
	}

	return vs
}

func (q *Queue[T]) String() string {
	return queue.Render(q.Values())
}

// Destroy releases every node and returns how many there were. The queue
// cannot be used afterwards.
func (q *Queue[T]) Destroy() (int, error) {
	if !q.valid() {
		return 0, queue.ErrInvalidQueue
	}

	var c int
	for n := q.front; n != nil; {
		next := n.next
		n.next = nil
		n = next
		c++
	}

	q.front, q.back = nil, nil
	q.size = 0

	if q.Observer != nil {
		q.Observer.Observe(queue.Event[T]{
			Op:    queue.Destroy,
			Count: c,
		})
	}

	q.destroyed = true

	return c, nil
}
