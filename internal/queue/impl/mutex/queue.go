package mutex

import (
	"sync"

	"github.com/Philanthropists/fifoqueue/internal/queue/impl/linked"
)

type mutexFifoQueue[T any] struct {
	Store *linked.Queue[T]
	Mutex *sync.Mutex
}

// CreateQueue returns an empty queue that is safe for concurrent use.
// Observers run with the lock held and must not call back into the queue.
func CreateQueue[T any](opts ...linked.Option[T]) *mutexFifoQueue[T] {
	store := &linked.Queue[T]{}
	for _, opt := range opts {
		opt(store)
	}

	return &mutexFifoQueue[T]{
		Store: store,
		Mutex: &sync.Mutex{},
	}
}

// CreateQueueFrom is CreateQueue for a queue starting with first.
func CreateQueueFrom[T any](first T, opts ...linked.Option[T]) (*mutexFifoQueue[T], error) {
	store, err := linked.CreateQueue(first, opts...)
	if err != nil {
		return nil, err
	}

	return &mutexFifoQueue[T]{
		Store: store,
		Mutex: &sync.Mutex{},
	}, nil
}

func (q *mutexFifoQueue[T]) PushBack(e T) error {
	q.Mutex.Lock()
	defer q.Mutex.Unlock()

	return q.Store.PushBack(e)
}

func (q *mutexFifoQueue[T]) Pop() (T, error) {
	q.Mutex.Lock()
	defer q.Mutex.Unlock()

	return q.Store.Pop()
}

func (q *mutexFifoQueue[T]) Peek() (T, error) {
	q.Mutex.Lock()
	defer q.Mutex.Unlock()

	return q.Store.Peek()
}

func (q *mutexFifoQueue[T]) Size() int {
	q.Mutex.Lock()
	defer q.Mutex.Unlock()

	return q.Store.Size()
}

func (q *mutexFifoQueue[T]) IsEmpty() bool {
	return q.Size() == 0
}

func (q *mutexFifoQueue[T]) Values() []T {
	q.Mutex.Lock()
	defer q.Mutex.Unlock()

	return q.Store.Values()
}

func (q *mutexFifoQueue[T]) String() string {
	q.Mutex.Lock()
	defer q.Mutex.Unlock()

	return q.Store.String()
}

func (q *mutexFifoQueue[T]) Destroy() (int, error) {
	q.Mutex.Lock()
	defer q.Mutex.Unlock()

	return q.Store.Destroy()
}
