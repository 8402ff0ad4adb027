package queue

type Op int8

const (
	Create Op = iota
	Push
	Pop
	Peek
	Destroy
)

func (o Op) String() string {
	switch o {
	case Create:
		return "create"
	case Push:
		return "push"
	case Pop:
		return "pop"
	case Peek:
		return "peek"
	case Destroy:
		return "destroy"
	default:
		return "undefined"
	}
}

// Event describes a completed operation. Value is the element that was
// created, pushed, popped or peeked; for Destroy it is the zero value.
// Count is the number of elements left afterwards, except for Destroy where
// it is the number of released nodes.
type Event[T any] struct {
	Op       Op
	Value    T
	Count    int
	Contents []T
}

type Observer[T any] interface {
	Observe(Event[T])
}

type ObserverFunc[T any] func(Event[T])

func (f ObserverFunc[T]) Observe(e Event[T]) {
	f(e)
}
