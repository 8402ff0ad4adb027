package queue

import (
	"fmt"
	"strings"
)

type FIFOQueue[T any] interface {
	PushBack(T) error
	Pop() (T, error)
	Peek() (T, error)
	Size() int
	IsEmpty() bool
	Values() []T
	Destroy() (int, error)
}

// Render joins values front to back, e.g. 15->17->69
func Render[T any](values []T) string {
	var b strings.Builder
	for i, v := range values {
		if i > 0 {
			b.WriteString("->")
		}
		fmt.Fprint(&b, v)
	}

	return b.String()
}
