// Package trace turns queue events into human readable output. Keeping it
// apart from the queue lets the data structure run silently in tests.
package trace

import (
	"fmt"
	"io"
	"strings"

	"github.com/Philanthropists/fifoqueue/internal/logging"
	"github.com/Philanthropists/fifoqueue/internal/queue"
)

// Console writes one line per event in the classic demo format, plus the
// queue contents after every push and pop.
type Console[T any] struct {
	Out io.Writer
}

func (c Console[T]) Observe(e queue.Event[T]) {
	switch e.Op {
	case queue.Create:
		fmt.Fprintf(c.Out, "Creating queue with first node => %v\n", e.Value)
	case queue.Push:
		fmt.Fprintf(c.Out, "+ %v\n", e.Value)
		c.contents(e.Contents)
	case queue.Pop:
		fmt.Fprintf(c.Out, "Popping %v from front of queue.\n", e.Value)
		c.contents(e.Contents)
	case queue.Peek:
		fmt.Fprintf(c.Out, "Peeking first node - %v - from queue.\n", e.Value)
	case queue.Destroy:
		c.released(e.Count)
	}
}

// released counts up to n the way the node-by-node teardown does
func (c Console[T]) released(n int) {
	var b strings.Builder
	b.WriteString("Deleted ")
	for i := 1; i <= n; i++ {
		fmt.Fprintf(&b, "%d ", i)
	}
	b.WriteString("nodes. Deleted queue.\n")

	fmt.Fprint(c.Out, b.String())
}

func (c Console[T]) contents(vs []T) {
	fmt.Fprintf(c.Out, "Queue (front): %s (back)\n", queue.Render(vs))
}

// Logger emits every event as a debug entry, destroy as info.
type Logger[T any] struct {
	Log *logging.Logger
}

func (l Logger[T]) Observe(e queue.Event[T]) {
	log := l.Log
	if log == nil {
		log = logging.New()
	}

	fields := []logging.Field{
		logging.Stringer("op", e.Op),
		logging.Int("count", e.Count),
	}

	if e.Op == queue.Destroy {
		log.Info("queue destroyed", fields...)
		return
	}

	fields = append(fields,
		logging.Any("value", e.Value),
		logging.String("contents", queue.Render(e.Contents)),
	)
	log.Debug("queue operation", fields...)
}

type Multi[T any] []queue.Observer[T]

func (m Multi[T]) Observe(e queue.Event[T]) {
	for _, o := range m {
		if o != nil {
			o.Observe(e)
		}
	}
}
