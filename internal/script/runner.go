package script

import (
	"context"
	"fmt"
	"io"

	"github.com/zeebo/errs"

	"github.com/Philanthropists/fifoqueue/internal/logging"
	"github.com/Philanthropists/fifoqueue/internal/queue"
	"github.com/Philanthropists/fifoqueue/internal/registry"
	"github.com/Philanthropists/fifoqueue/pkg/pipe"
)

var scriptErr = errs.Class("script")

type Summary struct {
	Executed  int
	Failed    int
	Malformed int
}

// Runner executes script commands against a registry. Failing commands are
// reported and skipped; they never stop the run.
type Runner struct {
	Registry *registry.Registry
	Out      io.Writer
}

func (r *Runner) out() io.Writer {
	if r.Out == nil {
		return io.Discard
	}

	return r.Out
}

func (r *Runner) Run(ctx context.Context, lines []Line) (Summary, error) {
	log := logging.FromContext(ctx)

	if r.Registry == nil {
		return Summary{}, scriptErr.New("no registry configured")
	}

	var sum Summary

	parsed := pipe.Map(ctx.Done(), pipe.From(ctx.Done(), lines...), func(l Line) pipe.Result[Command] {
		c, err := Parse(l)
		return pipe.Result[Command]{Value: c, Error: err}
	})

	for res := range parsed {
		c := res.Value
		if res.Error != nil {
			sum.Malformed++
			log.Warn("skipping malformed line", logging.Error(res.Error))
			fmt.Fprintf(r.out(), "error: %s\n", res.Error)
			continue
		}

		if c.Verb == "" {
			continue
		}

		if err := r.execute(c); err != nil {
			sum.Failed++
			log.Debug("command failed",
				logging.Stringer("command", c),
				logging.Int("line", c.Line),
				logging.Error(err),
			)
			fmt.Fprintf(r.out(), "error: line %d: %s: %s\n", c.Line, c, err)
			continue
		}

		sum.Executed++
	}

	if err := ctx.Err(); err != nil {
		return sum, errs.New("context finished: %w", err)
	}

	return sum, nil
}

func (r *Runner) execute(c Command) error {
	if c.Verb == Create {
		_, err := r.Registry.Create(c.Queue, c.Values[0])
		return err
	}

	if c.Verb == Destroy {
		n, err := r.Registry.Remove(c.Queue)
		if err != nil {
			return err
		}
		fmt.Fprintf(r.out(), "%s: released %d\n", c.Queue, n)
		return nil
	}

	q, err := r.Registry.Get(c.Queue)
	if err != nil {
		return err
	}

	switch c.Verb {
	case Push:
		for _, v := range c.Values {
			if err := q.PushBack(v); err != nil {
				return err
			}
		}
	case Pop:
		v, err := q.Pop()
		if err != nil {
			return err
		}
		fmt.Fprintf(r.out(), "%s: popped %d\n", c.Queue, v)
	case Peek:
		v, err := q.Peek()
		if err != nil {
			return err
		}
		fmt.Fprintf(r.out(), "%s: front %d\n", c.Queue, v)
	case Size:
		fmt.Fprintf(r.out(), "%s: size %d\n", c.Queue, q.Size())
	case Show:
		fmt.Fprintf(r.out(), "%s: [%s]\n", c.Queue, queue.Render(q.Values()))
	default:
		return scriptErr.New("unsupported command %q", c.Verb)
	}

	return nil
}
