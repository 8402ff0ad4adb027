package script

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/zeebo/errs"
)

type Verb string

const (
	Create  Verb = "create"
	Push    Verb = "push"
	Pop     Verb = "pop"
	Peek    Verb = "peek"
	Size    Verb = "size"
	Show    Verb = "show"
	Destroy Verb = "destroy"
)

// arity is the number of integer arguments a verb takes; -1 means one or more
var arity = map[Verb]int{
	Create:  1,
	Push:    -1,
	Pop:     0,
	Peek:    0,
	Size:    0,
	Show:    0,
	Destroy: 0,
}

type Command struct {
	Line   int
	Verb   Verb
	Queue  string
	Values []int
}

func (c Command) String() string {
	parts := []string{string(c.Verb), c.Queue}
	for _, v := range c.Values {
		parts = append(parts, strconv.Itoa(v))
	}

	return strings.Join(parts, " ")
}

type ErrParseFailure struct {
	Line  int
	Text  string
	Cause error
}

func (e ErrParseFailure) Error() string {
	return fmt.Sprintf("line %d: could not parse %q: %s", e.Line, e.Text, e.Cause)
}

func (e ErrParseFailure) Unwrap() error {
	return e.Cause
}

type Line struct {
	Number int
	Text   string
}

// Parse reads a single script line. Blank lines and lines starting with #
// yield a zero Command and no error.
func Parse(l Line) (Command, error) {
	fields := strings.Fields(l.Text)
	if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
		return Command{}, nil
	}

	fail := func(err error) (Command, error) {
		return Command{}, ErrParseFailure{Line: l.Number, Text: l.Text, Cause: err}
	}

	verb := Verb(strings.ToLower(fields[0]))
	n, ok := arity[verb]
	if !ok {
		return fail(errs.New("unknown command %q", fields[0]))
	}

	if len(fields) < 2 {
		return fail(errs.New("missing queue name"))
	}

	args := fields[2:]
	switch {
	case n < 0 && len(args) == 0:
		return fail(errs.New("%s needs at least one value", verb))
	case n >= 0 && len(args) != n:
		return fail(errs.New("%s takes %d value(s), got %d", verb, n, len(args)))
	}

	values := make([]int, 0, len(args))
	for _, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			return fail(errs.Wrap(err))
		}
		values = append(values, v)
	}

	return Command{
		Line:   l.Number,
		Verb:   verb,
		Queue:  fields[1],
		Values: values,
	}, nil
}

// Lines splits raw script text into numbered lines.
func Lines(text string) []Line {
	raw := strings.Split(text, "\n")
	lines := make([]Line, 0, len(raw))
	for i, t := range raw {
		lines = append(lines, Line{Number: i + 1, Text: strings.TrimSpace(t)})
	}

	return lines
}
