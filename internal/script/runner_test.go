package script

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Philanthropists/fifoqueue/internal/logging"
	"github.com/Philanthropists/fifoqueue/internal/registry"
)

func testContext() context.Context {
	return logging.Nop().GetContext(context.Background())
}

func newRunner(out *bytes.Buffer) *Runner {
	return &Runner{
		Registry: &registry.Registry{Log: logging.Nop()},
		Out:      out,
	}
}

func Test_RunScenario(t *testing.T) {
	const text = `# demo
create q 13
push q 15
peek q
size q
push q 17
pop q
push q 69 888 374 2
size q
show q
destroy q
`
	var out bytes.Buffer
	r := newRunner(&out)

	sum, err := r.Run(testContext(), Lines(text))
	require.NoError(t, err)

	assert.Equal(t, Summary{Executed: 10}, sum)
	assert.Equal(t, `q: front 13
q: size 2
q: popped 13
q: size 6
q: [15->17->69->888->374->2]
q: released 6
`, out.String())
}

func Test_RunReportsEmptyQueueAndContinues(t *testing.T) {
	const text = `create q 5
pop q
pop q
peek q
push q 6
show q`
	var out bytes.Buffer
	r := newRunner(&out)

	sum, err := r.Run(testContext(), Lines(text))
	require.NoError(t, err)

	assert.Equal(t, Summary{Executed: 4, Failed: 2}, sum)
	assert.Equal(t, `q: popped 5
error: line 3: pop q: queue: empty
error: line 4: peek q: queue: empty
q: [6]
`, out.String())
}

func Test_RunSkipsMalformedLines(t *testing.T) {
	const text = `create q 1
push q x
frobnicate q
show q`
	var out bytes.Buffer
	r := newRunner(&out)

	sum, err := r.Run(testContext(), Lines(text))
	require.NoError(t, err)

	assert.Equal(t, Summary{Executed: 2, Malformed: 2}, sum)
	assert.Contains(t, out.String(), "q: [1]\n")
}

func Test_RunUnknownQueueFails(t *testing.T) {
	var out bytes.Buffer
	r := newRunner(&out)

	sum, err := r.Run(testContext(), Lines("push nope 1"))
	require.NoError(t, err)

	assert.Equal(t, Summary{Failed: 1}, sum)
}

func Test_RunWithoutRegistryFails(t *testing.T) {
	r := &Runner{}

	_, err := r.Run(testContext(), Lines("create q 1"))
	assert.Error(t, err)
}

func Test_RunStopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(testContext())
	cancel()

	var out bytes.Buffer
	r := newRunner(&out)

	_, err := r.Run(ctx, Lines("create q 1\npush q 2"))
	assert.ErrorIs(t, err, context.Canceled)
}
