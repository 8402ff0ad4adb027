package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/Philanthropists/fifoqueue/internal/logging"
	"github.com/Philanthropists/fifoqueue/internal/script"
)

func testContext() context.Context {
	return logging.Nop().GetContext(context.Background())
}

const demoOutput = `Creating queue with first node => 13
+ 15
Queue (front): 13->15 (back)
Peeking first node - 13 - from queue.
demo: front 13
+ 17
Queue (front): 13->15->17 (back)
Popping 13 from front of queue.
Queue (front): 15->17 (back)
demo: popped 13
+ 69
Queue (front): 15->17->69 (back)
+ 888
Queue (front): 15->17->69->888 (back)
+ 374
Queue (front): 15->17->69->888->374 (back)
+ 2
Queue (front): 15->17->69->888->374->2 (back)
demo: size 6
Deleted 1 2 3 4 5 6 nodes. Deleted queue.
demo: released 6
`

func Test_DemoWithConsoleTrace(t *testing.T) {
	defer goleak.VerifyNone(t)

	var out bytes.Buffer
	sum, err := run(testContext(), defaultConfig(), demoScript, &out)
	require.NoError(t, err)

	assert.Equal(t, script.Summary{Executed: 11}, sum)
	assert.Equal(t, demoOutput, out.String())
}

func Test_DemoWithoutTrace(t *testing.T) {
	defer goleak.VerifyNone(t)

	cfg := defaultConfig()
	cfg.Trace = TraceNone

	var out bytes.Buffer
	_, err := run(testContext(), cfg, demoScript, &out)
	require.NoError(t, err)

	assert.Equal(t, "demo: front 13\ndemo: popped 13\ndemo: size 6\ndemo: released 6\n", out.String())
}

func Test_RemainingQueuesAreReleased(t *testing.T) {
	defer goleak.VerifyNone(t)

	cfg := defaultConfig()
	cfg.Trace = TraceNone

	var out bytes.Buffer
	sum, err := run(testContext(), cfg, "create a 1\npush a 2 3\ncreate b 4", &out)
	require.NoError(t, err)
	assert.Equal(t, 3, sum.Executed)
	assert.Empty(t, out.String())
}

func Test_RunWithTTLLeavesNoGoroutines(t *testing.T) {
	defer goleak.VerifyNone(t)

	cfg := defaultConfig()
	cfg.Trace = TraceNone
	cfg.TTLSeconds = 60

	var out bytes.Buffer
	sum, err := run(testContext(), cfg, "create a 1\npush a 2\nsize a", &out)
	require.NoError(t, err)
	assert.Equal(t, 3, sum.Executed)
	assert.Equal(t, "a: size 2\n", out.String())
}

func Test_GetConfig(t *testing.T) {
	cfg, err := getConfig("")
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), cfg)

	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"trace": "log", "ttl_seconds": 30}`), 0o600))

	cfg, err = getConfig(path)
	require.NoError(t, err)
	assert.Equal(t, TraceLog, cfg.Trace)
	assert.Equal(t, uint(30), cfg.TTLSeconds)
	assert.NoError(t, cfg.Validate())

	_, err = getConfig(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func Test_ValidateRejectsUnknownTrace(t *testing.T) {
	cfg := defaultConfig()
	cfg.Trace = "syslog"

	assert.Error(t, cfg.Validate())
}
