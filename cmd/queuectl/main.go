package main

import (
	"context"
	_ "embed"
	"flag"
	"io"
	"os"
	"time"

	"github.com/zeebo/errs"

	"github.com/Philanthropists/fifoqueue/internal/logging"
	"github.com/Philanthropists/fifoqueue/internal/queue"
	"github.com/Philanthropists/fifoqueue/internal/queue/trace"
	"github.com/Philanthropists/fifoqueue/internal/registry"
	"github.com/Philanthropists/fifoqueue/internal/script"
)

//go:embed demo.fq
var demoScript string

var GitCommit string

func readScript(path string) (string, error) {
	switch path {
	case "":
		return demoScript, nil
	case "-":
		raw, err := io.ReadAll(os.Stdin)
		return string(raw), errs.Wrap(err)
	default:
		raw, err := os.ReadFile(path)
		return string(raw), errs.Wrap(err)
	}
}

func observer(cfg Config, out io.Writer, log *logging.Logger) queue.Observer[int] {
	switch cfg.Trace {
	case TraceConsole:
		return trace.Console[int]{Out: out}
	case TraceLog:
		return trace.Logger[int]{Log: log}
	default:
		return nil
	}
}

func run(ctx context.Context, cfg Config, text string, out io.Writer) (script.Summary, error) {
	log := logging.FromContext(ctx)

	reg := &registry.Registry{
		TTL:      cfg.TTL(),
		Log:      log,
		Observer: observer(cfg, out, log),
	}

	runner := script.Runner{
		Registry: reg,
		Out:      out,
	}

	sum, err := runner.Run(ctx, script.Lines(text))

	released, closeErr := reg.Close()
	if released > 0 {
		log.Info("released remaining queues", logging.Int("nodes", released))
	}

	return sum, errs.Combine(err, closeErr)
}

func main() {
	configPath := flag.String("config", "", "JSON config file")
	scriptPath := flag.String("script", "", "script to run, - for stdin (default: built-in demo)")
	traceMode := flag.String("trace", "", "trace mode: console, log or none")
	ttl := flag.Uint("ttl", 0, "seconds a queue lives before it is evicted, 0 keeps it")
	debug := flag.Bool("debug", false, "output debug logs")
	timeout := flag.Uint("timeout", 0, "timeout for the run to cancel")
	flag.Parse()

	cfg, err := getConfig(*configPath)
	if err != nil {
		logging.New().Fatal("failed to read config", logging.Error(err))
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "trace":
			cfg.Trace = *traceMode
		case "ttl":
			cfg.TTLSeconds = *ttl
		case "debug":
			cfg.Debug = *debug
		}
	})

	log := logging.Setup(cfg.Debug)
	defer func() { _ = log.Sync() }()

	version := "dev"
	if len(GitCommit) >= 3 {
		version = GitCommit[:3]
	}
	log = log.With(logging.String("version", version))

	if err := cfg.Validate(); err != nil {
		log.Fatal("invalid config", logging.Error(err))
	}

	text, err := readScript(*scriptPath)
	if err != nil {
		log.Fatal("failed to read script", logging.Error(err))
	}

	ctx := log.GetContext(context.Background())
	if *timeout != 0 {
		t := time.Duration(*timeout) * time.Second
		nctx, cancel := context.WithTimeout(ctx, t)
		ctx = nctx
		defer cancel()
	}

	sum, err := run(ctx, cfg, text, os.Stdout)
	if err != nil {
		log.Fatal("failed to run script", logging.Error(err))
	}

	log.Info("script finished",
		logging.Int("executed", sum.Executed),
		logging.Int("failed", sum.Failed),
		logging.Int("malformed", sum.Malformed),
	)
}
