package main

import (
	"encoding/json"
	"io"
	"os"
	"time"

	"github.com/zeebo/errs"
)

const (
	TraceConsole = "console"
	TraceLog     = "log"
	TraceNone    = "none"
)

type Config struct {
	Trace      string `json:"trace"`
	TTLSeconds uint   `json:"ttl_seconds"`
	Debug      bool   `json:"debug"`
}

func (c Config) TTL() time.Duration {
	return time.Duration(c.TTLSeconds) * time.Second
}

func (c Config) Validate() error {
	switch c.Trace {
	case TraceConsole, TraceLog, TraceNone:
		return nil
	default:
		return errs.New("unknown trace mode %q", c.Trace)
	}
}

func defaultConfig() Config {
	return Config{
		Trace: TraceConsole,
	}
}

// getConfig loads path over the defaults; an empty path keeps the defaults.
func getConfig(path string) (Config, error) {
	config := defaultConfig()
	if path == "" {
		return config, nil
	}

	cfgFile, err := os.Open(path)
	if err != nil {
		return Config{}, errs.Wrap(err)
	}
	defer cfgFile.Close()

	raw, err := io.ReadAll(cfgFile)
	if err != nil {
		return Config{}, errs.Wrap(err)
	}

	err = json.Unmarshal(raw, &config)
	if err != nil {
		return Config{}, errs.Wrap(err)
	}

	return config, nil
}
