// Package config loads the runtime settings of the terminal loop from YAML.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/termwins/terminal"
	"github.com/lixenwraith/termwins/trace"
)

// Input backends
const (
	BackendStdio  = "stdio"
	BackendTty    = "tty"
	BackendScript = "script"
)

// Config holds loop, input and logging settings
type Config struct {
	// Backend selects the input source: stdio, tty or script
	Backend string `yaml:"backend"`
	// ReadTimeout bounds each platform read
	ReadTimeout time.Duration `yaml:"read_timeout"`
	// MouseMode is off, click, drag or motion
	MouseMode string `yaml:"mouse_mode"`
	// MaxIterations stops the loop after that many cycles; 0 runs until quit
	MaxIterations int `yaml:"max_iterations"`
	// CycleSleep pauses at the end of every cycle (simulation targets)
	CycleSleep time.Duration `yaml:"cycle_sleep"`
	// EscTimeout flushes a partial escape sequence left pending this long; 0 waits for more bytes
	EscTimeout time.Duration `yaml:"esc_timeout"`
	// ExitDelay pauses after mouse reporting is turned off, before the trace area is cleared
	ExitDelay time.Duration `yaml:"exit_delay"`
	// TraceRows is the height of the trace area below the window
	TraceRows int `yaml:"trace_rows"`
	// Script holds input chunks for the script backend, one per read
	Script []string `yaml:"script"`

	Log LogConfig `yaml:"log"`
}

// LogConfig selects log level and the optional JSON log file
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Default returns the built-in settings
func Default() Config {
	return Config{
		Backend:     BackendStdio,
		ReadTimeout: 100 * time.Millisecond,
		MouseMode:   terminal.MouseModeClick.String(),
		ExitDelay:   time.Second,
		TraceRows:   8,
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads path over the defaults; an empty path returns the defaults
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	if err := cfg.Decode(f); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Decode reads YAML from r over the current values and validates the result
func (c *Config) Decode(r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	if len(bytes.TrimSpace(data)) > 0 {
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(c); err != nil {
			return fmt.Errorf("parsing YAML: %w", err)
		}
	}
	return c.Validate()
}

// Validate reports every invalid setting, joined into one error
func (c *Config) Validate() error {
	var errs []error

	switch c.Backend {
	case BackendStdio, BackendTty, BackendScript:
	default:
		errs = append(errs, fmt.Errorf("backend %q: want stdio, tty or script", c.Backend))
	}
	if c.ReadTimeout <= 0 {
		errs = append(errs, fmt.Errorf("read_timeout must be positive, got %s", c.ReadTimeout))
	}
	if _, ok := terminal.ParseMouseMode(c.MouseMode); !ok {
		errs = append(errs, fmt.Errorf("mouse_mode %q: want off, click, drag or motion", c.MouseMode))
	}
	if c.MaxIterations < 0 {
		errs = append(errs, errors.New("max_iterations must not be negative"))
	}
	if c.CycleSleep < 0 || c.ExitDelay < 0 || c.EscTimeout < 0 {
		errs = append(errs, errors.New("cycle_sleep, exit_delay and esc_timeout must not be negative"))
	}
	if c.TraceRows < 1 {
		errs = append(errs, fmt.Errorf("trace_rows must be at least 1, got %d", c.TraceRows))
	}
	if _, err := trace.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, err)
	}
	if c.Backend == BackendScript && len(c.Script) == 0 {
		errs = append(errs, errors.New("script backend needs at least one script entry"))
	}
	return errors.Join(errs...)
}

// Mouse returns the parsed mouse mode
func (c *Config) Mouse() terminal.MouseMode {
	m, _ := terminal.ParseMouseMode(c.MouseMode)
	return m
}
