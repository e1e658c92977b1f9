package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/termwins/terminal"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, BackendStdio, cfg.Backend)
	assert.Equal(t, terminal.MouseModeClick, cfg.Mouse())
	assert.Equal(t, time.Second, cfg.ExitDelay)
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "twins.yaml")
	data := `
backend: script
read_timeout: 20ms
mouse_mode: drag
max_iterations: 5
cycle_sleep: 50ms
esc_timeout: 30ms
script:
  - "\t"
  - "\r"
  - "\x04"
log:
  level: debug
  file: /tmp/twins.log
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, BackendScript, cfg.Backend)
	assert.Equal(t, 20*time.Millisecond, cfg.ReadTimeout)
	assert.Equal(t, terminal.MouseModeDrag, cfg.Mouse())
	assert.Equal(t, 5, cfg.MaxIterations)
	assert.Equal(t, 50*time.Millisecond, cfg.CycleSleep)
	assert.Equal(t, 30*time.Millisecond, cfg.EscTimeout)
	assert.Equal(t, []string{"\t", "\r", "\x04"}, cfg.Script)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/tmp/twins.log", cfg.Log.File)

	// Untouched fields keep their defaults
	assert.Equal(t, time.Second, cfg.ExitDelay)
	assert.Equal(t, 8, cfg.TraceRows)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestDecodeRejectsUnknownField(t *testing.T) {
	cfg := Default()
	err := cfg.Decode(strings.NewReader("bakend: tty\n"))
	assert.Error(t, err)
}

func TestDecodeEmpty(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Decode(strings.NewReader("\n")))
	assert.Equal(t, Default(), cfg)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		msg    string
	}{
		{"backend", func(c *Config) { c.Backend = "serial" }, "backend"},
		{"timeout", func(c *Config) { c.ReadTimeout = 0 }, "read_timeout"},
		{"mouse", func(c *Config) { c.MouseMode = "all" }, "mouse_mode"},
		{"iterations", func(c *Config) { c.MaxIterations = -1 }, "max_iterations"},
		{"sleep", func(c *Config) { c.CycleSleep = -time.Millisecond }, "cycle_sleep"},
		{"esc timeout", func(c *Config) { c.EscTimeout = -time.Millisecond }, "esc_timeout"},
		{"rows", func(c *Config) { c.TraceRows = 0 }, "trace_rows"},
		{"level", func(c *Config) { c.Log.Level = "loud" }, "log level"},
		{"script", func(c *Config) { c.Backend = BackendScript }, "script"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestValidateReportsAllErrors(t *testing.T) {
	cfg := Default()
	cfg.Backend = "serial"
	cfg.TraceRows = 0

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "backend")
	assert.Contains(t, err.Error(), "trace_rows")
}
