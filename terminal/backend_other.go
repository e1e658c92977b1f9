//go:build !(linux || darwin || freebsd || netbsd || openbsd || dragonfly)

package terminal

import (
	"errors"
	"io"
	"time"
)

// errNoStdio is returned where raw stdin access is not implemented
var errNoStdio = errors.New("stdio source not supported on this platform")

// StdioSource is unavailable on this platform; Open always fails
type StdioSource struct{}

// NewStdioSource creates an unusable stdio source
func NewStdioSource(timeout time.Duration) *StdioSource {
	return &StdioSource{}
}

// Open reports the platform limitation
func (s *StdioSource) Open() error { return errNoStdio }

// Close is a no-op
func (s *StdioSource) Close() error { return nil }

// ReadInput always requests quit
func (s *StdioSource) ReadInput() ([]byte, bool) { return nil, true }

// Size returns the default dimensions
func (s *StdioSource) Size() (int, int) { return DefaultCols, DefaultRows }

func resetTerminalMode() {}

// TtySource is unavailable on this platform
type TtySource struct{ StdioSource }

// NewTtySource reports the platform limitation
func NewTtySource(timeout time.Duration) (*TtySource, error) {
	return nil, errNoStdio
}

// Writer discards output
func (s *TtySource) Writer() io.Writer { return io.Discard }
