//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package terminal

import (
	"fmt"
	"os"
	"time"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// StdioSource reads raw bytes from stdin in raw mode with a bounded wait
type StdioSource struct {
	in      *os.File
	inFd    int
	oldTerm *term.State
	timeout time.Duration
	buf     [InputQueueSize]byte
}

// NewStdioSource creates a stdin source; ReadInput waits at most timeout
func NewStdioSource(timeout time.Duration) *StdioSource {
	return &StdioSource{
		in:      os.Stdin,
		inFd:    int(os.Stdin.Fd()),
		timeout: timeout,
	}
}

// Open enters raw mode
func (s *StdioSource) Open() error {
	if !term.IsTerminal(s.inFd) {
		return fmt.Errorf("stdin is not a terminal")
	}

	old, err := term.MakeRaw(s.inFd)
	if err != nil {
		return fmt.Errorf("raw mode: %w", err)
	}
	s.oldTerm = old
	return nil
}

// Close restores the saved terminal mode, safe to call multiple times
func (s *StdioSource) Close() error {
	if s.oldTerm == nil {
		return nil
	}
	err := term.Restore(s.inFd, s.oldTerm)
	s.oldTerm = nil
	return err
}

// ReadInput polls stdin for up to the configured timeout
func (s *StdioSource) ReadInput() ([]byte, bool) {
	fds := []unix.PollFd{
		{Fd: int32(s.inFd), Events: unix.POLLIN},
	}

	n, err := unix.Poll(fds, int(s.timeout/time.Millisecond))
	if err != nil {
		if err == unix.EINTR {
			return nil, false
		}
		return nil, true
	}
	if n == 0 {
		return nil, false // Timeout
	}
	if fds[0].Revents&(unix.POLLHUP|unix.POLLERR|unix.POLLNVAL) != 0 && fds[0].Revents&unix.POLLIN == 0 {
		return nil, true
	}

	rn, err := unix.Read(s.inFd, s.buf[:])
	if err != nil {
		if err == unix.EINTR || err == unix.EAGAIN {
			return nil, false
		}
		return nil, true
	}
	if rn == 0 {
		// EOF
		return nil, true
	}
	return s.buf[:rn], false
}

// Size returns the terminal size of stdout
func (s *StdioSource) Size() (int, int) {
	return getTerminalSize(int(os.Stdout.Fd()))
}

// getTerminalSize returns the terminal size for a given fd
func getTerminalSize(fd int) (int, int) {
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil {
		return DefaultCols, DefaultRows
	}
	return int(ws.Col), int(ws.Row)
}

// resetTerminalMode attempts to restore terminal to cooked mode
// Best-effort for crash recovery; errors ignored
func resetTerminalMode() {
	// Try to restore via /dev/tty (works even if stdin redirected)
	if tty, err := os.OpenFile("/dev/tty", os.O_RDWR, 0); err == nil {
		defer tty.Close()
		fd := int(tty.Fd())
		if termios, err := unix.IoctlGetTermios(fd, ioctlGetTermios); err == nil {
			termios.Lflag |= unix.ECHO | unix.ICANON | unix.ISIG | unix.IEXTEN
			termios.Iflag |= unix.ICRNL
			unix.IoctlSetTermios(fd, ioctlSetTermios, termios)
		}
	}
}
