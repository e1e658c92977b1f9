//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package terminal

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
)

// TtySource reads /dev/tty through tcell's Tty, independent of stdin redirection
// A reader goroutine feeds chunks to ReadInput, which waits at most the timeout
type TtySource struct {
	tty     tcell.Tty
	timeout time.Duration

	dataCh chan []byte
	errCh  chan error
	stopCh chan struct{}
	doneCh chan struct{}

	// Chunk handed out by the last ReadInput, recycled on the next call
	last []byte
	pool sync.Pool

	started bool
}

// NewTtySource opens /dev/tty; ReadInput waits at most timeout
func NewTtySource(timeout time.Duration) (*TtySource, error) {
	tty, err := tcell.NewDevTty()
	if err != nil {
		return nil, fmt.Errorf("open tty: %w", err)
	}
	s := &TtySource{
		tty:     tty,
		timeout: timeout,
		dataCh:  make(chan []byte, 16),
		errCh:   make(chan error, 1),
		stopCh:  make(chan struct{}),
		doneCh:  make(chan struct{}),
	}
	s.pool.New = func() any {
		b := make([]byte, InputQueueSize)
		return &b
	}
	return s, nil
}

// Open puts the tty in raw mode and starts the reader
func (s *TtySource) Open() error {
	if err := s.tty.Start(); err != nil {
		return fmt.Errorf("start tty: %w", err)
	}
	s.started = true
	go s.readLoop()
	return nil
}

// Writer returns the tty as an output stream for a WriterPAL
func (s *TtySource) Writer() io.Writer {
	return s.tty
}

// Size returns the tty window size, falling back to the defaults
func (s *TtySource) Size() (int, int) {
	ws, err := s.tty.WindowSize()
	if err != nil || ws.Width <= 0 || ws.Height <= 0 {
		return DefaultCols, DefaultRows
	}
	return ws.Width, ws.Height
}

// Close stops the reader, restores the tty mode and releases the device
func (s *TtySource) Close() error {
	if s.started {
		close(s.stopCh)
		// Stop restores cooked mode and unblocks the pending Read
		_ = s.tty.Drain()
		err := s.tty.Stop()
		<-s.doneCh
		s.started = false
		if err != nil {
			s.tty.Close()
			return err
		}
	}
	return s.tty.Close()
}

// ReadInput returns the next chunk read from the tty, waiting up to the timeout
func (s *TtySource) ReadInput() ([]byte, bool) {
	if s.last != nil {
		b := s.last[:cap(s.last)]
		s.pool.Put(&b)
		s.last = nil
	}

	timer := time.NewTimer(s.timeout)
	defer timer.Stop()

	select {
	case chunk := <-s.dataCh:
		s.last = chunk
		return chunk, false
	case <-s.errCh:
		return nil, true
	case <-timer.C:
		return nil, false
	}
}

func (s *TtySource) readLoop() {
	defer close(s.doneCh)

	for {
		bp := s.pool.Get().(*[]byte)
		buf := (*bp)[:InputQueueSize]
		n, err := s.tty.Read(buf)
		if n > 0 {
			select {
			case s.dataCh <- buf[:n]:
			case <-s.stopCh:
				return
			}
		} else {
			s.pool.Put(bp)
		}
		if err != nil {
			select {
			case <-s.stopCh:
			default:
				s.errCh <- err
			}
			return
		}
	}
}
