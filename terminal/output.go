package terminal

import (
	"io"
	"strings"
	"time"
)

// PAL is the platform abstraction for character output and timing
// Implementations buffer; nothing is guaranteed visible before Flush
type PAL interface {
	WriteChar(c rune, repeat int)
	WriteString(s string, repeat int)
	Flush()
	Sleep(d time.Duration)
}

// DefaultFlushThreshold is the buffered size past which WriterPAL flushes on its own
const DefaultFlushThreshold = 50

// WriterPAL implements PAL over an io.Writer with a line buffer
// Write errors are swallowed: a dropped frame is preferable to a halted loop
type WriterPAL struct {
	w         io.Writer
	buf       []byte
	threshold int
	sleep     func(time.Duration)
	err       error // last write error, informational
}

// NewWriterPAL creates a PAL writing to w
func NewWriterPAL(w io.Writer) *WriterPAL {
	return &WriterPAL{
		w:         w,
		buf:       make([]byte, 0, 256),
		threshold: DefaultFlushThreshold,
		sleep:     time.Sleep,
	}
}

// SetFlushThreshold changes the auto-flush size; n <= 0 disables auto-flush
func (p *WriterPAL) SetFlushThreshold(n int) {
	p.threshold = n
}

// SetSleep replaces the sleep implementation (simulation targets, tests)
func (p *WriterPAL) SetSleep(fn func(time.Duration)) {
	if fn == nil {
		fn = func(time.Duration) {}
	}
	p.sleep = fn
}

// WriteChar appends c repeat times
func (p *WriterPAL) WriteChar(c rune, repeat int) {
	for i := 0; i < repeat; i++ {
		if c < 0x80 {
			p.buf = append(p.buf, byte(c))
		} else {
			p.buf = append(p.buf, string(c)...)
		}
	}
	p.autoFlush()
}

// WriteString appends s repeat times
func (p *WriterPAL) WriteString(s string, repeat int) {
	if repeat <= 0 || s == "" {
		return
	}
	if repeat == 1 {
		p.buf = append(p.buf, s...)
	} else {
		p.buf = append(p.buf, strings.Repeat(s, repeat)...)
	}
	p.autoFlush()
}

// Flush writes the buffered bytes
func (p *WriterPAL) Flush() {
	if len(p.buf) == 0 {
		return
	}
	if _, err := p.w.Write(p.buf); err != nil {
		p.err = err
	}
	p.buf = p.buf[:0]
}

// Sleep pauses for d
func (p *WriterPAL) Sleep(d time.Duration) {
	if d > 0 {
		p.sleep(d)
	}
}

// Buffered returns the number of bytes waiting for Flush
func (p *WriterPAL) Buffered() int {
	return len(p.buf)
}

// Err returns the last swallowed write error
func (p *WriterPAL) Err() error {
	return p.err
}

func (p *WriterPAL) autoFlush() {
	if p.threshold > 0 && len(p.buf) > p.threshold {
		p.Flush()
	}
}
