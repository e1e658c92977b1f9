package terminal

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWriterPALBuffersUntilFlush(t *testing.T) {
	var out bytes.Buffer
	p := NewWriterPAL(&out)

	p.WriteString("ab", 2)
	p.WriteChar('ż', 1)
	p.WriteChar('-', 3)

	assert.Zero(t, out.Len())
	assert.Equal(t, len("ababż---"), p.Buffered())

	p.Flush()
	assert.Equal(t, "ababż---", out.String())
	assert.Zero(t, p.Buffered())
}

// TestWriterPALAutoFlush verifies the buffer is pushed once it exceeds the threshold
func TestWriterPALAutoFlush(t *testing.T) {
	var out bytes.Buffer
	p := NewWriterPAL(&out)

	p.WriteString(strings.Repeat("x", DefaultFlushThreshold), 1)
	assert.Zero(t, out.Len())

	p.WriteChar('y', 1)
	assert.Equal(t, DefaultFlushThreshold+1, out.Len())
	assert.Zero(t, p.Buffered())
}

func TestWriterPALThresholdDisabled(t *testing.T) {
	var out bytes.Buffer
	p := NewWriterPAL(&out)
	p.SetFlushThreshold(0)

	p.WriteString("z", 500)
	assert.Zero(t, out.Len())
	assert.Equal(t, 500, p.Buffered())
}

func TestWriterPALZeroRepeat(t *testing.T) {
	var out bytes.Buffer
	p := NewWriterPAL(&out)

	p.WriteString("abc", 0)
	p.WriteChar('a', 0)
	p.Flush()
	assert.Zero(t, out.Len())
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestWriterPALSwallowsErrors(t *testing.T) {
	p := NewWriterPAL(failWriter{})

	p.WriteString("lost", 1)
	p.Flush()

	assert.Error(t, p.Err())
	assert.Zero(t, p.Buffered())
}

func TestWriterPALSleep(t *testing.T) {
	p := NewWriterPAL(&bytes.Buffer{})

	var slept []time.Duration
	p.SetSleep(func(d time.Duration) { slept = append(slept, d) })

	p.Sleep(50 * time.Millisecond)
	p.Sleep(0)
	assert.Equal(t, []time.Duration{50 * time.Millisecond}, slept)

	p.SetSleep(nil)
	p.Sleep(time.Hour) // no-op, must return immediately
}
