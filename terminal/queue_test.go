package terminal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInputQueueFIFO(t *testing.T) {
	var q InputQueue

	assert.Equal(t, 3, q.Extend([]byte("abc")))
	assert.Equal(t, 3, q.Len())
	assert.Equal(t, InputQueueSize-3, q.Free())

	b, ok := q.Peek(1)
	assert.True(t, ok)
	assert.Equal(t, byte('b'), b)

	for _, want := range []byte("abc") {
		got, ok := q.Pop()
		assert.True(t, ok)
		assert.Equal(t, want, got)
	}

	_, ok = q.Pop()
	assert.False(t, ok)
}

// TestInputQueueOverflow verifies excess bytes are rejected, never overwriting
func TestInputQueueOverflow(t *testing.T) {
	var q InputQueue

	data := make([]byte, InputQueueSize+10)
	for i := range data {
		data[i] = byte(i)
	}

	assert.Equal(t, InputQueueSize, q.Extend(data))
	assert.Zero(t, q.Free())
	assert.Zero(t, q.Extend([]byte{0xff}))

	first, _ := q.Pop()
	assert.Equal(t, byte(0), first)
}

func TestInputQueueWrap(t *testing.T) {
	var q InputQueue

	for round := 0; round < 5; round++ {
		chunk := make([]byte, InputQueueSize-7)
		for i := range chunk {
			chunk[i] = byte(round + i)
		}
		assert.Equal(t, len(chunk), q.Extend(chunk))
		for i := range chunk {
			b, ok := q.Pop()
			assert.True(t, ok)
			assert.Equal(t, chunk[i], b)
		}
	}
	assert.Zero(t, q.Len())
}

func TestInputQueueClear(t *testing.T) {
	var q InputQueue
	q.Extend([]byte("xyz"))
	q.Clear()

	assert.Zero(t, q.Len())
	_, ok := q.Peek(0)
	assert.False(t, ok)
}
