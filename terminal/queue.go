package terminal

// InputQueueSize is the capacity of InputQueue in bytes
const InputQueueSize = 64

// InputQueue is a fixed-capacity FIFO of raw input bytes awaiting decoding
// Zero value is an empty, ready to use queue
type InputQueue struct {
	buf  [InputQueueSize]byte
	head int // index of oldest byte
	n    int
}

// Extend appends bytes in order and returns how many were accepted
// Bytes beyond free capacity are rejected, never overwriting unread input
func (q *InputQueue) Extend(data []byte) int {
	accepted := 0
	for _, b := range data {
		if q.n == len(q.buf) {
			break
		}
		q.buf[(q.head+q.n)%len(q.buf)] = b
		q.n++
		accepted++
	}
	return accepted
}

// Len returns number of buffered bytes
func (q *InputQueue) Len() int {
	return q.n
}

// Free returns remaining capacity
func (q *InputQueue) Free() int {
	return len(q.buf) - q.n
}

// Pop removes and returns the oldest byte
func (q *InputQueue) Pop() (byte, bool) {
	if q.n == 0 {
		return 0, false
	}
	b := q.buf[q.head]
	q.head = (q.head + 1) % len(q.buf)
	q.n--
	return b, true
}

// Peek returns the byte at offset i from the oldest without removing it
func (q *InputQueue) Peek(i int) (byte, bool) {
	if i < 0 || i >= q.n {
		return 0, false
	}
	return q.buf[(q.head+i)%len(q.buf)], true
}

// Clear drops all buffered bytes
func (q *InputQueue) Clear() {
	q.head = 0
	q.n = 0
}
