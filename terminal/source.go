package terminal

// InputSource delivers raw input bytes from the platform
// ReadInput returns promptly (non-blocking or bounded wait) with zero or more bytes;
// the returned slice is only valid until the next call. quit reports an
// out-of-band termination request (input closed, platform signal)
type InputSource interface {
	ReadInput() (seq []byte, quit bool)
}

// Sizer reports the terminal dimensions in cells
type Sizer interface {
	Size() (cols, rows int)
}

// Fallback dimensions when the platform cannot report a size
const (
	DefaultCols = 80
	DefaultRows = 24
)

// ScriptSource replays pre-recorded input chunks, one per ReadInput
// Used by simulation targets and tests
type ScriptSource struct {
	chunks    [][]byte
	pos       int
	quitAtEnd bool
}

// NewScriptSource creates a source replaying chunks in order
// When quitAtEnd is set, the read after the last chunk reports quit
func NewScriptSource(quitAtEnd bool, chunks ...[]byte) *ScriptSource {
	return &ScriptSource{chunks: chunks, quitAtEnd: quitAtEnd}
}

// NewScriptSourceStrings is NewScriptSource for string chunks
func NewScriptSourceStrings(quitAtEnd bool, chunks ...string) *ScriptSource {
	b := make([][]byte, len(chunks))
	for i, c := range chunks {
		b[i] = []byte(c)
	}
	return NewScriptSource(quitAtEnd, b...)
}

// ReadInput returns the next chunk, or nothing once exhausted
func (s *ScriptSource) ReadInput() ([]byte, bool) {
	if s.pos >= len(s.chunks) {
		return nil, s.quitAtEnd
	}
	c := s.chunks[s.pos]
	s.pos++
	return c, false
}

// Remaining returns the number of chunks not yet delivered
func (s *ScriptSource) Remaining() int {
	return len(s.chunks) - s.pos
}
