package terminal

import (
	"io"
	"os"
	"time"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// Terminal is the render output resource: escape-sequence helpers over a PAL
// Owned by the render loop and lent to renderers; not safe for concurrent use
type Terminal struct {
	pal       PAL
	mouseMode MouseMode
	scratch   []byte

	// TraceRow is the first screen row of the trace area (below the window)
	TraceRow int
}

// New creates a Terminal writing through pal
func New(pal PAL) *Terminal {
	return &Terminal{
		pal:     pal,
		scratch: make([]byte, 0, 32),
	}
}

// PAL returns the underlying platform output
func (t *Terminal) PAL() PAL {
	return t.pal
}

// Write emits s once
func (t *Terminal) Write(s string) {
	t.pal.WriteString(s, 1)
}

// WriteChar emits c repeat times
func (t *Terminal) WriteChar(c rune, repeat int) {
	t.pal.WriteChar(c, repeat)
}

// WriteClipped emits s limited to width display cells and returns the cells used
// Escape sequences embedded in s pass through without counting
func (t *Terminal) WriteClipped(s string, width int) int {
	used := 0
	for i := 0; i < len(s); {
		if s[i] == keyEsc {
			i = escapeEnd(s, i)
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		w := runewidth.RuneWidth(r)
		if used+w > width {
			t.pal.WriteString(s[:i], 1)
			// Keep trailing attribute resets so styles do not leak
			t.pal.WriteString(trailingEscapes(s[i:]), 1)
			return used
		}
		used += w
		i += size
	}
	t.pal.WriteString(s, 1)
	return used
}

// MoveTo positions the cursor (0-indexed)
func (t *Terminal) MoveTo(col, row int) {
	t.scratch = appendCursorPos(t.scratch[:0], col, row)
	t.pal.WriteString(string(t.scratch), 1)
}

// SetColors emits foreground and background selection
func (t *Terminal) SetColors(fg ColorFg, bg ColorBg) {
	t.pal.WriteString(fg.Seq(), 1)
	t.pal.WriteString(bg.Seq(), 1)
}

// ResetAttr restores default colors and attributes
func (t *Terminal) ResetAttr() {
	t.pal.WriteString(SGRReset, 1)
}

// Reset issues the full terminal reset and disables auto-wrap
func (t *Terminal) Reset() {
	t.pal.WriteString(TermReset, 1)
	t.pal.WriteString(AutoWrapOff, 1)
}

// Release restores auto-wrap after Reset
func (t *Terminal) Release() {
	t.pal.WriteString(AutoWrapOn, 1)
}

// ClearLines erases count rows starting at row and leaves the cursor at row
func (t *Terminal) ClearLines(row, count int) {
	for i := 0; i < count; i++ {
		t.MoveTo(0, row+i)
		t.pal.WriteString(LineClear, 1)
	}
	t.MoveTo(0, row)
}

// MouseMode switches mouse reporting, emitting only the needed transitions
func (t *Terminal) MouseMode(mode MouseMode) {
	old := t.mouseMode
	if old == mode {
		return
	}
	t.mouseMode = mode

	// Disable previous level
	switch old {
	case MouseModeMotion:
		t.pal.WriteString(MouseMotionOff, 1)
	case MouseModeDrag:
		t.pal.WriteString(MouseDragOff, 1)
	case MouseModeClick:
		t.pal.WriteString(MouseClickOff, 1)
	}

	if mode == MouseModeOff {
		t.pal.WriteString(MouseSGROff, 1)
		return
	}
	if old == MouseModeOff {
		t.pal.WriteString(MouseSGROn, 1)
	}

	switch mode {
	case MouseModeClick:
		t.pal.WriteString(MouseClickOn, 1)
	case MouseModeDrag:
		t.pal.WriteString(MouseDragOn, 1)
	case MouseModeMotion:
		t.pal.WriteString(MouseMotionOn, 1)
	}
}

// CurrentMouseMode returns the active mouse reporting mode
func (t *Terminal) CurrentMouseMode() MouseMode {
	return t.mouseMode
}

// Flush pushes buffered output to the platform
func (t *Terminal) Flush() {
	t.pal.Flush()
}

// Sleep delegates to the platform timer
func (t *Terminal) Sleep(d time.Duration) {
	t.pal.Sleep(d)
}

// EmergencyReset attempts to restore terminal to sane state
// Call this from panic recovery if the loop epilogue cannot run
func EmergencyReset(w io.Writer) {
	io.WriteString(w, MouseMotionOff)
	io.WriteString(w, MouseDragOff)
	io.WriteString(w, MouseClickOff)
	io.WriteString(w, MouseSGROff)
	io.WriteString(w, PasteOff)
	io.WriteString(w, CursorShow)
	io.WriteString(w, SGRReset)
	io.WriteString(w, AutoWrapOn)

	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	// Escape sequences alone don't restore termios
	resetTerminalMode()
}

// escapeEnd returns the index just past the escape sequence starting at i
func escapeEnd(s string, i int) int {
	if i+1 >= len(s) {
		return len(s)
	}
	if s[i+1] != '[' {
		return i + 2
	}
	j := i + 2
	for j < len(s) && (s[j] < 0x40 || s[j] > 0x7e) {
		j++
	}
	if j < len(s) {
		j++
	}
	return j
}

// trailingEscapes collects the escape sequences in s, dropping visible text
func trailingEscapes(s string) string {
	var out []byte
	for i := 0; i < len(s); {
		if s[i] == keyEsc {
			j := escapeEnd(s, i)
			out = append(out, s[i:j]...)
			i = j
			continue
		}
		i++
	}
	return string(out)
}
