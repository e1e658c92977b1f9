// Package trace provides the log/slog backend of the toolkit: records are kept
// as short formatted lines and painted into the trace area below the window.
package trace

import (
	"log/slog"
	"sync"

	"github.com/lixenwraith/termwins/terminal"
)

// entry is one formatted record
type entry struct {
	level slog.Level
	text  string
}

// Tracer keeps the most recent records for the on-screen trace area
// Handlers may be used from any goroutine; Flush and Clear run on the render loop
type Tracer struct {
	mu    sync.Mutex
	rows  int
	lines []entry
	dirty bool
}

// New creates a tracer showing at most rows lines
func New(rows int) *Tracer {
	if rows < 1 {
		rows = 1
	}
	return &Tracer{
		rows:  rows,
		lines: make([]entry, 0, rows),
	}
}

// Rows returns the height of the trace area
func (t *Tracer) Rows() int {
	return t.rows
}

func (t *Tracer) append(level slog.Level, text string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if len(t.lines) == t.rows {
		copy(t.lines, t.lines[1:])
		t.lines = t.lines[:len(t.lines)-1]
	}
	t.lines = append(t.lines, entry{level: level, text: text})
	t.dirty = true
}

// Lines returns the retained lines, oldest first, with their level tags
func (t *Tracer) Lines() []string {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]string, len(t.lines))
	for i, e := range t.lines {
		out[i] = levelTag(e.level) + e.text
	}
	return out
}

// Flush paints the trace area starting at term.TraceRow when records arrived
// Output stays in the terminal buffer; the caller flushes
func (t *Tracer) Flush(term *terminal.Terminal) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.dirty {
		return
	}
	t.dirty = false

	for i, e := range t.lines {
		term.MoveTo(0, term.TraceRow+i)
		term.Write(terminal.LineClear)
		if c := levelColor(e.level); c != terminal.ColorFgDefault {
			term.Write(c.Seq())
		}
		term.Write(levelTag(e.level))
		term.ResetAttr()
		term.Write(e.text)
	}
}

// Clear wipes the trace area and drops retained lines, leaving the cursor at its first row
func (t *Tracer) Clear(term *terminal.Terminal) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.lines = t.lines[:0]
	t.dirty = false
	term.ClearLines(term.TraceRow, t.rows)
}

func levelTag(l slog.Level) string {
	switch {
	case l >= slog.LevelError:
		return "[E] "
	case l >= slog.LevelWarn:
		return "[W] "
	case l >= slog.LevelInfo:
		return "[I] "
	default:
		return "[D] "
	}
}

func levelColor(l slog.Level) terminal.ColorFg {
	switch {
	case l >= slog.LevelError:
		return terminal.ColorFgRedIntense
	case l >= slog.LevelWarn:
		return terminal.ColorFgYellowIntense
	case l < slog.LevelInfo:
		return terminal.ColorFgBlackIntense
	default:
		return terminal.ColorFgDefault
	}
}
