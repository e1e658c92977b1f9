// Package app drives the render loop of a single active window.
package app

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/lixenwraith/termwins/draw"
	"github.com/lixenwraith/termwins/terminal"
	"github.com/lixenwraith/termwins/trace"
	"github.com/lixenwraith/termwins/window"
)

var (
	ErrNoTerminal = errors.New("no terminal output")
	ErrNoSource   = errors.New("no input source")
	ErrNoWindow   = errors.New("no window state")
)

// StopReason tells why Run returned
type StopReason uint8

const (
	StopNone StopReason = iota
	StopQuitKey
	StopSourceQuit
	StopMaxIterations
	StopCanceled
)

var stopNames = [...]string{
	StopNone:          "none",
	StopQuitKey:       "quit key",
	StopSourceQuit:    "input closed",
	StopMaxIterations: "iteration limit",
	StopCanceled:      "canceled",
}

func (r StopReason) String() string {
	if int(r) < len(stopNames) {
		return stopNames[r]
	}
	return "unknown"
}

// Options tunes the loop; zero values disable the respective feature
type Options struct {
	MouseMode     terminal.MouseMode
	MaxIterations int
	CycleSleep    time.Duration
	ExitDelay     time.Duration
	// EscTimeout is how long a partial sequence may stay pending before an
	// empty read forces it out as literals (a lone ESC becomes Escape)
	EscTimeout time.Duration
}

// Loop owns the terminal and the decoding state for one window
type Loop struct {
	Term   *terminal.Terminal
	Source terminal.InputSource
	Window window.State
	Tracer *trace.Tracer
	Log    *slog.Logger
	Opts   Options
	// Screen, when set, is checked once at startup for room to fit the window and trace area
	Screen terminal.Sizer

	queue   terminal.InputQueue
	decoder terminal.Decoder
	ii      terminal.InputInfo

	// pendingSince is when the decoder last went from idle to holding a partial sequence
	pendingSince time.Time
	now          func() time.Time

	iterations int
	reason     StopReason
}

// IsQuit reports the quit command: 'D' with Ctrl, other modifiers allowed
func IsQuit(ii *terminal.InputInfo) bool {
	return ii.Kind == terminal.InputChar && ii.Rune == 'D' && ii.Mod.Ctrl()
}

// TraceRow returns the first row below the window: window row + height + 1
func TraceRow(ws window.State) int {
	return window.Coord(ws).Row + window.Size(ws).Height + 1
}

// Iterations returns the number of completed cycles
func (l *Loop) Iterations() int {
	return l.iterations
}

// Reason returns why the last Run stopped
func (l *Loop) Reason() StopReason {
	return l.reason
}

// Run executes prologue, cycles until a stop condition, then the epilogue
// Only missing collaborators are reported; per-cycle problems are logged and absorbed
func (l *Loop) Run(ctx context.Context) error {
	switch {
	case l.Term == nil || l.Term.PAL() == nil:
		return ErrNoTerminal
	case l.Source == nil:
		return ErrNoSource
	case l.Window == nil:
		return ErrNoWindow
	}
	if l.Log == nil {
		l.Log = slog.Default()
	}
	if l.now == nil {
		l.now = time.Now
	}

	l.iterations = 0
	l.reason = StopNone
	l.pendingSince = time.Time{}
	l.prologue()

	for l.reason == StopNone {
		if err := ctx.Err(); err != nil {
			l.reason = StopCanceled
			break
		}
		l.reason = l.cycle()
		l.iterations++
		if l.reason == StopNone && l.Opts.MaxIterations > 0 && l.iterations >= l.Opts.MaxIterations {
			l.reason = StopMaxIterations
		}
	}

	l.Log.Info("exit requested", "reason", l.reason.String(), "cycles", l.iterations)
	l.epilogue()
	return nil
}

func (l *Loop) prologue() {
	term := l.Term
	term.TraceRow = TraceRow(l.Window)
	term.Reset()
	term.MouseMode(l.Opts.MouseMode)
	draw.DrawWindow(term, l.Window)
	l.checkFit()

	l.Log.Info("Press Ctrl-D to quit")
	l.traceFlush()
	term.Flush()
}

// cycle runs one read, decode, dispatch, redraw pass
func (l *Loop) cycle() StopReason {
	seq, quit := l.Source.ReadInput()

	if len(seq) > 0 {
		if reason := l.feed(seq); reason != StopNone {
			return reason
		}
	} else if l.escExpired() {
		// Source went quiet with a stale partial sequence: a lone ESC is the Escape key
		for l.decoder.FlushPending(&l.ii) > 0 {
			if l.dispatch() {
				return StopQuitKey
			}
			if reason := l.drain(); reason != StopNone {
				return reason
			}
		}
	}

	l.trackPending()

	draw.DrawInvalidated(l.Term, l.Window)
	l.traceFlush()
	l.Term.Flush()

	if quit {
		return StopSourceQuit
	}
	if l.Opts.CycleSleep > 0 {
		l.Term.Sleep(l.Opts.CycleSleep)
	}
	return StopNone
}

// trackPending stamps the moment a partial sequence starts waiting
func (l *Loop) trackPending() {
	switch {
	case l.decoder.Pending() == 0:
		l.pendingSince = time.Time{}
	case l.pendingSince.IsZero():
		l.pendingSince = l.now()
	}
}

// escExpired reports whether pending bytes have waited longer than EscTimeout
// A zero EscTimeout keeps partial sequences pending until more bytes arrive
func (l *Loop) escExpired() bool {
	if l.Opts.EscTimeout <= 0 || l.decoder.Pending() == 0 || l.pendingSince.IsZero() {
		return false
	}
	return l.now().Sub(l.pendingSince) >= l.Opts.EscTimeout
}

// feed queues raw bytes and dispatches every event they complete
func (l *Loop) feed(seq []byte) StopReason {
	for len(seq) > 0 {
		n := l.queue.Extend(seq)
		seq = seq[n:]
		if reason := l.drain(); reason != StopNone {
			return reason
		}
	}
	return StopNone
}

// drain decodes and dispatches until the queue runs dry
func (l *Loop) drain() StopReason {
	for l.decoder.DecodeInputSeq(&l.queue, &l.ii) > 0 {
		if l.dispatch() {
			return StopQuitKey
		}
	}
	return StopNone
}

// dispatch hands the current event to the window; reports true on the quit command
func (l *Loop) dispatch() bool {
	if IsQuit(&l.ii) {
		return true
	}
	if l.Log.Enabled(context.Background(), slog.LevelDebug) {
		l.Log.Debug("input", "name", l.ii.Name)
	}
	window.ProcessInput(l.Window, &l.ii)
	return false
}

// checkFit warns when the window or the trace area extends past the screen
func (l *Loop) checkFit() {
	if l.Screen == nil {
		return
	}
	cols, rows := l.Screen.Size()
	needCols := window.Coord(l.Window).Col + window.Size(l.Window).Width
	needRows := l.Term.TraceRow
	if l.Tracer != nil {
		needRows += l.Tracer.Rows()
	}
	if needCols > cols || needRows > rows {
		l.Log.Warn("window does not fit the terminal",
			"cols", cols, "rows", rows, "need_cols", needCols, "need_rows", needRows)
	}
}

func (l *Loop) epilogue() {
	term := l.Term
	term.MouseMode(terminal.MouseModeOff)
	term.Release()
	l.traceFlush()
	term.Flush()

	term.Sleep(l.Opts.ExitDelay)

	if l.Tracer != nil {
		l.Tracer.Clear(term)
	}
	term.MoveTo(0, term.TraceRow)
	term.Flush()
}

func (l *Loop) traceFlush() {
	if l.Tracer != nil {
		l.Tracer.Flush(l.Term)
	}
}
