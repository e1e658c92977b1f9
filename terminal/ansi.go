package terminal

import "strconv"

// Escape sequences issued by the Terminal and widget renderers
const (
	ESC = "\x1b"
	CSI = "\x1b["

	// Reset to initial state plus SGR reset; issued once at startup
	TermReset = "\x1bc\x1b[0m"
	SGRReset  = "\x1b[0m"

	// Cursor control
	CursorHide = "\x1b[?25l"
	CursorShow = "\x1b[?25h"
	CursorHome = "\x1b[H"

	// Erase
	ScreenClear   = "\x1b[2J"
	LineClear     = "\x1b[2K"
	LineClearEnd  = "\x1b[0K"
	ScreenClearDn = "\x1b[0J"

	// Auto-wrap (DECAWM); off prevents scroll when writing to the bottom-right cell
	AutoWrapOn  = "\x1b[?7h"
	AutoWrapOff = "\x1b[?7l"

	// Mouse reporting
	MouseClickOn   = "\x1b[?1000h"
	MouseClickOff  = "\x1b[?1000l"
	MouseDragOn    = "\x1b[?1002h"
	MouseDragOff   = "\x1b[?1002l"
	MouseMotionOn  = "\x1b[?1003h"
	MouseMotionOff = "\x1b[?1003l"
	MouseSGROn     = "\x1b[?1006h"
	MouseSGROff    = "\x1b[?1006l"

	// Bracketed paste
	PasteOn  = "\x1b[?2004h"
	PasteOff = "\x1b[?2004l"

	// Attributes
	Bold         = "\x1b[1m"
	Normal       = "\x1b[22m"
	Faint        = "\x1b[2m"
	Italic       = "\x1b[3m"
	ItalicOff    = "\x1b[23m"
	Underline    = "\x1b[4m"
	UnderlineOff = "\x1b[24m"
	Blink        = "\x1b[5m"
	BlinkOff     = "\x1b[25m"
	Inverse      = "\x1b[7m"
	InverseOff   = "\x1b[27m"

	FgDefault = "\x1b[39m"
	BgDefault = "\x1b[49m"
)

// appendInt writes a decimal integer without fmt
// Negative values are clamped to 0, terminals have no negative coordinates
func appendInt(b []byte, n int) []byte {
	if n < 0 {
		n = 0
	}
	return strconv.AppendInt(b, int64(n), 10)
}

// appendCursorPos appends a cursor positioning sequence (0-indexed input)
func appendCursorPos(b []byte, col, row int) []byte {
	col, row = max(col, 0), max(row, 0)
	b = append(b, CSI...)
	b = appendInt(b, row+1)
	b = append(b, ';')
	b = appendInt(b, col+1)
	return append(b, 'H')
}

// StripEscapes returns s without CSI/ESC sequences, used to measure visible text
func StripEscapes(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); {
		if s[i] == keyEsc {
			i = escapeEnd(s, i)
			continue
		}
		out = append(out, s[i])
		i++
	}
	return string(out)
}
