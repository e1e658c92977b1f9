package draw

import (
	"github.com/lixenwraith/termwins/terminal"
	"github.com/lixenwraith/termwins/widget"
)

// drawFrame fills the rectangle with bg and draws a border with a centered title
func drawFrame(term *terminal.Terminal, at widget.Coord, sz widget.Size, line LineType, title string, fg terminal.ColorFg, bg terminal.ColorBg) {
	if sz.Width < 2 || sz.Height < 2 {
		return
	}
	c := chars(line)
	inner := sz.Width - 2

	term.SetColors(fg, bg)

	// Top edge with title
	term.MoveTo(at.Col, at.Row)
	term.WriteChar(c[boxTL], 1)
	drawTitle(term, title, inner, c[boxH], fg, bg)
	term.WriteChar(c[boxTR], 1)

	for r := 1; r < sz.Height-1; r++ {
		term.MoveTo(at.Col, at.Row+r)
		term.WriteChar(c[boxV], 1)
		term.WriteChar(' ', inner)
		term.WriteChar(c[boxV], 1)
	}

	term.MoveTo(at.Col, at.Row+sz.Height-1)
	term.WriteChar(c[boxBL], 1)
	term.WriteChar(c[boxH], inner)
	term.WriteChar(c[boxBR], 1)
}

// drawTitle writes " title " centered in width cells, padding with h
func drawTitle(term *terminal.Terminal, title string, width int, h rune, fg terminal.ColorFg, bg terminal.ColorBg) {
	tw := widget.TextWidth(title)
	if tw == 0 || width < 3 {
		term.WriteChar(h, width)
		return
	}
	tw = min(tw, width-2)
	left := (width - tw - 2) / 2
	term.WriteChar(h, left)
	term.WriteChar(' ', 1)
	used := term.WriteClipped(title, tw)
	// Title may carry its own attributes; restore the frame look
	term.ResetAttr()
	term.SetColors(fg, bg)
	term.WriteChar(' ', 1)
	term.WriteChar(h, width-left-2-used)
}

// drawLabel writes the label text clipped to the declared width, padding the rest
func drawLabel(term *terminal.Terminal, w *widget.Widget, p widget.Label, fg terminal.ColorFg, bg terminal.ColorBg) {
	sz := w.Bounds()
	term.MoveTo(w.Abs.Col, w.Abs.Row)
	term.SetColors(fg, bg)
	used := term.WriteClipped(p.Title, sz.Width)
	if pad := sz.Width - used; pad > 0 {
		term.ResetAttr()
		term.SetColors(fg, bg)
		term.WriteChar(' ', pad)
	}
}

// drawButton renders the button decoration for its style
func drawButton(term *terminal.Terminal, w *widget.Widget, p widget.Button, fg terminal.ColorFg, bg terminal.ColorBg, focused, enabled bool) {
	term.MoveTo(w.Abs.Col, w.Abs.Row)
	term.SetColors(fg, bg)
	applyState(term, focused, enabled)

	width := widget.TextWidth(p.Text)
	if !w.Size.IsZero() {
		width = max(w.Size.Width-p.Style.Decoration(), 0)
	}

	switch p.Style {
	case widget.ButtonSimple:
		term.Write("[ ")
		term.WriteClipped(p.Text, width)
		term.Write(" ]")
	case widget.ButtonBrackets:
		term.Write("[")
		term.WriteClipped(p.Text, width)
		term.Write("]")
	case widget.ButtonSolid:
		term.Write(" ")
		term.WriteClipped(p.Text, width)
		term.Write(" ")
	}
}

// Check mark characters
const (
	checkOff = ' '
	checkOn  = 'x'
)

// drawCheckBox renders "[x] text"
func drawCheckBox(term *terminal.Terminal, w *widget.Widget, p widget.CheckBox, fg terminal.ColorFg, bg terminal.ColorBg, focused, enabled, checked bool) {
	term.MoveTo(w.Abs.Col, w.Abs.Row)
	term.SetColors(fg, bg)
	applyState(term, focused, enabled)

	mark := checkOff
	if checked {
		mark = checkOn
	}
	term.WriteChar('[', 1)
	term.WriteChar(mark, 1)
	term.WriteChar(']', 1)
	term.WriteChar(' ', 1)

	width := widget.TextWidth(p.Text)
	if !w.Size.IsZero() {
		width = max(w.Size.Width-4, 0)
	}
	term.WriteClipped(p.Text, width)
}

// applyState emits focus and disabled attributes
func applyState(term *terminal.Terminal, focused, enabled bool) {
	if !enabled {
		term.Write(terminal.Faint)
		return
	}
	if focused {
		term.Write(terminal.Bold)
		term.Write(terminal.Inverse)
	}
}
