// Package draw renders window widgets to a terminal.
//
// Output goes through the caller's Terminal buffer; DrawWindow and Draw do
// not flush. Containers repaint their background, so drawing a container
// redraws its whole subtree.
package draw

import (
	"github.com/lixenwraith/termwins/terminal"
	"github.com/lixenwraith/termwins/widget"
	"github.com/lixenwraith/termwins/window"
)

// DrawWindow draws every widget of the window
func DrawWindow(term *terminal.Terminal, ws window.State) {
	wgts := ws.Widgets()
	if len(wgts) == 0 {
		return
	}
	drawSubtree(term, ws, wgts, 0)
	term.ResetAttr()
}

// Draw redraws the widgets with the given ids, each with its descendants
// Unknown ids are skipped
func Draw(term *terminal.Terminal, ws window.State, ids ...widget.ID) {
	wgts := ws.Widgets()
	for i, id := range ids {
		if seenBefore(ids[:i], id) {
			continue
		}
		idx, ok := widget.Find(wgts, id)
		if !ok {
			continue
		}
		drawSubtree(term, ws, wgts, idx)
	}
	term.ResetAttr()
}

// DrawInvalidated drains the window's invalidation set and redraws it
// Returns the number of ids taken
func DrawInvalidated(term *terminal.Terminal, ws window.State) int {
	ids := ws.TakeInvalidated()
	if len(ids) == 0 {
		return 0
	}
	Draw(term, ws, ids...)
	return len(ids)
}

// seenBefore reports whether id occurs in prev; invalidation lists are short
func seenBefore(prev []widget.ID, id widget.ID) bool {
	for _, p := range prev {
		if p == id {
			return true
		}
	}
	return false
}

func drawSubtree(term *terminal.Terminal, ws window.State, wgts []widget.Widget, idx int) {
	drawWidget(term, ws, wgts, idx)
	for ci := range widget.Children(wgts, idx) {
		drawSubtree(term, ws, wgts, ci)
	}
}

// drawWidget dispatches on the closed property variant
func drawWidget(term *terminal.Terminal, ws window.State, wgts []widget.Widget, idx int) {
	w := &wgts[idx]
	fg, bg := inheritedColors(wgts, idx)

	switch p := w.Prop.(type) {
	case widget.Window:
		line := LineDouble
		if p.IsPopup {
			line = LineSingle
		}
		drawFrame(term, w.Abs, w.Size, line, p.Title, fg, bg)
	case widget.Panel:
		line := LineSingle
		if p.NoFrame {
			line = LineNone
		}
		drawFrame(term, w.Abs, w.Size, line, p.Title, fg, bg)
	case widget.Label:
		drawLabel(term, w, p, fg, bg)
	case widget.Button:
		drawButton(term, w, p, fg, bg, ws.IsFocused(w), ws.IsEnabled(w))
	case widget.CheckBox:
		drawCheckBox(term, w, p, fg, bg, ws.IsFocused(w), ws.IsEnabled(w), ws.IsChecked(w))
	}
	term.ResetAttr()
}

// inheritedColors resolves default colors from the nearest ancestor that sets them
func inheritedColors(wgts []widget.Widget, idx int) (terminal.ColorFg, terminal.ColorBg) {
	var (
		fg terminal.ColorFg
		bg terminal.ColorBg
	)
	for i := idx; i >= 0 && i < len(wgts); i = wgts[i].Link.Parent {
		pfg, pbg := ownColors(wgts[i].Prop)
		if fg == terminal.ColorFgDefault {
			fg = pfg
		}
		if bg == terminal.ColorBgDefault {
			bg = pbg
		}
		if fg != terminal.ColorFgDefault && bg != terminal.ColorBgDefault {
			break
		}
	}
	return fg, bg
}

func ownColors(p widget.Prop) (terminal.ColorFg, terminal.ColorBg) {
	switch p := p.(type) {
	case widget.Window:
		return p.Fg, p.Bg
	case widget.Panel:
		return p.Fg, p.Bg
	case widget.Label:
		return p.Fg, p.Bg
	case widget.Button:
		return p.Fg, p.Bg
	case widget.CheckBox:
		return p.Fg, terminal.ColorBgDefault
	}
	return terminal.ColorFgDefault, terminal.ColorBgDefault
}
