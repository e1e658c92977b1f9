package window

import (
	"log/slog"

	"github.com/lixenwraith/termwins/terminal"
	"github.com/lixenwraith/termwins/widget"
)

// direction of focus navigation
type direction int8

const (
	dirPrev direction = -1
	dirNext direction = 1
)

// ProcessInput applies one decoded event to the window
// Returns true when the event was consumed by navigation or activation.
// Global commands such as quit are the host's concern and must be checked first
func ProcessInput(ws State, ii *terminal.InputInfo) bool {
	switch ii.Kind {
	case terminal.InputKey:
		switch ii.Key {
		case terminal.KeyTab:
			if ii.Mod.Shift() {
				return moveFocus(ws, dirPrev)
			}
			return moveFocus(ws, dirNext)
		case terminal.KeyBacktab, terminal.KeyUp, terminal.KeyLeft:
			return moveFocus(ws, dirPrev)
		case terminal.KeyDown, terminal.KeyRight:
			return moveFocus(ws, dirNext)
		case terminal.KeyEnter:
			return activateFocused(ws, ii)
		}

	case terminal.InputChar:
		if ii.IsChar(' ', terminal.ModNone) {
			return activateFocused(ws, ii)
		}

	case terminal.InputMouse:
		if ii.Mouse.Btn == terminal.MouseBtnLeft && ii.Mouse.Action == terminal.MouseActionPress {
			return clickAt(ws, ii)
		}
	}
	return false
}

// canFocus reports whether w can receive focus right now
func canFocus(ws State, w *widget.Widget) bool {
	return widget.Focusable(w) && ws.IsEnabled(w)
}

// moveFocus advances focus to the next/previous focusable widget in flat order, wrapping
func moveFocus(ws State, dir direction) bool {
	wgts := ws.Widgets()
	cur := ws.FocusedID()

	start := widget.NoIndex
	if cur != widget.IDNone {
		i, ok := widget.Find(wgts, cur)
		if !ok {
			slog.Warn("unknown focused widget", "id", cur)
			return false
		}
		start = i
	}

	next := widget.NoIndex
	if start == widget.NoIndex {
		// Nothing focused yet: either direction lands on the first focusable
		for i := range wgts {
			if canFocus(ws, &wgts[i]) {
				next = i
				break
			}
		}
	} else {
		n := len(wgts)
		for step := 1; step <= n; step++ {
			i := ((start+int(dir)*step)%n + n) % n
			if canFocus(ws, &wgts[i]) {
				next = i
				break
			}
		}
	}

	if next == widget.NoIndex {
		return false
	}
	changeFocus(ws, wgts[next].ID)
	return true
}

// changeFocus stores the new focus and invalidates both old and new widget
func changeFocus(ws State, id widget.ID) {
	old := ws.FocusedID()
	if old == id {
		return
	}
	ws.SetFocusedID(id)
	ws.InvalidateMany(old, id)
	slog.Debug("focus changed", "from", old, "to", id)
}

// activateFocused runs the kind callback of the focused widget
func activateFocused(ws State, ii *terminal.InputInfo) bool {
	id := ws.FocusedID()
	if id == widget.IDNone {
		return false
	}
	w := widget.ByID(ws.Widgets(), id)
	if w == nil {
		slog.Warn("unknown focused widget", "id", id)
		return false
	}
	return activate(ws, w, ii)
}

// activate invokes the callback for w's kind and invalidates it
func activate(ws State, w *widget.Widget, ii *terminal.InputInfo) bool {
	if !ws.IsEnabled(w) {
		return false
	}
	switch w.Prop.(type) {
	case widget.Button:
		ws.OnButtonClick(w, ii)
	case widget.CheckBox:
		ws.OnCheckBoxToggle(w, ii)
	default:
		return false
	}
	ws.InvalidateMany(w.ID)
	return true
}

// clickAt focuses and activates the innermost focusable widget under the pointer
func clickAt(ws State, ii *terminal.InputInfo) bool {
	wgts := ws.Widgets()
	hit := widget.NoIndex
	// Pre-order: later matches are nested deeper or drawn on top
	for i := range wgts {
		if canFocus(ws, &wgts[i]) && wgts[i].Contains(ii.Mouse.Col, ii.Mouse.Row) {
			hit = i
		}
	}
	if hit == widget.NoIndex {
		return false
	}

	w := &wgts[hit]
	changeFocus(ws, w.ID)
	activate(ws, w, ii)
	return true
}
