// Package window holds the mutable state of the active window and the
// dispatcher that applies decoded input to it.
package window

import (
	"github.com/lixenwraith/termwins/terminal"
	"github.com/lixenwraith/termwins/widget"
)

// State is the capability set a host implements once per window
// Embed Base for the focus and invalidation bookkeeping; the host supplies the
// widget callbacks and InstantRedraw
type State interface {
	// Widgets returns the compiled flat array; the window is element 0
	Widgets() []widget.Widget

	FocusedID() widget.ID
	SetFocusedID(id widget.ID)
	IsFocused(w *widget.Widget) bool
	IsEnabled(w *widget.Widget) bool
	IsChecked(w *widget.Widget) bool

	// Invoked exactly once per qualifying activation
	OnButtonClick(w *widget.Widget, ii *terminal.InputInfo)
	OnCheckBoxToggle(w *widget.Widget, ii *terminal.InputInfo)

	InvalidateMany(ids ...widget.ID)
	ClearInvalidated()
	// TakeInvalidated empties the set and returns its prior contents
	TakeInvalidated() []widget.ID

	// InstantRedraw draws and flushes one widget immediately
	// Must not be called while a redraw is in progress
	InstantRedraw(id widget.ID)
}

// Base implements the focus and invalidation part of State
type Base struct {
	wgts        []widget.Widget
	focused     widget.ID
	invalidated []widget.ID
	spare       []widget.ID
}

// NewBase creates window state over a compiled widget array, nothing focused
func NewBase(wgts []widget.Widget) Base {
	return Base{
		wgts:        wgts,
		invalidated: make([]widget.ID, 0, len(wgts)),
		spare:       make([]widget.ID, 0, len(wgts)),
	}
}

// Widgets returns the compiled widget array
func (b *Base) Widgets() []widget.Widget {
	return b.wgts
}

// FocusedID returns the focused widget id, IDNone if nothing has focus
func (b *Base) FocusedID() widget.ID {
	return b.focused
}

// SetFocusedID stores the focused widget id
func (b *Base) SetFocusedID(id widget.ID) {
	b.focused = id
}

// IsFocused reports whether w holds focus
func (b *Base) IsFocused(w *widget.Widget) bool {
	return w.ID != widget.IDNone && w.ID == b.focused
}

// IsEnabled reports true; hosts override to disable widgets
func (b *Base) IsEnabled(*widget.Widget) bool {
	return true
}

// IsChecked reports false; hosts with check boxes override it
func (b *Base) IsChecked(*widget.Widget) bool {
	return false
}

// InvalidateMany marks widgets for redraw; duplicates and IDNone are tolerated
func (b *Base) InvalidateMany(ids ...widget.ID) {
	for _, id := range ids {
		if id != widget.IDNone {
			b.invalidated = append(b.invalidated, id)
		}
	}
}

// ClearInvalidated discards pending invalidations
func (b *Base) ClearInvalidated() {
	b.invalidated = b.invalidated[:0]
}

// TakeInvalidated swaps out the invalidation set
// The returned slice stays valid until the next TakeInvalidated
func (b *Base) TakeInvalidated() []widget.ID {
	out := b.invalidated
	b.invalidated = b.spare[:0]
	b.spare = out
	return out
}

// PendingInvalidated returns the number of queued invalidations
func (b *Base) PendingInvalidated() int {
	return len(b.invalidated)
}

// Coord returns the window's screen position
func Coord(ws State) widget.Coord {
	if wgts := ws.Widgets(); len(wgts) > 0 {
		return wgts[0].Coord
	}
	return widget.Coord{}
}

// Size returns the window's size
func Size(ws State) widget.Size {
	if wgts := ws.Widgets(); len(wgts) > 0 {
		return wgts[0].Size
	}
	return widget.Size{}
}
