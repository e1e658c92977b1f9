package main

import (
	"log/slog"

	"github.com/lixenwraith/termwins/draw"
	"github.com/lixenwraith/termwins/terminal"
	"github.com/lixenwraith/termwins/widget"
	"github.com/lixenwraith/termwins/window"
)

const (
	idWndMain widget.ID = iota + 1
	idLblTitle
	idBtnOK
	idBtnCancel
	idChkSound
)

var wndMain = widget.Widget{
	ID:    idWndMain,
	Coord: widget.Coord{Col: 10, Row: 2},
	Size:  widget.Size{Width: 40, Height: 9},
	Prop: widget.Window{
		Title: "Demo mini " + terminal.Underline + "(Ctrl+D to quit)" + terminal.UnderlineOff,
		Fg:    terminal.ColorFgWhite,
		Bg:    terminal.ColorBgBlue,
	},
	Children: []widget.Widget{
		{
			ID:    idLblTitle,
			Coord: widget.Coord{Col: 6, Row: 2},
			Prop: widget.Label{
				Title: terminal.Inverse + "Minimalistic termwins demo" + terminal.InverseOff,
				Fg:    terminal.ColorFgWhite,
				Bg:    terminal.ColorBgGreenIntense,
			},
		},
		{
			ID:    idBtnOK,
			Coord: widget.Coord{Col: 10, Row: 4},
			Prop: widget.Button{
				Text:  " OK ",
				Fg:    terminal.ColorFgGreen,
				Bg:    terminal.ColorBgBlack,
				Style: widget.ButtonSolid,
			},
		},
		{
			ID:    idBtnCancel,
			Coord: widget.Coord{Col: 22, Row: 4},
			Prop: widget.Button{
				Text:  "Cancel",
				Fg:    terminal.ColorFgRedIntense,
				Bg:    terminal.ColorBgBlack,
				Style: widget.ButtonSolid,
			},
		},
		{
			ID:    idChkSound,
			Coord: widget.Coord{Col: 10, Row: 6},
			Prop:  widget.CheckBox{Text: "Sound", Fg: terminal.ColorFgYellowIntense},
		},
	},
}

var wndMainWgts = widget.Compile(&wndMain)

// mainWndState is the state of the demo window
type mainWndState struct {
	window.Base
	term  *terminal.Terminal
	sound bool
}

func newMainWndState(term *terminal.Terminal) *mainWndState {
	return &mainWndState{Base: window.NewBase(wndMainWgts), term: term}
}

func (w *mainWndState) IsChecked(wgt *widget.Widget) bool {
	return wgt.ID == idChkSound && w.sound
}

func (w *mainWndState) OnButtonClick(wgt *widget.Widget, _ *terminal.InputInfo) {
	switch wgt.ID {
	case idBtnOK:
		slog.Info("OK clicked")
	case idBtnCancel:
		slog.Info("Cancel clicked")
	default:
		slog.Warn("Unknown button clicked", "id", wgt.ID)
		return
	}
	w.InstantRedraw(wgt.ID)
}

func (w *mainWndState) OnCheckBoxToggle(wgt *widget.Widget, _ *terminal.InputInfo) {
	if wgt.ID != idChkSound {
		slog.Warn("Unknown checkbox toggled", "id", wgt.ID)
		return
	}
	w.sound = !w.sound
	slog.Info("Sound toggled", "on", w.sound)
}

// InstantRedraw paints one widget and flushes immediately
// Called from widget callbacks, never from inside a draw
func (w *mainWndState) InstantRedraw(id widget.ID) {
	if w.term == nil {
		w.InvalidateMany(id)
		return
	}
	draw.Draw(w.term, w, id)
	w.term.Flush()
}
