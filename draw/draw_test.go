package draw

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/termwins/terminal"
	"github.com/lixenwraith/termwins/widget"
	"github.com/lixenwraith/termwins/window"
)

const (
	idWnd widget.ID = iota + 1
	idPanel
	idLabel
	idBtn
	idChk
)

var testWidgets = widget.Compile(&widget.Widget{
	ID:    idWnd,
	Coord: widget.Coord{Col: 2, Row: 1},
	Size:  widget.Size{Width: 30, Height: 10},
	Prop:  widget.Window{Title: "Main", Fg: terminal.ColorFgWhite, Bg: terminal.ColorBgBlue},
	Children: []widget.Widget{
		{
			ID:    idPanel,
			Coord: widget.Coord{Col: 1, Row: 1},
			Size:  widget.Size{Width: 20, Height: 4},
			Prop:  widget.Panel{Title: "Group"},
			Children: []widget.Widget{
				{ID: idLabel, Coord: widget.Coord{Col: 2, Row: 1}, Prop: widget.Label{Title: "Hello"}},
			},
		},
		{ID: idBtn, Coord: widget.Coord{Col: 2, Row: 6}, Prop: widget.Button{Text: "OK", Fg: terminal.ColorFgGreen}},
		{ID: idChk, Coord: widget.Coord{Col: 12, Row: 6}, Prop: widget.CheckBox{Text: "Opt"}},
	},
})

type testWindow struct {
	window.Base
	checked bool
}

func (w *testWindow) IsChecked(wgt *widget.Widget) bool                 { return wgt.ID == idChk && w.checked }
func (w *testWindow) OnButtonClick(*widget.Widget, *terminal.InputInfo)    {}
func (w *testWindow) OnCheckBoxToggle(*widget.Widget, *terminal.InputInfo) {}
func (w *testWindow) InstantRedraw(widget.ID)                              {}

func newTestWindow() *testWindow {
	return &testWindow{Base: window.NewBase(testWidgets)}
}

func newTestTerminal() (*terminal.Terminal, *bytes.Buffer) {
	var out bytes.Buffer
	pal := terminal.NewWriterPAL(&out)
	pal.SetFlushThreshold(0)
	return terminal.New(pal), &out
}

func render(fn func(term *terminal.Terminal)) string {
	term, out := newTestTerminal()
	fn(term)
	term.Flush()
	return out.String()
}

func TestDrawWindow(t *testing.T) {
	ws := newTestWindow()
	out := render(func(term *terminal.Terminal) { DrawWindow(term, ws) })
	text := terminal.StripEscapes(out)

	assert.Contains(t, text, "╔")
	assert.Contains(t, text, "╝")
	assert.Contains(t, text, " Main ")
	assert.Contains(t, text, "┌")
	assert.Contains(t, text, " Group ")
	assert.Contains(t, text, "Hello")
	assert.Contains(t, text, "[ OK ]")
	assert.Contains(t, text, "[ ] Opt")

	// Window origin (2,1) -> row 2, col 3 one-based
	assert.Contains(t, out, "\x1b[2;3H")
	assert.True(t, strings.HasSuffix(out, terminal.SGRReset))
}

func TestDrawFrameGeometry(t *testing.T) {
	out := render(func(term *terminal.Terminal) {
		drawFrame(term, widget.Coord{Col: 0, Row: 0}, widget.Size{Width: 12, Height: 3}, LineSingle, "Hi", terminal.ColorFgDefault, terminal.ColorBgDefault)
	})
	text := terminal.StripEscapes(out)

	assert.Equal(t, "┌─── Hi ───┐│          │└──────────┘", text)
}

func TestDrawFrameTooSmall(t *testing.T) {
	out := render(func(term *terminal.Terminal) {
		drawFrame(term, widget.Coord{}, widget.Size{Width: 1, Height: 5}, LineSingle, "", terminal.ColorFgDefault, terminal.ColorBgDefault)
	})
	assert.Empty(t, out)
}

func TestDrawSingleWidget(t *testing.T) {
	ws := newTestWindow()
	out := render(func(term *terminal.Terminal) { Draw(term, ws, idLabel) })

	// Label abs = (2+1+2, 1+1+1) = (5,3)
	assert.True(t, strings.HasPrefix(out, "\x1b[4;6H"))
	assert.Equal(t, "Hello", terminal.StripEscapes(out))
}

func TestDrawDeduplicates(t *testing.T) {
	ws := newTestWindow()
	once := render(func(term *terminal.Terminal) { Draw(term, ws, idBtn) })
	twice := render(func(term *terminal.Terminal) { Draw(term, ws, idBtn, idBtn) })
	assert.Equal(t, once, twice)
}

func TestDrawUnknownID(t *testing.T) {
	ws := newTestWindow()
	out := render(func(term *terminal.Terminal) { Draw(term, ws, 99) })
	assert.Equal(t, terminal.SGRReset, out)
}

func TestDrawFocusedAndChecked(t *testing.T) {
	ws := newTestWindow()
	ws.SetFocusedID(idBtn)
	ws.checked = true

	btn := render(func(term *terminal.Terminal) { Draw(term, ws, idBtn) })
	assert.Contains(t, btn, terminal.Inverse)

	chk := render(func(term *terminal.Terminal) { Draw(term, ws, idChk) })
	assert.NotContains(t, chk, terminal.Inverse)
	assert.Contains(t, terminal.StripEscapes(chk), "[x] Opt")
}

func TestDrawInvalidated(t *testing.T) {
	ws := newTestWindow()
	ws.InvalidateMany(idBtn, idChk, idBtn)

	var n int
	out := render(func(term *terminal.Terminal) { n = DrawInvalidated(term, ws) })
	assert.Equal(t, 3, n)
	assert.Contains(t, terminal.StripEscapes(out), "[ OK ]")
	assert.Contains(t, terminal.StripEscapes(out), "Opt")

	out = render(func(term *terminal.Terminal) { n = DrawInvalidated(term, ws) })
	assert.Zero(t, n)
	assert.Empty(t, out)
}

// TestInheritedColors verifies widgets without colors take their ancestors'
func TestInheritedColors(t *testing.T) {
	idx, _ := widget.Find(testWidgets, idLabel)
	fg, bg := inheritedColors(testWidgets, idx)
	assert.Equal(t, terminal.ColorFgWhite, fg)
	assert.Equal(t, terminal.ColorBgBlue, bg)

	idx, _ = widget.Find(testWidgets, idBtn)
	fg, bg = inheritedColors(testWidgets, idx)
	assert.Equal(t, terminal.ColorFgGreen, fg)
	assert.Equal(t, terminal.ColorBgBlue, bg)
}

func TestButtonStyles(t *testing.T) {
	tests := []struct {
		style widget.ButtonStyle
		want  string
	}{
		{widget.ButtonSimple, "[ Go ]"},
		{widget.ButtonBrackets, "[Go]"},
		{widget.ButtonSolid, " Go "},
	}
	for _, tt := range tests {
		w := &widget.Widget{Prop: widget.Button{Text: "Go", Style: tt.style}}
		out := render(func(term *terminal.Terminal) {
			drawButton(term, w, w.Prop.(widget.Button), terminal.ColorFgDefault, terminal.ColorBgDefault, false, true)
		})
		assert.Equal(t, tt.want, terminal.StripEscapes(out))
		assert.Equal(t, widget.TextWidth(tt.want), w.Bounds().Width)
	}
}
