package window

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/termwins/terminal"
	"github.com/lixenwraith/termwins/widget"
)

const (
	idWnd widget.ID = iota + 1
	idLabel
	idBtnA
	idBtnB
	idChk
)

var testWidgets = widget.Compile(&widget.Widget{
	ID:    idWnd,
	Coord: widget.Coord{Col: 5, Row: 1},
	Size:  widget.Size{Width: 30, Height: 8},
	Prop:  widget.Window{Title: "Test"},
	Children: []widget.Widget{
		{ID: idLabel, Coord: widget.Coord{Col: 2, Row: 1}, Prop: widget.Label{Title: "Hello"}},
		{ID: idBtnA, Coord: widget.Coord{Col: 2, Row: 3}, Prop: widget.Button{Text: "A", Style: widget.ButtonBrackets}},
		{ID: idBtnB, Coord: widget.Coord{Col: 10, Row: 3}, Prop: widget.Button{Text: "B", Style: widget.ButtonBrackets}},
		{ID: idChk, Coord: widget.Coord{Col: 2, Row: 5}, Prop: widget.CheckBox{Text: "Opt"}},
	},
})

// testWindow records callbacks
type testWindow struct {
	Base
	clicks   []widget.ID
	toggles  []widget.ID
	redraws  []widget.ID
	disabled map[widget.ID]bool
	checked  bool
}

func newTestWindow() *testWindow {
	return &testWindow{Base: NewBase(testWidgets), disabled: map[widget.ID]bool{}}
}

func (w *testWindow) IsEnabled(wgt *widget.Widget) bool { return !w.disabled[wgt.ID] }
func (w *testWindow) IsChecked(wgt *widget.Widget) bool { return wgt.ID == idChk && w.checked }

func (w *testWindow) OnButtonClick(wgt *widget.Widget, _ *terminal.InputInfo) {
	w.clicks = append(w.clicks, wgt.ID)
}

func (w *testWindow) OnCheckBoxToggle(wgt *widget.Widget, _ *terminal.InputInfo) {
	w.checked = !w.checked
	w.toggles = append(w.toggles, wgt.ID)
}

func (w *testWindow) InstantRedraw(id widget.ID) {
	w.redraws = append(w.redraws, id)
}

var _ State = (*testWindow)(nil)

func key(k terminal.Key, mod terminal.Modifier) *terminal.InputInfo {
	return &terminal.InputInfo{Kind: terminal.InputKey, Key: k, Mod: mod}
}

func char(r rune, mod terminal.Modifier) *terminal.InputInfo {
	return &terminal.InputInfo{Kind: terminal.InputChar, Rune: r, Mod: mod}
}

func click(col, row int) *terminal.InputInfo {
	return &terminal.InputInfo{Kind: terminal.InputMouse, Mouse: terminal.Mouse{
		Btn: terminal.MouseBtnLeft, Action: terminal.MouseActionPress, Col: col, Row: row,
	}}
}

// captureLog routes slog output to a buffer for the duration of the test
func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

func TestInvalidationDraining(t *testing.T) {
	b := NewBase(testWidgets)

	b.InvalidateMany(idBtnA, idBtnB, idBtnA)
	got := b.TakeInvalidated()
	assert.Contains(t, got, idBtnA)
	assert.Contains(t, got, idBtnB)
	assert.Len(t, got, 3)

	assert.Empty(t, b.TakeInvalidated())
}

func TestClearInvalidated(t *testing.T) {
	b := NewBase(testWidgets)
	b.InvalidateMany(idLabel, widget.IDNone)
	assert.Equal(t, 1, b.PendingInvalidated())

	b.ClearInvalidated()
	assert.Empty(t, b.TakeInvalidated())
}

func TestTakeInvalidatedSwapsBuffers(t *testing.T) {
	b := NewBase(testWidgets)

	b.InvalidateMany(idBtnA)
	first := b.TakeInvalidated()
	require.Equal(t, []widget.ID{idBtnA}, first)

	b.InvalidateMany(idBtnB)
	assert.Equal(t, []widget.ID{idBtnA}, first, "previous take must not be overwritten before the next take")
	assert.Equal(t, []widget.ID{idBtnB}, b.TakeInvalidated())
}

func TestFocusFromNone(t *testing.T) {
	for _, ii := range []*terminal.InputInfo{
		key(terminal.KeyTab, terminal.ModNone),
		key(terminal.KeyBacktab, terminal.ModShift),
		key(terminal.KeyDown, terminal.ModNone),
		key(terminal.KeyUp, terminal.ModNone),
	} {
		ws := newTestWindow()
		assert.True(t, ProcessInput(ws, ii))
		assert.Equal(t, idBtnA, ws.FocusedID())
		assert.Equal(t, []widget.ID{idBtnA}, ws.TakeInvalidated())
	}
}

func TestFocusNextWraps(t *testing.T) {
	ws := newTestWindow()
	ws.SetFocusedID(idChk)

	assert.True(t, ProcessInput(ws, key(terminal.KeyTab, terminal.ModNone)))
	assert.Equal(t, idBtnA, ws.FocusedID())

	inv := ws.TakeInvalidated()
	assert.ElementsMatch(t, []widget.ID{idChk, idBtnA}, inv)
}

func TestFocusPrevWraps(t *testing.T) {
	ws := newTestWindow()
	ws.SetFocusedID(idBtnA)

	assert.True(t, ProcessInput(ws, key(terminal.KeyLeft, terminal.ModNone)))
	assert.Equal(t, idChk, ws.FocusedID())

	assert.True(t, ProcessInput(ws, key(terminal.KeyTab, terminal.ModShift)))
	assert.Equal(t, idBtnB, ws.FocusedID())
}

func TestFocusSkipsDisabled(t *testing.T) {
	ws := newTestWindow()
	ws.disabled[idBtnB] = true
	ws.SetFocusedID(idBtnA)

	ProcessInput(ws, key(terminal.KeyRight, terminal.ModNone))
	assert.Equal(t, idChk, ws.FocusedID())
}

func TestActivateButton(t *testing.T) {
	ws := newTestWindow()
	ws.SetFocusedID(idBtnB)

	assert.True(t, ProcessInput(ws, key(terminal.KeyEnter, terminal.ModNone)))
	assert.Equal(t, []widget.ID{idBtnB}, ws.clicks)
	assert.Equal(t, []widget.ID{idBtnB}, ws.TakeInvalidated())

	assert.True(t, ProcessInput(ws, char(' ', terminal.ModNone)))
	assert.Equal(t, []widget.ID{idBtnB, idBtnB}, ws.clicks)
}

func TestActivateCheckBox(t *testing.T) {
	ws := newTestWindow()
	ws.SetFocusedID(idChk)

	assert.True(t, ProcessInput(ws, char(' ', terminal.ModNone)))
	assert.True(t, ws.IsChecked(widget.ByID(ws.Widgets(), idChk)))
	assert.Equal(t, []widget.ID{idChk}, ws.toggles)
	assert.Empty(t, ws.clicks)
}

func TestActivateWithoutFocusIsNoop(t *testing.T) {
	ws := newTestWindow()

	assert.False(t, ProcessInput(ws, key(terminal.KeyEnter, terminal.ModNone)))
	assert.Empty(t, ws.clicks)
	assert.Empty(t, ws.TakeInvalidated())
}

func TestActivateDisabledIsNoop(t *testing.T) {
	ws := newTestWindow()
	ws.SetFocusedID(idBtnA)
	ws.disabled[idBtnA] = true

	assert.False(t, ProcessInput(ws, key(terminal.KeyEnter, terminal.ModNone)))
	assert.Empty(t, ws.clicks)
}

func TestUnknownFocusedID(t *testing.T) {
	logs := captureLog(t)
	ws := newTestWindow()
	ws.SetFocusedID(42)

	assert.False(t, ProcessInput(ws, key(terminal.KeyEnter, terminal.ModNone)))
	assert.False(t, ProcessInput(ws, key(terminal.KeyTab, terminal.ModNone)))
	assert.Equal(t, widget.ID(42), ws.FocusedID())
	assert.Empty(t, ws.TakeInvalidated())
	assert.Contains(t, logs.String(), "unknown focused widget")
}

func TestMouseClick(t *testing.T) {
	ws := newTestWindow()

	// Button B at abs (15,4), "[B]" spans 3 cells
	assert.True(t, ProcessInput(ws, click(16, 4)))
	assert.Equal(t, idBtnB, ws.FocusedID())
	assert.Equal(t, []widget.ID{idBtnB}, ws.clicks)

	// Label is not focusable
	assert.False(t, ProcessInput(ws, click(7, 2)))
	assert.Equal(t, idBtnB, ws.FocusedID())

	// Release is ignored
	rel := click(16, 4)
	rel.Mouse.Action = terminal.MouseActionRelease
	assert.False(t, ProcessInput(ws, rel))
	assert.Len(t, ws.clicks, 1)
}

func TestOtherInputIgnored(t *testing.T) {
	ws := newTestWindow()
	ws.SetFocusedID(idBtnA)

	assert.False(t, ProcessInput(ws, char('x', terminal.ModNone)))
	assert.False(t, ProcessInput(ws, char(' ', terminal.ModCtrl)))
	assert.False(t, ProcessInput(ws, key(terminal.KeyF1, terminal.ModNone)))
	assert.False(t, ProcessInput(ws, &terminal.InputInfo{}))
	assert.Empty(t, ws.clicks)
}

func TestWindowCoordSize(t *testing.T) {
	ws := newTestWindow()
	assert.Equal(t, widget.Coord{Col: 5, Row: 1}, Coord(ws))
	assert.Equal(t, widget.Size{Width: 30, Height: 8}, Size(ws))
}
