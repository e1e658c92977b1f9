package widget

import (
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/termwins/terminal"
)

// Kind tags the widget property variant
type Kind uint8

const (
	KindNone Kind = iota
	KindWindow
	KindPanel
	KindLabel
	KindButton
	KindCheckBox
)

var kindNames = [...]string{
	KindNone:     "None",
	KindWindow:   "Window",
	KindPanel:    "Panel",
	KindLabel:    "Label",
	KindButton:   "Button",
	KindCheckBox: "CheckBox",
}

// String returns the kind name
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

// Prop is the closed set of widget property payloads
// Only the types in this package implement it
type Prop interface {
	Kind() Kind
	naturalSize() Size
}

// Window is the root of a widget tree
type Window struct {
	Title   string
	Fg      terminal.ColorFg
	Bg      terminal.ColorBg
	IsPopup bool
}

// Panel groups child widgets inside an optional frame
type Panel struct {
	Title   string
	Fg      terminal.ColorFg
	Bg      terminal.ColorBg
	NoFrame bool
}

// Label is static text; Title may embed attribute escape sequences
type Label struct {
	Title string
	Fg    terminal.ColorFg
	Bg    terminal.ColorBg
}

// ButtonStyle selects button decoration
type ButtonStyle uint8

const (
	ButtonSimple   ButtonStyle = iota // [ text ]
	ButtonSolid                       // padded text on a solid background
	ButtonBrackets                    // [text]
)

// Button is an activatable push button
type Button struct {
	Text  string
	Fg    terminal.ColorFg
	Bg    terminal.ColorBg
	Style ButtonStyle
}

// CheckBox is an activatable two-state toggle; the state is owned by the host
type CheckBox struct {
	Text string
	Fg   terminal.ColorFg
}

func (Window) Kind() Kind   { return KindWindow }
func (Panel) Kind() Kind    { return KindPanel }
func (Label) Kind() Kind    { return KindLabel }
func (Button) Kind() Kind   { return KindButton }
func (CheckBox) Kind() Kind { return KindCheckBox }

// Containers have no natural size, it must be declared
func (Window) naturalSize() Size { return Size{} }
func (Panel) naturalSize() Size  { return Size{} }

func (p Label) naturalSize() Size {
	return Size{Width: TextWidth(p.Title), Height: 1}
}

func (p Button) naturalSize() Size {
	return Size{Width: TextWidth(p.Text) + p.Style.Decoration(), Height: 1}
}

func (p CheckBox) naturalSize() Size {
	return Size{Width: TextWidth(p.Text) + checkBoxMarkWidth, Height: 1}
}

// checkBoxMarkWidth is the width of "[x] "
const checkBoxMarkWidth = 4

// Decoration returns the cells a style adds around the button text
func (s ButtonStyle) Decoration() int {
	switch s {
	case ButtonSimple:
		return 4
	default:
		return 2
	}
}

// TextWidth returns the display width of s ignoring embedded escape sequences
func TextWidth(s string) int {
	return runewidth.StringWidth(terminal.StripEscapes(s))
}
