// Package widget holds the static widget descriptors of a window and the
// compiler that flattens a descriptor tree into an index-addressable array.
package widget

// ID identifies a widget within one tree; stable for the process lifetime
// Hosts number their widgets in declaration order starting at 1 (iota + 1)
type ID uint16

// IDNone means "no widget"
const IDNone ID = 0

// NoIndex marks an absent link in a flattened entry
const NoIndex = -1

// Coord is a grid position in cells
type Coord struct {
	Col int
	Row int
}

// Add returns c offset by o
func (c Coord) Add(o Coord) Coord {
	return Coord{Col: c.Col + o.Col, Row: c.Row + o.Row}
}

// Size is a width and height in cells
type Size struct {
	Width  int
	Height int
}

// IsZero reports whether the size was left unset
func (s Size) IsZero() bool {
	return s.Width == 0 && s.Height == 0
}

// Link holds flat-array indices resolved by the compiler
type Link struct {
	Parent      int
	FirstChild  int
	NextSibling int
	ChildCount  int
}

// Widget is a widget descriptor
// Authored as a nested tree (Children) with Coord relative to the parent;
// after Flatten, Children is nil, Abs holds the screen position and Link the
// tree structure as indices into the flat array
type Widget struct {
	ID       ID
	Coord    Coord
	Size     Size
	Prop     Prop
	Children []Widget

	Link Link
	Abs  Coord
}

// Kind returns the widget kind, KindNone when Prop is unset
func (w *Widget) Kind() Kind {
	if w.Prop == nil {
		return KindNone
	}
	return w.Prop.Kind()
}

// Bounds returns the on-screen extent, resolving implicit sizes of text widgets
func (w *Widget) Bounds() Size {
	if !w.Size.IsZero() || w.Prop == nil {
		return w.Size
	}
	return w.Prop.naturalSize()
}

// Contains reports whether the screen cell lies inside the widget
func (w *Widget) Contains(col, row int) bool {
	sz := w.Bounds()
	return col >= w.Abs.Col && col < w.Abs.Col+sz.Width &&
		row >= w.Abs.Row && row < w.Abs.Row+sz.Height
}
