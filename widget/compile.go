package widget

// Count returns the number of nodes in the tree rooted at root
func Count(root *Widget) int {
	if root == nil {
		return 0
	}
	n := 1
	for i := range root.Children {
		n += Count(&root.Children[i])
	}
	return n
}

// Flatten writes the tree into out in pre-order and returns the entries written
// A node precedes its children, siblings keep declaration order. Each entry gets
// Abs (parent Abs + own Coord) and Link resolved; Children is left nil.
// When out is shorter than Count(root) the first len(out) nodes are written with
// links restricted to written entries. Does not allocate.
func Flatten(root *Widget, out []Widget) int {
	if root == nil || len(out) == 0 {
		return 0
	}
	n := 0
	flatten(root, out, &n, NoIndex, Coord{})
	return n
}

// flatten writes w at out[*n] and recurses; returns w's index or NoIndex when out is full
func flatten(w *Widget, out []Widget, n *int, parent int, origin Coord) int {
	if *n >= len(out) {
		return NoIndex
	}
	idx := *n
	*n++

	e := &out[idx]
	*e = Widget{
		ID:    w.ID,
		Coord: w.Coord,
		Size:  w.Size,
		Prop:  w.Prop,
		Abs:   origin.Add(w.Coord),
		Link: Link{
			Parent:      parent,
			FirstChild:  NoIndex,
			NextSibling: NoIndex,
		},
	}

	prev := NoIndex
	for i := range w.Children {
		ci := flatten(&w.Children[i], out, n, idx, e.Abs)
		if ci == NoIndex {
			break
		}
		if prev == NoIndex {
			e.Link.FirstChild = ci
		} else {
			out[prev].Link.NextSibling = ci
		}
		e.Link.ChildCount++
		prev = ci
	}
	return idx
}

// Compile allocates exactly Count(root) entries and flattens root into them
// Intended for package-level initialization of a window's widget array
func Compile(root *Widget) []Widget {
	out := make([]Widget, Count(root))
	Flatten(root, out)
	return out
}
