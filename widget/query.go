package widget

import (
	"errors"
	"fmt"
	"iter"
)

var (
	ErrEmpty         = errors.New("empty widget array")
	ErrRootNotWindow = errors.New("root widget is not a window")
	ErrNoneID        = errors.New("widget uses the reserved none id")
	ErrDuplicateID   = errors.New("duplicate widget id")
	ErrMissingProp   = errors.New("widget has no properties")
)

// Find returns the flat index of the widget with the given id
func Find(wgts []Widget, id ID) (int, bool) {
	if id == IDNone {
		return NoIndex, false
	}
	for i := range wgts {
		if wgts[i].ID == id {
			return i, true
		}
	}
	return NoIndex, false
}

// ByID returns the widget with the given id, nil if absent
func ByID(wgts []Widget, id ID) *Widget {
	if i, ok := Find(wgts, id); ok {
		return &wgts[i]
	}
	return nil
}

// Parent returns the parent of wgts[idx], nil for the root or an invalid index
func Parent(wgts []Widget, idx int) *Widget {
	if idx < 0 || idx >= len(wgts) {
		return nil
	}
	p := wgts[idx].Link.Parent
	if p < 0 || p >= len(wgts) {
		return nil
	}
	return &wgts[p]
}

// Children iterates the direct children of wgts[idx] as (index, widget)
func Children(wgts []Widget, idx int) iter.Seq2[int, *Widget] {
	return func(yield func(int, *Widget) bool) {
		if idx < 0 || idx >= len(wgts) {
			return
		}
		for c := wgts[idx].Link.FirstChild; c >= 0 && c < len(wgts); c = wgts[c].Link.NextSibling {
			if !yield(c, &wgts[c]) {
				return
			}
		}
	}
}

// Focusable reports whether the widget kind accepts focus and activation
func Focusable(w *Widget) bool {
	switch w.Prop.(type) {
	case Button, CheckBox:
		return true
	}
	return false
}

// Validate checks a flat array for host-configuration errors
func Validate(wgts []Widget) error {
	if len(wgts) == 0 {
		return ErrEmpty
	}
	if _, ok := wgts[0].Prop.(Window); !ok {
		return ErrRootNotWindow
	}

	seen := make(map[ID]int, len(wgts))
	for i := range wgts {
		w := &wgts[i]
		if w.ID == IDNone {
			return fmt.Errorf("widget at index %d: %w", i, ErrNoneID)
		}
		if w.Prop == nil {
			return fmt.Errorf("widget %d: %w", w.ID, ErrMissingProp)
		}
		if prev, dup := seen[w.ID]; dup {
			return fmt.Errorf("widget %d at index %d and %d: %w", w.ID, prev, i, ErrDuplicateID)
		}
		seen[w.ID] = i
	}
	return nil
}
