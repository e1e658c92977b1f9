package terminal

// MouseButton represents mouse button identity
type MouseButton uint8

const (
	MouseBtnNone MouseButton = iota
	MouseBtnLeft
	MouseBtnMiddle
	MouseBtnRight
	MouseBtnWheelUp
	MouseBtnWheelDown
)

// MouseAction represents the type of mouse event
type MouseAction uint8

const (
	MouseActionNone MouseAction = iota
	MouseActionPress
	MouseActionRelease
	MouseActionMove
	MouseActionDrag
)

// MouseMode selects which mouse reports the terminal sends
type MouseMode uint8

const (
	MouseModeOff    MouseMode = iota
	MouseModeClick            // press/release (1000)
	MouseModeDrag             // press/release + motion while pressed (1002)
	MouseModeMotion           // all motion (1003)
)

// Mouse holds the payload of a mouse report; Col and Row are 0-indexed screen cells
type Mouse struct {
	Btn    MouseButton
	Action MouseAction
	Col    int
	Row    int
}

// String returns human-readable button name
func (b MouseButton) String() string {
	switch b {
	case MouseBtnLeft:
		return "Left"
	case MouseBtnMiddle:
		return "Middle"
	case MouseBtnRight:
		return "Right"
	case MouseBtnWheelUp:
		return "WheelUp"
	case MouseBtnWheelDown:
		return "WheelDown"
	default:
		return "None"
	}
}

// String returns human-readable action name
func (a MouseAction) String() string {
	switch a {
	case MouseActionPress:
		return "Press"
	case MouseActionRelease:
		return "Release"
	case MouseActionMove:
		return "Move"
	case MouseActionDrag:
		return "Drag"
	default:
		return "None"
	}
}

// String returns the config name of the mode
func (m MouseMode) String() string {
	switch m {
	case MouseModeClick:
		return "click"
	case MouseModeDrag:
		return "drag"
	case MouseModeMotion:
		return "motion"
	default:
		return "off"
	}
}

// ParseMouseMode resolves a config name, returns false if unknown
func ParseMouseMode(s string) (MouseMode, bool) {
	switch s {
	case "", "off", "none":
		return MouseModeOff, true
	case "click":
		return MouseModeClick, true
	case "drag":
		return MouseModeDrag, true
	case "motion":
		return MouseModeMotion, true
	}
	return MouseModeOff, false
}

// decodeMouseButton decodes the button parameter shared by SGR and X10 reports
// Bits 0-1: button (0=left, 1=middle, 2=right, 3=release)
// Bits 2-4: shift, alt, ctrl; bit 5 (32): motion; bit 6 (64): wheel
func decodeMouseButton(btn int, release bool) (Mouse, Modifier) {
	var m Mouse
	buttonID := btn & 0x03
	isMotion := btn&32 != 0
	isScroll := btn&64 != 0

	if isScroll {
		if buttonID == 0 {
			m.Btn = MouseBtnWheelUp
		} else {
			m.Btn = MouseBtnWheelDown
		}
		m.Action = MouseActionPress
	} else {
		switch buttonID {
		case 0:
			m.Btn = MouseBtnLeft
		case 1:
			m.Btn = MouseBtnMiddle
		case 2:
			m.Btn = MouseBtnRight
		case 3:
			m.Btn = MouseBtnNone
			if !isMotion {
				release = true
			}
		}

		switch {
		case release:
			m.Action = MouseActionRelease
		case isMotion && m.Btn != MouseBtnNone:
			m.Action = MouseActionDrag
		case isMotion:
			m.Action = MouseActionMove
		default:
			m.Action = MouseActionPress
		}
	}

	var mod Modifier
	if btn&4 != 0 {
		mod |= ModShift
	}
	if btn&8 != 0 {
		mod |= ModAlt
	}
	if btn&16 != 0 {
		mod |= ModCtrl
	}
	return m, mod
}
